package frontier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyZone(t *testing.T) {
	testCases := []struct {
		name     string
		row, col int
		nr, nu   int
		zone     Zone
		c        int
	}{
		{name: "below the main diagonal", row: 3, col: 1, nr: 4, nu: 2, zone: ZONE_G1, c: 2},
		{name: "on the main diagonal", row: 2, col: 2, nr: 4, nu: 2, zone: ZONE_G2, c: 0},
		{name: "between the diagonals", row: 1, col: 2, nr: 4, nu: 2, zone: ZONE_G2, c: 1},
		{name: "on the corner diagonal", row: 1, col: 3, nr: 4, nu: 2, zone: ZONE_G3, c: 2},
		{name: "above the corner diagonal", row: 1, col: 5, nr: 4, nu: 2, zone: ZONE_G3, c: 4},
		{name: "more up than right items", row: 1, col: 1, nr: 1, nu: 3, zone: ZONE_G3, c: 0},
		{name: "more up than right items, below", row: 3, col: 1, nr: 1, nu: 3, zone: ZONE_G3, c: -2},
		{name: "more up than right items, far below", row: 4, col: 1, nr: 1, nu: 3, zone: ZONE_G1, c: 3},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			zone, c := ClassifyZone(tt.row, tt.col, tt.nr, tt.nu)
			assert.Equal(t, tt.zone, zone)
			assert.Equal(t, tt.c, c)
		})
	}
}

func TestNewWalkZoneKeepsStartCell(t *testing.T) {
	z := newWalkZone(2, 5, 4, 2)
	assert.Equal(t, walkZone{kind: ZONE_G3, c: 3, row0: 2, col0: 5}, z)
}

func TestParseCutPolicy(t *testing.T) {
	testCases := []struct {
		in      string
		want    CutPolicy
		wantErr bool
	}{
		{in: "", want: CUT_STRICT},
		{in: "strict", want: CUT_STRICT},
		{in: "zone", want: CUT_ZONE},
		{in: "none", want: CUT_NONE},
		{in: "greedy", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCutPolicy(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.in != "" {
				assert.Equal(t, tt.in, got.String())
			}
		})
	}
}

func TestZoneString(t *testing.T) {
	assert.Equal(t, "G1", ZONE_G1.String())
	assert.Equal(t, "G2", ZONE_G2.String())
	assert.Equal(t, "G3", ZONE_G3.String())
	assert.Equal(t, "Zone(9)", Zone(9).String())
}
