package resultio

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/binknap/pkg/datastructure"
	"github.com/lintang-b-s/binknap/pkg/frontier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLine(t *testing.T) {
	testCases := []struct {
		name       string
		point      frontier.Point
		nr, nu, nd int
		want       string
	}{
		{
			name:  "seed",
			point: frontier.Point{Row: 0, Col: 1, Profit: 10, Cursor: frontier.Cursor{R: 1}},
			nr:    1, nu: 1, nd: 1,
			want: "   10    1    0 111\n",
		},
		{
			name:  "diagonal item taken",
			point: frontier.Point{Row: 2, Col: 2, Profit: 23, Cursor: frontier.Cursor{R: 1, U: 1, D: 0}},
			nr:    2, nu: 2, nd: 3,
			want: "   23    2    2 1111100\n",
		},
		{
			name:  "empty buckets",
			point: frontier.NewPoint(0, 0, 0),
			want:  "    0    0    0 \n",
		},
		{
			name:  "wide profit",
			point: frontier.Point{Row: 12, Col: 345, Profit: 1234567},
			nr:    3,
			want:  "1234567  345   12 100\n",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLine(tt.point, tt.nr, tt.nu, tt.nd))
		})
	}
}

func TestAppendIndicator(t *testing.T) {
	assert.Equal(t, "11100", string(AppendIndicator(nil, 5, 2)))
	assert.Equal(t, "000", string(AppendIndicator(nil, 3, -1)))
	assert.Equal(t, "111", string(AppendIndicator(nil, 3, 7)))
	assert.Equal(t, "", string(AppendIndicator(nil, 0, 0)))
}

func TestSelection(t *testing.T) {
	p := frontier.Point{Cursor: frontier.Cursor{R: 0, U: 1, D: 2}}
	assert.Equal(t, "10"+"110"+"111", Selection(p, 2, 3, 3))
}

func solveInto(t *testing.T, w frontier.Sink) int {
	t.Helper()
	b := datastructure.NewBucketsFromSlices([]int{10}, []int{5}, []int{8})
	b.Sort()
	n, err := frontier.NewBuilder(b, frontier.CUT_STRICT, 0).Build(context.Background(), w)
	require.NoError(t, err)
	return n
}

func TestWriterLinesMatchEmitted(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 1, 1, 1)
	n := solveInto(t, w)
	require.NoError(t, w.Close())

	assert.Equal(t, n, w.Lines())

	records, err := ReadResults(&buf)
	require.NoError(t, err)
	require.Len(t, records, n)
	assert.Equal(t, Record{Profit: 0, Col: 0, Row: 0, Selection: "111"}, records[0])
	assert.Equal(t, Record{Profit: 18, Col: 2, Row: 1, Selection: "111"}, records[4])
	assert.Equal(t, Record{Profit: 5, Col: 0, Row: 1, Selection: "111"}, records[8])
}

func TestCreateAndReadResultFile(t *testing.T) {
	testCases := []struct {
		name     string
		compress bool
	}{
		{name: "plain", compress: false},
		{name: "bzip2", compress: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "result.txt")
			w, err := Create(filename, 1, 1, 1, tt.compress)
			require.NoError(t, err)
			n := solveInto(t, w)
			require.NoError(t, w.Close())

			records, err := ReadResultFile(filename, tt.compress)
			require.NoError(t, err)
			require.Len(t, records, n)

			profits := make([]int, len(records))
			for i, rec := range records {
				profits[i] = rec.Profit
			}
			assert.Equal(t, []int{0, 15, 23, 10, 18, 0, 15, 23, 5}, profits)
		})
	}
}

func TestReadResultsInvalidLine(t *testing.T) {
	_, err := ReadResults(bytes.NewBufferString("   10    1\n"))
	assert.Error(t, err)

	_, err = ReadResults(bytes.NewBufferString("   10    x    0 1\n"))
	assert.Error(t, err)
}
