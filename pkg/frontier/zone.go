package frontier

import "fmt"

/*
Zones split the grid by the constant offset col-row of a diagonal walk:

	G3: col-row >= nr-nu
	G2: 0 <= col-row < nr-nu
	G1: col-row < 0

the zone picks which bucket (right or up) is compared against the diagonal bucket
when a walk is cut.

[Greedy algorithms for knapsack problems with binary weights, Gorski, Paquete, Pedrosa, 2009]
*/
type Zone uint8

const (
	ZONE_G1 Zone = iota + 1
	ZONE_G2
	ZONE_G3
)

func (z Zone) String() string {
	switch z {
	case ZONE_G1:
		return "G1"
	case ZONE_G2:
		return "G2"
	case ZONE_G3:
		return "G3"
	default:
		return fmt.Sprintf("Zone(%d)", uint8(z))
	}
}

// ClassifyZone returns the zone of cell (row, col) and its distance c to the main diagonal
// (col-row in G2 and G3, row-col in G1).
func ClassifyZone(row, col, nr, nu int) (Zone, int) {
	switch {
	case col-row >= nr-nu:
		return ZONE_G3, col - row
	case col-row >= 0:
		return ZONE_G2, col - row
	default:
		return ZONE_G1, row - col
	}
}

// walkZone is fixed at the start cell of a walk; row0/col0 stay at the start cell.
type walkZone struct {
	kind Zone
	c    int
	row0 int
	col0 int
}

func newWalkZone(row, col, nr, nu int) walkZone {
	kind, c := ClassifyZone(row, col, nr, nu)
	return walkZone{kind: kind, c: c, row0: row, col0: col}
}

type CutPolicy uint8

const (
	// CUT_STRICT applies the zone cut and the neighbour dominance cut.
	CUT_STRICT CutPolicy = iota
	// CUT_ZONE applies only the zone cut of the published algorithm.
	CUT_ZONE
	// CUT_NONE walks every diagonal to exhaustion.
	CUT_NONE
)

func (cp CutPolicy) String() string {
	switch cp {
	case CUT_STRICT:
		return "strict"
	case CUT_ZONE:
		return "zone"
	case CUT_NONE:
		return "none"
	default:
		return fmt.Sprintf("CutPolicy(%d)", uint8(cp))
	}
}

func ParseCutPolicy(s string) (CutPolicy, error) {
	switch s {
	case "", "strict":
		return CUT_STRICT, nil
	case "zone":
		return CUT_ZONE, nil
	case "none":
		return CUT_NONE, nil
	default:
		return CUT_STRICT, fmt.Errorf("unknown cut policy %q", s)
	}
}
