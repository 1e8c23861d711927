package pkg

import "fmt"

// enum of weight_class
type WeightClass uint8

const (
	RIGHT_ITEM    WeightClass = iota // w = (1,0), consumes the column axis
	UP_ITEM                          // w = (0,1), consumes the row axis
	DIAGONAL_ITEM                    // w = (1,1), consumes both axes
)

func (wc WeightClass) String() string {
	switch wc {
	case RIGHT_ITEM:
		return "right"
	case UP_ITEM:
		return "up"
	case DIAGONAL_ITEM:
		return "diagonal"
	default:
		return fmt.Sprintf("WeightClass(%d)", uint8(wc))
	}
}

// ClassifyMode selects how a (w1, w2) pair is mapped to a WeightClass.
type ClassifyMode uint8

const (
	// CLASSIFY_STRICT maps (1,1), (1,0), (0,1) to their classes and rejects (0,0) items.
	CLASSIFY_STRICT ClassifyMode = iota
	// CLASSIFY_LITERAL evaluates the published test "w1 == w2 == 1" the way C does,
	// ((w1 == w2) == 1), so any item with w1 == w2 lands in the diagonal bucket.
	CLASSIFY_LITERAL
)

func (cm ClassifyMode) String() string {
	switch cm {
	case CLASSIFY_STRICT:
		return "strict"
	case CLASSIFY_LITERAL:
		return "literal"
	default:
		return fmt.Sprintf("ClassifyMode(%d)", uint8(cm))
	}
}

func ParseClassifyMode(s string) (ClassifyMode, error) {
	switch s {
	case "", "strict":
		return CLASSIFY_STRICT, nil
	case "literal":
		return CLASSIFY_LITERAL, nil
	default:
		return CLASSIFY_STRICT, fmt.Errorf("unknown classify mode %q", s)
	}
}

const (
	DEFAULT_RESULT_FILE = "result.txt"

	// instance record codes
	COUNT_RECORD = 'n'
	ITEM_RECORD  = 'i'

	// exhaustive enumeration is 2^N, keep it to verification sizes
	MAX_EXHAUSTIVE_ITEMS = 24
)
