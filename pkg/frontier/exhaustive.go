package frontier

import (
	"github.com/lintang-b-s/binknap/pkg"
	"github.com/lintang-b-s/binknap/pkg/datastructure"
	"github.com/lintang-b-s/binknap/pkg/util"
)

// Exhaustive enumerates all 2^N subsets and returns the best profit of every attainable
// cell, where row = sum of w2 and col = sum of w1. Only meant for small verification instances.
func Exhaustive(items []datastructure.Item) (map[Cell]int, error) {
	n := len(items)
	if n > pkg.MAX_EXHAUSTIVE_ITEMS {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "exhaustive enumeration supports at most %d items, got %d",
			pkg.MAX_EXHAUSTIVE_ITEMS, n)
	}

	best := make(map[Cell]int)
	for mask := 0; mask < 1<<n; mask++ {
		var cell Cell
		profit := 0
		for k := 0; k < n; k++ {
			if mask>>k&1 == 0 {
				continue
			}
			cell.Row += items[k].W2
			cell.Col += items[k].W1
			profit += items[k].Profit
		}
		if v, ok := best[cell]; !ok || profit > v {
			best[cell] = profit
		}
	}
	return best, nil
}

// NonDominated keeps the cells whose best profit is not matched or beaten by a cell
// that uses no more capacity on either axis.
func NonDominated(best map[Cell]int) map[Cell]int {
	nd := make(map[Cell]int)
	for cell, p := range best {
		dominated := false
		for other, q := range best {
			if other == cell {
				continue
			}
			if other.Row <= cell.Row && other.Col <= cell.Col && q >= p {
				dominated = true
				break
			}
		}
		if !dominated {
			nd[cell] = p
		}
	}
	return nd
}
