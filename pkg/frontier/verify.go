package frontier

import (
	"context"
	"fmt"

	"github.com/lintang-b-s/binknap/pkg/datastructure"
)

// Report compares one frontier run against exhaustive enumeration.
type Report struct {
	Emitted    int
	Infeasible []Point // emitted profit differs from the best profit of its cell
	Missing    []Cell  // non-dominated cell never emitted with its best profit
	Dominated  []Point // emitted point dominated by another emitted point
}

func (r Report) OK(requireDominanceFree bool) bool {
	if len(r.Infeasible) > 0 || len(r.Missing) > 0 {
		return false
	}
	return !requireDominanceFree || len(r.Dominated) == 0
}

func (r Report) String() string {
	return fmt.Sprintf("emitted=%d infeasible=%d missing=%d dominated=%d",
		r.Emitted, len(r.Infeasible), len(r.Missing), len(r.Dominated))
}

// Verify runs the builder with the given policy on sorted buckets and checks its output
// against Exhaustive.
func Verify(b *datastructure.Buckets, policy CutPolicy) (Report, error) {
	best, err := Exhaustive(b.Items())
	if err != nil {
		return Report{}, err
	}

	col := NewCollector()
	emitted, err := NewBuilder(b, policy, 0).Build(context.Background(), col)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Emitted: emitted}
	emittedBest := col.Best()
	for _, p := range col.Points() {
		if v, ok := best[p.Cell()]; !ok || v != p.Profit {
			rep.Infeasible = append(rep.Infeasible, p)
		}
	}
	for cell, p := range NonDominated(best) {
		if v, ok := emittedBest[cell]; !ok || v != p {
			rep.Missing = append(rep.Missing, cell)
		}
	}

	pts := uniquePoints(col.Points())
	for _, q := range pts {
		for _, p := range pts {
			if p.Dominates(q) {
				rep.Dominated = append(rep.Dominated, q)
				break
			}
		}
	}
	return rep, nil
}

func uniquePoints(points []Point) []Point {
	seen := make(map[[3]int]struct{}, len(points))
	out := make([]Point, 0, len(points))
	for _, p := range points {
		key := [3]int{p.Row, p.Col, p.Profit}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
