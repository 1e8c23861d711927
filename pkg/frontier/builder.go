package frontier

import (
	"context"
	"iter"

	"github.com/lintang-b-s/binknap/pkg/datastructure"
	"github.com/lintang-b-s/binknap/pkg/util"
)

type emitFunc func(st walkState) bool

// Builder enumerates the efficient frontier of one binary-weight instance. Each
// Builder owns its emission counter; buckets are shared read-only.
//
// Every policy emits each non-dominated cell with its best profit and never an
// unattainable one. CUT_STRICT additionally emits no dominated point, provided all
// profits are >= 1: a zero-profit item makes its seed, e.g. (1,0,0), dominated by (0,0,0).
type Builder struct {
	right    []int
	up       []int
	diagonal []int
	nr       int
	nu       int
	nd       int

	policy    CutPolicy
	maxPoints int // 0 = unbounded

	emitted  int
	consumed bool
	err      error
}

// NewBuilder expects sorted buckets.
func NewBuilder(b *datastructure.Buckets, policy CutPolicy, maxPoints int) *Builder {
	util.AssertPanic(b.IsSorted(), "frontier: buckets must be sorted before building the frontier")
	return &Builder{
		right:     b.Right(),
		up:        b.Up(),
		diagonal:  b.Diagonal(),
		nr:        b.NumRight(),
		nu:        b.NumUp(),
		nd:        b.NumDiagonal(),
		policy:    policy,
		maxPoints: maxPoints,
	}
}

// Emitted is the number of points emitted so far, across both passes.
func (fb *Builder) Emitted() int {
	return fb.emitted
}

// Err reports why the last sequence stopped early: context cancellation or the point limit.
// It is nil when the sequence ran to completion or the consumer stopped ranging.
func (fb *Builder) Err() error {
	return fb.err
}

/*
Frontier returns the frontier points in passage order: the row-basis pass (seeds
(0,i) along the right bucket, each followed by its diagonal walk) and then the
column-basis pass (seeds (i,0) along the up bucket). The sequence can be ranged
over once; ranging again yields nothing.
*/
func (fb *Builder) Frontier(ctx context.Context) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if fb.consumed {
			return
		}
		fb.consumed = true

		emit := func(st walkState) bool {
			if util.StopConcurrentOperation(ctx) {
				fb.err = ctx.Err()
				return false
			}
			if fb.maxPoints > 0 && fb.emitted >= fb.maxPoints {
				fb.err = util.WrapErrorf(nil, util.ErrPointLimitExceeded, "stopped after %d points", fb.emitted)
				return false
			}
			fb.emitted++
			return yield(st.point())
		}

		if !fb.rowBasis(emit) {
			return
		}
		fb.columnBasis(emit)
	}
}

// Build drains the frontier into sink. A nil sink only counts.
func (fb *Builder) Build(ctx context.Context, sink Sink) (int, error) {
	for p := range fb.Frontier(ctx) {
		if sink == nil {
			continue
		}
		if err := sink.Put(p); err != nil {
			return fb.emitted, err
		}
	}
	return fb.emitted, fb.err
}

func (fb *Builder) rowBasis(emit emitFunc) bool {
	profit := 0
	for i := 0; i <= fb.nr; i++ {
		if !emit(walkState{row: 0, col: i, cur: Cursor{R: i}, profit: profit}) {
			return false
		}
		if !fb.walk(walkState{row: 1, col: i + 1, cur: Cursor{R: i}, profit: profit}, emit) {
			return false
		}
		if i < fb.nr {
			profit += fb.right[i]
		}
	}
	return true
}

func (fb *Builder) columnBasis(emit emitFunc) bool {
	profit := 0
	for i := 0; i <= fb.nu; i++ {
		if !emit(walkState{row: i, col: 0, cur: Cursor{U: i}, profit: profit}) {
			return false
		}
		if !fb.walk(walkState{row: i + 1, col: 1, cur: Cursor{U: i}, profit: profit}, emit) {
			return false
		}
		if i < fb.nu {
			profit += fb.up[i]
		}
	}
	return true
}

// walk moves along one diagonal, taking either a super item (one right + one up item)
// or one diagonal item per cell. It returns false only when emit asked to stop.
func (fb *Builder) walk(st walkState, emit emitFunc) bool {
	z := newWalkZone(st.row, st.col, fb.nr, fb.nu)

	for !fb.exhausted(st.cur) {
		if fb.cut(z, st) {
			return true
		}

		if fb.takesSuperItem(st.cur) {
			st.profit += fb.right[st.cur.R] + fb.up[st.cur.U]
			if !emit(st) {
				return false
			}
			st.cur.R++
			st.cur.U++
		} else {
			st.profit += fb.diagonal[st.cur.D]
			if !emit(st) {
				return false
			}
			st.cur.D++
		}

		st.row++
		st.col++
	}
	return true
}

func (fb *Builder) exhausted(cur Cursor) bool {
	return cur.D >= fb.nd && (cur.R >= fb.nr || cur.U >= fb.nu)
}

func (fb *Builder) takesSuperItem(cur Cursor) bool {
	if cur.D >= fb.nd {
		return true
	}
	return cur.R < fb.nr && cur.U < fb.nu && fb.right[cur.R]+fb.up[cur.U] >= fb.diagonal[cur.D]
}

func (fb *Builder) cut(z walkZone, st walkState) bool {
	switch fb.policy {
	case CUT_NONE:
		return false
	case CUT_ZONE:
		return fb.zoneCut(z, st)
	default:
		return fb.zoneCut(z, st) || fb.neighbourCut(st.cur)
	}
}

// zoneCut: once no super item is left and the cell is outside the nu x nr rectangle and
// off the line col-row = nr-nu, a right/up item that beats the next diagonal item ends the walk.
// Indices outside a bucket never cut.
func (fb *Builder) zoneCut(z walkZone, st walkState) bool {
	noSuperItem := st.cur.R >= fb.nr || st.cur.U >= fb.nu
	outsideRectangle := st.row >= fb.nu || st.col >= fb.nr
	offDiagonal := st.col-st.row != fb.nr-fb.nu
	if !noSuperItem || !outsideRectangle || !offDiagonal {
		return false
	}

	var (
		single, diag     int
		okSingle, okDiag bool
	)
	switch z.kind {
	case ZONE_G1:
		single, okSingle = at(fb.right, fb.nu-z.c)
		diag, okDiag = at(fb.diagonal, z.row0-fb.nu-1)
	case ZONE_G2:
		single, okSingle = at(fb.right, z.c+fb.nu)
		diag, okDiag = at(fb.diagonal, z.row0-fb.nu-1)
	case ZONE_G3:
		single, okSingle = at(fb.up, fb.nr-z.c)
		diag, okDiag = at(fb.diagonal, z.col0-fb.nr-1)
	}
	return okSingle && okDiag && single >= diag
}

// neighbourCut: with only one of the right/up buckets left, if its next item is worth at
// least the next diagonal item, taking it instead reaches the cell one step back on the
// other axis with no less profit, so this cell and the rest of the walk are dominated.
func (fb *Builder) neighbourCut(cur Cursor) bool {
	if cur.D >= fb.nd {
		return false
	}
	d := fb.diagonal[cur.D]
	switch {
	case cur.R >= fb.nr && cur.U < fb.nu:
		return fb.up[cur.U] >= d
	case cur.U >= fb.nu && cur.R < fb.nr:
		return fb.right[cur.R] >= d
	}
	return false
}

func at(a []int, i int) (int, bool) {
	if i < 0 || i >= len(a) {
		return 0, false
	}
	return a[i], true
}
