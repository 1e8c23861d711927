package datastructure

import (
	"cmp"
	"slices"

	"github.com/lintang-b-s/binknap/pkg"
	"github.com/lintang-b-s/binknap/pkg/util"
	"golang.org/x/exp/constraints"
)

// Item is one raw instance record: a profit and its two binary weight components.
// w1 consumes the column axis, w2 the row axis.
type Item struct {
	Profit int
	W1     int
	W2     int
}

func NewItem(profit, w1, w2 int) Item {
	return Item{Profit: profit, W1: w1, W2: w2}
}

func (it Item) Class(mode pkg.ClassifyMode) (pkg.WeightClass, error) {
	if !isBinary(it.W1) || !isBinary(it.W2) {
		return 0, util.WrapErrorf(nil, util.ErrMalformedRecord, "weights (%d,%d) are not in {0,1}", it.W1, it.W2)
	}

	switch mode {
	case pkg.CLASSIFY_LITERAL:
		if it.W1 == it.W2 {
			return pkg.DIAGONAL_ITEM, nil
		} else if it.W1 == 1 {
			return pkg.RIGHT_ITEM, nil
		}
		return pkg.UP_ITEM, nil
	default:
		switch {
		case it.W1 == 1 && it.W2 == 1:
			return pkg.DIAGONAL_ITEM, nil
		case it.W1 == 1:
			return pkg.RIGHT_ITEM, nil
		case it.W2 == 1:
			return pkg.UP_ITEM, nil
		}
		return 0, util.WrapErrorf(nil, util.ErrMalformedRecord, "item with profit %d consumes no capacity (weights (0,0))", it.Profit)
	}
}

func isBinary(w int) bool {
	return w == 0 || w == 1
}

// Buckets holds the profits of the right, up and diagonal items of one instance.
// After Sort the buckets are treated as read-only.
type Buckets struct {
	right    []int
	up       []int
	diagonal []int
	sorted   bool
}

func NewBuckets(capacity int) *Buckets {
	return &Buckets{
		right:    make([]int, 0, capacity),
		up:       make([]int, 0, capacity),
		diagonal: make([]int, 0, capacity),
	}
}

// NewBucketsFromSlices copies already classified profits into fresh buckets.
func NewBucketsFromSlices(right, up, diagonal []int) *Buckets {
	return &Buckets{
		right:    slices.Clone(right),
		up:       slices.Clone(up),
		diagonal: slices.Clone(diagonal),
	}
}

func NewBucketsFromItems(items []Item, mode pkg.ClassifyMode) (*Buckets, error) {
	b := NewBuckets(len(items))
	for _, it := range items {
		if it.Profit < 0 {
			return nil, util.WrapErrorf(nil, util.ErrMalformedRecord, "negative profit %d", it.Profit)
		}
		class, err := it.Class(mode)
		if err != nil {
			return nil, err
		}
		b.Add(class, it.Profit)
	}
	return b, nil
}

func (b *Buckets) Add(class pkg.WeightClass, profit int) {
	switch class {
	case pkg.RIGHT_ITEM:
		b.right = append(b.right, profit)
	case pkg.UP_ITEM:
		b.up = append(b.up, profit)
	case pkg.DIAGONAL_ITEM:
		b.diagonal = append(b.diagonal, profit)
	}
	b.sorted = false
}

// Sort orders every bucket by profit, non-increasing. Buckets do not interact.
func (b *Buckets) Sort() {
	SortDescending(b.right)
	SortDescending(b.up)
	SortDescending(b.diagonal)
	b.sorted = true
}

func (b *Buckets) IsSorted() bool {
	return b.sorted
}

func (b *Buckets) Right() []int {
	return b.right
}

func (b *Buckets) Up() []int {
	return b.up
}

func (b *Buckets) Diagonal() []int {
	return b.diagonal
}

func (b *Buckets) NumRight() int {
	return len(b.right)
}

func (b *Buckets) NumUp() int {
	return len(b.up)
}

func (b *Buckets) NumDiagonal() int {
	return len(b.diagonal)
}

func (b *Buckets) Len() int {
	return len(b.right) + len(b.up) + len(b.diagonal)
}

// Items rebuilds one Item per bucket entry, with the canonical weights of its class.
func (b *Buckets) Items() []Item {
	items := make([]Item, 0, b.Len())
	for _, p := range b.right {
		items = append(items, NewItem(p, 1, 0))
	}
	for _, p := range b.up {
		items = append(items, NewItem(p, 0, 1))
	}
	for _, p := range b.diagonal {
		items = append(items, NewItem(p, 1, 1))
	}
	return items
}

func SortDescending[T constraints.Integer | constraints.Float](a []T) {
	slices.SortFunc(a, func(x, y T) int {
		return cmp.Compare(y, x)
	})
}

// PrefixSums returns s with s[i] = a[0] + ... + a[i-1], len(s) = len(a)+1.
func PrefixSums[T constraints.Integer | constraints.Float](a []T) []T {
	s := make([]T, len(a)+1)
	for i, v := range a {
		s[i+1] = s[i] + v
	}
	return s
}
