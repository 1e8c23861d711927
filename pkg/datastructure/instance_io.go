package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lintang-b-s/binknap/pkg"
	"github.com/lintang-b-s/binknap/pkg/util"
)

/*
Instance file format, one record per line:

	n <N>                  number of items
	i <profit> <w1> <w2>   one item, w1 and w2 in {0,1}

The record code is the first byte of the line. Lines with any other code are ignored.
*/
type Instance struct {
	declared int
	items    []Item
}

func NewInstance(items []Item) *Instance {
	return &Instance{declared: len(items), items: items}
}

func (in *Instance) Declared() int {
	return in.declared
}

func (in *Instance) Items() []Item {
	return in.items
}

// Buckets classifies the items. The buckets are unsorted.
func (in *Instance) Buckets(mode pkg.ClassifyMode) (*Buckets, error) {
	b := NewBuckets(in.declared)
	for i, it := range in.items {
		class, err := it.Class(mode)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrMalformedRecord, "item %d", i)
		}
		b.Add(class, it.Profit)
	}
	return b, nil
}

func ReadInstanceFile(filename string) (*Instance, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrFileOpen, "error opening file %s. check its existence", filename)
	}
	defer f.Close()

	return ReadInstance(f)
}

func ReadInstance(r io.Reader) (*Instance, error) {
	br := bufio.NewReader(r)

	var (
		lineNo int
		line   string
		err    error
	)
	in := &Instance{declared: -1}
	malformed := func(format string, a ...interface{}) error {
		return util.WrapErrorf(nil, util.ErrMalformedRecord, "line %d: %s", lineNo, fmt.Sprintf(format, a...))
	}

	for line, err = util.ReadLine(br); err == nil; line, err = util.ReadLine(br) {
		lineNo++
		if len(line) == 0 {
			continue
		}

		switch line[0] {
		case pkg.COUNT_RECORD:
			if in.declared >= 0 {
				return nil, malformed("item count declared twice")
			}
			ff := util.Fields(line[1:])
			if len(ff) < 1 {
				return nil, malformed("missing item count")
			}
			n, err := strconv.Atoi(ff[0])
			if err != nil || n < 0 {
				return nil, malformed("invalid item count %q", ff[0])
			}
			in.declared = n
			in.items = make([]Item, 0, n)

		case pkg.ITEM_RECORD:
			if in.declared < 0 {
				return nil, malformed("item record before item count")
			}
			if len(in.items) >= in.declared {
				return nil, malformed("more than %d items", in.declared)
			}
			ff := util.Fields(line[1:])
			if len(ff) < 3 {
				return nil, malformed("item record needs profit, w1 and w2")
			}
			vals := [3]int{}
			for k := 0; k < 3; k++ {
				vals[k], err = strconv.Atoi(ff[k])
				if err != nil {
					return nil, malformed("invalid number %q", ff[k])
				}
			}
			it := NewItem(vals[0], vals[1], vals[2])
			if it.Profit < 0 {
				return nil, malformed("negative profit %d", it.Profit)
			}
			if !isBinary(it.W1) || !isBinary(it.W2) {
				return nil, malformed("weights (%d,%d) are not in {0,1}", it.W1, it.W2)
			}
			in.items = append(in.items, it)
		}
	}
	if !errors.Is(err, io.EOF) {
		return nil, err
	}

	if in.declared < 0 {
		in.declared = 0
	}
	return in, nil
}

// LoadBuckets reads an instance file and classifies it. The buckets are unsorted.
func LoadBuckets(filename string, mode pkg.ClassifyMode) (*Buckets, error) {
	in, err := ReadInstanceFile(filename)
	if err != nil {
		return nil, err
	}
	return in.Buckets(mode)
}

func WriteInstance(w io.Writer, items []Item) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "n %d\n", len(items)); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := fmt.Fprintf(bw, "i %d %d %d\n", it.Profit, it.W1, it.W2); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (in *Instance) WriteToFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteInstance(f, in.items)
}
