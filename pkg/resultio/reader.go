package resultio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/binknap/pkg/util"
)

// Record is one parsed result line.
type Record struct {
	Profit    int
	Col       int
	Row       int
	Selection string
}

func ReadResults(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	records := make([]Record, 0)

	line, err := util.ReadLine(br)
	for ; err == nil; line, err = util.ReadLine(br) {
		ff := util.Fields(line)
		if len(ff) < 3 || len(ff) > 4 {
			return nil, fmt.Errorf("invalid result line %q", line)
		}
		var rec Record
		if rec.Profit, err = strconv.Atoi(ff[0]); err != nil {
			return nil, err
		}
		if rec.Col, err = strconv.Atoi(ff[1]); err != nil {
			return nil, err
		}
		if rec.Row, err = strconv.Atoi(ff[2]); err != nil {
			return nil, err
		}
		if len(ff) == 4 {
			rec.Selection = ff[3]
		}
		records = append(records, rec)
	}
	if !errors.Is(err, io.EOF) {
		return nil, err
	}
	return records, nil
}

func ReadResultFile(filename string, compressed bool) ([]Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrFileOpen, "error opening result file %s", filename)
	}
	defer f.Close()

	if !compressed {
		return ReadResults(f)
	}

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()
	return ReadResults(bz)
}
