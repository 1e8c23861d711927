package resultio

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/binknap/pkg/frontier"
)

/*
Writer is the result sink of the solver. Each point becomes one line:

	%5d %4d %4d <right bits><up bits><diagonal bits>

profit, column and row, then one indicator string per bucket (lengths nr, nu, nd)
where position i is '1' iff i <= the bucket's cursor at emission time.
*/
type Writer struct {
	bw      *bufio.Writer
	closers []io.Closer
	nr      int
	nu      int
	nd      int
	lines   int
	buf     []byte
}

func NewWriter(w io.Writer, nr, nu, nd int) *Writer {
	return &Writer{
		bw:  bufio.NewWriter(w),
		nr:  nr,
		nu:  nu,
		nd:  nd,
		buf: make([]byte, 0, 16+nr+nu+nd),
	}
}

// NewCompressedWriter bzip2-compresses the result lines into w.
func NewCompressedWriter(w io.Writer, nr, nu, nd int) (*Writer, error) {
	bz, err := bzip2.NewWriter(w, &bzip2.WriterConfig{})
	if err != nil {
		return nil, err
	}
	rw := NewWriter(bz, nr, nu, nd)
	rw.closers = append(rw.closers, bz)
	return rw, nil
}

// Create opens filename for writing, truncating it.
func Create(filename string, nr, nu, nd int, compress bool) (*Writer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	var rw *Writer
	if compress {
		rw, err = NewCompressedWriter(f, nr, nu, nd)
		if err != nil {
			f.Close()
			return nil, err
		}
	} else {
		rw = NewWriter(f, nr, nu, nd)
	}
	rw.closers = append(rw.closers, f)
	return rw, nil
}

func (rw *Writer) Put(p frontier.Point) error {
	rw.buf = AppendLine(rw.buf[:0], p, rw.nr, rw.nu, rw.nd)
	if _, err := rw.bw.Write(rw.buf); err != nil {
		return err
	}
	rw.lines++
	return nil
}

// Lines is the number of lines written so far.
func (rw *Writer) Lines() int {
	return rw.lines
}

func (rw *Writer) Flush() error {
	return rw.bw.Flush()
}

// Close flushes buffered lines and closes the compressor and file, innermost first.
func (rw *Writer) Close() error {
	err := rw.bw.Flush()
	for _, c := range rw.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	rw.closers = nil
	return err
}

func AppendLine(dst []byte, p frontier.Point, nr, nu, nd int) []byte {
	dst = appendPadded(dst, p.Profit, 5)
	dst = append(dst, ' ')
	dst = appendPadded(dst, p.Col, 4)
	dst = append(dst, ' ')
	dst = appendPadded(dst, p.Row, 4)
	dst = append(dst, ' ')
	dst = AppendIndicator(dst, nr, p.Cursor.R)
	dst = AppendIndicator(dst, nu, p.Cursor.U)
	dst = AppendIndicator(dst, nd, p.Cursor.D)
	return append(dst, '\n')
}

func FormatLine(p frontier.Point, nr, nu, nd int) string {
	return string(AppendLine(nil, p, nr, nu, nd))
}

func AppendIndicator(dst []byte, n, cursor int) []byte {
	for i := 0; i < n; i++ {
		if i <= cursor {
			dst = append(dst, '1')
		} else {
			dst = append(dst, '0')
		}
	}
	return dst
}

// Selection returns the concatenated right, up and diagonal indicators of p.
func Selection(p frontier.Point, nr, nu, nd int) string {
	dst := make([]byte, 0, nr+nu+nd)
	dst = AppendIndicator(dst, nr, p.Cursor.R)
	dst = AppendIndicator(dst, nu, p.Cursor.U)
	dst = AppendIndicator(dst, nd, p.Cursor.D)
	return string(dst)
}

// appendPadded right-aligns v in a field of the given width, like %*d.
func appendPadded(dst []byte, v, width int) []byte {
	var tmp [20]byte
	s := strconv.AppendInt(tmp[:0], int64(v), 10)
	for i := len(s); i < width; i++ {
		dst = append(dst, ' ')
	}
	return append(dst, s...)
}
