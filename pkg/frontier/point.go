package frontier

import "fmt"

// Cursor is the number of items already consumed from each sorted bucket, or,
// at emission time, the index of the item being taken.
type Cursor struct {
	R int // right bucket
	U int // up bucket
	D int // diagonal bucket
}

type Cell struct {
	Row int
	Col int
}

// Point is one emitted frontier triple together with the cursors at emission time.
type Point struct {
	Row    int
	Col    int
	Profit int
	Cursor Cursor
}

func NewPoint(row, col, profit int) Point {
	return Point{Row: row, Col: col, Profit: profit}
}

func (p Point) Cell() Cell {
	return Cell{Row: p.Row, Col: p.Col}
}

// Dominates reports whether p uses no more capacity on either axis than q, earns at
// least as much, and is a different (row, col, profit) triple.
func (p Point) Dominates(q Point) bool {
	if p.Row == q.Row && p.Col == q.Col && p.Profit == q.Profit {
		return false
	}
	return p.Row <= q.Row && p.Col <= q.Col && p.Profit >= q.Profit
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.Row, p.Col, p.Profit)
}

// walkState is the full state of a diagonal walk. It is passed by value.
type walkState struct {
	row    int
	col    int
	cur    Cursor
	profit int
}

func (st walkState) point() Point {
	return Point{Row: st.row, Col: st.col, Profit: st.profit, Cursor: st.cur}
}
