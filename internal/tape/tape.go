// Package tape implements the working memory of the machine: a fixed number
// of byte cells addressed through a single cursor. Both the cells and the
// cursor wrap around, so no operation on a Tape can fail.
package tape

import "fmt"

// DefaultSize is the conventional number of cells.
const DefaultSize = 30000

// Tape is a circular sequence of byte cells with a movable cursor.
// The cursor is always in [0, Len()).
type Tape struct {
	cells  []byte
	cursor int
}

// New creates a Tape with size zeroed cells and the cursor on cell 0.
// It panics if size is not positive.
func New(size int) *Tape {
	if size <= 0 {
		panic(fmt.Sprintf("tape: invalid size %d", size))
	}
	return &Tape{cells: make([]byte, size)}
}

// Get returns the value under the cursor.
func (t *Tape) Get() byte {
	return t.cells[t.cursor]
}

// Set overwrites the value under the cursor.
func (t *Tape) Set(v byte) {
	t.cells[t.cursor] = v
}

// Increment adds one to the current cell, wrapping 255 to 0.
func (t *Tape) Increment() {
	t.cells[t.cursor]++
}

// Decrement subtracts one from the current cell, wrapping 0 to 255.
func (t *Tape) Decrement() {
	t.cells[t.cursor]--
}

// Advance moves the cursor one cell right, wrapping to cell 0 past the end.
func (t *Tape) Advance() {
	t.cursor++
	if t.cursor == len(t.cells) {
		t.cursor = 0
	}
}

// Retreat moves the cursor one cell left, wrapping to the last cell before 0.
func (t *Tape) Retreat() {
	if t.cursor == 0 {
		t.cursor = len(t.cells)
	}
	t.cursor--
}

// Len returns the number of cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Cursor returns the current cursor position.
func (t *Tape) Cursor() int {
	return t.cursor
}

// Cell returns the value of cell i. The index wraps like the cursor does,
// so Cell(-1) is the last cell.
func (t *Tape) Cell(i int) byte {
	return t.cells[t.wrap(i)]
}

func (t *Tape) wrap(i int) int {
	n := len(t.cells)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Cell describes one tape position for inspection.
type Cell struct {
	Index int
	Value byte
}

// Window returns the cells within radius of the cursor, in address order
// starting radius cells to the left. Positions wrap, and no cell is
// returned twice when the window is wider than the tape.
func (t *Tape) Window(radius int) []Cell {
	if radius < 0 {
		radius = 0
	}
	width := 2*radius + 1
	if width > len(t.cells) {
		width = len(t.cells)
		radius = width / 2
	}
	out := make([]Cell, 0, width)
	for k := 0; k < width; k++ {
		i := t.wrap(t.cursor - radius + k)
		out = append(out, Cell{Index: i, Value: t.cells[i]})
	}
	return out
}
