package tape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ZeroedCells(t *testing.T) {
	t.Parallel()

	tp := New(16)
	assert.Equal(t, 16, tp.Len())
	assert.Equal(t, 0, tp.Cursor())
	for i := 0; i < tp.Len(); i++ {
		assert.Equal(t, byte(0), tp.Cell(i), "cell %d", i)
	}
}

func TestNew_InvalidSizePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { New(0) })
	assert.Panics(t, func() { New(-3) })
}

func TestSetGet(t *testing.T) {
	t.Parallel()

	tp := New(4)
	tp.Set(42)
	assert.Equal(t, byte(42), tp.Get())

	tp.Advance()
	assert.Equal(t, byte(0), tp.Get())
	tp.Set(7)
	tp.Retreat()
	assert.Equal(t, byte(42), tp.Get())
	assert.Equal(t, byte(7), tp.Cell(1))
}

func TestIncrementDecrement_Wraparound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start byte
		op    func(*Tape)
		want  byte
	}{
		{"increment", 41, (*Tape).Increment, 42},
		{"increment max wraps to zero", 255, (*Tape).Increment, 0},
		{"decrement", 42, (*Tape).Decrement, 41},
		{"decrement zero wraps to max", 0, (*Tape).Decrement, 255},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tp := New(1)
			tp.Set(tt.start)
			tt.op(tp)
			assert.Equal(t, tt.want, tp.Get())
		})
	}
}

func TestIncrement_FullCycle(t *testing.T) {
	t.Parallel()

	tp := New(1)
	for i := 0; i < 256; i++ {
		tp.Increment()
	}
	assert.Equal(t, byte(0), tp.Get())
}

func TestAdvance_WrapsToFirstCell(t *testing.T) {
	t.Parallel()

	tp := New(3)
	tp.Advance()
	tp.Advance()
	require.Equal(t, 2, tp.Cursor())

	tp.Advance()
	assert.Equal(t, 0, tp.Cursor())
}

func TestRetreat_WrapsToLastCell(t *testing.T) {
	t.Parallel()

	tp := New(3)
	tp.Retreat()
	assert.Equal(t, 2, tp.Cursor())

	tp.Set(9)
	assert.Equal(t, byte(9), tp.Cell(-1))
}

func TestSingleCellTape(t *testing.T) {
	t.Parallel()

	tp := New(1)
	tp.Advance()
	assert.Equal(t, 0, tp.Cursor())
	tp.Retreat()
	assert.Equal(t, 0, tp.Cursor())
}

func TestCell_WrapsIndex(t *testing.T) {
	t.Parallel()

	tp := New(5)
	tp.Set(1)
	assert.Equal(t, byte(1), tp.Cell(5))
	assert.Equal(t, byte(1), tp.Cell(-5))
	assert.Equal(t, byte(1), tp.Cell(10))
}

func TestWindow(t *testing.T) {
	t.Parallel()

	tp := New(10)
	for i := 0; i < 10; i++ {
		for j := 0; j < i; j++ {
			tp.Increment()
		}
		tp.Advance()
	}
	// Cursor is back on cell 0.
	require.Equal(t, 0, tp.Cursor())

	got := tp.Window(2)
	assert.Equal(t, []Cell{
		{Index: 8, Value: 8},
		{Index: 9, Value: 9},
		{Index: 0, Value: 0},
		{Index: 1, Value: 1},
		{Index: 2, Value: 2},
	}, got)
}

func TestWindow_WiderThanTape(t *testing.T) {
	t.Parallel()

	tp := New(4)
	got := tp.Window(100)
	require.Len(t, got, 4)

	seen := make(map[int]bool)
	for _, c := range got {
		assert.False(t, seen[c.Index], "cell %d returned twice", c.Index)
		seen[c.Index] = true
	}
}

func TestWindow_NegativeRadius(t *testing.T) {
	t.Parallel()

	tp := New(4)
	tp.Set(3)
	assert.Equal(t, []Cell{{Index: 0, Value: 3}}, tp.Window(-1))
}
