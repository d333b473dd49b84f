package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/tapeworm/internal/tape"
)

// AssertCells asserts that the first len(want) cells of tp hold want.
func AssertCells(t *testing.T, tp *tape.Tape, want ...byte) {
	t.Helper()
	require.NotNil(t, tp, "tape is nil")
	require.LessOrEqual(t, len(want), tp.Len(), "more cells expected than the tape holds")

	for i, w := range want {
		assert.Equal(t, w, tp.Cell(i), "cell[%d] mismatch", i)
	}
}

// AssertCellsZero asserts that every cell of tp is zero.
func AssertCellsZero(t *testing.T, tp *tape.Tape) {
	t.Helper()
	require.NotNil(t, tp, "tape is nil")

	for i := 0; i < tp.Len(); i++ {
		if tp.Cell(i) != 0 {
			assert.Fail(t, "tape not zeroed", "cell[%d] = %d", i, tp.Cell(i))
			return
		}
	}
}

// AssertCursor asserts the cursor position of tp.
func AssertCursor(t *testing.T, tp *tape.Tape, want int) {
	t.Helper()
	require.NotNil(t, tp, "tape is nil")
	assert.Equal(t, want, tp.Cursor(), "cursor mismatch")
}
