package testutil

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/tapeworm/internal/tape"
)

func TestWriteProgram(t *testing.T) {
	dir := t.TempDir()
	path := WriteProgram(t, dir, "nested/hello.bf", HelloWorld)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, HelloWorld, string(data))
}

func TestSamplePrograms_FreshSlice(t *testing.T) {
	a := SamplePrograms()
	a[0].Output = "changed"
	b := SamplePrograms()
	assert.Equal(t, HelloWorldOutput, b[0].Output)
}

func TestRunContext_HasDeadline(t *testing.T) {
	ctx := RunContext(t)
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.True(t, time.Until(deadline) <= DefaultRunTimeout)
}

func TestContextWithTimeout(t *testing.T) {
	timeout := 150 * time.Millisecond
	ctx, cancel := ContextWithTimeout(t, timeout)
	defer cancel()

	deadline, ok := ctx.Deadline()
	assert.True(t, ok, "context should have deadline")
	assert.InDelta(t, timeout.Seconds(), time.Until(deadline).Seconds(), 0.1)
}

func TestTapeAssertions(t *testing.T) {
	tp := tape.New(4)
	AssertCellsZero(t, tp)
	AssertCursor(t, tp, 0)

	tp.Set(2)
	tp.Advance()
	tp.Set(5)
	AssertCells(t, tp, 2, 5, 0)
	AssertCursor(t, tp, 1)
}
