package console

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputTranslator_CarriageReturn(t *testing.T) {
	t.Parallel()

	data, err := io.ReadAll(NewInputTranslator(strings.NewReader("ab\rc\r")))
	require.NoError(t, err)
	assert.Equal(t, "ab\nc\n", string(data))
}

func TestInputTranslator_CtrlDIsEOF(t *testing.T) {
	t.Parallel()

	r := NewInputTranslator(strings.NewReader("hi\x04ignored"))
	buf := make([]byte, 16)

	n, err := r.Read(buf)
	assert.Equal(t, 2, n)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "hi", string(buf[:n]))

	// EOF is sticky.
	n, err = r.Read(buf)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)
}

func TestInputTranslator_CtrlCInterrupts(t *testing.T) {
	t.Parallel()

	r := NewInputTranslator(strings.NewReader("\x03"))
	buf := make([]byte, 4)

	n, err := r.Read(buf)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestOutputTranslator(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewOutputTranslator(&buf)

	n, err := w.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "one\r\ntwo\r\n", buf.String())
}

func notATerminal(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestIsTerminal_RegularFile(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTerminal(notATerminal(t)))
}

func TestTerminal_EnterRawFailsOnRegularFile(t *testing.T) {
	t.Parallel()

	term := NewTerminal(notATerminal(t))
	err := term.EnterRaw()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to enter raw mode")
	assert.False(t, term.IsRaw())

	// Not raw, so these are pass-throughs.
	assert.NoError(t, term.ExitRaw())
	var buf bytes.Buffer
	assert.Same(t, &buf, term.Writer(&buf))
	assert.Equal(t, io.Reader(term.in), term.Reader())
}
