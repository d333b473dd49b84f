// Package console makes ',' read one keypress at a time when stdin is a
// terminal. In raw mode the terminal stops translating line endings and
// stops turning Ctrl-D into EOF, so the readers and writers here do that
// translation themselves. Ctrl-C keeps raising SIGINT.
package console

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned by a raw-mode reader when a Ctrl-C byte
// arrives as data rather than as a signal.
var ErrInterrupted = errors.New("interrupted")

const (
	ctrlC = 0x03
	ctrlD = 0x04
)

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Terminal handles raw mode for one input file.
type Terminal struct {
	in       *os.File
	oldState *term.State
	isRaw    bool
}

// NewTerminal creates a Terminal for in, normally os.Stdin.
func NewTerminal(in *os.File) *Terminal {
	return &Terminal{in: in}
}

// EnterRaw puts the terminal into raw mode with signal generation left on,
// so an interrupt still reaches a program stuck in a loop.
// Returns an error if already in raw mode or if the operation fails.
func (t *Terminal) EnterRaw() error {
	if t.isRaw {
		return fmt.Errorf("terminal already in raw mode")
	}

	fd := int(t.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	if err := keepSignals(fd); err != nil {
		_ = term.Restore(fd, oldState)
		return fmt.Errorf("failed to keep terminal signals: %w", err)
	}

	t.oldState = oldState
	t.isRaw = true
	return nil
}

// ExitRaw restores the terminal to its original state.
// Safe to call even if not in raw mode.
func (t *Terminal) ExitRaw() error {
	if !t.isRaw || t.oldState == nil {
		return nil
	}

	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}

	t.isRaw = false
	t.oldState = nil
	return nil
}

// IsRaw returns true if the terminal is in raw mode.
func (t *Terminal) IsRaw() bool {
	return t.isRaw
}

// Reader returns the terminal input, translated if the terminal is raw.
func (t *Terminal) Reader() io.Reader {
	if t.isRaw {
		return NewInputTranslator(t.in)
	}
	return t.in
}

// Writer wraps w so that output renders correctly while the terminal is
// raw. It returns w unchanged otherwise.
func (t *Terminal) Writer(w io.Writer) io.Writer {
	if t.isRaw {
		return NewOutputTranslator(w)
	}
	return w
}

type inputTranslator struct {
	r   io.Reader
	err error
}

// NewInputTranslator wraps raw terminal input: '\r' becomes '\n', Ctrl-D
// ends the stream with io.EOF and Ctrl-C ends it with ErrInterrupted.
// Bytes before the control character are still delivered.
func NewInputTranslator(r io.Reader) io.Reader {
	return &inputTranslator{r: r}
}

func (t *inputTranslator) Read(p []byte) (int, error) {
	if t.err != nil {
		return 0, t.err
	}
	n, err := t.r.Read(p)
	for i := 0; i < n; i++ {
		switch p[i] {
		case '\r':
			p[i] = '\n'
		case ctrlC:
			t.err = ErrInterrupted
			return i, t.err
		case ctrlD:
			t.err = io.EOF
			return i, t.err
		}
	}
	return n, err
}

type outputTranslator struct {
	w io.Writer
}

// NewOutputTranslator wraps w so every '\n' is written as "\r\n".
func NewOutputTranslator(w io.Writer) io.Writer {
	return &outputTranslator{w: w}
}

func (t *outputTranslator) Write(p []byte) (int, error) {
	if _, err := t.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
