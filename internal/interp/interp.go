// Package interp executes tape programs written with the eight commands
// > < + - . , [ ]. Every other byte is a comment.
//
// Bracket resolution happens when an Interpreter is constructed, so a
// program with unbalanced brackets is rejected before any tape exists.
// Run then interprets the source directly; there is no intermediate form.
package interp

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/thruflo/tapeworm/internal/logging"
	"github.com/thruflo/tapeworm/internal/tape"
)

// Runtime errors. Both are distinct from ErrUnbalanced, which can only
// come out of construction.
var (
	ErrInputExhausted = errors.New("input exhausted")
	ErrStepLimit      = errors.New("step limit reached")
)

// cancelCheckInterval must be a power of two.
const cancelCheckInterval = 4096

// ExitReason indicates why Run returned.
type ExitReason int

const (
	ExitUnknown   ExitReason = iota
	ExitHalted               // Instruction pointer ran off the end
	ExitCancelled            // Context cancelled
	ExitStepLimit            // MaxSteps reached
	ExitError                // I/O failure or exhausted input
)

// String returns a human-readable description of the exit reason.
func (r ExitReason) String() string {
	switch r {
	case ExitHalted:
		return "halted"
	case ExitCancelled:
		return "cancelled"
	case ExitStepLimit:
		return "step limit"
	case ExitError:
		return "error"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a run.
type Result struct {
	Reason ExitReason
	Steps  uint64 // source positions dispatched, comments included
}

// Options configures an Interpreter. The zero value is usable: a
// DefaultTapeSize tape, no input, discarded output, failing on EOF and
// no step limit.
type Options struct {
	TapeSize int
	Input    io.Reader
	Output   io.Writer
	EOF      EOFPolicy
	MaxSteps uint64 // 0 means unlimited
	Logger   *logging.Logger
}

// DefaultTapeSize is used when Options.TapeSize is zero.
const DefaultTapeSize = tape.DefaultSize

// Interpreter owns a program, its jump table and its tape.
type Interpreter struct {
	src      []byte
	jumps    JumpTable
	tape     *tape.Tape
	in       io.ByteReader
	out      *bufio.Writer
	eof      EOFPolicy
	maxSteps uint64
	log      *logging.Logger
}

// New resolves the brackets of src and prepares a fresh tape. A bracket
// failure is returned as a *BracketError wrapping ErrUnbalanced.
func New(src string, opts Options) (*Interpreter, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}

	code := []byte(src)
	jumps, err := BuildJumpTable(code)
	if err != nil {
		log.Debug("bracket resolution failed", "error", err)
		return nil, err
	}

	size := opts.TapeSize
	if size == 0 {
		size = DefaultTapeSize
	}
	if size < 0 {
		return nil, fmt.Errorf("invalid tape size %d", size)
	}

	var in io.ByteReader
	switch r := opts.Input.(type) {
	case nil:
		in = bytes.NewReader(nil)
	case io.ByteReader:
		in = r
	default:
		in = bufio.NewReader(r)
	}

	out := opts.Output
	if out == nil {
		out = io.Discard
	}

	log.Debug("resolved brackets", "bytes", len(code), "pairs", jumps.Pairs())

	return &Interpreter{
		src:      code,
		jumps:    jumps,
		tape:     tape.New(size),
		in:       in,
		out:      bufio.NewWriter(out),
		eof:      opts.EOF,
		maxSteps: opts.MaxSteps,
		log:      log,
	}, nil
}

// Exec constructs an Interpreter for src and runs it.
func Exec(ctx context.Context, src string, opts Options) (Result, error) {
	in, err := New(src, opts)
	if err != nil {
		return Result{Reason: ExitError}, err
	}
	return in.Run(ctx)
}

// Tape returns the interpreter's tape.
func (in *Interpreter) Tape() *tape.Tape {
	return in.tape
}

// Jumps returns the resolved jump table.
func (in *Interpreter) Jumps() JumpTable {
	return in.jumps
}

// Run executes the program from its first byte until the instruction
// pointer passes the end of the source. Output is flushed before Run
// returns, whatever the outcome.
func (in *Interpreter) Run(ctx context.Context) (res Result, err error) {
	defer func() {
		if ferr := in.out.Flush(); ferr != nil && err == nil {
			res.Reason = ExitError
			err = fmt.Errorf("failed to write output: %w", ferr)
		}
		in.log.Debug("run finished", "reason", res.Reason, "steps", res.Steps, "cursor", in.tape.Cursor())
	}()

	src, jumps, t := in.src, in.jumps, in.tape
	var steps uint64
	ip := 0
	for ip < len(src) {
		if steps&(cancelCheckInterval-1) == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Reason: ExitCancelled, Steps: steps}, err
			}
		}
		if in.maxSteps > 0 && steps >= in.maxSteps {
			return Result{Reason: ExitStepLimit, Steps: steps}, ErrStepLimit
		}
		steps++

		switch src[ip] {
		case '>':
			t.Advance()
		case '<':
			t.Retreat()
		case '+':
			t.Increment()
		case '-':
			t.Decrement()
		case '.':
			if err := in.write(t.Get()); err != nil {
				return Result{Reason: ExitError, Steps: steps}, err
			}
		case ',':
			if err := in.read(); err != nil {
				return Result{Reason: ExitError, Steps: steps}, err
			}
		case '[':
			if t.Get() == 0 {
				ip = jumps[ip] + 1
				continue
			}
		case ']':
			// Back to the '[' which re-tests the cell.
			ip = jumps[ip]
			continue
		}
		ip++
	}
	return Result{Reason: ExitHalted, Steps: steps}, nil
}

func (in *Interpreter) write(b byte) error {
	if err := in.out.WriteByte(b); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if b == '\n' {
		if err := in.out.Flush(); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func (in *Interpreter) read() error {
	// Anything printed so far may be a prompt.
	if err := in.out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	b, err := in.in.ReadByte()
	if err == nil {
		in.tape.Set(b)
		return nil
	}
	if !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read input: %w", err)
	}

	switch in.eof {
	case EOFZero:
		in.tape.Set(0)
	case EOFMinusOne:
		in.tape.Set(255)
	case EOFUnchanged:
	default:
		return ErrInputExhausted
	}
	return nil
}
