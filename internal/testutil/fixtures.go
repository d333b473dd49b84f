package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// HelloWorld prints "Hello World!\n" and uses nested loops.
const HelloWorld = `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.
+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.`

// HelloWorldOutput is the output of HelloWorld.
const HelloWorldOutput = "Hello World!\n"

// Digits prints the ten ASCII digits. Its comments contain no commands.
const Digits = `Set cell one to 48 (ASCII zero)
++++++++[>++++++<-]
Ten times print and bump it
++++++++++[>.+<-]`

// DigitsOutput is the output of Digits.
const DigitsOutput = "0123456789"

// CatZero copies input to output until a zero byte, so it terminates
// under the zero EOF policy.
const CatZero = ",[.,]"

// CatMinusOne copies input to output until a 255 byte, so it terminates
// under the minus-one EOF policy.
const CatMinusOne = ",+[-.,+]"

// SampleProgram is an end-to-end case.
type SampleProgram struct {
	Name   string
	Source string
	Input  string
	EOF    string // EOF policy name, empty for the default
	Output string
}

// SamplePrograms returns a new slice of end-to-end cases each call.
func SamplePrograms() []SampleProgram {
	return []SampleProgram{
		{Name: "hello world", Source: HelloWorld, Output: HelloWorldOutput},
		{Name: "digits", Source: Digits, Output: DigitsOutput},
		{Name: "cat zero", Source: CatZero, Input: "tape\nworm", EOF: "zero", Output: "tape\nworm"},
		{Name: "cat minus one", Source: CatMinusOne, Input: "abc", EOF: "minus-one", Output: "abc"},
		{Name: "increment and print", Source: "+++.", Output: "\x03"},
		{Name: "skip on zero", Source: "[+++]", Output: ""},
		{Name: "wrapping decrement", Source: "-.", Output: "\xff"},
	}
}

// WriteProgram writes src to dir/name and returns the full path.
func WriteProgram(t *testing.T, dir, name, src string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}
