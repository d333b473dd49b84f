package interp

import (
	"errors"
	"fmt"
	"go/token"
)

// ErrUnbalanced is wrapped by every bracket resolution failure.
var ErrUnbalanced = errors.New("unbalanced brackets")

// BracketError reports a bracket with no partner. For a stray ']' it is the
// first such bracket; for unclosed '[' it is the innermost one.
type BracketError struct {
	Char   byte // '[' or ']'
	Offset int  // byte offset in the source
	Line   int  // 1-based
	Column int  // 1-based, in bytes
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Problem(), e.Line, e.Column)
}

// Problem describes the error without its position.
func (e *BracketError) Problem() string {
	if e.Char == '[' {
		return "unclosed '['"
	}
	return "unmatched ']'"
}

func (e *BracketError) Unwrap() error {
	return ErrUnbalanced
}

// JumpTable maps the position of every bracket to the position of its
// partner. Positions that do not hold a bracket map to -1.
type JumpTable []int

// Partner returns the partner of the bracket at pos and whether pos holds
// a bracket at all.
func (jt JumpTable) Partner(pos int) (int, bool) {
	if pos < 0 || pos >= len(jt) || jt[pos] < 0 {
		return -1, false
	}
	return jt[pos], true
}

// Pairs returns the number of matched bracket pairs.
func (jt JumpTable) Pairs() int {
	n := 0
	for i, j := range jt {
		if j > i {
			n++
		}
	}
	return n
}

// BuildJumpTable resolves the bracket structure of src in one pass.
func BuildJumpTable(src []byte) (JumpTable, error) {
	jt := make(JumpTable, len(src))
	var pending []int
	for pos, c := range src {
		jt[pos] = -1
		switch c {
		case '[':
			pending = append(pending, pos)
		case ']':
			if len(pending) == 0 {
				return nil, newBracketError(src, ']', pos)
			}
			open := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			jt[open] = pos
			jt[pos] = open
		}
	}
	if len(pending) > 0 {
		return nil, newBracketError(src, '[', pending[len(pending)-1])
	}
	return jt, nil
}

func newBracketError(src []byte, c byte, offset int) *BracketError {
	file := token.NewFileSet().AddFile("", -1, len(src))
	file.SetLinesForContent(src)
	p := file.Position(file.Pos(offset))
	return &BracketError{
		Char:   c,
		Offset: offset,
		Line:   p.Line,
		Column: p.Column,
	}
}
