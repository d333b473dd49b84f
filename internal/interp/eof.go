package interp

import (
	"fmt"
	"strings"
)

// EOFPolicy decides what ',' does once the input stream is exhausted.
type EOFPolicy int

const (
	// EOFError stops the run with ErrInputExhausted.
	EOFError EOFPolicy = iota
	// EOFZero stores 0 in the current cell.
	EOFZero
	// EOFMinusOne stores 255 in the current cell.
	EOFMinusOne
	// EOFUnchanged leaves the current cell as it is.
	EOFUnchanged
)

var eofPolicyNames = map[EOFPolicy]string{
	EOFError:     "error",
	EOFZero:      "zero",
	EOFMinusOne:  "minus-one",
	EOFUnchanged: "unchanged",
}

func (p EOFPolicy) String() string {
	if name, ok := eofPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("eof(%d)", int(p))
}

// ParseEOFPolicy converts a policy name as used in config files and flags.
// The empty string selects EOFError.
func ParseEOFPolicy(s string) (EOFPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return EOFError, nil
	case "zero", "0":
		return EOFZero, nil
	case "minus-one", "-1", "255":
		return EOFMinusOne, nil
	case "unchanged", "nochange":
		return EOFUnchanged, nil
	}
	return EOFError, fmt.Errorf("unknown EOF policy %q (want error, zero, minus-one or unchanged)", s)
}
