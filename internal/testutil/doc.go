// Package testutil provides shared test helpers for tapeworm.
//
// # Fixtures
//
// The fixtures.go file provides sample programs with their expected
// output:
//
//   - HelloWorld, Digits - programs with fixed output
//   - CatZero, CatMinusOne - echo input under the matching EOF policy
//   - SamplePrograms() - the above as a table for end-to-end tests
//
// # Assertions
//
// The assertions.go file provides tape assertions:
//
//   - AssertCells(t, tp, want) - compares leading cells
//   - AssertCellsZero(t, tp) - every cell is zero
//   - AssertCursor(t, tp, want) - cursor position
//
// # Files and contexts
//
//   - WriteProgram(t, dir, name, src) - writes a program file in a temp dir
//   - ContextWithTimeout(t, d) - bounded context for runaway programs
//   - RunContext(t) - context bounded by the test deadline, cancelled on cleanup
//
// testutil depends on the tape package only, so interp tests can import it.
package testutil
