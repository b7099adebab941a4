// bignum/errors.go
package bignum

import (
	"fmt"
	"strings"
)

// ErrorKind represents the kind of numeric failure
type ErrorKind string

const (
	BadFormat        ErrorKind = "BadFormat"
	DivByZero        ErrorKind = "DivByZero"
	NonInteger       ErrorKind = "NonInteger"
	Negative         ErrorKind = "Negative"
	Complex          ErrorKind = "Complex"
	PositiveInfinity ErrorKind = "PositiveInfinity"
	NegativeInfinity ErrorKind = "NegativeInfinity"
	NaN              ErrorKind = "NaN"
	ScalarOverflow   ErrorKind = "ScalarOverflow"
	BaseOutOfRange   ErrorKind = "BaseOutOfRange"
	Overrun          ErrorKind = "Overrun"
	RootTooLarge     ErrorKind = "RootTooLarge"
)

// Error represents a failure in a numeric operation. Position is the
// 0-based offset of the offending character for BadFormat errors, -1
// otherwise.
type Error struct {
	Kind     ErrorKind
	Problem  string
	Position int
	Op       string
	Number   string // the input that failed to parse, if any
}

// Error implements the error interface
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(string(e.Kind))
	if e.Problem != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Problem)
	}
	if e.Position >= 0 {
		sb.WriteString(fmt.Sprintf(" at position %d", e.Position))
	}
	if e.Number != "" {
		sb.WriteString(fmt.Sprintf(" in number %q", e.Number))
	}
	if e.Op != "" {
		sb.WriteString(fmt.Sprintf(" (operation %s)", e.Op))
	}

	return sb.String()
}

// KindOf returns the ErrorKind of err, or "" if err is not a bignum error.
func KindOf(err error) ErrorKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ""
}

// newError creates an error of the given kind with no position information.
func newError(kind ErrorKind, op string) *Error {
	return &Error{
		Kind:     kind,
		Position: -1,
		Op:       op,
	}
}

// newBadFormat creates a parse error at a 0-based character position.
func newBadFormat(problem string, position int) *Error {
	return &Error{
		Kind:     BadFormat,
		Problem:  problem,
		Position: position,
	}
}

// WithNumber attaches the offending input string to the error.
func (e *Error) WithNumber(number string) *Error {
	e.Number = number
	return e
}

// WithProblem attaches a problem description to the error.
func (e *Error) WithProblem(problem string) *Error {
	e.Problem = problem
	return e
}
