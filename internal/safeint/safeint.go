// internal/safeint/safeint.go
//
// Overflow-checked scalar arithmetic. Every operation either returns the
// mathematically correct result or fails before silent wraparound.
package safeint

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Kind represents the kind of checked-arithmetic failure
type Kind string

const (
	CastOverflow   Kind = "CastOverflow"
	BinOpOverflow  Kind = "BinOpOverflow"
	DivByZero      Kind = "DivByZero"
	BinOpUndefined Kind = "BinOpUndefined"
)

// Error represents a checked-arithmetic failure.
type Error struct {
	Kind Kind
	Op   string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s in %s", e.Kind, e.Op)
}

// KindOf returns the Kind of err, or "" if err is not a safeint error.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ""
}

// signed reports whether T is a signed type.
func signed[T constraints.Integer]() bool {
	var m T
	m--
	return m < 0
}

// width returns the bit width of T.
func width[T constraints.Integer]() uint {
	n := uint(1)
	v := T(1)
	for {
		nv := v << 1
		if nv <= v {
			break
		}
		v = nv
		n++
	}
	if signed[T]() {
		n++ // the sign bit
	}
	return n
}

// fitsSigned and fitsUnsigned report whether the 64-bit staging value
// round-trips through T.
func fitsSigned[T constraints.Integer](v int64) bool {
	return int64(T(v)) == v
}

func fitsUnsigned[T constraints.Integer](v uint64) bool {
	return uint64(T(v)) == v
}

// Convert converts v to type D, failing with CastOverflow when the value
// does not survive the trip.
func Convert[D, S constraints.Integer](v S) (D, error) {
	d := D(v)
	if S(d) != v || (v < 0) != (d < 0) {
		return 0, &Error{Kind: CastOverflow, Op: "convert"}
	}
	return d, nil
}

// Add returns a + b, failing with BinOpOverflow when the sum leaves T's
// range.
func Add[T constraints.Integer](a, b T) (T, error) {
	if signed[T]() {
		x, y := int64(a), int64(b)
		s := x + y
		if (y > 0 && s < x) || (y < 0 && s > x) || !fitsSigned[T](s) {
			return 0, &Error{Kind: BinOpOverflow, Op: "add"}
		}
		return T(s), nil
	}
	x, y := uint64(a), uint64(b)
	s := x + y
	if s < x || !fitsUnsigned[T](s) {
		return 0, &Error{Kind: BinOpOverflow, Op: "add"}
	}
	return T(s), nil
}

// Sub returns a - b, failing with BinOpOverflow when the difference
// leaves T's range.
func Sub[T constraints.Integer](a, b T) (T, error) {
	if signed[T]() {
		x, y := int64(a), int64(b)
		s := x - y
		if (y > 0 && s > x) || (y < 0 && s < x) || !fitsSigned[T](s) {
			return 0, &Error{Kind: BinOpOverflow, Op: "sub"}
		}
		return T(s), nil
	}
	x, y := uint64(a), uint64(b)
	if y > x {
		return 0, &Error{Kind: BinOpOverflow, Op: "sub"}
	}
	s := x - y
	if !fitsUnsigned[T](s) {
		return 0, &Error{Kind: BinOpOverflow, Op: "sub"}
	}
	return T(s), nil
}

// Mul returns a * b, failing with BinOpOverflow when the product leaves
// T's range.
func Mul[T constraints.Integer](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if signed[T]() {
		x, y := int64(a), int64(b)
		const minInt64 = -1 << 63
		if (x == -1 && y == minInt64) || (y == -1 && x == minInt64) {
			return 0, &Error{Kind: BinOpOverflow, Op: "mul"}
		}
		p := x * y
		if p/x != y || !fitsSigned[T](p) {
			return 0, &Error{Kind: BinOpOverflow, Op: "mul"}
		}
		return T(p), nil
	}
	x, y := uint64(a), uint64(b)
	p := x * y
	if p/x != y || !fitsUnsigned[T](p) {
		return 0, &Error{Kind: BinOpOverflow, Op: "mul"}
	}
	return T(p), nil
}

// Div returns a / b, failing with DivByZero on a zero divisor and with
// BinOpOverflow on the one signed quotient that has no representation.
func Div[T constraints.Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, &Error{Kind: DivByZero, Op: "div"}
	}
	if signed[T]() {
		x, y := int64(a), int64(b)
		const minInt64 = -1 << 63
		if y == -1 && (x == minInt64 || !fitsSigned[T](-x)) {
			return 0, &Error{Kind: BinOpOverflow, Op: "div"}
		}
	}
	return a / b, nil
}

// Shl returns a << n. Shift counts at or beyond T's width are undefined
// and fail with BinOpUndefined; a shift that drops set bits fails with
// BinOpOverflow.
func Shl[T constraints.Integer](a T, n uint) (T, error) {
	if n >= width[T]() {
		return 0, &Error{Kind: BinOpUndefined, Op: "shl"}
	}
	r := a << n
	if r>>n != a || (a >= 0) != (r >= 0) {
		return 0, &Error{Kind: BinOpOverflow, Op: "shl"}
	}
	return r, nil
}
