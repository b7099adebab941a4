// bignum/biguint.go
package bignum

import (
	"math/bits"

	"exact/internal/safeint"

	"golang.org/x/exp/constraints"
)

// BigUInt is an unbounded non-negative integer. The zero value is a usable
// zero with display base 10. Values are independent: every operation
// returns a fresh value and never aliases the operands' storage.
type BigUInt struct {
	digits []digit // little-endian limbs, canonical
	base   uint32  // display base; 0 stands for the default of 10
}

// NewBigUInt returns a BigUInt holding v.
func NewBigUInt(v uint64) BigUInt {
	var d []digit
	for v != 0 {
		d = append(d, digit(v&digitMask))
		v >>= digitBits
	}
	return BigUInt{digits: d}
}

// MaxInputBase returns the largest base accepted by the string parser,
// the size of the 0-9A-Z digit alphabet.
func MaxInputBase() uint32 { return 36 }

// Base returns the display base.
func (x BigUInt) Base() uint32 {
	if x.base == 0 {
		return 10
	}
	return x.base
}

// SetBase sets the display base. Bases outside [2, MaxBase] are rejected
// with BaseOutOfRange.
func (x *BigUInt) SetBase(base uint32) error {
	if base < 2 || base > MaxBase {
		return newError(BaseOutOfRange, "SetBase")
	}
	x.base = base
	return nil
}

// clone returns a deep copy of x.
func (x BigUInt) clone() BigUInt {
	return BigUInt{digits: copyDigits(x.digits), base: x.base}
}

// IsZero reports whether x == 0.
func (x BigUInt) IsZero() bool { return len(x.digits) == 0 }

// IsOdd reports whether x is odd.
func (x BigUInt) IsOdd() bool { return len(x.digits) > 0 && x.digits[0]&1 == 1 }

// IsEven reports whether x is even.
func (x BigUInt) IsEven() bool { return !x.IsOdd() }

// BitLen returns the number of significant bits in x; 0 for zero.
func (x BigUInt) BitLen() uint {
	if len(x.digits) == 0 {
		return 0
	}
	return uint(len(x.digits)-1)*digitBits + uint(bits.Len32(x.digits[len(x.digits)-1]))
}

// Cmp compares x and y, returning -1 if x < y, 0 if x == y, 1 if x > y.
// Shorter limb vectors are smaller; equal lengths compare from the high
// limb down.
func (x BigUInt) Cmp(y BigUInt) int { return cmpDigits(x.digits, y.digits) }

// Equal reports whether x == y.
func (x BigUInt) Equal(y BigUInt) bool { return cmpDigits(x.digits, y.digits) == 0 }

// Add returns x + y.
func (x BigUInt) Add(y BigUInt) BigUInt {
	r := make([]digit, max(len(x.digits), len(y.digits)))
	copy(r, x.digits)
	for i, yd := range y.digits {
		r[i] += yd
		r = carry(r, i)
	}
	return BigUInt{digits: trim(r), base: x.base}
}

// Sub returns x - y. Subtraction below zero has no meaning in the
// unsigned domain and fails with Negative.
func (x BigUInt) Sub(y BigUInt) (BigUInt, error) {
	if cmpDigits(x.digits, y.digits) < 0 {
		return BigUInt{}, newError(Negative, "sub")
	}
	r := copyDigits(x.digits)
	for i, yd := range y.digits {
		if r[i] < yd {
			if err := borrow(r, i); err != nil {
				return BigUInt{}, err
			}
		}
		r[i] -= yd
	}
	return BigUInt{digits: trim(r), base: x.base}, nil
}

// mulDigit returns x * d for a single limb d < digitBase.
func (x BigUInt) mulDigit(d digit) BigUInt {
	if d == 0 || x.IsZero() {
		return BigUInt{}
	}
	r := make([]digit, 0, len(x.digits)+1)
	for j := range x.digits {
		if len(r) == j {
			r = append(r, 0)
		}
		// Each product is < digitBase^2 and the accumulated limb is below
		// digitBase, so the sum stays inside the limb word.
		r[j] += d * x.digits[j]
		r = carry(r, j)
	}
	return BigUInt{digits: trim(r)}
}

// Mul returns x * y, grade-school style: one limb product at a time,
// carried immediately, accumulated at the limb offset i+j.
func (x BigUInt) Mul(y BigUInt) BigUInt {
	if x.IsZero() || y.IsZero() {
		return BigUInt{base: x.base}
	}
	acc := BigUInt{base: x.base}
	for i := range y.digits {
		dp := x.mulDigit(y.digits[i])
		if dp.IsZero() {
			continue
		}
		shifted := make([]digit, i, i+len(dp.digits))
		shifted = append(shifted, dp.digits...)
		acc = acc.Add(BigUInt{digits: shifted})
	}
	return acc
}

// QuoRem returns the quotient and remainder of x / y. Division by zero
// fails with DivByZero.
//
// This is guess-and-correct long division: each quotient limb is
// estimated from the high-order limbs of the running digit group and the
// divisor, then corrected by interval-halving between a floor and a
// ceiling. Each correction step halves the remaining interval, so the
// loop terminates in O(log digitBase) steps.
func (x BigUInt) QuoRem(y BigUInt) (BigUInt, BigUInt, error) {
	if y.IsZero() {
		return BigUInt{}, BigUInt{}, newError(DivByZero, "div")
	}
	if cmpDigits(y.digits, x.digits) > 0 {
		return BigUInt{base: x.base}, x.clone(), nil
	}

	n := len(y.digits)
	roughdivisor := uint64(y.digits[n-1])

	// Seed the digit group with the top n limbs of the dividend.
	group := BigUInt{digits: copyDigits(x.digits[len(x.digits)-n:])}

	steps := len(x.digits) - n + 1
	quot := make([]digit, steps)
	for k := 0; k < steps; k++ {
		var guess uint64
		var test BigUInt

		// A group smaller than the divisor yields a zero quotient limb.
		if cmpDigits(group.digits, y.digits) >= 0 {
			// Rough numerator: the group's top limb scaled over any excess
			// limbs, picking up each next limb on the way down.
			rough := uint64(group.digits[len(group.digits)-1])
			for j := 0; j < len(group.digits)-n; j++ {
				rough = rough*digitBase + uint64(group.digits[len(group.digits)-2-j])
			}
			guess = rough / roughdivisor
			if guess > digitMask {
				guess = digitMask
			}
			test = y.mulDigit(digit(guess))

			floor, ceil := uint64(1), uint64(digitMask)
			for {
				if cmpDigits(test.digits, group.digits) > 0 {
					// Guess too high: the ceiling is one below it.
					ceil = guess - 1
					guess -= (guess-floor)/2 + 1
					test = y.mulDigit(digit(guess))
				} else if tp := test.Add(y); cmpDigits(tp.digits, group.digits) <= 0 {
					// Room for another divisor: the floor is one above.
					floor = guess + 1
					guess += (ceil-guess)/2 + 1
					test = y.mulDigit(digit(guess))
				} else {
					break
				}
			}
		}

		quot[steps-1-k] = digit(guess)
		g, err := group.Sub(test)
		if err != nil {
			return BigUInt{}, BigUInt{}, err
		}
		group = g

		// Shift the next dividend limb in as the new low limb.
		if k < steps-1 {
			d := make([]digit, 0, len(group.digits)+1)
			d = append(d, x.digits[steps-2-k])
			d = append(d, group.digits...)
			group.digits = trim(d)
		}
	}

	group.base = x.base
	return BigUInt{digits: trim(quot), base: x.base}, group, nil
}

// Div returns x / y, discarding the remainder.
func (x BigUInt) Div(y BigUInt) (BigUInt, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Mod returns x % y.
func (x BigUInt) Mod(y BigUInt) (BigUInt, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Pow returns x raised to e, by right-to-left binary exponentiation.
func (x BigUInt) Pow(e BigUInt) BigUInt {
	r := NewBigUInt(1)
	r.base = x.base
	b := x.clone()
	e = e.clone()
	for !e.IsZero() {
		if e.IsOdd() {
			r = r.Mul(b)
		}
		b = b.Mul(b)
		e = e.Shr(1)
	}
	return r
}

// Shl returns x shifted left by n bits.
func (x BigUInt) Shl(n uint) BigUInt {
	if x.IsZero() || n == 0 {
		return x.clone()
	}
	whole := int(n / digitBits)
	rem := n % digitBits
	d := make([]digit, whole, whole+len(x.digits)+1)
	d = append(d, x.digits...)
	if rem != 0 {
		mask := digit((1<<rem - 1) << (digitBits - rem))
		var oldcarry digit
		for i := whole; i < len(d); i++ {
			c := d[i] & mask
			d[i] = d[i]<<rem&digitMask | oldcarry
			oldcarry = c >> (digitBits - rem)
		}
		if oldcarry != 0 {
			d = append(d, oldcarry)
		}
	}
	return BigUInt{digits: trim(d), base: x.base}
}

// Shr returns x shifted right by n bits. Shifting past the last bit
// yields zero.
func (x BigUInt) Shr(n uint) BigUInt {
	if x.IsZero() || n == 0 {
		return x.clone()
	}
	whole := int(n / digitBits)
	rem := n % digitBits
	if whole >= len(x.digits) {
		return BigUInt{base: x.base}
	}
	d := copyDigits(x.digits[whole:])
	if rem != 0 {
		mask := digit(1<<rem - 1)
		var oldcarry digit
		for i := len(d) - 1; i >= 0; i-- {
			c := d[i] & mask
			d[i] = d[i]>>rem | oldcarry
			oldcarry = c << (digitBits - rem)
		}
	}
	return BigUInt{digits: trim(d), base: x.base}
}

// And returns the bitwise AND of x and y, truncated to the shorter
// operand.
func (x BigUInt) And(y BigUInt) BigUInt {
	n := min(len(x.digits), len(y.digits))
	r := make([]digit, n)
	for i := 0; i < n; i++ {
		r[i] = x.digits[i] & y.digits[i]
	}
	return BigUInt{digits: trim(r), base: x.base}
}

// Or returns the bitwise OR of x and y, extended to the longer operand.
func (x BigUInt) Or(y BigUInt) BigUInt {
	r := make([]digit, max(len(x.digits), len(y.digits)))
	copy(r, x.digits)
	for i, yd := range y.digits {
		r[i] |= yd
	}
	return BigUInt{digits: r, base: x.base}
}

// Xor returns the bitwise XOR of x and y, extended to the longer operand.
func (x BigUInt) Xor(y BigUInt) BigUInt {
	r := make([]digit, max(len(x.digits), len(y.digits)))
	copy(r, x.digits)
	for i, yd := range y.digits {
		r[i] ^= yd
	}
	return BigUInt{digits: trim(r), base: x.base}
}

// Not returns the limb-wise complement of x, masked to the limb width.
func (x BigUInt) Not() BigUInt {
	r := make([]digit, len(x.digits))
	for i, xd := range x.digits {
		r[i] = ^xd & digitMask
	}
	return BigUInt{digits: trim(r), base: x.base}
}

// uint64Value returns x as a uint64 if it fits.
func (x BigUInt) uint64Value() (uint64, bool) {
	if len(x.digits) > 64/digitBits {
		return 0, false
	}
	var v uint64
	for i := len(x.digits) - 1; i >= 0; i-- {
		v = v<<digitBits | uint64(x.digits[i])
	}
	return v, true
}

// Value extracts x as a native integer type. Values outside the target
// type's range fail with ScalarOverflow.
func Value[T constraints.Integer](x BigUInt) (T, error) {
	v, ok := x.uint64Value()
	if !ok {
		return 0, newError(ScalarOverflow, "value")
	}
	t, err := safeint.Convert[T](v)
	if err != nil {
		return 0, newError(ScalarOverflow, "value")
	}
	return t, nil
}
