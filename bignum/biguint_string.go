// bignum/biguint_string.go
package bignum

import (
	"strconv"
	"strings"
)

const digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// digitVal maps a digit character to its numeric value: '0'-'9' to 0-9,
// 'A'-'Z' and 'a'-'z' to 10-35. Anything else is -1.
func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	}
	return -1
}

// parseDigits parses a sign-free digit string into a little-endian digit
// vector in the given base. A character outside the alphabet, or a digit
// at or above the base, fails with BadFormat at its 0-based position.
func parseDigits(s string, base uint32) ([]digit, error) {
	num := make([]digit, 0, len(s))
	for i := 0; i < len(s); i++ {
		v := digitVal(s[i])
		if v < 0 || uint32(v) >= base {
			return nil, newBadFormat("Unrecognized character", i).WithNumber(s)
		}
		// Little-endian: each new character shifts the earlier ones up.
		num = append([]digit{digit(v)}, num...)
	}
	return trim(num), nil
}

// ParseBigUInt parses a digit string in the given base. A base of 0
// stands for 10; bases outside [2, MaxBase] fail with BaseOutOfRange.
func ParseBigUInt(s string, base uint32) (BigUInt, error) {
	if base == 0 {
		base = 10
	}
	var x BigUInt
	if err := x.SetBase(base); err != nil {
		return BigUInt{}, err
	}
	if err := x.SetString(s); err != nil {
		return BigUInt{}, err
	}
	return x, nil
}

// SetString replaces x with the number parsed from s in the display
// base. x is unchanged on failure.
func (x *BigUInt) SetString(s string) error {
	num, err := parseDigits(s, x.Base())
	if err != nil {
		return err
	}
	d, err := baseConv(num, x.Base(), digitBase)
	if err != nil {
		return err
	}
	x.digits = d
	return nil
}

// PushBack appends digits to the low-order end of x in the display base:
// x becomes x * base^len(s) + parse(s). Positions in a BadFormat error
// are relative to s.
func (x *BigUInt) PushBack(s string) error {
	var newnum BigUInt
	newnum.base = x.base
	if err := newnum.SetString(s); err != nil {
		return err
	}
	shifted := x.Mul(NewBigUInt(uint64(x.Base())).Pow(NewBigUInt(uint64(len(s)))))
	*x = shifted.Add(newnum)
	return nil
}

// render converts x to a string in the given base, which the caller has
// validated. Bases beyond the digit alphabet render each digit as a
// quoted decimal number separated by commas, a diagnostic form only.
func (x BigUInt) render(base uint32) string {
	if x.IsZero() {
		return "0"
	}

	num, err := baseConv(x.digits, digitBase, base)
	if err != nil {
		// The caller validated the base.
		panic(err)
	}

	var sb strings.Builder
	if base > uint32(len(digitAlphabet)) {
		for i := len(num) - 1; i >= 0; i-- {
			sb.WriteByte('\'')
			sb.WriteString(strconv.FormatUint(uint64(num[i]), 10))
			sb.WriteByte('\'')
			if i != 0 {
				sb.WriteByte(',')
			}
		}
	} else {
		for i := len(num) - 1; i >= 0; i-- {
			sb.WriteByte(digitAlphabet[num[i]])
		}
	}
	return sb.String()
}

// String renders x in its display base.
func (x BigUInt) String() string {
	return x.render(x.Base())
}

// Text renders x in the given base. Bases outside [2, MaxBase] fail with
// BaseOutOfRange.
func (x BigUInt) Text(base uint32) (string, error) {
	if base < 2 || base > MaxBase {
		return "", newError(BaseOutOfRange, "Text")
	}
	return x.render(base), nil
}
