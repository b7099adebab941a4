// bignum/float.go
//
// Exact conversion between IEEE-754 binary formats and Rational. A
// finite float is sign * mantissa * 2^(exponent-bias), so every finite
// value is an exact binary fraction; decoding the bit fields and
// building p/q loses nothing, and converting back recovers the bits.
package bignum

import (
	"math"
)

type floatFormat struct {
	mantissabits uint
	exponentbits uint
	bias         int
	explicitLead bool // binary80 keeps its leading bit in the mantissa
}

var (
	binary32 = floatFormat{mantissabits: 24, exponentbits: 8, bias: 127}
	binary64 = floatFormat{mantissabits: 53, exponentbits: 11, bias: 1023}
	binary80 = floatFormat{mantissabits: 64, exponentbits: 15, bias: 16383, explicitLead: true}
)

// setFloatParts builds the rational from decoded bit fields.
func (x *Rational) setFloatParts(neg bool, expf uint32, mant uint64, ff floatFormat) error {
	if expf == uint32(1)<<ff.exponentbits-1 {
		frac := mant
		if ff.explicitLead {
			frac = mant &^ (uint64(1) << 63)
		}
		if frac == 0 {
			if neg {
				return newError(NegativeInfinity, "SetFloat")
			}
			return newError(PositiveInfinity, "SetFloat")
		}
		return newError(NaN, "SetFloat")
	}

	r := x.canon()

	// The mantissa reads as a fraction over 2^(mantissabits-1).
	q := NewBigUInt(1).Shl(ff.mantissabits - 1)
	var p BigUInt
	switch {
	case ff.explicitLead:
		// The leading bit is stored, subnormal or not; only the
		// exponent needs fixing up.
		if expf == 0 {
			expf = 1
		}
		p = NewBigUInt(mant)
	case expf == 0:
		// Subnormal: no hidden bit, minimum exponent.
		p = NewBigUInt(mant)
		expf = 1
	default:
		// Normal: add the hidden bit back in.
		p = q.Add(NewBigUInt(mant))
	}

	// Scale by 2^(exponent - bias).
	e := int(expf) - ff.bias
	if e >= 0 {
		p = p.Shl(uint(e))
	} else {
		q = q.Shl(uint(-e))
	}

	r.p = p
	r.q = q
	r.positive = !neg
	*x = r.reduce()
	return nil
}

// floatParts converts x to a mantissa of exactly ff.mantissabits bits
// (fewer for subnormals) and a biased exponent, truncating dropped
// bits. Values beyond the format's exponent range fail with
// ScalarOverflow; values below the smallest subnormal flush to zero.
func (x Rational) floatParts(ff floatFormat) (mant uint64, biasedExp uint32, neg bool, err error) {
	x = x.canon()
	if x.p.IsZero() {
		return 0, 0, false, nil
	}

	p, q := x.p, x.q

	// Scale so the truncated quotient lands on mantissabits bits. The
	// bit-length estimate can run one high; one correcting shift fixes
	// it.
	s := int(ff.mantissabits) - (int(p.BitLen()) - int(q.BitLen()))
	var t BigUInt
	if s >= 0 {
		t, _ = p.Shl(uint(s)).Div(q)
	} else {
		t, _ = p.Div(q.Shl(uint(-s)))
	}
	if t.BitLen() > ff.mantissabits {
		t = t.Shr(1)
		s--
	}

	e2 := int(ff.mantissabits) - 1 - s
	e := e2 + ff.bias
	maxExp := int(uint32(1)<<ff.exponentbits - 1)

	if e >= maxExp {
		return 0, 0, false, newError(ScalarOverflow, "Float")
	}
	if e <= 0 {
		// Subnormal territory: give up one mantissa bit per exponent
		// step below the minimum.
		drop := uint(1 - e)
		if drop >= t.BitLen() {
			return 0, 0, !x.positive, nil
		}
		t = t.Shr(drop)
		e = 0
	}

	tv, ok := t.uint64Value()
	if !ok {
		return 0, 0, false, newError(ScalarOverflow, "Float")
	}
	return tv, uint32(e), !x.positive, nil
}

// SetFloat64 replaces x with the exact value of f. Non-finite inputs
// fail with PositiveInfinity, NegativeInfinity or NaN.
func (x *Rational) SetFloat64(f float64) error {
	switch f {
	case 0, 1, -1:
		return x.setSmallFloat(f)
	}
	b := math.Float64bits(f)
	return x.setFloatParts(b>>63 != 0, uint32(b>>52)&0x7FF, b&(1<<52-1), binary64)
}

// SetFloat32 replaces x with the exact value of f.
func (x *Rational) SetFloat32(f float32) error {
	switch f {
	case 0, 1, -1:
		return x.setSmallFloat(float64(f))
	}
	b := math.Float32bits(f)
	return x.setFloatParts(b>>31 != 0, b>>23&0xFF, uint64(b&(1<<23-1)), binary32)
}

// SetFloat80 replaces x with the exact value of an x87 extended float
// given as its raw fields: se is the sign-and-exponent word, mant the
// full 64-bit mantissa with its explicit leading bit.
func (x *Rational) SetFloat80(se uint16, mant uint64) error {
	return x.setFloatParts(se>>15 != 0, uint32(se)&0x7FFF, mant, binary80)
}

func (x *Rational) setSmallFloat(f float64) error {
	r := x.canon()
	r.q = NewBigUInt(1)
	if f == 0 {
		r.p = BigUInt{}
	} else {
		r.p = NewBigUInt(1)
	}
	r.positive = f >= 0
	*x = r.reduce()
	return nil
}

// Float64 returns x as a binary64 value, truncating excess precision.
func (x Rational) Float64() (float64, error) {
	mant, e, neg, err := x.floatParts(binary64)
	if err != nil {
		return 0, err
	}
	b := uint64(e)<<52 | mant&(1<<52-1)
	if neg {
		b |= 1 << 63
	}
	return math.Float64frombits(b), nil
}

// Float32 returns x as a binary32 value, truncating excess precision.
func (x Rational) Float32() (float32, error) {
	mant, e, neg, err := x.floatParts(binary32)
	if err != nil {
		return 0, err
	}
	b := e<<23 | uint32(mant)&(1<<23-1)
	if neg {
		b |= 1 << 31
	}
	return math.Float32frombits(b), nil
}

// Float80 returns x as raw x87 extended-float fields. The leading
// mantissa bit stays explicit.
func (x Rational) Float80() (se uint16, mant uint64, err error) {
	mant, e, neg, err := x.floatParts(binary80)
	if err != nil {
		return 0, 0, err
	}
	se = uint16(e)
	if neg {
		se |= 1 << 15
	}
	return se, mant, nil
}
