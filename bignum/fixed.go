// bignum/fixed.go
//
// Fixed-point control. A fixed Rational keeps its denominator at a
// chosen target: base^pointpos when fixed by radix places, or an
// explicit integer denominator. Every setter that changes the target
// immediately force-reduces the value with the configured rounding.
package bignum

// Base returns the display base.
func (x Rational) Base() uint32 { return x.displayBase() }

// SetBase sets the display base, rejecting bases outside [2, MaxBase]
// with BaseOutOfRange. A radix-fixed number is re-forced to the new
// base^pointpos denominator.
func (x *Rational) SetBase(base uint32) error {
	if base < 2 || base > MaxBase {
		return newError(BaseOutOfRange, "SetBase")
	}
	x.base = base
	x.p.base = base
	x.q.base = base
	if x.fix && x.fixKind() == FixRadix {
		*x = x.reduce()
	}
	return nil
}

// PointPos returns the number of radix places a radix-fixed number
// keeps.
func (x Rational) PointPos() uint { return x.pointpos }

// SetPointPos sets the radix-fixed point position and re-forces the
// denominator when fixed.
func (x *Rational) SetPointPos(pointpos uint) {
	x.pointpos = pointpos
	if x.fix {
		*x = x.reduce()
	}
}

// MaxRadix returns the maximum significant fractional digits rendered.
// The limit holds in fixed mode too; a radix-fixed value pads with zeros
// from there up to pointpos places.
func (x Rational) MaxRadix() uint { return x.maxradix }

// SetMaxRadix sets the maximum significant fractional digits.
func (x *Rational) SetMaxRadix(maxradix uint) { x.maxradix = maxradix }

// Fixed reports whether fixed-point mode is on.
func (x Rational) Fixed() bool { return x.fix }

// SetFixed turns fixed-point mode on or off. Turning it on forces the
// denominator to the current target; turning it off reduces normally.
func (x *Rational) SetFixed(fixed bool) {
	x.fix = fixed
	*x = x.reduce()
}

// FixType returns how the fixed denominator is chosen.
func (x Rational) FixType() FixType { return x.fixKind() }

// SetFixType selects how the fixed denominator is chosen and re-forces
// the value when fixed.
func (x *Rational) SetFixType(t FixType) {
	x.fixtype = t
	if x.fix {
		*x = x.reduce()
	}
}

// FixQ returns the denominator a fixed value is forced to: the explicit
// denominator in DENOM mode, base^pointpos in RADIX mode.
func (x Rational) FixQ() Rational { return RationalFromBigUInt(x.targetQ()) }

// SetFixQ sets an explicit forced denominator and switches to DENOM
// mode. Non-integer denominators fail with NonInteger.
func (x *Rational) SetFixQ(q Rational) error {
	q = q.canon()
	if !q.IsInteger() {
		return newError(NonInteger, "SetFixQ")
	}
	x.fixq = q.p.clone()
	x.fixtype = FixDenom
	if x.fix {
		*x = x.reduce()
	}
	return nil
}

// Format returns the default output style.
func (x Rational) Format() Format {
	if x.format == "" {
		return FormatDefault
	}
	return x.format
}

// SetFormat sets the default output style.
func (x *Rational) SetFormat(f Format) { x.format = f }

// Round returns the rounding policy.
func (x Rational) Round() RoundMode { return x.rounding() }

// SetRound sets the rounding policy applied when precision is dropped.
func (x *Rational) SetRound(m RoundMode) { x.round = m }
