// bignum/rational_string.go
package bignum

import (
	"strings"
)

// Set replaces x with the number parsed from s, keeping x's
// configuration. x is unchanged on failure.
//
// The grammar is [sign][base-prefix]digits[.digits][e[sign]digits].
// Base prefixes 0x, 0b and a bare leading 0 select base 16, 2 and 8,
// and are honored only in autobase mode; otherwise the display base is
// used. A p/q fraction form is also accepted, matching the FRACTION
// output exactly. BadFormat errors carry the 0-based offset of the
// offending character.
func (x *Rational) Set(s string, autobase bool) error {
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		return x.setFraction(s, idx, autobase)
	}

	r := x.canon()

	var num, rad, exp strings.Builder
	pNum := true
	pExp := true
	numstart, radstart, expstart := 0, 0, 0
	numstarted, radstarted, expstarted := false, false, false
	base := r.displayBase()

	const (
		modeNum = iota
		modeRad
		modeExp
	)
	mode := modeNum
	sNum := false
	sExp := false
	diggiven := false
	start := 0

	// Sign before any base prefix.
	if len(s) > 1 {
		switch s[0] {
		case '+':
			sNum = true
			start = 1
		case '-':
			sNum = true
			pNum = false
			start = 1
		}
	}

	if autobase {
		rest := s[start:]
		switch {
		case len(rest) > 2 && (strings.HasPrefix(rest, "0x") || strings.HasPrefix(rest, "0X")):
			base = 16
			start += 2
		case len(rest) > 2 && (strings.HasPrefix(rest, "0b") || strings.HasPrefix(rest, "0B")):
			base = 2
			start += 2
		case len(rest) > 1 && rest[0] == '0' && (len(rest) < 3 || rest[1] != '.'):
			base = 8
			start++
		}
	}

	for i := start; i < len(s); i++ {
		switch s[i] {

		case '.':
			switch mode {
			case modeNum:
				mode = modeRad
			case modeRad:
				return newBadFormat("Radix point given for a second time", i).WithNumber(s)
			case modeExp:
				return newBadFormat("Radix point given in exponent", i).WithNumber(s)
			}

		case 'e', 'E':
			if mode == modeExp {
				return newBadFormat("Exponent symbol given for a second time", i).WithNumber(s)
			}
			mode = modeExp
			diggiven = false

		case '+', '-':
			if diggiven {
				return newBadFormat("Sign given after digits", i).WithNumber(s)
			}
			switch mode {
			case modeNum:
				if sNum {
					return newBadFormat("Sign of number given for a second time", i).WithNumber(s)
				}
				pNum = s[i] == '+'
				sNum = true
			case modeRad:
				return newBadFormat("Sign given after radix point", i).WithNumber(s)
			case modeExp:
				if sExp {
					return newBadFormat("Sign of exponent given for a second time", i).WithNumber(s)
				}
				pExp = s[i] == '+'
				sExp = true
			}

		default:
			switch mode {
			case modeNum:
				if !numstarted {
					numstarted = true
					numstart = i
				}
				num.WriteByte(s[i])
			case modeRad:
				if !radstarted {
					radstarted = true
					radstart = i
				}
				rad.WriteByte(s[i])
			case modeExp:
				if !expstarted {
					expstarted = true
					expstart = i
				}
				exp.WriteByte(s[i])
			}
			diggiven = true
		}
	}

	// Leading whole-part and exponent zeros are noise; trailing radix
	// zeros are noise.
	nums := strings.TrimLeft(num.String(), "0")
	rads := strings.TrimRight(rad.String(), "0")
	exps := strings.TrimLeft(exp.String(), "0")

	// The radix digits fold into the numerator; their count feeds the
	// effective exponent.
	nexp := uint64(len(rads))

	var p BigUInt
	if err := p.SetBase(base); err != nil {
		return err
	}
	if err := p.SetString(nums + rads); err != nil {
		if e, ok := err.(*Error); ok && e.Kind == BadFormat {
			pos := e.Position
			if pos < len(nums) {
				// Skip the leading zeros trimmed off the whole part.
				pos += numstart + len(num.String()) - len(nums)
			} else {
				pos = radstart + (pos - len(nums))
			}
			return newBadFormat(e.Problem, pos).WithNumber(s)
		}
		return err
	}

	var expn BigUInt
	if err := expn.SetBase(base); err != nil {
		return err
	}
	if err := expn.SetString(exps); err != nil {
		if e, ok := err.(*Error); ok && e.Kind == BadFormat {
			return newBadFormat(e.Problem, e.Position+expstart+len(exp.String())-len(exps)).WithNumber(s)
		}
		return err
	}

	// Fold the counted radix places into the user exponent. A negative
	// effective exponent becomes the denominator; a positive one scales
	// the numerator.
	expr := NewBigUInt(nexp)
	if pExp {
		if expn.Cmp(expr) >= 0 {
			expn, _ = expn.Sub(expr)
		} else {
			pExp = false
			expn, _ = expr.Sub(expn)
		}
	} else {
		expn = expn.Add(expr)
	}

	q := NewBigUInt(1)
	if !expn.IsZero() {
		scale := NewBigUInt(uint64(base)).Pow(expn)
		if pExp {
			p = p.Mul(scale)
		} else {
			q = scale
		}
	}

	r.p = p
	r.q = q
	r.positive = pNum
	*x = r.reduce()
	return nil
}

// setFraction parses the p/q form produced by the FRACTION output.
func (x *Rational) setFraction(s string, idx int, autobase bool) error {
	numPart := s[:idx]
	denPart := s[idx+1:]

	num := x.canon()
	num.fix = false
	if err := num.Set(numPart, autobase); err != nil {
		return err
	}
	den := x.canon()
	den.fix = false
	if err := den.Set(denPart, autobase); err != nil {
		if e, ok := err.(*Error); ok && e.Kind == BadFormat {
			return newBadFormat(e.Problem, e.Position+idx+1).WithNumber(s)
		}
		return err
	}
	if den.IsZero() {
		return newError(DivByZero, "Set")
	}

	r := num.divExact(den).withConfigOf(*x)
	*x = r.reduce()
	return nil
}

// String renders x in its configured default format.
func (x Rational) String() string {
	return x.StringFormat(FormatDefault)
}

// StringFormat renders x in the given output style; FormatDefault means
// the configured one.
func (x Rational) StringFormat(format Format) string {
	x = x.canon()

	f := format
	if f == FormatDefault || f == "" {
		f = x.format
	}

	switch f {
	case FormatBoth:
		return x.StringFormat(FormatRadix) + " " + x.StringFormat(FormatFraction)

	case FormatFraction:
		base := x.displayBase()
		s := x.p.render(base) + "/" + x.q.render(base)
		if !x.positive && !x.p.IsZero() {
			s = "-" + s
		}
		return s

	default:
		return x.radixString()
	}
}

// radixString renders x as a radix-point string: whole part, then
// successive fraction digits by repeated scaling of the remainder,
// counting significant digits up to maxradix, with the configured
// rounding applied to whatever is dropped.
func (x Rational) radixString() string {
	base := x.displayBase()

	numeric, rem, _ := x.p.QuoRem(x.q)
	radixpos := 0

	tq := x.targetQ()
	tq1, tqok := tq.uint64Value()
	if (x.fix && !(tqok && tq1 == 1)) || (!x.fix && !rem.IsZero()) {
		var sigdigs uint
		sigstart := !numeric.IsZero()

		for sigdigs < x.maxradix && !rem.IsZero() {
			// Scale the next digit above the point and pull it off.
			rem = rem.mulDigit(digit(base))
			d, r2, _ := rem.QuoRem(x.q)
			rem = r2

			numeric = numeric.mulDigit(digit(base)).Add(d)
			radixpos++

			// Zeros before the first non-zero fraction digit are
			// placeholders, not significant digits.
			if sigstart || !d.IsZero() {
				sigdigs++
				sigstart = true
			}
		}

		if !rem.IsZero() {
			one := NewBigUInt(1)
			r2 := rem.Shl(1)
			switch x.rounding() {
			case RoundUp:
				if x.positive {
					numeric = numeric.Add(one)
				}
			case RoundDown:
				if !x.positive {
					numeric = numeric.Add(one)
				}
			case RoundTowardZero:
			case RoundFromZero:
				numeric = numeric.Add(one)
			case RoundNormal:
				if r2.Cmp(x.q) >= 0 {
					numeric = numeric.Add(one)
				}
			default: // EVEN
				if c := r2.Cmp(x.q); c > 0 || (c == 0 && numeric.IsOdd()) {
					numeric = numeric.Add(one)
				}
			}
		}

		// A radix-fixed number shows exactly pointpos places.
		if x.fix && x.fixKind() == FixRadix && radixpos < int(x.pointpos) {
			pad := NewBigUInt(uint64(base)).Pow(NewBigUInt(uint64(int(x.pointpos) - radixpos)))
			numeric = numeric.Mul(pad)
			radixpos = int(x.pointpos)
		}
	}

	s := numeric.render(base)

	// Placeholder zeros so the point has a digit on its left.
	if radixpos >= len(s) {
		s = strings.Repeat("0", radixpos-len(s)+1) + s
	}
	if radixpos > 0 {
		s = s[:len(s)-radixpos] + "." + s[len(s)-radixpos:]
	}

	// A floating value drops insignificant zeros and a dangling point.
	if !x.fix && radixpos > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	if !x.positive && !x.p.IsZero() {
		s = "-" + s
	}
	return s
}
