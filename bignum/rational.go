// bignum/rational.go
package bignum

import (
	"modernc.org/mathutil"
)

// RoundMode represents the rounding policy applied when precision is
// dropped
type RoundMode string

const (
	RoundEven       RoundMode = "EVEN"
	RoundNormal     RoundMode = "NORMAL"
	RoundUp         RoundMode = "UP"
	RoundDown       RoundMode = "DOWN"
	RoundTowardZero RoundMode = "TOWARD_ZERO"
	RoundFromZero   RoundMode = "FROM_ZERO"
)

// Format represents an output style
type Format string

const (
	FormatDefault  Format = "DEFAULT"
	FormatRadix    Format = "RADIX"
	FormatFraction Format = "FRACTION"
	FormatBoth     Format = "BOTH"
)

// FixType represents how a fixed-point denominator is chosen
type FixType string

const (
	FixRadix FixType = "RADIX" // denominator forced to base^pointpos
	FixDenom FixType = "DENOM" // denominator forced to an explicit value
)

// Rational is a signed rational number of unbounded magnitude and
// precision, held as a reduced fraction p/q with q >= 1. Zero is
// canonically +0/1. The zero value is a usable integer zero; NewRational
// returns a zero with the default configuration (base 10, maxradix 10,
// round EVEN, radix format).
type Rational struct {
	positive bool
	p, q     BigUInt

	base     uint32 // display base; 0 stands for 10
	pointpos uint
	maxradix uint
	fix      bool
	fixtype  FixType // "" stands for RADIX
	fixq     BigUInt // forced denominator for FixDenom
	format   Format  // "" stands for DEFAULT
	round    RoundMode
}

// NewRational returns zero with the default configuration.
func NewRational() Rational {
	return Rational{
		positive: true,
		q:        NewBigUInt(1),
		maxradix: 10,
	}
}

// RationalFromBigUInt returns n/1.
func RationalFromBigUInt(n BigUInt) Rational {
	r := NewRational()
	r.p = n.clone()
	return r
}

// RationalFromUint64 returns v/1.
func RationalFromUint64(v uint64) Rational {
	return RationalFromBigUInt(NewBigUInt(v))
}

// RationalFromInt64 returns v/1 with its sign.
func RationalFromInt64(v int64) Rational {
	r := NewRational()
	if v < 0 {
		r.positive = false
		r.p = NewBigUInt(uint64(-(v + 1)) + 1)
	} else {
		r.p = NewBigUInt(uint64(v))
	}
	return r
}

// ParseRational parses a number with the default configuration. See Set
// for the accepted grammar.
func ParseRational(s string, autobase bool) (Rational, error) {
	r := NewRational()
	if err := r.Set(s, autobase); err != nil {
		return Rational{}, err
	}
	return r, nil
}

// canon repairs the zero value: a zero denominator stands for 1, and
// zero is positive.
func (x Rational) canon() Rational {
	if x.q.IsZero() {
		x.q = NewBigUInt(1)
	}
	if x.p.IsZero() && !x.fix {
		x.q = NewBigUInt(1)
	}
	if x.p.IsZero() {
		x.positive = true
	}
	return x
}

func (x Rational) displayBase() uint32 {
	if x.base == 0 {
		return 10
	}
	return x.base
}

func (x Rational) rounding() RoundMode {
	if x.round == "" {
		return RoundEven
	}
	return x.round
}

func (x Rational) fixKind() FixType {
	if x.fixtype == "" {
		return FixRadix
	}
	return x.fixtype
}

// targetQ returns the denominator a fixed number is forced to.
func (x Rational) targetQ() BigUInt {
	if x.fixKind() == FixRadix {
		return NewBigUInt(uint64(x.displayBase())).Pow(NewBigUInt(uint64(x.pointpos)))
	}
	if x.fixq.IsZero() {
		return NewBigUInt(1)
	}
	return x.fixq
}

// withConfigOf copies y's display and fixed-point configuration onto x,
// leaving x's value alone.
func (x Rational) withConfigOf(y Rational) Rational {
	x.base = y.base
	x.pointpos = y.pointpos
	x.maxradix = y.maxradix
	x.fix = y.fix
	x.fixtype = y.fixtype
	x.fixq = y.fixq
	x.format = y.format
	x.round = y.round
	return x
}

// gcd returns the greatest common divisor of a and b. Word-sized values
// take the machine-arithmetic fast path.
func gcd(a, b BigUInt) BigUInt {
	if av, ok := a.uint64Value(); ok {
		if bv, ok2 := b.uint64Value(); ok2 {
			return NewBigUInt(mathutil.GCDUint64(av, bv))
		}
	}
	for !b.IsZero() {
		r, _ := a.Mod(b)
		a, b = b, r
	}
	return a
}

// reduce brings x to canonical form: gcd-reduced when floating, forced
// to the target denominator when fixed.
func (x Rational) reduce() Rational {
	x = x.canon()
	if x.fix {
		return x.forceReduce(x.targetQ())
	}
	if x.p.IsZero() {
		return x
	}
	g := gcd(x.p, x.q)
	if gv, ok := g.uint64Value(); !ok || gv != 1 {
		x.p, _ = x.p.Div(g)
		x.q, _ = x.q.Div(g)
	}
	return x
}

// forceReduce rescales x to denominator Q, rounding the numerator by the
// configured policy.
func (x Rational) forceReduce(Q BigUInt) Rational {
	if Q.IsZero() {
		Q = NewBigUInt(1)
	}
	if x.q.Equal(Q) {
		return x
	}

	pq := x.p.Mul(Q)
	newp, rem, _ := pq.QuoRem(x.q)

	if !rem.IsZero() {
		one := NewBigUInt(1)
		r2 := rem.Shl(1)
		switch x.rounding() {
		case RoundUp:
			if x.positive {
				newp = newp.Add(one)
			}
		case RoundDown:
			if !x.positive {
				newp = newp.Add(one)
			}
		case RoundTowardZero:
		case RoundFromZero:
			newp = newp.Add(one)
		case RoundNormal:
			if r2.Cmp(x.q) >= 0 {
				newp = newp.Add(one)
			}
		default: // EVEN
			if c := r2.Cmp(x.q); c > 0 || (c == 0 && newp.IsOdd()) {
				newp = newp.Add(one)
			}
		}
	}

	x.p = newp
	x.q = Q
	if x.p.IsZero() {
		x.positive = true
	}
	return x
}

// normalized brings a and b to their common (lcm) denominator.
func normalized(a, b Rational) (Rational, Rational) {
	if a.q.Equal(b.q) {
		return a, b
	}
	g := gcd(a.q, b.q)
	aq, _ := a.q.Div(g)
	bq, _ := b.q.Div(g)
	lcm := aq.Mul(b.q)
	a.p = a.p.Mul(bq)
	b.p = b.p.Mul(aq)
	a.q = lcm
	b.q = lcm
	return a, b
}

// IsZero reports whether x == 0.
func (x Rational) IsZero() bool { return x.p.IsZero() }

// IsPositive reports the sign; zero is positive.
func (x Rational) IsPositive() bool { return x.canon().positive }

// IsInteger reports whether x is a whole number.
func (x Rational) IsInteger() bool {
	x = x.canon()
	v, ok := x.q.uint64Value()
	return ok && v == 1
}

// IsEven reports whether x is an even integer.
func (x Rational) IsEven() bool { return x.IsInteger() && x.p.IsEven() }

// IsOdd reports whether x is an odd integer.
func (x Rational) IsOdd() bool { return x.IsInteger() && x.p.IsOdd() }

// Num returns the numerator.
func (x Rational) Num() BigUInt { return x.canon().p.clone() }

// Den returns the denominator.
func (x Rational) Den() BigUInt { return x.canon().q.clone() }

// Neg returns -x.
func (x Rational) Neg() Rational {
	x = x.canon()
	if !x.p.IsZero() {
		x.positive = !x.positive
	}
	return x
}

// Abs returns |x|.
func (x Rational) Abs() Rational {
	x = x.canon()
	x.positive = true
	return x
}

// Add returns x + y. The result carries x's configuration.
func (x Rational) Add(y Rational) Rational {
	a, b := normalized(x.canon(), y.canon())
	if a.positive == b.positive {
		a.p = a.p.Add(b.p)
	} else if a.p.Cmp(b.p) >= 0 {
		a.p, _ = a.p.Sub(b.p)
	} else {
		a.p, _ = b.p.Sub(a.p)
		a.positive = b.positive
	}
	if a.p.IsZero() {
		a.positive = true
	}
	return a.reduce()
}

// Sub returns x - y.
func (x Rational) Sub(y Rational) Rational {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Rational) Mul(y Rational) Rational {
	x = x.canon()
	y = y.canon()
	x.p = x.p.Mul(y.p)
	x.q = x.q.Mul(y.q)
	x.positive = x.positive == y.positive
	if x.p.IsZero() {
		x.positive = true
	}
	return x.reduce()
}

// Div returns x / y, failing with DivByZero when y is zero.
func (x Rational) Div(y Rational) (Rational, error) {
	y = y.canon()
	if y.p.IsZero() {
		return Rational{}, newError(DivByZero, "div")
	}
	recip := y
	recip.p, recip.q = y.q, y.p
	return x.Mul(recip), nil
}

// divExact divides by a divisor the caller knows is non-zero.
func (x Rational) divExact(y Rational) Rational {
	r, _ := x.Div(y)
	return r
}

// Mod returns x % y over integers. Non-integer operands fail with
// NonInteger, a zero divisor with DivByZero. The result keeps x's sign.
func (x Rational) Mod(y Rational) (Rational, error) {
	x = x.canon()
	y = y.canon()
	if y.p.IsZero() {
		return Rational{}, newError(DivByZero, "mod")
	}
	if !x.IsInteger() || !y.IsInteger() {
		return Rational{}, newError(NonInteger, "mod")
	}
	r, err := x.p.Mod(y.p)
	if err != nil {
		return Rational{}, err
	}
	x.p = r
	x.q = NewBigUInt(1)
	if x.p.IsZero() {
		x.positive = true
	}
	return x.reduce(), nil
}

// Inc adds one in place.
func (x *Rational) Inc() {
	*x = x.Add(RationalFromUint64(1))
}

// Dec subtracts one in place.
func (x *Rational) Dec() {
	*x = x.Sub(RationalFromUint64(1))
}

// Cmp compares x and y, returning -1 if x < y, 0 if equal, 1 if x > y.
func (x Rational) Cmp(y Rational) int {
	x = x.canon()
	y = y.canon()
	if x.p.IsZero() {
		switch {
		case y.p.IsZero():
			return 0
		case y.positive:
			return -1
		}
		return 1
	}
	if y.p.IsZero() {
		if x.positive {
			return 1
		}
		return -1
	}
	if x.positive != y.positive {
		if x.positive {
			return 1
		}
		return -1
	}
	a, b := normalized(x, y)
	c := a.p.Cmp(b.p)
	if !x.positive {
		c = -c
	}
	return c
}

// Equal reports whether x == y in value.
func (x Rational) Equal(y Rational) bool { return x.Cmp(y) == 0 }

// Truncate returns x with the fractional part dropped.
func (x Rational) Truncate() Rational {
	x = x.canon()
	if x.IsInteger() {
		return x
	}
	p, _, _ := x.p.QuoRem(x.q)
	x.p = p
	x.q = NewBigUInt(1)
	if x.p.IsZero() {
		x.positive = true
	}
	return x
}

// Ceil returns the smallest integer >= x.
func (x Rational) Ceil() Rational {
	x = x.canon()
	if x.IsInteger() {
		return x
	}
	p, r, _ := x.p.QuoRem(x.q)
	if x.positive && !r.IsZero() {
		p = p.Add(NewBigUInt(1))
	}
	x.p = p
	x.q = NewBigUInt(1)
	if x.p.IsZero() {
		x.positive = true
	}
	return x
}

// Floor returns the largest integer <= x.
func (x Rational) Floor() Rational {
	x = x.canon()
	if x.IsInteger() {
		return x
	}
	p, r, _ := x.p.QuoRem(x.q)
	if !x.positive && !r.IsZero() {
		p = p.Add(NewBigUInt(1))
	}
	x.p = p
	x.q = NewBigUInt(1)
	if x.p.IsZero() {
		x.positive = true
	}
	return x
}

// absOne reports whether |x| == 1.
func (x Rational) absOne() bool {
	pv, ok := x.p.uint64Value()
	if !ok || pv != 1 {
		return false
	}
	qv, ok := x.q.uint64Value()
	return ok && qv == 1
}

// plain strips configuration down to defaults, for internal iteration
// values that must not be force-reduced mid-computation.
func (x Rational) plain() Rational {
	return Rational{positive: x.positive, p: x.p, q: x.q}
}

// Pow returns x raised to e. Integer exponents raise p and q directly;
// fractional exponents split e into y/z, raise to y and take the z-th
// root. A negative x with an even root index fails with Complex.
func (x Rational) Pow(e Rational) (Rational, error) {
	x = x.canon()
	e = e.canon()

	if e.IsZero() {
		r := RationalFromUint64(1).withConfigOf(x)
		return r.reduce(), nil
	}
	if x.IsZero() {
		return x.reduce(), nil
	}

	if e.IsInteger() {
		r := x.plain()
		if !x.absOne() && !e.absOne() {
			r.p = x.p.Pow(e.p)
			r.q = x.q.Pow(e.p)
			r = r.reduce()
		}
		// Positive base stays positive; an even exponent erases the sign.
		r.positive = x.positive || e.p.IsEven()
		if !e.positive {
			r.p, r.q = r.q, r.p
		}
		return r.withConfigOf(x).reduce(), nil
	}

	// x^(y/z): raise to the y-th power, then take the z-th root.
	xy, err := x.plain().Pow(RationalFromBigUInt(e.p))
	if err != nil {
		return Rational{}, err
	}
	r, err := xy.rootInt(RationalFromBigUInt(e.q), x)
	if err != nil {
		return Rational{}, err
	}
	if !e.positive {
		if r.IsZero() {
			return Rational{}, newError(DivByZero, "pow")
		}
		r.p, r.q = r.q, r.p
	}
	return r.withConfigOf(x).reduce(), nil
}

// Root returns the n-th root of x. n must be a non-zero integer index;
// a zero index fails with DivByZero, an even index of a negative value
// with Complex, and an index beyond the machine word with RootTooLarge.
// The result is accurate to base^(-maxradix) in x's display base.
func (x Rational) Root(n Rational) (Rational, error) {
	x = x.canon()
	n = n.canon()

	if n.IsZero() {
		return Rational{}, newError(DivByZero, "root")
	}
	if !n.IsInteger() {
		inv, err := RationalFromUint64(1).Div(n)
		if err != nil {
			return Rational{}, err
		}
		return x.Pow(inv)
	}
	r, err := x.rootInt(n.Abs(), x)
	if err != nil {
		return Rational{}, err
	}
	if !n.positive {
		if r.IsZero() {
			return Rational{}, newError(DivByZero, "root")
		}
		r.p, r.q = r.q, r.p
	}
	return r.withConfigOf(x).reduce(), nil
}

// rootInt takes the integer n-th root of x by Newton iteration, reading
// precision configuration (base, maxradix) from cfg.
func (x Rational) rootInt(n Rational, cfg Rational) (Rational, error) {
	x = x.canon()
	n = n.canon()

	if x.IsZero() {
		return x.plain(), nil
	}
	if !x.positive && n.IsEven() {
		return Rational{}, newError(Complex, "root")
	}
	if _, ok := n.p.uint64Value(); !ok {
		return Rational{}, newError(RootTooLarge, "root")
	}

	// Accuracy is one unit in the last requested radix place.
	epsQ := NewBigUInt(uint64(cfg.displayBase())).Pow(NewBigUInt(uint64(cfg.maxradix)))
	eps := Rational{positive: true, p: NewBigUInt(1), q: epsQ}

	absx := x.Abs().plain()
	one := RationalFromUint64(1).plain()
	two := RationalFromUint64(2).plain()

	// Initial guess: doubling lands within one squaring of the root, so
	// Newton's correct bits double from the first iteration.
	guess := one
	if absx.Cmp(one) > 0 {
		guess = two
		for {
			pw, err := guess.plain().Pow(n.plain())
			if err != nil {
				return Rational{}, err
			}
			if pw.Cmp(absx) >= 0 {
				break
			}
			guess = guess.Mul(two)
		}
	}

	nmo := n.plain().Sub(one) // n - 1 >= 0
	np := n.plain()
	for {
		lastguess := guess
		pw, err := guess.Pow(nmo)
		if err != nil {
			return Rational{}, err
		}
		t, err := absx.Div(pw)
		if err != nil {
			return Rational{}, err
		}
		guess = t.Add(nmo.Mul(guess)).divExact(np)

		// Newton doubles the correct bits each round; capping the
		// denominator keeps the working precision from snowballing.
		if guess.q.Cmp(epsQ) > 0 {
			guess = guess.forceReduce(epsQ)
		}

		if guess.Sub(lastguess).Abs().Cmp(eps) < 0 {
			break
		}
	}

	guess = guess.reduce()
	if !x.positive {
		guess.positive = false
	}
	return guess, nil
}

// Shl returns x shifted left by the given number of bits, multiplying by
// 2^bits. The count must be an integer; negative counts shift right.
func (x Rational) Shl(bits Rational) (Rational, error) {
	return x.shift(bits, true)
}

// Shr returns x shifted right by the given number of bits, dividing by
// 2^bits. The count must be an integer; negative counts shift left.
func (x Rational) Shr(bits Rational) (Rational, error) {
	return x.shift(bits, false)
}

func (x Rational) shift(bits Rational, left bool) (Rational, error) {
	x = x.canon()
	bits = bits.canon()
	if x.IsZero() || bits.IsZero() {
		return x, nil
	}
	if !bits.IsInteger() {
		return Rational{}, newError(NonInteger, "shift")
	}
	nb, ok := bits.p.uint64Value()
	if !ok {
		return Rational{}, newError(ScalarOverflow, "shift")
	}
	n := uint(nb)
	if left == bits.positive {
		x.p = x.p.Shl(n)
	} else {
		x.q = x.q.Shl(n)
	}
	return x.reduce(), nil
}
