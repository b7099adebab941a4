package bignum

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func mustRat(t *testing.T, s string) Rational {
	t.Helper()
	r, err := ParseRational(s, true)
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %v", s, err)
	}
	return r
}

func TestRationalDefaults(t *testing.T) {
	r := NewRational()
	if !r.IsZero() || !r.IsPositive() || !r.IsInteger() {
		t.Errorf("default should be +0/1, got %# v", pretty.Formatter(r))
	}
	if r.Base() != 10 || r.MaxRadix() != 10 || r.Round() != RoundEven || r.Fixed() {
		t.Errorf("unexpected default configuration: %# v", pretty.Formatter(r))
	}
	if got := r.String(); got != "0" {
		t.Errorf("expected \"0\", got %q", got)
	}
	if got := r.StringFormat(FormatFraction); got != "0/1" {
		t.Errorf("expected \"0/1\", got %q", got)
	}
}

func TestRationalParseBasics(t *testing.T) {
	tests := []struct {
		in       string
		fraction string
	}{
		{"0", "0/1"},
		{"1", "1/1"},
		{"-1", "-1/1"},
		{"0.5", "1/2"},
		{"-0.1", "-1/10"},
		{"3.14159", "314159/100000"},
		{"1e3", "1000/1"},
		{"1.5e3", "1500/1"},
		{"2.5e-3", "1/400"},
		{"12.34e2", "1234/1"},
		{"1/3", "1/3"},
		{"-22/7", "-22/7"},
		{"6/4", "3/2"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r := mustRat(t, tt.in)
			if got := r.StringFormat(FormatFraction); got != tt.fraction {
				t.Errorf("expected %q, got %q", tt.fraction, got)
			}
		})
	}
}

func TestRationalParseAutobase(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"0xFF", "255/1"},
		{"0b101", "5/1"},
		{"010", "8/1"},
		{"0.5", "1/2"},
		{"-0x10", "-16/1"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r := mustRat(t, tt.in)
			if got := r.StringFormat(FormatFraction); got != tt.out {
				t.Errorf("expected %q, got %q", tt.out, got)
			}
		})
	}

	// Without autobase the prefix is just a bad character.
	var r Rational
	if err := r.Set("0x10", false); KindOf(err) != BadFormat {
		t.Errorf("expected BadFormat without autobase, got %v", err)
	}
}

func TestRationalParseErrors(t *testing.T) {
	tests := []struct {
		in      string
		problem string
		pos     int
	}{
		{"1.2.3", "Radix point given for a second time", 3},
		{"1e2.3", "Radix point given in exponent", 3},
		{"1e2e3", "Exponent symbol given for a second time", 3},
		{"12+3", "Sign given after digits", 2},
		{"+-1", "Sign of number given for a second time", 1},
		{".+1", "Sign given after radix point", 1},
		{"1e+-2", "Sign of exponent given for a second time", 3},
		{"12x4", "Unrecognized character", 2},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var r Rational
			err := r.Set(tt.in, false)
			if err == nil {
				t.Fatalf("expected error for %q", tt.in)
			}
			e, ok := err.(*Error)
			if !ok || e.Kind != BadFormat {
				t.Fatalf("expected BadFormat, got %v", err)
			}
			if e.Problem != tt.problem {
				t.Errorf("expected problem %q, got %q", tt.problem, e.Problem)
			}
			if e.Position != tt.pos {
				t.Errorf("expected position %d, got %d", tt.pos, e.Position)
			}
			// A failed Set leaves the value untouched.
			if !r.IsZero() {
				t.Errorf("value modified by failed Set: %s", r.String())
			}
		})
	}
}

func TestRationalArithmetic(t *testing.T) {
	tests := []struct {
		a, op, b, out string
	}{
		{"1/3", "+", "1/6", "1/2"},
		{"-0.1", "+", "0.1", "0/1"},
		{"1/2", "-", "1/3", "1/6"},
		{"1/3", "-", "1/2", "-1/6"},
		{"-0.1", "*", "10", "-1/1"},
		{"2/3", "*", "-6/4", "-1/1"},
		{"1/3", "/", "1/6", "2/1"},
		{"-8", "/", "2", "-4/1"},
		{"17", "%", "5", "2/1"},
		{"-17", "%", "5", "-2/1"},
	}

	for _, tt := range tests {
		t.Run(tt.a+tt.op+tt.b, func(t *testing.T) {
			a := mustRat(t, tt.a)
			b := mustRat(t, tt.b)
			var r Rational
			var err error
			switch tt.op {
			case "+":
				r = a.Add(b)
			case "-":
				r = a.Sub(b)
			case "*":
				r = a.Mul(b)
			case "/":
				r, err = a.Div(b)
			case "%":
				r, err = a.Mod(b)
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := r.StringFormat(FormatFraction); got != tt.out {
				t.Errorf("expected %q, got %q", tt.out, got)
			}
		})
	}
}

func TestRationalArithmeticErrors(t *testing.T) {
	one := mustRat(t, "1")
	zero := mustRat(t, "0")
	half := mustRat(t, "1/2")

	if _, err := one.Div(zero); KindOf(err) != DivByZero {
		t.Errorf("div: expected DivByZero, got %v", err)
	}
	if _, err := one.Mod(zero); KindOf(err) != DivByZero {
		t.Errorf("mod zero: expected DivByZero, got %v", err)
	}
	if _, err := one.Mod(half); KindOf(err) != NonInteger {
		t.Errorf("mod half: expected NonInteger, got %v", err)
	}
	if _, err := half.Mod(one); KindOf(err) != NonInteger {
		t.Errorf("half mod: expected NonInteger, got %v", err)
	}
}

func TestRationalRingLaws(t *testing.T) {
	a := mustRat(t, "2/3")
	b := mustRat(t, "-5/7")
	c := mustRat(t, "11/13")

	if !a.Add(b).Add(c).Equal(a.Add(b.Add(c))) {
		t.Error("addition is not associative")
	}
	if !a.Add(b).Equal(b.Add(a)) {
		t.Error("addition is not commutative")
	}
	if !a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))) {
		t.Error("multiplication does not distribute")
	}
	if !a.Sub(a).IsZero() {
		t.Error("a-a is not zero")
	}
	if !a.Mul(mustRat(t, "1")).Equal(a) {
		t.Error("a*1 is not a")
	}

	// (a*b)/b == a
	q, err := a.Mul(b).Div(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.Equal(a) {
		t.Error("(a*b)/b is not a")
	}
}

func TestRationalCanonicalZero(t *testing.T) {
	a := mustRat(t, "-3/7")
	z := a.Sub(a)
	if !z.IsZero() || !z.IsPositive() {
		t.Errorf("a-a should be canonical +0, got %# v", pretty.Formatter(z))
	}
	if got := z.StringFormat(FormatFraction); got != "0/1" {
		t.Errorf("expected 0/1, got %q", got)
	}
	if got := z.String(); got != "0" {
		t.Errorf("expected 0, got %q", got)
	}
}

func TestRationalCompare(t *testing.T) {
	vals := []string{"-3", "-1/2", "-1/3", "0", "1/3", "1/2", "3"}
	for i, si := range vals {
		for j, sj := range vals {
			a := mustRat(t, si)
			b := mustRat(t, sj)
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := a.Cmp(b); got != want {
				t.Errorf("Cmp(%s, %s): expected %d, got %d", si, sj, want, got)
			}
			// Order agrees with the sign of the difference.
			d := a.Sub(b)
			switch want {
			case -1:
				if d.IsZero() || d.IsPositive() {
					t.Errorf("%s-%s should be negative", si, sj)
				}
			case 0:
				if !d.IsZero() {
					t.Errorf("%s-%s should be zero", si, sj)
				}
			case 1:
				if d.IsZero() || !d.IsPositive() {
					t.Errorf("%s-%s should be positive", si, sj)
				}
			}
		}
	}
}

func TestRationalCeilFloorTruncate(t *testing.T) {
	tests := []struct {
		in, ceil, floor, trunc string
	}{
		{"5", "5", "5", "5"},
		{"-5", "-5", "-5", "-5"},
		{"7/2", "4", "3", "3"},
		{"-7/2", "-3", "-4", "-3"},
		{"1/3", "1", "0", "0"},
		{"-1/3", "0", "-1", "0"},
		{"0", "0", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r := mustRat(t, tt.in)
			if got := r.Ceil().String(); got != tt.ceil {
				t.Errorf("ceil: expected %q, got %q", tt.ceil, got)
			}
			if got := r.Floor().String(); got != tt.floor {
				t.Errorf("floor: expected %q, got %q", tt.floor, got)
			}
			if got := r.Truncate().String(); got != tt.trunc {
				t.Errorf("truncate: expected %q, got %q", tt.trunc, got)
			}
			// floor(a) <= a <= ceil(a), both integer.
			if r.Floor().Cmp(r) > 0 || r.Ceil().Cmp(r) < 0 {
				t.Error("floor/ceil do not bracket the value")
			}
			if !r.Floor().IsInteger() || !r.Ceil().IsInteger() {
				t.Error("floor/ceil must be integer")
			}
		})
	}
}

func TestRationalPow(t *testing.T) {
	tests := []struct {
		base, exp, out string
	}{
		{"2", "100", "1267650600228229401496703205376/1"},
		{"2", "0", "1/1"},
		{"0", "5", "0/1"},
		{"2/3", "3", "8/27"},
		{"-2", "3", "-8/1"},
		{"-2", "2", "4/1"},
		{"2", "-2", "1/4"},
		{"-1", "101", "-1/1"},
		{"3/2", "-1", "2/3"},
		{"-8", "1/3", "-2/1"},
		{"4", "1/2", "2/1"},
		{"8", "2/3", "4/1"},
	}

	for _, tt := range tests {
		t.Run(tt.base+"^"+tt.exp, func(t *testing.T) {
			b := mustRat(t, tt.base)
			e := mustRat(t, tt.exp)
			r, err := b.Pow(e)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := r.StringFormat(FormatFraction); got != tt.out {
				t.Errorf("expected %q, got %q", tt.out, got)
			}
		})
	}

	// Even root of a negative value has no rational answer.
	if _, err := mustRat(t, "-4").Pow(mustRat(t, "1/2")); KindOf(err) != Complex {
		t.Errorf("expected Complex, got %v", err)
	}
}

func TestRationalRootExact(t *testing.T) {
	tests := []struct {
		in, n, out string
	}{
		{"16", "2", "4/1"},
		{"27", "3", "3/1"},
		{"9/4", "2", "3/2"},
		{"-27", "3", "-3/1"},
		{"0", "3", "0/1"},
		{"1", "17", "1/1"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			x := mustRat(t, tt.in)
			n := mustRat(t, tt.n)
			r, err := x.Root(n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := r.StringFormat(FormatFraction); got != tt.out {
				t.Errorf("expected %q, got %q", tt.out, got)
			}
		})
	}
}

func TestRationalRootSqrt2(t *testing.T) {
	x := mustRat(t, "2")
	x.SetMaxRadix(20)
	r, err := x.Root(mustRat(t, "2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := r.String(); !strings.HasPrefix(got, "1.4142135623730950488") {
		t.Errorf("sqrt(2) renders %q", got)
	}

	// result^2 - 2 is within base^(-maxradix).
	sq := r.Mul(r)
	diff := sq.Sub(x).Abs()
	eps, err := mustRat(t, "10").Pow(mustRat(t, "-20"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff.Cmp(eps) >= 0 {
		t.Errorf("sqrt(2)^2 off by %s", diff.StringFormat(FormatFraction))
	}
}

func TestRationalRootErrors(t *testing.T) {
	two := mustRat(t, "2")
	if _, err := two.Root(mustRat(t, "0")); KindOf(err) != DivByZero {
		t.Errorf("root 0: expected DivByZero, got %v", err)
	}
	if _, err := mustRat(t, "-4").Root(two); KindOf(err) != Complex {
		t.Errorf("even root of negative: expected Complex, got %v", err)
	}
	if _, err := two.Root(mustRat(t, "18446744073709551616")); KindOf(err) != RootTooLarge {
		t.Errorf("huge index: expected RootTooLarge, got %v", err)
	}
}

func TestRationalShifts(t *testing.T) {
	three := mustRat(t, "3")

	r, err := three.Shl(mustRat(t, "2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.String(); got != "12" {
		t.Errorf("3<<2: expected 12, got %q", got)
	}

	r, err = three.Shr(mustRat(t, "1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.StringFormat(FormatFraction); got != "3/2" {
		t.Errorf("3>>1: expected 3/2, got %q", got)
	}

	// A negative count shifts the other way.
	r, err = three.Shr(mustRat(t, "-2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.String(); got != "12" {
		t.Errorf("3>>-2: expected 12, got %q", got)
	}

	if _, err := three.Shl(mustRat(t, "1/2")); KindOf(err) != NonInteger {
		t.Errorf("fractional shift: expected NonInteger, got %v", err)
	}
}

func TestRationalIncDec(t *testing.T) {
	r := mustRat(t, "1/2")
	r.Inc()
	if got := r.StringFormat(FormatFraction); got != "3/2" {
		t.Errorf("inc: expected 3/2, got %q", got)
	}
	r.Dec()
	r.Dec()
	if got := r.StringFormat(FormatFraction); got != "-1/2" {
		t.Errorf("dec: expected -1/2, got %q", got)
	}
}

func TestRationalPredicates(t *testing.T) {
	if !mustRat(t, "4").IsEven() || mustRat(t, "4").IsOdd() {
		t.Error("4 should be even")
	}
	if !mustRat(t, "-3").IsOdd() {
		t.Error("-3 should be odd")
	}
	if mustRat(t, "1/2").IsEven() || mustRat(t, "1/2").IsOdd() {
		t.Error("1/2 is neither even nor odd")
	}
	if !mustRat(t, "7").IsInteger() || mustRat(t, "7/2").IsInteger() {
		t.Error("integer predicate broken")
	}
}

func TestRationalRoundTripFraction(t *testing.T) {
	vals := []string{"0", "1", "-1", "22/7", "-355/113", "123456789123456789/987654321", "1/36893488147419103232"}
	for _, s := range vals {
		t.Run(s, func(t *testing.T) {
			a := mustRat(t, s)
			b := mustRat(t, a.StringFormat(FormatFraction))
			if !a.Equal(b) {
				t.Errorf("round trip changed %s to %s", a.StringFormat(FormatFraction), b.StringFormat(FormatFraction))
			}
		})
	}
}
