package bignum

import (
	"testing"
)

func TestFixedRadixPlaces(t *testing.T) {
	r := mustRat(t, "1/3")
	r.SetPointPos(2)
	r.SetFixed(true)

	if got := r.StringFormat(FormatFraction); got != "33/100" {
		t.Errorf("expected 33/100, got %q", got)
	}
	if got := r.String(); got != "0.33" {
		t.Errorf("expected 0.33, got %q", got)
	}

	// Whole numbers pad out to the fixed places.
	two := mustRat(t, "2")
	two.SetPointPos(2)
	two.SetFixed(true)
	if got := two.String(); got != "2.00" {
		t.Errorf("expected 2.00, got %q", got)
	}

	zero := mustRat(t, "0")
	zero.SetPointPos(2)
	zero.SetFixed(true)
	if got := zero.String(); got != "0.00" {
		t.Errorf("expected 0.00, got %q", got)
	}
}

func TestFixedArithmeticStaysFixed(t *testing.T) {
	a := mustRat(t, "1.24")
	a.SetPointPos(2)
	a.SetFixed(true)

	b := mustRat(t, "2.37")
	sum := a.Add(b)
	if got := sum.String(); got != "3.61" {
		t.Errorf("expected 3.61, got %q", got)
	}

	// A result that needs rounding lands on the fixed grid.
	third := mustRat(t, "1/3")
	sum = a.Add(third)
	if got := sum.StringFormat(FormatFraction); got != "157/100" {
		t.Errorf("expected 157/100, got %q", got)
	}
}

func TestFixedDenominator(t *testing.T) {
	r := mustRat(t, "1/3")
	if err := r.SetFixQ(mustRat(t, "7")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.SetFixed(true)

	if got := r.StringFormat(FormatFraction); got != "2/7" {
		t.Errorf("expected 2/7, got %q", got)
	}
	if r.FixType() != FixDenom {
		t.Errorf("expected DENOM mode, got %v", r.FixType())
	}
}

func TestFixQRejectsNonInteger(t *testing.T) {
	r := mustRat(t, "1/3")
	err := r.SetFixQ(mustRat(t, "1/2"))
	if KindOf(err) != NonInteger {
		t.Errorf("expected NonInteger, got %v", err)
	}
}

func TestFixedBaseChange(t *testing.T) {
	// 1/2 fixed at two decimal places is 50/100; in base 2 the forced
	// denominator becomes 2^2.
	r := mustRat(t, "1/2")
	r.SetPointPos(2)
	r.SetFixed(true)
	if got := r.StringFormat(FormatFraction); got != "50/100" {
		t.Errorf("expected 50/100, got %q", got)
	}

	if err := r.SetBase(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.String(); got != "0.10" {
		t.Errorf("expected 0.10, got %q", got)
	}
}

func TestUnfixReduces(t *testing.T) {
	r := mustRat(t, "1/2")
	r.SetPointPos(2)
	r.SetFixed(true)
	r.SetFixed(false)
	if got := r.StringFormat(FormatFraction); got != "1/2" {
		t.Errorf("expected 1/2 after unfixing, got %q", got)
	}
}

func TestFixedRoundingPolicy(t *testing.T) {
	tests := []struct {
		in   string
		mode RoundMode
		out  string
	}{
		{"1/3", RoundEven, "33/100"},
		{"2/3", RoundEven, "67/100"},
		{"1/800", RoundEven, "0/100"},     // 0.00125 -> 0.00
		{"1/200", RoundEven, "0/100"},     // 0.005 ties to even 0
		{"3/200", RoundEven, "2/100"},     // 0.015 ties to even 2
		{"1/200", RoundNormal, "1/100"},   // 0.005 rounds half up
		{"1/800", RoundFromZero, "1/100"},
		{"-1/800", RoundDown, "-1/100"},
		{"-1/800", RoundUp, "0/100"},
	}

	for _, tt := range tests {
		t.Run(tt.in+" "+string(tt.mode), func(t *testing.T) {
			r := mustRat(t, tt.in)
			r.SetRound(tt.mode)
			r.SetPointPos(2)
			r.SetFixed(true)
			if got := r.StringFormat(FormatFraction); got != tt.out {
				t.Errorf("expected %q, got %q", tt.out, got)
			}
		})
	}
}
