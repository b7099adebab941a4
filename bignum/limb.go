// bignum/limb.go
package bignum

// A digit vector stores a non-negative integer little-endian in half-word
// limbs. Keeping each limb to half the word guarantees that the product of
// any two limbs, plus a previous accumulation, still fits the word, so
// multiplication and division never need multi-word intermediates.

type digit = uint32

const (
	digitBits = 16                  // bits per limb
	digitBase = 1 << digitBits      // internal base B
	digitMask = digitBase - 1       // low digitBits bits
)

// MaxBase is the largest display base, equal to the internal limb base.
const MaxBase = digitBase

// carry resolves limbs >= digitBase starting at index start, rippling
// overflow upward. The slice may grow by one limb. Only call this on a
// uniquely-owned buffer.
func carry(d []digit, start int) []digit {
	for i := start; i < len(d); i++ {
		if d[i] < digitBase {
			// No overflow here means no more overflow above.
			break
		}
		if i == len(d)-1 {
			d = append(d, 0)
		}
		o := d[i] / digitBase
		d[i+1] += o
		d[i] -= o * digitBase
	}
	return d
}

// borrow takes 1 from the limb above start, cascading through zero limbs.
// The caller has already established that a higher limb can pay; running
// out of limbs is a bug in the caller, reported as Overrun.
func borrow(d []digit, start int) error {
	for i := start; i < len(d)-1; i++ {
		d[i] += digitBase
		if i != start {
			d[i]--
		}
		if d[i+1] > 0 {
			d[i+1]--
			return nil
		}
	}
	return newError(Overrun, "borrow").WithProblem("borrow ran out of limbs")
}

// trim strips trailing zero limbs so the vector is canonical: empty, or
// with a non-zero top limb.
func trim(d []digit) []digit {
	for len(d) > 0 && d[len(d)-1] == 0 {
		d = d[:len(d)-1]
	}
	return d
}

// cmpDigits compares two canonical digit vectors, returning -1, 0 or 1.
func cmpDigits(a, b []digit) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// copyDigits returns a private copy of d.
func copyDigits(d []digit) []digit {
	if len(d) == 0 {
		return nil
	}
	c := make([]digit, len(d))
	copy(c, d)
	return c
}
