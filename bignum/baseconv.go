// bignum/baseconv.go
package bignum

// longDivDigits divides the little-endian digit string d, interpreted in
// base frombase, by div, in place. It returns the shortened quotient and
// the remainder. The running accumulator is at most
// (div-1)*frombase + (frombase-1) < 2^32, so it fits the limb word.
func longDivDigits(d []digit, div, frombase uint32) ([]digit, digit) {
	var acc uint32
	for i := len(d) - 1; i >= 0; i-- {
		acc = acc*frombase + d[i]
		d[i] = acc / div
		acc %= div
	}
	return trim(d), acc
}

// baseConv transcodes a little-endian digit vector from one base to
// another by repeated long division: each division by the target base
// peels off the next low-order output digit. Both bases must lie in
// [2, MaxBase].
func baseConv(from []digit, frombase, tobase uint32) ([]digit, error) {
	if frombase < 2 || frombase > MaxBase || tobase < 2 || tobase > MaxBase {
		return nil, newError(BaseOutOfRange, "baseConv")
	}

	src := trim(copyDigits(from))
	var to []digit
	for len(src) > 0 {
		var rem digit
		src, rem = longDivDigits(src, tobase, frombase)
		to = append(to, rem)
	}
	return to, nil
}
