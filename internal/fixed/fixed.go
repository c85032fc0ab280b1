// Package fixed implements the packed complex fixed-point word format used
// throughout the device: a 16-bit word holding two signed 8-bit halves,
// real part in the high byte, imaginary part in the low byte. The implied
// format is Q1.7; the package never tracks the binary point, only bit
// positions.
package fixed

// Word widths. Width must stay even; every half is an independent
// two's-complement signed integer.
const (
	Width     = 16
	HalfWidth = Width / 2

	// Shift is the arithmetic right shift applied to the full-width
	// product of two halves. Shifting by HalfWidth-1 makes the 0x80
	// half pattern act as an exact -1.0 multiplier.
	Shift = HalfWidth - 1
)

// Word is one packed complex sample.
type Word uint16

// Twiddle constants for the 4-point transform. Only two rotations are ever
// needed: +1 and -j.
//
// Unity uses the maximum positive pattern 0x7F. +1.0 itself is not
// representable in Q1.7, so MulTwiddle treats this pattern as an exact
// pass-through rather than multiplying by 0.9921875. Quarter is an exact -j:
// the imaginary half 0x80 is -128, and -128 >> Shift = -1.0 with no
// truncation loss.
const (
	TwiddleUnity   Word = 0x7F00
	TwiddleQuarter Word = 0x0080
)

// Pack assembles a word from signed real and imaginary halves. Values
// outside the 8-bit range wrap.
func Pack(re, im int8) Word {
	return Word(uint16(uint8(re))<<HalfWidth | uint16(uint8(im)))
}

// Re returns the signed real half of w.
func Re(w Word) int8 {
	return int8(uint8(w >> HalfWidth))
}

// Im returns the signed imaginary half of w.
func Im(w Word) int8 {
	return int8(uint8(w))
}

// Wrap reduces a full-width intermediate to a signed half, with ordinary
// two's-complement wraparound. Overflow is silent; the device saturates
// nowhere.
func Wrap(v int) int8 {
	return int8(uint8(v))
}

// TruncProduct scales a full-width product down to a half, discarding the
// low-order fractional bits. Arithmetic shift, no rounding.
func TruncProduct(p int) int8 {
	return Wrap(p >> Shift)
}

// MulTwiddle computes the truncating fixed-point complex product t*b.
// The full product is formed at double width, then each component is
// truncated back to a half per TruncProduct.
func MulTwiddle(t, b Word) Word {
	if t == TwiddleUnity {
		// See the constant note: the unity rotation is exact.
		return b
	}

	tr, ti := int(Re(t)), int(Im(t))
	br, bi := int(Re(b)), int(Im(b))

	re := TruncProduct(tr*br - ti*bi)
	im := TruncProduct(ti*br + tr*bi)

	return Pack(re, im)
}

// ExtendByte widens a nibble-encoded host byte (high nibble real, low
// nibble imaginary) into a packed word: each nibble is sign-extended and
// shifted left by 4 into its half.
func ExtendByte(b uint8) Word {
	re := int8(b&0xF0) >> 4 << 4
	im := int8(b<<4) >> 4 << 4

	return Pack(re, im)
}

// TruncateByte narrows a packed word back to a host byte, keeping the top
// 4 bits of each half.
func TruncateByte(w Word) uint8 {
	re := uint8(Re(w)) >> 4
	im := uint8(Im(w)) >> 4

	return re<<4 | im
}
