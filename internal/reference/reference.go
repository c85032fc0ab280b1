// Package reference holds bit-accurate golden models of the device
// arithmetic. Tests in every other package compare against these models;
// none of the production code depends on them except the CLI's check mode.
package reference

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/fft4sim/internal/fixed"
)

// Sample is an unpacked complex sample in the golden domain.
type Sample struct {
	Re, Im int8
}

// Wrap8 wraps an integer into the signed 8-bit range, two's complement.
func Wrap8(v int) int8 {
	return int8(uint8(v))
}

// MulTwiddle is the golden truncating complex product t*b. It mirrors
// fixed.MulTwiddle, including the exact pass-through for the unity pattern.
func MulTwiddle(tr, ti, br, bi int8) (int8, int8) {
	if tr == int8(0x7F) && ti == 0 {
		return br, bi
	}

	re := Wrap8((int(tr)*int(br) - int(ti)*int(bi)) >> fixed.Shift)
	im := Wrap8((int(ti)*int(br) + int(tr)*int(bi)) >> fixed.Shift)

	return re, im
}

// Butterfly is the golden butterfly: pos = a + t*b, neg = a - t*b, with the
// product truncated per MulTwiddle and every half wrapping silently.
func Butterfly(a, b, t Sample) (pos, neg Sample) {
	pr, pi := MulTwiddle(t.Re, t.Im, b.Re, b.Im)

	pos = Sample{Wrap8(int(a.Re) + int(pr)), Wrap8(int(a.Im) + int(pi))}
	neg = Sample{Wrap8(int(a.Re) - int(pr)), Wrap8(int(a.Im) - int(pi))}

	return pos, neg
}

var (
	twiddleUnity   = Sample{Re: int8(0x7F), Im: 0}
	twiddleQuarter = Sample{Re: 0, Im: -128}
)

// FFT4 is the golden 4-point decimation-in-time transform: two butterfly
// stages, unity twiddles except for the second-stage difference pair, which
// rotates by -j.
func FFT4(x [4]Sample) [4]Sample {
	p0, n0 := Butterfly(x[0], x[2], twiddleUnity)
	p1, n1 := Butterfly(x[1], x[3], twiddleUnity)

	out0, out2 := Butterfly(p0, p1, twiddleUnity)
	out1, out3 := Butterfly(n0, n1, twiddleQuarter)

	return [4]Sample{out0, out1, out2, out3}
}

// ExtendByte is the golden host-input transform: sign-extend each nibble
// and shift it left by 4 into its 8-bit half.
func ExtendByte(b uint8) Sample {
	re := int(b>>4) & 0xF
	im := int(b) & 0xF

	if re >= 8 {
		re -= 16
	}
	if im >= 8 {
		im -= 16
	}

	return Sample{int8(re << 4), int8(im << 4)}
}

// PackByte is the golden host-output transform: top 4 bits of each half.
func PackByte(s Sample) uint8 {
	return (uint8(s.Re)>>4)<<4 | uint8(s.Im)>>4
}

// DeviceBytes is the end-to-end golden model: four nibble-encoded input
// bytes in, four packed output bytes out.
func DeviceBytes(in [4]uint8) [4]uint8 {
	var x [4]Sample
	for i, b := range in {
		x[i] = ExtendByte(b)
	}

	y := FFT4(x)

	var out [4]uint8
	for i, s := range y {
		out[i] = PackByte(s)
	}

	return out
}

// FloatDFT computes the 4-point DFT of x in float64 using gonum. It is the
// independent reference used to bound the fixed-point deviation: absent
// wraparound, FFT4 differs from FloatDFT only by the explicit product
// truncation.
func FloatDFT(x [4]Sample) [4]complex128 {
	seq := make([]complex128, 4)
	for i, s := range x {
		seq[i] = complex(float64(s.Re), float64(s.Im))
	}

	ft := fourier.NewCmplxFFT(4)
	coeff := ft.Coefficients(nil, seq)

	var out [4]complex128
	copy(out[:], coeff)

	return out
}
