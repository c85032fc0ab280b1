// Package butterfly implements the elementary FFT operation on packed
// fixed-point words: pos = a + t*b, neg = a - t*b, with the complex product
// truncated per the fixed package's scaling rule.
package butterfly

import "github.com/cwbudde/fft4sim/internal/fixed"

// Comb evaluates one butterfly combinationally. Every half add/sub wraps
// silently at 8 bits.
func Comb(a, b, t fixed.Word) (pos, neg fixed.Word) {
	p := fixed.MulTwiddle(t, b)

	pr, pi := int(fixed.Re(p)), int(fixed.Im(p))
	ar, ai := int(fixed.Re(a)), int(fixed.Im(a))

	pos = fixed.Pack(fixed.Wrap(ar+pr), fixed.Wrap(ai+pi))
	neg = fixed.Pack(fixed.Wrap(ar-pr), fixed.Wrap(ai-pi))

	return pos, neg
}

// Unit is the registered butterfly variant: outputs and the valid flag
// update one tick after an enabled cycle, and valid drops one tick after
// enable does.
type Unit struct {
	pos, neg fixed.Word
	valid    bool
}

// Reset clears the output registers and the valid flag.
func (u *Unit) Reset() {
	u.pos = 0
	u.neg = 0
	u.valid = false
}

// Tick advances the unit one clock. When en is low the output registers
// hold and valid clears.
func (u *Unit) Tick(a, b, t fixed.Word, en bool) {
	if !en {
		u.valid = false
		return
	}

	u.pos, u.neg = Comb(a, b, t)
	u.valid = true
}

// Pos returns the registered sum output.
func (u *Unit) Pos() fixed.Word { return u.pos }

// Neg returns the registered difference output.
func (u *Unit) Neg() fixed.Word { return u.neg }

// Valid reports whether the outputs correspond to an enabled cycle.
func (u *Unit) Valid() bool { return u.valid }
