package fft4sim

import "github.com/cwbudde/fft4sim/internal/fixed"

// Word is the packed complex fixed-point sample format: signed 8-bit real
// part in the high byte, signed 8-bit imaginary part in the low byte.
// The canonical definition is in internal/fixed.
type Word = fixed.Word
