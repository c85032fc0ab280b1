// Package engine implements the 4-point decimation-in-time FFT core: two
// butterfly units evaluated across two stages under a start/done handshake.
package engine

import (
	"github.com/cwbudde/fft4sim/internal/butterfly"
	"github.com/cwbudde/fft4sim/internal/fixed"
)

// State is the core's sequencer state.
type State uint8

const (
	// StateIdle waits for start with the input registers latched.
	StateIdle State = iota
	// StateStage1 has the parity butterflies in flight.
	StateStage1
	// StateStage2 has the combining butterflies in flight.
	StateStage2
	// StateDone holds the outputs and the done level until start drops.
	StateDone
)

// Engine is the FFT core. Inputs are latched via SetInput before start is
// asserted; outputs remain stable from the tick done asserts until the next
// start.
type Engine struct {
	state State

	in  [4]fixed.Word
	out [4]fixed.Word

	u0, u1 butterfly.Unit

	// Stage-1 results, latched off the units between stages.
	p0, n0, p1, n1 fixed.Word

	done bool
}

// Reset returns the core to idle and zeroes every register.
func (e *Engine) Reset() {
	e.state = StateIdle
	e.in = [4]fixed.Word{}
	e.out = [4]fixed.Word{}
	e.p0, e.n0, e.p1, e.n1 = 0, 0, 0, 0
	e.u0.Reset()
	e.u1.Reset()
	e.done = false
}

// SetInput latches input sample i. Only meaningful while the core is idle.
func (e *Engine) SetInput(i int, w fixed.Word) {
	e.in[i&3] = w
}

// Out returns output sample i. Stable while done is asserted.
func (e *Engine) Out(i int) fixed.Word {
	return e.out[i&3]
}

// Done reports the handshake level: asserted from the end of stage 2 until
// start is observed low.
func (e *Engine) Done() bool {
	return e.done
}

// State returns the sequencer state. Test hook only.
func (e *Engine) State() State {
	return e.state
}

// Tick advances the core one clock.
//
// Idle -> Stage1 -> Stage2 -> Done takes three ticks from the tick start is
// observed; each stage consumes the butterfly units' registered outputs one
// tick after presenting operands. Done holds until start is observed low,
// which rearms the core.
func (e *Engine) Tick(start bool) {
	switch e.state {
	case StateIdle:
		if !start {
			e.u0.Tick(0, 0, fixed.TwiddleUnity, false)
			e.u1.Tick(0, 0, fixed.TwiddleUnity, false)
			return
		}

		// Present the parity pairs: (x0,x2) and (x1,x3), unity twiddle.
		e.u0.Tick(e.in[0], e.in[2], fixed.TwiddleUnity, true)
		e.u1.Tick(e.in[1], e.in[3], fixed.TwiddleUnity, true)
		e.state = StateStage1

	case StateStage1:
		// Stage-1 results are registered now; latch and present stage 2.
		e.p0, e.n0 = e.u0.Pos(), e.u0.Neg()
		e.p1, e.n1 = e.u1.Pos(), e.u1.Neg()

		e.u0.Tick(e.p0, e.p1, fixed.TwiddleUnity, true)
		e.u1.Tick(e.n0, e.n1, fixed.TwiddleQuarter, true)
		e.state = StateStage2

	case StateStage2:
		// Sums land on even bins, the -j pair on odd bins.
		e.out[0], e.out[2] = e.u0.Pos(), e.u0.Neg()
		e.out[1], e.out[3] = e.u1.Pos(), e.u1.Neg()

		e.u0.Tick(0, 0, fixed.TwiddleUnity, false)
		e.u1.Tick(0, 0, fixed.TwiddleUnity, false)

		e.done = true
		e.state = StateDone

	case StateDone:
		if !start {
			e.done = false
			e.state = StateIdle
		}
	}
}
