// Package display is the 7-segment encoder collaborator: a pure lookup
// from the controller's phase and counter to a segment pattern. It carries
// no state of its own; everything it shows the controller already exposes.
package display

// Phase codes, matching the controller's phase enumeration order.
const (
	PhaseIdle uint8 = iota
	PhaseLoad
	PhaseRead
	PhaseCompute
	PhaseOutputWait
	PhaseOutputDrive
)

// Segment patterns, active high, bit order g,f,e,d,c,b,a.
const (
	segBlank = 0x00
	segDash  = 0x40 // idle
	segR     = 0x50 // read samples
	segC     = 0x39 // compute
	segO     = 0x5C // output
)

// digits 0..4, standard 7-segment encodings.
var digits = [5]uint8{0x3F, 0x06, 0x5B, 0x4F, 0x66}

// Encode maps the controller's phase and current counter to the single
// segment byte on the display. Phases that count (load and output) show
// the counter digit; the rest show a phase letter. Out-of-range inputs
// blank the display rather than index outside the tables.
func Encode(phase, index uint8) uint8 {
	if index > 4 {
		return segBlank
	}

	switch phase {
	case PhaseIdle:
		return segDash
	case PhaseLoad:
		return digits[index]
	case PhaseRead:
		return segR
	case PhaseCompute:
		return segC
	case PhaseOutputWait:
		return segO
	case PhaseOutputDrive:
		return digits[index]
	default:
		return segBlank
	}
}
