// Package fft4sim is a cycle-accurate model of a small 4-point fixed-point
// FFT device: a 4-slot sample memory, a two-stage butterfly network and a
// top-level controller driven by two debounced switches over a narrow
// byte-wide host interface.
//
// The Device is advanced one clock at a time via Tick; all components share
// that single synchronous domain. Within a tick every read observes state
// as of the end of the previous tick.
package fft4sim

import (
	"github.com/cwbudde/fft4sim/internal/debounce"
	"github.com/cwbudde/fft4sim/internal/display"
	"github.com/cwbudde/fft4sim/internal/engine"
	"github.com/cwbudde/fft4sim/internal/fixed"
	"github.com/cwbudde/fft4sim/internal/store"
)

// SampleCount is the transform size. The design is fixed at N=4.
const SampleCount = 4

// Phase is the controller's phase enumeration.
type Phase uint8

const (
	// PhaseIdle waits for load pulses, or hands off to ReadSamples once
	// all four samples are in.
	PhaseIdle Phase = iota
	// PhaseLoad writes one host byte into the sample store.
	PhaseLoad
	// PhaseReadSamples drains the store into the FFT core over the two
	// read ports. Spans three ticks: two address ticks plus the final
	// data latch (read data lags its address by one tick).
	PhaseReadSamples
	// PhaseCompute holds start high and waits for the core's done level.
	PhaseCompute
	// PhaseOutputWait waits for output pulses, or closes the loop once
	// all four results are out.
	PhaseOutputWait
	// PhaseOutputDrive drives one result byte with output-enable high.
	PhaseOutputDrive
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoad:
		return "load"
	case PhaseReadSamples:
		return "read"
	case PhaseCompute:
		return "compute"
	case PhaseOutputWait:
		return "output-wait"
	case PhaseOutputDrive:
		return "output-drive"
	default:
		return "unknown"
	}
}

// Inputs is the pin state sampled on one tick.
type Inputs struct {
	// Reset returns every register in the device to zero.
	Reset bool

	// LoadSwitch and OutputSwitch are the raw switch levels; each runs
	// through its own debounce filter.
	LoadSwitch   bool
	OutputSwitch bool

	// Data is the host byte: high nibble real, low nibble imaginary.
	// Sampled on the tick a load pulse fires.
	Data uint8
}

// Outputs is the pin state driven during one tick.
type Outputs struct {
	// Data carries a result byte, meaningful only while OutputEnable is
	// high. The shared byte pins stay in their input role otherwise.
	Data         uint8
	OutputEnable bool

	// Display is the 7-segment code for the current phase and counter.
	Display uint8

	Phase       Phase
	LoadIndex   uint8
	OutputIndex uint8
}

// Config holds the device parameters.
type Config struct {
	// DebounceThreshold is the number of consecutive agreeing samples a
	// switch level needs before it is considered settled. Zero selects
	// the default.
	DebounceThreshold uint
}

// Device is the top controller FSM and the integration point for every
// other component. It owns the sample store outright; nothing else holds a
// reference into it.
type Device struct {
	phase Phase

	loadIdx uint8
	outIdx  uint8

	// readStep is the sub-cycle counter inside PhaseReadSamples.
	readStep uint8

	// pending is the host byte latched when a load pulse fires.
	pending uint8

	// start is the level driven into the FFT core.
	start bool

	resultsReady bool

	loadFilter *debounce.Filter
	outFilter  *debounce.Filter
	store      store.Store
	engine     engine.Engine
}

// New returns a reset Device.
func New(cfg Config) *Device {
	d := &Device{
		loadFilter: debounce.New(cfg.DebounceThreshold),
		outFilter:  debounce.New(cfg.DebounceThreshold),
	}
	d.Reset()

	return d
}

// Reset deterministically zeroes every register: controller phase and
// counters, sample store, FFT core and both debounce filters.
func (d *Device) Reset() {
	d.phase = PhaseIdle
	d.loadIdx = 0
	d.outIdx = 0
	d.readStep = 0
	d.pending = 0
	d.start = false
	d.resultsReady = false
	d.loadFilter.Reset()
	d.outFilter.Reset()
	d.store.Reset()
	d.engine.Reset()
}

// Phase returns the controller phase. Exposed for the display and tests.
func (d *Device) Phase() Phase { return d.phase }

// LoadIndex returns how many samples have been loaded this cycle of use.
func (d *Device) LoadIndex() uint8 { return d.loadIdx }

// OutputIndex returns how many results have been emitted this cycle.
func (d *Device) OutputIndex() uint8 { return d.outIdx }

// Result returns result i as a packed host byte without going through the
// output pins.
func (d *Device) Result(i int) (uint8, error) {
	if i < 0 || i >= SampleCount {
		return 0, ErrResultIndex
	}

	if !d.resultsReady {
		return 0, ErrNotReady
	}

	return fixed.TruncateByte(d.engine.Out(i)), nil
}

// Tick advances the whole device one clock and returns the pins driven
// during that tick.
func (d *Device) Tick(in Inputs) Outputs {
	if in.Reset {
		d.Reset()
		return d.outputs(Outputs{})
	}

	loadPulse := d.loadFilter.Tick(in.LoadSwitch)
	outPulse := d.outFilter.Tick(in.OutputSwitch)

	var (
		req     store.Request
		out     Outputs
		latchLo bool
		latchHi bool
	)

	switch d.phase {
	case PhaseIdle:
		switch {
		case d.loadIdx == SampleCount:
			d.phase = PhaseReadSamples
			d.readStep = 0
			d.resultsReady = false
		case loadPulse:
			d.pending = in.Data
			d.phase = PhaseLoad
		}

	case PhaseLoad:
		req = store.Request{
			Enable:    true,
			Write:     true,
			WriteAddr: d.loadIdx,
			WriteData: fixed.ExtendByte(d.pending),
		}
		d.loadIdx++
		d.phase = PhaseIdle

	case PhaseReadSamples:
		// Addresses lead their data by one tick, so the phase spans
		// three: issue (0,1), issue (2,3) while latching (x0,x1), then
		// latch (x2,x3) and kick the core.
		switch d.readStep {
		case 0:
			req = store.Request{Enable: true, Read: true, AddrA: 0, AddrB: 1}
			d.readStep = 1
		case 1:
			req = store.Request{Enable: true, Read: true, AddrA: 2, AddrB: 3}
			latchLo = true
			d.readStep = 2
		case 2:
			latchHi = true
		}

	case PhaseCompute:
		if d.engine.Done() {
			d.start = false
			d.resultsReady = true
			d.phase = PhaseOutputWait
		}

	case PhaseOutputWait:
		switch {
		case d.outIdx == SampleCount:
			// Full loop complete: counters go back to zero.
			d.loadIdx = 0
			d.outIdx = 0
			d.phase = PhaseIdle
		case outPulse:
			d.phase = PhaseOutputDrive
		}

	case PhaseOutputDrive:
		out.OutputEnable = true
		out.Data = fixed.TruncateByte(d.engine.Out(int(d.outIdx)))
		d.outIdx++
		d.phase = PhaseOutputWait
	}

	resp := d.store.Tick(req)

	if latchLo && resp.Valid {
		d.engine.SetInput(0, resp.DataA)
		d.engine.SetInput(1, resp.DataB)
	}

	if latchHi && resp.Valid {
		d.engine.SetInput(2, resp.DataA)
		d.engine.SetInput(3, resp.DataB)
		d.start = true
		d.phase = PhaseCompute
	}

	d.engine.Tick(d.start)

	return d.outputs(out)
}

// outputs fills in the pins derived from controller state.
func (d *Device) outputs(out Outputs) Outputs {
	out.Phase = d.phase
	out.LoadIndex = d.loadIdx
	out.OutputIndex = d.outIdx

	idx := d.loadIdx
	if d.phase == PhaseOutputWait || d.phase == PhaseOutputDrive {
		idx = d.outIdx
	}
	out.Display = display.Encode(uint8(d.phase), idx)

	return out
}
