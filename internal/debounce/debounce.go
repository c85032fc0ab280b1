// Package debounce models the switch-input pulse filter: a noisy level
// sampled once per tick becomes a single-tick pulse on each genuine rising
// edge of the settled level.
package debounce

// DefaultThreshold is the number of consecutive disagreeing samples needed
// before the settled state flips.
const DefaultThreshold = 4

// Filter tracks one switch. Each physical switch gets its own Filter;
// state is never shared.
type Filter struct {
	threshold uint

	settled bool
	prev    bool
	count   uint
}

// New returns a filter that flips its settled state after threshold
// consecutive samples that disagree with it. A threshold of 0 falls back
// to DefaultThreshold.
func New(threshold uint) *Filter {
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	return &Filter{threshold: threshold}
}

// Reset forces settled state, previous state and the counter to zero so no
// spurious pulse fires on the first tick after reset.
func (f *Filter) Reset() {
	f.settled = false
	f.prev = false
	f.count = 0
}

// Tick consumes one raw sample and reports whether a pulse fires this tick.
// Any sample that agrees with the settled state cancels all progress toward
// a flip; there is no majority filtering. The pulse is the rising edge of
// the settled state, one tick wide.
func (f *Filter) Tick(raw bool) bool {
	f.prev = f.settled

	if raw != f.settled {
		f.count++
		if f.count >= f.threshold {
			f.settled = raw
			f.count = 0
		}
	} else {
		f.count = 0
	}

	return f.settled && !f.prev
}

// Settled reports the current debounced level.
func (f *Filter) Settled() bool {
	return f.settled
}
