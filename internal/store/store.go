// Package store models the 4-slot sample memory: one write port, two read
// ports, one enable gating both. Reads return data one tick after the
// address is asserted; within a tick every read observes the memory as of
// the end of the previous tick.
package store

import "github.com/cwbudde/fft4sim/internal/fixed"

// Slots is the memory depth. Addresses wrap at this size.
const Slots = 4

// Request is one tick's worth of port activity.
type Request struct {
	Enable bool

	Write     bool
	WriteAddr uint8
	WriteData fixed.Word

	Read  bool
	AddrA uint8
	AddrB uint8
}

// Response carries the registered read-port outputs visible this tick,
// corresponding to addresses asserted on the previous enabled tick.
type Response struct {
	DataA fixed.Word
	DataB fixed.Word
	Valid bool
}

// Store holds the memory array and the read-port output registers.
type Store struct {
	mem [Slots]fixed.Word

	regA, regB fixed.Word
	regValid   bool
}

// Reset zeroes the memory and the port registers.
func (s *Store) Reset() {
	s.mem = [Slots]fixed.Word{}
	s.regA = 0
	s.regB = 0
	s.regValid = false
}

// Peek returns slot i without going through a port. Test hook only.
func (s *Store) Peek(i int) fixed.Word {
	return s.mem[i%Slots]
}

// Tick applies one tick's request and returns the outputs visible during
// that tick. A simultaneous read+write is a defined conflict: the write
// proceeds, the read ports hold stale data, and the valid flag is
// deasserted for the following tick. The controller never schedules this
// case; the policy exists for host misuse and test injection.
func (s *Store) Tick(req Request) Response {
	resp := Response{DataA: s.regA, DataB: s.regB, Valid: s.regValid}

	if !req.Enable {
		s.regValid = false
		return resp
	}

	conflict := req.Read && req.Write

	if req.Read && !conflict {
		s.regA = s.mem[req.AddrA%Slots]
		s.regB = s.mem[req.AddrB%Slots]
	}

	s.regValid = req.Read && !conflict

	if req.Write {
		s.mem[req.WriteAddr%Slots] = req.WriteData
	}

	return resp
}
