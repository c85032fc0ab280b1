package store

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/fft4sim/internal/fixed"
)

func TestResetClearsMemory(t *testing.T) {
	t.Parallel()

	var s Store

	s.Tick(Request{Enable: true, Write: true, WriteAddr: 1, WriteData: 0x1234})
	s.Reset()

	for i := 0; i < Slots; i++ {
		if s.Peek(i) != 0 {
			t.Errorf("slot %d not cleared: %#04x", i, s.Peek(i))
		}
	}

	resp := s.Tick(Request{Enable: true, Read: true, AddrA: 1, AddrB: 1})
	if resp.Valid {
		t.Error("valid high on first tick after reset")
	}
}

func TestWriteThenRead(t *testing.T) {
	t.Parallel()

	var s Store
	s.Reset()

	s.Tick(Request{Enable: true, Write: true, WriteAddr: 2, WriteData: 0x9660})

	// Assert read addresses; data is visible one tick later.
	resp := s.Tick(Request{Enable: true, Read: true, AddrA: 2, AddrB: 0})
	if resp.Valid {
		t.Error("read data visible on the address tick")
	}

	resp = s.Tick(Request{Enable: true, Read: true, AddrA: 2, AddrB: 0})
	if !resp.Valid {
		t.Fatal("valid low one tick after read address")
	}

	if resp.DataA != 0x9660 {
		t.Errorf("port A: got %#04x, want 0x9660", resp.DataA)
	}

	if resp.DataB != 0 {
		t.Errorf("port B: got %#04x, want 0 (untouched slot)", resp.DataB)
	}
}

func TestWriteInhibitedWithoutEnable(t *testing.T) {
	t.Parallel()

	var s Store
	s.Reset()

	s.Tick(Request{Write: true, WriteAddr: 3, WriteData: 0xFFFF})

	if s.Peek(3) != 0 {
		t.Error("write occurred while enable was low")
	}
}

func TestConflictPolicy(t *testing.T) {
	t.Parallel()

	var s Store
	s.Reset()

	s.Tick(Request{Enable: true, Write: true, WriteAddr: 0, WriteData: 0x1111})

	// Prime port A with slot 0's current contents.
	s.Tick(Request{Enable: true, Read: true, AddrA: 0, AddrB: 0})

	// Conflict tick: read slot 0 while writing slot 1. The write proceeds;
	// the read ports hold and the next visible valid is low.
	s.Tick(Request{
		Enable: true,
		Write:  true, WriteAddr: 1, WriteData: 0x2222,
		Read: true, AddrA: 0, AddrB: 1,
	})

	resp := s.Tick(Request{Enable: true, Read: true, AddrA: 1, AddrB: 1})
	if resp.Valid {
		t.Error("valid high for the conflict tick's outputs")
	}

	if resp.DataA != 0x1111 {
		t.Errorf("conflict read did not hold stale data: got %#04x, want 0x1111", resp.DataA)
	}

	if s.Peek(1) != 0x2222 {
		t.Errorf("conflicting write lost: slot 1 = %#04x, want 0x2222", s.Peek(1))
	}

	// The write is observable from the following tick's reads.
	resp = s.Tick(Request{Enable: true, Read: true, AddrA: 1, AddrB: 1})
	if !resp.Valid || resp.DataA != 0x2222 {
		t.Errorf("post-conflict read: valid=%v data=%#04x, want valid 0x2222", resp.Valid, resp.DataA)
	}
}

func TestNoSameTickReadAfterWrite(t *testing.T) {
	t.Parallel()

	var s Store
	s.Reset()

	// Latch slot 2, then write it. The latch taken before the write tick
	// must still show the pre-write value when it becomes visible.
	s.Tick(Request{Enable: true, Read: true, AddrA: 2, AddrB: 2})
	s.Tick(Request{Enable: true, Read: true, AddrA: 2, AddrB: 2})
	s.Tick(Request{Enable: true, Write: true, WriteAddr: 2, WriteData: 0xBEEF})

	resp := s.Tick(Request{Enable: true, Read: true, AddrA: 2, AddrB: 2})
	if resp.DataA != 0 {
		t.Errorf("read observed same-tick write: got %#04x, want 0", resp.DataA)
	}

	resp = s.Tick(Request{Enable: true, Read: true, AddrA: 2, AddrB: 2})
	if resp.DataA != 0xBEEF {
		t.Errorf("write not visible next tick: got %#04x, want 0xBEEF", resp.DataA)
	}
}

// TestRandomizedWrites shadows the store with a plain array model across a
// random mix of enabled and inhibited writes.
func TestRandomizedWrites(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))

	var s Store
	s.Reset()

	var model [Slots]fixed.Word

	for i := 0; i < 200; i++ {
		addr := uint8(rng.Intn(Slots))
		data := fixed.Word(rng.Intn(1 << 16))
		enable := rng.Intn(4) != 0
		write := rng.Intn(2) == 1

		s.Tick(Request{Enable: enable, Write: write, WriteAddr: addr, WriteData: data})

		if enable && write {
			model[addr] = data
		}

		for j := 0; j < Slots; j++ {
			if s.Peek(j) != model[j] {
				t.Fatalf("iter %d: slot %d = %#04x, model %#04x", i, j, s.Peek(j), model[j])
			}
		}
	}
}
