package display

import "testing"

func TestTableIsStable(t *testing.T) {
	t.Parallel()

	// The encoder is a pure table: same phase+index, same code.
	for phase := uint8(0); phase <= PhaseOutputDrive; phase++ {
		for idx := uint8(0); idx <= 4; idx++ {
			a := Encode(phase, idx)
			b := Encode(phase, idx)
			if a != b {
				t.Fatalf("phase %d idx %d: unstable code", phase, idx)
			}
		}
	}
}

func TestCountingPhasesShowDigits(t *testing.T) {
	t.Parallel()

	for idx := uint8(0); idx <= 4; idx++ {
		if Encode(PhaseLoad, idx) != Encode(PhaseOutputDrive, idx) {
			t.Errorf("idx %d: load and output-drive digits differ", idx)
		}
	}

	if Encode(PhaseLoad, 0) == Encode(PhaseLoad, 1) {
		t.Error("digit codes do not distinguish counter values")
	}
}

func TestOutOfRangeBlanks(t *testing.T) {
	t.Parallel()

	if Encode(200, 0) != 0 {
		t.Error("unknown phase should blank the display")
	}

	if Encode(PhaseLoad, 5) != 0 {
		t.Error("out-of-range index should blank the display")
	}
}
