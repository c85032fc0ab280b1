package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Stimulus describes one simulation run.
type Stimulus struct {
	// Debounce overrides the switch debounce threshold when non-zero.
	Debounce uint `yaml:"debounce"`

	// Bounce is the number of spurious level flips injected before each
	// switch press settles.
	Bounce int `yaml:"bounce"`

	// Samples are the four complex inputs. Values are signed 8-bit; the
	// device only sees the top nibble of each part, so anything off the
	// multiple-of-16 grid is quantized on load.
	Samples []SampleSpec `yaml:"samples"`
}

// SampleSpec is one complex input sample.
type SampleSpec struct {
	Real int `yaml:"real"`
	Imag int `yaml:"imag"`
}

// LoadStimulus reads and validates a stimulus file.
func LoadStimulus(path string) (*Stimulus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Stimulus
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(s.Samples) != 4 {
		return nil, fmt.Errorf("%s: need exactly 4 samples, have %d", path, len(s.Samples))
	}

	for i, smp := range s.Samples {
		if smp.Real < -128 || smp.Real > 127 || smp.Imag < -128 || smp.Imag > 127 {
			return nil, fmt.Errorf("%s: sample %d out of signed 8-bit range", path, i)
		}
	}

	if s.Bounce < 0 {
		return nil, fmt.Errorf("%s: negative bounce count", path)
	}

	return &s, nil
}
