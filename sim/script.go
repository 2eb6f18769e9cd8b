package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Step is one scripted input applied before the given cycle starts
type Step struct {
	Cycle uint32 `json:"cycle"`

	// Press names the button to press: "freeze" or "short"
	Press string `json:"press,omitempty"`
	// HoldPolls is how long the press lasts (default DefaultHoldPolls)
	HoldPolls int `json:"hold_polls,omitempty"`

	// Pot moves the tempo potentiometer to a raw position
	Pot *uint16 `json:"pot,omitempty"`
}

// Script is a list of inputs in cycle order
type Script struct {
	Steps []Step `json:"steps"`
}

// DefaultHoldPolls is the press length used when a step gives none
const DefaultHoldPolls = 2000

// LoadScript decodes and validates a JSON script
func LoadScript(r io.Reader) (*Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	for i, step := range s.Steps {
		switch step.Press {
		case "", "freeze", "short":
		default:
			return nil, fmt.Errorf("step %d: unknown button %q", i, step.Press)
		}
		if step.Press == "" && step.Pot == nil {
			return nil, fmt.Errorf("step %d: nothing to do", i)
		}
		if step.HoldPolls < 0 {
			return nil, fmt.Errorf("step %d: negative hold_polls", i)
		}
	}

	sort.SliceStable(s.Steps, func(i, j int) bool {
		return s.Steps[i].Cycle < s.Steps[j].Cycle
	})
	return &s, nil
}
