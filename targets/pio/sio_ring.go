//go:build rp2040 || rp2350

package pio

import (
	"device/rp"
	"machine"
)

// SIORing drives one GPIO per ring light through the SIO set/clear
// registers, so a whole frame changes in two stores. It implements
// core.RingWriter.
type SIORing struct {
	pins    []machine.Pin
	allMask uint32
}

// NewSIORing creates a ring over the given pins, in ring order
func NewSIORing(pins []machine.Pin) *SIORing {
	r := &SIORing{pins: pins}
	for _, pin := range pins {
		r.allMask |= 1 << uint8(pin)
	}
	return r
}

// Configure sets every ring pin as an output, driven low
func (r *SIORing) Configure() error {
	for _, pin := range r.pins {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	rp.SIO.GPIO_OUT_CLR.Set(r.allMask)
	return nil
}

// WriteMask maps ring bit i onto pins[i]. All ring pins go low before the
// new frame is raised.
func (r *SIORing) WriteMask(mask uint32) error {
	var set uint32
	for i, pin := range r.pins {
		if mask&(1<<uint(i)) != 0 {
			set |= 1 << uint8(pin)
		}
	}
	rp.SIO.GPIO_OUT_CLR.Set(r.allMask)
	rp.SIO.GPIO_OUT_SET.Set(set)
	return nil
}
