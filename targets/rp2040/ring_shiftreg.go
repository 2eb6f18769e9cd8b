//go:build (rp2040 || rp2350) && shiftreg

package main

import (
	"chaser/core"

	"tinygo.org/x/drivers/shiftregister"
)

const (
	ringBackend  = "shiftreg"
	ringUsesPins = false
)

// shiftRing bit-bangs the ring into a 74HC595 chain
type shiftRing struct {
	dev *shiftregister.Device
}

func newRing(cfg core.Config) (core.RingWriter, error) {
	bits := shiftregister.SIXTEEN_BITS
	if cfg.RingSize > 16 {
		bits = shiftregister.THIRTYTWO_BITS
	}
	return &shiftRing{
		dev: shiftregister.New(bits, chainClock+1, chainClock, chainData),
	}, nil
}

func (r *shiftRing) Configure() error {
	r.dev.Configure()
	r.dev.WriteMask(0)
	return nil
}

func (r *shiftRing) WriteMask(mask uint32) error {
	r.dev.WriteMask(mask)
	return nil
}
