//go:build (rp2040 || rp2350) && piochain

package main

import (
	"chaser/core"
	"chaser/targets/pio"
)

const (
	ringBackend  = "piochain"
	ringUsesPins = false
)

// newRing clocks the ring into a 74HC595 chain from a PIO state machine
func newRing(cfg core.Config) (core.RingWriter, error) {
	bits := uint8(16)
	if cfg.RingSize > 16 {
		bits = 32
	}
	chain, err := pio.NewShiftChain(chainData, chainClock, bits)
	if err != nil {
		return nil, err
	}
	return chain, nil
}
