//go:build (rp2040 || rp2350) && !shiftreg && !neopixel && !piochain

package main

import (
	"chaser/core"
	"chaser/targets/pio"
)

const (
	ringBackend  = "gpio"
	ringUsesPins = true
)

// newRing drives one GPIO per light through the SIO registers
func newRing(cfg core.Config) (core.RingWriter, error) {
	return pio.NewSIORing(ringMachinePins(cfg)), nil
}
