//go:build rp2040 || rp2350

package main

import (
	"chaser/core"
	"errors"
	"machine"
)

// Raspberry Pi Pico wiring
//
//	GPIO0/1    debug UART0 TX/RX
//	GPIO2-17   chase ring, light 0 on GPIO2 (direct GPIO backend)
//	GPIO2-4    data, clock, latch (shift register backends)
//	GPIO2      data in (neopixel backend)
//	GPIO18     freeze button to GND
//	GPIO19     short-mode button to GND
//	GPIO20     freeze indicator
//	GPIO21     short-mode indicator
//	GPIO22     gate output
//	GPIO26     tempo potentiometer wiper (ADC0)
const (
	numGPIO = 30

	pinRingBase     = 2
	pinFreezeButton = 18
	pinShortButton  = 19
	pinFreezeLED    = 20
	pinShortLED     = 21
	pinGate         = 22
	tempoADC        = 0
	gatePercent     = 25
	debouncePolls   = 0
	chainData       = machine.GPIO2
	chainClock      = machine.GPIO3 // latch on GPIO4
	neopixelData    = machine.GPIO2
)

var errBadPin = errors.New("no such GPIO")

// boardConfig fills the reference configuration with the Pico pin table.
// ringPins is false for backends that drive the ring without one pin per
// light.
func boardConfig(ringPins bool) core.Config {
	cfg := core.DefaultConfig()

	if ringPins {
		cfg.Layout.Ring = make([]core.GPIOPin, cfg.RingSize)
		for i := range cfg.Layout.Ring {
			cfg.Layout.Ring[i] = core.GPIOPin(pinRingBase + i)
		}
	}
	cfg.Layout.FreezeIndicator = pinFreezeLED
	cfg.Layout.ShortIndicator = pinShortLED
	cfg.Layout.Gate = pinGate
	cfg.GatePercent = gatePercent

	cfg.FreezeInput = core.InputConfig{Pin: pinFreezeButton, ActiveLow: true}
	cfg.ShortInput = core.InputConfig{Pin: pinShortButton, ActiveLow: true}
	cfg.TempoChannel = tempoADC
	cfg.DebouncePolls = debouncePolls

	return cfg
}

// ringMachinePins converts the ring layout to machine pins
func ringMachinePins(cfg core.Config) []machine.Pin {
	pins := make([]machine.Pin, len(cfg.Layout.Ring))
	for i, pin := range cfg.Layout.Ring {
		pins[i] = machine.Pin(pin)
	}
	return pins
}
