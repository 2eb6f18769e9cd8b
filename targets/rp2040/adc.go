//go:build rp2040 || rp2350

package main

import (
	"chaser/core"
	"errors"
	"machine"
)

var errUnsupportedChannel = errors.New("unsupported ADC channel")

// RpAdcDriver implements core.ADCDriver using TinyGo's machine.ADC.
type RpAdcDriver struct {
	initialized bool

	// Per-channel TinyGo ADC handles, external channels 0-3
	channels [4]*machine.ADC
}

// NewRPAdcDriver constructs the driver. The ADC block is powered up on the
// first ConfigureChannel.
func NewRPAdcDriver() *RpAdcDriver {
	return &RpAdcDriver{}
}

// ConfigureChannel sets up a specific ADC channel (pin mux, etc.).
func (d *RpAdcDriver) ConfigureChannel(ch core.ADCChannelID) error {
	if int(ch) >= len(d.channels) {
		return errUnsupportedChannel
	}
	if d.channels[ch] != nil {
		// already configured
		return nil
	}
	if !d.initialized {
		machine.InitADC()
		d.initialized = true
	}

	var adc machine.ADC
	switch ch {
	case 0:
		adc = machine.ADC{Pin: machine.ADC0}
	case 1:
		adc = machine.ADC{Pin: machine.ADC1}
	case 2:
		adc = machine.ADC{Pin: machine.ADC2}
	case 3:
		adc = machine.ADC{Pin: machine.ADC3}
	}

	if err := adc.Configure(machine.ADCConfig{}); err != nil {
		return err
	}

	d.channels[ch] = &adc
	return nil
}

// ReadRaw returns a 10-bit conversion (0-1023) from a channel.
// TinyGo scales every ADC reading to 16 bits; the low 6 bits are dropped.
func (d *RpAdcDriver) ReadRaw(ch core.ADCChannelID) (core.ADCValue, error) {
	if int(ch) >= len(d.channels) {
		return 0, errUnsupportedChannel
	}
	adc := d.channels[ch]
	if adc == nil {
		if err := d.ConfigureChannel(ch); err != nil {
			return 0, err
		}
		adc = d.channels[ch]
	}

	return core.ADCValue(adc.Get() >> 6), nil
}
