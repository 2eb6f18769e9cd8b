package core

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint32

// NoPin marks an optional output or input that is not wired
const NoPin GPIOPin = 0xFFFFFFFF

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output
	ConfigureOutput(pin GPIOPin) error

	// ConfigureInputPullUp configures a pin as a digital input with pull-up resistor
	ConfigureInputPullUp(pin GPIOPin) error

	// ConfigureInputPullDown configures a pin as a digital input with pull-down resistor
	ConfigureInputPullDown(pin GPIOPin) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin GPIOPin, value bool) error

	// GetPin reads the current pin state
	GetPin(pin GPIOPin) (bool, error)

	// ReadPin reads the current pin state, treating errors as low.
	// This is the hot path polled from the delay loop.
	ReadPin(pin GPIOPin) bool
}

// InputConfig describes one momentary toggle input
type InputConfig struct {
	Pin GPIOPin
	// ActiveLow is set for buttons wired to ground with the pull-up enabled
	ActiveLow bool
}

// configure sets the pull resistor that matches the wiring
func (in InputConfig) configure(gpio GPIODriver) error {
	if in.ActiveLow {
		return gpio.ConfigureInputPullUp(in.Pin)
	}
	return gpio.ConfigureInputPullDown(in.Pin)
}

// level returns the logical (pressed == true) level of the input
func (in InputConfig) level(gpio GPIODriver) bool {
	if in.Pin == NoPin {
		return false
	}
	v := gpio.ReadPin(in.Pin)
	if in.ActiveLow {
		return !v
	}
	return v
}
