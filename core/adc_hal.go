package core

// ADCChannelID identifies a logical ADC channel.
type ADCChannelID uint8

// ADCValue is the raw ADC reading as seen by the rest of the firmware.
// Convention here: 10-bit value (0..ADCMax), whatever the hardware resolution.
// Drivers for wider converters shift their result down.
type ADCValue uint16

// ADCMax is the largest value a driver may return from ReadRaw
const ADCMax ADCValue = 1023

// ADCDriver is the abstract ADC interface that core code uses.
type ADCDriver interface {
	// ConfigureChannel prepares a channel for analog input.
	// For pin-muxed channels, this should set pin to analog mode.
	ConfigureChannel(ch ADCChannelID) error

	// ReadRaw performs a one-shot conversion on the given channel and
	// busy-waits for it to complete. A conversion that never completes
	// hangs here; there is no timeout.
	ReadRaw(ch ADCChannelID) (ADCValue, error)
}
