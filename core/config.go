package core

import "errors"

// Version is reported in the startup banner
const Version = "0.3.0"

// Reference configuration
const (
	DefaultRingSize          = 16
	DefaultShortThreshold    = 8
	DefaultTicksPerTempoUnit = 512
	DefaultSampleEvery       = 2
	DefaultTempoHysteresis   = 4
)

var (
	ErrEmptyRing       = errors.New("chase ring is empty")
	ErrRingTooLarge    = errors.New("chase ring exceeds 32 lights")
	ErrRingPinCount    = errors.New("ring pin count does not match ring size")
	ErrBadThreshold    = errors.New("short threshold outside ring")
	ErrPinConflict     = errors.New("pin assigned twice")
	ErrBadGatePercent  = errors.New("gate percent above 100")
	ErrNoDriver        = errors.New("driver not configured")
	ErrZeroTickPerUnit = errors.New("ticks per tempo unit is zero")
)

// Config is the compile-time configuration of the chaser.
// Targets start from DefaultConfig and fill in their board pins.
type Config struct {
	RingSize       int
	ShortThreshold int
	Layout         Layout

	FreezeInput InputConfig
	ShortInput  InputConfig

	TempoChannel ADCChannelID

	// TicksPerTempoUnit is the number of inner poll iterations per tempo unit
	TicksPerTempoUnit uint32

	// SampleEvery reads the tempo control on every n-th cycle (1 = always)
	SampleEvery uint32

	// DiscardFirstSample throws away one conversion before each tempo read
	DiscardFirstSample bool

	// DebouncePolls is the minimum number of polls between two accepted
	// edges on the same input. 0 relies on the poll interval alone.
	DebouncePolls uint32

	// GatePercent is the share of each delay window the gate output is high
	GatePercent uint8

	// TempoHysteresis suppresses status reports for tempo jitter below it
	TempoHysteresis TempoUnits
}

// DefaultConfig returns the reference configuration without board pins
func DefaultConfig() Config {
	return Config{
		RingSize:       DefaultRingSize,
		ShortThreshold: DefaultShortThreshold,
		Layout: Layout{
			FreezeIndicator: NoPin,
			ShortIndicator:  NoPin,
			Gate:            NoPin,
		},
		FreezeInput:       InputConfig{Pin: NoPin},
		ShortInput:        InputConfig{Pin: NoPin},
		TicksPerTempoUnit: DefaultTicksPerTempoUnit,
		SampleEvery:       DefaultSampleEvery,
		TempoHysteresis:   DefaultTempoHysteresis,
	}
}

// Validate checks the configuration for impossible geometry and
// double-assigned pins
func (c *Config) Validate() error {
	if c.RingSize <= 0 {
		return ErrEmptyRing
	}
	if c.RingSize > MaxRingSize {
		return ErrRingTooLarge
	}
	if len(c.Layout.Ring) != 0 && len(c.Layout.Ring) != c.RingSize {
		return ErrRingPinCount
	}
	if c.ShortThreshold <= 0 || c.ShortThreshold > c.RingSize {
		return ErrBadThreshold
	}
	if c.TicksPerTempoUnit == 0 {
		return ErrZeroTickPerUnit
	}
	if c.GatePercent > 100 {
		return ErrBadGatePercent
	}
	if c.SampleEvery == 0 {
		c.SampleEvery = 1
	}

	seen := make(map[GPIOPin]bool)
	pins := append([]GPIOPin{}, c.Layout.Ring...)
	pins = append(pins,
		c.Layout.FreezeIndicator,
		c.Layout.ShortIndicator,
		c.Layout.Gate,
		c.FreezeInput.Pin,
		c.ShortInput.Pin,
	)
	for _, pin := range pins {
		if pin == NoPin {
			continue
		}
		if seen[pin] {
			return ErrPinConflict
		}
		seen[pin] = true
	}
	return nil
}

func (c *Config) ring() RingConfig {
	return RingConfig{Size: c.RingSize, ShortThreshold: c.ShortThreshold}
}
