package core

// MaxRingSize is the widest chase ring a Frame mask can carry
const MaxRingSize = 32

// Indicator names one of the auxiliary lights outside the chase ring
type Indicator uint8

const (
	IndicatorFreeze Indicator = iota
	IndicatorShort
	IndicatorGate
)

// Frame is the set of lights to activate for one render.
// Bit i of Ring corresponds to ring position i.
type Frame struct {
	Ring   uint32
	Freeze bool
	Short  bool
}

// Layout maps the logical lights onto output pins.
// Ring is only consulted by GPIORing; chained backends address the ring
// by bit position and ignore it.
type Layout struct {
	Ring            []GPIOPin
	FreezeIndicator GPIOPin
	ShortIndicator  GPIOPin
	// Gate is raised for the first part of every delay window (NoPin disables it)
	Gate GPIOPin
}

func (l Layout) indicatorPin(ind Indicator) GPIOPin {
	switch ind {
	case IndicatorFreeze:
		return l.FreezeIndicator
	case IndicatorShort:
		return l.ShortIndicator
	case IndicatorGate:
		return l.Gate
	default:
		return NoPin
	}
}

// RingWriter is the bulk setOutputs(bitmask) surface of the ring hardware.
// Implementations exist for direct GPIO, 74HC595 chains and LED strips.
type RingWriter interface {
	// Configure prepares the hardware and leaves every ring light off
	Configure() error

	// WriteMask drives ring light i on iff bit i of mask is set
	WriteMask(mask uint32) error
}

// GPIORing drives one GPIO pin per ring light
type GPIORing struct {
	gpio GPIODriver
	pins []GPIOPin
}

// NewGPIORing creates a ring writer over the given pins, in ring order
func NewGPIORing(gpio GPIODriver, pins []GPIOPin) *GPIORing {
	return &GPIORing{gpio: gpio, pins: pins}
}

// Configure sets every ring pin as an output, driven low
func (r *GPIORing) Configure() error {
	for _, pin := range r.pins {
		if err := r.gpio.ConfigureOutput(pin); err != nil {
			return err
		}
		if err := r.gpio.SetPin(pin, false); err != nil {
			return err
		}
	}
	return nil
}

// WriteMask sets each pin from its bit in mask
func (r *GPIORing) WriteMask(mask uint32) error {
	for i, pin := range r.pins {
		if err := r.gpio.SetPin(pin, mask&(1<<uint(i)) != 0); err != nil {
			return err
		}
	}
	return nil
}

// OutputBank combines the ring with the directly wired indicator lights.
// It provides the clearAllOutputs / setOutput / setOutputs operations the
// controller renders through.
type OutputBank struct {
	ring   RingWriter
	gpio   GPIODriver
	layout Layout
}

// NewOutputBank creates an output bank. Indicators always live on gpio.
func NewOutputBank(ring RingWriter, gpio GPIODriver, layout Layout) *OutputBank {
	return &OutputBank{ring: ring, gpio: gpio, layout: layout}
}

// Configure prepares the ring and every wired indicator pin
func (b *OutputBank) Configure() error {
	if err := b.ring.Configure(); err != nil {
		return err
	}
	for _, ind := range []Indicator{IndicatorFreeze, IndicatorShort, IndicatorGate} {
		pin := b.layout.indicatorPin(ind)
		if pin == NoPin {
			continue
		}
		if err := b.gpio.ConfigureOutput(pin); err != nil {
			return err
		}
	}
	return b.ClearAll()
}

// ClearAll turns every light off, indicators and gate included
func (b *OutputBank) ClearAll() error {
	if err := b.ring.WriteMask(0); err != nil {
		return err
	}
	for _, ind := range []Indicator{IndicatorFreeze, IndicatorShort, IndicatorGate} {
		if err := b.SetIndicator(ind, false); err != nil {
			return err
		}
	}
	return nil
}

// Show clears all outputs, then activates exactly the lights in f
func (b *OutputBank) Show(f Frame) error {
	if err := b.ClearAll(); err != nil {
		return err
	}
	if err := b.ring.WriteMask(f.Ring); err != nil {
		return err
	}
	if f.Freeze {
		if err := b.SetIndicator(IndicatorFreeze, true); err != nil {
			return err
		}
	}
	if f.Short {
		if err := b.SetIndicator(IndicatorShort, true); err != nil {
			return err
		}
	}
	return nil
}

// SetIndicator drives a single auxiliary light. Unwired lights are ignored.
func (b *OutputBank) SetIndicator(ind Indicator, on bool) error {
	pin := b.layout.indicatorPin(ind)
	if pin == NoPin {
		return nil
	}
	return b.gpio.SetPin(pin, on)
}
