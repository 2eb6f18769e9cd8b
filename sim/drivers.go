// Package sim provides virtual chaser hardware for running the controller
// on a host: a potentiometer, push buttons, a light ring and a terminal
// renderer.
package sim

import (
	"sync"
	"sync/atomic"

	"chaser/core"
)

// Pot is a virtual potentiometer wired to every ADC channel
type Pot struct {
	raw   atomic.Uint32
	reads atomic.Uint32
}

// NewPot creates a pot at the given raw position
func NewPot(raw core.ADCValue) *Pot {
	p := &Pot{}
	p.Set(raw)
	return p
}

// Set moves the wiper, clamped to the converter range
func (p *Pot) Set(raw core.ADCValue) {
	if raw > core.ADCMax {
		raw = core.ADCMax
	}
	p.raw.Store(uint32(raw))
}

// Nudge moves the wiper by delta, clamped to the converter range
func (p *Pot) Nudge(delta int) {
	v := int(p.raw.Load()) + delta
	if v < 0 {
		v = 0
	}
	p.Set(core.ADCValue(min(v, int(core.ADCMax))))
}

// Value returns the wiper position
func (p *Pot) Value() core.ADCValue {
	return core.ADCValue(p.raw.Load())
}

// Reads returns the number of conversions performed
func (p *Pot) Reads() uint32 {
	return p.reads.Load()
}

func (p *Pot) ConfigureChannel(core.ADCChannelID) error {
	return nil
}

func (p *Pot) ReadRaw(core.ADCChannelID) (core.ADCValue, error) {
	p.reads.Add(1)
	return p.Value(), nil
}

// GPIO is a virtual pin bank. Inputs idle at their pull level; Press holds
// an input at the opposite level for a number of reads.
type GPIO struct {
	mu     sync.Mutex
	levels map[core.GPIOPin]bool
	pullUp map[core.GPIOPin]bool
	held   map[core.GPIOPin]int
}

// NewGPIO creates an empty pin bank
func NewGPIO() *GPIO {
	return &GPIO{
		levels: make(map[core.GPIOPin]bool),
		pullUp: make(map[core.GPIOPin]bool),
		held:   make(map[core.GPIOPin]int),
	}
}

func (g *GPIO) ConfigureOutput(pin core.GPIOPin) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.levels[pin] = false
	return nil
}

func (g *GPIO) ConfigureInputPullUp(pin core.GPIOPin) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pullUp[pin] = true
	g.levels[pin] = true
	return nil
}

func (g *GPIO) ConfigureInputPullDown(pin core.GPIOPin) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pullUp[pin] = false
	g.levels[pin] = false
	return nil
}

func (g *GPIO) SetPin(pin core.GPIOPin, value bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.levels[pin] = value
	return nil
}

func (g *GPIO) GetPin(pin core.GPIOPin) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.levels[pin], nil
}

// ReadPin returns the input level, counting down an active press
func (g *GPIO) ReadPin(pin core.GPIOPin) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held[pin] > 0 {
		g.held[pin]--
		return !g.pullUp[pin]
	}
	return g.pullUp[pin]
}

// Press holds pin at its active level for the next polls reads
func (g *GPIO) Press(pin core.GPIOPin, polls int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.held[pin] = polls
}

// Level returns the last level written to an output
func (g *GPIO) Level(pin core.GPIOPin) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.levels[pin]
}

// Ring is a virtual light ring holding the last mask written
type Ring struct {
	mask   atomic.Uint32
	writes atomic.Uint32
}

func (r *Ring) Configure() error {
	r.mask.Store(0)
	return nil
}

func (r *Ring) WriteMask(mask uint32) error {
	r.mask.Store(mask)
	r.writes.Add(1)
	return nil
}

// Mask returns the lights currently on
func (r *Ring) Mask() uint32 {
	return r.mask.Load()
}

// Writes returns the number of frames written
func (r *Ring) Writes() uint32 {
	return r.writes.Load()
}
