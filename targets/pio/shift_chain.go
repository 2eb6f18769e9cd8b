//go:build rp2040 || rp2350

package pio

// PIO 74HC595 chain driver using tinygo-org/pio package
// The state machine clocks the ring mask out and latches it, so a render
// costs the CPU a single FIFO write

import (
	"errors"
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

var (
	ErrNoStateMachine = errors.New("no free PIO state machine")
	ErrChainWidth     = errors.New("shift chain width must be 1-32 bits")
)

// PIO program for shifting one frame into a 74HC595 chain
// Data word format: ring mask left-aligned, MSB (farthest light) first
//
// Pins: OUT base = data, SET base = clock, SET base+1 = latch
//
// Program flow:
//  1. Pull the 32-bit frame from the FIFO
//  2. Load the bit counter into X
//  3. Shift one bit onto the data pin, pulse the clock
//  4. Repeat until X runs out
//  5. Pulse the latch to present the frame on the outputs
//
// buildShiftProgram creates the chain program using AssemblerV0
func buildShiftProgram(bits uint8) []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Pull(false, true).Encode(),            // 0: pull block
		asm.Set(rp2pio.SetDestX, bits-1).Encode(), // 1: set x, bits-1
		// bit_loop:
		asm.Out(rp2pio.OutDestPins, 1).Delay(1).Encode(),        // 2: out pins, 1 [1]
		asm.Set(rp2pio.SetDestPins, 1).Delay(1).Encode(),        // 3: set pins, 0b01 [1] (clock high)
		asm.Set(rp2pio.SetDestPins, 0).Encode(),                 // 4: set pins, 0b00
		asm.Jmp(shiftPIOOrigin+2, rp2pio.JmpXNZeroDec).Encode(), // 5: jmp x--, bit_loop
		asm.Set(rp2pio.SetDestPins, 2).Delay(1).Encode(),        // 6: set pins, 0b10 [1] (latch high)
		asm.Set(rp2pio.SetDestPins, 0).Encode(),                 // 7: set pins, 0b00
		// .wrap
	}
}

const shiftPIOOrigin = 0 // Load at offset 0 for correct jump addresses

// ShiftChain drives a 74HC595 chain from a PIO state machine.
// It implements core.RingWriter.
type ShiftChain struct {
	pio    *rp2pio.PIO
	sm     rp2pio.StateMachine
	data   machine.Pin
	clock  machine.Pin // latch is clock+1
	bits   uint8
	pioNum uint8
	smNum  uint8
}

// NewShiftChain claims a state machine for a chain of the given width.
// latch must be wired to the GPIO following clock.
func NewShiftChain(data, clock machine.Pin, bits uint8) (*ShiftChain, error) {
	if bits == 0 || bits > 32 {
		return nil, ErrChainWidth
	}
	pioNum, smNum, ok := allocatePIO()
	if !ok {
		return nil, ErrNoStateMachine
	}

	var pioHW *rp2pio.PIO
	if pioNum == 0 {
		pioHW = rp2pio.PIO0
	} else {
		pioHW = rp2pio.PIO1
	}

	return &ShiftChain{
		pio:    pioHW,
		sm:     pioHW.StateMachine(smNum),
		data:   data,
		clock:  clock,
		bits:   bits,
		pioNum: pioNum,
		smNum:  smNum,
	}, nil
}

// Configure loads the program, starts the state machine and blanks the chain
func (c *ShiftChain) Configure() error {
	c.sm.TryClaim()

	program := buildShiftProgram(c.bits)
	offset, err := c.pio.AddProgram(program, shiftPIOOrigin)
	if err != nil {
		releasePIO(c.pioNum, c.smNum)
		return err
	}

	latch := c.clock + 1
	c.data.Configure(machine.PinConfig{Mode: c.pio.PinMode()})
	c.clock.Configure(machine.PinConfig{Mode: c.pio.PinMode()})
	latch.Configure(machine.PinConfig{Mode: c.pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()

	// SET pins: clock and latch
	cfg.SetSetPins(c.clock, 2)

	// OUT pins: serial data
	cfg.SetOutPins(c.data, 1)

	// Shift left so the first bit out is the MSB, explicit PULL
	cfg.SetOutShift(false, false, 32)

	cfg.SetWrap(offset+uint8(len(program))-1, offset)

	// 125MHz / 16 state machine clock
	cfg.SetClkDivIntFrac(16, 0)

	// Initialize state machine FIRST
	c.sm.Init(offset, cfg)

	// THEN set pin directions (must be after Init!)
	c.sm.SetPindirsConsecutive(c.data, 1, true)
	c.sm.SetPindirsConsecutive(c.clock, 2, true)
	c.sm.SetPinsConsecutive(c.clock, 2, false)

	c.sm.SetEnabled(true)

	return c.WriteMask(0)
}

// WriteMask queues one frame. Bit i lights output i of the chain.
func (c *ShiftChain) WriteMask(mask uint32) error {
	word := mask << (32 - uint32(c.bits))

	for c.sm.IsTxFIFOFull() {
		// Busy wait - the program drains a frame in a few microseconds
	}
	c.sm.TxPut(word)
	return nil
}
