//go:build rp2040 || rp2350

package main

import (
	"chaser/core"
	"chaser/protocol"
	"machine"
)

var (
	outputBuffer *protocol.ScratchOutput
	framer       *protocol.Framer

	// USB connection state tracking
	usbWasDisconnected       bool
	consecutiveWriteFailures uint32
	framesDropped            uint32
)

// InitUSB initializes USB serial communication
// TinyGo automatically sets up USB CDC-ACM on RP2040
func InitUSB() {
	// Configure machine.Serial (which is USB CDC on RP2040)
	err := machine.Serial.Configure(machine.UARTConfig{})
	if err != nil {
		return
	}

	outputBuffer = protocol.NewScratchOutput()
	framer = protocol.NewFramer(outputBuffer)
}

// USBWriteBytes writes multiple bytes to USB
func USBWriteBytes(data []byte) (int, error) {
	n, err := machine.Serial.Write(data)
	return n, err
}

// sendBanner announces the firmware to a listening monitor
func sendBanner(cfg core.Config) {
	if framer == nil {
		return
	}
	framer.EncodeFrame(func(output protocol.OutputBuffer) {
		protocol.EncodeBanner(output, protocol.Banner{
			Version:        core.Version,
			RingSize:       uint8(cfg.RingSize),
			ShortThreshold: uint8(cfg.ShortThreshold),
		})
	})
	writeUSB()
}

// sendStatus is the controller's status sink: one frame per snapshot on
// USB, plus a text line on the debug UART
func sendStatus(s core.Snapshot) {
	DebugPrintln(core.FormatSnapshot(s))
	if framer == nil {
		return
	}
	framer.EncodeFrame(func(output protocol.OutputBuffer) {
		protocol.EncodeStatus(output, protocol.Status{
			Cycle:     s.Cycle,
			Index:     s.Index,
			Freeze:    s.Freeze,
			ShortMode: s.ShortMode,
			Tempo:     uint16(s.Tempo),
		})
	})
	writeUSB()
}

// writeUSB writes the pending frames from the output buffer to USB.
// With no host attached the data is dropped rather than stalling the loop.
func writeUSB() {
	result := outputBuffer.Result()
	if len(result) == 0 {
		return
	}
	if usbWasDisconnected && framesDropped%16 != 0 {
		// Only probe the port every 16th frame while nobody is listening
		framesDropped++
		outputBuffer.Reset()
		return
	}

	written := 0
	for written < len(result) {
		n, err := USBWriteBytes(result[written:])
		if err != nil || n == 0 {
			// Write error or no progress - likely disconnect
			consecutiveWriteFailures++
			if consecutiveWriteFailures > 10 {
				usbWasDisconnected = true
				consecutiveWriteFailures = 0
			}
			framesDropped++
			// Don't keep trying to send stale data
			outputBuffer.Reset()
			return
		}
		written += n
	}

	consecutiveWriteFailures = 0
	usbWasDisconnected = false
	outputBuffer.Reset()
}
