//go:build rp2040 || rp2350

package main

import (
	"chaser/core"
	"machine"
	"time"
)

func main() {
	// CRITICAL: Disable watchdog on boot to clear any previous state
	// This prevents issues with watchdog persisting across resets
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	InitDebugUART()
	InitUSB()

	cfg := boardConfig(ringUsesPins)

	gpioDriver := NewRPGPIODriver()
	ring, err := newRing(cfg)
	if err != nil {
		fail("ring: " + err.Error())
	}

	controller, err := core.NewController(cfg, core.Drivers{
		ADC:  NewRPAdcDriver(),
		GPIO: gpioDriver,
		Ring: ring,
		Diag: core.NewDiagnostics(DebugPrintln, sendStatus),
	})
	if err != nil {
		fail("config: " + err.Error())
	}

	DebugPrintln("ring backend: " + ringBackend)
	if err := controller.Start(); err != nil {
		controller.Diagnostics().DumpEvents()
		fail("start: " + err.Error())
	}
	sendBanner(cfg)

	controller.Run()
}

// fail reports msg on the debug UART and flashes the onboard LED rapidly
// forever
func fail(msg string) {
	DebugPrintln("FATAL " + msg)

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(100 * time.Millisecond)
		led.Low()
		time.Sleep(100 * time.Millisecond)
	}
}
