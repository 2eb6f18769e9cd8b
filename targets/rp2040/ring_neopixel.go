//go:build (rp2040 || rp2350) && neopixel

package main

import (
	"chaser/core"
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

const (
	ringBackend  = "neopixel"
	ringUsesPins = false
)

var (
	colorOn  = color.RGBA{R: 255, G: 64, B: 0}
	colorOff = color.RGBA{}
)

// pixelRing shows the ring on a WS2812 strip, one pixel per light
type pixelRing struct {
	dev    ws2812.Device
	pixels []color.RGBA
}

func newRing(cfg core.Config) (core.RingWriter, error) {
	return &pixelRing{
		dev:    ws2812.New(neopixelData),
		pixels: make([]color.RGBA, cfg.RingSize),
	}, nil
}

func (r *pixelRing) Configure() error {
	neopixelData.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return r.WriteMask(0)
}

func (r *pixelRing) WriteMask(mask uint32) error {
	for i := range r.pixels {
		if mask&(1<<uint(i)) != 0 {
			r.pixels[i] = colorOn
		} else {
			r.pixels[i] = colorOff
		}
	}
	return r.dev.WriteColors(r.pixels)
}
