package core

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := testConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.RingSize != 16 || cfg.ShortThreshold != 8 {
		t.Errorf("Unexpected geometry %d/%d", cfg.RingSize, cfg.ShortThreshold)
	}
	if cfg.TicksPerTempoUnit != 512 {
		t.Errorf("Expected 512 ticks per tempo unit, got %d", cfg.TicksPerTempoUnit)
	}
	if cfg.SampleEvery != 2 {
		t.Errorf("Expected tempo sampled every 2nd cycle, got %d", cfg.SampleEvery)
	}
}

func TestConfigValidateErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"empty ring", func(c *Config) { c.RingSize = 0 }, ErrEmptyRing},
		{"ring too large", func(c *Config) { c.RingSize = 33 }, ErrRingTooLarge},
		{"pin count", func(c *Config) { c.Layout.Ring = []GPIOPin{0, 1, 2} }, ErrRingPinCount},
		{"threshold zero", func(c *Config) { c.ShortThreshold = 0 }, ErrBadThreshold},
		{"threshold past ring", func(c *Config) { c.ShortThreshold = 17 }, ErrBadThreshold},
		{"zero ticks", func(c *Config) { c.TicksPerTempoUnit = 0 }, ErrZeroTickPerUnit},
		{"gate percent", func(c *Config) { c.GatePercent = 101 }, ErrBadGatePercent},
		{"indicator on input", func(c *Config) { c.Layout.ShortIndicator = testFreezeBtn }, ErrPinConflict},
		{"ring on indicator", func(c *Config) {
			c.Layout.Ring = make([]GPIOPin, 16)
			for i := range c.Layout.Ring {
				c.Layout.Ring[i] = GPIOPin(i + 10)
			}
		}, ErrPinConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidateSampleEveryZero(t *testing.T) {
	cfg := testConfig()
	cfg.SampleEvery = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.SampleEvery != 1 {
		t.Errorf("Expected SampleEvery coerced to 1, got %d", cfg.SampleEvery)
	}
}
