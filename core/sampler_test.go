package core

import (
	"errors"
	"testing"
)

func TestTempoFromRawEndpoints(t *testing.T) {
	testCases := []struct {
		raw  ADCValue
		want TempoUnits
	}{
		{0, 511},
		{1, 511},
		{2, 510},
		{511, 256},
		{512, 255},
		{1022, 0},
		{1023, 0},
		{4095, 0}, // out of range, clamped
	}

	for _, tc := range testCases {
		if got := TempoFromRaw(tc.raw); got != tc.want {
			t.Errorf("TempoFromRaw(%d) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestTempoFromRawMonotonic(t *testing.T) {
	prev := TempoFromRaw(0)
	if prev != MaxTempo {
		t.Fatalf("TempoFromRaw(0) = %d, want MaxTempo %d", prev, MaxTempo)
	}
	for raw := ADCValue(1); raw <= ADCMax; raw++ {
		cur := TempoFromRaw(raw)
		if cur > prev {
			t.Fatalf("tempo increased from %d to %d at raw=%d", prev, cur, raw)
		}
		prev = cur
	}
}

func TestSamplerReadTempo(t *testing.T) {
	adc := &mockADC{value: 511}
	s := NewSampler(adc, testTempoADC)

	tempo, err := s.ReadTempo()
	if err != nil {
		t.Fatalf("ReadTempo failed: %v", err)
	}
	if tempo != 256 {
		t.Errorf("Expected tempo 256, got %d", tempo)
	}
	if adc.reads != 1 {
		t.Errorf("Expected 1 conversion, got %d", adc.reads)
	}
}

func TestSamplerReadDiscardingFirst(t *testing.T) {
	adc := &mockADC{seq: []ADCValue{100, 700}}
	s := NewSampler(adc, testTempoADC)

	raw, err := s.ReadDiscardingFirst(3)
	if err != nil {
		t.Fatalf("ReadDiscardingFirst failed: %v", err)
	}
	if raw != 700 {
		t.Errorf("Expected second sample 700, got %d", raw)
	}
	if adc.reads != 2 {
		t.Errorf("Expected 2 conversions, got %d", adc.reads)
	}
}

func TestSamplerDiscardFirstTempo(t *testing.T) {
	adc := &mockADC{seq: []ADCValue{0, 1023}}
	s := NewSampler(adc, testTempoADC)
	s.SetDiscardFirst(true)

	tempo, err := s.ReadTempo()
	if err != nil {
		t.Fatalf("ReadTempo failed: %v", err)
	}
	if tempo != 0 {
		t.Errorf("Expected tempo from the second sample (0), got %d", tempo)
	}
}

func TestSamplerReadError(t *testing.T) {
	wantErr := errors.New("adc fault")
	s := NewSampler(&mockADC{err: wantErr}, testTempoADC)

	if _, err := s.ReadTempo(); !errors.Is(err, wantErr) {
		t.Errorf("Expected %v, got %v", wantErr, err)
	}
	s.SetDiscardFirst(true)
	if _, err := s.ReadTempo(); !errors.Is(err, wantErr) {
		t.Errorf("Expected %v with discard-first, got %v", wantErr, err)
	}
}
