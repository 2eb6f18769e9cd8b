package core

// TempoUnits is the potentiometer position mapped to delay length.
// Large when the control is turned towards minimum, 0 at maximum.
type TempoUnits uint16

// MaxTempo is the tempo produced by a raw sample of 0
const MaxTempo TempoUnits = TempoUnits(ADCMax >> 1)

// TempoFromRaw maps a 10-bit sample to tempo units: (1023 - raw) >> 1.
// Out of range samples are clamped first.
func TempoFromRaw(raw ADCValue) TempoUnits {
	raw = clamp(raw, 0, ADCMax)
	return TempoUnits((ADCMax - raw) >> 1)
}

// Sampler reads the tempo control from a fixed ADC channel
type Sampler struct {
	adc          ADCDriver
	ch           ADCChannelID
	discardFirst bool
}

// NewSampler creates a sampler for channel ch
func NewSampler(adc ADCDriver, ch ADCChannelID) *Sampler {
	return &Sampler{adc: adc, ch: ch}
}

// SetDiscardFirst makes ReadTempo throw away one conversion before each read
func (s *Sampler) SetDiscardFirst(discard bool) {
	s.discardFirst = discard
}

// ReadTempo converts the tempo channel once and maps it to tempo units
func (s *Sampler) ReadTempo() (TempoUnits, error) {
	var (
		raw ADCValue
		err error
	)
	if s.discardFirst {
		raw, err = s.ReadDiscardingFirst(s.ch)
	} else {
		raw, err = s.adc.ReadRaw(s.ch)
	}
	if err != nil {
		return 0, err
	}
	return TempoFromRaw(raw), nil
}

// ReadDiscardingFirst performs two back-to-back conversions on ch and
// returns the second. The first conversion after switching the multiplexer
// can still carry charge from the previous channel.
func (s *Sampler) ReadDiscardingFirst(ch ADCChannelID) (ADCValue, error) {
	if _, err := s.adc.ReadRaw(ch); err != nil {
		return 0, err
	}
	return s.adc.ReadRaw(ch)
}
