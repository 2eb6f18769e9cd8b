package core

// mockGPIO is a test implementation of GPIODriver.
// Inputs are scripted per pin as a function of the read count.
type mockGPIO struct {
	outputs map[GPIOPin]bool
	modes   map[GPIOPin]string
	inputs  map[GPIOPin]func(n int) bool
	reads   map[GPIOPin]int

	// sets logs every SetPin call in order
	sets []pinSet
}

type pinSet struct {
	pin   GPIOPin
	value bool
}

func newMockGPIO() *mockGPIO {
	return &mockGPIO{
		outputs: make(map[GPIOPin]bool),
		modes:   make(map[GPIOPin]string),
		inputs:  make(map[GPIOPin]func(n int) bool),
		reads:   make(map[GPIOPin]int),
	}
}

func (m *mockGPIO) ConfigureOutput(pin GPIOPin) error {
	m.modes[pin] = "out"
	m.outputs[pin] = false
	return nil
}

func (m *mockGPIO) ConfigureInputPullUp(pin GPIOPin) error {
	m.modes[pin] = "in-up"
	return nil
}

func (m *mockGPIO) ConfigureInputPullDown(pin GPIOPin) error {
	m.modes[pin] = "in-down"
	return nil
}

func (m *mockGPIO) SetPin(pin GPIOPin, value bool) error {
	m.outputs[pin] = value
	m.sets = append(m.sets, pinSet{pin, value})
	return nil
}

func (m *mockGPIO) GetPin(pin GPIOPin) (bool, error) {
	return m.ReadPin(pin), nil
}

func (m *mockGPIO) ReadPin(pin GPIOPin) bool {
	n := m.reads[pin]
	m.reads[pin] = n + 1
	if f, ok := m.inputs[pin]; ok {
		return f(n)
	}
	return m.outputs[pin]
}

// mockADC returns a fixed sample, or a scripted sequence
type mockADC struct {
	value      ADCValue
	seq        []ADCValue
	reads      int
	err        error
	configured map[ADCChannelID]bool
}

func (m *mockADC) ConfigureChannel(ch ADCChannelID) error {
	if m.configured == nil {
		m.configured = make(map[ADCChannelID]bool)
	}
	m.configured[ch] = true
	return nil
}

func (m *mockADC) ReadRaw(ch ADCChannelID) (ADCValue, error) {
	n := m.reads
	m.reads++
	if m.err != nil {
		return 0, m.err
	}
	if n < len(m.seq) {
		return m.seq[n], nil
	}
	return m.value, nil
}

// mockRing records every mask written
type mockRing struct {
	configured bool
	masks      []uint32
}

func (r *mockRing) Configure() error {
	r.configured = true
	return nil
}

func (r *mockRing) WriteMask(mask uint32) error {
	r.masks = append(r.masks, mask)
	return nil
}

func (r *mockRing) last() uint32 {
	if len(r.masks) == 0 {
		return 0
	}
	return r.masks[len(r.masks)-1]
}

// Test board: ring on a chained writer, indicators and inputs on GPIO
const (
	testFreezeLED GPIOPin = 20
	testShortLED  GPIOPin = 21
	testGate      GPIOPin = 22
	testFreezeBtn GPIOPin = 14
	testShortBtn  GPIOPin = 15
)

const testTempoADC ADCChannelID = 0

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Layout.FreezeIndicator = testFreezeLED
	cfg.Layout.ShortIndicator = testShortLED
	cfg.FreezeInput = InputConfig{Pin: testFreezeBtn}
	cfg.ShortInput = InputConfig{Pin: testShortBtn}
	cfg.TempoChannel = testTempoADC
	return cfg
}
