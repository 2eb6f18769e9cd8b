package core

// Drivers bundles the hardware the controller runs on
type Drivers struct {
	ADC  ADCDriver
	GPIO GPIODriver

	// Ring drives the chase ring. Nil selects a GPIORing over Layout.Ring.
	Ring RingWriter

	// Tick, if set, is called once per inner poll iteration. Hardware
	// targets leave it nil and let the loop spin; the host simulator uses
	// it to slow the loop down to wall-clock time.
	Tick func()

	// Diag receives debug output, status snapshots and events (may be nil)
	Diag *Diagnostics
}

// Controller is the chaser's control loop and owns all of its state.
//
// Everything runs on the caller's goroutine: the delay between steps is a
// busy-wait that polls both toggle inputs on every iteration, so a toggle
// latches as soon as it is seen instead of at the next step. Controller is
// not safe for concurrent use.
type Controller struct {
	cfg     Config
	ring    RingConfig
	gpio    GPIODriver
	bank    *OutputBank
	sampler *Sampler
	diag    *Diagnostics
	tick    func()

	chase       ChaseState
	modes       ModeState
	freezeInput EdgeState
	shortInput  EdgeState

	tempo         TempoUnits
	reportedTempo TempoUnits
	sampled       bool
	cycle         uint32
}

// NewController validates cfg and wires the drivers. No hardware is
// touched until Start.
func NewController(cfg Config, d Drivers) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if d.ADC == nil || d.GPIO == nil {
		return nil, ErrNoDriver
	}
	ring := d.Ring
	if ring == nil {
		if len(cfg.Layout.Ring) == 0 {
			return nil, ErrRingPinCount
		}
		ring = NewGPIORing(d.GPIO, cfg.Layout.Ring)
	}
	diag := d.Diag
	if diag == nil {
		diag = NewDiagnostics(nil, nil)
	}

	sampler := NewSampler(d.ADC, cfg.TempoChannel)
	sampler.SetDiscardFirst(cfg.DiscardFirstSample)

	return &Controller{
		cfg:     cfg,
		ring:    cfg.ring(),
		gpio:    d.GPIO,
		bank:    NewOutputBank(ring, d.GPIO, cfg.Layout),
		sampler: sampler,
		diag:    diag,
		tick:    d.Tick,
		chase:   ChaseState{Index: 0, ActiveCount: cfg.RingSize},
	}, nil
}

// Start configures the ADC channel, the outputs and the toggle inputs,
// clears every light and prints the startup banner
func (c *Controller) Start() error {
	if err := c.sampler.adc.ConfigureChannel(c.cfg.TempoChannel); err != nil {
		return err
	}
	if err := c.bank.Configure(); err != nil {
		return err
	}
	for _, in := range []InputConfig{c.cfg.FreezeInput, c.cfg.ShortInput} {
		if in.Pin == NoPin {
			continue
		}
		if err := in.configure(c.gpio); err != nil {
			return err
		}
	}
	c.diag.Println("chaser " + Version +
		" ring=" + utoa(uint32(c.ring.Size)) +
		" short=" + utoa(uint32(c.ring.ShortThreshold)))
	return nil
}

// Run executes cycles forever
func (c *Controller) Run() {
	for {
		c.Cycle()
	}
}

// Cycle runs one outer step: sample the tempo (every SampleEvery-th
// cycle), render, advance, then wait tempo*TicksPerTempoUnit polls.
func (c *Controller) Cycle() {
	if c.cycle%c.cfg.SampleEvery == 0 {
		c.sampleTempo()
	}
	c.render()
	c.chase = Advance(c.chase, c.modes, c.ring)
	c.wait(uint32(c.tempo) * c.cfg.TicksPerTempoUnit)
	c.cycle++
}

// Chase returns the current chase position
func (c *Controller) Chase() ChaseState { return c.chase }

// Modes returns the current mode flags
func (c *Controller) Modes() ModeState { return c.modes }

// Tempo returns the most recently sampled tempo
func (c *Controller) Tempo() TempoUnits { return c.tempo }

// Diagnostics returns the controller's diagnostics sink
func (c *Controller) Diagnostics() *Diagnostics { return c.diag }

// Snapshot returns the reportable state
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Cycle:     c.cycle,
		Index:     uint8(c.chase.Index),
		Freeze:    c.modes.Freeze,
		ShortMode: c.modes.ShortMode,
		Tempo:     c.tempo,
	}
}

func (c *Controller) sampleTempo() {
	tempo, err := c.sampler.ReadTempo()
	if err != nil {
		c.diag.Record(EvtSampleError, c.cycle, 0, 0)
		return
	}
	c.tempo = tempo
	if !c.sampled || (tempo != c.reportedTempo && absDiff(tempo, c.reportedTempo) >= c.cfg.TempoHysteresis) {
		c.sampled = true
		c.reportedTempo = tempo
		c.diag.Record(EvtTempoChange, c.cycle, 0, uint32(tempo))
		c.diag.Report(c.Snapshot())
	}
}

func (c *Controller) render() {
	if err := c.bank.Show(Render(c.chase, c.modes)); err != nil {
		c.diag.Record(EvtDriverError, c.cycle, 0, 0)
	}
}

// wait is the timed busy-wait. Polling happens inside it, not after it:
// toggle latency is one poll, independent of the tempo.
func (c *Controller) wait(delayTicks uint32) {
	var gateEnd uint32
	if c.cfg.Layout.Gate != NoPin && c.cfg.GatePercent > 0 {
		gateEnd = uint32(uint64(delayTicks) * uint64(c.cfg.GatePercent) / 100)
		if gateEnd > 0 {
			c.setIndicator(IndicatorGate, true, 0)
		}
	}

	for t := uint32(0); t < delayTicks; t++ {
		if gateEnd > 0 && t == gateEnd {
			c.setIndicator(IndicatorGate, false, t)
		}
		c.poll(t)
		if c.tick != nil {
			c.tick()
		}
	}
}

// poll samples both toggle inputs exactly once and applies any edges
// immediately, updating the affected indicator without waiting for the
// next render
func (c *Controller) poll(t uint32) {
	freezeEdge := c.freezeInput.Sample(c.cfg.FreezeInput.level(c.gpio), c.cfg.DebouncePolls)
	shortEdge := c.shortInput.Sample(c.cfg.ShortInput.level(c.gpio), c.cfg.DebouncePolls)
	if !freezeEdge && !shortEdge {
		return
	}

	c.modes = ApplyToggles(c.modes, freezeEdge, shortEdge)
	if freezeEdge {
		c.diag.Record(EvtFreezeToggle, c.cycle, t, boolValue(c.modes.Freeze))
		c.setIndicator(IndicatorFreeze, c.modes.Freeze, t)
	}
	if shortEdge {
		c.chase.ActiveCount = activeCountFor(c.modes, c.ring)
		c.diag.Record(EvtShortToggle, c.cycle, t, boolValue(c.modes.ShortMode))
		c.setIndicator(IndicatorShort, c.modes.ShortMode, t)
	}
	c.diag.Report(c.Snapshot())
}

func (c *Controller) setIndicator(ind Indicator, on bool, t uint32) {
	if err := c.bank.SetIndicator(ind, on); err != nil {
		c.diag.Record(EvtDriverError, c.cycle, t, uint32(ind))
	}
}

func boolValue(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
