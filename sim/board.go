package sim

import (
	"context"

	"chaser/core"
)

// Virtual pin assignments
const (
	PinFreezeButton core.GPIOPin = 14
	PinShortButton  core.GPIOPin = 15
	PinFreezeLED    core.GPIOPin = 20
	PinShortLED     core.GPIOPin = 21
	PinGate         core.GPIOPin = 22
)

// Board is a complete virtual chaser: hardware plus its configuration
type Board struct {
	Pot    *Pot
	GPIO   *GPIO
	Ring   *Ring
	Config core.Config
}

// NewBoard creates a board with the reference configuration and active-low
// buttons, the pot starting at raw
func NewBoard(raw core.ADCValue) *Board {
	cfg := core.DefaultConfig()
	cfg.Layout.FreezeIndicator = PinFreezeLED
	cfg.Layout.ShortIndicator = PinShortLED
	cfg.Layout.Gate = PinGate
	cfg.FreezeInput = core.InputConfig{Pin: PinFreezeButton, ActiveLow: true}
	cfg.ShortInput = core.InputConfig{Pin: PinShortButton, ActiveLow: true}

	return &Board{
		Pot:    NewPot(raw),
		GPIO:   NewGPIO(),
		Ring:   &Ring{},
		Config: cfg,
	}
}

// Press presses a named button ("freeze" or "short")
func (b *Board) Press(button string, polls int) {
	if polls <= 0 {
		polls = DefaultHoldPolls
	}
	switch button {
	case "freeze":
		b.GPIO.Press(b.Config.FreezeInput.Pin, polls)
	case "short":
		b.GPIO.Press(b.Config.ShortInput.Pin, polls)
	}
}

// Options tune a Runner
type Options struct {
	// Tick is called once per inner poll (see Pacer)
	Tick func()
	// Script is applied cycle by cycle (may be nil)
	Script *Script
	// Renderer draws the board after every cycle and status change (may be nil)
	Renderer *Renderer
	// Debug receives the controller's text output (may be nil)
	Debug core.DebugWriter
}

// Runner drives a controller over a virtual board
type Runner struct {
	board    *Board
	ctrl     *core.Controller
	script   *Script
	next     int
	renderer *Renderer
}

// NewRunner builds and starts a controller on b
func NewRunner(b *Board, opts Options) (*Runner, error) {
	r := &Runner{board: b, script: opts.Script, renderer: opts.Renderer}

	var status core.StatusWriter
	if opts.Renderer != nil {
		status = opts.Renderer.Draw
	}
	ctrl, err := core.NewController(b.Config, core.Drivers{
		ADC:  b.Pot,
		GPIO: b.GPIO,
		Ring: b.Ring,
		Tick: opts.Tick,
		Diag: core.NewDiagnostics(opts.Debug, status),
	})
	if err != nil {
		return nil, err
	}
	if err := ctrl.Start(); err != nil {
		return nil, err
	}
	r.ctrl = ctrl
	return r, nil
}

// Controller returns the controller under simulation
func (r *Runner) Controller() *core.Controller {
	return r.ctrl
}

// Step applies the script entries due for the next cycle and runs it
func (r *Runner) Step() {
	cycle := r.ctrl.Snapshot().Cycle
	if r.script != nil {
		for r.next < len(r.script.Steps) && r.script.Steps[r.next].Cycle <= cycle {
			step := r.script.Steps[r.next]
			if step.Pot != nil {
				r.board.Pot.Set(core.ADCValue(*step.Pot))
			}
			if step.Press != "" {
				r.board.Press(step.Press, step.HoldPolls)
			}
			r.next++
		}
	}

	r.ctrl.Cycle()

	if r.renderer != nil {
		r.renderer.Draw(r.ctrl.Snapshot())
	}
}

// Run steps until ctx is done or cycles have run (0 runs forever)
func (r *Runner) Run(ctx context.Context, cycles uint32) error {
	for n := uint32(0); cycles == 0 || n < cycles; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Step()
	}
	return nil
}
