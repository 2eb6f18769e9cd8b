package sim

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"chaser/core"
)

func TestPotClamps(t *testing.T) {
	p := NewPot(2000)
	if p.Value() != core.ADCMax {
		t.Errorf("Expected clamp to %d, got %d", core.ADCMax, p.Value())
	}
	p.Nudge(-5000)
	if p.Value() != 0 {
		t.Errorf("Expected 0 after large negative nudge, got %d", p.Value())
	}
	p.Nudge(100)
	if v, _ := p.ReadRaw(0); v != 100 {
		t.Errorf("Expected 100, got %d", v)
	}
	if p.Reads() != 1 {
		t.Errorf("Expected 1 read, got %d", p.Reads())
	}
}

func TestGPIOPress(t *testing.T) {
	g := NewGPIO()
	g.ConfigureInputPullUp(1)
	g.ConfigureInputPullDown(2)

	if !g.ReadPin(1) || g.ReadPin(2) {
		t.Fatal("Inputs should idle at their pull level")
	}

	g.Press(1, 2)
	g.Press(2, 1)
	if g.ReadPin(1) || !g.ReadPin(2) {
		t.Error("Pressed inputs should read the opposite level")
	}
	if g.ReadPin(1) != false {
		t.Error("Pull-up input should still be held on second read")
	}
	if !g.ReadPin(1) || g.ReadPin(2) {
		t.Error("Inputs should return to idle after the hold")
	}

	g.ConfigureOutput(3)
	g.SetPin(3, true)
	if !g.Level(3) {
		t.Error("Output level not recorded")
	}
}

func TestRunnerFastTempo(t *testing.T) {
	b := NewBoard(core.ADCMax) // tempo 0: no waiting
	r, err := NewRunner(b, Options{})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	if err := r.Run(context.Background(), 3); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if b.Ring.Mask() != 1<<2 {
		t.Errorf("Expected light 2 after 3 cycles, got mask %#x", b.Ring.Mask())
	}
	if idx := r.Controller().Chase().Index; idx != 3 {
		t.Errorf("Expected index 3, got %d", idx)
	}
}

func TestRunnerScript(t *testing.T) {
	script, err := LoadScript(strings.NewReader(`{
		"steps": [
			{"cycle": 2, "press": "freeze"},
			{"cycle": 0, "pot": 1021}
		]
	}`))
	if err != nil {
		t.Fatalf("LoadScript failed: %v", err)
	}

	b := NewBoard(core.ADCMax)
	r, err := NewRunner(b, Options{Script: script})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}
	if err := r.Run(context.Background(), 6); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	ctrl := r.Controller()
	if ctrl.Tempo() != 1 {
		t.Errorf("Expected tempo 1, got %d", ctrl.Tempo())
	}
	if !ctrl.Modes().Freeze {
		t.Fatal("Expected freeze to be latched")
	}
	// Freeze latched during cycle 2's wait, after it advanced to 3
	if ctrl.Chase().Index != 3 {
		t.Errorf("Expected frozen index 3, got %d", ctrl.Chase().Index)
	}
	if b.Ring.Mask() != 1<<3 {
		t.Errorf("Expected light 3, got mask %#x", b.Ring.Mask())
	}
	if !b.GPIO.Level(PinFreezeLED) {
		t.Error("Freeze indicator should be lit")
	}
}

func TestRunnerCancelled(t *testing.T) {
	r, err := NewRunner(NewBoard(core.ADCMax), Options{})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx, 0); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	testCases := []struct {
		name   string
		script string
	}{
		{"unknown button", `{"steps":[{"cycle":1,"press":"reset"}]}`},
		{"empty step", `{"steps":[{"cycle":1}]}`},
		{"unknown field", `{"steps":[{"cycle":1,"press":"short","speed":3}]}`},
		{"negative hold", `{"steps":[{"cycle":1,"press":"short","hold_polls":-1}]}`},
		{"not json", `steps: []`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadScript(strings.NewReader(tc.script)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestRendererLine(t *testing.T) {
	b := NewBoard(511)
	b.Config.RingSize = 4
	b.Config.Layout.Gate = core.NoPin
	b.Ring.WriteMask(1 << 1)
	b.GPIO.SetPin(PinShortLED, true)

	var out bytes.Buffer
	r := NewRenderer(&out, b)
	got := r.Line(core.Snapshot{Cycle: 7, Tempo: 256})
	want := "○●○○  F○ S● G-  pot=511  tempo=256 cycle=7"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}

	r.Draw(core.Snapshot{})
	if !strings.HasPrefix(out.String(), "\r○●○○") {
		t.Errorf("Draw should redraw in place, got %q", out.String())
	}
}

func TestPacer(t *testing.T) {
	var slept []time.Duration
	p := NewPacer(1000)
	p.sleep = func(d time.Duration) { slept = append(slept, d) }

	for i := 0; i < 25; i++ {
		p.Tick()
	}
	if len(slept) != 2 {
		t.Errorf("Expected 2 sleeps for 25 ticks at batch 10, got %d", len(slept))
	}

	off := NewPacer(0)
	off.sleep = func(time.Duration) { t.Error("disabled pacer slept") }
	off.Tick()
}
