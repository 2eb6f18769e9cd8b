package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"chaser/core"
	"chaser/sim"
)

var (
	pot         = flag.Int("pot", 768, "Initial potentiometer position (0-1023)")
	rate        = flag.Int("rate", 2000000, "Inner polls per second (0 = unpaced)")
	cycles      = flag.Uint("cycles", 0, "Stop after this many steps (0 = run until interrupted)")
	scriptPath  = flag.String("script", "", "JSON file of scripted presses and pot moves")
	debounce    = flag.Uint("debounce", 0, "Minimum polls between accepted edges")
	gatePercent = flag.Uint("gate", 25, "Gate output duty per step, percent")
	interactive = flag.Bool("keys", true, "Read f/s/+/-/q from the keyboard")
)

func main() {
	flag.Parse()

	board := sim.NewBoard(core.ADCValue(*pot))
	board.Config.DebouncePolls = uint32(*debounce)
	board.Config.GatePercent = uint8(*gatePercent)

	var script *sim.Script
	if *scriptPath != "" {
		f, err := os.Open(*scriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		script, err = sim.LoadScript(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	renderer := sim.NewRenderer(os.Stdout, board)
	runner, err := sim.NewRunner(board, sim.Options{
		Tick:     sim.NewPacer(*rate).Tick,
		Script:   script,
		Renderer: renderer,
		Debug:    renderer.Println,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *interactive {
		keys, err := startKeyboard(board, stop)
		if err != nil {
			renderer.Println("keyboard disabled: " + err.Error())
		} else {
			defer keys.Stop()
			renderer.Println("keys: f=freeze s=short +/-=tempo q=quit")
		}
	}

	err = runner.Run(ctx, uint32(*cycles))
	fmt.Println()
	runner.Controller().Diagnostics().DumpEvents()
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
