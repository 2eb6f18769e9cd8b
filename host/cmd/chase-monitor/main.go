package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"chaser/host/monitor"
	"chaser/host/serial"
	"chaser/protocol"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	capture = flag.String("file", "", "Decode a captured byte stream instead of a device")
	asJSON  = flag.Bool("json", false, "Print one JSON object per message")
	verbose = flag.Bool("verbose", false, "Print stream counters on exit")
)

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mon := monitor.New()
	if *capture != "" {
		f, err := os.Open(*capture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		mon.Attach(f)
	} else {
		cfg := serial.DefaultConfig(*device)
		cfg.Baud = *baud
		if !*asJSON {
			fmt.Printf("Listening on %s...\n", *device)
		}
		if err := mon.ConnectWithConfig(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to connect: %v\n", err)
			os.Exit(1)
		}
	}
	defer mon.Close()

	err := mon.Listen(ctx, func(msg protocol.Message) {
		if *asJSON {
			line, err := monitor.MarshalLine(msg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			os.Stdout.Write(line)
			return
		}
		fmt.Println(monitor.FormatMessage(msg))
	})

	if *verbose {
		fmt.Fprintln(os.Stderr, monitor.FormatStats(mon.Stats()))
	}
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
