// Package monitor decodes the chaser's status telemetry from a serial port
// or any other byte stream.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"chaser/host/serial"
	"chaser/protocol"
)

// Handler receives every decoded message in stream order
type Handler func(protocol.Message)

// Stats counts what the monitor has seen on the stream
type Stats struct {
	Frames      uint32 // valid frames
	Dropped     uint32 // resynchronisations after corrupt data
	Missed      uint32 // frames lost according to sequence numbers
	Undecodable uint32 // valid frames with an unknown or short payload
}

// Monitor represents a connection to the chaser's telemetry output
type Monitor struct {
	port    io.ReadCloser
	decoder *protocol.FrameDecoder

	// follow treats io.EOF as "no data yet" (serial read timeouts)
	follow bool

	banner      *protocol.Banner
	last        protocol.Status
	frames      uint32
	undecodable uint32
}

// New creates a monitor that is not yet attached to a stream
func New() *Monitor {
	return &Monitor{decoder: protocol.NewFrameDecoder()}
}

// Connect opens the firmware's telemetry port
func (m *Monitor) Connect(device string) error {
	return m.ConnectWithConfig(serial.DefaultConfig(device))
}

// ConnectWithConfig opens the telemetry port with a custom serial config
func (m *Monitor) ConnectWithConfig(cfg *serial.Config) error {
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}

	// Drop whatever queued up before we attached
	if err := port.Flush(); err != nil {
		port.Close()
		return fmt.Errorf("failed to flush serial port: %w", err)
	}

	m.port = port
	m.follow = true
	return nil
}

// Attach reads from r until it ends, e.g. a capture file
func (m *Monitor) Attach(r io.ReadCloser) {
	m.port = r
	m.follow = false
}

// Close closes the underlying stream
func (m *Monitor) Close() error {
	if m.port == nil {
		return nil
	}
	err := m.port.Close()
	m.port = nil
	return err
}

// Listen decodes the stream and calls handle for every message until ctx
// is done or the stream fails. The end of an attached stream is not an
// error.
func (m *Monitor) Listen(ctx context.Context, handle Handler) error {
	if m.port == nil {
		return errors.New("monitor not connected")
	}

	buf := make([]byte, 256)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := m.port.Read(buf)
		if n > 0 {
			m.decoder.Feed(buf[:n], func(seq uint8, payload []byte) {
				m.dispatch(payload, handle)
			})
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF) && m.follow:
			// Read timeout on an idle port
			time.Sleep(10 * time.Millisecond)
		case errors.Is(err, io.EOF):
			return nil
		default:
			return fmt.Errorf("read failed: %w", err)
		}
	}
}

func (m *Monitor) dispatch(payload []byte, handle Handler) {
	m.frames++
	msg, err := protocol.DecodeMessage(payload)
	if err != nil {
		m.undecodable++
		return
	}

	switch msg.ID {
	case protocol.MsgBanner:
		banner := msg.Banner
		m.banner = &banner
	case protocol.MsgStatus:
		m.last = msg.Status
	}

	if handle != nil {
		handle(msg)
	}
}

// Banner returns the firmware banner if one has been received
func (m *Monitor) Banner() (protocol.Banner, bool) {
	if m.banner == nil {
		return protocol.Banner{}, false
	}
	return *m.banner, true
}

// Last returns the most recent status
func (m *Monitor) Last() protocol.Status {
	return m.last
}

// Stats returns the stream counters
func (m *Monitor) Stats() Stats {
	return Stats{
		Frames:      m.frames,
		Dropped:     m.decoder.Dropped,
		Missed:      m.decoder.Missed,
		Undecodable: m.undecodable,
	}
}
