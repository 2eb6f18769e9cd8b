//go:build unix

package main

import (
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"chaser/sim"
)

const (
	keyHoldPolls = sim.DefaultHoldPolls
	potStep      = 32
)

// keyboard reads raw stdin and turns single keys into board inputs
type keyboard struct {
	board    *sim.Board
	quit     func()
	stopCh   chan struct{}
	done     chan struct{}
	stopped  sync.Once
	fd       int
	oldState *term.State
}

// startKeyboard puts stdin in raw non-blocking mode and starts the reader.
// quit is called on 'q' or Ctrl-C, which raw mode no longer turns into a
// signal.
func startKeyboard(board *sim.Board, quit func()) (*keyboard, error) {
	k := &keyboard{
		board:  board,
		quit:   quit,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
		fd:     int(os.Stdin.Fd()),
	}

	oldState, err := term.MakeRaw(k.fd)
	if err != nil {
		return nil, err
	}
	k.oldState = oldState

	if err := syscall.SetNonblock(k.fd, true); err != nil {
		_ = term.Restore(k.fd, k.oldState)
		return nil, err
	}

	go k.loop()
	return k, nil
}

func (k *keyboard) loop() {
	defer close(k.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-k.stopCh:
			return
		default:
		}

		n, err := syscall.Read(k.fd, buf)
		if n > 0 {
			k.handle(buf[0])
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
		if n == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
}

func (k *keyboard) handle(key byte) {
	switch key {
	case 'f', 'F':
		k.board.Press("freeze", keyHoldPolls)
	case 's', 'S':
		k.board.Press("short", keyHoldPolls)
	case '+', '=':
		// Higher raw reading means a shorter delay
		k.board.Pot.Nudge(potStep)
	case '-', '_':
		k.board.Pot.Nudge(-potStep)
	case 'q', 'Q', 0x03:
		k.quit()
	}
}

// Stop ends the reader and restores the terminal
func (k *keyboard) Stop() {
	k.stopped.Do(func() {
		close(k.stopCh)
	})
	<-k.done
	_ = syscall.SetNonblock(k.fd, false)
	_ = term.Restore(k.fd, k.oldState)
}
