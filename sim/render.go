package sim

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"chaser/core"
)

const (
	glyphOn  = "●"
	glyphOff = "○"
)

// Renderer draws the ring and indicators on a single terminal line
type Renderer struct {
	mu     sync.Mutex
	out    io.Writer
	ring   *Ring
	gpio   *GPIO
	layout core.Layout
	size   int
	pot    *Pot
}

// NewRenderer creates a renderer for a board
func NewRenderer(out io.Writer, b *Board) *Renderer {
	return &Renderer{
		out:    out,
		ring:   b.Ring,
		gpio:   b.GPIO,
		layout: b.Config.Layout,
		size:   b.Config.RingSize,
		pot:    b.Pot,
	}
}

// Line renders the current board state
func (r *Renderer) Line(s core.Snapshot) string {
	var sb strings.Builder
	mask := r.ring.Mask()
	for i := 0; i < r.size; i++ {
		if mask&(1<<uint(i)) != 0 {
			sb.WriteString(glyphOn)
		} else {
			sb.WriteString(glyphOff)
		}
	}
	fmt.Fprintf(&sb, "  F%s S%s G%s  pot=%-4d tempo=%-3d cycle=%d",
		r.indicator(r.layout.FreezeIndicator),
		r.indicator(r.layout.ShortIndicator),
		r.indicator(r.layout.Gate),
		r.pot.Value(), s.Tempo, s.Cycle)
	return sb.String()
}

func (r *Renderer) indicator(pin core.GPIOPin) string {
	if pin == core.NoPin {
		return "-"
	}
	if r.gpio.Level(pin) {
		return glyphOn
	}
	return glyphOff
}

// Draw overwrites the current terminal line with the board state
func (r *Renderer) Draw(s core.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "\r%s\x1b[K", r.Line(s))
}

// Println prints a message on its own line above the board
func (r *Renderer) Println(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "\r\x1b[K%s\r\n", msg)
}
