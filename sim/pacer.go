package sim

import "time"

// Pacer slows the controller's busy-wait down to wall-clock time by
// sleeping once per batch of polls
type Pacer struct {
	batch int
	pause time.Duration
	count int
	sleep func(time.Duration)
}

// NewPacer creates a pacer for the given polls per second. Zero or less
// disables pacing.
func NewPacer(pollsPerSecond int) *Pacer {
	const slice = 10 * time.Millisecond
	batch := pollsPerSecond / int(time.Second/slice)
	if batch < 1 {
		batch = 1
	}
	p := &Pacer{batch: batch, pause: slice, sleep: time.Sleep}
	if pollsPerSecond <= 0 {
		p.pause = 0
	}
	return p
}

// Tick counts one poll, sleeping at the end of each batch
func (p *Pacer) Tick() {
	if p.pause == 0 {
		return
	}
	p.count++
	if p.count >= p.batch {
		p.count = 0
		p.sleep(p.pause)
	}
}
