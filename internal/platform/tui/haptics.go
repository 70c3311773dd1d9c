package tui

import (
	"io"
	"sync"
	"time"
)

// Bell is the terminal's stand-in for vibration: it rings the bell at
// most once per pulse duration.
type Bell struct {
	mu   sync.Mutex
	w    io.Writer
	last time.Time
	now  func() time.Time
}

// NewBell creates a bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w, now: time.Now}
}

// Pulse rings the bell unless it already rang within d.
func (b *Bell) Pulse(d time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if !b.last.IsZero() && now.Sub(b.last) < d {
		return nil
	}
	b.last = now
	_, err := io.WriteString(b.w, "\a")
	return err
}
