// Package hud holds the host-side overlay state: progress toasts and the
// challenge editor's text buffer.
package hud

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"nounquest/internal/clock"
	"nounquest/internal/submit"
)

// Level picks the toast colour
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Toast is one transient message
type Toast struct {
	Text    string
	Level   Level
	Expires time.Time
}

// Toasts is a short queue of messages safe for use from the submit goroutine
type Toasts struct {
	mu    sync.Mutex
	clk   clock.Clock
	ttl   time.Duration
	max   int
	items []Toast
}

var _ submit.Notifier = (*Toasts)(nil)

// NewToasts keeps at most max toasts, each visible for ttl
func NewToasts(clk clock.Clock, ttl time.Duration, max int) *Toasts {
	if max < 1 {
		max = 1
	}
	return &Toasts{clk: clk, ttl: ttl, max: max}
}

// Push adds a toast, dropping the oldest when full
func (t *Toasts) Push(text string, level Level) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = append(t.items, Toast{Text: text, Level: level, Expires: t.clk.Now().Add(t.ttl)})
	if over := len(t.items) - t.max; over > 0 {
		t.items = append(t.items[:0:0], t.items[over:]...)
	}
}

// Progress shows the label of a submission stage
func (t *Toasts) Progress(_ uuid.UUID, stage submit.Stage) {
	if label := stage.Label(); label != "" {
		t.Push(label, LevelInfo)
	}
}

// Settled shows the terminal message of a submission
func (t *Toasts) Settled(out submit.Outcome) {
	level := LevelError
	if out.OK() {
		level = LevelSuccess
	}
	t.Push(out.Message, level)
}

// Active drops expired toasts and returns the rest, oldest first
func (t *Toasts) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clk.Now()
	kept := t.items[:0]
	for _, it := range t.items {
		if now.Before(it.Expires) {
			kept = append(kept, it)
		}
	}
	t.items = kept

	out := make([]Toast, len(kept))
	copy(out, kept)
	return out
}

// Clip shortens s to at most n runes, marking a cut with a trailing "~"
func Clip(s string, n int) string {
	rs := []rune(s)
	if n < 1 || len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "~"
}
