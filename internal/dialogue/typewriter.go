package dialogue

import (
	"time"

	"nounquest/internal/clock"
)

// Typewriter reveals one chunk a rune at a time, one rune per delay
//
// There is no background timer: the owner calls Update once per game tick and
// the typewriter performs every reveal step whose deadline has passed on the
// injected clock. Starting a new chunk or calling Stop drops the pending
// schedule of the previous chunk.
type Typewriter struct {
	clk   clock.Clock
	delay time.Duration

	runes   []rune
	shown   int
	next    time.Time
	stopped bool
}

// NewTypewriter creates an idle typewriter
func NewTypewriter(clk clock.Clock, delay time.Duration) *Typewriter {
	return &Typewriter{clk: clk, delay: delay}
}

// Start begins revealing chunk, abandoning whatever was in progress
func (t *Typewriter) Start(chunk string) {
	t.runes = []rune(chunk)
	t.shown = 0
	t.stopped = false
	t.next = t.clk.Now().Add(t.delay)
}

// Step reveals the next rune
// Returns false when there was nothing left to reveal
func (t *Typewriter) Step() bool {
	if t.stopped || !t.Revealing() {
		return false
	}
	t.shown++
	t.next = t.next.Add(t.delay)
	return true
}

// Update runs one Step per elapsed delay and reports how many runes appeared
func (t *Typewriter) Update() int {
	if t.stopped || !t.Revealing() {
		return 0
	}
	now := t.clk.Now()
	n := 0
	for t.Revealing() && !now.Before(t.next) {
		t.Step()
		n++
	}
	return n
}

// Stop cancels pending reveals; Update and Step become no-ops until Start
func (t *Typewriter) Stop() {
	t.stopped = true
}

// Revealing reports whether the current chunk still has hidden runes
func (t *Typewriter) Revealing() bool {
	return t.shown < len(t.runes)
}

// Done reports whether a started chunk is fully visible
func (t *Typewriter) Done() bool {
	return !t.stopped && !t.Revealing()
}

// Text returns the revealed prefix of the current chunk
func (t *Typewriter) Text() string {
	return string(t.runes[:t.shown])
}

// Chunk returns the full text of the current chunk
func (t *Typewriter) Chunk() string {
	return string(t.runes)
}
