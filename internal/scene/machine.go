// Package scene runs the narrative: the Intro and Challenge scenes, their
// chunked dialogue and the hand-off to the challenge editor.
package scene

import (
	"time"

	"go.uber.org/zap"

	"nounquest/internal/clock"
	"nounquest/internal/dialogue"
	"nounquest/internal/eventbus"
)

// ID names a scene; scenes run in declaration order
type ID int

const (
	Intro ID = iota
	Challenge
)

func (id ID) String() string {
	switch id {
	case Intro:
		return "IntroScene"
	case Challenge:
		return "ChallengeScene"
	}
	return "UnknownScene"
}

// Phase is the sub-state of the active scene
type Phase int

const (
	// Presenting means the typewriter is revealing a chunk
	Presenting Phase = iota
	// AwaitingAdvance means a chunk is complete and more follow
	AwaitingAdvance
	// AwaitingConfirm means the last chunk is complete and the prompt is up
	AwaitingConfirm
)

func (p Phase) String() string {
	switch p {
	case Presenting:
		return "presenting"
	case AwaitingAdvance:
		return "awaiting_advance"
	case AwaitingConfirm:
		return "awaiting_confirm"
	}
	return "unknown"
}

// Options tune dialogue layout and pacing
type Options struct {
	MaxWidth  int
	CharDelay time.Duration
}

// settledResult is the part of a submission outcome the scene reacts to
type settledResult interface {
	OK() bool
}

// Machine owns the active scene, its typewriter and its bus subscriptions
//
// All methods must be called from the game loop.
type Machine struct {
	scripts Scripts
	bus     *eventbus.Bus
	clk     clock.Clock
	opts    Options
	logger  *zap.Logger

	tw        *dialogue.Typewriter
	id        ID
	phase     Phase
	chunks    []string
	index     int
	scope     *eventbus.Scope
	enteredAt time.Time

	started bool
	torn    bool
}

// NewMachine creates a machine; Start begins the Intro scene
func NewMachine(scripts Scripts, bus *eventbus.Bus, clk clock.Clock, opts Options, logger *zap.Logger) *Machine {
	return &Machine{
		scripts: scripts,
		bus:     bus,
		clk:     clk,
		opts:    opts,
		logger:  logger.Named("SceneMachine"),
		tw:      dialogue.NewTypewriter(clk, opts.CharDelay),
	}
}

// Start enters Intro and begins revealing its first chunk
func (m *Machine) Start() {
	if m.started || m.torn {
		return
	}
	m.started = true
	m.enter(Intro)
}

func (m *Machine) enter(id ID) {
	m.id = id
	m.enteredAt = m.clk.Now()
	m.scope = m.bus.Scope()
	if id == Challenge {
		m.scope.Subscribe(eventbus.SubmissionSettled, m.onSettled)
	}
	m.logger.Debug("Scene entered", zap.Stringer("scene", id))
	m.present(m.scripts.For(id).Text)
}

func (m *Machine) leave() {
	m.tw.Stop()
	if m.scope != nil {
		m.scope.Close()
		m.scope = nil
	}
	m.logger.Debug("Scene left", zap.Stringer("scene", m.id))
}

func (m *Machine) present(text string) {
	m.chunks = dialogue.Split(text, m.opts.MaxWidth)
	m.index = 0
	m.showChunk()
}

func (m *Machine) showChunk() {
	chunk := ""
	if m.index < len(m.chunks) {
		chunk = m.chunks[m.index]
	}
	m.tw.Start(chunk)
	m.phase = Presenting
	m.settle()
}

// settle leaves Presenting once the typewriter has finished
func (m *Machine) settle() {
	if m.phase != Presenting || m.tw.Revealing() {
		return
	}
	if m.index >= len(m.chunks)-1 {
		m.phase = AwaitingConfirm
	} else {
		m.phase = AwaitingAdvance
	}
}

// Update advances the typewriter by the time elapsed on the clock
func (m *Machine) Update() {
	if !m.started || m.torn {
		return
	}
	m.tw.Update()
	m.settle()
}

// Advance shows the next chunk
// Presses while a chunk is still revealing, or when no chunk follows, are
// dropped rather than queued.
func (m *Machine) Advance() bool {
	if !m.started || m.torn || m.phase != AwaitingAdvance || m.tw.Revealing() {
		return false
	}
	m.index++
	m.showChunk()
	return true
}

// Confirm acts on the prompt shown after the last chunk
// In Intro it moves to Challenge; in Challenge it asks the host to open the editor.
func (m *Machine) Confirm() bool {
	if !m.started || m.torn || m.phase != AwaitingConfirm {
		return false
	}
	switch m.id {
	case Intro:
		m.leave()
		m.enter(Challenge)
	case Challenge:
		m.logger.Debug("Opening challenge editor")
		m.bus.Publish(eventbus.OpenChallengeEditor, nil)
	}
	return true
}

func (m *Machine) onSettled(payload any) {
	res, ok := payload.(settledResult)
	if !ok {
		return
	}
	r := m.scripts.Challenge.Reactions
	line := r.Failure
	if res.OK() {
		line = r.Success
	}
	if line == "" {
		return
	}
	m.present(line)
}

// Teardown stops the typewriter and drops the scene's subscriptions
func (m *Machine) Teardown() {
	if m.torn {
		return
	}
	m.torn = true
	m.leave()
}

// Scene returns the active scene
func (m *Machine) Scene() ID {
	return m.id
}

// Phase returns the sub-state of the active scene
func (m *Machine) Phase() Phase {
	return m.phase
}

// Revealing reports whether the typewriter is mid-chunk
func (m *Machine) Revealing() bool {
	return m.tw.Revealing()
}

// Text returns the revealed part of the current chunk
func (m *Machine) Text() string {
	return m.tw.Text()
}

// Prompt returns the confirm prompt while awaiting confirmation, else ""
func (m *Machine) Prompt() string {
	if m.phase != AwaitingConfirm {
		return ""
	}
	return m.scripts.For(m.id).Prompt
}

// Script returns the script of the active scene
func (m *Machine) Script() Script {
	return m.scripts.For(m.id)
}

// EnteredAt returns when the active scene began
func (m *Machine) EnteredAt() time.Time {
	return m.enteredAt
}
