// Package eventbus is the in-memory notification channel between the scene
// layer and the host UI.
//
// Semantics:
//   - Handlers run synchronously on the publishing goroutine, in registration order
//   - Each registered handler receives a publish at most once
//   - Events published with no subscriber are dropped; nothing is buffered
//   - Unsubscribing twice, or with a zero Subscription, is a no-op
//
// A Bus is constructed by its owner and passed to whoever needs it. Scenes
// register through a Scope so teardown can detach exactly their handlers.
package eventbus

import "sync"

// Event names used by the game
const (
	// OpenChallengeEditor asks the host to show the code editor; no payload
	OpenChallengeEditor = "open-code-challenge-modal"
	// SubmissionSettled carries the terminal submit.Outcome of an attempt
	SubmissionSettled = "submission-settled"
)

// Handler receives the payload of a published event
type Handler func(payload any)

// Subscription identifies one registered handler
type Subscription struct {
	name string
	id   uint64
}

// Name returns the event name the subscription listens to
func (s Subscription) Name() string {
	return s.name
}

type entry struct {
	id uint64
	fn Handler
}

// Bus maps event names to ordered handler lists
type Bus struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[string][]entry
}

// New creates an empty bus
func New() *Bus {
	return &Bus{handlers: make(map[string][]entry)}
}

// Subscribe registers fn for events named name
func (b *Bus) Subscribe(name string, fn Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[name] = append(b.handlers[name], entry{id: b.nextID, fn: fn})
	return Subscription{name: name, id: b.nextID}
}

// Unsubscribe removes the handler behind sub
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.handlers[sub.name]
	for i, e := range list {
		if e.id != sub.id {
			continue
		}
		// Copy so a publish iterating the old slice is unaffected
		next := make([]entry, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(b.handlers, sub.name)
		} else {
			b.handlers[sub.name] = next
		}
		return
	}
}

// Publish delivers payload to the handlers registered for name
// The handler list is captured before delivery starts
func (b *Bus) Publish(name string, payload any) {
	b.mu.Lock()
	list := b.handlers[name]
	b.mu.Unlock()

	for _, e := range list {
		e.fn(payload)
	}
}

// HandlerCount returns the number of handlers registered for name
func (b *Bus) HandlerCount(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[name])
}
