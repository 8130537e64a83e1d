package eventbus

// Scope tracks the subscriptions made by one owner so they can be dropped together
type Scope struct {
	bus  *Bus
	subs []Subscription
}

// Scope creates an empty scope on b
func (b *Bus) Scope() *Scope {
	return &Scope{bus: b}
}

// Subscribe registers fn on the underlying bus and remembers the subscription
func (s *Scope) Subscribe(name string, fn Handler) Subscription {
	sub := s.bus.Subscribe(name, fn)
	s.subs = append(s.subs, sub)
	return sub
}

// Publish forwards to the underlying bus
func (s *Scope) Publish(name string, payload any) {
	s.bus.Publish(name, payload)
}

// Close unsubscribes everything registered through the scope
func (s *Scope) Close() {
	for _, sub := range s.subs {
		s.bus.Unsubscribe(sub)
	}
	s.subs = nil
}

// Len returns the number of live subscriptions held by the scope
func (s *Scope) Len() int {
	return len(s.subs)
}
