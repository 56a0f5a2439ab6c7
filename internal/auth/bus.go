package auth

import "sync"

// Bus fans session transitions out to observers. Each subscriber gets
// one immediate callback with the current state (nil when signed out)
// and another on every later sign-in or sign-out. Page-lifetime
// listeners never cancel, but the handle supports it.
type Bus struct {
	mu      sync.Mutex
	nextID  int
	subs    map[int]func(*Session)
	current *Session
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(*Session))}
}

type Subscription struct {
	bus *Bus
	id  int
}

func (b *Bus) Subscribe(fn func(*Session)) *Subscription {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	current := b.current
	b.mu.Unlock()

	fn(current)
	return &Subscription{bus: b, id: id}
}

func (s *Subscription) Cancel() {
	s.bus.mu.Lock()
	delete(s.bus.subs, s.id)
	s.bus.mu.Unlock()
}

// Publish records the new state and notifies every subscriber.
func (b *Bus) Publish(sess *Session) {
	b.mu.Lock()
	b.current = sess
	fns := make([]func(*Session), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(sess)
	}
}

// Current returns the most recently published state.
func (b *Bus) Current() *Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}
