// Package session holds the signed-in identity for a client process. It
// replaces the ambient browser-storage triplet (token, username, role) with
// an explicit object that UI layers receive and can subscribe to, so a
// login or logout in one place propagates everywhere.
package session

import "sync"

// Snapshot is an immutable view of the current session.
type Snapshot struct {
	Token    string
	Username string
	Role     string
}

// LoggedIn reports whether the snapshot carries an identity.
func (s Snapshot) LoggedIn() bool {
	return s.Token != ""
}

// IsAdmin reports whether the session belongs to an admin.
func (s Snapshot) IsAdmin() bool {
	return s.Role == "admin"
}

// Session is a mutable, observable login state. The zero value is a usable
// logged-out session.
type Session struct {
	mu      sync.Mutex
	current Snapshot
	subs    map[int]func(Snapshot)
	nextID  int
}

// New creates an empty (logged out) session.
func New() *Session {
	return &Session{subs: make(map[int]func(Snapshot))}
}

// Current returns the current snapshot.
func (s *Session) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set stores a new identity and notifies subscribers.
func (s *Session) Set(token, username, role string) {
	s.update(Snapshot{Token: token, Username: username, Role: role})
}

// Clear logs out: all three fields are dropped together and subscribers are
// notified. This is purely local; the server is never called.
func (s *Session) Clear() {
	s.update(Snapshot{})
}

// Subscribe registers fn to be called on every state change. It returns an
// unsubscribe function.
func (s *Session) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs == nil {
		s.subs = make(map[int]func(Snapshot))
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Session) update(next Snapshot) {
	s.mu.Lock()
	s.current = next
	listeners := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	// Notify outside the lock so subscribers may call back into the session.
	for _, fn := range listeners {
		fn(next)
	}
}
