package bank

import "sync/atomic"

// State is a snapshot of the client session.
//
// A State is a value: updating it means building a new one and installing it
// in the Session.
type State struct {
	Account *Account // nil when logged out.
}

// WithAccount returns a copy of s with the account replaced by a copy of a.
func (s State) WithAccount(a *Account) State {
	s.Account = a.Clone()
	return s
}

// LoggedIn reports whether the state holds an account.
func (s State) LoggedIn() bool { return s.Account != nil }

// Session holds the current State.
//
// Updates are whole value replacements, readers always observe a complete
// snapshot.
type Session struct {
	current atomic.Pointer[State]
}

// NewSession returns a session whose current state is initial.
func NewSession(initial State) *Session {
	s := new(Session)
	s.current.Store(&initial)
	return s
}

// State returns the current snapshot.
func (s *Session) State() State { return *s.current.Load() }

// Update installs f(current) as the new current state and returns it.
func (s *Session) Update(f func(State) State) State {
	for {
		old := s.current.Load()
		next := f(*old)
		if s.current.CompareAndSwap(old, &next) {
			return next
		}
	}
}

// SetAccount is the common update replacing the account field.
func (s *Session) SetAccount(a *Account) State {
	return s.Update(func(st State) State { return st.WithAccount(a) })
}
