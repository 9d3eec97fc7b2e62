// Package selection holds the authoritative "currently selected element"
// value for one viewer session.
package selection

import "sync"

// State is a session-scoped selection. It is owned by the controller that
// receives grid events; there is deliberately no package-level instance.
type State struct {
	mu      sync.Mutex
	current int // 0 means no selection
	known   func(int) bool
}

// New creates a selection state. known validates candidate element numbers
// against the loaded dataset; initial is applied only if it validates
// (0 starts with no selection).
func New(initial int, known func(int) bool) *State {
	s := &State{known: known}
	if initial > 0 && known != nil && known(initial) {
		s.current = initial
	}
	return s
}

// Select transitions to the given element number. It returns false, with
// no state change and no downstream re-render due, when the number is
// unknown or already selected.
func (s *State) Select(number int) bool {
	if number <= 0 {
		return false
	}
	if s.known != nil && !s.known(number) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if number == s.current {
		return false
	}
	s.current = number
	return true
}

// Current returns the selected element number, or false when nothing is
// selected.
func (s *State) Current() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current > 0
}
