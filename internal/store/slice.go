package store

import "sync"

// ReducerFunc folds an action into a slice's state, returning the next
// state. It must be pure: no I/O, no mutation of the previous state.
type ReducerFunc[S any] func(state S, action Action) S

// Slice holds one state slice and its reducer. All writes go through the
// dispatcher; State returns an immutable snapshot for readers.
type Slice[S any] struct {
	mu     sync.RWMutex
	state  S
	reduce ReducerFunc[S]
}

// NewSlice creates a slice with its initial state and reducer.
func NewSlice[S any](initial S, reduce ReducerFunc[S]) *Slice[S] {
	return &Slice[S]{
		state:  initial,
		reduce: reduce,
	}
}

// State returns a snapshot of the current state.
func (s *Slice[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// apply folds the action into the state. Only the dispatcher calls this,
// while holding the dispatch lock, so slices never see concurrent writers.
func (s *Slice[S]) apply(action Action) {
	s.mu.Lock()
	s.state = s.reduce(s.state, action)
	s.mu.Unlock()
}
