// Package timeline groups received events by submission so a client can
// reassemble a per-command history from the single ordered event stream.
package timeline

import (
	"sync"

	"github.com/hupe1980/agentwire/core"
)

// Store is a volatile per-submission event journal backed by a process
// local map. It is safe for concurrent access and best suited for UI state
// and tests. Returned slices are copies to prevent external mutation of
// internal state.
type Store struct {
	mu    sync.RWMutex
	order []core.SubmissionID
	subs  map[core.SubmissionID][]core.Event
}

// NewStore constructs an empty timeline store.
func NewStore() *Store {
	return &Store{subs: make(map[core.SubmissionID][]core.Event)}
}

// Append records an event under its submission, preserving arrival order.
func (s *Store) Append(e core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := e.Submission()
	if _, ok := s.subs[sub]; !ok {
		s.order = append(s.order, sub)
	}
	s.subs[sub] = append(s.subs[sub], e)
}

// Events returns the recorded events for one submission in arrival order.
func (s *Store) Events(sub core.SubmissionID) []core.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := s.subs[sub]
	out := make([]core.Event, len(events))
	copy(out, events)
	return out
}

// Submissions returns all submissions in first-seen order.
func (s *Store) Submissions() []core.SubmissionID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.SubmissionID, len(s.order))
	copy(out, s.order)
	return out
}

// Attention returns the events across all submissions that a UI must not
// silently queue: approval requests, errors and warnings.
func (s *Store) Attention() []core.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []core.Event
	for _, sub := range s.order {
		for _, e := range s.subs[sub] {
			if core.RequiresAttention(e) {
				out = append(out, e)
			}
		}
	}
	return out
}

// Failed reports whether a submission produced an error-class event.
func (s *Store) Failed(sub core.SubmissionID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.subs[sub] {
		if core.IsError(e) {
			return true
		}
	}
	return false
}

// Drop removes a submission's history, e.g. after the UI has archived it.
func (s *Store) Drop(sub core.SubmissionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[sub]; !ok {
		return
	}
	delete(s.subs, sub)
	for i, id := range s.order {
		if id == sub {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
