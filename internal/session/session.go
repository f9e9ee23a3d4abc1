// Package session tracks the per-user prediction lifecycle between requests.
//
// A session moves forward through three states: no prediction yet, a
// prediction computed, and a prediction explained. The explanation step
// caches the attribution so the narrative endpoint never has to recompute
// it within a session.
package session

import (
	"sync"

	"github.com/healthtrack-app/healthtrack/models"
)

// State enumerates the prediction lifecycle of one user session.
type State int

const (
	// StateNotPredicted means the user has not run a prediction this
	// session. Explanation and narrative requests are rejected.
	StateNotPredicted State = iota

	// StatePredicted means a prediction was computed this session but no
	// attribution has been cached yet.
	StatePredicted

	// StateExplained means the attribution for the session's prediction is
	// cached and narrative requests can be served from it.
	StateExplained
)

// Session holds the in-memory lifecycle of one user's current prediction.
type Session struct {
	// State is the lifecycle position; it only moves forward within one
	// prediction round and resets to StatePredicted on a new prediction.
	State State

	// Record is the latest computed prediction of this session.
	Record models.PredictionRecord

	// Summary is the one-line human-readable outcome of the prediction.
	Summary string

	// Contributions is the cached per-feature attribution, sorted by
	// descending absolute value. Populated when State is StateExplained.
	Contributions []models.FeatureContribution
}

// Store is a concurrency-safe in-memory session registry keyed by the
// account unique_id. Sessions live for the lifetime of the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty session registry.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns a copy of the user's session and whether one exists.
func (s *Store) Get(userID string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// SetPredicted records a fresh prediction for the user, replacing any earlier
// session state including a cached attribution.
func (s *Store) SetPredicted(userID string, rec models.PredictionRecord, summary string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = &Session{
		State:   StatePredicted,
		Record:  rec,
		Summary: summary,
	}
}

// SetExplained caches the attribution for the user's current prediction.
// It is a no-op if the user has no session yet.
func (s *Store) SetExplained(userID string, contributions []models.FeatureContribution) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return
	}
	sess.State = StateExplained
	sess.Contributions = contributions
}
