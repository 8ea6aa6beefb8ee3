// Package state holds the score/phase store every game reports into.
//
// The store is the single authority on whether a run is active: the engine
// consults Playing before doing any per-frame work. Illegal transitions are
// ignored rather than reported, since hosts call them from input and lifecycle
// callbacks whose ordering is not guaranteed.
package state

import (
	"sync"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Store owns score, high score and phase.
type Store struct {
	mu        sync.RWMutex
	score     int
	highScore int
	phase     core.Phase
	runs      int
}

// New returns a store in the idle phase with zero scores.
func New() *Store {
	return &Store{phase: core.PhaseIdle}
}

// Start begins a run from Idle or GameOver, zeroing the score.
// Returns false when already playing.
func (s *Store) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == core.PhasePlaying {
		return false
	}
	s.phase = core.PhasePlaying
	s.score = 0
	s.runs++
	return true
}

// End finishes the current run and folds the score into the high score.
// Returns false unless a run was in progress.
func (s *Store) End() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != core.PhasePlaying {
		return false
	}
	s.phase = core.PhaseGameOver
	if s.score > s.highScore {
		s.highScore = s.score
	}
	return true
}

// Reset forces the idle phase with a zero score. The high score is kept.
func (s *Store) Reset() {
	s.mu.Lock()
	s.phase = core.PhaseIdle
	s.score = 0
	s.mu.Unlock()
}

// AddScore credits points to the running score. Ignored outside a run and
// for non-positive amounts, so the score never decreases while playing.
func (s *Store) AddScore(points int) {
	if points <= 0 {
		return
	}
	s.mu.Lock()
	if s.phase == core.PhasePlaying {
		s.score += points
	}
	s.mu.Unlock()
}

// Playing reports whether per-frame simulation should run.
func (s *Store) Playing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase == core.PhasePlaying
}

// Phase returns the current phase.
func (s *Store) Phase() core.Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Score returns the current run's score.
func (s *Store) Score() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.score
}

// HighScore returns the best score of any finished run.
func (s *Store) HighScore() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highScore
}

// Runs returns how many runs have been started.
func (s *Store) Runs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runs
}

// State returns a consistent copy of score, high score and phase.
func (s *Store) State() core.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return core.GameState{
		Score:     s.score,
		HighScore: s.highScore,
		Phase:     s.phase,
	}
}

// Board keeps one store per game for the lifetime of a hub session, so best
// scores survive moving between the hub and the games.
type Board struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{stores: make(map[string]*Store)}
}

// For returns the store for a game, creating it on first use.
func (b *Board) For(gameID string) *Store {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.stores[gameID]
	if !ok {
		s = New()
		b.stores[gameID] = s
	}
	return s
}

// HighScore returns the best score recorded for a game, or 0 if never played.
func (b *Board) HighScore(gameID string) int {
	b.mu.Lock()
	s, ok := b.stores[gameID]
	b.mu.Unlock()
	if !ok {
		return 0
	}
	return s.HighScore()
}
