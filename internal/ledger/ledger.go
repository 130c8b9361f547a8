// Package ledger implements the game-night state transitions.
//
// Every transition takes the previous AppState snapshot plus arguments and
// returns a new snapshot; the input is never modified. Operations on an
// unknown game, round or player ID are no-ops that return the state
// unchanged. Rule violations are reported through the sentinel errors
// below, together with the unchanged input state.
package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mmynk/whistkeeper/internal/models"
)

var (
	ErrInvalidRound  = errors.New("invalid round")
	ErrInvalidGame   = errors.New("invalid game night")
	ErrInvalidPlayer = errors.New("invalid player")
	ErrGameNotActive = errors.New("game night has ended")
	ErrPlayerInUse   = errors.New("player is in an active game night")
)

// Ledger applies transitions. It carries the ID generator and clock so
// that transitions stay deterministic under test.
type Ledger struct {
	newID func() string
	now   func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithIDGenerator overrides the UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(l *Ledger) { l.newID = fn }
}

// WithClock overrides time.Now.
func WithClock(fn func() time.Time) Option {
	return func(l *Ledger) { l.now = fn }
}

// New creates a Ledger that assigns UUIDs and wall-clock timestamps.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		newID: func() string { return uuid.New().String() },
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// indexOfGame returns the position of gameID in state.GameNights, or -1.
func indexOfGame(state models.AppState, gameID string) int {
	for i := range state.GameNights {
		if state.GameNights[i].ID == gameID {
			return i
		}
	}
	return -1
}
