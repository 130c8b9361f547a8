// Package service implements the Connect handlers on top of the ledger.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmynk/whistkeeper/internal/ledger"
	"github.com/mmynk/whistkeeper/internal/metrics"
	"github.com/mmynk/whistkeeper/internal/models"
	"github.com/mmynk/whistkeeper/internal/storage"
)

// Transition computes the next snapshot from the current one.
type Transition func(models.AppState) (models.AppState, error)

// Controller owns the current AppState. Transitions are serialized, and a
// new snapshot replaces the current one only after it has been saved.
type Controller struct {
	mu      sync.Mutex
	state   models.AppState
	ledger  *ledger.Ledger
	store   storage.Store
	metrics *metrics.Metrics
}

// NewController loads the persisted state from store.
func NewController(ctx context.Context, store storage.Store, l *ledger.Ledger, m *metrics.Metrics) (*Controller, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	slog.Info("State loaded",
		"players", len(state.Players),
		"game_nights", len(state.GameNights),
		"active_game_id", state.ActiveGameID,
	)
	return &Controller{
		state:   state,
		ledger:  l,
		store:   store,
		metrics: m,
	}, nil
}

// Ledger returns the ledger used for transitions.
func (c *Controller) Ledger() *ledger.Ledger {
	return c.ledger
}

// Metrics returns the server metrics.
func (c *Controller) Metrics() *metrics.Metrics {
	return c.metrics
}

// State returns a copy of the current snapshot.
func (c *Controller) State() models.AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Apply runs fn against the current snapshot and persists the result. On
// any error the current snapshot is kept and returned.
func (c *Controller) Apply(ctx context.Context, fn Transition) (models.AppState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := fn(c.state)
	if err != nil {
		return c.state.Clone(), err
	}
	if err := c.store.Save(ctx, next); err != nil {
		c.metrics.SaveFailed()
		slog.Error("Failed to save state", "error", err)
		return c.state.Clone(), fmt.Errorf("save state: %w", err)
	}
	c.state = next
	return next.Clone(), nil
}
