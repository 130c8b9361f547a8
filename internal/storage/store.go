// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/whistkeeper/internal/models"
)

// Store defines the persistence sink for the application state.
// This abstraction allows swapping storage backends (SQLite, Redis, etc.)
// without changing the service layer.
type Store interface {
	// Load returns the last saved state, or models.NewAppState() when
	// nothing has been saved yet.
	Load(ctx context.Context) (models.AppState, error)

	// Save replaces the stored state with the given snapshot.
	Save(ctx context.Context, state models.AppState) error

	// Close releases any resources held by the store.
	Close() error
}
