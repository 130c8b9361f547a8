// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/whistkeeper/internal/models"
	"github.com/mmynk/whistkeeper/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

const activeGameKey = "active_game_id"

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save replaces the stored snapshot with state in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, state models.AppState) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Children first; foreign_keys is only guaranteed on the connection
	// that ran the PRAGMA, so cascades are not relied on here
	for _, stmt := range []string{
		"DELETE FROM rounds",
		"DELETE FROM game_players",
		"DELETE FROM game_nights",
		"DELETE FROM players",
		"DELETE FROM app_meta",
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to clear snapshot: %w", err)
		}
	}

	for _, p := range state.Players {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO players (id, name, created_at) VALUES (?, ?, ?)",
			p.ID, p.Name, p.CreatedAt.UnixMilli(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert player: %w", err)
		}
	}

	for _, g := range state.GameNights {
		if err := insertGameNight(ctx, tx, g); err != nil {
			return err
		}
	}

	if state.ActiveGameID != "" {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO app_meta (key, value) VALUES (?, ?)",
			activeGameKey, state.ActiveGameID,
		)
		if err != nil {
			return fmt.Errorf("failed to save active game: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertGameNight(ctx context.Context, tx *sql.Tx, g models.GameNight) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO game_nights (id, started_at, is_active) VALUES (?, ?, ?)",
		g.ID, g.Date.UnixMilli(), g.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to insert game night: %w", err)
	}

	// Insert seats with their running scores
	for seat, playerID := range g.Players {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO game_players (game_id, seat, player_id, score) VALUES (?, ?, ?, ?)",
			g.ID, seat, playerID, g.Scores[playerID],
		)
		if err != nil {
			return fmt.Errorf("failed to insert game player: %w", err)
		}
	}

	// Insert rounds, keeping log order in seq
	for seq, r := range g.Rounds {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO rounds (id, game_id, seq, bidder, partner, bid_level, trump_type,
			 vip_count, special_bid, tricks_won, success, points)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, g.ID, seq, r.Bidder, nullString(r.Partner), r.BidLevel, string(r.TrumpType),
			nullInt(r.VipCount), nullString(string(r.SpecialBid)), r.TricksWon, r.Success, r.Points,
		)
		if err != nil {
			return fmt.Errorf("failed to insert round: %w", err)
		}
	}

	return nil
}

// nullString stores empty optional text as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// nullInt stores a zero optional count as NULL.
func nullInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}
