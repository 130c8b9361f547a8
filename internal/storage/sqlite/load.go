package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mmynk/whistkeeper/internal/models"
)

// Load reads the stored snapshot. An empty database yields the default state.
func (s *SQLiteStore) Load(ctx context.Context) (models.AppState, error) {
	state := models.NewAppState()

	players, err := s.loadPlayers(ctx)
	if err != nil {
		return state, err
	}
	state.Players = players

	games, err := s.loadGameNights(ctx)
	if err != nil {
		return state, err
	}
	state.GameNights = games

	err = s.db.QueryRowContext(ctx,
		"SELECT value FROM app_meta WHERE key = ?",
		activeGameKey,
	).Scan(&state.ActiveGameID)
	if err != nil && err != sql.ErrNoRows {
		return state, fmt.Errorf("failed to get active game: %w", err)
	}

	return state, nil
}

func (s *SQLiteStore) loadPlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM players ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		var p models.Player
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		p.CreatedAt = time.UnixMilli(createdAt).UTC()
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}

	return players, nil
}

func (s *SQLiteStore) loadGameNights(ctx context.Context) ([]models.GameNight, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, started_at, is_active FROM game_nights ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list game nights: %w", err)
	}

	games := []models.GameNight{}
	for rows.Next() {
		var g models.GameNight
		var startedAt int64
		if err := rows.Scan(&g.ID, &startedAt, &g.IsActive); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan game night: %w", err)
		}
		g.Date = time.UnixMilli(startedAt).UTC()
		games = append(games, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game nights: %w", err)
	}

	for i := range games {
		if err := s.loadSeats(ctx, &games[i]); err != nil {
			return nil, err
		}
		if err := s.loadRounds(ctx, &games[i]); err != nil {
			return nil, err
		}
	}

	return games, nil
}

func (s *SQLiteStore) loadSeats(ctx context.Context, g *models.GameNight) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT player_id, score FROM game_players WHERE game_id = ? ORDER BY seat",
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get game players: %w", err)
	}
	defer rows.Close()

	g.Scores = make(map[string]int, models.PlayersPerGame)
	for rows.Next() {
		var playerID string
		var score int
		if err := rows.Scan(&playerID, &score); err != nil {
			return fmt.Errorf("failed to scan game player: %w", err)
		}
		g.Players = append(g.Players, playerID)
		g.Scores[playerID] = score
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate game players: %w", err)
	}

	return nil
}

func (s *SQLiteStore) loadRounds(ctx context.Context, g *models.GameNight) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, bidder, partner, bid_level, trump_type, vip_count, special_bid,
		 tricks_won, success, points
		 FROM rounds WHERE game_id = ? ORDER BY seq`,
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get rounds: %w", err)
	}
	defer rows.Close()

	g.Rounds = []models.Round{}
	for rows.Next() {
		var r models.Round
		var partner, trump, special sql.NullString
		var vipCount sql.NullInt64
		if err := rows.Scan(&r.ID, &r.Bidder, &partner, &r.BidLevel, &trump, &vipCount,
			&special, &r.TricksWon, &r.Success, &r.Points); err != nil {
			return fmt.Errorf("failed to scan round: %w", err)
		}

		r.Partner = partner.String
		r.VipCount = int(vipCount.Int64)
		if r.TrumpType, err = models.ParseTrumpType(trump.String); err != nil {
			return fmt.Errorf("round %s: %w", r.ID, err)
		}
		if r.SpecialBid, err = models.ParseSpecialBid(special.String); err != nil {
			return fmt.Errorf("round %s: %w", r.ID, err)
		}

		g.Rounds = append(g.Rounds, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate rounds: %w", err)
	}

	return nil
}
