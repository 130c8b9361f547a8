package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/mmynk/whistkeeper/internal/models"
)

// ErrInvalidExport is returned by Import for documents that do not hold a
// consistent application state.
var ErrInvalidExport = errors.New("invalid data structure")

// Export serializes the full state as indented JSON.
func Export(state models.AppState) ([]byte, error) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}
	return data, nil
}

// exportDocument mirrors models.AppState with raw arrays so that a missing
// or non-array field can be told apart from an empty one.
type exportDocument struct {
	Players      json.RawMessage `json:"players"`
	GameNights   json.RawMessage `json:"gameNights"`
	ActiveGameID *string         `json:"activeGameId"`
}

// Import parses a document produced by Export. Games without four
// distinct players, rounds that could not have been recorded in their
// game and empty or duplicate IDs are rejected. Scores are rebuilt from
// the stored round points, so files whose totals were written under
// another solo settlement still load with zero-sum scores.
func Import(data []byte) (models.AppState, error) {
	var doc exportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.AppState{}, fmt.Errorf("%w: %v", ErrInvalidExport, err)
	}
	if !isArray(doc.Players) || !isArray(doc.GameNights) {
		return models.AppState{}, fmt.Errorf("%w: players and gameNights must be arrays", ErrInvalidExport)
	}

	state := models.NewAppState()
	if err := json.Unmarshal(doc.Players, &state.Players); err != nil {
		return models.AppState{}, fmt.Errorf("%w: players: %v", ErrInvalidExport, err)
	}
	if err := json.Unmarshal(doc.GameNights, &state.GameNights); err != nil {
		return models.AppState{}, fmt.Errorf("%w: gameNights: %v", ErrInvalidExport, err)
	}
	if doc.ActiveGameID != nil {
		state.ActiveGameID = *doc.ActiveGameID
	}

	playerIDs := make(map[string]bool, len(state.Players))
	for _, p := range state.Players {
		if p.ID == "" || playerIDs[p.ID] {
			return models.AppState{}, fmt.Errorf("%w: empty or duplicate player id %q", ErrInvalidExport, p.ID)
		}
		playerIDs[p.ID] = true
	}

	gameIDs := make(map[string]bool, len(state.GameNights))
	roundIDs := make(map[string]bool)
	for i := range state.GameNights {
		g := &state.GameNights[i]
		if g.ID == "" || gameIDs[g.ID] {
			return models.AppState{}, fmt.Errorf("%w: empty or duplicate game id %q", ErrInvalidExport, g.ID)
		}
		gameIDs[g.ID] = true

		if len(g.Players) != models.PlayersPerGame || !distinctIDs(g.Players) {
			return models.AppState{}, fmt.Errorf("%w: game %s needs %d distinct players", ErrInvalidExport, g.ID, models.PlayersPerGame)
		}

		if g.Rounds == nil {
			g.Rounds = []models.Round{}
		}
		for _, r := range g.Rounds {
			if r.ID == "" || roundIDs[r.ID] {
				return models.AppState{}, fmt.Errorf("%w: empty or duplicate round id %q", ErrInvalidExport, r.ID)
			}
			roundIDs[r.ID] = true
			if err := g.CheckRound(r); err != nil {
				return models.AppState{}, fmt.Errorf("%w: game %s round %s: %v", ErrInvalidExport, g.ID, r.ID, err)
			}
		}

		stored := g.Scores
		g.RebuildScores()
		if !maps.Equal(stored, g.Scores) {
			slog.Warn("Imported scores rebuilt from rounds",
				"game_id", g.ID,
				"stored", stored,
				"rebuilt", g.Scores,
			)
		}
	}
	if state.ActiveGameID != "" && state.GameNight(state.ActiveGameID) == nil {
		state.ActiveGameID = ""
	}

	return state, nil
}

// distinctIDs reports whether ids are non-empty and pairwise different.
func distinctIDs(ids []string) bool {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
