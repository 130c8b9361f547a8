package ledger

import (
	"fmt"

	"github.com/mmynk/whistkeeper/internal/models"
)

// CreateGameNight starts a new active game night for exactly four distinct
// existing players and moves the active-game cursor to it.
func (l *Ledger) CreateGameNight(state models.AppState, playerIDs []string) (models.AppState, *models.GameNight, error) {
	if len(playerIDs) != models.PlayersPerGame {
		return state, nil, fmt.Errorf("%w: need %d players, got %d", ErrInvalidGame, models.PlayersPerGame, len(playerIDs))
	}
	seen := make(map[string]bool, len(playerIDs))
	for _, id := range playerIDs {
		if seen[id] {
			return state, nil, fmt.Errorf("%w: player %s listed twice", ErrInvalidGame, id)
		}
		seen[id] = true
		if state.Player(id) == nil {
			return state, nil, fmt.Errorf("%w: unknown player %s", ErrInvalidGame, id)
		}
	}

	game := models.GameNight{
		ID:       l.newID(),
		Date:     l.now().UTC(),
		Players:  append([]string(nil), playerIDs...),
		Rounds:   []models.Round{},
		Scores:   make(map[string]int, len(playerIDs)),
		IsActive: true,
	}
	for _, id := range playerIDs {
		game.Scores[id] = 0
	}

	next := state.Clone()
	next.GameNights = append(next.GameNights, game)
	next.ActiveGameID = game.ID

	created := next.GameNights[len(next.GameNights)-1]
	return next, &created, nil
}

// EndGameNight marks a game night inactive and clears the cursor if it
// pointed there. Ending an ended or unknown game changes nothing else.
func (l *Ledger) EndGameNight(state models.AppState, gameID string) models.AppState {
	idx := indexOfGame(state, gameID)
	if idx < 0 {
		return state
	}

	next := state.Clone()
	next.GameNights[idx].IsActive = false
	if next.ActiveGameID == gameID {
		next.ActiveGameID = ""
	}
	return next
}

// DeleteGameNight removes a game night entirely, active or not, and clears
// the cursor if it pointed there.
func (l *Ledger) DeleteGameNight(state models.AppState, gameID string) models.AppState {
	idx := indexOfGame(state, gameID)
	if idx < 0 {
		return state
	}

	next := state.Clone()
	next.GameNights = append(next.GameNights[:idx], next.GameNights[idx+1:]...)
	if next.ActiveGameID == gameID {
		next.ActiveGameID = ""
	}
	return next
}

// SetActiveGame moves the cursor. An empty gameID clears it; an unknown
// one is ignored.
func (l *Ledger) SetActiveGame(state models.AppState, gameID string) models.AppState {
	if gameID != "" && indexOfGame(state, gameID) < 0 {
		return state
	}
	next := state.Clone()
	next.ActiveGameID = gameID
	return next
}
