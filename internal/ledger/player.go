package ledger

import (
	"fmt"
	"strings"

	"github.com/mmynk/whistkeeper/internal/models"
)

// AddPlayer registers a new player.
func (l *Ledger) AddPlayer(state models.AppState, name string) (models.AppState, *models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return state, nil, fmt.Errorf("%w: name required", ErrInvalidPlayer)
	}

	player := models.Player{
		ID:        l.newID(),
		Name:      name,
		CreatedAt: l.now().UTC(),
	}

	next := state.Clone()
	next.Players = append(next.Players, player)
	return next, &player, nil
}

// RenamePlayer changes a player's display name.
func (l *Ledger) RenamePlayer(state models.AppState, playerID, name string) (models.AppState, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return state, fmt.Errorf("%w: name required", ErrInvalidPlayer)
	}
	if state.Player(playerID) == nil {
		return state, nil
	}

	next := state.Clone()
	next.Player(playerID).Name = name
	return next, nil
}

// DeletePlayer removes a player who is not seated in any active game
// night. Ended games keep referring to the ID; lookups fall back to
// AppState.PlayerName's placeholder.
func (l *Ledger) DeletePlayer(state models.AppState, playerID string) (models.AppState, error) {
	if state.Player(playerID) == nil {
		return state, nil
	}
	for _, g := range state.GameNights {
		if g.IsActive && g.HasPlayer(playerID) {
			return state, fmt.Errorf("%w: %s", ErrPlayerInUse, g.ID)
		}
	}

	next := state.Clone()
	players := make([]models.Player, 0, len(next.Players))
	for _, p := range next.Players {
		if p.ID != playerID {
			players = append(players, p)
		}
	}
	next.Players = players
	return next, nil
}
