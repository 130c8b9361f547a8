package models

import "slices"

// AppState is the aggregate root: every player, every game night and the
// active-game cursor. ActiveGameID is a convenience pointer for callers,
// not an authority; it is cleared when that game is ended or deleted.
type AppState struct {
	Players      []Player    `json:"players"`
	GameNights   []GameNight `json:"gameNights"`
	ActiveGameID string      `json:"activeGameId,omitempty"`
}

// NewAppState returns the empty default state.
func NewAppState() AppState {
	return AppState{
		Players:    []Player{},
		GameNights: []GameNight{},
	}
}

// Player returns the player with the given ID, or nil.
func (s *AppState) Player(id string) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// PlayerName returns the display name for id, or "Ukendt" when the player
// no longer exists.
func (s *AppState) PlayerName(id string) string {
	if p := s.Player(id); p != nil {
		return p.Name
	}
	return "Ukendt"
}

// GameNight returns the game night with the given ID, or nil.
func (s *AppState) GameNight(id string) *GameNight {
	for i := range s.GameNights {
		if s.GameNights[i].ID == id {
			return &s.GameNights[i]
		}
	}
	return nil
}

// ActiveGame returns the game night the cursor points at, or nil.
func (s *AppState) ActiveGame() *GameNight {
	if s.ActiveGameID == "" {
		return nil
	}
	return s.GameNight(s.ActiveGameID)
}

// CompletedGames returns the game nights that have been ended.
func (s *AppState) CompletedGames() []GameNight {
	var games []GameNight
	for _, g := range s.GameNights {
		if !g.IsActive {
			games = append(games, g)
		}
	}
	return games
}

// Clone returns a deep copy of the state.
func (s AppState) Clone() AppState {
	out := AppState{
		Players:      slices.Clone(s.Players),
		GameNights:   make([]GameNight, len(s.GameNights)),
		ActiveGameID: s.ActiveGameID,
	}
	if out.Players == nil {
		out.Players = []Player{}
	}
	for i, g := range s.GameNights {
		out.GameNights[i] = g.Clone()
	}
	return out
}
