package api

import (
	"time"

	"github.com/mmynk/whistkeeper/internal/models"
	"github.com/mmynk/whistkeeper/internal/stats"
)

// PlayerService messages.

type ListPlayersRequest struct{}

type ListPlayersResponse struct {
	// Players are ordered by name.
	Players []models.Player `json:"players"`
}

type AddPlayerRequest struct {
	Name string `json:"name"`
}

type AddPlayerResponse struct {
	Player models.Player `json:"player"`
}

type RenamePlayerRequest struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

type RenamePlayerResponse struct {
	// Player is nil when the ID was unknown.
	Player *models.Player `json:"player,omitempty"`
}

type DeletePlayerRequest struct {
	PlayerID string `json:"playerId"`
}

type DeletePlayerResponse struct{}

// GameService messages.

type GetStateRequest struct{}

type GetStateResponse struct {
	State models.AppState `json:"state"`
}

type CreateGameNightRequest struct {
	PlayerIDs []string `json:"playerIds"`
}

type CreateGameNightResponse struct {
	GameNight models.GameNight `json:"gameNight"`
}

type EndGameNightRequest struct {
	GameID string `json:"gameId"`
}

type EndGameNightResponse struct {
	// GameNight is nil when the ID was unknown.
	GameNight *models.GameNight `json:"gameNight,omitempty"`
}

type DeleteGameNightRequest struct {
	GameID string `json:"gameId"`
}

type DeleteGameNightResponse struct{}

type SetActiveGameRequest struct {
	// GameID may be empty to clear the cursor.
	GameID string `json:"gameId"`
}

type SetActiveGameResponse struct {
	ActiveGameID string `json:"activeGameId"`
}

type AddRoundRequest struct {
	GameID     string            `json:"gameId"`
	Bidder     string            `json:"bidder"`
	Partner    string            `json:"partner,omitempty"`
	BidLevel   int               `json:"bidLevel"`
	TrumpType  models.TrumpType  `json:"trumpType"`
	VipCount   int               `json:"vipCount,omitempty"`
	SpecialBid models.SpecialBid `json:"specialBid,omitempty"`
	TricksWon  int               `json:"tricksWon"`
}

type AddRoundResponse struct {
	// Round is nil when the game ID was unknown.
	Round  *models.Round  `json:"round,omitempty"`
	Scores map[string]int `json:"scores,omitempty"`
}

type DeleteRoundRequest struct {
	GameID  string `json:"gameId"`
	RoundID string `json:"roundId"`
}

type DeleteRoundResponse struct {
	Scores map[string]int `json:"scores,omitempty"`
}

// PreviewPointsRequest carries raw form values. Unknown or half-typed values
// are allowed and score 0.
type PreviewPointsRequest struct {
	BidLevel   int    `json:"bidLevel"`
	TrumpType  string `json:"trumpType"`
	SpecialBid string `json:"specialBid,omitempty"`
	IsSolo     bool   `json:"isSolo"`
	VipCount   int    `json:"vipCount,omitempty"`
}

type PreviewPointsResponse struct {
	IfMade   int `json:"ifMade"`
	IfFailed int `json:"ifFailed"`
}

type ExportStateRequest struct{}

type ExportStateResponse struct {
	Data string `json:"data"`
}

type ImportStateRequest struct {
	Data string `json:"data"`
}

type ImportStateResponse struct {
	State models.AppState `json:"state"`
}

// StatsService messages.

type GetStatsRequest struct{}

type GetStatsResponse struct {
	Stats stats.Summary `json:"stats"`
	// Names maps every player ID in Stats to a display name.
	Names map[string]string `json:"names"`
}

// AuthService messages.

type LoginRequest struct {
	PIN string `json:"pin"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
