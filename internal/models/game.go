package models

import (
	"fmt"
	"slices"
	"time"
)

// GameNight represents one scored session among four fixed players.
type GameNight struct {
	// ID is the unique identifier for the game night (UUID format).
	ID string `json:"id"`

	// Date is when the game night was started.
	Date time.Time `json:"date"`

	// Players holds the IDs of the four participants. Set at creation and
	// never changed.
	Players []string `json:"players"`

	// Rounds is the round log in insertion order.
	Rounds []Round `json:"rounds"`

	// Scores maps each participant ID to their running total.
	// The values always sum to zero.
	Scores map[string]int `json:"scores"`

	// IsActive gates whether new rounds may be appended.
	IsActive bool `json:"isActive"`
}

// HasPlayer reports whether playerID is one of the game's participants.
func (g *GameNight) HasPlayer(playerID string) bool {
	return slices.Contains(g.Players, playerID)
}

// Round returns the round with the given ID, or nil.
func (g *GameNight) Round(roundID string) *Round {
	for i := range g.Rounds {
		if g.Rounds[i].ID == roundID {
			return &g.Rounds[i]
		}
	}
	return nil
}

// CheckRound reports why r cannot be part of this game night, or nil.
// The declaring side must be seated here, and the bid fields must be in
// range. A vipCount on a non-vip trump is accepted.
func (g *GameNight) CheckRound(r Round) error {
	if !g.HasPlayer(r.Bidder) {
		return fmt.Errorf("bidder %q is not in the game", r.Bidder)
	}
	if r.Partner != "" {
		if r.Partner == r.Bidder {
			return fmt.Errorf("partner is the bidder")
		}
		if !g.HasPlayer(r.Partner) {
			return fmt.Errorf("partner %q is not in the game", r.Partner)
		}
	}
	if r.BidLevel < MinBidLevel || r.BidLevel > MaxBidLevel {
		return fmt.Errorf("bid level %d outside %d-%d", r.BidLevel, MinBidLevel, MaxBidLevel)
	}
	if r.TricksWon < 0 || r.TricksWon > MaxTricks {
		return fmt.Errorf("tricks won %d outside 0-%d", r.TricksWon, MaxTricks)
	}
	if !r.TrumpType.Valid() {
		return fmt.Errorf("unknown trump type %q", r.TrumpType)
	}
	if !r.SpecialBid.Valid() {
		return fmt.Errorf("unknown special bid %q", r.SpecialBid)
	}
	if r.VipCount < 0 || r.VipCount > MaxVipCount {
		return fmt.Errorf("vip count %d outside 0-%d", r.VipCount, MaxVipCount)
	}
	return nil
}

// ApplyPoints moves points from the defending side to the declaring side.
// Every defender pays points and the declarers split the pot, so a solo
// bidder collects three times points. Called with -points it reverses an
// earlier application exactly.
func (g *GameNight) ApplyPoints(r Round, points int) {
	declarers := len(r.DeclaringSide())
	defenders := len(g.Players) - declarers
	share := points * defenders / declarers
	for _, id := range g.Players {
		if r.IsDeclarer(id) {
			g.Scores[id] += share
		} else {
			g.Scores[id] -= points
		}
	}
}

// RebuildScores recomputes Scores from the stored points of every round.
func (g *GameNight) RebuildScores() {
	g.Scores = make(map[string]int, len(g.Players))
	for _, id := range g.Players {
		g.Scores[id] = 0
	}
	for _, r := range g.Rounds {
		g.ApplyPoints(r, r.Points)
	}
}

// ScoreSum returns the sum of all running scores. It is zero for every
// consistent game night.
func (g *GameNight) ScoreSum() int {
	sum := 0
	for _, score := range g.Scores {
		sum += score
	}
	return sum
}

// Clone returns a deep copy of the game night.
func (g GameNight) Clone() GameNight {
	g.Players = slices.Clone(g.Players)
	g.Rounds = slices.Clone(g.Rounds)
	scores := make(map[string]int, len(g.Scores))
	for id, score := range g.Scores {
		scores[id] = score
	}
	g.Scores = scores
	return g
}
