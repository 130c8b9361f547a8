package ledger

import (
	"fmt"

	"github.com/mmynk/whistkeeper/internal/models"
	"github.com/mmynk/whistkeeper/internal/scoring"
)

// RoundInput is what a caller supplies to record a round.
type RoundInput struct {
	GameID     string
	Bidder     string
	Partner    string
	BidLevel   int
	TrumpType  models.TrumpType
	VipCount   int
	SpecialBid models.SpecialBid
	TricksWon  int
}

func (in RoundInput) scoringInput() scoring.RoundInput {
	return scoring.RoundInput{
		Bidder:     in.Bidder,
		Partner:    in.Partner,
		BidLevel:   in.BidLevel,
		TrumpType:  in.TrumpType,
		VipCount:   in.VipCount,
		SpecialBid: in.SpecialBid,
		TricksWon:  in.TricksWon,
	}
}

// round builds the unscored round record for in.
func (in RoundInput) round() models.Round {
	return models.Round{
		Bidder:     in.Bidder,
		Partner:    in.Partner,
		BidLevel:   in.BidLevel,
		TrumpType:  in.TrumpType,
		VipCount:   in.VipCount,
		SpecialBid: in.SpecialBid,
		TricksWon:  in.TricksWon,
	}
}

// AddRound scores a round and appends it to an active game night.
// The returned round is nil when gameID is unknown.
func (l *Ledger) AddRound(state models.AppState, in RoundInput) (models.AppState, *models.Round, error) {
	idx := indexOfGame(state, in.GameID)
	if idx < 0 {
		return state, nil, nil
	}
	if !state.GameNights[idx].IsActive {
		return state, nil, ErrGameNotActive
	}
	if err := state.GameNights[idx].CheckRound(in.round()); err != nil {
		return state, nil, fmt.Errorf("%w: %v", ErrInvalidRound, err)
	}

	outcome := scoring.ComputeRoundOutcome(in.scoringInput())
	round := in.round()
	round.ID = l.newID()
	round.Success = outcome.Success
	round.Points = outcome.Points

	next := state.Clone()
	game := &next.GameNights[idx]
	game.Rounds = append(game.Rounds, round)
	game.ApplyPoints(round, round.Points)

	return next, &round, nil
}

// DeleteRound removes a round and reverses its stored points. Points are
// not recomputed, so the reversal matches what AddRound applied even if
// the scoring rules have changed since. Unknown IDs are a no-op. Rounds
// of ended game nights may still be deleted.
func (l *Ledger) DeleteRound(state models.AppState, gameID, roundID string) models.AppState {
	idx := indexOfGame(state, gameID)
	if idx < 0 {
		return state
	}
	target := state.GameNights[idx].Round(roundID)
	if target == nil {
		return state
	}
	round := *target

	next := state.Clone()
	game := &next.GameNights[idx]
	game.ApplyPoints(round, -round.Points)

	rounds := make([]models.Round, 0, len(game.Rounds)-1)
	for _, r := range game.Rounds {
		if r.ID != roundID {
			rounds = append(rounds, r)
		}
	}
	game.Rounds = rounds

	return next
}
