// Package scoring turns a declared bid and its outcome into signed points.
//
// The engine is pure and total: it never fails and returns 0 for a bid
// level or trump type outside the points table, so it is safe to call
// from a live preview on every keystroke.
package scoring

import (
	"log/slog"

	"github.com/mmynk/whistkeeper/internal/models"
)

// SoloMultiplier scales the points of a bid played without a partner.
const SoloMultiplier = 2

type pointPair struct {
	made   int
	failed int
}

// basePoints holds the level-7 made value for each trump type. Every
// further bid level doubles it, and failing costs the same amount.
var basePoints = map[models.TrumpType]int{
	models.TrumpAlm:   1,
	models.TrumpVip:   2,
	models.TrumpGode:  2,
	models.TrumpHalve: 2,
	models.TrumpSans:  3,
}

// pointsTable is basePoints expanded to [bidLevel][trumpType].
var pointsTable = buildPointsTable()

func buildPointsTable() map[int]map[models.TrumpType]pointPair {
	table := make(map[int]map[models.TrumpType]pointPair, models.MaxBidLevel-models.MinBidLevel+1)
	for level := models.MinBidLevel; level <= models.MaxBidLevel; level++ {
		row := make(map[models.TrumpType]pointPair, len(basePoints))
		for trump, base := range basePoints {
			made := base << (level - models.MinBidLevel)
			row[trump] = pointPair{made: made, failed: -made}
		}
		table[level] = row
	}
	return table
}

// specialBonus is added flat to a successful special bid.
var specialBonus = map[models.SpecialBid]int{
	models.SpecialSoloNolo:         6,
	models.SpecialPureNolo:         12,
	models.SpecialOpenNolo:         24,
	models.SpecialSol:              3,
	models.SpecialRenSol:           6,
	models.SpecialBordlaegger:      12,
	models.SpecialSuperBordlaegger: 24,
}

// BasePoints returns the table entry for (bidLevel, trump).
// ok is false when the pair is outside the table.
func BasePoints(bidLevel int, trump models.TrumpType) (made, failed int, ok bool) {
	p, ok := pointsTable[bidLevel][trump]
	if !ok {
		return 0, 0, false
	}
	return p.made, p.failed, true
}

// SpecialBonus returns the flat bonus for a successful special bid, or 0.
func SpecialBonus(special models.SpecialBid) int {
	return specialBonus[special]
}

// Compute returns the signed points for a round.
//
// Algorithm:
//   - look up the made/failed pair for (bidLevel, trump) and pick one by success
//   - vip bids are multiplied by vipCount when it is 1-3
//   - solo bids are multiplied by SoloMultiplier
//   - a special bid adds its flat bonus, on success only
//
// Multipliers compose before the bonus is added; the bonus is never scaled.
func Compute(bidLevel int, trump models.TrumpType, success bool, special models.SpecialBid, isSolo bool, vipCount int) int {
	pair, ok := pointsTable[bidLevel][trump]
	if !ok {
		slog.Debug("No points defined for bid", "bid_level", bidLevel, "trump_type", string(trump))
		return 0
	}

	points := pair.failed
	if success {
		points = pair.made
	}

	if trump == models.TrumpVip && vipCount >= 1 && vipCount <= models.MaxVipCount {
		points *= vipCount
	}

	if isSolo {
		points *= SoloMultiplier
	}

	if special.IsSet() && success {
		points += specialBonus[special]
	}

	return points
}

// RoundInput is a round's declared parameters and reported trick count,
// without the derived fields.
type RoundInput struct {
	Bidder     string
	Partner    string
	BidLevel   int
	TrumpType  models.TrumpType
	VipCount   int
	SpecialBid models.SpecialBid
	TricksWon  int
}

// Outcome is the derived part of a round.
type Outcome struct {
	Success bool
	Points  int
}

// ComputeRoundOutcome derives success from the trick count, treats a
// missing partner as solo and computes the points.
func ComputeRoundOutcome(in RoundInput) Outcome {
	success := in.TricksWon >= in.BidLevel
	return Outcome{
		Success: success,
		Points:  Compute(in.BidLevel, in.TrumpType, success, in.SpecialBid, in.Partner == "", in.VipCount),
	}
}

// Preview holds what a bid would score either way.
type Preview struct {
	IfMade   int
	IfFailed int
}

// PreviewPoints computes the points for both outcomes of a bid.
func PreviewPoints(bidLevel int, trump models.TrumpType, special models.SpecialBid, isSolo bool, vipCount int) Preview {
	return Preview{
		IfMade:   Compute(bidLevel, trump, true, special, isSolo, vipCount),
		IfFailed: Compute(bidLevel, trump, false, special, isSolo, vipCount),
	}
}
