package models

// Round represents one declared bid and its outcome within a game night.
// A Round is immutable once recorded.
type Round struct {
	// ID is the unique identifier for the round (UUID format).
	ID string `json:"id"`

	// Bidder is the player ID of the declaring player.
	Bidder string `json:"bidder"`

	// Partner is the player ID of the bidder's teammate.
	// Empty means the bid was played solo.
	Partner string `json:"partner,omitempty"`

	// BidLevel is the number of tricks declared, MinBidLevel..MaxBidLevel.
	BidLevel int `json:"bidLevel"`

	// TrumpType is the trump regime the round was played under.
	TrumpType TrumpType `json:"trumpType"`

	// VipCount is how many kitty cards were inspected on a vip bid (1-3).
	// Zero means absent. It only affects scoring when TrumpType is vip.
	VipCount int `json:"vipCount,omitempty"`

	// SpecialBid is the declared special bid, if any.
	SpecialBid SpecialBid `json:"specialBid,omitempty"`

	// TricksWon is the number of tricks the declaring side actually took.
	TricksWon int `json:"tricksWon"`

	// Success is derived: TricksWon >= BidLevel.
	Success bool `json:"success"`

	// Points is the signed value computed by the scoring engine when the
	// round was recorded. This exact value is applied to the running
	// scores, and subtracted again if the round is deleted.
	Points int `json:"points"`
}

// IsSolo reports whether the bid was played without a partner.
func (r Round) IsSolo() bool {
	return r.Partner == ""
}

// DeclaringSide returns the bidder and, if present, the partner.
func (r Round) DeclaringSide() []string {
	if r.IsSolo() {
		return []string{r.Bidder}
	}
	return []string{r.Bidder, r.Partner}
}

// IsDeclarer reports whether playerID was on the declaring side.
func (r Round) IsDeclarer(playerID string) bool {
	return playerID != "" && (r.Bidder == playerID || r.Partner == playerID)
}
