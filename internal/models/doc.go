// Package models defines the core domain models for the whist score keeper.
//
// # Models
//
//   - Player: a person who sits at the table
//   - Round: one declared bid and its scored outcome
//   - GameNight: a session of rounds among four fixed players
//   - AppState: the aggregate root holding players, game nights and the
//     active-game cursor
//
// # Design Principles
//
// 1. **IDs, not pointers**: rounds and games reference players by ID string
// 2. **Closed enums**: trump types and special bids are typed constants that
// refuse unknown names when decoded
// 3. **Denormalized outcome**: a Round stores its Success and Points so that
// removing it later reverses exactly what was applied
// 4. **Value snapshots**: AppState.Clone returns a deep copy so state
// transitions never mutate the snapshot they were given
package models

const (
	// MinBidLevel is the lowest number of tricks a bid may declare.
	MinBidLevel = 7

	// MaxBidLevel is the highest number of tricks a bid may declare.
	MaxBidLevel = 13

	// MaxTricks is the number of tricks in one deal.
	MaxTricks = 13

	// PlayersPerGame is the fixed table size.
	PlayersPerGame = 4

	// MaxVipCount is the most kitty cards a vip declarer may inspect.
	MaxVipCount = 3
)
