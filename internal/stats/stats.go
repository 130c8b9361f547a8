// Package stats aggregates historical statistics over completed game nights.
package stats

import (
	"math"
	"sort"

	"github.com/mmynk/whistkeeper/internal/models"
)

// PlayerStats is one player's record across completed game nights.
// RoundsPlayed counts rounds on the declaring side, as bidder or partner,
// and WinRate is the rounded percentage of those rounds won. TotalPoints
// is the sum of final game scores.
type PlayerStats struct {
	PlayerID       string `json:"playerId"`
	Name           string `json:"name"`
	GamesPlayed    int    `json:"gamesPlayed"`
	RoundsPlayed   int    `json:"roundsPlayed"`
	RoundsAsBidder int    `json:"roundsAsBidder"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	WinRate        int    `json:"winRate"`
	TotalPoints    int    `json:"totalPoints"`
}

// TrumpCount is how often a trump type was declared.
type TrumpCount struct {
	TrumpType  models.TrumpType `json:"trumpType"`
	Count      int              `json:"count"`
	Percentage int              `json:"percentage"`
}

// BidLevelCount is how often a bid level was declared and made.
type BidLevelCount struct {
	BidLevel int `json:"bidLevel"`
	Total    int `json:"total"`
	Wins     int `json:"wins"`
}

// Partnership is the record of two players declaring together.
type Partnership struct {
	Player1        string `json:"player1"`
	Player2        string `json:"player2"`
	RoundsTogether int    `json:"roundsTogether"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	WinRate        int    `json:"winRate"`
	TotalPoints    int    `json:"totalPoints"`
}

// Summary bundles every statistic shown on the stats page.
type Summary struct {
	Games        int             `json:"games"`
	Rounds       int             `json:"rounds"`
	Players      []PlayerStats   `json:"players"`
	Trumps       []TrumpCount    `json:"trumps"`
	BidLevels    []BidLevelCount `json:"bidLevels"`
	Partnerships []Partnership   `json:"partnerships"`
	Trend        []TrendPoint    `json:"trend"`
}

// Compute builds the Summary over the completed game nights in state.
func Compute(state models.AppState) Summary {
	games := state.CompletedGames()
	return Summary{
		Games:        len(games),
		Rounds:       countRounds(games),
		Players:      CalculatePlayerStats(state.Players, games),
		Trumps:       CalculateTrumpPopularity(games),
		BidLevels:    CalculateBidLevelDistribution(games),
		Partnerships: CalculatePartnerships(games),
		Trend:        CalculateScoreTrend(games),
	}
}

func countRounds(games []models.GameNight) int {
	n := 0
	for _, g := range games {
		n += len(g.Rounds)
	}
	return n
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// CalculatePlayerStats computes per-player records, highest total first.
func CalculatePlayerStats(players []models.Player, games []models.GameNight) []PlayerStats {
	byID := make(map[string]*PlayerStats, len(players))
	result := make([]PlayerStats, len(players))
	for i, p := range players {
		result[i] = PlayerStats{PlayerID: p.ID, Name: p.Name}
		byID[p.ID] = &result[i]
	}

	for _, g := range games {
		for _, id := range g.Players {
			if ps, ok := byID[id]; ok {
				ps.GamesPlayed++
				ps.TotalPoints += g.Scores[id]
			}
		}

		for _, r := range g.Rounds {
			for _, id := range r.DeclaringSide() {
				ps, ok := byID[id]
				if !ok {
					continue
				}
				ps.RoundsPlayed++
				if r.Success {
					ps.Wins++
				} else {
					ps.Losses++
				}
			}
			if ps, ok := byID[r.Bidder]; ok {
				ps.RoundsAsBidder++
			}
		}
	}

	for i := range result {
		result[i].WinRate = percent(result[i].Wins, result[i].RoundsPlayed)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalPoints > result[j].TotalPoints
	})
	return result
}

// CalculateTrumpPopularity counts declarations per trump type, most
// popular first. Ties keep table order.
func CalculateTrumpPopularity(games []models.GameNight) []TrumpCount {
	counts := make(map[models.TrumpType]int, len(models.TrumpTypes))
	total := 0
	for _, g := range games {
		for _, r := range g.Rounds {
			counts[r.TrumpType]++
			total++
		}
	}

	result := make([]TrumpCount, len(models.TrumpTypes))
	for i, trump := range models.TrumpTypes {
		result[i] = TrumpCount{
			TrumpType:  trump,
			Count:      counts[trump],
			Percentage: percent(counts[trump], total),
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// CalculateBidLevelDistribution counts declarations and wins for every
// bid level from MinBidLevel to MaxBidLevel.
func CalculateBidLevelDistribution(games []models.GameNight) []BidLevelCount {
	result := make([]BidLevelCount, 0, models.MaxBidLevel-models.MinBidLevel+1)
	for level := models.MinBidLevel; level <= models.MaxBidLevel; level++ {
		result = append(result, BidLevelCount{BidLevel: level})
	}

	for _, g := range games {
		for _, r := range g.Rounds {
			if r.BidLevel < models.MinBidLevel || r.BidLevel > models.MaxBidLevel {
				continue
			}
			entry := &result[r.BidLevel-models.MinBidLevel]
			entry.Total++
			if r.Success {
				entry.Wins++
			}
		}
	}
	return result
}

// CalculatePartnerships aggregates partnered rounds per unordered pair of
// players, most rounds together first. Solo rounds are skipped.
func CalculatePartnerships(games []models.GameNight) []Partnership {
	pairs := make(map[[2]string]*Partnership)
	var order [][2]string

	for _, g := range games {
		for _, r := range g.Rounds {
			if r.IsSolo() {
				continue
			}
			key := [2]string{r.Bidder, r.Partner}
			if key[1] < key[0] {
				key[0], key[1] = key[1], key[0]
			}

			p, exists := pairs[key]
			if !exists {
				p = &Partnership{Player1: key[0], Player2: key[1]}
				pairs[key] = p
				order = append(order, key)
			}

			p.RoundsTogether++
			if r.Success {
				p.Wins++
			} else {
				p.Losses++
			}
			p.TotalPoints += r.Points
		}
	}

	result := make([]Partnership, 0, len(order))
	for _, key := range order {
		p := pairs[key]
		p.WinRate = percent(p.Wins, p.RoundsTogether)
		result = append(result, *p)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].RoundsTogether > result[j].RoundsTogether
	})
	return result
}
