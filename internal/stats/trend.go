package stats

import (
	"sort"
	"time"

	"github.com/mmynk/whistkeeper/internal/models"
)

// TrendPoint is the cumulative score of every player after one game night.
type TrendPoint struct {
	GameID string         `json:"gameId"`
	Date   time.Time      `json:"date"`
	Scores map[string]int `json:"scores"`
}

// CalculateScoreTrend orders games by date and accumulates each player's
// final scores. Every point carries every player seen in any of the games,
// so chart series have no gaps.
func CalculateScoreTrend(games []models.GameNight) []TrendPoint {
	sorted := make([]models.GameNight, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	cumulative := make(map[string]int)
	for _, g := range sorted {
		for _, id := range g.Players {
			cumulative[id] = 0
		}
	}

	points := make([]TrendPoint, 0, len(sorted))
	for _, g := range sorted {
		for _, id := range g.Players {
			cumulative[id] += g.Scores[id]
		}
		snapshot := make(map[string]int, len(cumulative))
		for id, score := range cumulative {
			snapshot[id] = score
		}
		points = append(points, TrendPoint{GameID: g.ID, Date: g.Date, Scores: snapshot})
	}
	return points
}
