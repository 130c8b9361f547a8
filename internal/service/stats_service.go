package service

import (
	"context"

	"connectrpc.com/connect"
	"github.com/mmynk/whistkeeper/internal/stats"
	"github.com/mmynk/whistkeeper/pkg/api"
)

var _ api.StatsServiceHandler = (*StatsService)(nil)

// StatsService implements the Connect StatsService.
type StatsService struct {
	ctrl *Controller
}

// NewStatsService creates a StatsService backed by ctrl.
func NewStatsService(ctrl *Controller) *StatsService {
	return &StatsService{ctrl: ctrl}
}

// GetStats aggregates statistics over completed game nights.
func (s *StatsService) GetStats(ctx context.Context, req *connect.Request[api.GetStatsRequest]) (*connect.Response[api.GetStatsResponse], error) {
	state := s.ctrl.State()
	summary := stats.Compute(state)

	// Deleted players still appear in old games, so names are resolved
	// for every seated ID rather than only the registered players.
	names := make(map[string]string)
	for _, p := range state.Players {
		names[p.ID] = p.Name
	}
	for _, g := range state.CompletedGames() {
		for _, id := range g.Players {
			if _, ok := names[id]; !ok {
				names[id] = state.PlayerName(id)
			}
		}
	}

	return connect.NewResponse(&api.GetStatsResponse{Stats: summary, Names: names}), nil
}
