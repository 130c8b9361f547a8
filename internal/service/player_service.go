package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/mmynk/whistkeeper/internal/models"
	"github.com/mmynk/whistkeeper/internal/stats"
	"github.com/mmynk/whistkeeper/pkg/api"
)

var _ api.PlayerServiceHandler = (*PlayerService)(nil)

// PlayerService implements the Connect PlayerService.
type PlayerService struct {
	ctrl *Controller
}

// NewPlayerService creates a PlayerService backed by ctrl.
func NewPlayerService(ctrl *Controller) *PlayerService {
	return &PlayerService{ctrl: ctrl}
}

// ListPlayers returns every registered player ordered by name.
func (s *PlayerService) ListPlayers(ctx context.Context, req *connect.Request[api.ListPlayersRequest]) (*connect.Response[api.ListPlayersResponse], error) {
	state := s.ctrl.State()
	players := stats.SortPlayersByName(state.Players)

	slog.Debug("ListPlayers successful", "count", len(players))

	return connect.NewResponse(&api.ListPlayersResponse{Players: players}), nil
}

// AddPlayer registers a new player.
func (s *PlayerService) AddPlayer(ctx context.Context, req *connect.Request[api.AddPlayerRequest]) (*connect.Response[api.AddPlayerResponse], error) {
	slog.Info("AddPlayer request received", "name", req.Msg.Name)

	var player *models.Player
	_, err := s.ctrl.Apply(ctx, func(state models.AppState) (models.AppState, error) {
		next, p, err := s.ctrl.Ledger().AddPlayer(state, req.Msg.Name)
		player = p
		return next, err
	})
	if err != nil {
		slog.Error("AddPlayer failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Player added", "player_id", player.ID, "name", player.Name)

	return connect.NewResponse(&api.AddPlayerResponse{Player: *player}), nil
}

// RenamePlayer changes a player's display name.
func (s *PlayerService) RenamePlayer(ctx context.Context, req *connect.Request[api.RenamePlayerRequest]) (*connect.Response[api.RenamePlayerResponse], error) {
	slog.Info("RenamePlayer request received", "player_id", req.Msg.PlayerID, "name", req.Msg.Name)

	state, err := s.ctrl.Apply(ctx, func(state models.AppState) (models.AppState, error) {
		return s.ctrl.Ledger().RenamePlayer(state, req.Msg.PlayerID, req.Msg.Name)
	})
	if err != nil {
		slog.Error("RenamePlayer failed", "player_id", req.Msg.PlayerID, "error", err)
		return nil, connectError(err)
	}

	player := state.Player(req.Msg.PlayerID)
	if player == nil {
		slog.Warn("RenamePlayer: unknown player", "player_id", req.Msg.PlayerID)
	}

	return connect.NewResponse(&api.RenamePlayerResponse{Player: player}), nil
}

// DeletePlayer removes a player who is not seated in an active game night.
func (s *PlayerService) DeletePlayer(ctx context.Context, req *connect.Request[api.DeletePlayerRequest]) (*connect.Response[api.DeletePlayerResponse], error) {
	slog.Info("DeletePlayer request received", "player_id", req.Msg.PlayerID)

	_, err := s.ctrl.Apply(ctx, func(state models.AppState) (models.AppState, error) {
		return s.ctrl.Ledger().DeletePlayer(state, req.Msg.PlayerID)
	})
	if err != nil {
		slog.Error("DeletePlayer failed", "player_id", req.Msg.PlayerID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Player deleted", "player_id", req.Msg.PlayerID)

	return connect.NewResponse(&api.DeletePlayerResponse{}), nil
}
