package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/mmynk/whistkeeper/internal/ledger"
	"github.com/mmynk/whistkeeper/internal/models"
	"github.com/mmynk/whistkeeper/internal/scoring"
	"github.com/mmynk/whistkeeper/internal/storage"
	"github.com/mmynk/whistkeeper/pkg/api"
)

var _ api.GameServiceHandler = (*GameService)(nil)

// GameService implements the Connect GameService.
type GameService struct {
	ctrl *Controller
}

// NewGameService creates a GameService backed by ctrl.
func NewGameService(ctrl *Controller) *GameService {
	return &GameService{ctrl: ctrl}
}

// GetState returns the full current snapshot.
func (s *GameService) GetState(ctx context.Context, req *connect.Request[api.GetStateRequest]) (*connect.Response[api.GetStateResponse], error) {
	return connect.NewResponse(&api.GetStateResponse{State: s.ctrl.State()}), nil
}

// CreateGameNight starts a game night for four players and makes it active.
func (s *GameService) CreateGameNight(ctx context.Context, req *connect.Request[api.CreateGameNightRequest]) (*connect.Response[api.CreateGameNightResponse], error) {
	slog.Info("CreateGameNight request received", "player_ids", req.Msg.PlayerIDs)

	var game *models.GameNight
	_, err := s.ctrl.Apply(ctx, func(state models.AppState) (models.AppState, error) {
		next, g, err := s.ctrl.Ledger().CreateGameNight(state, req.Msg.PlayerIDs)
		game = g
		return next, err
	})
	if err != nil {
		slog.Error("CreateGameNight failed", "error", err)
		return nil, connectError(err)
	}
	s.ctrl.Metrics().GameNightEvent("created")

	slog.Info("Game night created", "game_id", game.ID)

	return connect.NewResponse(&api.CreateGameNightResponse{GameNight: *game}), nil
}

// EndGameNight marks a game night as finished.
func (s *GameService) EndGameNight(ctx context.Context, req *connect.Request[api.EndGameNightRequest]) (*connect.Response[api.EndGameNightResponse], error) {
	slog.Info("EndGameNight request received", "game_id", req.Msg.GameID)

	wasActive := false
	state, err := s.ctrl.Apply(ctx, func(state models.AppState) (models.AppState, error) {
		if g := state.GameNight(req.Msg.GameID); g != nil {
			wasActive = g.IsActive
		}
		return s.ctrl.Ledger().EndGameNight(state, req.Msg.GameID), nil
	})
	if err != nil {
		slog.Error("EndGameNight failed", "game_id", req.Msg.GameID, "error", err)
		return nil, connectError(err)
	}

	game := state.GameNight(req.Msg.GameID)
	if game == nil {
		slog.Warn("EndGameNight: unknown game", "game_id", req.Msg.GameID)
		return connect.NewResponse(&api.EndGameNightResponse{}), nil
	}
	if wasActive {
		s.ctrl.Metrics().GameNightEvent("ended")
		slog.Info("Game night ended", "game_id", game.ID, "rounds", len(game.Rounds))
	}

	return connect.NewResponse(&api.EndGameNightResponse{GameNight: game}), nil
}

// DeleteGameNight removes a game night and all of its rounds.
func (s *GameService) DeleteGameNight(ctx context.Context, req *connect.Request[api.DeleteGameNightRequest]) (*connect.Response[api.DeleteGameNightResponse], error) {
	slog.Info("DeleteGameNight request received", "game_id", req.Msg.GameID)

	existed := false
	_, err := s.ctrl.Apply(ctx, func(state models.AppState) (models.AppState, error) {
		existed = state.GameNight(req.Msg.GameID) != nil
		return s.ctrl.Ledger().DeleteGameNight(state, req.Msg.GameID), nil
	})
	if err != nil {
		slog.Error("DeleteGameNight failed", "game_id", req.Msg.GameID, "error", err)
		return nil, connectError(err)
	}
	if existed {
		s.ctrl.Metrics().GameNightEvent("deleted")
		slog.Info("Game night deleted", "game_id", req.Msg.GameID)
	}

	return connect.NewResponse(&api.DeleteGameNightResponse{}), nil
}

// SetActiveGame moves the active-game cursor.
func (s *GameService) SetActiveGame(ctx context.Context, req *connect.Request[api.SetActiveGameRequest]) (*connect.Response[api.SetActiveGameResponse], error) {
	state, err := s.ctrl.Apply(ctx, func(state models.AppState) (models.AppState, error) {
		return s.ctrl.Ledger().SetActiveGame(state, req.Msg.GameID), nil
	})
	if err != nil {
		slog.Error("SetActiveGame failed", "game_id", req.Msg.GameID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.SetActiveGameResponse{ActiveGameID: state.ActiveGameID}), nil
}

// AddRound scores and records a round.
func (s *GameService) AddRound(ctx context.Context, req *connect.Request[api.AddRoundRequest]) (*connect.Response[api.AddRoundResponse], error) {
	msg := req.Msg
	slog.Info("AddRound request received",
		"game_id", msg.GameID,
		"bidder", msg.Bidder,
		"partner", msg.Partner,
		"bid_level", msg.BidLevel,
		"trump_type", msg.TrumpType,
		"tricks_won", msg.TricksWon,
	)

	var round *models.Round
	state, err := s.ctrl.Apply(ctx, func(state models.AppState) (models.AppState, error) {
		next, r, err := s.ctrl.Ledger().AddRound(state, ledger.RoundInput{
			GameID:     msg.GameID,
			Bidder:     msg.Bidder,
			Partner:    msg.Partner,
			BidLevel:   msg.BidLevel,
			TrumpType:  msg.TrumpType,
			VipCount:   msg.VipCount,
			SpecialBid: msg.SpecialBid,
			TricksWon:  msg.TricksWon,
		})
		round = r
		return next, err
	})
	if err != nil {
		slog.Error("AddRound failed", "game_id", msg.GameID, "error", err)
		return nil, connectError(err)
	}
	if round == nil {
		slog.Warn("AddRound: unknown game", "game_id", msg.GameID)
		return connect.NewResponse(&api.AddRoundResponse{}), nil
	}
	s.ctrl.Metrics().RoundRecorded(*round)

	slog.Info("Round recorded",
		"game_id", msg.GameID,
		"round_id", round.ID,
		"success", round.Success,
		"points", round.Points,
	)

	return connect.NewResponse(&api.AddRoundResponse{
		Round:  round,
		Scores: state.GameNight(msg.GameID).Scores,
	}), nil
}

// DeleteRound removes a round and reverses the points it moved.
func (s *GameService) DeleteRound(ctx context.Context, req *connect.Request[api.DeleteRoundRequest]) (*connect.Response[api.DeleteRoundResponse], error) {
	slog.Info("DeleteRound request received", "game_id", req.Msg.GameID, "round_id", req.Msg.RoundID)

	existed := false
	state, err := s.ctrl.Apply(ctx, func(state models.AppState) (models.AppState, error) {
		if g := state.GameNight(req.Msg.GameID); g != nil {
			existed = g.Round(req.Msg.RoundID) != nil
		}
		return s.ctrl.Ledger().DeleteRound(state, req.Msg.GameID, req.Msg.RoundID), nil
	})
	if err != nil {
		slog.Error("DeleteRound failed", "game_id", req.Msg.GameID, "error", err)
		return nil, connectError(err)
	}
	if existed {
		s.ctrl.Metrics().RoundDeleted()
	}

	resp := &api.DeleteRoundResponse{}
	if g := state.GameNight(req.Msg.GameID); g != nil {
		resp.Scores = g.Scores
	}
	return connect.NewResponse(resp), nil
}

// PreviewPoints returns what a bid would score if made or failed. Unknown
// trump types or special bids score 0 instead of failing.
func (s *GameService) PreviewPoints(ctx context.Context, req *connect.Request[api.PreviewPointsRequest]) (*connect.Response[api.PreviewPointsResponse], error) {
	msg := req.Msg
	preview := scoring.PreviewPoints(
		msg.BidLevel,
		models.TrumpType(msg.TrumpType),
		models.SpecialBid(msg.SpecialBid),
		msg.IsSolo,
		msg.VipCount,
	)
	return connect.NewResponse(&api.PreviewPointsResponse{
		IfMade:   preview.IfMade,
		IfFailed: preview.IfFailed,
	}), nil
}

// ExportState returns the full state as a JSON document.
func (s *GameService) ExportState(ctx context.Context, req *connect.Request[api.ExportStateRequest]) (*connect.Response[api.ExportStateResponse], error) {
	data, err := storage.Export(s.ctrl.State())
	if err != nil {
		slog.Error("ExportState failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&api.ExportStateResponse{Data: string(data)}), nil
}

// ImportState replaces the full state with a previously exported document.
func (s *GameService) ImportState(ctx context.Context, req *connect.Request[api.ImportStateRequest]) (*connect.Response[api.ImportStateResponse], error) {
	slog.Info("ImportState request received", "bytes", len(req.Msg.Data))

	imported, err := storage.Import([]byte(req.Msg.Data))
	if err != nil {
		slog.Warn("ImportState rejected", "error", err)
		return nil, connectError(err)
	}

	state, err := s.ctrl.Apply(ctx, func(models.AppState) (models.AppState, error) {
		return imported, nil
	})
	if err != nil {
		slog.Error("ImportState failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("State imported",
		"players", len(state.Players),
		"game_nights", len(state.GameNights),
	)

	return connect.NewResponse(&api.ImportStateResponse{State: state}), nil
}
