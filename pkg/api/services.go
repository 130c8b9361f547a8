package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// Service names.
const (
	PlayerServiceName = "whist.v1.PlayerService"
	GameServiceName   = "whist.v1.GameService"
	StatsServiceName  = "whist.v1.StatsService"
	AuthServiceName   = "whist.v1.AuthService"
)

// Procedure paths.
const (
	PlayerServiceListPlayersProcedure  = "/" + PlayerServiceName + "/ListPlayers"
	PlayerServiceAddPlayerProcedure    = "/" + PlayerServiceName + "/AddPlayer"
	PlayerServiceRenamePlayerProcedure = "/" + PlayerServiceName + "/RenamePlayer"
	PlayerServiceDeletePlayerProcedure = "/" + PlayerServiceName + "/DeletePlayer"

	GameServiceGetStateProcedure        = "/" + GameServiceName + "/GetState"
	GameServiceCreateGameNightProcedure = "/" + GameServiceName + "/CreateGameNight"
	GameServiceEndGameNightProcedure    = "/" + GameServiceName + "/EndGameNight"
	GameServiceDeleteGameNightProcedure = "/" + GameServiceName + "/DeleteGameNight"
	GameServiceSetActiveGameProcedure   = "/" + GameServiceName + "/SetActiveGame"
	GameServiceAddRoundProcedure        = "/" + GameServiceName + "/AddRound"
	GameServiceDeleteRoundProcedure     = "/" + GameServiceName + "/DeleteRound"
	GameServicePreviewPointsProcedure   = "/" + GameServiceName + "/PreviewPoints"
	GameServiceExportStateProcedure     = "/" + GameServiceName + "/ExportState"
	GameServiceImportStateProcedure     = "/" + GameServiceName + "/ImportState"

	StatsServiceGetStatsProcedure = "/" + StatsServiceName + "/GetStats"

	AuthServiceLoginProcedure = "/" + AuthServiceName + "/Login"
)

// PublicProcedures never require a scorekeeper token.
var PublicProcedures = []string{
	PlayerServiceListPlayersProcedure,
	GameServiceGetStateProcedure,
	GameServicePreviewPointsProcedure,
	StatsServiceGetStatsProcedure,
	AuthServiceLoginProcedure,
}

// withCodec puts JSONCodec ahead of caller options.
func withCodec[T any](opts []T, codec T) []T {
	return append([]T{codec}, opts...)
}

// PlayerServiceHandler is implemented by the player service.
type PlayerServiceHandler interface {
	ListPlayers(context.Context, *connect.Request[ListPlayersRequest]) (*connect.Response[ListPlayersResponse], error)
	AddPlayer(context.Context, *connect.Request[AddPlayerRequest]) (*connect.Response[AddPlayerResponse], error)
	RenamePlayer(context.Context, *connect.Request[RenamePlayerRequest]) (*connect.Response[RenamePlayerResponse], error)
	DeletePlayer(context.Context, *connect.Request[DeletePlayerRequest]) (*connect.Response[DeletePlayerResponse], error)
}

// NewPlayerServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewPlayerServiceHandler(svc PlayerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts, connect.HandlerOption(connect.WithCodec(JSONCodec{})))
	mux := http.NewServeMux()
	mux.Handle(PlayerServiceListPlayersProcedure, connect.NewUnaryHandler(PlayerServiceListPlayersProcedure, svc.ListPlayers, opts...))
	mux.Handle(PlayerServiceAddPlayerProcedure, connect.NewUnaryHandler(PlayerServiceAddPlayerProcedure, svc.AddPlayer, opts...))
	mux.Handle(PlayerServiceRenamePlayerProcedure, connect.NewUnaryHandler(PlayerServiceRenamePlayerProcedure, svc.RenamePlayer, opts...))
	mux.Handle(PlayerServiceDeletePlayerProcedure, connect.NewUnaryHandler(PlayerServiceDeletePlayerProcedure, svc.DeletePlayer, opts...))
	return "/" + PlayerServiceName + "/", mux
}

// GameServiceHandler is implemented by the game service.
type GameServiceHandler interface {
	GetState(context.Context, *connect.Request[GetStateRequest]) (*connect.Response[GetStateResponse], error)
	CreateGameNight(context.Context, *connect.Request[CreateGameNightRequest]) (*connect.Response[CreateGameNightResponse], error)
	EndGameNight(context.Context, *connect.Request[EndGameNightRequest]) (*connect.Response[EndGameNightResponse], error)
	DeleteGameNight(context.Context, *connect.Request[DeleteGameNightRequest]) (*connect.Response[DeleteGameNightResponse], error)
	SetActiveGame(context.Context, *connect.Request[SetActiveGameRequest]) (*connect.Response[SetActiveGameResponse], error)
	AddRound(context.Context, *connect.Request[AddRoundRequest]) (*connect.Response[AddRoundResponse], error)
	DeleteRound(context.Context, *connect.Request[DeleteRoundRequest]) (*connect.Response[DeleteRoundResponse], error)
	PreviewPoints(context.Context, *connect.Request[PreviewPointsRequest]) (*connect.Response[PreviewPointsResponse], error)
	ExportState(context.Context, *connect.Request[ExportStateRequest]) (*connect.Response[ExportStateResponse], error)
	ImportState(context.Context, *connect.Request[ImportStateRequest]) (*connect.Response[ImportStateResponse], error)
}

// NewGameServiceHandler builds an HTTP handler from the service implementation.
func NewGameServiceHandler(svc GameServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts, connect.HandlerOption(connect.WithCodec(JSONCodec{})))
	mux := http.NewServeMux()
	mux.Handle(GameServiceGetStateProcedure, connect.NewUnaryHandler(GameServiceGetStateProcedure, svc.GetState, opts...))
	mux.Handle(GameServiceCreateGameNightProcedure, connect.NewUnaryHandler(GameServiceCreateGameNightProcedure, svc.CreateGameNight, opts...))
	mux.Handle(GameServiceEndGameNightProcedure, connect.NewUnaryHandler(GameServiceEndGameNightProcedure, svc.EndGameNight, opts...))
	mux.Handle(GameServiceDeleteGameNightProcedure, connect.NewUnaryHandler(GameServiceDeleteGameNightProcedure, svc.DeleteGameNight, opts...))
	mux.Handle(GameServiceSetActiveGameProcedure, connect.NewUnaryHandler(GameServiceSetActiveGameProcedure, svc.SetActiveGame, opts...))
	mux.Handle(GameServiceAddRoundProcedure, connect.NewUnaryHandler(GameServiceAddRoundProcedure, svc.AddRound, opts...))
	mux.Handle(GameServiceDeleteRoundProcedure, connect.NewUnaryHandler(GameServiceDeleteRoundProcedure, svc.DeleteRound, opts...))
	mux.Handle(GameServicePreviewPointsProcedure, connect.NewUnaryHandler(GameServicePreviewPointsProcedure, svc.PreviewPoints, opts...))
	mux.Handle(GameServiceExportStateProcedure, connect.NewUnaryHandler(GameServiceExportStateProcedure, svc.ExportState, opts...))
	mux.Handle(GameServiceImportStateProcedure, connect.NewUnaryHandler(GameServiceImportStateProcedure, svc.ImportState, opts...))
	return "/" + GameServiceName + "/", mux
}

// StatsServiceHandler is implemented by the stats service.
type StatsServiceHandler interface {
	GetStats(context.Context, *connect.Request[GetStatsRequest]) (*connect.Response[GetStatsResponse], error)
}

// NewStatsServiceHandler builds an HTTP handler from the service implementation.
func NewStatsServiceHandler(svc StatsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts, connect.HandlerOption(connect.WithCodec(JSONCodec{})))
	mux := http.NewServeMux()
	mux.Handle(StatsServiceGetStatsProcedure, connect.NewUnaryHandler(StatsServiceGetStatsProcedure, svc.GetStats, opts...))
	return "/" + StatsServiceName + "/", mux
}

// AuthServiceHandler is implemented by the auth service.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts, connect.HandlerOption(connect.WithCodec(JSONCodec{})))
	mux := http.NewServeMux()
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...))
	return "/" + AuthServiceName + "/", mux
}
