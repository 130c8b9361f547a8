package api

import (
	"context"

	"connectrpc.com/connect"
)

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return withCodec(opts, connect.ClientOption(connect.WithCodec(JSONCodec{})))
}

// PlayerServiceClient calls whist.v1.PlayerService.
type PlayerServiceClient struct {
	listPlayers  *connect.Client[ListPlayersRequest, ListPlayersResponse]
	addPlayer    *connect.Client[AddPlayerRequest, AddPlayerResponse]
	renamePlayer *connect.Client[RenamePlayerRequest, RenamePlayerResponse]
	deletePlayer *connect.Client[DeletePlayerRequest, DeletePlayerResponse]
}

// NewPlayerServiceClient constructs a client for the service at baseURL.
func NewPlayerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *PlayerServiceClient {
	opts = clientOptions(opts)
	return &PlayerServiceClient{
		listPlayers:  connect.NewClient[ListPlayersRequest, ListPlayersResponse](httpClient, baseURL+PlayerServiceListPlayersProcedure, opts...),
		addPlayer:    connect.NewClient[AddPlayerRequest, AddPlayerResponse](httpClient, baseURL+PlayerServiceAddPlayerProcedure, opts...),
		renamePlayer: connect.NewClient[RenamePlayerRequest, RenamePlayerResponse](httpClient, baseURL+PlayerServiceRenamePlayerProcedure, opts...),
		deletePlayer: connect.NewClient[DeletePlayerRequest, DeletePlayerResponse](httpClient, baseURL+PlayerServiceDeletePlayerProcedure, opts...),
	}
}

func (c *PlayerServiceClient) ListPlayers(ctx context.Context, req *connect.Request[ListPlayersRequest]) (*connect.Response[ListPlayersResponse], error) {
	return c.listPlayers.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) AddPlayer(ctx context.Context, req *connect.Request[AddPlayerRequest]) (*connect.Response[AddPlayerResponse], error) {
	return c.addPlayer.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) RenamePlayer(ctx context.Context, req *connect.Request[RenamePlayerRequest]) (*connect.Response[RenamePlayerResponse], error) {
	return c.renamePlayer.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) DeletePlayer(ctx context.Context, req *connect.Request[DeletePlayerRequest]) (*connect.Response[DeletePlayerResponse], error) {
	return c.deletePlayer.CallUnary(ctx, req)
}

// GameServiceClient calls whist.v1.GameService.
type GameServiceClient struct {
	getState        *connect.Client[GetStateRequest, GetStateResponse]
	createGameNight *connect.Client[CreateGameNightRequest, CreateGameNightResponse]
	endGameNight    *connect.Client[EndGameNightRequest, EndGameNightResponse]
	deleteGameNight *connect.Client[DeleteGameNightRequest, DeleteGameNightResponse]
	setActiveGame   *connect.Client[SetActiveGameRequest, SetActiveGameResponse]
	addRound        *connect.Client[AddRoundRequest, AddRoundResponse]
	deleteRound     *connect.Client[DeleteRoundRequest, DeleteRoundResponse]
	previewPoints   *connect.Client[PreviewPointsRequest, PreviewPointsResponse]
	exportState     *connect.Client[ExportStateRequest, ExportStateResponse]
	importState     *connect.Client[ImportStateRequest, ImportStateResponse]
}

// NewGameServiceClient constructs a client for the service at baseURL.
func NewGameServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *GameServiceClient {
	opts = clientOptions(opts)
	return &GameServiceClient{
		getState:        connect.NewClient[GetStateRequest, GetStateResponse](httpClient, baseURL+GameServiceGetStateProcedure, opts...),
		createGameNight: connect.NewClient[CreateGameNightRequest, CreateGameNightResponse](httpClient, baseURL+GameServiceCreateGameNightProcedure, opts...),
		endGameNight:    connect.NewClient[EndGameNightRequest, EndGameNightResponse](httpClient, baseURL+GameServiceEndGameNightProcedure, opts...),
		deleteGameNight: connect.NewClient[DeleteGameNightRequest, DeleteGameNightResponse](httpClient, baseURL+GameServiceDeleteGameNightProcedure, opts...),
		setActiveGame:   connect.NewClient[SetActiveGameRequest, SetActiveGameResponse](httpClient, baseURL+GameServiceSetActiveGameProcedure, opts...),
		addRound:        connect.NewClient[AddRoundRequest, AddRoundResponse](httpClient, baseURL+GameServiceAddRoundProcedure, opts...),
		deleteRound:     connect.NewClient[DeleteRoundRequest, DeleteRoundResponse](httpClient, baseURL+GameServiceDeleteRoundProcedure, opts...),
		previewPoints:   connect.NewClient[PreviewPointsRequest, PreviewPointsResponse](httpClient, baseURL+GameServicePreviewPointsProcedure, opts...),
		exportState:     connect.NewClient[ExportStateRequest, ExportStateResponse](httpClient, baseURL+GameServiceExportStateProcedure, opts...),
		importState:     connect.NewClient[ImportStateRequest, ImportStateResponse](httpClient, baseURL+GameServiceImportStateProcedure, opts...),
	}
}

func (c *GameServiceClient) GetState(ctx context.Context, req *connect.Request[GetStateRequest]) (*connect.Response[GetStateResponse], error) {
	return c.getState.CallUnary(ctx, req)
}

func (c *GameServiceClient) CreateGameNight(ctx context.Context, req *connect.Request[CreateGameNightRequest]) (*connect.Response[CreateGameNightResponse], error) {
	return c.createGameNight.CallUnary(ctx, req)
}

func (c *GameServiceClient) EndGameNight(ctx context.Context, req *connect.Request[EndGameNightRequest]) (*connect.Response[EndGameNightResponse], error) {
	return c.endGameNight.CallUnary(ctx, req)
}

func (c *GameServiceClient) DeleteGameNight(ctx context.Context, req *connect.Request[DeleteGameNightRequest]) (*connect.Response[DeleteGameNightResponse], error) {
	return c.deleteGameNight.CallUnary(ctx, req)
}

func (c *GameServiceClient) SetActiveGame(ctx context.Context, req *connect.Request[SetActiveGameRequest]) (*connect.Response[SetActiveGameResponse], error) {
	return c.setActiveGame.CallUnary(ctx, req)
}

func (c *GameServiceClient) AddRound(ctx context.Context, req *connect.Request[AddRoundRequest]) (*connect.Response[AddRoundResponse], error) {
	return c.addRound.CallUnary(ctx, req)
}

func (c *GameServiceClient) DeleteRound(ctx context.Context, req *connect.Request[DeleteRoundRequest]) (*connect.Response[DeleteRoundResponse], error) {
	return c.deleteRound.CallUnary(ctx, req)
}

func (c *GameServiceClient) PreviewPoints(ctx context.Context, req *connect.Request[PreviewPointsRequest]) (*connect.Response[PreviewPointsResponse], error) {
	return c.previewPoints.CallUnary(ctx, req)
}

func (c *GameServiceClient) ExportState(ctx context.Context, req *connect.Request[ExportStateRequest]) (*connect.Response[ExportStateResponse], error) {
	return c.exportState.CallUnary(ctx, req)
}

func (c *GameServiceClient) ImportState(ctx context.Context, req *connect.Request[ImportStateRequest]) (*connect.Response[ImportStateResponse], error) {
	return c.importState.CallUnary(ctx, req)
}

// StatsServiceClient calls whist.v1.StatsService.
type StatsServiceClient struct {
	getStats *connect.Client[GetStatsRequest, GetStatsResponse]
}

// NewStatsServiceClient constructs a client for the service at baseURL.
func NewStatsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *StatsServiceClient {
	return &StatsServiceClient{
		getStats: connect.NewClient[GetStatsRequest, GetStatsResponse](httpClient, baseURL+StatsServiceGetStatsProcedure, clientOptions(opts)...),
	}
}

func (c *StatsServiceClient) GetStats(ctx context.Context, req *connect.Request[GetStatsRequest]) (*connect.Response[GetStatsResponse], error) {
	return c.getStats.CallUnary(ctx, req)
}

// AuthServiceClient calls whist.v1.AuthService.
type AuthServiceClient struct {
	login *connect.Client[LoginRequest, LoginResponse]
}

// NewAuthServiceClient constructs a client for the service at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	return &AuthServiceClient{
		login: connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, clientOptions(opts)...),
	}
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}
