package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/whistkeeper/internal/auth"
	"github.com/mmynk/whistkeeper/internal/config"
	"github.com/mmynk/whistkeeper/internal/ledger"
	"github.com/mmynk/whistkeeper/internal/metrics"
	"github.com/mmynk/whistkeeper/internal/middleware"
	"github.com/mmynk/whistkeeper/internal/service"
	"github.com/mmynk/whistkeeper/internal/storage"
	"github.com/mmynk/whistkeeper/internal/storage/redisstore"
	"github.com/mmynk/whistkeeper/internal/storage/sqlite"
	"github.com/mmynk/whistkeeper/pkg/api"
	"github.com/mmynk/whistkeeper/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "store", cfg.StoreKind, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	m := metrics.New()
	ctrl, err := service.NewController(ctx, store, ledger.New(), m)
	if err != nil {
		slog.Error("Failed to load state", "error", err)
		os.Exit(1)
	}

	interceptors := []connect.Interceptor{middleware.LoggingInterceptor()}
	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled() {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
		interceptors = append(interceptors, middleware.RequireAuth(jwtManager, api.PublicProcedures...))
		slog.Info("Table PIN enabled", "token_ttl", cfg.TokenTTL)
	} else {
		slog.Warn("TABLE_PIN_HASH not set, mutations are open")
	}
	opts := connect.WithInterceptors(interceptors...)

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(api.NewPlayerServiceHandler(service.NewPlayerService(ctrl), opts))
	mux.Handle(api.NewGameServiceHandler(service.NewGameService(ctrl), opts))
	mux.Handle(api.NewStatsServiceHandler(service.NewStatsService(ctrl), opts))
	if jwtManager != nil {
		authSvc := service.NewAuthService(auth.NewPINAuthenticator(cfg.TablePINHash), jwtManager, slog.Default())
		mux.Handle(api.NewAuthServiceHandler(authSvc, opts))
	}

	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Add logging and CORS middleware
	loggedHandler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(loggedHandler, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Connect server starting", "address", addr, "store", cfg.StoreKind)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// openStore connects the configured backend.
func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	if cfg.StoreKind == config.StoreRedis {
		store, err := redisstore.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisKey)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "redis", cfg.RedisAddr, "key", cfg.RedisKey)
		return store, nil
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	slog.Info("Storage initialized", "database", cfg.DBPath)
	return store, nil
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
