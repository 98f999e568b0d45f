package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/iboet2004/db-rilis/internal/config"
	hhttp "github.com/iboet2004/db-rilis/internal/handler/http"
	hdash "github.com/iboet2004/db-rilis/internal/handler/http/dashboard"
	"github.com/iboet2004/db-rilis/internal/handler/http/requestid"
	"github.com/iboet2004/db-rilis/internal/infra/sheets"
	"github.com/iboet2004/db-rilis/internal/observability/logging"
	"github.com/iboet2004/db-rilis/internal/observability/tracing"
	dashUC "github.com/iboet2004/db-rilis/internal/usecase/dashboard"
)

func main() {
	// .env はローカル開発用。無ければ環境変数だけで動く
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	datasets, err := config.LoadDatasets(cfg.SchemaPath)
	if err != nil {
		logger.Error("failed to load dataset schema", slog.Any("error", err))
		os.Exit(1)
	}

	repo := sheets.NewRepository(sheets.Config{
		SheetID: cfg.SheetID,
		BaseURL: cfg.BaseURL,
		Rate:    cfg.FetchRate,
		Burst:   cfg.FetchBurst,
		Client:  &http.Client{Timeout: cfg.FetchTimeout},
	},
		sheets.DatasetSpec{Sheet: datasets.PressReleases.Sheet, Schema: datasets.PressReleases.Schema},
		sheets.DatasetSpec{Sheet: datasets.News.Sheet, Schema: datasets.News.Schema},
	)

	version := getVersion()
	handler := setupServer(logger, repo, version)

	runServer(logger, cfg.Addr, handler, version)
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

// setupServer wires routes and the middleware chain.
func setupServer(logger *slog.Logger, repo *sheets.Repository, version string) http.Handler {
	svc := dashUC.Service{Repo: repo}

	mux := http.NewServeMux()

	// ヘルスチェックとメトリクス（公開）
	mux.Handle("GET /health", &hhttp.HealthHandler{Upstream: repo, Breaker: repo, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Upstream: repo})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	hdash.Register(mux, svc)

	// レート制限: ダッシュボードは1分間に120リクエストまで
	rateLimiter := hhttp.NewRateLimiter(120, time.Minute)

	// Middleware order: Request ID → Tracing → Rate Limit → Recover →
	// Logging → Body Limit → Metrics
	var chain http.Handler = mux
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = rateLimiter.Limit(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, addr string, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
