package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestir-app/wardrobe-tracker/gen/ent"
	"github.com/gestir-app/wardrobe-tracker/internal/common"
	"github.com/gestir-app/wardrobe-tracker/internal/export"
	"github.com/gestir-app/wardrobe-tracker/internal/ingest"
	"github.com/gestir-app/wardrobe-tracker/internal/llm/gemini"
	"github.com/gestir-app/wardrobe-tracker/internal/pipeline"
	"github.com/gestir-app/wardrobe-tracker/internal/repository"
	"github.com/gestir-app/wardrobe-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, pool, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer repository.Close(client, pool, logger)

	if pool != nil {
		if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
			logger.Error("database ping failed", "error", err)
			os.Exit(1)
		}
	}

	extractor := gemini.NewClient(gemini.Config{
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		Timeout:   cfg.LLM.Timeout,
		AssetsDir: cfg.LLM.AssetsDir,
	}, logger)

	wardrobeRepo := repository.NewWardrobeRepository(client, logger)
	runRepo := repository.NewRunRepository(client, logger)
	fetcher := ingest.NewFetcher(cfg.Ingest.FetchTimeout)

	pipe := pipeline.New(extractor, fetcher, wardrobeRepo, pipeline.Config{
		MinConfidence: cfg.Ingest.MinConfidence,
	}, logger)

	exporter := export.NewService(wardrobeRepo, logger)
	svc := server.NewWardrobeService(pipe, wardrobeRepo, runRepo, exporter, extractor.Model(), logger)

	srv, lis, err := server.Serve(cfg.Server.GRPCAddr, svc, logger)
	if err != nil {
		logger.Error("failed to start grpc server", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		srv.GracefulStop()
	case err := <-errCh:
		if err != nil {
			logger.Error("grpc server stopped", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("server stopped")
}

// openDatabase picks the driver from the DSN: sqlite: DSNs get the embedded
// driver for local runs, everything else goes through the pgx pool.
func openDatabase(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if path, ok := strings.CutPrefix(cfg.Database.DSN, "sqlite:"); ok {
		client, err := repository.OpenLite(ctx, path, logger)
		return client, nil, err
	}
	return repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
}
