package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rickgao/btn-backfill/internal/api"
	"github.com/rickgao/btn-backfill/internal/backfill"
	"github.com/rickgao/btn-backfill/internal/collector"
	"github.com/rickgao/btn-backfill/internal/config"
	"github.com/rickgao/btn-backfill/internal/database"
	"github.com/rickgao/btn-backfill/internal/pacing"
	"github.com/rickgao/btn-backfill/internal/sink"
	"github.com/rickgao/btn-backfill/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/backfill.yaml", "path to config file")
	kind := flag.String("kind", "ticker", "pipeline to run: ticker or tweets")
	year := flag.Int("year", 0, "year to backfill")
	dayStart := flag.Int("day-start", 1, "first day of year to fetch (1-based)")
	dayEnd := flag.Int("day-end", 0, "last day of year to fetch (0 = end of year)")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *year == 0 {
		logger.Error("-year is required")
		os.Exit(1)
	}
	if *kind != "ticker" && *kind != "tweets" {
		logger.Error("-kind must be ticker or tweets", "kind", *kind)
		os.Exit(1)
	}

	runID := uuid.New()
	logger = logger.With("run_id", runID)

	logger.Info("starting backfill",
		"version", version.Version,
		"commit", version.Commit,
		"kind", *kind,
		"year", *year,
		"day_start", *dayStart,
		"day_end", *dayEnd,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *kind == "tweets" {
		if err := cfg.ValidateSearch(); err != nil {
			logger.Error("failed to validate config", "error", err)
			os.Exit(1)
		}
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to the document store
	logger.Info("connecting to store",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := sink.NewStore(db, runID, logger)
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Error("failed to ensure store schema", "error", err)
		os.Exit(1)
	}

	logger.Info("store connected")

	timeout := cfg.Candles.Timeout
	if *kind == "tweets" {
		timeout = cfg.Search.Timeout
	}
	client := api.NewClient(
		cfg.Candles.RestURL,
		cfg.Search.RestURL,
		cfg.Search.BearerToken,
		api.WithLogger(logger),
		api.WithProduct(cfg.Candles.Product),
		api.WithQuery(cfg.Search.Query),
		api.WithTimeout(timeout),
	)

	var file *sink.File
	switch *kind {
	case "ticker":
		file, err = sink.NewCandleFile(cfg.Output.Dir, *year)
	case "tweets":
		file, err = sink.NewTweetFile(cfg.Output.Dir, *year)
	}
	if err != nil {
		logger.Error("failed to create output file", "error", err)
		os.Exit(1)
	}
	defer file.Close()

	switch *kind {
	case "ticker":
		pipeline := backfill.NewCandles(client, file, store, pacing.NewBurst(logger), logger)
		err = pipeline.Run(ctx, *year, *dayStart, *dayEnd)
	case "tweets":
		pages := collector.New(client, pacing.New(logger), cfg.Search.PerWindow, logger)
		pipeline := backfill.NewTweets(pages, file, store, logger)
		err = pipeline.Run(ctx, *year, *dayStart, *dayEnd)
	}
	if err != nil {
		logger.Error("backfill failed", "error", err)
		os.Exit(1)
	}

	logger.Info("backfill complete", "file", file.Name())
}
