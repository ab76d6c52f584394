package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dosada05/tournament-scheduler/brackets"
	"github.com/Dosada05/tournament-scheduler/config"
	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/services"
	"github.com/Dosada05/tournament-scheduler/storage"
)

const (
	exitFailure      = 1
	exitInvalidInput = 2
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(exitFailure)
	}
	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	logger.Debug("configuration loaded",
		slog.Int("workers", cfg.Workers),
		slog.String("default_seeding", string(cfg.DefaultSeeding)),
		slog.Bool("resolve_byes", cfg.ResolveByes))

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <definition file>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	compact := flag.Bool("compact", false, "print JSON without indentation")
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(exitInvalidInput)
	}

	os.Exit(run(logger, cfg, flag.Args(), *compact))
}

func run(logger *slog.Logger, cfg *config.Config, keys []string, compact bool) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := storage.NewFileSource(cfg.DefinitionsDir)
	defs := make([]*models.TournamentDefinition, 0, len(keys))
	for _, key := range keys {
		def, err := source.Load(ctx, key)
		if err != nil {
			logger.Error("failed to load tournament definition", slog.String("key", key), slog.Any("error", err))
			return exitCode(err)
		}
		defs = append(defs, def)
	}

	service := services.NewStructureService(logger, brackets.NewSeededShuffler(cfg.Seed), services.Options{
		DefaultSeeding: cfg.DefaultSeeding,
		Scoring:        cfg.Scoring,
		Workers:        cfg.Workers,
		ResolveByes:    cfg.ResolveByes,
	})

	schedules, err := service.ComposeAll(ctx, defs)
	if err != nil {
		logger.Error("failed to compose tournaments", slog.Any("error", err))
		return exitCode(err)
	}

	enc := json.NewEncoder(os.Stdout)
	if !compact {
		enc.SetIndent("", "\t")
	}
	if err := enc.Encode(schedules); err != nil {
		logger.Error("failed to write output", slog.Any("error", err))
		return exitFailure
	}
	return 0
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, storage.ErrUnsupportedDefinition),
		errors.Is(err, storage.ErrDefinitionNotFound):
		return exitInvalidInput
	default:
		return exitFailure
	}
}
