package config

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/utils"
	"github.com/joho/godotenv"
)

const maxWorkers = 64

// Config holds the scheduler settings.
type Config struct {
	LogLevel       slog.Level
	Seed           int64
	Workers        int
	DefaultSeeding models.SeedingPolicy
	Scoring        models.ScoringRules
	ResolveByes    bool
	DefinitionsDir string
}

// Load reads the configuration from environment variables.
// A .env file is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var level slog.Level
	if err := level.UnmarshalText([]byte(utils.GetEnvOrDefault("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
	}

	seed, err := strconv.ParseInt(utils.GetEnvOrDefault("SCHEDULER_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULER_SEED environment variable: %w", err)
	}

	workers, err := intEnv("SCHEDULER_WORKERS", 4)
	if err != nil {
		return nil, err
	}
	if workers < 1 || workers > maxWorkers {
		return nil, fmt.Errorf("SCHEDULER_WORKERS must be between 1 and %d, got %d", maxWorkers, workers)
	}

	seeding, err := models.ParseSeedingPolicy(utils.GetEnvOrDefault("DEFAULT_SEEDING", string(models.SeedingRandom)))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_SEEDING environment variable: %w", err)
	}

	var scoring models.ScoringRules
	if scoring.PointsPerWin, err = intEnv("POINTS_PER_WIN", 3); err != nil {
		return nil, err
	}
	if scoring.PointsPerDraw, err = intEnv("POINTS_PER_DRAW", 1); err != nil {
		return nil, err
	}
	if scoring.PointsPerLoss, err = intEnv("POINTS_PER_LOSS", 0); err != nil {
		return nil, err
	}

	resolveByes, err := strconv.ParseBool(utils.GetEnvOrDefault("SCHEDULER_RESOLVE_BYES", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULER_RESOLVE_BYES environment variable: %w", err)
	}

	cfg := &Config{
		LogLevel:       level,
		Seed:           seed,
		Workers:        workers,
		DefaultSeeding: seeding,
		Scoring:        scoring,
		ResolveByes:    resolveByes,
		DefinitionsDir: utils.GetEnvOrDefault("DEFINITIONS_DIR", "."),
	}

	return cfg, nil
}

func intEnv(key string, defaultValue int) (int, error) {
	raw := utils.GetEnvOrDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}
