package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Dosada05/tournament-scheduler/brackets"
	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/standings"
	"golang.org/x/sync/errgroup"
)

// OverallStandingsKey keys the standings of a single league or round-robin stage.
const OverallStandingsKey = "overall"

type Schedule struct {
	Name      string                       `json:"name"`
	Format    models.TournamentFormat      `json:"format"`
	Stages    []models.Stage               `json:"stages"`
	Standings map[string][]models.Standing `json:"standings,omitempty"`
	Advancing []models.PlayerID            `json:"advancing,omitempty"`
}

type Options struct {
	DefaultSeeding models.SeedingPolicy
	Scoring        models.ScoringRules
	Workers        int
	ResolveByes    bool
}

type StructureService interface {
	Compose(ctx context.Context, def *models.TournamentDefinition) (*Schedule, error)
	ComposeAll(ctx context.Context, defs []*models.TournamentDefinition) ([]*Schedule, error)
}

type structureService struct {
	logger *slog.Logger
	rng    brackets.Shuffler
	opts   Options
}

func NewStructureService(logger *slog.Logger, rng brackets.Shuffler, opts Options) StructureService {
	if rng == nil {
		rng = brackets.DefaultShuffler
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &structureService{
		logger: logger,
		rng:    &lockedShuffler{rng: rng},
		opts:   opts,
	}
}

func (s *structureService) Compose(ctx context.Context, def *models.TournamentDefinition) (*Schedule, error) {
	if def == nil {
		return nil, ErrDefinitionRequired
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := def.Config
	if cfg.Seeding == "" {
		cfg.Seeding = s.opts.DefaultSeeding
	}

	s.logger.Info("composing tournament structure",
		slog.String("tournament", def.Name),
		slog.String("format", string(def.Format)),
		slog.Int("players", len(def.Players)),
		slog.String("seeding", string(cfg.Seeding)))

	stages, err := brackets.ComposeStructure(def.Format, def.Players, cfg, s.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to compose structure for tournament %q: %w", def.Name, err)
	}

	schedule := &Schedule{
		Name:   def.Name,
		Format: def.Format,
		Stages: stages,
	}

	if len(def.Results) > 0 {
		rules := s.scoringFor(def)
		switch def.Format {
		case models.FormatLeague, models.FormatRoundRobin:
			schedule.Standings = map[string][]models.Standing{
				OverallStandingsKey: standings.ComputeStandings(def.Results, def.Players, rules),
			}
		case models.FormatGroupKnockout:
			if err := s.advanceFromGroups(def.Name, schedule, def.Results, rules); err != nil {
				return nil, err
			}
		default:
			s.logger.Debug("results ignored for format",
				slog.String("tournament", def.Name),
				slog.String("format", string(def.Format)))
		}
	}

	if s.opts.ResolveByes {
		if err := resolveByes(schedule.Stages); err != nil {
			return nil, fmt.Errorf("failed to resolve byes for tournament %q: %w", def.Name, err)
		}
	}

	s.logger.Info("tournament structure composed",
		slog.String("tournament", def.Name),
		slog.Int("stages", len(schedule.Stages)),
		slog.Int("advancing", len(schedule.Advancing)))
	return schedule, nil
}

// ComposeAll composes every definition concurrently and returns the schedules
// in input order. The first failure cancels the remaining work.
func (s *structureService) ComposeAll(ctx context.Context, defs []*models.TournamentDefinition) ([]*Schedule, error) {
	schedules := make([]*Schedule, len(defs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, def := range defs {
		g.Go(func() error {
			schedule, err := s.Compose(gCtx, def)
			if err != nil {
				return err
			}
			schedules[i] = schedule
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("batch composition failed", slog.Int("definitions", len(defs)), slog.Any("error", err))
		return nil, err
	}
	return schedules, nil
}

// advanceFromGroups ranks the groups and, once every group fixture has a
// result, seeds the knockout stage with the advancing players.
func (s *structureService) advanceFromGroups(name string, schedule *Schedule, results []models.CompletedMatch, rules models.ScoringRules) error {
	if len(schedule.Stages) < 2 {
		return fmt.Errorf("tournament %q: %w", name, ErrNoKnockoutStage)
	}
	groupStage := schedule.Stages[0]
	knockout := schedule.Stages[1]

	schedule.Standings = standings.ComputeGroupStandings(results, groupStage.Groups, rules)

	if !groupStageComplete(groupStage.Matches, results) {
		s.logger.Info("group stage not finished, knockout left unresolved",
			slog.String("tournament", name),
			slog.Int("fixtures", len(groupStage.Matches)))
		return nil
	}

	if knockout.Seeding == models.SeedingCrossGroup && len(groupStage.Groups)%2 == 1 {
		s.logger.Warn("cross-group seeding with an odd number of groups pairs the last group with the first",
			slog.String("tournament", name),
			slog.Int("groups", len(groupStage.Groups)))
	}

	advancing, err := standings.SelectAdvancing(schedule.Standings, groupStage.AdvancingPerGroup, knockout.Seeding)
	if err != nil {
		return fmt.Errorf("failed to select advancing players for tournament %q: %w", name, err)
	}

	stage, err := brackets.NewSingleEliminationGenerator(s.rng).GenerateStage(brackets.GenerateStageParams{
		Order:   knockout.Order,
		Players: advancing,
		Seeding: knockout.Seeding,
	})
	if err != nil {
		return fmt.Errorf("failed to seed knockout stage for tournament %q: %w", name, err)
	}

	schedule.Stages[1] = *stage
	schedule.Advancing = advancing
	return nil
}

func (s *structureService) scoringFor(def *models.TournamentDefinition) models.ScoringRules {
	if def.Scoring != nil {
		return *def.Scoring
	}
	return s.opts.Scoring
}

// groupStageComplete reports whether every fixture has a played result
// between the same two players, in either order.
func groupStageComplete(fixtures []models.Pairing, results []models.CompletedMatch) bool {
	type pairKey struct{ a, b models.PlayerID }
	key := func(p1, p2 models.PlayerID) pairKey {
		if p2 < p1 {
			p1, p2 = p2, p1
		}
		return pairKey{p1, p2}
	}

	played := make(map[pairKey]bool, len(results))
	for _, r := range results {
		if r.Played() {
			played[key(r.Player1, r.Player2)] = true
		}
	}
	for _, f := range fixtures {
		if !played[key(f.Player1, f.Player2)] {
			return false
		}
	}
	return true
}

func resolveByes(stages []models.Stage) error {
	for i := range stages {
		if stages[i].Type != models.StageKnockout || len(stages[i].Players) == 0 {
			continue
		}
		resolved, err := brackets.AdvanceByes(stages[i].Bracket)
		if err != nil {
			return err
		}
		stages[i].Bracket = resolved
	}
	return nil
}

// lockedShuffler lets concurrent compositions share one seeded source.
type lockedShuffler struct {
	mu  sync.Mutex
	rng brackets.Shuffler
}

func (l *lockedShuffler) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rng.Shuffle(n, swap)
}
