package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/utils"
)

// ComposeStructure builds the initial stages for a tournament. Stage orders
// start at 1 and increase. CUSTOM yields no stages.
func ComposeStructure(format models.TournamentFormat, players []models.PlayerID, cfg models.StructureConfig, rng Shuffler) ([]models.Stage, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	var generator StageGenerator
	switch format {
	case models.FormatLeague:
		generator = NewLeagueGenerator()
	case models.FormatRoundRobin:
		generator = NewRoundRobinGenerator()
	case models.FormatKnockout:
		generator = NewSingleEliminationGenerator(rng)
	case models.FormatGroupKnockout:
		return composeGroupKnockout(players, cfg, rng)
	case models.FormatCustom:
		return []models.Stage{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownFormat, string(format))
	}

	stage, err := generator.GenerateStage(GenerateStageParams{
		Order:   1,
		Players: players,
		Seeding: cfg.Seeding,
	})
	if err != nil {
		return nil, fmt.Errorf("%s generator: %w", generator.GetName(), err)
	}
	return []models.Stage{*stage}, nil
}

func composeGroupKnockout(players []models.PlayerID, cfg models.StructureConfig, rng Shuffler) ([]models.Stage, error) {
	if cfg.GroupCount < 1 {
		return nil, fmt.Errorf("%w: got %d", models.ErrInvalidGroupCount, cfg.GroupCount)
	}
	if cfg.AdvancingPerGroup < 1 {
		return nil, fmt.Errorf("%w: got %d", models.ErrInvalidAdvancingCount, cfg.AdvancingPerGroup)
	}
	if err := cfg.Seeding.Validate(); err != nil {
		return nil, err
	}
	if err := checkDuplicates(players); err != nil {
		return nil, err
	}

	groups := SplitGroups(players, cfg.GroupCount)
	matches := make([]models.Pairing, 0)
	for _, group := range groups {
		groupMatches, err := GenerateRoundRobin(group.Players, group.Name)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", group.Name, err)
		}
		matches = append(matches, groupMatches...)
	}

	knockout, err := NewSingleEliminationGenerator(rng).GenerateStage(GenerateStageParams{
		Order:           2,
		Seeding:         cfg.Seeding,
		ExpectedPlayers: cfg.GroupCount * cfg.AdvancingPerGroup,
	})
	if err != nil {
		return nil, fmt.Errorf("knockout stage: %w", err)
	}

	groupStage := models.Stage{
		Type:              models.StageGroup,
		Order:             1,
		Players:           clonePlayers(players),
		Matches:           matches,
		Groups:            groups,
		AdvancingPerGroup: cfg.AdvancingPerGroup,
	}
	return []models.Stage{groupStage, *knockout}, nil
}

// SplitGroups cuts players into groupCount contiguous groups of
// ceil(len/groupCount) named A, B, C, ... Trailing groups may be short or empty.
func SplitGroups(players []models.PlayerID, groupCount int) []models.Group {
	if groupCount < 1 {
		return []models.Group{}
	}
	size := (len(players) + groupCount - 1) / groupCount

	groups := make([]models.Group, groupCount)
	for i := range groups {
		start := min(i*size, len(players))
		end := min(start+size, len(players))
		groups[i] = models.Group{
			Name:    utils.GroupLabel(i),
			Players: clonePlayers(players[start:end]),
		}
	}
	return groups
}
