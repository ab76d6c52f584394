package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/Dosada05/tournament-scheduler/brackets"
	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRules = models.ScoringRules{PointsPerWin: 3, PointsPerLoss: 0, PointsPerDraw: 1}

func newTestService(opts Options) StructureService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.Scoring == (models.ScoringRules{}) {
		opts.Scoring = testRules
	}
	if opts.DefaultSeeding == "" {
		opts.DefaultSeeding = models.SeedingRanking
	}
	return NewStructureService(logger, brackets.NewSeededShuffler(1), opts)
}

func result(p1, p2, winner models.PlayerID, group string) models.CompletedMatch {
	return models.CompletedMatch{Player1: p1, Player2: p2, Winner: &winner, Group: group}
}

func groupKnockoutDef(results ...models.CompletedMatch) *models.TournamentDefinition {
	return &models.TournamentDefinition{
		Name:    "cup",
		Format:  models.FormatGroupKnockout,
		Players: []models.PlayerID{"a1", "a2", "b1", "b2"},
		Config: models.StructureConfig{
			GroupCount:        2,
			AdvancingPerGroup: 1,
			Seeding:           models.SeedingCrossGroup,
		},
		Results: results,
	}
}

func TestCompose_NilDefinition(t *testing.T) {
	_, err := newTestService(Options{}).Compose(context.Background(), nil)
	assert.ErrorIs(t, err, ErrDefinitionRequired)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestCompose_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService(Options{}).Compose(ctx, groupKnockoutDef())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompose_InvalidDefinition(t *testing.T) {
	def := &models.TournamentDefinition{
		Name:    "tiny",
		Format:  models.FormatKnockout,
		Players: []models.PlayerID{"solo"},
	}

	_, err := newTestService(Options{}).Compose(context.Background(), def)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotEnoughPlayers)
	assert.Contains(t, err.Error(), `"tiny"`)
}

func TestCompose_DefaultSeeding(t *testing.T) {
	def := &models.TournamentDefinition{
		Name:    "open",
		Format:  models.FormatKnockout,
		Players: []models.PlayerID{"a", "b", "c"},
	}

	schedule, err := newTestService(Options{DefaultSeeding: models.SeedingCustom}).Compose(context.Background(), def)
	require.NoError(t, err)
	require.Len(t, schedule.Stages, 1)
	assert.Equal(t, models.SeedingCustom, schedule.Stages[0].Seeding)
	assert.Equal(t, models.SeedingPolicy(""), def.Config.Seeding, "definition must not be modified")
}

func TestCompose_LeagueStandings(t *testing.T) {
	def := &models.TournamentDefinition{
		Name:    "league",
		Format:  models.FormatLeague,
		Players: []models.PlayerID{"A", "B", "C"},
		Results: []models.CompletedMatch{
			result("A", "B", "B", ""),
			result("B", "C", "B", ""),
		},
	}

	schedule, err := newTestService(Options{}).Compose(context.Background(), def)
	require.NoError(t, err)
	assert.Equal(t, "league", schedule.Name)
	assert.Equal(t, models.FormatLeague, schedule.Format)
	require.Contains(t, schedule.Standings, OverallStandingsKey)

	table := schedule.Standings[OverallStandingsKey]
	require.Len(t, table, 3)
	assert.Equal(t, models.PlayerID("B"), table[0].Player)
	assert.Equal(t, 6, table[0].Points)
}

func TestCompose_DefinitionScoringOverridesDefault(t *testing.T) {
	def := &models.TournamentDefinition{
		Name:    "league",
		Format:  models.FormatRoundRobin,
		Players: []models.PlayerID{"A", "B"},
		Scoring: &models.ScoringRules{PointsPerWin: 2, PointsPerLoss: 1},
		Results: []models.CompletedMatch{result("A", "B", "A", "")},
	}

	schedule, err := newTestService(Options{}).Compose(context.Background(), def)
	require.NoError(t, err)

	table := schedule.Standings[OverallStandingsKey]
	assert.Equal(t, 2, table[0].Points)
	assert.Equal(t, 1, table[1].Points)
}

func TestCompose_GroupStageIncomplete(t *testing.T) {
	def := groupKnockoutDef(result("a1", "a2", "a1", "A"))

	schedule, err := newTestService(Options{}).Compose(context.Background(), def)
	require.NoError(t, err)
	require.Len(t, schedule.Stages, 2)

	assert.Len(t, schedule.Standings, 2)
	assert.Nil(t, schedule.Advancing)
	knockout := schedule.Stages[1]
	assert.Empty(t, knockout.Players)
	require.Len(t, knockout.Bracket, 1)
	assert.Nil(t, knockout.Bracket[0].Player1)
}

func TestCompose_GroupStageCompleteSeedsKnockout(t *testing.T) {
	def := groupKnockoutDef(
		result("a1", "a2", "a2", "A"),
		result("b2", "b1", "b1", "B"),
	)

	schedule, err := newTestService(Options{}).Compose(context.Background(), def)
	require.NoError(t, err)

	assert.Equal(t, []models.PlayerID{"a2", "b1"}, schedule.Advancing)
	assert.Equal(t, models.PlayerID("a2"), schedule.Standings["A"][0].Player)
	assert.Equal(t, models.PlayerID("b1"), schedule.Standings["B"][0].Player)

	knockout := schedule.Stages[1]
	assert.Equal(t, models.StageKnockout, knockout.Type)
	assert.Equal(t, 2, knockout.Order)
	assert.Equal(t, []models.PlayerID{"a2", "b1"}, knockout.Players)
	require.Len(t, knockout.Bracket, 1)
	final := knockout.Bracket[0]
	require.NotNil(t, final.Player1)
	require.NotNil(t, final.Player2)
	assert.Equal(t, models.PlayerID("a2"), *final.Player1)
	assert.Equal(t, models.PlayerID("b1"), *final.Player2)
	assert.Equal(t, models.WinsTournament(), final.ResultForWinner)
}

func TestCompose_ResolveByes(t *testing.T) {
	def := &models.TournamentDefinition{
		Name:    "byes",
		Format:  models.FormatKnockout,
		Players: []models.PlayerID{"a", "b", "c"},
		Config:  models.StructureConfig{Seeding: models.SeedingCustom},
	}

	schedule, err := newTestService(Options{ResolveByes: true}).Compose(context.Background(), def)
	require.NoError(t, err)

	bracket := schedule.Stages[0].Bracket
	require.Len(t, bracket, 3)
	require.NotNil(t, bracket[2].Player2)
	assert.Equal(t, models.PlayerID("c"), *bracket[2].Player2)
}

func TestComposeAll_PreservesOrder(t *testing.T) {
	defs := make([]*models.TournamentDefinition, 10)
	for i := range defs {
		defs[i] = &models.TournamentDefinition{
			Name:    fmt.Sprintf("t%d", i),
			Format:  models.FormatRoundRobin,
			Players: []models.PlayerID{"A", "B", "C", "D"},
		}
	}

	schedules, err := newTestService(Options{Workers: 3}).ComposeAll(context.Background(), defs)
	require.NoError(t, err)
	require.Len(t, schedules, len(defs))
	for i, s := range schedules {
		assert.Equal(t, fmt.Sprintf("t%d", i), s.Name)
		assert.Len(t, s.Stages[0].Matches, 6)
	}
}

func TestComposeAll_Empty(t *testing.T) {
	schedules, err := newTestService(Options{}).ComposeAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, schedules)
}

func TestComposeAll_FailsOnInvalidDefinition(t *testing.T) {
	defs := []*models.TournamentDefinition{
		{Name: "ok", Format: models.FormatLeague, Players: []models.PlayerID{"A", "B"}},
		{Name: "bad", Format: "SWISS", Players: []models.PlayerID{"A", "B"}},
	}

	schedules, err := newTestService(Options{Workers: 2}).ComposeAll(context.Background(), defs)
	require.Error(t, err)
	assert.Nil(t, schedules)
	assert.ErrorIs(t, err, models.ErrUnknownFormat)
}

func TestGroupStageComplete(t *testing.T) {
	fixtures := []models.Pairing{
		{Player1: "a", Player2: "b", Round: 1},
		{Player1: "c", Player2: "d", Round: 1},
	}
	winner := models.PlayerID("b")

	assert.False(t, groupStageComplete(fixtures, nil))
	assert.False(t, groupStageComplete(fixtures, []models.CompletedMatch{
		{Player1: "b", Player2: "a", Winner: &winner},
		{Player1: "c", Player2: "d"},
	}))
	assert.True(t, groupStageComplete(fixtures, []models.CompletedMatch{
		{Player1: "b", Player2: "a", Winner: &winner},
		{Player1: "d", Player2: "c", Winner: &winner},
	}))
	assert.True(t, groupStageComplete(nil, nil))
}
