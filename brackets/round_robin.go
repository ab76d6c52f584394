package brackets

import (
	"github.com/Dosada05/tournament-scheduler/models"
)

type RoundRobinGenerator struct {
	stageType models.StageType
}

func NewRoundRobinGenerator() StageGenerator {
	return &RoundRobinGenerator{stageType: models.StageRoundRobin}
}

// NewLeagueGenerator schedules exactly like a round robin but labels the stage as a league.
func NewLeagueGenerator() StageGenerator {
	return &RoundRobinGenerator{stageType: models.StageLeague}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

func (g *RoundRobinGenerator) GenerateStage(params GenerateStageParams) (*models.Stage, error) {
	matches, err := GenerateRoundRobin(params.Players, params.Group)
	if err != nil {
		return nil, err
	}
	return &models.Stage{
		Type:    g.stageType,
		Order:   params.Order,
		Players: clonePlayers(params.Players),
		Matches: matches,
	}, nil
}

// GenerateRoundRobin pairs every player with every other player exactly once
// using the circle method. Rounds start at 1. An odd field gets a bye slot
// whose pairings are dropped, so each player idles once. Fewer than two
// players is not an error and yields no matches.
func GenerateRoundRobin(players []models.PlayerID, group string) ([]models.Pairing, error) {
	if err := checkDuplicates(players); err != nil {
		return nil, err
	}
	if len(players) < 2 {
		return []models.Pairing{}, nil
	}

	circle := models.Entrants(players)
	if len(circle)%2 != 0 {
		circle = append(circle, models.Bye())
	}
	n := len(circle)

	matches := make([]models.Pairing, 0, len(players)*(len(players)-1)/2)
	for round := 1; round < n; round++ {
		for m := 0; m < n/2; m++ {
			p1, ok1 := circle[m].ID()
			p2, ok2 := circle[n-1-m].ID()
			if !ok1 || !ok2 {
				continue
			}
			matches = append(matches, models.Pairing{
				Player1: p1,
				Player2: p2,
				Round:   round,
				Group:   group,
			})
		}
		circle = rotateCircle(circle)
	}

	return matches, nil
}

// rotateCircle keeps the first entrant fixed and moves the last one into second place.
func rotateCircle(circle []models.Entrant) []models.Entrant {
	n := len(circle)
	rotated := make([]models.Entrant, 0, n)
	rotated = append(rotated, circle[0], circle[n-1])
	return append(rotated, circle[1:n-1]...)
}
