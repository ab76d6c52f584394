package standings

import (
	"sort"

	"github.com/Dosada05/tournament-scheduler/models"
)

// ComputeStandings folds played matches into one row per roster player and
// returns the rows ranked. Unplayed matches and matches involving a player
// outside the roster are skipped. Repeated roster ids collapse into one row.
func ComputeStandings(matches []models.CompletedMatch, roster []models.PlayerID, rules models.ScoringRules) []models.Standing {
	index := make(map[models.PlayerID]int, len(roster))
	rows := make([]models.Standing, 0, len(roster))
	for _, p := range roster {
		if _, ok := index[p]; ok {
			continue
		}
		index[p] = len(rows)
		rows = append(rows, models.Standing{Player: p})
	}

	for _, match := range matches {
		if !match.Played() {
			continue
		}
		i1, ok1 := index[match.Player1]
		i2, ok2 := index[match.Player2]
		if !ok1 || !ok2 || i1 == i2 {
			continue
		}
		applyMatch(&rows[i1], &rows[i2], match, rules)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return ranksAhead(rows[i], rows[j])
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// ComputeGroupStandings ranks each group separately. A match tagged with a
// different group is ignored for that group.
func ComputeGroupStandings(matches []models.CompletedMatch, groups []models.Group, rules models.ScoringRules) map[string][]models.Standing {
	byGroup := make(map[string][]models.Standing, len(groups))
	for _, group := range groups {
		groupMatches := make([]models.CompletedMatch, 0, len(matches))
		for _, m := range matches {
			if m.Group != "" && m.Group != group.Name {
				continue
			}
			groupMatches = append(groupMatches, m)
		}
		byGroup[group.Name] = ComputeStandings(groupMatches, group.Players, rules)
	}
	return byGroup
}

func applyMatch(p1, p2 *models.Standing, match models.CompletedMatch, rules models.ScoringRules) {
	p1.Matches++
	p2.Matches++

	switch *match.Winner {
	case match.Player1:
		recordWin(p1, p2, rules)
	case match.Player2:
		recordWin(p2, p1, rules)
	default:
		p1.Draws++
		p2.Draws++
		p1.Points += rules.PointsPerDraw
		p2.Points += rules.PointsPerDraw
	}

	for _, set := range match.Sets {
		switch {
		case set.Player1Score > set.Player2Score:
			p1.SetsWon++
			p2.SetsLost++
		case set.Player2Score > set.Player1Score:
			p2.SetsWon++
			p1.SetsLost++
		}
		p1.GamesWon += set.Player1Score
		p1.GamesLost += set.Player2Score
		p2.GamesWon += set.Player2Score
		p2.GamesLost += set.Player1Score
	}
}

func recordWin(winner, loser *models.Standing, rules models.ScoringRules) {
	winner.Wins++
	winner.Points += rules.PointsPerWin
	loser.Losses++
	loser.Points += rules.PointsPerLoss
}

// ranksAhead orders by points, wins, set difference, then game difference.
func ranksAhead(a, b models.Standing) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	if a.SetDifference() != b.SetDifference() {
		return a.SetDifference() > b.SetDifference()
	}
	return a.GameDifference() > b.GameDifference()
}
