package standings

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Dosada05/tournament-scheduler/models"
)

// SelectAdvancing picks the top advancingPerGroup players of every group, in
// the order the next knockout bracket should receive them. Each group's rows
// must already be ranked. Groups are visited in lexicographic order.
func SelectAdvancing(byGroup map[string][]models.Standing, advancingPerGroup int, policy models.SeedingPolicy) ([]models.PlayerID, error) {
	if advancingPerGroup <= 0 {
		return nil, fmt.Errorf("%w: got %d", models.ErrInvalidAdvancingCount, advancingPerGroup)
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	names := slices.Sorted(maps.Keys(byGroup))
	if policy == models.SeedingCrossGroup {
		return crossGroupOrder(byGroup, names, advancingPerGroup), nil
	}

	advancing := make([]models.PlayerID, 0, len(names)*advancingPerGroup)
	for _, name := range names {
		rows := byGroup[name]
		for rank := 0; rank < advancingPerGroup && rank < len(rows); rank++ {
			advancing = append(advancing, rows[rank].Player)
		}
	}
	return advancing, nil
}

// GroupPairs pairs sorted group names two at a time. With an odd count the
// last group is paired with the first one.
func GroupPairs(names []string) [][2]string {
	pairs := make([][2]string, 0, (len(names)+1)/2)
	for i := 0; i+1 < len(names); i += 2 {
		pairs = append(pairs, [2]string{names[i], names[i+1]})
	}
	if len(names)%2 == 1 {
		pairs = append(pairs, [2]string{names[len(names)-1], names[0]})
	}
	return pairs
}

// crossGroupOrder interleaves paired groups rank by rank: even ranks emit
// (first, second), odd ranks (second, first). A player reached twice through
// the odd-count wraparound keeps only the first position.
func crossGroupOrder(byGroup map[string][]models.Standing, names []string, advancingPerGroup int) []models.PlayerID {
	pairs := GroupPairs(names)
	seen := make(map[models.PlayerID]struct{})
	advancing := make([]models.PlayerID, 0, len(names)*advancingPerGroup)

	emit := func(group string, rank int) {
		rows := byGroup[group]
		if rank >= len(rows) {
			return
		}
		p := rows[rank].Player
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		advancing = append(advancing, p)
	}

	for rank := 0; rank < advancingPerGroup; rank++ {
		for _, pair := range pairs {
			first, second := pair[0], pair[1]
			if rank%2 == 1 {
				first, second = second, first
			}
			emit(first, rank)
			emit(second, rank)
		}
	}
	return advancing
}
