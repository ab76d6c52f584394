package brackets

import (
	"github.com/Dosada05/tournament-scheduler/models"
)

// seedEntrants returns a reordered copy of a power-of-two entrant list.
func seedEntrants(entrants []models.Entrant, policy models.SeedingPolicy, rng Shuffler) []models.Entrant {
	seeded := make([]models.Entrant, len(entrants))
	copy(seeded, entrants)

	switch policy {
	case models.SeedingRandom:
		if rng == nil {
			rng = DefaultShuffler
		}
		rng.Shuffle(len(seeded), func(i, j int) {
			seeded[i], seeded[j] = seeded[j], seeded[i]
		})
	case models.SeedingRanking:
		// Entrants are best-to-worst, so the padding byes are the lowest seeds
		// and land against the top seeds.
		for pos, seed := range StandardBracketSeeds(len(entrants)) {
			seeded[pos] = entrants[seed-1]
		}
	case models.SeedingCrossGroup, models.SeedingCustom:
		// Caller already supplied bracket order.
	}

	return seeded
}

// StandardBracketSeeds returns the 1-based seed for each position of a
// single-elimination bracket of bracketSize (a power of two). Seed 1 sits in
// the top half and seed 2 in the bottom half, so they can only meet in the final.
func StandardBracketSeeds(bracketSize int) []int {
	seeds := make([]int, bracketSize)
	seeds[0] = 1
	for size := 2; size <= bracketSize; size *= 2 {
		temp := make([]int, size)
		for i := 0; i < size/2; i++ {
			temp[i*2] = seeds[i]
			temp[i*2+1] = size + 1 - seeds[i]
		}
		copy(seeds, temp)
	}
	return seeds
}
