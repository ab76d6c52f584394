package brackets

import (
	"fmt"
	"math/rand/v2"

	"github.com/Dosada05/tournament-scheduler/models"
)

type GenerateStageParams struct {
	Order   int
	Players []models.PlayerID
	Group   string
	Seeding models.SeedingPolicy

	// ExpectedPlayers sizes a knockout skeleton when Players is still empty.
	ExpectedPlayers int
}

// StageGenerator builds one stage descriptor from a list of entrants.
type StageGenerator interface {
	GenerateStage(params GenerateStageParams) (*models.Stage, error)

	GetName() string
}

// Shuffler is the random source used by RANDOM seeding. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// DefaultShuffler draws from the process-wide generator.
var DefaultShuffler Shuffler = globalShuffler{}

// NewSeededShuffler returns a deterministic source for a non-zero seed and
// DefaultShuffler otherwise. The returned source is not safe for concurrent use.
func NewSeededShuffler(seed int64) Shuffler {
	if seed == 0 {
		return DefaultShuffler
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

func checkDuplicates(players []models.PlayerID) error {
	seen := make(map[models.PlayerID]struct{}, len(players))
	for _, p := range players {
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%w: %q", models.ErrDuplicatePlayer, string(p))
		}
		seen[p] = struct{}{}
	}
	return nil
}

func clonePlayers(players []models.PlayerID) []models.PlayerID {
	out := make([]models.PlayerID, len(players))
	copy(out, players)
	return out
}
