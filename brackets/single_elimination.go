// tournament-scheduler/brackets/single_elimination.go
package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-scheduler/models"
)

type SingleEliminationGenerator struct {
	rng Shuffler
}

// NewSingleEliminationGenerator uses rng for RANDOM seeding; nil falls back to DefaultShuffler.
func NewSingleEliminationGenerator(rng Shuffler) StageGenerator {
	if rng == nil {
		rng = DefaultShuffler
	}
	return &SingleEliminationGenerator{rng: rng}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

// GenerateStage seeds params.Players into a bracket. With no players yet it
// emits an empty skeleton sized for params.ExpectedPlayers.
func (g *SingleEliminationGenerator) GenerateStage(params GenerateStageParams) (*models.Stage, error) {
	var (
		bracket []models.BracketSlot
		err     error
	)
	if len(params.Players) == 0 && params.ExpectedPlayers > 0 {
		if err = params.Seeding.Validate(); err != nil {
			return nil, err
		}
		bracket, err = UnresolvedBracket(params.ExpectedPlayers)
	} else {
		bracket, err = GenerateKnockoutBracket(params.Players, params.Seeding, g.rng)
	}
	if err != nil {
		return nil, err
	}

	return &models.Stage{
		Type:    models.StageKnockout,
		Order:   params.Order,
		Players: clonePlayers(params.Players),
		Bracket: bracket,
		Seeding: params.Seeding,
	}, nil
}

// GenerateKnockoutBracket pads players to a power of two with byes, seeds
// them, and returns every slot of every round ordered by round then match.
// A first-round slot facing a bye holds the real player as Player1 and links
// forward exactly like a contested slot. Later rounds are left empty.
func GenerateKnockoutBracket(players []models.PlayerID, policy models.SeedingPolicy, rng Shuffler) ([]models.BracketSlot, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if len(players) < 2 {
		return nil, fmt.Errorf("%w: knockout bracket got %d", models.ErrNotEnoughPlayers, len(players))
	}
	if err := checkDuplicates(players); err != nil {
		return nil, err
	}

	entrants := padToPowerOfTwo(models.Entrants(players))
	seeded := seedEntrants(entrants, policy, rng)

	slots := bracketSkeleton(len(seeded))
	for i := 0; i < len(seeded)/2; i++ {
		top, bottom := seeded[2*i], seeded[2*i+1]
		if top.IsBye() && !bottom.IsBye() {
			top, bottom = bottom, top
		}
		// Round 1 occupies the first len/2 slots of the skeleton.
		slots[i].Player1 = top.Ref()
		slots[i].Player2 = bottom.Ref()
		slots[i].Bye = top.IsBye() || bottom.IsBye()
	}

	return slots, nil
}

// UnresolvedBracket returns the empty skeleton for a bracket that will hold
// expectedPlayers once an earlier stage has finished.
func UnresolvedBracket(expectedPlayers int) ([]models.BracketSlot, error) {
	if expectedPlayers < 2 {
		return nil, fmt.Errorf("%w: knockout bracket sized for %d", models.ErrNotEnoughPlayers, expectedPlayers)
	}
	return bracketSkeleton(nextPowerOf2(expectedPlayers)), nil
}

func bracketSkeleton(size int) []models.BracketSlot {
	numRounds := log2Int(size)
	slots := make([]models.BracketSlot, 0, size-1)
	for r := 1; r <= numRounds; r++ {
		matchesInRound := size >> r
		for i := 0; i < matchesInRound; i++ {
			slots = append(slots, models.BracketSlot{
				Round:           r,
				MatchNumber:     i,
				ResultForWinner: winnerAdvance(r, i, numRounds),
				ResultForLoser:  models.Exit(),
			})
		}
	}
	return slots
}

func winnerAdvance(round, match, numRounds int) models.Advance {
	if round == numRounds {
		return models.WinsTournament()
	}
	return models.ToSlot(models.SlotRef{Round: round + 1, Match: match / 2})
}

func padToPowerOfTwo(entrants []models.Entrant) []models.Entrant {
	size := nextPowerOf2(len(entrants))
	for len(entrants) < size {
		entrants = append(entrants, models.Bye())
	}
	return entrants
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

func log2Int(n int) int {
	r := 0
	for n > 1 {
		n /= 2
		r++
	}
	return r
}
