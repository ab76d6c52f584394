package brackets

import (
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-scheduler/models"
)

var (
	ErrSlotNotFound    = errors.New("bracket slot not found")
	ErrWinnerNotInSlot = errors.New("winner is not a player of the bracket slot")
	ErrSlotOccupied    = errors.New("bracket position is already taken by another player")
)

// AdvanceWinner moves winner of slot `from` into the slot its ResultForWinner
// references: even match numbers feed Player1, odd ones Player2. A final slot
// (WINS_TOURNAMENT) leaves the bracket unchanged. slots is modified in place.
func AdvanceWinner(slots []models.BracketSlot, from models.SlotRef, winner models.PlayerID) error {
	idx := findSlot(slots, from)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, from)
	}
	source := slots[idx]
	if !source.HasPlayer(winner) {
		return fmt.Errorf("%w: %q in %s", ErrWinnerNotInSlot, string(winner), from)
	}
	if source.ResultForWinner.Kind != models.AdvanceToSlot {
		return nil
	}

	next := source.ResultForWinner.Next
	target := findSlot(slots, next)
	if target < 0 {
		return fmt.Errorf("%w: %s (linked from %s)", ErrSlotNotFound, next, from)
	}

	position := &slots[target].Player1
	if from.Match%2 == 1 {
		position = &slots[target].Player2
	}
	if *position != nil && **position != winner {
		return fmt.Errorf("%w: %s", ErrSlotOccupied, next)
	}
	id := winner
	*position = &id
	return nil
}

// AdvanceByes returns a copy of slots with every first-round bye player
// already placed in its second-round slot.
func AdvanceByes(slots []models.BracketSlot) ([]models.BracketSlot, error) {
	out := make([]models.BracketSlot, len(slots))
	copy(out, slots)

	for _, slot := range out {
		if slot.Round != 1 || !slot.Bye || slot.Player1 == nil {
			continue
		}
		if err := AdvanceWinner(out, slot.Ref(), *slot.Player1); err != nil {
			return nil, fmt.Errorf("failed to advance bye in %s: %w", slot.Ref(), err)
		}
	}
	return out, nil
}

func findSlot(slots []models.BracketSlot, ref models.SlotRef) int {
	for i := range slots {
		if slots[i].Round == ref.Round && slots[i].MatchNumber == ref.Match {
			return i
		}
	}
	return -1
}
