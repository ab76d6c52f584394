package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidSlotRef = errors.New("invalid bracket slot reference")

// SlotRef addresses a bracket slot by 1-based round and 0-based match index.
type SlotRef struct {
	Round int
	Match int
}

func (r SlotRef) String() string {
	return fmt.Sprintf("R%dM%d", r.Round, r.Match)
}

// ParseSlotRef parses the "R{round}M{match}" form.
func ParseSlotRef(s string) (SlotRef, error) {
	rest, ok := strings.CutPrefix(s, "R")
	if !ok {
		return SlotRef{}, fmt.Errorf("%w: %q", ErrInvalidSlotRef, s)
	}
	roundStr, matchStr, ok := strings.Cut(rest, "M")
	if !ok {
		return SlotRef{}, fmt.Errorf("%w: %q", ErrInvalidSlotRef, s)
	}
	round, err := strconv.Atoi(roundStr)
	if err != nil || round < 1 {
		return SlotRef{}, fmt.Errorf("%w: %q", ErrInvalidSlotRef, s)
	}
	match, err := strconv.Atoi(matchStr)
	if err != nil || match < 0 {
		return SlotRef{}, fmt.Errorf("%w: %q", ErrInvalidSlotRef, s)
	}
	return SlotRef{Round: round, Match: match}, nil
}

type AdvanceKind int

const (
	AdvanceToSlot AdvanceKind = iota
	AdvanceWinsTournament
	AdvanceExit
)

const (
	winsTournamentText = "WINS_TOURNAMENT"
	exitText           = "EXIT"
)

// Advance is where a slot's winner or loser goes next.
type Advance struct {
	Kind AdvanceKind
	Next SlotRef
}

func ToSlot(ref SlotRef) Advance {
	return Advance{Kind: AdvanceToSlot, Next: ref}
}

func WinsTournament() Advance {
	return Advance{Kind: AdvanceWinsTournament}
}

func Exit() Advance {
	return Advance{Kind: AdvanceExit}
}

func (a Advance) String() string {
	switch a.Kind {
	case AdvanceWinsTournament:
		return winsTournamentText
	case AdvanceExit:
		return exitText
	default:
		return a.Next.String()
	}
}

func (a Advance) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Advance) UnmarshalText(text []byte) error {
	switch s := string(text); s {
	case winsTournamentText:
		*a = WinsTournament()
	case exitText:
		*a = Exit()
	default:
		ref, err := ParseSlotRef(s)
		if err != nil {
			return err
		}
		*a = ToSlot(ref)
	}
	return nil
}

// BracketSlot is one knockout match. Players stay nil until known.
type BracketSlot struct {
	Player1         *PlayerID `json:"player1,omitempty"`
	Player2         *PlayerID `json:"player2,omitempty"`
	Round           int       `json:"round"`
	MatchNumber     int       `json:"match_number"`
	ResultForWinner Advance   `json:"result_for_winner"`
	ResultForLoser  Advance   `json:"result_for_loser"`
	Bye             bool      `json:"bye,omitempty"`
}

func (s BracketSlot) Ref() SlotRef {
	return SlotRef{Round: s.Round, Match: s.MatchNumber}
}

// HasPlayer reports whether id occupies either side of the slot.
func (s BracketSlot) HasPlayer(id PlayerID) bool {
	return (s.Player1 != nil && *s.Player1 == id) || (s.Player2 != nil && *s.Player2 == id)
}
