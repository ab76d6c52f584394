package models

// PlayerID references a player record owned by an external store.
// The engine only compares it for equality.
type PlayerID string

// Entrant is one position in a bracket or round-robin circle: either a real
// player or a bye placeholder.
type Entrant struct {
	id  PlayerID
	bye bool
}

func Player(id PlayerID) Entrant {
	return Entrant{id: id}
}

func Bye() Entrant {
	return Entrant{bye: true}
}

func (e Entrant) IsBye() bool {
	return e.bye
}

// ID returns the player and true, or false for a bye.
func (e Entrant) ID() (PlayerID, bool) {
	if e.bye {
		return "", false
	}
	return e.id, true
}

// Ref returns a pointer to a copy of the player id, nil for a bye.
func (e Entrant) Ref() *PlayerID {
	if e.bye {
		return nil
	}
	id := e.id
	return &id
}

func (e Entrant) String() string {
	if e.bye {
		return "BYE"
	}
	return string(e.id)
}

// Entrants wraps every player id as a real entrant.
func Entrants(players []PlayerID) []Entrant {
	out := make([]Entrant, len(players))
	for i, p := range players {
		out[i] = Player(p)
	}
	return out
}
