package models

// DrawWinner can be recorded as the winner of a match to mark a draw.
// Any recorded winner that is neither participant counts as a draw.
const DrawWinner PlayerID = "DRAW"

// Pairing is one round-robin fixture. Both players are always real.
type Pairing struct {
	Player1 PlayerID `json:"player1"`
	Player2 PlayerID `json:"player2"`
	Round   int      `json:"round"`
	Group   string   `json:"group,omitempty"`
}

type SetScore struct {
	Player1Score int `json:"player1_score" yaml:"player1_score"`
	Player2Score int `json:"player2_score" yaml:"player2_score"`
}

// CompletedMatch is a result fed back by the caller. A nil Winner means the
// match has not been played yet.
type CompletedMatch struct {
	Player1 PlayerID   `json:"player1" yaml:"player1"`
	Player2 PlayerID   `json:"player2" yaml:"player2"`
	Winner  *PlayerID  `json:"winner,omitempty" yaml:"winner,omitempty"`
	Sets    []SetScore `json:"sets,omitempty" yaml:"sets,omitempty"`
	Group   string     `json:"group,omitempty" yaml:"group,omitempty"`
}

func (m CompletedMatch) Played() bool {
	return m.Winner != nil
}

func (m CompletedMatch) IsDraw() bool {
	return m.Winner != nil && *m.Winner != m.Player1 && *m.Winner != m.Player2
}
