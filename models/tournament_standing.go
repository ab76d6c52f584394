package models

// ScoringRules are the league points awarded per match outcome.
type ScoringRules struct {
	PointsPerWin  int `json:"points_per_win" yaml:"points_per_win"`
	PointsPerLoss int `json:"points_per_loss" yaml:"points_per_loss"`
	PointsPerDraw int `json:"points_per_draw" yaml:"points_per_draw"`
}

// Standing is a player's aggregated record within a stage or group.
type Standing struct {
	Player    PlayerID `json:"player"`
	Rank      int      `json:"rank"`
	Matches   int      `json:"matches"`
	Wins      int      `json:"wins"`
	Losses    int      `json:"losses"`
	Draws     int      `json:"draws"`
	Points    int      `json:"points"`
	SetsWon   int      `json:"sets_won"`
	SetsLost  int      `json:"sets_lost"`
	GamesWon  int      `json:"games_won"`
	GamesLost int      `json:"games_lost"`
}

func (s Standing) SetDifference() int {
	return s.SetsWon - s.SetsLost
}

func (s Standing) GameDifference() int {
	return s.GamesWon - s.GamesLost
}

// Group is a named partition of entrants.
type Group struct {
	Name    string     `json:"name"`
	Players []PlayerID `json:"players"`
}
