package models

type StageType string

const (
	StageLeague     StageType = "LEAGUE"
	StageRoundRobin StageType = "ROUND_ROBIN"
	StageGroup      StageType = "GROUP"
	StageKnockout   StageType = "KNOCKOUT"
)

// Stage is one unit of a composed tournament structure. Round-robin and group
// stages fill Matches; knockout stages fill Bracket.
type Stage struct {
	Type              StageType     `json:"type"`
	Order             int           `json:"order"`
	Players           []PlayerID    `json:"players"`
	Matches           []Pairing     `json:"matches,omitempty"`
	Bracket           []BracketSlot `json:"bracket,omitempty"`
	Groups            []Group       `json:"groups,omitempty"`
	AdvancingPerGroup int           `json:"advancing_per_group,omitempty"`
	Seeding           SeedingPolicy `json:"seeding,omitempty"`
}

// TournamentDefinition is a tournament as described by an input file: who
// plays, in which format, and any results recorded so far.
type TournamentDefinition struct {
	Name    string           `json:"name" yaml:"name"`
	Format  TournamentFormat `json:"format" yaml:"format"`
	Players []PlayerID       `json:"players" yaml:"players"`
	Config  StructureConfig  `json:"config" yaml:"config"`
	Scoring *ScoringRules    `json:"scoring,omitempty" yaml:"scoring,omitempty"`
	Results []CompletedMatch `json:"results,omitempty" yaml:"results,omitempty"`
}
