package models

import (
	"fmt"
	"strings"
)

type TournamentFormat string

const (
	FormatLeague        TournamentFormat = "LEAGUE"
	FormatRoundRobin    TournamentFormat = "ROUND_ROBIN"
	FormatKnockout      TournamentFormat = "KNOCKOUT"
	FormatGroupKnockout TournamentFormat = "GROUP_KNOCKOUT"
	FormatCustom        TournamentFormat = "CUSTOM"
)

func (f TournamentFormat) Validate() error {
	switch f {
	case FormatLeague, FormatRoundRobin, FormatKnockout, FormatGroupKnockout, FormatCustom:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// ParseTournamentFormat accepts the enumeration name in any letter case.
func ParseTournamentFormat(s string) (TournamentFormat, error) {
	f := TournamentFormat(strings.ToUpper(strings.TrimSpace(s)))
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// SeedingPolicy decides how entrants are placed into a knockout bracket.
type SeedingPolicy string

const (
	SeedingRandom     SeedingPolicy = "RANDOM"
	SeedingRanking    SeedingPolicy = "RANKING"
	SeedingCrossGroup SeedingPolicy = "CROSS_GROUP"
	SeedingCustom     SeedingPolicy = "CUSTOM"
)

func (p SeedingPolicy) Validate() error {
	switch p {
	case SeedingRandom, SeedingRanking, SeedingCrossGroup, SeedingCustom:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownSeedingPolicy, string(p))
}

func ParseSeedingPolicy(s string) (SeedingPolicy, error) {
	p := SeedingPolicy(strings.ToUpper(strings.TrimSpace(s)))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// StructureConfig carries the format-specific knobs for composing a tournament.
// GroupCount and AdvancingPerGroup are only read for GROUP_KNOCKOUT.
type StructureConfig struct {
	GroupCount        int           `json:"group_count,omitempty" yaml:"group_count,omitempty"`
	AdvancingPerGroup int           `json:"advancing_per_group,omitempty" yaml:"advancing_per_group,omitempty"`
	Seeding           SeedingPolicy `json:"seeding,omitempty" yaml:"seeding,omitempty"`
}
