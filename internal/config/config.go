// Package config provides YAML-based match configuration loading for
// the crucible platform.
package config

import "github.com/crucible-tabletop/crucible/internal/ai/difficulty"

// MatchConfig describes one skirmish: the scenario, the round limit,
// the RNG seed and a side configuration per army.
type MatchConfig struct {
	Scenario string     `yaml:"scenario"`
	Rounds   int        `yaml:"rounds"`
	Seed     int64      `yaml:"seed"`
	Red      SideConfig `yaml:"red"`
	Blue     SideConfig `yaml:"blue"`
}

// SideConfig configures one army. Difficulty is a tier name; anything
// unrecognized parses to Normal, so a hand-edited config can never
// produce a broken AI.
type SideConfig struct {
	Name       string `yaml:"name"`
	Difficulty string `yaml:"difficulty"`
}

// Tier resolves the side's difficulty tier.
func (s SideConfig) Tier() difficulty.Tier {
	return difficulty.ParseTier(s.Difficulty)
}
