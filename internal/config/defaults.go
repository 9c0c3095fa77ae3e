package config

import (
	_ "embed"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// Default returns the hardcoded fallback match configuration.
func Default() MatchConfig {
	return MatchConfig{
		Scenario: "patrol",
		Rounds:   5,
		Seed:     0,
		Red: SideConfig{
			Name:       "Strike Force Aurora",
			Difficulty: "normal",
		},
		Blue: SideConfig{
			Name:       "Waaagh Gutsnagga",
			Difficulty: "normal",
		},
	}
}
