package doctrine

import "github.com/crucible-tabletop/crucible/internal/ai/difficulty"

// DefaultRules returns the stock stratagem set.
func DefaultRules() []*Rule {
	return []*Rule{
		{
			Name:         "counter-offensive",
			Priority:     900,
			Category:     "melee",
			Exclusive:    true,
			ConditionSrc: `Charged && WoundFraction() > 0.5 && CP() >= 2`,
			Effect:       EffectCounterOffensive,
			CPCost:       2,
		},
		{
			Name:         "fire-overwatch",
			Priority:     800,
			Category:     "reaction",
			Exclusive:    true,
			ConditionSrc: `Charged && HasRangedWeapons() && CP() >= 1`,
			Effect:       EffectFireOverwatch,
			CPCost:       1,
		},
		{
			Name:         "command-reroll",
			Priority:     700,
			Category:     "reroll",
			Exclusive:    true,
			ConditionSrc: `FailedRoll && EnemiesWithin(12) > 0 && CP() >= 1`,
			Effect:       EffectCommandReroll,
			CPCost:       1,
		},
		{
			Name:         "desperate-escape",
			Priority:     600,
			Category:     "melee",
			Exclusive:    true,
			ConditionSrc: `WoundFraction() < 0.35 && Outnumbered() && CP() >= 1`,
			Effect:       EffectDesperateEscape,
			CPCost:       1,
		},
	}
}

// ForPolicy filters the stock set down to what the tier's capability
// flags permit, then compiles it. A tier without stratagem access gets
// an empty (but valid) rule set.
func ForPolicy(p difficulty.Policy) ([]*Rule, error) {
	var kept []*Rule
	for _, r := range DefaultRules() {
		switch r.Effect {
		case EffectCounterOffensive:
			if !p.CounterOffensive {
				continue
			}
		case EffectFireOverwatch:
			if !p.Overwatch {
				continue
			}
		case EffectCommandReroll:
			if !p.CommandRerolls {
				continue
			}
		case EffectDesperateEscape:
			if !p.SurvivalAssessment {
				continue
			}
		}
		// Everything but overwatch and rerolls is a stratagem spend.
		if r.CPCost >= 2 && !p.Stratagems {
			continue
		}
		kept = append(kept, r)
	}
	return Compile(kept)
}
