package ai

import "github.com/crucible-tabletop/crucible/internal/game"

// ChargeDecision commits a unit to a charge against a target.
type ChargeDecision struct {
	Unit   *game.Unit
	Target *game.Unit
	Prob   float64
}

// PlanCharge decides which melee-capable units declare charges. A
// charge is committed when its 2d6 success probability clears the
// baseline threshold scaled by the tier's modifier, so low tiers only
// charge near-certainties while Competitive commits on thinner odds.
func (c *Controller) PlanCharge(state *game.State) []ChargeDecision {
	var out []ChargeDecision
	for _, u := range state.UnitsOf(c.side) {
		if len(u.MeleeWeapons()) == 0 {
			continue
		}
		target := state.NearestEnemy(u)
		if target == nil {
			continue
		}
		dist := u.Pos.Dist(target.Pos)
		if dist > 12 {
			continue
		}
		prob := game.ChargeSuccessProb(dist)

		if c.policy.RandomActions {
			// Easy coin-flips its charges regardless of the odds.
			if c.rng.Intn(2) == 0 {
				out = append(out, ChargeDecision{Unit: u, Target: target, Prob: prob})
			}
			continue
		}

		threshold := baseChargeThreshold * c.policy.ChargeThresholdModifier
		if threshold > 1 {
			threshold = 1
		}
		if prob >= threshold {
			out = append(out, ChargeDecision{Unit: u, Target: target, Prob: prob})
		}
	}
	return out
}
