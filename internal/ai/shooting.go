package ai

import "github.com/crucible-tabletop/crucible/internal/game"

// ShootDecision fires one weapon at one target.
type ShootDecision struct {
	Attacker *game.Unit
	Weapon   game.Weapon
	Target   *game.Unit
}

// PlanShooting allocates every ranged weapon on the controller's side
// to a target. Target scoring layers on the tier's capabilities:
// weapon-to-target efficiency, cross-unit focus fire, points-trade
// analysis and one-ply look-ahead; at Easy each gun simply picks a
// random enemy in range.
func (c *Controller) PlanShooting(state *game.State) []ShootDecision {
	var out []ShootDecision

	// Damage already allocated to each target this volley, for focus
	// fire coordination across units.
	planned := make(map[int]float64)

	for _, u := range state.UnitsOf(c.side) {
		for _, w := range u.RangedWeapons() {
			target := c.pickTarget(state, u, w, planned)
			if target == nil {
				continue
			}
			planned[target.ID] += game.ExpectedDamage(w, target)
			out = append(out, ShootDecision{Attacker: u, Weapon: w, Target: target})
		}
	}
	return out
}

func (c *Controller) pickTarget(state *game.State, u *game.Unit, w game.Weapon, planned map[int]float64) *game.Unit {
	var inRange []*game.Unit
	for _, e := range state.EnemiesOf(u.Side) {
		if u.Pos.Dist(e.Pos) <= w.Range {
			inRange = append(inRange, e)
		}
	}
	if len(inRange) == 0 {
		return nil
	}

	if c.policy.RandomActions {
		return inRange[c.rng.Intn(len(inRange))]
	}

	var best *game.Unit
	bestScore := 0.0
	for _, e := range inRange {
		score := c.scoreTarget(state, u, w, e, planned) + c.noise()
		if best == nil || score > bestScore {
			best = e
			bestScore = score
		}
	}
	return best
}

func (c *Controller) scoreTarget(state *game.State, u *game.Unit, w game.Weapon, target *game.Unit, planned map[int]float64) float64 {
	expected := game.ExpectedDamage(w, target)

	var score float64
	if c.policy.WeaponMatching {
		// Efficiency: expected damage discounted by overkill against
		// what is left of the target.
		remaining := float64(target.Wounds) - planned[target.ID]
		if remaining < 1 {
			remaining = 1
		}
		effective := expected
		if effective > remaining {
			effective = remaining
		}
		score = effective
	} else {
		// Unsophisticated gunnery: prefer whatever is closest.
		score = -u.Pos.Dist(target.Pos)
	}

	if c.policy.FocusFire && planned[target.ID] > 0 {
		// Concentrate the volley on targets already under fire,
		// strongly so when this weapon could finish the job.
		score += 1
		if planned[target.ID]+expected >= float64(target.Wounds) {
			score += 3
		}
	}

	if c.policy.TradeAnalysis {
		// Weigh what the target is worth against what it threatens:
		// killing expensive, dangerous units first wins the trade war.
		score += float64(target.Points) / 50.0
		score += c.threatValue(target, state) * 0.25
	}

	if c.policy.LookAhead {
		score += c.lookAheadBonus(state, u, w, target)
	}

	return score
}

// threatValue estimates the damage the enemy unit could deal to the
// controller's side next turn.
func (c *Controller) threatValue(e *game.Unit, state *game.State) float64 {
	total := 0.0
	for _, w := range e.Weapons {
		for _, mine := range state.UnitsOf(c.side) {
			total += game.ExpectedDamage(w, mine)
		}
	}
	if n := len(state.UnitsOf(c.side)); n > 0 {
		total /= float64(n)
	}
	return total
}

// lookAheadBonus simulates the volley on a cloned state and measures
// how much the opponent's best possible response shrinks when the
// target dies. Expensive, so it is reserved for the top tier.
func (c *Controller) lookAheadBonus(state *game.State, u *game.Unit, w game.Weapon, target *game.Unit) float64 {
	before := c.bestEnemyResponse(state)

	scratch := state.Clone()
	st := scratch.UnitByID(target.ID)
	st.Wounds -= int(game.ExpectedDamage(w, target) + 0.5)

	after := c.bestEnemyResponse(scratch)
	return (before - after) * 2
}

// bestEnemyResponse returns the largest expected damage any single
// enemy unit could inflict on the controller's side.
func (c *Controller) bestEnemyResponse(state *game.State) float64 {
	best := 0.0
	for _, e := range state.EnemiesOf(c.side) {
		total := 0.0
		for _, w := range e.Weapons {
			var closest *game.Unit
			for _, mine := range state.UnitsOf(c.side) {
				if closest == nil || e.Pos.Dist(mine.Pos) < e.Pos.Dist(closest.Pos) {
					closest = mine
				}
			}
			if closest != nil {
				total += game.ExpectedDamage(w, closest)
			}
		}
		if total > best {
			best = total
		}
	}
	return best
}
