package ai

import (
	"math"

	"github.com/crucible-tabletop/crucible/internal/game"
)

// MoveDecision orders one unit to a destination within its move range.
type MoveDecision struct {
	Unit *game.Unit
	To   game.Vec
}

// baseChargeThreshold is the success probability a charge must clear
// before the tier modifier is applied.
const baseChargeThreshold = 0.5

// PlanMovement picks a destination for every unit on the controller's
// side. The optimizer samples MovementIterations candidate positions
// per unit and keeps the best-scoring one; at Easy a single random
// sample is taken and scoring is bypassed entirely.
func (c *Controller) PlanMovement(state *game.State) []MoveDecision {
	var out []MoveDecision
	for _, u := range state.UnitsOf(c.side) {
		out = append(out, MoveDecision{Unit: u, To: c.pickDestination(state, u)})
	}
	return out
}

func (c *Controller) pickDestination(state *game.State, u *game.Unit) game.Vec {
	if c.policy.RandomActions {
		return c.sampleDestination(state, u)
	}

	best := u.Pos
	bestScore := c.scorePosition(state, u, u.Pos) + c.noise()
	for i := 0; i < c.policy.MovementIterations; i++ {
		cand := c.sampleDestination(state, u)
		score := c.scorePosition(state, u, cand) + c.noise()
		if score > bestScore {
			best = cand
			bestScore = score
		}
	}
	return best
}

// sampleDestination draws a random reachable position: a random
// bearing at a random fraction of the unit's move, clamped to the
// board.
func (c *Controller) sampleDestination(state *game.State, u *game.Unit) game.Vec {
	angle := c.rng.Float64() * 2 * math.Pi
	dist := c.rng.Float64() * u.Move
	cand := game.Vec{
		X: u.Pos.X + math.Cos(angle)*dist,
		Y: u.Pos.Y + math.Sin(angle)*dist,
	}
	return state.Board.Clamp(cand)
}

// scorePosition rates a candidate destination for u. Higher is better.
func (c *Controller) scorePosition(state *game.State, u *game.Unit, pos game.Vec) float64 {
	nearest := state.NearestEnemy(u)
	if nearest == nil {
		return 0
	}
	dist := pos.Dist(nearest.Pos)

	score := -math.Abs(dist - c.idealRange(u))

	if c.policy.SurvivalAssessment && u.WoundFraction() < 0.4 {
		// Badly wounded: distance from every nearby enemy is worth
		// more than holding the ideal engagement range.
		score += dist * 2
	}

	if c.policy.ThreatPositioning {
		score -= c.threatPenalty(state, u, pos)
	}

	if c.policy.Screening && u.Points < 60 {
		score += c.screenBonus(state, u, pos)
	}

	if c.policy.CoordinatedPlanning && len(u.MeleeWeapons()) > 0 {
		// Plan the charge while moving: positions that set up a likely
		// charge next phase score higher.
		score += game.ChargeSuccessProb(dist-1) * 6
	}

	return score
}

// idealRange is the engagement distance the unit wants to hold:
// point-blank for melee units, a comfortable fraction of the longest
// gun for shooters.
func (c *Controller) idealRange(u *game.Unit) float64 {
	if u.MeleeOnly() {
		return 1
	}
	longest := 0.0
	for _, w := range u.RangedWeapons() {
		if w.Range > longest {
			longest = w.Range
		}
	}
	return longest * 0.6
}

// threatPenalty sums the expected damage enemies could put into pos
// next turn, weighted by how much the unit cares about surviving.
func (c *Controller) threatPenalty(state *game.State, u *game.Unit, pos game.Vec) float64 {
	penalty := 0.0
	for _, e := range state.EnemiesOf(u.Side) {
		reach := e.Move
		for _, w := range e.Weapons {
			r := w.Range
			if w.Melee() {
				r = 12 // move + realistic charge
			}
			if e.Pos.Dist(pos) <= reach+r {
				penalty += game.ExpectedDamage(w, u) * 0.5
			}
		}
	}
	return penalty
}

// screenBonus rewards cheap units for standing between the side's most
// valuable unit and the nearest enemy, denying deep strikes and charge
// lanes into the backfield.
func (c *Controller) screenBonus(state *game.State, u *game.Unit, pos game.Vec) float64 {
	var prize *game.Unit
	for _, ally := range state.UnitsOf(u.Side) {
		if ally.ID == u.ID {
			continue
		}
		if prize == nil || ally.Points > prize.Points {
			prize = ally
		}
	}
	if prize == nil {
		return 0
	}
	threat := state.NearestEnemy(prize)
	if threat == nil {
		return 0
	}
	mid := prize.Pos.Add(threat.Pos).Scale(0.5)
	// Closer to the midpoint of the lane is a better screen.
	return math.Max(0, 8-pos.Dist(mid)) * 0.5
}
