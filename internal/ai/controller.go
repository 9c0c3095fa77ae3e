// Package ai implements the per-phase decision engine for one
// AI-controlled side. Which heuristics run and how wide the searches
// go is decided entirely by the difficulty policy: the controller
// reads the tier's capability flags and numeric parameters once at
// construction and never consults the tier again.
package ai

import (
	"fmt"
	"math/rand"

	"github.com/crucible-tabletop/crucible/internal/ai/difficulty"
	"github.com/crucible-tabletop/crucible/internal/ai/doctrine"
	"github.com/crucible-tabletop/crucible/internal/game"
)

// Controller makes decisions for one side at a fixed difficulty tier.
// It is deterministic for a fixed seed (modulo the tier's score noise,
// which is itself drawn from the seeded source).
type Controller struct {
	side   game.Side
	policy difficulty.Policy
	rules  []*doctrine.Rule
	rng    *rand.Rand
}

// NewController creates a controller for side at the given tier.
// The doctrine rule set is compiled up front so malformed rules fail
// at startup, not mid-battle.
func NewController(side game.Side, tier difficulty.Tier, seed int64) (*Controller, error) {
	policy := difficulty.PolicyFor(tier)
	rules, err := doctrine.ForPolicy(policy)
	if err != nil {
		return nil, fmt.Errorf("ai: building doctrine for %s: %w", tier, err)
	}
	return &Controller{
		side:   side,
		policy: policy,
		rules:  rules,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Side returns the side this controller plays.
func (c *Controller) Side() game.Side { return c.side }

// Policy returns the difficulty bundle the controller was built with.
func (c *Controller) Policy() difficulty.Policy { return c.policy }

// noise returns a random perturbation sized by the tier's score noise.
// At Competitive this is always zero, making scoring deterministic.
func (c *Controller) noise() float64 {
	if c.policy.ScoreNoise == 0 {
		return 0
	}
	return c.rng.Float64() * c.policy.ScoreNoise
}

// React consults the doctrine layer for a unit that was just charged
// or failed a roll, returning the stratagem effects to apply within
// the available command points.
func (c *Controller) React(state *game.State, unit *game.Unit, charged, failedRoll bool, commandPoints int) []doctrine.Effect {
	if len(c.rules) == 0 {
		return nil
	}
	env := doctrine.Env{
		State:         state,
		Unit:          unit,
		CommandPoints: commandPoints,
		Charged:       charged,
		FailedRoll:    failedRoll,
	}
	return doctrine.Evaluate(c.rules, env)
}

// PlanDeployment shifts the side's units laterally before the first
// round. Without counter-deployment the line stays where the scenario
// put it; with it, units slide toward the opponent's center of mass.
func (c *Controller) PlanDeployment(state *game.State) []MoveDecision {
	if !c.policy.CounterDeployment {
		return nil
	}
	enemies := state.EnemiesOf(c.side)
	if len(enemies) == 0 {
		return nil
	}

	centroid := game.Vec{}
	for _, e := range enemies {
		centroid = centroid.Add(e.Pos)
	}
	centroid = centroid.Scale(1 / float64(len(enemies)))

	var out []MoveDecision
	for _, u := range state.UnitsOf(c.side) {
		// Slide up to 3" toward the enemy mass, keeping the deployment
		// depth (Y for Red, who deploys along the top edge) unchanged.
		dx := centroid.X - u.Pos.X
		if dx > 3 {
			dx = 3
		}
		if dx < -3 {
			dx = -3
		}
		if dx == 0 {
			continue
		}
		to := state.Board.Clamp(game.Vec{X: u.Pos.X + dx, Y: u.Pos.Y})
		out = append(out, MoveDecision{Unit: u, To: to})
	}
	return out
}
