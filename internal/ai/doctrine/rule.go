// Package doctrine holds the reactive stratagem layer as a compiled
// rule set. Conditions are expr expressions evaluated against a small
// battle environment; which rules are even loaded is decided by the
// tier's capability flags, so an Easy opponent never reasons about
// stratagems at all.
package doctrine

import (
	"fmt"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/crucible-tabletop/crucible/internal/game"
)

// Effect identifies the stratagem or command ability a fired rule
// recommends. The simulation layer maps effects to concrete dice
// mechanics.
type Effect string

const (
	EffectCounterOffensive Effect = "counter_offensive"
	EffectFireOverwatch    Effect = "fire_overwatch"
	EffectCommandReroll    Effect = "command_reroll"
	EffectDesperateEscape  Effect = "desperate_escape"
)

// Cost returns the command point price of an effect.
func Cost(e Effect) int {
	if e == EffectCounterOffensive {
		return 2
	}
	return 1
}

// Rule is one condition → effect pair. Rules fire in priority order;
// an exclusive rule blocks lower-priority rules in the same category,
// so a unit never spends command points twice on the same trigger.
type Rule struct {
	Name         string
	Priority     int
	Category     string
	Exclusive    bool
	ConditionSrc string
	Effect       Effect
	CPCost       int

	program *vm.Program
}

// Env wraps the battle state for one reacting unit and exposes the
// helpers callable from rule conditions.
type Env struct {
	State         *game.State
	Unit          *game.Unit
	CommandPoints int
	Charged       bool // an enemy declared a charge against Unit
	FailedRoll    bool // the unit just failed a charge or morale roll
}

// Round returns the current battle round.
func (e Env) Round() int { return e.State.Round }

// CP returns the side's remaining command points.
func (e Env) CP() int { return e.CommandPoints }

// WoundFraction returns the reacting unit's remaining wound fraction.
func (e Env) WoundFraction() float64 { return e.Unit.WoundFraction() }

// EnemiesWithin counts living enemies within d inches of the unit.
func (e Env) EnemiesWithin(d float64) int {
	n := 0
	for _, enemy := range e.State.EnemiesOf(e.Unit.Side) {
		if e.Unit.Pos.Dist(enemy.Pos) <= d {
			n++
		}
	}
	return n
}

// AlliesWithin counts other living friendly units within d inches.
func (e Env) AlliesWithin(d float64) int {
	n := 0
	for _, ally := range e.State.UnitsOf(e.Unit.Side) {
		if ally.ID != e.Unit.ID && e.Unit.Pos.Dist(ally.Pos) <= d {
			n++
		}
	}
	return n
}

// Outnumbered reports whether enemies within 12" outnumber nearby
// allies (the reacting unit included).
func (e Env) Outnumbered() bool {
	return e.EnemiesWithin(12) > e.AlliesWithin(12)+1
}

// HasRangedWeapons reports whether the unit can shoot at all.
func (e Env) HasRangedWeapons() bool {
	return len(e.Unit.RangedWeapons()) > 0
}

// Compile validates every condition against the environment shape and
// sorts the set by descending priority. A rule that fails to compile
// rejects the whole set; conditions are authored in code, so a failure
// here is a programming error surfaced at startup.
func Compile(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("doctrine: compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}

// Evaluate runs the compiled set against env and returns the effects
// that fire, in priority order, honoring category exclusivity and the
// side's command point budget.
func Evaluate(rules []*Rule, env Env) []Effect {
	var out []Effect
	fired := make(map[string]bool)
	cp := env.CommandPoints

	for _, r := range rules {
		if r.program == nil || fired[r.Category] || r.CPCost > cp {
			continue
		}
		result, err := vm.Run(r.program, env)
		if err != nil {
			continue
		}
		match, ok := result.(bool)
		if !ok || !match {
			continue
		}

		out = append(out, r.Effect)
		cp -= r.CPCost
		if r.Exclusive {
			fired[r.Category] = true
		}
	}
	return out
}
