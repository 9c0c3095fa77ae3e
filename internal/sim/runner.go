// Package sim runs headless AI-vs-AI skirmishes and emits the event
// stream the CLI, TUI and spectator surfaces render.
package sim

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"github.com/crucible-tabletop/crucible/internal/ai"
	"github.com/crucible-tabletop/crucible/internal/ai/difficulty"
	"github.com/crucible-tabletop/crucible/internal/ai/doctrine"
	"github.com/crucible-tabletop/crucible/internal/game"
)

// Phase labels the battle-round step an event belongs to.
type Phase string

const (
	PhaseDeploy   Phase = "deploy"
	PhaseMovement Phase = "movement"
	PhaseShooting Phase = "shooting"
	PhaseCharge   Phase = "charge"
	PhaseMelee    Phase = "melee"
	PhaseEnd      Phase = "end"
)

// Event is one line of the battle report.
type Event struct {
	Round  int    `json:"round"`
	Phase  Phase  `json:"phase"`
	Side   string `json:"side"`
	Unit   string `json:"unit,omitempty"`
	Detail string `json:"detail"`
}

// Result is the outcome of a finished skirmish. Winner is "Red",
// "Blue" or "Draw".
type Result struct {
	Winner         string
	Rounds         int
	RedSurvivors   int
	BlueSurvivors  int
	RedPointsLost  int
	BluePointsLost int
	Events         []Event
}

// startingCommandPoints is each side's CP pool at deployment; one more
// accrues at the top of every round.
const startingCommandPoints = 3

// Runner drives one skirmish to completion. It owns the dice: the
// controllers only ever see probabilities.
type Runner struct {
	state     *game.State
	red, blue *ai.Controller
	rng       *rand.Rand
	maxRounds int
	logger    *log.Logger

	cp     map[game.Side]int
	start  map[game.Side]int // starting points per side, for losses
	events []Event
	sink   func(Event)
}

// New builds a runner over the given starting state with one
// controller per side. The seed drives both controllers and the dice,
// so a full battle is reproducible.
func New(state *game.State, redTier, blueTier difficulty.Tier, seed int64, maxRounds int) (*Runner, error) {
	red, err := ai.NewController(game.Red, redTier, seed)
	if err != nil {
		return nil, fmt.Errorf("sim: red controller: %w", err)
	}
	blue, err := ai.NewController(game.Blue, blueTier, seed+1)
	if err != nil {
		return nil, fmt.Errorf("sim: blue controller: %w", err)
	}
	if maxRounds <= 0 {
		maxRounds = 5
	}
	return &Runner{
		state:     state,
		red:       red,
		blue:      blue,
		rng:       rand.New(rand.NewSource(seed + 2)),
		maxRounds: maxRounds,
		logger:    log.NewWithOptions(os.Stderr, log.Options{Prefix: "sim", Level: log.WarnLevel}),
		cp: map[game.Side]int{
			game.Red:  startingCommandPoints,
			game.Blue: startingCommandPoints,
		},
		start: map[game.Side]int{
			game.Red:  state.PointsRemaining(game.Red),
			game.Blue: state.PointsRemaining(game.Blue),
		},
	}, nil
}

// SetLogger replaces the runner's logger (the server surfaces pass
// their own).
func (r *Runner) SetLogger(l *log.Logger) { r.logger = l }

// OnEvent registers a callback invoked for every emitted event, in
// order, before Run returns. Used by the TUI viewer and the websocket
// feed.
func (r *Runner) OnEvent(fn func(Event)) { r.sink = fn }

func (r *Runner) controller(side game.Side) *ai.Controller {
	if side == game.Red {
		return r.red
	}
	return r.blue
}

func (r *Runner) emit(phase Phase, side game.Side, unit, detail string) {
	ev := Event{Round: r.state.Round, Phase: phase, Side: side.String(), Unit: unit, Detail: detail}
	r.events = append(r.events, ev)
	if r.sink != nil {
		r.sink(ev)
	}
}

// Run plays the battle to a finish and returns the result.
func (r *Runner) Run() Result {
	r.deploy()

	for r.state.Round = 1; r.state.Round <= r.maxRounds; r.state.Round++ {
		r.cp[game.Red]++
		r.cp[game.Blue]++

		for _, side := range []game.Side{game.Red, game.Blue} {
			if r.wipedOut() {
				break
			}
			r.playTurn(side)
		}
		if r.wipedOut() {
			break
		}
	}
	if r.state.Round > r.maxRounds {
		r.state.Round = r.maxRounds
	}

	return r.result()
}

func (r *Runner) deploy() {
	for _, side := range []game.Side{game.Red, game.Blue} {
		for _, mv := range r.controller(side).PlanDeployment(r.state) {
			mv.Unit.Pos = mv.To
			r.emit(PhaseDeploy, side, mv.Unit.Name,
				fmt.Sprintf("redeploys to (%.0f, %.0f)", mv.To.X, mv.To.Y))
		}
	}
}

func (r *Runner) playTurn(side game.Side) {
	c := r.controller(side)

	for _, mv := range c.PlanMovement(r.state) {
		from := mv.Unit.Pos
		mv.Unit.Pos = mv.To
		r.emit(PhaseMovement, side, mv.Unit.Name,
			fmt.Sprintf("moves %.1f\" to (%.0f, %.0f)", from.Dist(mv.To), mv.To.X, mv.To.Y))
	}

	for _, sd := range c.PlanShooting(r.state) {
		if !sd.Attacker.Alive() || !sd.Target.Alive() {
			continue
		}
		dmg := r.resolveAttacks(sd.Weapon, sd.Target)
		r.reportDamage(PhaseShooting, side, sd.Attacker.Name, sd.Weapon.Name, sd.Target, dmg)
	}

	for _, cd := range c.PlanCharge(r.state) {
		if !cd.Unit.Alive() || !cd.Target.Alive() {
			continue
		}
		r.resolveCharge(side, cd)
	}
}

// resolveCharge rolls the charge distance, lets the defender react
// through its doctrine layer, and fights the melee on success.
func (r *Runner) resolveCharge(side game.Side, cd ai.ChargeDecision) {
	defender := cd.Target.Side
	dist := cd.Unit.Pos.Dist(cd.Target.Pos)
	r.emit(PhaseCharge, side, cd.Unit.Name,
		fmt.Sprintf("declares a charge against %s (%.1f\", %.0f%%)", cd.Target.Name, dist, cd.Prob*100))

	reactions := r.react(defender, cd.Target, true, false)
	for _, eff := range reactions {
		if eff == doctrine.EffectFireOverwatch {
			for _, w := range cd.Target.RangedWeapons() {
				// Overwatch hits only on unmodified sixes.
				ow := w
				ow.Skill = 6
				dmg := r.resolveAttacks(ow, cd.Unit)
				r.reportDamage(PhaseCharge, defender, cd.Target.Name, "overwatch "+w.Name, cd.Unit, dmg)
			}
		}
	}
	if !cd.Unit.Alive() {
		r.emit(PhaseCharge, side, cd.Unit.Name, "cut down by overwatch")
		return
	}

	roll := game.Roll2D6(r.rng)
	if float64(roll) < dist {
		// Failed: the charging side may burn a reroll.
		for _, eff := range r.react(side, cd.Unit, false, true) {
			if eff == doctrine.EffectCommandReroll {
				roll = game.Roll2D6(r.rng)
				r.emit(PhaseCharge, side, cd.Unit.Name, fmt.Sprintf("command re-roll: %d", roll))
			}
		}
	}
	if float64(roll) < dist {
		r.emit(PhaseCharge, side, cd.Unit.Name, fmt.Sprintf("charge fails (rolled %d)", roll))
		return
	}

	cd.Unit.Pos = cd.Target.Pos
	r.emit(PhaseCharge, side, cd.Unit.Name, fmt.Sprintf("charge succeeds (rolled %d)", roll))
	r.resolveMelee(side, cd.Unit, cd.Target, reactions)
}

// resolveMelee fights one round of close combat. The charger normally
// strikes first; counter-offensive flips the order.
func (r *Runner) resolveMelee(side game.Side, attacker, defender *game.Unit, reactions []doctrine.Effect) {
	first, second := attacker, defender
	for _, eff := range reactions {
		if eff == doctrine.EffectCounterOffensive {
			first, second = defender, attacker
			r.emit(PhaseMelee, defender.Side, defender.Name, "counter-offensive: strikes first")
		}
	}

	r.fight(first, second)
	if second.Alive() {
		r.fight(second, first)
	}
}

func (r *Runner) fight(attacker, defender *game.Unit) {
	for _, w := range attacker.MeleeWeapons() {
		dmg := r.resolveAttacks(w, defender)
		r.reportDamage(PhaseMelee, attacker.Side, attacker.Name, w.Name, defender, dmg)
		if !defender.Alive() {
			return
		}
	}
}

// react routes a trigger through the side's doctrine layer and pays
// the command point costs of whatever fires.
func (r *Runner) react(side game.Side, unit *game.Unit, charged, failedRoll bool) []doctrine.Effect {
	effects := r.controller(side).React(r.state, unit, charged, failedRoll, r.cp[side])
	for _, eff := range effects {
		r.cp[side] -= doctrine.Cost(eff)
	}
	return effects
}

// resolveAttacks rolls a full round of attacks with w into target and
// applies the damage. Returns the wounds inflicted.
func (r *Runner) resolveAttacks(w game.Weapon, target *game.Unit) int {
	total := 0
	for i := 0; i < w.Attacks && target.Alive(); i++ {
		if game.RollD6(r.rng) < w.Skill {
			continue
		}
		if game.RollD6(r.rng) < game.WoundTarget(w.Strength, target.Toughness) {
			continue
		}
		save := game.RollD6(r.rng)
		if save != 1 && save >= target.Save+w.AP {
			continue
		}
		dmg := w.Damage
		if dmg > target.Wounds {
			dmg = target.Wounds
		}
		target.Wounds -= dmg
		total += dmg
	}
	return total
}

func (r *Runner) reportDamage(phase Phase, side game.Side, attacker, weapon string, target *game.Unit, dmg int) {
	switch {
	case !target.Alive():
		r.emit(phase, side, attacker, fmt.Sprintf("%s destroys %s (%d damage)", weapon, target.Name, dmg))
		r.logger.Debug("unit destroyed", "unit", target.Name, "by", attacker)
	case dmg > 0:
		r.emit(phase, side, attacker, fmt.Sprintf("%s wounds %s (%d damage)", weapon, target.Name, dmg))
	default:
		r.emit(phase, side, attacker, fmt.Sprintf("%s has no effect on %s", weapon, target.Name))
	}
}

func (r *Runner) wipedOut() bool {
	return len(r.state.UnitsOf(game.Red)) == 0 || len(r.state.UnitsOf(game.Blue)) == 0
}

func (r *Runner) result() Result {
	redLeft := r.state.PointsRemaining(game.Red)
	blueLeft := r.state.PointsRemaining(game.Blue)

	res := Result{
		Rounds:         r.state.Round,
		RedSurvivors:   len(r.state.UnitsOf(game.Red)),
		BlueSurvivors:  len(r.state.UnitsOf(game.Blue)),
		RedPointsLost:  r.start[game.Red] - redLeft,
		BluePointsLost: r.start[game.Blue] - blueLeft,
		Events:         r.events,
	}
	switch {
	case redLeft > blueLeft:
		res.Winner = game.Red.String()
	case blueLeft > redLeft:
		res.Winner = game.Blue.String()
	default:
		res.Winner = "Draw"
	}

	r.emit(PhaseEnd, game.Red, "", fmt.Sprintf("battle ends after round %d: %s", res.Rounds, res.Winner))
	res.Events = r.events
	return res
}
