// Package difficulty maps a discrete AI skill tier to the behavioral
// parameters the decision engine consumes: capability flags gating which
// tactical heuristics run, and numeric knobs sizing search and scoring.
//
// Everything here is a pure function of the tier. There is no state, no
// initialization, and no error path: malformed input degrades to the
// Normal tier's behavior instead of failing, so a corrupted difficulty
// value can never crash or disable an AI player.
package difficulty

import "strings"

// Tier is one of the four discrete AI skill levels.
//
// Unlike a typical opaque enum, the underlying ordinal is load-bearing:
// capability flags are expressed as ordinal thresholds (t >= Hard), so
// higher tiers unlock supersets of lower tiers' behavior. Inserting a
// new intermediate tier later only requires renumbering, not rewriting
// every predicate.
type Tier int

const (
	Easy Tier = iota
	Normal
	Hard
	Competitive
)

var tierNames = [...]string{
	Easy:        "Easy",
	Normal:      "Normal",
	Hard:        "Hard",
	Competitive: "Competitive",
}

var tierDescriptions = [...]string{
	Easy:        "Relaxed opponent that often picks random actions and rarely commits to risky plays.",
	Normal:      "Solid opponent that coordinates fire, matches weapons to targets and positions with care.",
	Hard:        "Aggressive opponent that plans across phases, uses stratagems and screens its backfield.",
	Competitive: "Tournament-grade opponent with deterministic scoring, trade analysis and look-ahead planning.",
}

// Tiers returns all valid tiers in ascending skill order.
func Tiers() []Tier {
	return []Tier{Easy, Normal, Hard, Competitive}
}

// Valid reports whether t is inside the enum's range.
func (t Tier) Valid() bool {
	return t >= Easy && t <= Competitive
}

// Name returns the display name for the tier.
// Out-of-range values fall back to the Normal tier's name.
func (t Tier) Name() string {
	if !t.Valid() {
		return tierNames[Normal]
	}
	return tierNames[t]
}

// String implements fmt.Stringer.
func (t Tier) String() string { return t.Name() }

// Description returns a one-sentence summary of the tier's play style.
// Out-of-range values return the empty string.
func (t Tier) Description() string {
	if !t.Valid() {
		return ""
	}
	return tierDescriptions[t]
}

// ParseTier resolves a tier from its name, case-insensitively.
// Unknown or empty input resolves to Normal; parsing never fails.
// ParseTier(t.Name()) == t holds for every valid tier.
func ParseTier(s string) Tier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "normal":
		return Normal
	case "hard":
		return Hard
	case "competitive":
		return Competitive
	default:
		return Normal
	}
}
