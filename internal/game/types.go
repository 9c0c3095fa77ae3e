// Package game holds the pure tabletop skirmish model: units, weapons,
// the board, and the dice math the AI scores decisions with. It has no
// dependency on the UI, storage or AI layers.
package game

import "math"

// Side identifies one of the two armies in a skirmish.
type Side int

const (
	Red Side = iota
	Blue
)

// String returns the display name of the side.
func (s Side) String() string {
	if s == Red {
		return "Red"
	}
	return "Blue"
}

// Opponent returns the opposing side.
func (s Side) Opponent() Side {
	if s == Red {
		return Blue
	}
	return Red
}

// Vec is a 2D position in inches on the board.
type Vec struct {
	X, Y float64
}

// Dist returns the euclidean distance to other.
func (v Vec) Dist(other Vec) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns v + other.
func (v Vec) Add(other Vec) Vec {
	return Vec{v.X + other.X, v.Y + other.Y}
}

// Scale returns v scaled by f.
func (v Vec) Scale(f float64) Vec {
	return Vec{v.X * f, v.Y * f}
}

// Weapon is a single weapon profile. Skill is the to-hit target on a
// d6 (3 means 3+). Range 0 marks a melee weapon.
type Weapon struct {
	Name     string
	Range    float64
	Attacks  int
	Skill    int
	Strength int
	AP       int
	Damage   int
}

// Melee reports whether the weapon only fights in close combat.
func (w Weapon) Melee() bool { return w.Range <= 0 }

// Unit is one model or squad on the board.
type Unit struct {
	ID          int
	Name        string
	Side        Side
	Pos         Vec
	Move        float64
	Toughness   int
	Save        int
	Wounds      int
	StartWounds int
	Points      int
	Weapons     []Weapon
}

// Alive reports whether the unit is still on the table.
func (u *Unit) Alive() bool { return u.Wounds > 0 }

// WoundFraction returns remaining wounds as a fraction of starting
// wounds, 0 when the unit never had any.
func (u *Unit) WoundFraction() float64 {
	if u.StartWounds <= 0 {
		return 0
	}
	return float64(u.Wounds) / float64(u.StartWounds)
}

// MeleeOnly reports whether the unit has no ranged weapons.
func (u *Unit) MeleeOnly() bool {
	for _, w := range u.Weapons {
		if !w.Melee() {
			return false
		}
	}
	return len(u.Weapons) > 0
}

// RangedWeapons returns the unit's shooting profiles.
func (u *Unit) RangedWeapons() []Weapon {
	var out []Weapon
	for _, w := range u.Weapons {
		if !w.Melee() {
			out = append(out, w)
		}
	}
	return out
}

// MeleeWeapons returns the unit's close-combat profiles.
func (u *Unit) MeleeWeapons() []Weapon {
	var out []Weapon
	for _, w := range u.Weapons {
		if w.Melee() {
			out = append(out, w)
		}
	}
	return out
}
