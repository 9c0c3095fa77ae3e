package game

// Board is the playing surface in inches.
type Board struct {
	Width, Height float64
}

// Contains reports whether p lies on the board.
func (b Board) Contains(p Vec) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// Clamp returns p moved to the nearest point on the board.
func (b Board) Clamp(p Vec) Vec {
	if p.X < 0 {
		p.X = 0
	}
	if p.X > b.Width {
		p.X = b.Width
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y > b.Height {
		p.Y = b.Height
	}
	return p
}

// Center returns the midpoint of the board.
func (b Board) Center() Vec {
	return Vec{b.Width / 2, b.Height / 2}
}

// State is the full battle state the AI reasons over.
type State struct {
	Board Board
	Units []*Unit
	Round int
}

// UnitsOf returns the living units belonging to side.
func (s *State) UnitsOf(side Side) []*Unit {
	var out []*Unit
	for _, u := range s.Units {
		if u.Side == side && u.Alive() {
			out = append(out, u)
		}
	}
	return out
}

// EnemiesOf returns the living units opposing side.
func (s *State) EnemiesOf(side Side) []*Unit {
	return s.UnitsOf(side.Opponent())
}

// UnitByID returns the unit with the given ID, alive or dead, or nil.
func (s *State) UnitByID(id int) *Unit {
	for _, u := range s.Units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// NearestEnemy returns the closest living enemy to u, or nil if the
// opposing side is wiped out.
func (s *State) NearestEnemy(u *Unit) *Unit {
	var nearest *Unit
	best := 0.0
	for _, e := range s.EnemiesOf(u.Side) {
		d := u.Pos.Dist(e.Pos)
		if nearest == nil || d < best {
			nearest = e
			best = d
		}
	}
	return nearest
}

// PointsRemaining sums the points of side's living units.
func (s *State) PointsRemaining(side Side) int {
	total := 0
	for _, u := range s.UnitsOf(side) {
		total += u.Points
	}
	return total
}

// Clone deep-copies the state so look-ahead planning can mutate a
// scratch copy without touching the real battle.
func (s *State) Clone() *State {
	out := &State{Board: s.Board, Round: s.Round}
	out.Units = make([]*Unit, len(s.Units))
	for i, u := range s.Units {
		cp := *u
		cp.Weapons = append([]Weapon(nil), u.Weapons...)
		out.Units[i] = &cp
	}
	return out
}
