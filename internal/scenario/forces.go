package scenario

import "github.com/crucible-tabletop/crucible/internal/game"

// Shared weapon profiles.

func boltRifle() game.Weapon {
	return game.Weapon{Name: "bolt rifle", Range: 24, Attacks: 2, Skill: 3, Strength: 4, AP: 1, Damage: 1}
}

func lascannon() game.Weapon {
	return game.Weapon{Name: "lascannon", Range: 48, Attacks: 1, Skill: 3, Strength: 12, AP: 3, Damage: 6}
}

func shootaVolley() game.Weapon {
	return game.Weapon{Name: "shoota volley", Range: 18, Attacks: 3, Skill: 5, Strength: 4, AP: 0, Damage: 1}
}

func chainsword() game.Weapon {
	return game.Weapon{Name: "chainsword", Range: 0, Attacks: 3, Skill: 3, Strength: 4, AP: 1, Damage: 1}
}

func choppa() game.Weapon {
	return game.Weapon{Name: "choppa", Range: 0, Attacks: 4, Skill: 3, Strength: 5, AP: 1, Damage: 1}
}

func powerFist() game.Weapon {
	return game.Weapon{Name: "power fist", Range: 0, Attacks: 3, Skill: 3, Strength: 8, AP: 2, Damage: 2}
}

// Unit templates. IDs are assigned by the scenario.

func intercessors(id int, side game.Side, pos game.Vec) *game.Unit {
	return &game.Unit{
		ID: id, Name: "Intercessors", Side: side, Pos: pos,
		Move: 6, Toughness: 4, Save: 3, Wounds: 10, StartWounds: 10, Points: 90,
		Weapons: []game.Weapon{boltRifle(), chainsword()},
	}
}

func devastators(id int, side game.Side, pos game.Vec) *game.Unit {
	return &game.Unit{
		ID: id, Name: "Devastators", Side: side, Pos: pos,
		Move: 5, Toughness: 4, Save: 3, Wounds: 8, StartWounds: 8, Points: 140,
		Weapons: []game.Weapon{lascannon(), boltRifle()},
	}
}

func assaultSquad(id int, side game.Side, pos game.Vec) *game.Unit {
	return &game.Unit{
		ID: id, Name: "Assault Squad", Side: side, Pos: pos,
		Move: 12, Toughness: 4, Save: 3, Wounds: 8, StartWounds: 8, Points: 110,
		Weapons: []game.Weapon{chainsword(), powerFist()},
	}
}

func orkBoyz(id int, side game.Side, pos game.Vec) *game.Unit {
	return &game.Unit{
		ID: id, Name: "Ork Boyz", Side: side, Pos: pos,
		Move: 6, Toughness: 5, Save: 6, Wounds: 12, StartWounds: 12, Points: 85,
		Weapons: []game.Weapon{shootaVolley(), choppa()},
	}
}

func gretchinScreen(id int, side game.Side, pos game.Vec) *game.Unit {
	return &game.Unit{
		ID: id, Name: "Gretchin", Side: side, Pos: pos,
		Move: 5, Toughness: 3, Save: 7, Wounds: 8, StartWounds: 8, Points: 40,
		Weapons: []game.Weapon{{Name: "grot blasta", Range: 12, Attacks: 1, Skill: 4, Strength: 3, AP: 0, Damage: 1}},
	}
}
