package scenario

import "github.com/crucible-tabletop/crucible/internal/game"

func init() {
	Register(Scenario{
		ID:          "patrol",
		Title:       "Patrol Clash",
		Description: "Two small patrols meet across open ground. Marines against a green tide.",
		Setup:       patrolSetup,
	})
	Register(Scenario{
		ID:          "crossfire",
		Title:       "Crossfire",
		Description: "Mirror-matched strike forces with heavy support and a screening line.",
		Setup:       crossfireSetup,
	})
}

func patrolSetup() *game.State {
	return &game.State{
		Board: game.Board{Width: 44, Height: 30},
		Units: []*game.Unit{
			intercessors(1, game.Red, game.Vec{X: 12, Y: 4}),
			devastators(2, game.Red, game.Vec{X: 22, Y: 3}),
			assaultSquad(3, game.Red, game.Vec{X: 32, Y: 5}),

			orkBoyz(4, game.Blue, game.Vec{X: 10, Y: 26}),
			orkBoyz(5, game.Blue, game.Vec{X: 22, Y: 27}),
			gretchinScreen(6, game.Blue, game.Vec{X: 16, Y: 24}),
		},
	}
}

func crossfireSetup() *game.State {
	return &game.State{
		Board: game.Board{Width: 60, Height: 44},
		Units: []*game.Unit{
			intercessors(1, game.Red, game.Vec{X: 14, Y: 6}),
			intercessors(2, game.Red, game.Vec{X: 30, Y: 5}),
			devastators(3, game.Red, game.Vec{X: 46, Y: 4}),
			assaultSquad(4, game.Red, game.Vec{X: 22, Y: 8}),
			gretchinScreen(5, game.Red, game.Vec{X: 38, Y: 8}),

			intercessors(6, game.Blue, game.Vec{X: 14, Y: 38}),
			intercessors(7, game.Blue, game.Vec{X: 30, Y: 39}),
			devastators(8, game.Blue, game.Vec{X: 46, Y: 40}),
			assaultSquad(9, game.Blue, game.Vec{X: 22, Y: 36}),
			gretchinScreen(10, game.Blue, game.Vec{X: 38, Y: 36}),
		},
	}
}
