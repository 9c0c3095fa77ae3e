// Package scenario provides a registry of battle setups. Scenarios
// register themselves in init() functions, so surfaces discover them
// without hardcoded lists.
package scenario

import (
	"fmt"
	"sort"
	"sync"

	"github.com/crucible-tabletop/crucible/internal/game"
)

// Scenario describes one battle setup: a board and the two starting
// forces. Setup returns a fresh state every call, so repeated matches
// never share units.
type Scenario struct {
	ID          string
	Title       string
	Description string
	Setup       func() *game.State
}

var (
	scenarios = make(map[string]Scenario)
	mu        sync.RWMutex
)

// Register adds a scenario to the registry. Typically called from an
// init() function. Panics if the ID is already taken.
func Register(sc Scenario) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := scenarios[sc.ID]; exists {
		panic(fmt.Sprintf("scenario: %q already registered", sc.ID))
	}
	scenarios[sc.ID] = sc
}

// List returns all registered scenarios, sorted by ID.
func List() []Scenario {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Scenario, 0, len(scenarios))
	for _, sc := range scenarios {
		result = append(result, sc)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a fresh battle state for the scenario with the given
// ID.
func Create(id string) (*game.State, error) {
	mu.RLock()
	sc, ok := scenarios[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("scenario: unknown scenario %q", id)
	}
	return sc.Setup(), nil
}

// Exists checks whether a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := scenarios[id]
	return ok
}
