package scenario

import "testing"

func TestBuiltinScenariosRegistered(t *testing.T) {
	for _, id := range []string{"patrol", "crossfire"} {
		if !Exists(id) {
			t.Errorf("scenario %q not registered", id)
		}
	}
}

func TestListSortedByID(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("expected at least 2 scenarios, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	for _, sc := range list {
		if sc.Title == "" || sc.Description == "" {
			t.Errorf("scenario %q missing title or description", sc.ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-scenario"); err == nil {
		t.Error("Create with unknown ID did not fail")
	}
}

func TestCreateReturnsFreshState(t *testing.T) {
	a, err := Create("patrol")
	if err != nil {
		t.Fatalf("Create(patrol) failed: %v", err)
	}
	b, err := Create("patrol")
	if err != nil {
		t.Fatalf("Create(patrol) failed: %v", err)
	}

	a.Units[0].Wounds = 0
	if b.Units[0].Wounds == 0 {
		t.Error("two Create calls share unit memory")
	}
}

func TestScenariosHaveBothSidesOnBoard(t *testing.T) {
	for _, sc := range List() {
		state := sc.Setup()
		red, blue := 0, 0
		for _, u := range state.Units {
			if !state.Board.Contains(u.Pos) {
				t.Errorf("%s: unit %s starts off board at %+v", sc.ID, u.Name, u.Pos)
			}
			if !u.Alive() {
				t.Errorf("%s: unit %s starts dead", sc.ID, u.Name)
			}
			if u.Side.String() == "Red" {
				red++
			} else {
				blue++
			}
		}
		if red == 0 || blue == 0 {
			t.Errorf("%s: side missing units (red=%d blue=%d)", sc.ID, red, blue)
		}
	}
}
