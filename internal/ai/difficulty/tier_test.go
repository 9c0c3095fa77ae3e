package difficulty

import "testing"

func TestParseTierCaseInsensitive(t *testing.T) {
	cases := []struct {
		in   string
		want Tier
	}{
		{"easy", Easy},
		{"Easy", Easy},
		{"EASY", Easy},
		{"normal", Normal},
		{"NORMAL", Normal},
		{"hard", Hard},
		{"Hard", Hard},
		{"competitive", Competitive},
		{"Competitive", Competitive},
		{"COMPETITIVE", Competitive},
		{"  hard  ", Hard},
	}

	for _, c := range cases {
		if got := ParseTier(c.in); got != c.want {
			t.Errorf("ParseTier(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseTierUnknownDefaultsToNormal(t *testing.T) {
	for _, in := range []string{"", "unknown_word", "extreme", "0", "easy mode"} {
		if got := ParseTier(in); got != Normal {
			t.Errorf("ParseTier(%q) = %v, want Normal", in, got)
		}
	}
}

func TestNameRoundTrip(t *testing.T) {
	for _, tier := range Tiers() {
		if got := ParseTier(tier.Name()); got != tier {
			t.Errorf("ParseTier(%v.Name()) = %v, want %v", tier, got, tier)
		}
	}
}

func TestNames(t *testing.T) {
	cases := map[Tier]string{
		Easy:        "Easy",
		Normal:      "Normal",
		Hard:        "Hard",
		Competitive: "Competitive",
	}
	for tier, want := range cases {
		if got := tier.Name(); got != want {
			t.Errorf("%d.Name() = %q, want %q", int(tier), got, want)
		}
	}
}

func TestNameOutOfRangeDefaultsToNormal(t *testing.T) {
	for _, tier := range []Tier{-1, 4, 99} {
		if got := tier.Name(); got != "Normal" {
			t.Errorf("Tier(%d).Name() = %q, want %q", int(tier), got, "Normal")
		}
	}
}

func TestDescriptions(t *testing.T) {
	for _, tier := range Tiers() {
		if tier.Description() == "" {
			t.Errorf("%v.Description() is empty", tier)
		}
	}

	for _, tier := range []Tier{-1, 4, 99} {
		if got := tier.Description(); got != "" {
			t.Errorf("Tier(%d).Description() = %q, want empty", int(tier), got)
		}
	}
}

func TestTiersOrdered(t *testing.T) {
	tiers := Tiers()
	if len(tiers) != 4 {
		t.Fatalf("Tiers() returned %d tiers, want 4", len(tiers))
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i-1] >= tiers[i] {
			t.Errorf("Tiers() not strictly ascending at index %d: %v >= %v", i, tiers[i-1], tiers[i])
		}
	}
}
