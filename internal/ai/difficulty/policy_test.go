package difficulty

import "testing"

// flagFuncs enumerates every capability predicate by name so the
// monotonicity and totality checks cover all of them.
var flagFuncs = map[string]func(Tier) bool{
	"random_actions":       Tier.UseRandomActions,
	"stratagems":           Tier.UseStratagems,
	"coordinated_planning": Tier.UseCoordinatedPlanning,
	"focus_fire":           Tier.UseFocusFire,
	"threat_positioning":   Tier.UseThreatPositioning,
	"trade_analysis":       Tier.UseTradeAnalysis,
	"look_ahead":           Tier.UseLookAhead,
	"weapon_matching":      Tier.UseWeaponMatching,
	"survival_assessment":  Tier.UseSurvivalAssessment,
	"screening":            Tier.UseScreening,
	"counter_deployment":   Tier.UseCounterDeployment,
	"command_rerolls":      Tier.UseCommandRerolls,
	"overwatch":            Tier.UseOverwatch,
	"counter_offensive":    Tier.UseCounterOffensive,
}

// Flags exclusive to a single tier; everything else must unlock
// monotonically with skill.
var exclusiveFlags = map[string]Tier{
	"random_actions": Easy,
	"trade_analysis": Competitive,
	"look_ahead":     Competitive,
}

func TestFlagMonotonicity(t *testing.T) {
	for name, fn := range flagFuncs {
		if _, exclusive := exclusiveFlags[name]; exclusive {
			continue
		}
		enabled := false
		for _, tier := range Tiers() {
			got := fn(tier)
			if enabled && !got {
				t.Errorf("%s: enabled at a lower tier but disabled at %v", name, tier)
			}
			enabled = enabled || got
		}
		if !enabled {
			t.Errorf("%s: never enabled at any tier", name)
		}
	}
}

func TestFlagExclusivity(t *testing.T) {
	for name, only := range exclusiveFlags {
		fn := flagFuncs[name]
		for _, tier := range Tiers() {
			want := tier == only
			if got := fn(tier); got != want {
				t.Errorf("%s(%v) = %v, want %v", name, tier, got, want)
			}
		}
	}
}

func TestFlagThresholds(t *testing.T) {
	cases := []struct {
		name string
		from Tier
	}{
		{"stratagems", Hard},
		{"coordinated_planning", Hard},
		{"focus_fire", Normal},
		{"threat_positioning", Normal},
		{"weapon_matching", Normal},
		{"survival_assessment", Hard},
		{"screening", Hard},
		{"counter_deployment", Normal},
		{"command_rerolls", Normal},
		{"overwatch", Normal},
		{"counter_offensive", Hard},
	}

	for _, c := range cases {
		fn := flagFuncs[c.name]
		for _, tier := range Tiers() {
			want := tier >= c.from
			if got := fn(tier); got != want {
				t.Errorf("%s(%v) = %v, want %v", c.name, tier, got, want)
			}
		}
	}
}

func TestScoreNoiseStrictlyDecreasing(t *testing.T) {
	tiers := Tiers()
	for i := 1; i < len(tiers); i++ {
		lo, hi := tiers[i-1], tiers[i]
		if lo.ScoreNoise() <= hi.ScoreNoise() {
			t.Errorf("ScoreNoise(%v)=%v not greater than ScoreNoise(%v)=%v",
				lo, lo.ScoreNoise(), hi, hi.ScoreNoise())
		}
	}
	if got := Competitive.ScoreNoise(); got != 0.0 {
		t.Errorf("ScoreNoise(Competitive) = %v, want 0.0", got)
	}
}

func TestMovementIterationsStrictlyIncreasing(t *testing.T) {
	tiers := Tiers()
	for i := 1; i < len(tiers); i++ {
		lo, hi := tiers[i-1], tiers[i]
		if lo.MovementIterations() >= hi.MovementIterations() {
			t.Errorf("MovementIterations(%v)=%d not below MovementIterations(%v)=%d",
				lo, lo.MovementIterations(), hi, hi.MovementIterations())
		}
	}
	for _, tier := range Tiers() {
		if tier.MovementIterations() < 1 {
			t.Errorf("MovementIterations(%v) = %d, want >= 1", tier, tier.MovementIterations())
		}
	}
}

func TestChargeThresholdModifierStrictlyDecreasing(t *testing.T) {
	tiers := Tiers()
	for i := 1; i < len(tiers); i++ {
		lo, hi := tiers[i-1], tiers[i]
		if lo.ChargeThresholdModifier() <= hi.ChargeThresholdModifier() {
			t.Errorf("ChargeThresholdModifier(%v)=%v not above %v's %v",
				lo, lo.ChargeThresholdModifier(), hi, hi.ChargeThresholdModifier())
		}
	}
	for _, tier := range Tiers() {
		if tier.ChargeThresholdModifier() <= 0 {
			t.Errorf("ChargeThresholdModifier(%v) = %v, want > 0", tier, tier.ChargeThresholdModifier())
		}
	}
}

func TestCurveDefensiveDefaults(t *testing.T) {
	for _, tier := range []Tier{-1, 4, 99} {
		if got := tier.ScoreNoise(); got != Normal.ScoreNoise() {
			t.Errorf("ScoreNoise(Tier(%d)) = %v, want Normal's %v", int(tier), got, Normal.ScoreNoise())
		}
		if got := tier.MovementIterations(); got != Normal.MovementIterations() {
			t.Errorf("MovementIterations(Tier(%d)) = %d, want Normal's %d", int(tier), got, Normal.MovementIterations())
		}
		if got := tier.ChargeThresholdModifier(); got != Normal.ChargeThresholdModifier() {
			t.Errorf("ChargeThresholdModifier(Tier(%d)) = %v, want Normal's %v", int(tier), got, Normal.ChargeThresholdModifier())
		}
	}
}

func TestConcreteScenarioValues(t *testing.T) {
	if got := Hard.MovementIterations(); got != 5 {
		t.Errorf("MovementIterations(Hard) = %d, want 5", got)
	}
	if got := Competitive.ChargeThresholdModifier(); got != 0.7 {
		t.Errorf("ChargeThresholdModifier(Competitive) = %v, want 0.7", got)
	}
	if Normal.UseStratagems() {
		t.Error("UseStratagems(Normal) = true, want false")
	}
	if !Hard.UseStratagems() {
		t.Error("UseStratagems(Hard) = false, want true")
	}
	if got := Competitive.Name(); got != "Competitive" {
		t.Errorf("Name(Competitive) = %q, want %q", got, "Competitive")
	}
}

func TestPolicyForMatchesIndividualLookups(t *testing.T) {
	for _, tier := range Tiers() {
		p := PolicyFor(tier)

		if p.Tier != tier {
			t.Errorf("PolicyFor(%v).Tier = %v", tier, p.Tier)
		}
		if p.RandomActions != tier.UseRandomActions() ||
			p.Stratagems != tier.UseStratagems() ||
			p.CoordinatedPlanning != tier.UseCoordinatedPlanning() ||
			p.FocusFire != tier.UseFocusFire() ||
			p.ThreatPositioning != tier.UseThreatPositioning() ||
			p.TradeAnalysis != tier.UseTradeAnalysis() ||
			p.LookAhead != tier.UseLookAhead() ||
			p.WeaponMatching != tier.UseWeaponMatching() ||
			p.SurvivalAssessment != tier.UseSurvivalAssessment() ||
			p.Screening != tier.UseScreening() ||
			p.CounterDeployment != tier.UseCounterDeployment() ||
			p.CommandRerolls != tier.UseCommandRerolls() ||
			p.Overwatch != tier.UseOverwatch() ||
			p.CounterOffensive != tier.UseCounterOffensive() {
			t.Errorf("PolicyFor(%v) flags disagree with per-flag lookups", tier)
		}
		if p.ScoreNoise != tier.ScoreNoise() ||
			p.MovementIterations != tier.MovementIterations() ||
			p.ChargeThresholdModifier != tier.ChargeThresholdModifier() {
			t.Errorf("PolicyFor(%v) parameters disagree with curve lookups", tier)
		}
	}
}

func TestPolicyForReferentialTransparency(t *testing.T) {
	for _, tier := range Tiers() {
		if PolicyFor(tier) != PolicyFor(tier) {
			t.Errorf("PolicyFor(%v) not stable across calls", tier)
		}
	}
}
