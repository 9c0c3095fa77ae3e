package difficulty

// Capability flags. Each predicate is a pure function of the tier: a
// plain ordinal threshold, or an exact match for the two behaviors that
// are intentionally exclusive to one end of the scale (random fallback
// at the bottom, expensive planning modes at the top). None of them
// consult game state, and none of them normalize out-of-range input —
// an invalid ordinal simply fails every threshold it does not reach.

// UseRandomActions reports whether the AI picks actions at random,
// bypassing scoring entirely. Easy only.
func (t Tier) UseRandomActions() bool { return t == Easy }

// UseStratagems reports whether the AI spends command points on
// reactive and proactive stratagems.
func (t Tier) UseStratagems() bool { return t >= Hard }

// UseCoordinatedPlanning reports whether movement, shooting and charge
// decisions are planned as one coordinated sequence instead of
// phase-by-phase.
func (t Tier) UseCoordinatedPlanning() bool { return t >= Hard }

// UseFocusFire reports whether multiple units concentrate fire to
// finish wounded targets.
func (t Tier) UseFocusFire() bool { return t >= Normal }

// UseThreatPositioning reports whether movement scoring accounts for
// enemy threat ranges.
func (t Tier) UseThreatPositioning() bool { return t >= Normal }

// UseTradeAnalysis reports whether target priority weighs points-trade
// and tempo value. Competitive only.
func (t Tier) UseTradeAnalysis() bool { return t == Competitive }

// UseLookAhead reports whether the AI predicts the opponent's best
// response before committing to an action. Competitive only.
func (t Tier) UseLookAhead() bool { return t == Competitive }

// UseWeaponMatching reports whether weapons are matched to targets by
// expected damage efficiency rather than fired at the nearest enemy.
func (t Tier) UseWeaponMatching() bool { return t >= Normal }

// UseSurvivalAssessment reports whether wounded units evaluate falling
// back instead of fighting on.
func (t Tier) UseSurvivalAssessment() bool { return t >= Hard }

// UseScreening reports whether the AI positions cheap units to deny
// deep-strike zones and screen valuable targets.
func (t Tier) UseScreening() bool { return t >= Hard }

// UseCounterDeployment reports whether deployment reacts to the
// opponent's setup.
func (t Tier) UseCounterDeployment() bool { return t >= Normal }

// UseCommandRerolls reports whether command re-rolls are spent on
// high-value failed rolls.
func (t Tier) UseCommandRerolls() bool { return t >= Normal }

// UseOverwatch reports whether overwatch fire is evaluated against
// enemy charge declarations.
func (t Tier) UseOverwatch() bool { return t >= Normal }

// UseCounterOffensive reports whether the counter-offensive stratagem
// is considered after being charged.
func (t Tier) UseCounterOffensive() bool { return t >= Hard }

// Policy is the complete behavior bundle for one tier: every capability
// flag plus the numeric parameters. It is a snapshot of pure lookups —
// two calls with the same tier always produce identical bundles, so
// callers may freely cache one per match or rebuild it every decision.
type Policy struct {
	Tier Tier

	RandomActions       bool
	Stratagems          bool
	CoordinatedPlanning bool
	FocusFire           bool
	ThreatPositioning   bool
	TradeAnalysis       bool
	LookAhead           bool
	WeaponMatching      bool
	SurvivalAssessment  bool
	Screening           bool
	CounterDeployment   bool
	CommandRerolls      bool
	Overwatch           bool
	CounterOffensive    bool

	ScoreNoise              float64
	MovementIterations      int
	ChargeThresholdModifier float64
}

// PolicyFor materializes the full policy bundle for a tier.
func PolicyFor(t Tier) Policy {
	return Policy{
		Tier:                    t,
		RandomActions:           t.UseRandomActions(),
		Stratagems:              t.UseStratagems(),
		CoordinatedPlanning:     t.UseCoordinatedPlanning(),
		FocusFire:               t.UseFocusFire(),
		ThreatPositioning:       t.UseThreatPositioning(),
		TradeAnalysis:           t.UseTradeAnalysis(),
		LookAhead:               t.UseLookAhead(),
		WeaponMatching:          t.UseWeaponMatching(),
		SurvivalAssessment:      t.UseSurvivalAssessment(),
		Screening:               t.UseScreening(),
		CounterDeployment:       t.UseCounterDeployment(),
		CommandRerolls:          t.UseCommandRerolls(),
		Overwatch:               t.UseOverwatch(),
		CounterOffensive:        t.UseCounterOffensive(),
		ScoreNoise:              t.ScoreNoise(),
		MovementIterations:      t.MovementIterations(),
		ChargeThresholdModifier: t.ChargeThresholdModifier(),
	}
}
