package difficulty

// Numeric parameter curves. Each is a table lookup indexed by ordinal
// with an explicit fallback to the Normal row on out-of-range input, so
// an unrecognized tier degrades to default behavior instead of
// crashing or silently disabling the AI. Callers never need to
// validate a tier before calling these.

var scoreNoise = [...]float64{
	Easy:        100.0,
	Normal:      1.5,
	Hard:        0.5,
	Competitive: 0.0,
}

var movementIterations = [...]int{
	Easy:        1,
	Normal:      3,
	Hard:        5,
	Competitive: 8,
}

var chargeThresholdModifier = [...]float64{
	Easy:        2.0,
	Normal:      1.0,
	Hard:        0.85,
	Competitive: 0.7,
}

// ScoreNoise returns the magnitude of the random perturbation added to
// an action's computed score before comparison. At Easy the noise
// dominates genuine score differences, effectively randomizing the
// pick; at Competitive it is exactly zero, so selection is
// deterministic up to external tie-breaks.
func (t Tier) ScoreNoise() float64 {
	if !t.Valid() {
		return scoreNoise[Normal]
	}
	return scoreNoise[t]
}

// MovementIterations returns how many candidate positions the movement
// optimizer samples before picking the best. Strictly increasing with
// tier, trading compute for positioning quality.
func (t Tier) MovementIterations() int {
	if !t.Valid() {
		return movementIterations[Normal]
	}
	return movementIterations[t]
}

// ChargeThresholdModifier returns the multiplier applied to the
// baseline charge-viability threshold. Values below 1.0 make the AI
// willing to commit on lower expected success, so the curve strictly
// decreases with tier.
func (t Tier) ChargeThresholdModifier() float64 {
	if !t.Valid() {
		return chargeThresholdModifier[Normal]
	}
	return chargeThresholdModifier[t]
}
