package game

import "math/rand"

// RollD6 rolls one d6 with the given source.
func RollD6(rng *rand.Rand) int {
	return rng.Intn(6) + 1
}

// Roll2D6 rolls two d6 and returns their sum.
func Roll2D6(rng *rand.Rand) int {
	return RollD6(rng) + RollD6(rng)
}

// d6AtLeast returns the probability of rolling target+ on one d6.
// Ones always fail and sixes always succeed.
func d6AtLeast(target int) float64 {
	if target <= 1 {
		target = 2
	}
	if target > 6 {
		return 0
	}
	return float64(7-target) / 6.0
}

// HitProb returns the probability that one attack with the given skill
// hits.
func HitProb(skill int) float64 {
	return d6AtLeast(skill)
}

// WoundTarget returns the d6 result needed for a hit at strength s to
// wound a target of toughness t, per the standard chart.
func WoundTarget(s, t int) int {
	switch {
	case s >= 2*t:
		return 2
	case s > t:
		return 3
	case s == t:
		return 4
	case 2*s <= t:
		return 6
	default:
		return 5
	}
}

// WoundProb returns the probability that a hit at strength s wounds a
// target of toughness t.
func WoundProb(s, t int) float64 {
	return d6AtLeast(WoundTarget(s, t))
}

// SaveFailProb returns the probability the defender fails its armor
// save after AP is applied.
func SaveFailProb(save, ap int) float64 {
	modified := save + ap
	if modified > 6 {
		return 1
	}
	return 1 - d6AtLeast(modified)
}

// ExpectedDamage returns the expected wounds w inflicts on target per
// full round of attacks.
func ExpectedDamage(w Weapon, target *Unit) float64 {
	perAttack := HitProb(w.Skill) *
		WoundProb(w.Strength, target.Toughness) *
		SaveFailProb(target.Save, w.AP) *
		float64(w.Damage)
	return perAttack * float64(w.Attacks)
}

// ChargeSuccessProb returns the probability that 2d6 meets or exceeds
// the needed distance.
func ChargeSuccessProb(distance float64) float64 {
	need := int(distance)
	if float64(need) < distance {
		need++
	}
	if need <= 2 {
		return 1
	}
	if need > 12 {
		return 0
	}
	// Ways to roll >= need on 2d6 out of 36.
	ways := 0
	for a := 1; a <= 6; a++ {
		for b := 1; b <= 6; b++ {
			if a+b >= need {
				ways++
			}
		}
	}
	return float64(ways) / 36.0
}
