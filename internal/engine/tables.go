package engine

import "github.com/voidmarch/combat/internal/combat"

// --- Fixed lookup tables over the closed action/body-part sets ----------

// StaminaCost returns the stamina price of an action. Unknown actions use
// the basic-attack cost.
func StaminaCost(a combat.Action) float64 {
	switch a {
	case combat.ActionBasicAttack:
		return 5
	case combat.ActionStrongAttack:
		return 15
	case combat.ActionFastAttack:
		return 3
	case combat.ActionBlock:
		return 2
	case combat.ActionDodge:
		return 8
	case combat.ActionParry:
		return 6
	case combat.ActionRiposte:
		return 10
	case combat.ActionFeint:
		return 4
	case combat.ActionKick:
		return 7
	case combat.ActionThrust:
		return 5
	default:
		return 5
	}
}

// attackHitBonus is the to-hit adjustment per attack action.
func attackHitBonus(a combat.Action) float64 {
	switch a {
	case combat.ActionStrongAttack:
		return -0.15
	case combat.ActionFastAttack:
		return 0.10
	case combat.ActionFeint:
		return 0.20
	default:
		return 0
	}
}

// attackDamageMultiplier scales weapon damage per attack action.
func attackDamageMultiplier(a combat.Action) float64 {
	switch a {
	case combat.ActionStrongAttack:
		return 1.5
	case combat.ActionFastAttack:
		return 0.7
	default:
		return 1.0
	}
}

// bodyHitEntry pairs a body part with its share of the hit distribution.
type bodyHitEntry struct {
	part   combat.BodyPart
	chance float64
}

// bodyHitTable is the weighted categorical distribution over hit
// locations; sampling walks the cumulative sum and defaults to the torso
// on residual rounding.
var bodyHitTable = []bodyHitEntry{
	{combat.BodyHead, 0.10},
	{combat.BodyTorso, 0.40},
	{combat.BodyLeftArm, 0.15},
	{combat.BodyRightArm, 0.15},
	{combat.BodyLeftLeg, 0.10},
	{combat.BodyRightLeg, 0.10},
}

// bodyDamageMultiplier scales damage by hit location.
func bodyDamageMultiplier(part combat.BodyPart) float64 {
	switch {
	case part == combat.BodyHead:
		return 2.0
	case part.IsArm():
		return 0.8
	case part.IsLeg():
		return 0.7
	default:
		return 1.0
	}
}

// defenseReduction is the fixed damage reduction granted by a successful
// defensive action; dodge negates the hit entirely.
func defenseReduction(a combat.Action) float64 {
	switch a {
	case combat.ActionBlock:
		return 0.5
	case combat.ActionDodge:
		return 1.0
	case combat.ActionParry:
		return 0.7
	default:
		return 0.3
	}
}

// defenseChanceBonus is the success-chance adjustment per defensive action.
func defenseChanceBonus(a combat.Action) float64 {
	switch a {
	case combat.ActionBlock:
		return 0.2
	case combat.ActionDodge:
		return 0.1
	case combat.ActionParry:
		return 0.15
	default:
		return 0
	}
}

// WeaponDegradation wears a weapon down after it was swung. Cheap weapons
// wear fast, fine ones slowly.
func WeaponDegradation(w *combat.Weapon, action combat.Action) {
	if w == nil {
		return
	}
	rate := 0.5
	switch action {
	case combat.ActionStrongAttack:
		rate = 1.0
	case combat.ActionFastAttack:
		rate = 0.3
	case combat.ActionParry:
		rate = 0.7
	}
	switch w.Quality {
	case combat.QualityWeak:
		rate *= 2.0
	case combat.QualityMasterwork:
		rate *= 0.5
	case combat.QualityLegendary:
		rate *= 0.3
	}
	w.Degrade(rate)
}

// ArmorWearPerHit is the condition lost by armor on every received hit.
const ArmorWearPerHit = 0.5

// ReachAdvantage converts the reach difference between two weapons into a
// hit-chance delta: +0.1 per unit of advantage, -0.05 per unit of
// disadvantage. Bare hands count as reach 1.
func ReachAdvantage(attacker, defender *combat.Weapon) float64 {
	attackerReach := 1
	if attacker != nil {
		attackerReach = attacker.Reach
	}
	defenderReach := 1
	if defender != nil {
		defenderReach = defender.Reach
	}
	diff := attackerReach - defenderReach
	if diff > 0 {
		return 0.1 * float64(diff)
	}
	if diff < 0 {
		return 0.05 * float64(diff)
	}
	return 0
}
