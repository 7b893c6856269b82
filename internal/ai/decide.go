package ai

import "github.com/voidmarch/combat/internal/combat"

// Decision is the NPC's chosen move for a turn: an action, optionally
// upgraded to a technique.
type Decision struct {
	Action    combat.Action
	Technique *combat.Technique
}

// ChooseAction picks the NPC's move from its archetype pattern, the
// opponent's observed habits and the current stat snapshot. All draws come
// from the injected source.
func ChooseAction(npc, opponent *combat.Combatant, catalog []combat.Technique, rng combat.Source) Decision {
	pattern := PatternFor(npc.Archetype)

	// Back off when badly hurt.
	if npc.Stats.HealthPercent()*100 < pattern.RetreatThreshold {
		if rng.Float64() < 0.7 {
			return Decision{Action: combat.ActionDodge}
		}
	}

	// A tactical fighter leans on an opponent who turtles.
	attackProb := pattern.AttackProbability
	if pattern.AdaptsToOpponent {
		if npc.Memory.Analyze().DefensiveTendency > 0.5 {
			attackProb *= 1.3
		}
	}

	roll := rng.Float64()
	switch {
	case roll < attackProb:
		if rng.Float64() < pattern.TechniqueUsage && npc.Weapon != nil {
			if t := availableTechnique(npc, catalog, rng); t != nil {
				return Decision{Action: combat.ActionBasicAttack, Technique: t}
			}
		}
		if npc.Stats.Stamina > 20 {
			attacks := []combat.Action{combat.ActionBasicAttack, combat.ActionStrongAttack}
			return Decision{Action: attacks[rng.Intn(len(attacks))]}
		}
		return Decision{Action: combat.ActionFastAttack}

	case roll < attackProb+pattern.DefenseProbability:
		defenses := []combat.Action{combat.ActionBlock, combat.ActionParry, combat.ActionDodge}
		return Decision{Action: defenses[rng.Intn(len(defenses))]}

	default:
		others := []combat.Action{combat.ActionFeint, combat.ActionKick}
		return Decision{Action: others[rng.Intn(len(others))]}
	}
}

// availableTechnique picks a random technique the NPC can currently pay
// for and wield.
func availableTechnique(npc *combat.Combatant, catalog []combat.Technique, rng combat.Source) *combat.Technique {
	var usable []*combat.Technique
	skill := npc.WeaponSkill()
	for i := range catalog {
		t := &catalog[i]
		if t.CanExecute(skill, npc.Stats.Stamina, npc.Weapon) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return nil
	}
	return usable[rng.Intn(len(usable))]
}

// ChooseStance returns the archetype's preferred stance.
func ChooseStance(a combat.Archetype) combat.Stance {
	return PatternFor(a).Stance
}
