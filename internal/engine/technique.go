package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/voidmarch/combat/internal/combat"
)

// ErrInvalidTechnique covers unknown technique ids and unmet skill or
// weapon gates. Nothing is mutated when it is returned.
var ErrInvalidTechnique = errors.New("technique requirements not met")

// TechniqueResult carries the outcome of an executed technique.
type TechniqueResult struct {
	Hit         bool     `json:"hit"`
	Damage      float64  `json:"damage"`
	PainCaused  float64  `json:"pain_caused"`
	Effects     []string `json:"effects,omitempty"`
	Description string   `json:"description"`
}

// ExecuteTechnique resolves a special maneuver from attacker to defender.
// Skill and weapon gates failing is an error with no mutation; a missing
// stamina budget returns executed=false; a missed roll still consumed the
// stamina. On a hit the defender's health and pain are mutated directly.
func (r *Resolver) ExecuteTechnique(attacker, defender *combat.Combatant, t *combat.Technique) (executed bool, result TechniqueResult, err error) {
	if t == nil {
		return false, result, ErrInvalidTechnique
	}
	skill := attacker.WeaponSkill()
	if skill < t.SkillRequirement {
		return false, result, fmt.Errorf("%w: %s needs skill %d", ErrInvalidTechnique, t.Name, t.SkillRequirement)
	}
	if !t.AllowsWeapon(attacker.Weapon) {
		return false, result, fmt.Errorf("%w: %s does not suit the equipped weapon", ErrInvalidTechnique, t.Name)
	}
	if attacker.Stats.Stamina < t.StaminaCost {
		result.Description = fmt.Sprintf("not enough stamina for %s", t.Name)
		return false, result, nil
	}
	attacker.Stats.Stamina -= t.StaminaCost

	env := r.env.Modifiers()
	hitChance := 0.5 +
		float64(skill-defender.DefenseSkill())/100.0 +
		t.AccuracyModifier +
		env.Accuracy
	if r.rng.Float64() > clampChance(hitChance) {
		result.Description = fmt.Sprintf("%s misses", t.Name)
		return true, result, nil
	}

	baseDamage := 10.0
	if attacker.Weapon != nil {
		baseDamage = attacker.Weapon.EffectiveDamage()
	}
	damage := baseDamage * t.DamageMultiplier

	if r.rng.Float64() < 0.05+t.CriticalBonus {
		damage *= 2
		result.Effects = append(result.Effects, "critical")
	}

	// Armor penetration lets the fraction of the damage named by the
	// effect slip past the defender's mitigation.
	penetration := t.SpecialEffects["armor_penetration"]
	mitigation := math.Min(0.8, defender.Stats.DefenseMultiplier) * (1 - penetration)
	damage *= 1 - mitigation
	damage = math.Round(damage*10) / 10

	dt := combat.DamageBlunt
	if attacker.Weapon != nil {
		dt = attacker.Weapon.DamageType
	}

	for effect, value := range t.SpecialEffects {
		switch effect {
		case "bleeding_chance":
			if r.rng.Float64() < value {
				defender.Stats.IsBleeding = true
				defender.Stats.TotalBleedingRate += damage / 20.0
				result.Effects = append(result.Effects, "bleeding")
			}
		case "stun_duration":
			defender.Stats.IsStunned = true
			defender.Stats.StunDuration = int(value)
			result.Effects = append(result.Effects, fmt.Sprintf("stun_%d", int(value)))
		case "area_damage":
			result.Effects = append(result.Effects, "area")
		}
	}

	pain := combat.PainFromDamage(damage, combat.BodyTorso, dt, r.rng)
	defender.Stats.ApplyHealthDelta(-damage)
	defender.Stats.AddPain(pain)

	result.Hit = true
	result.Damage = damage
	result.PainCaused = pain
	result.Description = fmt.Sprintf("%s lands for %.1f damage", t.Name, damage)
	return true, result, nil
}

// ComboOpportunity reports the combo-tier technique whose chain matches
// the tail of the combatant's recent actions. The match is a single-step
// suffix comparison, not general sequence mining.
func ComboOpportunity(c *combat.Combatant, catalog []combat.Technique) *combat.Technique {
	for i := range catalog {
		t := &catalog[i]
		if t.Tier != combat.TierCombo || len(t.ComboChain) == 0 {
			continue
		}
		if chainSuffixMatch(c.RecentActions, t.ComboChain) {
			return t
		}
	}
	return nil
}

func chainSuffixMatch(recent, chain []combat.Action) bool {
	if len(recent) < len(chain) {
		return false
	}
	offset := len(recent) - len(chain)
	for i, want := range chain {
		if recent[offset+i] != want {
			return false
		}
	}
	return true
}
