package engine

import (
	"fmt"

	"github.com/voidmarch/combat/internal/combat"
)

// VoidAbility is a supernatural maneuver fueled by void energy and paid
// for in pain. Cooldowns are tracked per combatant, in turns.
type VoidAbility struct {
	Name             string             `json:"name"`
	EnergyCost       float64            `json:"energy_cost"`
	PainIncrease     float64            `json:"pain_increase"`
	Cooldown         int                `json:"cooldown"`
	LevelRequirement int                `json:"level_requirement"`
	Effects          map[string]float64 `json:"effects"`
	Description      string             `json:"description,omitempty"`
}

// Execute spends the caster's void energy and pain to apply the ability's
// effects. Insufficient energy returns executed=false with nothing
// mutated. Target may be nil for self-only abilities.
func (v *VoidAbility) Execute(caster *combat.CombatStats, target *combat.CombatStats) (executed bool, description string) {
	if caster.VoidEnergy < v.EnergyCost {
		return false, fmt.Sprintf("not enough void energy for %s (needs %.0f)", v.Name, v.EnergyCost)
	}
	caster.VoidEnergy -= v.EnergyCost
	caster.AddPain(v.PainIncrease)

	desc := v.Name
	if dmg, ok := v.Effects["damage"]; ok && target != nil {
		target.ApplyHealthDelta(-dmg)
		desc += fmt.Sprintf(": %.0f void damage", dmg)
	}
	if heal, ok := v.Effects["heal"]; ok {
		caster.ApplyHealthDelta(heal)
		desc += fmt.Sprintf(", %.0f health drained back", heal)
	}
	if _, ok := v.Effects["teleport"]; ok {
		desc += ": steps through the shadows"
	}
	if _, ok := v.Effects["reality_tear"]; ok {
		desc += ": reality itself tears open"
	}
	return true, desc
}

// DefaultVoidAbilities is the built-in void walker repertoire.
func DefaultVoidAbilities() []VoidAbility {
	return []VoidAbility{
		{
			Name:             "void_touch",
			EnergyCost:       10,
			PainIncrease:     15,
			Cooldown:         2,
			LevelRequirement: 10,
			Effects:          map[string]float64{"damage": 25, "slow": 2},
			Description:      "a touch saturated with void energy",
		},
		{
			Name:             "shadow_step",
			EnergyCost:       15,
			PainIncrease:     10,
			Cooldown:         3,
			LevelRequirement: 15,
			Effects:          map[string]float64{"teleport": 1, "dodge_bonus": 0.5},
			Description:      "a step through the shadows",
		},
		{
			Name:             "reality_tear",
			EnergyCost:       30,
			PainIncrease:     25,
			Cooldown:         5,
			LevelRequirement: 30,
			Effects:          map[string]float64{"reality_tear": 1, "area_damage": 40, "confusion": 3},
			Description:      "a rupture in the fabric of the world",
		},
		{
			Name:             "void_absorption",
			EnergyCost:       20,
			PainIncrease:     20,
			Cooldown:         4,
			LevelRequirement: 25,
			Effects:          map[string]float64{"damage": 30, "heal": 15},
			Description:      "drains the opponent's life through the void",
		},
	}
}

// FindVoidAbility looks an ability up by name.
func FindVoidAbility(abilities []VoidAbility, name string) *VoidAbility {
	for i := range abilities {
		if abilities[i].Name == name {
			return &abilities[i]
		}
	}
	return nil
}
