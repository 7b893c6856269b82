package engine

import "github.com/voidmarch/combat/internal/combat"

// DefaultTechniques is the built-in maneuver catalog. A JSON catalog
// loaded through internal/config can replace or extend it.
func DefaultTechniques() []combat.Technique {
	return []combat.Technique{
		{
			Name:             "horizontal_slash",
			Tier:             combat.TierBasic,
			WeaponClasses:    []combat.WeaponClass{combat.WeaponShortSwords, combat.WeaponLongSwords},
			SkillRequirement: 5,
			StaminaCost:      8,
			DamageMultiplier: 1.2,
			Description:      "a wide horizontal cut",
		},
		{
			Name:             "precise_thrust",
			Tier:             combat.TierBasic,
			WeaponClasses:    []combat.WeaponClass{combat.WeaponShortSwords, combat.WeaponLongSwords, combat.WeaponDaggers},
			SkillRequirement: 10,
			StaminaCost:      10,
			DamageMultiplier: 1.5,
			AccuracyModifier: 0.15,
			CriticalBonus:    0.2,
			Description:      "a precise thrust at a weak point",
		},
		{
			Name:             "spinning_dance",
			Tier:             combat.TierCombo,
			WeaponClasses:    []combat.WeaponClass{combat.WeaponLongSwords, combat.WeaponGreatSwords},
			SkillRequirement: 25,
			StaminaCost:      20,
			DamageMultiplier: 2.0,
			ComboChain:       []combat.Action{combat.ActionBasicAttack, combat.ActionBasicAttack},
			SpecialEffects:   map[string]float64{"area_damage": 1, "dizzy_chance": 0.3},
			Description:      "a series of spinning cuts",
		},
		{
			Name:             "master_strike",
			Tier:             combat.TierMaster,
			WeaponClasses:    []combat.WeaponClass{combat.WeaponLongSwords},
			SkillRequirement: 50,
			StaminaCost:      30,
			DamageMultiplier: 3.0,
			CriticalBonus:    0.5,
			SpecialEffects:   map[string]float64{"armor_penetration": 0.5, "fear": 0.3},
			Description:      "a perfect strike that slips past armor",
		},
		{
			Name:             "cleave",
			Tier:             combat.TierBasic,
			WeaponClasses:    []combat.WeaponClass{combat.WeaponAxes, combat.WeaponGreatAxes},
			SkillRequirement: 8,
			StaminaCost:      15,
			DamageMultiplier: 1.8,
			SpecialEffects:   map[string]float64{"bleeding_chance": 0.7},
			Description:      "a heavy cut that opens wounds",
		},
		{
			Name:             "piercing_shot",
			Tier:             combat.TierSpecial,
			WeaponClasses:    []combat.WeaponClass{combat.WeaponBows, combat.WeaponCrossbows},
			SkillRequirement: 15,
			StaminaCost:      12,
			DamageMultiplier: 1.5,
			SpecialEffects:   map[string]float64{"armor_penetration": 0.7},
			Description:      "an arrow driven through armor",
		},
		{
			Name:             "knockout",
			Tier:             combat.TierSpecial,
			WeaponClasses:    []combat.WeaponClass{combat.WeaponFists, combat.WeaponClubs},
			SkillRequirement: 20,
			StaminaCost:      25,
			DamageMultiplier: 2.0,
			SpecialEffects:   map[string]float64{"stun_duration": 2, "target_head": 1},
			Description:      "a crushing blow to the head",
		},
	}
}

// FindTechnique looks a technique up by name in a catalog.
func FindTechnique(catalog []combat.Technique, name string) *combat.Technique {
	for i := range catalog {
		if catalog[i].Name == name {
			return &catalog[i]
		}
	}
	return nil
}
