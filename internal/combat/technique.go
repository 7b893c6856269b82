package combat

// TechniqueTier ranks techniques from bread-and-butter moves to legendary
// maneuvers.
type TechniqueTier string

const (
	TierBasic     TechniqueTier = "basic"
	TierCombo     TechniqueTier = "combo"
	TierSpecial   TechniqueTier = "special"
	TierMaster    TechniqueTier = "master"
	TierLegendary TechniqueTier = "legendary"
)

// Technique is a skill- and stamina-gated special maneuver. ComboChain, when
// set, lists the actions that must precede the technique for it to be
// offered as a follow-up.
type Technique struct {
	Name             string             `json:"name"`
	Tier             TechniqueTier      `json:"tier"`
	WeaponClasses    []WeaponClass      `json:"weapon_classes"`
	SkillRequirement int                `json:"skill_requirement"`
	StaminaCost      float64            `json:"stamina_cost"`
	DamageMultiplier float64            `json:"damage_multiplier"`
	AccuracyModifier float64            `json:"accuracy_modifier"`
	CriticalBonus    float64            `json:"critical_bonus"`
	SpecialEffects   map[string]float64 `json:"special_effects,omitempty"`
	ComboChain       []Action           `json:"combo_chain,omitempty"`
	Description      string             `json:"description,omitempty"`
}

// CanExecute checks the skill, stamina and weapon gates. A nil weapon is
// allowed only when the technique has no weapon-class restriction that the
// bare hands fail to meet.
func (t *Technique) CanExecute(skillLevel int, stamina float64, weapon *Weapon) bool {
	if skillLevel < t.SkillRequirement {
		return false
	}
	if stamina < t.StaminaCost {
		return false
	}
	return t.AllowsWeapon(weapon)
}

// AllowsWeapon checks only the weapon-class gate. Bare hands pass.
func (t *Technique) AllowsWeapon(weapon *Weapon) bool {
	if weapon == nil {
		return true
	}
	return t.allowsClass(weapon.Class)
}

func (t *Technique) allowsClass(class WeaponClass) bool {
	for _, c := range t.WeaponClasses {
		if c == class {
			return true
		}
	}
	return false
}
