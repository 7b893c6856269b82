package combat

// DamageType classifies how a wound was inflicted. It drives pain
// multipliers, bleeding chances and healing-time modifiers.
type DamageType string

const (
	DamageCut    DamageType = "cut"
	DamagePierce DamageType = "pierce"
	DamageBlunt  DamageType = "blunt"
	DamageMagic  DamageType = "magic"
	DamageFall   DamageType = "fall"
	DamagePoison DamageType = "poison"
	DamageBurn   DamageType = "burn"
)

// ValidDamageType reports whether dt is one of the known damage types.
func ValidDamageType(dt DamageType) bool {
	switch dt {
	case DamageCut, DamagePierce, DamageBlunt, DamageMagic, DamageFall, DamagePoison, DamageBurn:
		return true
	}
	return false
}

// BodyPart identifies a hit location on a combatant.
type BodyPart string

const (
	BodyHead     BodyPart = "head"
	BodyTorso    BodyPart = "torso"
	BodyLeftArm  BodyPart = "left_arm"
	BodyRightArm BodyPart = "right_arm"
	BodyLeftLeg  BodyPart = "left_leg"
	BodyRightLeg BodyPart = "right_leg"
)

// AllBodyParts returns the closed set of hit locations in canonical order.
func AllBodyParts() []BodyPart {
	return []BodyPart{BodyHead, BodyTorso, BodyLeftArm, BodyRightArm, BodyLeftLeg, BodyRightLeg}
}

// IsArm reports whether the part is either arm.
func (p BodyPart) IsArm() bool { return p == BodyLeftArm || p == BodyRightArm }

// IsLeg reports whether the part is either leg.
func (p BodyPart) IsLeg() bool { return p == BodyLeftLeg || p == BodyRightLeg }

// Action is a string alias representing a combatant's chosen action.
// Using a dedicated type instead of plain string makes code safer and
// self-documenting.
type Action string

const (
	ActionNone         Action = ""
	ActionBasicAttack  Action = "basic_attack"
	ActionStrongAttack Action = "strong_attack"
	ActionFastAttack   Action = "fast_attack"
	ActionBlock        Action = "block"
	ActionDodge        Action = "dodge"
	ActionParry        Action = "parry"
	ActionRiposte      Action = "riposte"
	ActionFeint        Action = "feint"
	ActionKick         Action = "kick"
	ActionThrust       Action = "thrust"
)

// IsAttack reports whether the action resolves as an attack roll.
func (a Action) IsAttack() bool {
	switch a {
	case ActionBasicAttack, ActionStrongAttack, ActionFastAttack, ActionFeint, ActionKick, ActionThrust:
		return true
	}
	return false
}

// IsDefense reports whether the action is a defensive reaction.
func (a Action) IsDefense() bool {
	switch a {
	case ActionBlock, ActionDodge, ActionParry, ActionRiposte:
		return true
	}
	return false
}

// WeaponClass groups weapons that share handling and skill.
type WeaponClass string

const (
	WeaponFists       WeaponClass = "fists"
	WeaponDaggers     WeaponClass = "daggers"
	WeaponShortSwords WeaponClass = "short_swords"
	WeaponLongSwords  WeaponClass = "long_swords"
	WeaponGreatSwords WeaponClass = "great_swords"
	WeaponAxes        WeaponClass = "axes"
	WeaponGreatAxes   WeaponClass = "great_axes"
	WeaponHammers     WeaponClass = "hammers"
	WeaponWarHammers  WeaponClass = "war_hammers"
	WeaponSpears      WeaponClass = "spears"
	WeaponHalberds    WeaponClass = "halberds"
	WeaponClubs       WeaponClass = "clubs"
	WeaponStaves      WeaponClass = "staves"
	WeaponBows        WeaponClass = "bows"
	WeaponCrossbows   WeaponClass = "crossbows"
	WeaponShields     WeaponClass = "shields"
)

// Ranged reports whether the class attacks at distance.
func (w WeaponClass) Ranged() bool { return w == WeaponBows || w == WeaponCrossbows }

// Quality is a weapon or armor craftsmanship tier.
type Quality string

const (
	QualityBroken     Quality = "broken"
	QualityWeak       Quality = "weak"
	QualityNormal     Quality = "normal"
	QualityGood       Quality = "good"
	QualityMasterwork Quality = "masterwork"
	QualityLegendary  Quality = "legendary"
)

// DamageMultiplier returns the tier's contribution to effective damage.
func (q Quality) DamageMultiplier() float64 {
	switch q {
	case QualityBroken:
		return 0.5
	case QualityWeak:
		return 0.7
	case QualityGood:
		return 1.2
	case QualityMasterwork:
		return 1.5
	case QualityLegendary:
		return 2.0
	default:
		return 1.0
	}
}

// Archetype selects an AI behaviour pattern for an NPC combatant.
type Archetype string

const (
	ArchetypeAggressive Archetype = "aggressive"
	ArchetypeDefensive  Archetype = "defensive"
	ArchetypeTactical   Archetype = "tactical"
	ArchetypeBerserker  Archetype = "berserker"
	ArchetypeArcher     Archetype = "archer"
)

// Stance adjusts a combatant's defensive posture.
type Stance string

const (
	StanceNeutral    Stance = "neutral"
	StanceDefensive  Stance = "defensive"
	StanceAggressive Stance = "aggressive"
	StanceBalanced   Stance = "balanced"
	StanceBerserker  Stance = "berserker"
	StanceEvasive    Stance = "evasive"
	StanceCounter    Stance = "counter"
)

// Source supplies the randomness for a combat run. A *math/rand.Rand
// satisfies it; tests inject scripted or seeded sources so scenario
// replay stays deterministic.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Encounter lifecycle values.
const (
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"

	OutcomeVictory = "victory"
	OutcomeDefeat  = "defeat"
	OutcomeFled    = "fled"
)
