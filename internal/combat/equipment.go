package combat

import "fmt"

// Weapon is a value object; it never references its wielder so equipment
// graphs stay acyclic for persistence.
type Weapon struct {
	Name       string             `json:"name"`
	Class      WeaponClass        `json:"class"`
	DamageType DamageType         `json:"damage_type"`
	BaseDamage float64            `json:"base_damage"`
	Speed      int                `json:"speed"` // -3 to +3
	Reach      int                `json:"reach"`
	Weight     float64            `json:"weight"`
	Condition  float64            `json:"condition"` // 0-100
	Quality    Quality            `json:"quality"`
	Techniques []string           `json:"techniques,omitempty"`
	Properties map[string]float64 `json:"properties,omitempty"`
}

// NewWeapon validates weapon data at construction; malformed equipment is
// rejected here rather than patched up during resolution.
func NewWeapon(name string, class WeaponClass, dt DamageType, baseDamage float64, speed, reach int, weight float64, quality Quality) (*Weapon, error) {
	if name == "" {
		return nil, fmt.Errorf("weapon: name is required")
	}
	if !ValidDamageType(dt) {
		return nil, fmt.Errorf("weapon %s: unknown damage type %q", name, dt)
	}
	if baseDamage < 0 {
		return nil, fmt.Errorf("weapon %s: base damage must be non-negative, got %v", name, baseDamage)
	}
	return &Weapon{
		Name:       name,
		Class:      class,
		DamageType: dt,
		BaseDamage: baseDamage,
		Speed:      speed,
		Reach:      reach,
		Weight:     weight,
		Condition:  100,
		Quality:    quality,
	}, nil
}

// EffectiveDamage folds quality tier and wear into the base damage.
func (w *Weapon) EffectiveDamage() float64 {
	return w.BaseDamage * w.Quality.DamageMultiplier() * (w.Condition / 100.0)
}

// Degrade lowers condition by amount. Below 20 condition the weapon's
// quality collapses to broken; repairing condition afterwards does not
// restore the tier.
func (w *Weapon) Degrade(amount float64) {
	w.Condition -= amount
	if w.Condition < 0 {
		w.Condition = 0
	}
	if w.Condition < 20 {
		w.Quality = QualityBroken
	}
}

// Armor carries per-body-part protection and per-damage-type resistances.
// Like Weapon it holds no back-reference to its wearer.
type Armor struct {
	Name            string                 `json:"name"`
	Protection      map[BodyPart]float64   `json:"protection"`
	Weight          float64                `json:"weight"`
	MovementPenalty float64                `json:"movement_penalty"`
	Condition       float64                `json:"condition"`
	Quality         Quality                `json:"quality"`
	Resistances     map[DamageType]float64 `json:"resistances,omitempty"`
}

// NewArmor validates armor data at construction.
func NewArmor(name string, protection map[BodyPart]float64, weight, movementPenalty float64, quality Quality) (*Armor, error) {
	if name == "" {
		return nil, fmt.Errorf("armor: name is required")
	}
	for part, p := range protection {
		if p < 0 {
			return nil, fmt.Errorf("armor %s: negative protection for %s", name, part)
		}
	}
	return &Armor{
		Name:            name,
		Protection:      protection,
		Weight:          weight,
		MovementPenalty: movementPenalty,
		Condition:       100,
		Quality:         quality,
	}, nil
}

// ProtectionFor returns the mitigation offered against a hit on part with
// the given damage type. Unknown resistances default to 1.0.
func (a *Armor) ProtectionFor(part BodyPart, dt DamageType) float64 {
	base := a.Protection[part]
	resistance := 1.0
	if r, ok := a.Resistances[dt]; ok {
		resistance = r
	}
	return base * (a.Condition / 100.0) * resistance
}

// Degrade lowers armor condition; unlike weapons, armor quality never
// collapses from wear.
func (a *Armor) Degrade(amount float64) {
	a.Condition -= amount
	if a.Condition < 0 {
		a.Condition = 0
	}
}
