package combat

import "fmt"

// CombatStats is the mutable per-combatant stat block. Health is kept in
// [0, MaxHealth], pain and exhaustion in [0, 100]. Consciousness is a
// derived flag: it drops exactly when pain reaches 80 or health reaches 0.
type CombatStats struct {
	Health     float64 `json:"health"`
	MaxHealth  float64 `json:"max_health"`
	Stamina    float64 `json:"stamina"`
	MaxStamina float64 `json:"max_stamina"`
	Pain       float64 `json:"pain"`
	Exhaustion float64 `json:"exhaustion"`
	Strength   float64 `json:"strength"`
	Agility    float64 `json:"agility"`

	AttackSpeed        float64 `json:"attack_speed"`
	DamageMultiplier   float64 `json:"damage_multiplier"`
	DefenseMultiplier  float64 `json:"defense_multiplier"`
	SpeedMultiplier    float64 `json:"speed_multiplier"`
	AccuracyMultiplier float64 `json:"accuracy_multiplier"`
	CriticalChance     float64 `json:"critical_chance"`

	IsConscious  bool `json:"is_conscious"`
	IsStunned    bool `json:"is_stunned"`
	StunDuration int  `json:"stun_duration"`

	IsBleeding        bool    `json:"is_bleeding"`
	TotalBleedingRate float64 `json:"total_bleeding_rate"`

	VoidEnergy    float64 `json:"void_energy"`
	MaxVoidEnergy float64 `json:"max_void_energy"`
}

// NewCombatStats builds a stat block at full health and stamina. Malformed
// inputs are a fatal precondition violation surfaced here, never clamped
// silently mid-resolution.
func NewCombatStats(maxHealth, maxStamina, strength, agility float64) (*CombatStats, error) {
	if maxHealth <= 0 {
		return nil, fmt.Errorf("combat stats: max health must be positive, got %v", maxHealth)
	}
	if maxStamina <= 0 {
		return nil, fmt.Errorf("combat stats: max stamina must be positive, got %v", maxStamina)
	}
	if strength < 0 || agility < 0 {
		return nil, fmt.Errorf("combat stats: strength and agility must be non-negative")
	}
	return &CombatStats{
		Health:             maxHealth,
		MaxHealth:          maxHealth,
		Stamina:            maxStamina,
		MaxStamina:         maxStamina,
		Strength:           strength,
		Agility:            agility,
		AttackSpeed:        1.0,
		DamageMultiplier:   1.0,
		DefenseMultiplier:  1.0,
		SpeedMultiplier:    1.0,
		AccuracyMultiplier: 1.0,
		IsConscious:        true,
	}, nil
}

// ApplyHealthDelta adjusts health, clamps it to [0, MaxHealth] and refreshes
// the consciousness flag.
func (s *CombatStats) ApplyHealthDelta(delta float64) {
	s.Health += delta
	if s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
	if s.Health < 0 {
		s.Health = 0
	}
	s.refreshConsciousness()
}

// AddPain raises pain, clamps it to [0, 100] and refreshes consciousness.
func (s *CombatStats) AddPain(amount float64) {
	s.Pain += amount
	if s.Pain > 100 {
		s.Pain = 100
	}
	if s.Pain < 0 {
		s.Pain = 0
	}
	s.refreshConsciousness()
}

// AddExhaustion raises long-term fatigue, clamped to [0, 100].
func (s *CombatStats) AddExhaustion(amount float64) {
	s.Exhaustion += amount
	if s.Exhaustion > 100 {
		s.Exhaustion = 100
	}
	if s.Exhaustion < 0 {
		s.Exhaustion = 0
	}
}

// refreshConsciousness drops the conscious flag when pain or health cross
// their thresholds. Regaining consciousness is a separate, probabilistic
// step handled by pain relief.
func (s *CombatStats) refreshConsciousness() {
	if s.Pain >= 80 || s.Health <= 0 {
		s.IsConscious = false
	}
}

// HealthPercent returns health as a fraction of maximum.
func (s *CombatStats) HealthPercent() float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	return s.Health / s.MaxHealth
}

// StaminaPercent returns stamina as a fraction of maximum.
func (s *CombatStats) StaminaPercent() float64 {
	if s.MaxStamina <= 0 {
		return 0
	}
	return s.Stamina / s.MaxStamina
}
