package combat

// Injury is a single wound on a body part. A combatant may carry several
// injuries per part; each one heals, bleeds and festers independently.
type Injury struct {
	BodyPart      BodyPart   `json:"body_part"`
	Severity      float64    `json:"severity"` // 0-100
	DamageType    DamageType `json:"damage_type"`
	Bleeding      bool       `json:"bleeding"`
	BleedingRate  float64    `json:"bleeding_rate"` // health per hour
	Infected      bool       `json:"infected"`
	Treated       bool       `json:"treated"`
	TimeToHeal    float64    `json:"time_to_heal"` // game minutes
	PermanentScar bool       `json:"permanent_scar"`
}

// NewInjury derives a wound from the damage that caused it. Cuts and
// piercing wounds over 10 damage bleed; burns and poison take longer to
// close.
func NewInjury(part BodyPart, damage float64, dt DamageType) *Injury {
	severity := damage * 3
	if severity > 100 {
		severity = 100
	}

	bleeding := false
	bleedingRate := 0.0
	if (dt == DamageCut || dt == DamagePierce) && damage > 10 {
		bleeding = true
		bleedingRate = damage / 20.0
	}

	timeToHeal := severity * 10
	switch dt {
	case DamageBurn:
		timeToHeal *= 1.5
	case DamagePoison:
		timeToHeal *= 2.0
	}

	return &Injury{
		BodyPart:     part,
		Severity:     severity,
		DamageType:   dt,
		Bleeding:     bleeding,
		BleedingRate: bleedingRate,
		TimeToHeal:   timeToHeal,
	}
}

// Update advances the wound by deltaMinutes of game time. It returns the
// blood lost over the interval and whether the wound finished healing.
//
// A treated wound heals at double rate even when infected; the treated
// check deliberately takes precedence over the infection penalty.
func (in *Injury) Update(deltaMinutes float64, rng Source) (bloodLoss float64, healed bool) {
	if deltaMinutes < 0 {
		deltaMinutes = 0
	}

	if in.Bleeding && !in.Treated {
		bloodLoss = in.BleedingRate * (deltaMinutes / 60.0)
		// Bleeding can stop on its own.
		if rng.Float64() < 0.05 {
			in.Bleeding = false
			in.BleedingRate = 0
		}
	}

	if in.TimeToHeal > 0 {
		healingRate := 1.0
		if in.Treated {
			healingRate = 2.0
		} else if in.Infected {
			healingRate = 0.3
		}
		in.TimeToHeal -= deltaMinutes * healingRate
		if in.TimeToHeal <= 0 {
			in.TimeToHeal = 0
			if in.Severity > 50 && rng.Float64() < 0.3 {
				in.PermanentScar = true
			}
			return bloodLoss, true
		}
	}

	if !in.Treated && !in.Infected {
		infectionChance := 0.001 * deltaMinutes
		if in.Severity > 30 {
			infectionChance *= 2
		}
		if rng.Float64() < infectionChance {
			in.Infected = true
			in.TimeToHeal *= 1.5
		}
	}

	return bloodLoss, false
}

// TotalInjurySeverity sums severity across a set of injuries.
func TotalInjurySeverity(injuries []*Injury) float64 {
	total := 0.0
	for _, in := range injuries {
		total += in.Severity
	}
	return total
}
