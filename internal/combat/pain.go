package combat

// maxPainPerHit caps the pain spike from any single hit.
const maxPainPerHit = 40.0

// PainFromDamage converts a damage amount into a pain spike, weighted by
// the hit location and damage type, with ±20% variance. The result is
// capped at 40 per hit.
func PainFromDamage(damage float64, part BodyPart, dt DamageType, rng Source) float64 {
	pain := damage * 2.0 * painPartMultiplier(part) * painTypeMultiplier(dt)
	pain *= 0.8 + 0.4*rng.Float64()
	if pain > maxPainPerHit {
		pain = maxPainPerHit
	}
	return pain
}

func painPartMultiplier(part BodyPart) float64 {
	switch {
	case part == BodyHead:
		return 1.5
	case part.IsArm():
		return 0.9
	case part.IsLeg():
		return 0.8
	default:
		return 1.0
	}
}

func painTypeMultiplier(dt DamageType) float64 {
	switch dt {
	case DamageCut:
		return 1.2
	case DamagePierce:
		return 1.3
	case DamageBlunt:
		return 0.9
	case DamageBurn:
		return 1.5
	case DamagePoison:
		return 0.7
	case DamageFall:
		return 0.8
	default:
		return 1.0
	}
}

// PainPenaltyPercent maps a pain level onto the fixed penalty bands:
// under 30 no penalty, then 15/30/45 percent, and total incapacitation
// at 80 and above.
func PainPenaltyPercent(pain float64) float64 {
	switch {
	case pain < 30:
		return 0
	case pain < 50:
		return 15
	case pain < 70:
		return 30
	case pain < 80:
		return 45
	default:
		return 100
	}
}

// Penalties are fractional reductions per combat channel, each in [0, 0.9].
type Penalties struct {
	Attack   float64 `json:"attack"`
	Defense  float64 `json:"defense"`
	Speed    float64 `json:"speed"`
	Accuracy float64 `json:"accuracy"`
}

// CombatPenalties sums the pain, exhaustion and injury contributions per
// channel. Pain over 30 routes into attack/accuracy/defense, exhaustion
// over 50 into speed/attack/defense, and each injury by its body part.
// Every channel is capped independently at 0.9.
func CombatPenalties(stats *CombatStats, injuries []*Injury) Penalties {
	var p Penalties

	if stats.Pain > 30 {
		over := (stats.Pain - 30) / 100.0
		p.Attack += over * 0.3
		p.Accuracy += over * 0.5
		p.Defense += over * 0.2
	}

	if stats.Exhaustion > 50 {
		over := (stats.Exhaustion - 50) / 100.0
		p.Speed += over * 0.4
		p.Attack += over * 0.2
		p.Defense += over * 0.3
	}

	for _, in := range injuries {
		switch {
		case in.BodyPart == BodyHead:
			p.Accuracy += in.Severity / 200.0
		case in.BodyPart == BodyTorso:
			p.Defense += in.Severity / 300.0
		case in.BodyPart.IsArm():
			p.Attack += in.Severity / 250.0
		case in.BodyPart.IsLeg():
			p.Speed += in.Severity / 200.0
		}
	}

	p.Attack = capPenalty(p.Attack)
	p.Defense = capPenalty(p.Defense)
	p.Speed = capPenalty(p.Speed)
	p.Accuracy = capPenalty(p.Accuracy)
	return p
}

func capPenalty(v float64) float64 {
	if v > 0.9 {
		return 0.9
	}
	return v
}
