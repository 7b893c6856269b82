package engine

import (
	"fmt"
	"math"

	"github.com/voidmarch/combat/internal/combat"
)

// Resolver turns declared actions into health, pain and injury mutations.
// All randomness is drawn from the injected source so a seeded run replays
// exactly; the environment contributes additive modifiers to every roll.
type Resolver struct {
	rng combat.Source
	env *Environment
}

// NewResolver builds a resolver over the given randomness source. A nil
// environment means no active scene flags.
func NewResolver(rng combat.Source, env *Environment) *Resolver {
	if env == nil {
		env = NewEnvironment()
	}
	return &Resolver{rng: rng, env: env}
}

// Environment exposes the resolver's scene flags for the orchestration
// layer to mutate between turns.
func (r *Resolver) Environment() *Environment { return r.env }

// AttackResult carries the outcome of a single resolved attack.
type AttackResult struct {
	Hit         bool            `json:"hit"`
	Damage      float64         `json:"damage"`
	BodyPart    combat.BodyPart `json:"body_part"`
	Injury      *combat.Injury  `json:"injury,omitempty"`
	PainCaused  float64         `json:"pain_caused"`
	Critical    bool            `json:"critical"`
	Description string          `json:"description"`
}

// clampChance keeps success probabilities inside [0.05, 0.95]: even a
// hopeless underdog keeps a sliver of a chance, and no one is untouchable.
func clampChance(p float64) float64 {
	if p < 0.05 {
		return 0.05
	}
	if p > 0.95 {
		return 0.95
	}
	return p
}

// CalculateInitiative rolls skill + d20 for each side, docking 5 for pain
// over 50 and 10 for exhaustion over 70. Strictly greater wins; ties favor
// the defender.
func (r *Resolver) CalculateInitiative(aStats, dStats *combat.CombatStats, aSkill, dSkill int) (attackerFirst bool, text string) {
	aRoll := r.initiativeRoll(aStats, aSkill)
	dRoll := r.initiativeRoll(dStats, dSkill)
	if aRoll > dRoll {
		return true, fmt.Sprintf("attacker seizes the initiative (%d vs %d)", aRoll, dRoll)
	}
	return false, fmt.Sprintf("defender reacts first (%d vs %d)", dRoll, aRoll)
}

func (r *Resolver) initiativeRoll(stats *combat.CombatStats, skill int) int {
	roll := skill + r.rng.Intn(20) + 1
	if stats.Pain > 50 {
		roll -= 5
	}
	if stats.Exhaustion > 70 {
		roll -= 10
	}
	return roll
}

// PerformAttack resolves one attack action. When the attacker cannot pay
// the action's stamina cost it returns executed=false with nothing
// mutated. A miss is executed=true with Hit=false. On a hit the result
// carries the mitigated damage, the struck body part, the pain spike and,
// for damage over 5, the wound to attach to the defender.
//
// Draw order is fixed: hit roll, hit location, damage variance, critical
// check, pain variance.
func (r *Resolver) PerformAttack(aStats, dStats *combat.CombatStats, aSkill, dSkill int, action combat.Action, weaponDamage float64, dt combat.DamageType) (executed bool, result AttackResult) {
	cost := StaminaCost(action)
	if aStats.Stamina < cost {
		return false, AttackResult{Description: "too exhausted to attack"}
	}
	aStats.Stamina -= cost
	aStats.AddExhaustion(cost * 0.1)

	env := r.env.Modifiers()

	hitChance := 0.5 +
		float64(aSkill-dSkill)/100.0 +
		attackHitBonus(action) -
		aStats.Pain/200.0 -
		aStats.Exhaustion/300.0 +
		env.Accuracy
	if r.rng.Float64() > clampChance(hitChance) {
		return true, AttackResult{Description: "the attack misses"}
	}

	part := r.rollBodyPart()

	damage := weaponDamage *
		attackDamageMultiplier(action) *
		bodyDamageMultiplier(part) *
		(0.8 + 0.4*r.rng.Float64()) *
		aStats.DamageMultiplier *
		(1 + env.Damage)

	critical := false
	critChance := 0.05 + float64(aSkill-dSkill)/500.0
	if r.rng.Float64() < critChance {
		damage *= 2
		critical = true
	}

	damage *= 1 - math.Min(0.8, dStats.DefenseMultiplier)
	damage = math.Round(damage*10) / 10

	pain := combat.PainFromDamage(damage, part, dt, r.rng)

	var injury *combat.Injury
	if damage > 5 {
		injury = combat.NewInjury(part, damage, dt)
	}

	return true, AttackResult{
		Hit:         true,
		Damage:      damage,
		BodyPart:    part,
		Injury:      injury,
		PainCaused:  pain,
		Critical:    critical,
		Description: describeHit(part, damage, critical),
	}
}

// rollBodyPart samples the weighted hit-location table by cumulative sum,
// defaulting to the torso on residual rounding.
func (r *Resolver) rollBodyPart() combat.BodyPart {
	draw := r.rng.Float64()
	cumulative := 0.0
	for _, entry := range bodyHitTable {
		cumulative += entry.chance
		if draw < cumulative {
			return entry.part
		}
	}
	return combat.BodyTorso
}

// PerformDefense resolves one defensive reaction. An unaffordable action
// fails silently with zero reduction and no stamina deducted; otherwise
// the cost is paid whether or not the defense lands.
func (r *Resolver) PerformDefense(dStats *combat.CombatStats, skill int, action combat.Action) (success bool, reduction float64) {
	cost := StaminaCost(action)
	if dStats.Stamina < cost {
		return false, 0
	}
	dStats.Stamina -= cost

	env := r.env.Modifiers()
	chance := 0.3 +
		float64(skill)/200.0 +
		defenseChanceBonus(action) -
		dStats.Pain/300.0 -
		dStats.Exhaustion/400.0 +
		env.Defense
	if r.rng.Float64() > clampChance(chance) {
		return false, 0
	}
	return true, defenseReduction(action)
}

// ApplyDamage commits a resolved hit to the defender's stat block: health
// drops, pain rises, heavy head hits stun, a bleeding wound feeds the
// bleeding aggregate. The returned description narrates the toll.
func (r *Resolver) ApplyDamage(stats *combat.CombatStats, damage, pain float64, part combat.BodyPart, dt combat.DamageType, injury *combat.Injury) string {
	stats.ApplyHealthDelta(-damage)
	stats.AddPain(pain)

	if !stats.IsConscious {
		if stats.Health <= 0 {
			return "collapses, mortally wounded"
		}
		return "loses consciousness from the pain"
	}

	desc := ""
	if part == combat.BodyHead && damage > 15 {
		stats.IsStunned = true
		stats.StunDuration = r.rng.Intn(3) + 1
		desc += "is stunned by the blow; "
	}
	switch {
	case part == combat.BodyHead && damage > 10:
		desc += "staggers with dizziness"
	case part == combat.BodyTorso && damage > 20:
		desc += "doubles over, winded"
	case part.IsArm() && damage > 15:
		desc += "can barely hold the weapon"
	case part.IsLeg() && damage > 15:
		desc += "limps heavily"
	default:
		desc += "absorbs the hit"
	}

	if injury != nil && injury.Bleeding {
		stats.IsBleeding = true
		stats.TotalBleedingRate += injury.BleedingRate
		desc += ", blood flowing freely"
	}
	return desc
}

func describeHit(part combat.BodyPart, damage float64, critical bool) string {
	where := map[combat.BodyPart]string{
		combat.BodyHead:     "the head",
		combat.BodyTorso:    "the torso",
		combat.BodyLeftArm:  "the left arm",
		combat.BodyRightArm: "the right arm",
		combat.BodyLeftLeg:  "the left leg",
		combat.BodyRightLeg: "the right leg",
	}[part]
	if critical {
		return fmt.Sprintf("a devastating strike to %s for %.1f damage", where, damage)
	}
	return fmt.Sprintf("a hit to %s for %.1f damage", where, damage)
}
