package ai

import "github.com/voidmarch/combat/internal/combat"

// Pattern is the tunable behaviour profile of an NPC archetype.
type Pattern struct {
	Stance             combat.Stance
	AttackProbability  float64
	DefenseProbability float64
	RetreatThreshold   float64 // health percent below which the NPC backs off
	TechniqueUsage     float64
	TargetPriority     string
	AdaptsToOpponent   bool
	IgnoresPain        bool
	MaintainsDistance  bool
}

// Patterns maps each archetype to its behaviour profile. Unknown
// archetypes fall back to the tactical pattern.
func Patterns() map[combat.Archetype]Pattern {
	return map[combat.Archetype]Pattern{
		combat.ArchetypeAggressive: {
			Stance:             combat.StanceAggressive,
			AttackProbability:  0.7,
			DefenseProbability: 0.2,
			RetreatThreshold:   20,
			TechniqueUsage:     0.3,
			TargetPriority:     "weakest",
		},
		combat.ArchetypeDefensive: {
			Stance:             combat.StanceDefensive,
			AttackProbability:  0.3,
			DefenseProbability: 0.6,
			RetreatThreshold:   40,
			TechniqueUsage:     0.1,
			TargetPriority:     "closest",
		},
		combat.ArchetypeTactical: {
			Stance:             combat.StanceBalanced,
			AttackProbability:  0.5,
			DefenseProbability: 0.4,
			RetreatThreshold:   30,
			TechniqueUsage:     0.4,
			TargetPriority:     "most_dangerous",
			AdaptsToOpponent:   true,
		},
		combat.ArchetypeBerserker: {
			Stance:             combat.StanceBerserker,
			AttackProbability:  0.9,
			DefenseProbability: 0.05,
			RetreatThreshold:   5,
			TechniqueUsage:     0.5,
			TargetPriority:     "random",
			IgnoresPain:        true,
		},
		combat.ArchetypeArcher: {
			Stance:             combat.StanceEvasive,
			AttackProbability:  0.6,
			DefenseProbability: 0.3,
			RetreatThreshold:   50,
			TechniqueUsage:     0.3,
			TargetPriority:     "furthest",
			MaintainsDistance:  true,
		},
	}
}

// PatternFor resolves an archetype's behaviour profile, defaulting to
// tactical for anything unrecognized.
func PatternFor(a combat.Archetype) Pattern {
	if p, ok := Patterns()[a]; ok {
		return p
	}
	return Patterns()[combat.ArchetypeTactical]
}
