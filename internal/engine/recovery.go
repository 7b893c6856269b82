package engine

import "github.com/voidmarch/combat/internal/combat"

// RecoverStamina regenerates stamina over seconds of rest or downtime and
// returns the amount actually regained. Resting also slowly works off
// exhaustion.
func RecoverStamina(stats *combat.CombatStats, resting bool, seconds float64) float64 {
	rate := 0.3
	if resting {
		rate = 1.0
	}
	if stats.Exhaustion > 50 {
		rate *= 0.5
	}
	if stats.Exhaustion > 80 {
		rate *= 0.5
	}
	if stats.Pain > 30 {
		rate *= 1.0 - stats.Pain/200.0
	}

	before := stats.Stamina
	stats.Stamina += rate * seconds
	if stats.Stamina > stats.MaxStamina {
		stats.Stamina = stats.MaxStamina
	}

	if resting && stats.Exhaustion > 0 {
		stats.AddExhaustion(-seconds * 0.1)
	}
	return stats.Stamina - before
}

// ReducePain lowers pain by a randomized fraction of the base amount.
// Medical treatment is more reliable than letting it fade. A knocked-out
// combatant whose pain drops under 60 has a 30% chance per relief to come
// around, as long as they still live.
func ReducePain(stats *combat.CombatStats, amount float64, medical bool, rng combat.Source) float64 {
	var actual float64
	if medical {
		actual = amount * (0.8 + 0.4*rng.Float64())
	} else {
		actual = amount * (0.5 + 0.5*rng.Float64())
	}

	before := stats.Pain
	stats.AddPain(-actual)

	if !stats.IsConscious && stats.Pain < 60 && stats.Health > 0 {
		if rng.Float64() < 0.3 {
			stats.IsConscious = true
		}
	}
	return before - stats.Pain
}
