package engine

// Factor is a scene-level condition affecting both combatants.
type Factor string

const (
	FactorDarkness    Factor = "darkness"
	FactorSlippery    Factor = "slippery"
	FactorNarrowSpace Factor = "narrow_space"
	FactorFog         Factor = "fog"
	FactorRain        Factor = "rain"
	FactorWind        Factor = "wind"
	FactorHeight      Factor = "height"
	FactorWater       Factor = "water"
)

// Modifiers are the summed additive deltas the resolver folds into its
// hit-chance and damage computations. The sums are deliberately not
// re-normalized.
type Modifiers struct {
	Accuracy float64 `json:"accuracy"`
	Damage   float64 `json:"damage"`
	Defense  float64 `json:"defense"`
	Movement float64 `json:"movement"`
}

// Environment is the set of active scene flags for an encounter.
type Environment struct {
	factors map[Factor]bool
}

// NewEnvironment builds an environment with the given flags active.
func NewEnvironment(factors ...Factor) *Environment {
	e := &Environment{factors: make(map[Factor]bool, len(factors))}
	for _, f := range factors {
		e.factors[f] = true
	}
	return e
}

// Add activates a scene flag.
func (e *Environment) Add(f Factor) { e.factors[f] = true }

// Remove clears a scene flag.
func (e *Environment) Remove(f Factor) { delete(e.factors, f) }

// Active reports whether the flag is set.
func (e *Environment) Active(f Factor) bool { return e.factors[f] }

// Factors lists the active flags.
func (e *Environment) Factors() []Factor {
	out := make([]Factor, 0, len(e.factors))
	for f := range e.factors {
		if e.factors[f] {
			out = append(out, f)
		}
	}
	return out
}

// Modifiers sums each active flag's fixed contribution.
func (e *Environment) Modifiers() Modifiers {
	var m Modifiers
	for f, on := range e.factors {
		if !on {
			continue
		}
		switch f {
		case FactorDarkness:
			m.Accuracy -= 0.3
			m.Defense -= 0.2
		case FactorSlippery:
			m.Movement -= 0.3
			m.Defense -= 0.15
		case FactorNarrowSpace:
			m.Movement -= 0.2
			m.Accuracy -= 0.1
		case FactorFog:
			m.Accuracy -= 0.2
		case FactorRain:
			m.Accuracy -= 0.1
			m.Damage -= 0.1
		case FactorWind:
			m.Accuracy -= 0.15
		case FactorHeight:
			m.Damage += 0.1
			m.Defense += 0.1
		case FactorWater:
			m.Movement -= 0.2
		}
	}
	return m
}
