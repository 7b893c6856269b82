package combat

// MemoryCapacity bounds the observed-action ring buffer.
const MemoryCapacity = 20

// Memory is what a combatant remembers about an opponent: a bounded window
// of observed actions, frequency counts and any weaknesses discovered. It
// feeds the AI pattern analysis.
type Memory struct {
	ObservedActions []Action        `json:"observed_actions"`
	PreferredAttack map[Action]int  `json:"preferred_attacks,omitempty"`
	Weaknesses      map[string]bool `json:"weaknesses,omitempty"`
	LastDamageTaken float64         `json:"last_damage_taken"`
	LastDamageDealt float64         `json:"last_damage_dealt"`
}

// Observe records an opponent action, evicting the oldest entry once the
// window is full.
func (m *Memory) Observe(a Action) {
	m.ObservedActions = append(m.ObservedActions, a)
	if len(m.ObservedActions) > MemoryCapacity {
		m.ObservedActions = m.ObservedActions[len(m.ObservedActions)-MemoryCapacity:]
	}
	if a.IsAttack() {
		if m.PreferredAttack == nil {
			m.PreferredAttack = make(map[Action]int)
		}
		m.PreferredAttack[a]++
	}
}

// DiscoverWeakness records an exploitable trait of the opponent.
func (m *Memory) DiscoverWeakness(name string) {
	if m.Weaknesses == nil {
		m.Weaknesses = make(map[string]bool)
	}
	m.Weaknesses[name] = true
}

// PatternSummary is the digest the AI consumes.
type PatternSummary struct {
	MostCommonAction  Action
	ActionVariety     int
	DefensiveTendency float64
	Weaknesses        []string
}

// Analyze summarizes the observed window. An empty window yields a zero
// summary.
func (m *Memory) Analyze() PatternSummary {
	var sum PatternSummary
	if len(m.ObservedActions) == 0 {
		return sum
	}

	counts := make(map[Action]int, len(m.ObservedActions))
	defensive := 0
	for _, a := range m.ObservedActions {
		counts[a]++
		if a.IsDefense() {
			defensive++
		}
	}

	best := 0
	for a, n := range counts {
		if n > best {
			best = n
			sum.MostCommonAction = a
		}
	}
	sum.ActionVariety = len(counts)
	sum.DefensiveTendency = float64(defensive) / float64(len(m.ObservedActions))
	for w := range m.Weaknesses {
		sum.Weaknesses = append(sum.Weaknesses, w)
	}
	return sum
}
