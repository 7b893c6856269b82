package combat

// Encounter is the two-party aggregate persisted at turn boundaries. The
// whole graph is acyclic plain data.
type Encounter struct {
	UUID            string     `json:"uuid"`
	Status          string     `json:"status"`
	Outcome         string     `json:"outcome,omitempty"`
	Winner          string     `json:"winner,omitempty"`
	TurnCount       int        `json:"turn_count"`
	Player          *Combatant `json:"player"`
	Enemy           *Combatant `json:"enemy"`
	Factors         []string   `json:"factors,omitempty"` // active environment flags
	LastTurnSummary string     `json:"last_turn_summary,omitempty"`
}

// Opponent returns the other participant.
func (e *Encounter) Opponent(c *Combatant) *Combatant {
	if c == e.Player {
		return e.Enemy
	}
	return e.Player
}
