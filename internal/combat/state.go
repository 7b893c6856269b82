package combat

// State is the derived lifecycle state of a combatant. It is level
// triggered: ComputeState recomputes it fresh from the current stat
// snapshot, so repeated calls on unchanged stats are idempotent.
type State string

const (
	StateNormal            State = "normal"
	StateTired             State = "tired"
	StateExhausted         State = "exhausted"
	StateInjured           State = "injured"
	StateCriticallyInjured State = "critically_injured"
	StateUnconscious       State = "unconscious"
	StateDying             State = "dying"
	StateDead              State = "dead"
)

// ComputeState picks the state by threshold checks in priority order, with
// unconsciousness and death checked first.
func ComputeState(stats *CombatStats, injuries []*Injury) State {
	switch {
	case !stats.IsConscious && stats.Health > 0:
		return StateUnconscious
	case stats.Health <= 0:
		return StateDead
	case stats.Health < stats.MaxHealth*0.2:
		return StateDying
	case stats.Health < stats.MaxHealth*0.5:
		return StateCriticallyInjured
	case TotalInjurySeverity(injuries) > 50:
		return StateInjured
	case stats.Exhaustion > 70:
		return StateExhausted
	case stats.Stamina < stats.MaxStamina*0.3:
		return StateTired
	default:
		return StateNormal
	}
}

// Downed reports whether a state ends the combatant's participation.
func (s State) Downed() bool {
	return s == StateUnconscious || s == StateDying || s == StateDead
}
