package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeState_PriorityOrder(t *testing.T) {
	s, _ := NewCombatStats(100, 100, 10, 10)

	assert.Equal(t, StateNormal, ComputeState(s, nil))

	s.Stamina = 20
	assert.Equal(t, StateTired, ComputeState(s, nil))

	s.Exhaustion = 75
	assert.Equal(t, StateExhausted, ComputeState(s, nil))

	wounds := []*Injury{{BodyPart: BodyTorso, Severity: 60}}
	assert.Equal(t, StateInjured, ComputeState(s, wounds))

	s.Health = 45
	assert.Equal(t, StateCriticallyInjured, ComputeState(s, wounds))

	s.Health = 15
	assert.Equal(t, StateDying, ComputeState(s, wounds))

	// Unconsciousness outranks every health band while health remains.
	s.IsConscious = false
	assert.Equal(t, StateUnconscious, ComputeState(s, wounds))

	s.Health = 0
	assert.Equal(t, StateDead, ComputeState(s, wounds))
}

func TestComputeState_Idempotent(t *testing.T) {
	s, _ := NewCombatStats(100, 100, 10, 10)
	s.Health = 40
	s.Pain = 35

	first := ComputeState(s, nil)
	second := ComputeState(s, nil)
	assert.Equal(t, first, second)
}

func TestStateDowned(t *testing.T) {
	assert.True(t, StateUnconscious.Downed())
	assert.True(t, StateDying.Downed())
	assert.True(t, StateDead.Downed())
	assert.False(t, StateInjured.Downed())
	assert.False(t, StateNormal.Downed())
}
