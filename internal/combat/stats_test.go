package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCombatStats_Validation(t *testing.T) {
	_, err := NewCombatStats(0, 100, 10, 10)
	require.Error(t, err)
	_, err = NewCombatStats(100, -5, 10, 10)
	require.Error(t, err)
	_, err = NewCombatStats(100, 100, -1, 10)
	require.Error(t, err)

	s, err := NewCombatStats(100, 80, 10, 12)
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.Health)
	assert.Equal(t, 80.0, s.Stamina)
	assert.Equal(t, 1.0, s.DamageMultiplier)
	assert.True(t, s.IsConscious)
}

func TestApplyHealthDelta_Clamps(t *testing.T) {
	s, _ := NewCombatStats(100, 100, 10, 10)

	s.ApplyHealthDelta(50)
	assert.Equal(t, 100.0, s.Health, "health never exceeds maximum")

	s.ApplyHealthDelta(-150)
	assert.Equal(t, 0.0, s.Health)
	assert.False(t, s.IsConscious, "zero health drops consciousness")
}

func TestAddPain_ClampsAndKnocksOut(t *testing.T) {
	s, _ := NewCombatStats(100, 100, 10, 10)

	s.AddPain(79.9)
	assert.True(t, s.IsConscious)

	s.AddPain(0.1)
	assert.False(t, s.IsConscious, "pain 80 is the knockout threshold")

	s.AddPain(500)
	assert.Equal(t, 100.0, s.Pain)

	s.AddPain(-500)
	assert.Equal(t, 0.0, s.Pain)
}

// Driving pain past 80 through repeated hits knocks the combatant out no
// matter how much health remains.
func TestRepeatedPain_KnocksOutAtFullHealth(t *testing.T) {
	s, _ := NewCombatStats(100, 100, 10, 10)
	for i := 0; i < 5; i++ {
		s.AddPain(17)
	}
	assert.GreaterOrEqual(t, s.Pain, 85.0)
	assert.False(t, s.IsConscious)
	assert.Equal(t, 100.0, s.Health)
}

func TestAddExhaustion_Clamps(t *testing.T) {
	s, _ := NewCombatStats(100, 100, 10, 10)
	s.AddExhaustion(130)
	assert.Equal(t, 100.0, s.Exhaustion)
	s.AddExhaustion(-200)
	assert.Equal(t, 0.0, s.Exhaustion)
}
