package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidmarch/combat/internal/combat"
)

func TestRecoverStaminaRates(t *testing.T) {
	tests := []struct {
		name       string
		resting    bool
		exhaustion float64
		pain       float64
		seconds    float64
		want       float64
	}{
		{"resting", true, 0, 0, 10, 10},
		{"active", false, 0, 0, 10, 3},
		{"resting worn", true, 60, 0, 10, 5},
		{"resting spent", true, 85, 0, 10, 2.5},
		{"resting in pain", true, 0, 50, 10, 7.5},
		{"worn and hurting", true, 60, 50, 10, 3.75},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stats, err := combat.NewCombatStats(100, 100, 10, 10)
			require.NoError(t, err)
			stats.Stamina = 20
			stats.Exhaustion = tc.exhaustion
			stats.Pain = tc.pain

			got := RecoverStamina(stats, tc.resting, tc.seconds)
			assert.InDelta(t, tc.want, got, 1e-9)
			assert.InDelta(t, 20+tc.want, stats.Stamina, 1e-9)
		})
	}
}

func TestRecoverStaminaCapsAtMax(t *testing.T) {
	stats, err := combat.NewCombatStats(100, 100, 10, 10)
	require.NoError(t, err)
	stats.Stamina = 95

	got := RecoverStamina(stats, true, 60)
	assert.InDelta(t, 5, got, 1e-9)
	assert.InDelta(t, 100, stats.Stamina, 1e-9)
}

func TestRecoverStaminaRestDrainsExhaustion(t *testing.T) {
	stats, err := combat.NewCombatStats(100, 100, 10, 10)
	require.NoError(t, err)
	stats.Exhaustion = 5

	RecoverStamina(stats, true, 20)
	assert.InDelta(t, 3, stats.Exhaustion, 1e-9)

	// An active combatant never works off exhaustion.
	stats.Exhaustion = 5
	RecoverStamina(stats, false, 20)
	assert.InDelta(t, 5, stats.Exhaustion, 1e-9)
}

func TestReducePainMedical(t *testing.T) {
	stats, err := combat.NewCombatStats(100, 100, 10, 10)
	require.NoError(t, err)
	stats.Pain = 40

	// Medical relief scales the base amount by 0.8 + 0.4*draw.
	rng := &scriptedSource{floats: []float64{0.5}}
	got := ReducePain(stats, 10, true, rng)
	assert.InDelta(t, 10, got, 1e-9)
	assert.InDelta(t, 30, stats.Pain, 1e-9)
}

func TestReducePainNatural(t *testing.T) {
	stats, err := combat.NewCombatStats(100, 100, 10, 10)
	require.NoError(t, err)
	stats.Pain = 40

	// Natural relief scales by 0.5 + 0.5*draw: less reliable.
	rng := &scriptedSource{floats: []float64{0.0}}
	got := ReducePain(stats, 10, false, rng)
	assert.InDelta(t, 5, got, 1e-9)
	assert.InDelta(t, 35, stats.Pain, 1e-9)
}

func TestReducePainRegainConsciousness(t *testing.T) {
	stats, err := combat.NewCombatStats(100, 100, 10, 10)
	require.NoError(t, err)
	stats.AddPain(85)
	require.False(t, stats.IsConscious)

	// Relief draw then the 30% wake-up draw.
	rng := &scriptedSource{floats: []float64{0.5, 0.1}}
	ReducePain(stats, 30, true, rng)
	assert.InDelta(t, 55, stats.Pain, 1e-9)
	assert.True(t, stats.IsConscious)
}

func TestReducePainStaysOutBelowDraw(t *testing.T) {
	stats, err := combat.NewCombatStats(100, 100, 10, 10)
	require.NoError(t, err)
	stats.AddPain(85)

	rng := &scriptedSource{floats: []float64{0.5, 0.9}}
	ReducePain(stats, 30, true, rng)
	assert.InDelta(t, 55, stats.Pain, 1e-9)
	assert.False(t, stats.IsConscious)
}
