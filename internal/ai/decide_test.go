package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidmarch/combat/internal/combat"
)

// scriptedSource replays fixed draws so probabilistic paths are pinned.
type scriptedSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	if v >= n {
		v = n - 1
	}
	return v
}

func npc(t *testing.T, archetype combat.Archetype) *combat.Combatant {
	t.Helper()
	stats, err := combat.NewCombatStats(100, 100, 10, 10)
	require.NoError(t, err)
	c, err := combat.NewCombatant("bandit", stats)
	require.NoError(t, err)
	c.Archetype = archetype
	return c
}

func TestChooseActionRetreatsWhenHurt(t *testing.T) {
	c := npc(t, combat.ArchetypeDefensive)
	c.Stats.Health = 30 // under the defensive 40% retreat threshold

	rng := &scriptedSource{floats: []float64{0.6}} // under the 0.7 retreat draw
	d := ChooseAction(c, npc(t, combat.ArchetypeAggressive), nil, rng)
	assert.Equal(t, combat.ActionDodge, d.Action)
	assert.Nil(t, d.Technique)
}

func TestChooseActionAggressiveAttacks(t *testing.T) {
	c := npc(t, combat.ArchetypeAggressive)

	// Attack roll 0.6 < 0.7, technique draw 0.9 over usage, strong attack
	// picked from the two-element slice.
	rng := &scriptedSource{floats: []float64{0.6, 0.9}, ints: []int{1}}
	d := ChooseAction(c, npc(t, combat.ArchetypeDefensive), nil, rng)
	assert.Equal(t, combat.ActionStrongAttack, d.Action)
}

func TestChooseActionLowStaminaFallsBackToFastAttack(t *testing.T) {
	c := npc(t, combat.ArchetypeAggressive)
	c.Stats.Stamina = 15

	rng := &scriptedSource{floats: []float64{0.6, 0.9}}
	d := ChooseAction(c, npc(t, combat.ArchetypeDefensive), nil, rng)
	assert.Equal(t, combat.ActionFastAttack, d.Action)
}

func TestChooseActionDefends(t *testing.T) {
	c := npc(t, combat.ArchetypeDefensive)

	// 0.5 falls past the 0.3 attack band into the defense band; parry is
	// index 1 of the defensive slice.
	rng := &scriptedSource{floats: []float64{0.5}, ints: []int{1}}
	d := ChooseAction(c, npc(t, combat.ArchetypeAggressive), nil, rng)
	assert.Equal(t, combat.ActionParry, d.Action)
}

func TestChooseActionFeintsOutsideBothBands(t *testing.T) {
	c := npc(t, combat.ArchetypeAggressive)

	rng := &scriptedSource{floats: []float64{0.95}, ints: []int{0}}
	d := ChooseAction(c, npc(t, combat.ArchetypeDefensive), nil, rng)
	assert.Equal(t, combat.ActionFeint, d.Action)
}

func TestTacticalAdaptsToTurtlingOpponent(t *testing.T) {
	c := npc(t, combat.ArchetypeTactical)
	for i := 0; i < 8; i++ {
		c.Memory.Observe(combat.ActionBlock)
	}
	c.Memory.Observe(combat.ActionBasicAttack)

	// 0.6 is over the base tactical 0.5 attack probability but under the
	// adapted 0.65; an attack comes out instead of a defense.
	rng := &scriptedSource{floats: []float64{0.6, 0.9}, ints: []int{0}}
	d := ChooseAction(c, npc(t, combat.ArchetypeDefensive), nil, rng)
	assert.Equal(t, combat.ActionBasicAttack, d.Action)
}

func TestChooseActionPicksUsableTechnique(t *testing.T) {
	c := npc(t, combat.ArchetypeBerserker)
	c.Skills[combat.SkillAxes] = 30
	c.Weapon, _ = combat.NewWeapon("axe", combat.WeaponAxes, combat.DamageCut, 14, -1, 2, 2.0, combat.QualityNormal)

	catalog := []combat.Technique{
		{
			Name:             "cleave",
			Tier:             combat.TierBasic,
			WeaponClasses:    []combat.WeaponClass{combat.WeaponAxes},
			SkillRequirement: 8,
			StaminaCost:      15,
			DamageMultiplier: 1.8,
		},
		{
			Name:             "horizontal_slash",
			Tier:             combat.TierBasic,
			WeaponClasses:    []combat.WeaponClass{combat.WeaponLongSwords},
			SkillRequirement: 5,
			StaminaCost:      8,
			DamageMultiplier: 1.2,
		},
	}

	// Attack roll 0.1, technique draw 0.2 under the berserker 0.5 usage,
	// then the pick among the single usable entry.
	rng := &scriptedSource{floats: []float64{0.1, 0.2}, ints: []int{0}}
	d := ChooseAction(c, npc(t, combat.ArchetypeDefensive), catalog, rng)
	require.NotNil(t, d.Technique)
	assert.Equal(t, "cleave", d.Technique.Name)
}

func TestChooseStance(t *testing.T) {
	assert.Equal(t, combat.StanceBerserker, ChooseStance(combat.ArchetypeBerserker))
	assert.Equal(t, combat.StanceEvasive, ChooseStance(combat.ArchetypeArcher))
	assert.Equal(t, combat.StanceBalanced, ChooseStance("unheard_of"))
}
