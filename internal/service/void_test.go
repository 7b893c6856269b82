package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidmarch/combat/internal/engine"
)

func TestCastVoidAbility(t *testing.T) {
	repo := newFakeRepo()
	e := seedEncounter(t, repo)
	e.Player.Stats.MaxVoidEnergy = 100
	e.Player.Stats.VoidEnergy = 50

	got, executed, err := CastVoidAbility(repo, e.UUID, "void_touch", engine.DefaultVoidAbilities())
	require.NoError(t, err)
	require.True(t, executed)

	assert.InDelta(t, 40, got.Player.Stats.VoidEnergy, 1e-9)
	assert.InDelta(t, 15, got.Player.Stats.Pain, 1e-9)
	assert.InDelta(t, 75, got.Enemy.Stats.Health, 1e-9)
	assert.Equal(t, 2, got.Player.VoidCooldowns["void_touch"])
	assert.Equal(t, 1, repo.updated)
}

func TestCastVoidAbilityOutOfEnergy(t *testing.T) {
	repo := newFakeRepo()
	e := seedEncounter(t, repo)
	e.Player.Stats.VoidEnergy = 5

	got, executed, err := CastVoidAbility(repo, e.UUID, "void_touch", engine.DefaultVoidAbilities())
	require.NoError(t, err)
	assert.False(t, executed)
	assert.Empty(t, got.Player.VoidCooldowns)
	assert.InDelta(t, 100, got.Enemy.Stats.Health, 1e-9)
}

func TestCastVoidAbilityUnknown(t *testing.T) {
	repo := newFakeRepo()
	e := seedEncounter(t, repo)

	_, _, err := CastVoidAbility(repo, e.UUID, "soul_rend", engine.DefaultVoidAbilities())
	assert.ErrorIs(t, err, ErrUnknownVoidAbility)
}

func TestCastVoidAbilityOnCooldown(t *testing.T) {
	repo := newFakeRepo()
	e := seedEncounter(t, repo)
	e.Player.Stats.VoidEnergy = 50
	e.Player.VoidCooldowns = map[string]int{"void_touch": 1}

	_, _, err := CastVoidAbility(repo, e.UUID, "void_touch", engine.DefaultVoidAbilities())
	assert.ErrorIs(t, err, ErrVoidAbilityCooldown)
	assert.InDelta(t, 50, e.Player.Stats.VoidEnergy, 1e-9)
}
