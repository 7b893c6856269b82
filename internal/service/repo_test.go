package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voidmarch/combat/internal/combat"
)

// fakeRepo is the in-memory stand-in for the storage layer.
type fakeRepo struct {
	encounters map[string]*combat.Encounter
	created    int
	updated    int
	failUpdate error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{encounters: make(map[string]*combat.Encounter)}
}

func (r *fakeRepo) CreateEncounter(e *combat.Encounter) error {
	r.encounters[e.UUID] = e
	r.created++
	return nil
}

func (r *fakeRepo) GetEncounterByUUID(uuid string) (*combat.Encounter, error) {
	return r.encounters[uuid], nil
}

func (r *fakeRepo) UpdateEncounter(e *combat.Encounter) error {
	if r.failUpdate != nil {
		return r.failUpdate
	}
	r.encounters[e.UUID] = e
	r.updated++
	return nil
}

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

func buildCombatant(t *testing.T, name string, archetype combat.Archetype) *combat.Combatant {
	t.Helper()
	stats, err := combat.NewCombatStats(100, 100, 10, 10)
	require.NoError(t, err)
	c, err := combat.NewCombatant(name, stats)
	require.NoError(t, err)
	c.Archetype = archetype
	return c
}

func seedEncounter(t *testing.T, repo *fakeRepo) *combat.Encounter {
	t.Helper()
	e := &combat.Encounter{
		UUID:      "11111111-1111-1111-1111-111111111111",
		Status:    combat.StatusInProgress,
		TurnCount: 1,
		Player:    buildCombatant(t, "Kael", ""),
		Enemy:     buildCombatant(t, "Marauder", combat.ArchetypeAggressive),
	}
	repo.encounters[e.UUID] = e
	return e
}
