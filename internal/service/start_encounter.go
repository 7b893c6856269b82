package service

import (
	"github.com/google/uuid"

	"github.com/voidmarch/combat/internal/ai"
	"github.com/voidmarch/combat/internal/combat"
	"github.com/voidmarch/combat/internal/logging"
)

// StartEncounter persists a fresh two-party encounter. The enemy's stance
// is set from its archetype; the active environment flags are recorded on
// the aggregate so every later turn resolves under the same conditions.
func StartEncounter(repo EncounterRepo, player, enemy *combat.Combatant, factors []string) (*combat.Encounter, error) {
	if player == nil || enemy == nil {
		return nil, ErrCombatantsRequired
	}
	enemy.Stance = ai.ChooseStance(enemy.Archetype)

	e := &combat.Encounter{
		UUID:      uuid.NewString(),
		Status:    combat.StatusInProgress,
		TurnCount: 1,
		Player:    player,
		Enemy:     enemy,
		Factors:   factors,
	}
	if err := repo.CreateEncounter(e); err != nil {
		return nil, err
	}
	logging.Info("encounter started", logging.Fields{
		"uuid":    e.UUID,
		"player":  player.Name,
		"enemy":   enemy.Name,
		"factors": factors,
	})
	return e, nil
}
