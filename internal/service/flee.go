package service

import (
	"github.com/voidmarch/combat/internal/combat"
	"github.com/voidmarch/combat/internal/logging"
)

// Flee ends the encounter before the next turn begins. Fleeing is only
// possible between resolver calls; a turn in flight always runs to
// completion.
func Flee(repo EncounterRepo, encounterUUID string) (*combat.Encounter, error) {
	e, err := repo.GetEncounterByUUID(encounterUUID)
	if err != nil || e == nil {
		return nil, ErrEncounterNotFound
	}
	if e.Status != combat.StatusInProgress {
		return nil, ErrEncounterNotInProgress
	}

	e.Status = combat.StatusFinished
	e.Outcome = combat.OutcomeFled
	e.Winner = e.Enemy.Name
	e.LastTurnSummary = e.Player.Name + " breaks away from the fight."

	if err := repo.UpdateEncounter(e); err != nil {
		return nil, err
	}
	logging.Info("encounter fled", logging.Fields{"uuid": e.UUID})
	return e, nil
}
