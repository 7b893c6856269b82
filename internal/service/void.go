package service

import (
	"errors"
	"fmt"

	"github.com/voidmarch/combat/internal/combat"
	"github.com/voidmarch/combat/internal/engine"
	"github.com/voidmarch/combat/internal/logging"
)

var (
	ErrUnknownVoidAbility  = errors.New("unknown void ability")
	ErrVoidAbilityCooldown = errors.New("void ability is still on cooldown")
)

// CastVoidAbility spends the player's void energy on a supernatural
// maneuver outside the normal action economy. Insufficient energy is an
// in-fiction failure reported through executed=false, not an error.
func CastVoidAbility(repo EncounterRepo, encounterUUID, abilityName string, abilities []engine.VoidAbility) (*combat.Encounter, bool, error) {
	e, err := repo.GetEncounterByUUID(encounterUUID)
	if err != nil || e == nil {
		return nil, false, ErrEncounterNotFound
	}
	if e.Status != combat.StatusInProgress {
		return nil, false, ErrEncounterNotInProgress
	}

	ability := engine.FindVoidAbility(abilities, abilityName)
	if ability == nil {
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownVoidAbility, abilityName)
	}
	if turns := e.Player.VoidCooldowns[ability.Name]; turns > 0 {
		return nil, false, fmt.Errorf("%w: %s (%d turns left)", ErrVoidAbilityCooldown, ability.Name, turns)
	}

	executed, description := ability.Execute(&e.Player.Stats, &e.Enemy.Stats)
	if executed {
		if e.Player.VoidCooldowns == nil {
			e.Player.VoidCooldowns = make(map[string]int)
		}
		e.Player.VoidCooldowns[ability.Name] = ability.Cooldown
	}
	e.LastTurnSummary = description

	finishEncounter(e)
	if err := repo.UpdateEncounter(e); err != nil {
		return nil, executed, err
	}
	logging.Info("void ability cast", logging.Fields{
		"uuid":     e.UUID,
		"ability":  ability.Name,
		"executed": executed,
	})
	return e, executed, nil
}
