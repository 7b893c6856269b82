package service

import (
	"errors"

	"github.com/voidmarch/combat/internal/combat"
)

var (
	ErrEncounterNotFound      = errors.New("encounter not found")
	ErrEncounterNotInProgress = errors.New("encounter is not in progress")
	ErrUnknownAction          = errors.New("unknown combat action")
	ErrCombatantsRequired     = errors.New("both combatants are required")
)

// EncounterRepo is the persistence surface the service needs. The storage
// package's Repository satisfies it; tests substitute an in-memory fake.
type EncounterRepo interface {
	CreateEncounter(e *combat.Encounter) error
	GetEncounterByUUID(uuid string) (*combat.Encounter, error)
	UpdateEncounter(e *combat.Encounter) error
}
