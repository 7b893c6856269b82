package storage

import "github.com/voidmarch/combat/internal/combat"

// Repository is the turn-boundary persistence surface for encounters.
type Repository interface {
	CreateEncounter(e *combat.Encounter) error
	GetEncounterByUUID(uuid string) (*combat.Encounter, error)
	UpdateEncounter(e *combat.Encounter) error
	ListActiveEncounters() ([]*combat.Encounter, error)
}
