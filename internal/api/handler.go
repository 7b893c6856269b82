package api

import (
	"github.com/voidmarch/combat/internal/combat"
	"github.com/voidmarch/combat/internal/engine"
	"github.com/voidmarch/combat/internal/storage"
)

// EncounterHandler groups all encounter-related HTTP handlers.
type EncounterHandler struct {
	repo    storage.Repository
	rng     combat.Source
	catalog []combat.Technique
	voids   []engine.VoidAbility
}

// NewEncounterHandler creates a handler over the repository, the server's
// randomness source and the loaded technique catalog.
func NewEncounterHandler(repo storage.Repository, rng combat.Source, catalog []combat.Technique, voids []engine.VoidAbility) *EncounterHandler {
	return &EncounterHandler{repo: repo, rng: rng, catalog: catalog, voids: voids}
}
