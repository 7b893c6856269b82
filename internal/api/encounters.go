package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voidmarch/combat/internal/combat"
	"github.com/voidmarch/combat/internal/constants"
	"github.com/voidmarch/combat/internal/dedupe"
	"github.com/voidmarch/combat/internal/engine"
	"github.com/voidmarch/combat/internal/service"
)

type createEncounterRequest struct {
	Player  *combat.Combatant `json:"player" binding:"required"`
	Enemy   *combat.Combatant `json:"enemy" binding:"required"`
	Factors []string          `json:"factors"`
}

// CreateEncounter starts a new encounter between the posted combatants.
func (h *EncounterHandler) CreateEncounter(c *gin.Context) {
	var req createEncounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequestBody})
		return
	}
	e, err := service.StartEncounter(h.repo, req.Player, req.Enemy, req.Factors)
	if err != nil {
		if errors.Is(err, service.ErrCombatantsRequired) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreate})
		return
	}
	c.JSON(http.StatusCreated, e)
}

// ListEncounters returns every encounter still in progress.
func (h *EncounterHandler) ListEncounters(c *gin.Context) {
	encounters, err := h.repo.ListActiveEncounters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchEncounter})
		return
	}
	c.JSON(http.StatusOK, gin.H{"encounters": encounters})
}

// GetEncounter returns the current encounter snapshot. Concurrent reads of
// the same encounter collapse into a single database load.
func (h *EncounterHandler) GetEncounter(c *gin.Context) {
	uuid, ok := normalizeUUID(c.Param("uuid"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidEncounterID})
		return
	}
	v, err, _ := dedupe.EncounterGroup.Do(uuid, func() (interface{}, error) {
		return h.repo.GetEncounterByUUID(uuid)
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrEncounterNotFound})
		return
	}
	c.JSON(http.StatusOK, v)
}

type submitActionRequest struct {
	Action    combat.Action `json:"action" binding:"required"`
	Technique string        `json:"technique"`
}

// SubmitAction resolves one turn of the encounter.
func (h *EncounterHandler) SubmitAction(c *gin.Context) {
	uuid, ok := normalizeUUID(c.Param("uuid"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidEncounterID})
		return
	}
	var req submitActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequestBody})
		return
	}

	e, result, err := service.SubmitAction(h.repo, h.rng, uuid, req.Action, req.Technique, h.catalog)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEncounterNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrEncounterNotFound})
		case errors.Is(err, service.ErrEncounterNotInProgress),
			errors.Is(err, service.ErrUnknownAction),
			errors.Is(err, engine.ErrInvalidTechnique):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"encounter": e, "turn": result})
}

// Flee ends the encounter with a fled outcome.
func (h *EncounterHandler) Flee(c *gin.Context) {
	uuid, ok := normalizeUUID(c.Param("uuid"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidEncounterID})
		return
	}
	e, err := service.Flee(h.repo, uuid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEncounterNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrEncounterNotFound})
		case errors.Is(err, service.ErrEncounterNotInProgress):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
		}
		return
	}
	c.JSON(http.StatusOK, e)
}

type advanceTimeRequest struct {
	Minutes float64 `json:"minutes" binding:"required"`
}

// AdvanceTime ticks wounds, recovery and pain over game minutes.
func (h *EncounterHandler) AdvanceTime(c *gin.Context) {
	uuid, ok := normalizeUUID(c.Param("uuid"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidEncounterID})
		return
	}
	var req advanceTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Minutes < 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequestBody})
		return
	}
	e, err := service.AdvanceTime(h.repo, h.rng, uuid, req.Minutes)
	if err != nil {
		if errors.Is(err, service.ErrEncounterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrEncounterNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
		return
	}
	c.JSON(http.StatusOK, e)
}

type castVoidRequest struct {
	Ability string `json:"ability" binding:"required"`
}

// CastVoid spends the player's void energy on a supernatural ability.
func (h *EncounterHandler) CastVoid(c *gin.Context) {
	uuid, ok := normalizeUUID(c.Param("uuid"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidEncounterID})
		return
	}
	var req castVoidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequestBody})
		return
	}
	e, executed, err := service.CastVoidAbility(h.repo, uuid, req.Ability, h.voids)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEncounterNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrEncounterNotFound})
		case errors.Is(err, service.ErrUnknownVoidAbility),
			errors.Is(err, service.ErrVoidAbilityCooldown),
			errors.Is(err, service.ErrEncounterNotInProgress):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersist})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"encounter": e, "executed": executed})
}
