package service

import (
	"fmt"

	"github.com/voidmarch/combat/internal/combat"
	"github.com/voidmarch/combat/internal/engine"
	"github.com/voidmarch/combat/internal/logging"
)

// naturalPainRelief is the base pain reduction per minute of downtime.
const naturalPainRelief = 0.5

// AdvanceTime moves the encounter clock forward: wounds bleed, fester or
// close, blood loss costs health, stamina trickles back and pain fades.
// Lifecycle states recompute from the updated snapshots.
func AdvanceTime(repo EncounterRepo, rng combat.Source, encounterUUID string, minutes float64) (*combat.Encounter, error) {
	if minutes < 0 {
		return nil, fmt.Errorf("time must move forward, got %v minutes", minutes)
	}
	e, err := repo.GetEncounterByUUID(encounterUUID)
	if err != nil || e == nil {
		return nil, ErrEncounterNotFound
	}

	resting := e.Status != combat.StatusInProgress
	for _, c := range []*combat.Combatant{e.Player, e.Enemy} {
		tickInjuries(c, minutes, rng)
		engine.RecoverStamina(&c.Stats, resting, minutes*60)
		engine.ReducePain(&c.Stats, minutes*naturalPainRelief, false, rng)
	}

	if err := repo.UpdateEncounter(e); err != nil {
		return nil, err
	}
	logging.Info("time advanced", logging.Fields{"uuid": e.UUID, "minutes": minutes})
	return e, nil
}

// tickInjuries updates every wound, drops the healed ones, charges blood
// loss against health and rebuilds the bleeding aggregate from what
// remains.
func tickInjuries(c *combat.Combatant, minutes float64, rng combat.Source) {
	totalBloodLoss := 0.0
	for part, wounds := range c.Injuries {
		remaining := wounds[:0]
		for _, in := range wounds {
			bloodLoss, healed := in.Update(minutes, rng)
			totalBloodLoss += bloodLoss
			if !healed {
				remaining = append(remaining, in)
			}
		}
		if len(remaining) == 0 {
			delete(c.Injuries, part)
		} else {
			c.Injuries[part] = remaining
		}
	}

	if totalBloodLoss > 0 {
		c.Stats.ApplyHealthDelta(-totalBloodLoss)
	}

	c.Stats.IsBleeding = false
	c.Stats.TotalBleedingRate = 0
	for _, in := range c.ActiveInjuries() {
		if in.Bleeding {
			c.Stats.IsBleeding = true
			c.Stats.TotalBleedingRate += in.BleedingRate
		}
	}
}
