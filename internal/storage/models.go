package storage

import (
	"time"

	"gorm.io/datatypes"

	"github.com/voidmarch/combat/internal/combat"
)

// EncounterRecord is the persisted form of a combat.Encounter. Written
// only at turn boundaries; never touched mid-resolution.
type EncounterRecord struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UUID        string `gorm:"uniqueIndex" json:"uuid"`
	Status      string `json:"status"`
	Outcome     string `json:"outcome"`
	Winner      string `json:"winner"`
	TurnCount   int    `json:"turn_count"`
	LastSummary string `json:"last_summary"`

	Factors    datatypes.JSONType[[]string] `json:"factors"`
	Combatants []CombatantRecord            `json:"combatants"`
}

// CombatantRecord stores one participant: scalar columns for the fields
// the API filters on, JSON columns for the nested plain-data graphs.
type CombatantRecord struct {
	ID                uint `gorm:"primarykey" json:"-"`
	EncounterRecordID uint `gorm:"index" json:"-"`

	Role      string `json:"role"` // "player" or "enemy"
	Name      string `json:"name"`
	Archetype string `json:"archetype"`
	Stance    string `json:"stance"`

	Stats    datatypes.JSONType[combat.CombatStats]                   `json:"stats"`
	Weapon   datatypes.JSONType[*combat.Weapon]                       `json:"weapon"`
	Armor    datatypes.JSONType[*combat.Armor]                        `json:"armor"`
	Skills   datatypes.JSONType[map[string]int]                       `json:"skills"`
	Injuries datatypes.JSONType[map[combat.BodyPart][]*combat.Injury] `json:"injuries"`
	Memory   datatypes.JSONType[combat.Memory]                        `json:"memory"`

	PendingAction string                              `json:"pending_action"`
	RecentActions datatypes.JSONType[[]combat.Action] `json:"recent_actions"`
	ComboWindow   int                                 `json:"combo_window"`
	VoidCooldowns datatypes.JSONType[map[string]int]  `json:"void_cooldowns"`
}

const (
	RolePlayer = "player"
	RoleEnemy  = "enemy"
)

func toCombatantRecord(role string, c *combat.Combatant) CombatantRecord {
	return CombatantRecord{
		Role:          role,
		Name:          c.Name,
		Archetype:     string(c.Archetype),
		Stance:        string(c.Stance),
		Stats:         datatypes.NewJSONType(c.Stats),
		Weapon:        datatypes.NewJSONType(c.Weapon),
		Armor:         datatypes.NewJSONType(c.Armor),
		Skills:        datatypes.NewJSONType(c.Skills),
		Injuries:      datatypes.NewJSONType(c.Injuries),
		Memory:        datatypes.NewJSONType(c.Memory),
		PendingAction: string(c.PendingAction),
		RecentActions: datatypes.NewJSONType(c.RecentActions),
		ComboWindow:   c.ComboWindow,
		VoidCooldowns: datatypes.NewJSONType(c.VoidCooldowns),
	}
}

func (rec *CombatantRecord) toCombatant() *combat.Combatant {
	return &combat.Combatant{
		Name:          rec.Name,
		Archetype:     combat.Archetype(rec.Archetype),
		Stance:        combat.Stance(rec.Stance),
		Stats:         rec.Stats.Data(),
		Weapon:        rec.Weapon.Data(),
		Armor:         rec.Armor.Data(),
		Skills:        rec.Skills.Data(),
		Injuries:      rec.Injuries.Data(),
		Memory:        rec.Memory.Data(),
		PendingAction: combat.Action(rec.PendingAction),
		RecentActions: rec.RecentActions.Data(),
		ComboWindow:   rec.ComboWindow,
		VoidCooldowns: rec.VoidCooldowns.Data(),
	}
}

// ToEncounterRecord converts the in-memory aggregate for persistence.
func ToEncounterRecord(e *combat.Encounter) *EncounterRecord {
	return &EncounterRecord{
		UUID:        e.UUID,
		Status:      e.Status,
		Outcome:     e.Outcome,
		Winner:      e.Winner,
		TurnCount:   e.TurnCount,
		LastSummary: e.LastTurnSummary,
		Factors:     datatypes.NewJSONType(e.Factors),
		Combatants: []CombatantRecord{
			toCombatantRecord(RolePlayer, e.Player),
			toCombatantRecord(RoleEnemy, e.Enemy),
		},
	}
}

// ToEncounter rebuilds the in-memory aggregate from a stored record.
func (rec *EncounterRecord) ToEncounter() *combat.Encounter {
	e := &combat.Encounter{
		UUID:            rec.UUID,
		Status:          rec.Status,
		Outcome:         rec.Outcome,
		Winner:          rec.Winner,
		TurnCount:       rec.TurnCount,
		LastTurnSummary: rec.LastSummary,
		Factors:         rec.Factors.Data(),
	}
	for i := range rec.Combatants {
		c := &rec.Combatants[i]
		switch c.Role {
		case RolePlayer:
			e.Player = c.toCombatant()
		case RoleEnemy:
			e.Enemy = c.toCombatant()
		}
	}
	return e
}
