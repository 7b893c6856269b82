package storage

import (
	"gorm.io/gorm"

	"github.com/voidmarch/combat/internal/combat"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps a migrated gorm handle in the Repository
// interface.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateEncounter(e *combat.Encounter) error {
	return r.db.Create(ToEncounterRecord(e)).Error
}

func (r *sqliteRepository) GetEncounterByUUID(uuid string) (*combat.Encounter, error) {
	var rec EncounterRecord
	if err := r.db.Preload("Combatants").Where("uuid = ?", uuid).First(&rec).Error; err != nil {
		return nil, err
	}
	return rec.ToEncounter(), nil
}

// UpdateEncounter replaces the stored snapshot wholesale: the combatant
// rows are rewritten rather than diffed, since the whole graph changes
// every turn anyway.
func (r *sqliteRepository) UpdateEncounter(e *combat.Encounter) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var rec EncounterRecord
		if err := tx.Where("uuid = ?", e.UUID).First(&rec).Error; err != nil {
			return err
		}
		if err := tx.Where("encounter_record_id = ?", rec.ID).Delete(&CombatantRecord{}).Error; err != nil {
			return err
		}
		fresh := ToEncounterRecord(e)
		fresh.ID = rec.ID
		fresh.CreatedAt = rec.CreatedAt
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(fresh).Error
	})
}

func (r *sqliteRepository) ListActiveEncounters() ([]*combat.Encounter, error) {
	var recs []EncounterRecord
	if err := r.db.Preload("Combatants").Where("status = ?", combat.StatusInProgress).Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*combat.Encounter, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].ToEncounter())
	}
	return out, nil
}
