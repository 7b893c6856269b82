package combat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// A combatant snapshot crosses the persistence boundary at every turn, so
// the whole graph has to survive JSON without losing state.
func TestCombatantSnapshotRoundTrip(t *testing.T) {
	stats, err := NewCombatStats(100, 80, 12, 9)
	require.NoError(t, err)

	c, err := NewCombatant("Vala", stats)
	require.NoError(t, err)
	c.Archetype = ArchetypeTactical
	c.Stance = StanceAggressive
	c.Skills = map[string]int{SkillSwords: 35, SkillDefense: 20}
	c.PendingAction = ActionBlock
	c.RecentActions = []Action{ActionBasicAttack, ActionBasicAttack}
	c.ComboWindow = 2
	c.VoidCooldowns = map[string]int{"void_touch": 2}

	c.Weapon, err = NewWeapon("estoc", WeaponLongSwords, DamagePierce, 14, 1, 3, 1.4, QualityMasterwork)
	require.NoError(t, err)
	c.Weapon.Degrade(12)

	c.Armor, err = NewArmor("brigandine", map[BodyPart]float64{
		BodyTorso:    8,
		BodyLeftArm:  4,
		BodyRightArm: 4,
	}, 9, 0.1, QualityNormal)
	require.NoError(t, err)
	c.Armor.Resistances = map[DamageType]float64{DamageCut: 0.5}

	wound := NewInjury(BodyLeftLeg, 14, DamageCut)
	wound.Infected = true
	c.AddInjury(wound)
	c.Stats.IsBleeding = true
	c.Stats.TotalBleedingRate = wound.BleedingRate
	c.Stats.AddPain(22)
	c.Memory.Observe(ActionStrongAttack)
	c.Memory.LastDamageTaken = 7.5

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded Combatant
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, *c, decoded)
}
