package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidmarch/combat/internal/combat"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t, `{
		"techniques": [
			{
				"name": "overhead_chop",
				"tier": "basic",
				"weapon_classes": ["axes"],
				"skill_requirement": 5,
				"stamina_cost": 10,
				"damage_multiplier": 1.4
			},
			{
				"name": "whirlwind",
				"tier": "combo",
				"weapon_classes": ["axes"],
				"skill_requirement": 20,
				"stamina_cost": 18,
				"damage_multiplier": 2.0,
				"combo_chain": ["basic_attack", "basic_attack"]
			}
		]
	}`)

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "overhead_chop", catalog[0].Name)
	assert.Equal(t, combat.TierCombo, catalog[1].Tier)
	assert.Equal(t, []combat.Action{combat.ActionBasicAttack, combat.ActionBasicAttack}, catalog[1].ComboChain)
}

func TestLoadCatalogValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"empty list",
			`{"techniques": []}`,
			"techniques is empty",
		},
		{
			"missing name",
			`{"techniques": [{"tier": "basic", "damage_multiplier": 1.0}]}`,
			"missing 'name'",
		},
		{
			"duplicate name",
			`{"techniques": [
				{"name": "Chop", "damage_multiplier": 1.0},
				{"name": "chop", "damage_multiplier": 1.0}
			]}`,
			"duplicate technique name",
		},
		{
			"negative stamina",
			`{"techniques": [{"name": "chop", "stamina_cost": -1, "damage_multiplier": 1.0}]}`,
			"negative stamina_cost",
		},
		{
			"zero damage multiplier",
			`{"techniques": [{"name": "chop"}]}`,
			"positive damage_multiplier",
		},
		{
			"combo without chain",
			`{"techniques": [{"name": "chop", "tier": "combo", "damage_multiplier": 1.0}]}`,
			"missing 'combo_chain'",
		},
		{
			"unknown chain action",
			`{"techniques": [{"name": "chop", "damage_multiplier": 1.0, "combo_chain": ["moonwalk"]}]}`,
			"unknown combo action",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCatalog(writeCatalog(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadCatalogMalformedJSON(t *testing.T) {
	_, err := LoadCatalog(writeCatalog(t, `{"techniques": [`))
	assert.Error(t, err)
}
