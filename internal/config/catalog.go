package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/voidmarch/combat/internal/combat"
)

type rawCatalog struct {
	Techniques []combat.Technique `json:"techniques"`
}

// LoadCatalog reads a technique catalog file. It requires the key
// `techniques` and validates each entry before returning.
func LoadCatalog(path string) ([]combat.Technique, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	var rc rawCatalog
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if len(rc.Techniques) == 0 {
		return nil, fmt.Errorf("catalog file %s: techniques is empty (provide 'techniques' array)", path)
	}

	nameSet := make(map[string]struct{}, len(rc.Techniques))
	for _, t := range rc.Techniques {
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("catalog file %s: technique entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(t.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("catalog file %s: duplicate technique name '%s'", path, t.Name)
		}
		nameSet[ln] = struct{}{}
		if t.StaminaCost < 0 {
			return nil, fmt.Errorf("catalog file %s: technique '%s' has negative stamina_cost", path, t.Name)
		}
		if t.DamageMultiplier <= 0 {
			return nil, fmt.Errorf("catalog file %s: technique '%s' needs a positive damage_multiplier", path, t.Name)
		}
		if t.Tier == combat.TierCombo && len(t.ComboChain) == 0 {
			return nil, fmt.Errorf("catalog file %s: combo technique '%s' missing 'combo_chain'", path, t.Name)
		}
		for _, a := range t.ComboChain {
			if !a.IsAttack() && !a.IsDefense() {
				return nil, fmt.Errorf("catalog file %s: technique '%s' has unknown combo action '%s'", path, t.Name, a)
			}
		}
	}
	return rc.Techniques, nil
}
