package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryObserve_BoundedWindow(t *testing.T) {
	var m Memory
	for i := 0; i < MemoryCapacity+5; i++ {
		m.Observe(ActionBasicAttack)
	}
	assert.Len(t, m.ObservedActions, MemoryCapacity)
	assert.Equal(t, MemoryCapacity+5, m.PreferredAttack[ActionBasicAttack],
		"frequency counts outlive the window")
}

func TestMemoryAnalyze(t *testing.T) {
	var m Memory
	for i := 0; i < 6; i++ {
		m.Observe(ActionBlock)
	}
	for i := 0; i < 3; i++ {
		m.Observe(ActionBasicAttack)
	}
	m.Observe(ActionDodge)
	m.DiscoverWeakness("slow recovery")

	sum := m.Analyze()
	assert.Equal(t, ActionBlock, sum.MostCommonAction)
	assert.Equal(t, 3, sum.ActionVariety)
	assert.InDelta(t, 0.7, sum.DefensiveTendency, 1e-9)
	assert.Equal(t, []string{"slow recovery"}, sum.Weaknesses)
}

func TestMemoryAnalyze_Empty(t *testing.T) {
	var m Memory
	sum := m.Analyze()
	assert.Equal(t, ActionNone, sum.MostCommonAction)
	assert.Zero(t, sum.DefensiveTendency)
}
