package combat

import "fmt"

// Fighter is the capability surface the resolver and AI need from any
// combat participant (player, NPC, summon). Every variant implements it
// explicitly instead of being probed for attributes at runtime.
type Fighter interface {
	CombatStats() *CombatStats
	EquippedWeapon() *Weapon
	EquippedArmor() *Armor
	SkillLevel(name string) int
	ActiveInjuries() []*Injury
	CombatMemory() *Memory
}

// Skill names used by the weapon-to-skill routing.
const (
	SkillBrawling    = "brawling"
	SkillDaggers     = "daggers"
	SkillSwords      = "swords"
	SkillGreatswords = "greatswords"
	SkillAxes        = "axes"
	SkillArchery     = "archery"
	SkillDefense     = "defense"
)

// Combatant is the concrete two-party participant: plain, acyclic data so
// the whole graph serializes at turn boundaries.
type Combatant struct {
	Name      string    `json:"name"`
	Archetype Archetype `json:"archetype,omitempty"`
	Stance    Stance    `json:"stance"`

	Stats    CombatStats            `json:"stats"`
	Weapon   *Weapon                `json:"weapon,omitempty"`
	Armor    *Armor                 `json:"armor,omitempty"`
	Skills   map[string]int         `json:"skills,omitempty"`
	Injuries map[BodyPart][]*Injury `json:"injuries,omitempty"`
	Memory   Memory                 `json:"memory"`

	// PendingAction is the action chosen for the current turn; defensive
	// choices are consumed when the combatant is attacked.
	PendingAction Action `json:"pending_action,omitempty"`

	// Combo tracking: a bounded window of the combatant's own recent
	// actions plus the turns left before the window expires.
	RecentActions []Action `json:"recent_actions,omitempty"`
	ComboWindow   int      `json:"combo_window,omitempty"`

	// VoidCooldowns maps ability name to turns remaining before reuse.
	VoidCooldowns map[string]int `json:"void_cooldowns,omitempty"`
}

// NewCombatant builds a combatant around a validated stat block.
func NewCombatant(name string, stats *CombatStats) (*Combatant, error) {
	if name == "" {
		return nil, fmt.Errorf("combatant: name is required")
	}
	if stats == nil {
		return nil, fmt.Errorf("combatant %s: stats are required", name)
	}
	return &Combatant{
		Name:   name,
		Stance: StanceNeutral,
		Stats:  *stats,
		Skills: make(map[string]int),
	}, nil
}

func (c *Combatant) CombatStats() *CombatStats { return &c.Stats }
func (c *Combatant) EquippedWeapon() *Weapon   { return c.Weapon }
func (c *Combatant) EquippedArmor() *Armor     { return c.Armor }
func (c *Combatant) CombatMemory() *Memory     { return &c.Memory }

// SkillLevel returns the combatant's level in a named skill, 0 if unknown.
func (c *Combatant) SkillLevel(name string) int { return c.Skills[name] }

// ActiveInjuries flattens the per-body-part collections.
func (c *Combatant) ActiveInjuries() []*Injury {
	var out []*Injury
	for _, part := range AllBodyParts() {
		out = append(out, c.Injuries[part]...)
	}
	return out
}

// AddInjury attaches a wound to its body part. The bleeding aggregate on
// the stat block is maintained by the resolver, not here.
func (c *Combatant) AddInjury(in *Injury) {
	if in == nil {
		return
	}
	if c.Injuries == nil {
		c.Injuries = make(map[BodyPart][]*Injury)
	}
	c.Injuries[in.BodyPart] = append(c.Injuries[in.BodyPart], in)
}

// WeaponSkill routes the equipped weapon class to the matching skill;
// bare hands use brawling.
func (c *Combatant) WeaponSkill() int {
	if c.Weapon == nil {
		return c.Skills[SkillBrawling]
	}
	switch c.Weapon.Class {
	case WeaponDaggers:
		return c.Skills[SkillDaggers]
	case WeaponShortSwords, WeaponLongSwords:
		return c.Skills[SkillSwords]
	case WeaponGreatSwords:
		return c.Skills[SkillGreatswords]
	case WeaponAxes, WeaponGreatAxes:
		return c.Skills[SkillAxes]
	case WeaponBows, WeaponCrossbows:
		return c.Skills[SkillArchery]
	default:
		return c.Skills[SkillBrawling]
	}
}

// DefenseSkill is the defense skill adjusted for shields and stance.
func (c *Combatant) DefenseSkill() int {
	skill := c.Skills[SkillDefense]
	if c.Weapon != nil && c.Weapon.Class == WeaponShields {
		skill += 10
	}
	switch c.Stance {
	case StanceDefensive:
		skill += 15
	case StanceAggressive:
		skill -= 10
	}
	return skill
}

// State recomputes the derived lifecycle state from the current snapshot.
func (c *Combatant) State() State {
	return ComputeState(&c.Stats, c.ActiveInjuries())
}

// RecordAction pushes an action into the combo window, resetting the
// window when it had expired. The window spans two turns.
func (c *Combatant) RecordAction(a Action) {
	if c.ComboWindow <= 0 {
		c.RecentActions = c.RecentActions[:0]
		c.ComboWindow = 2
	}
	c.RecentActions = append(c.RecentActions, a)
	if len(c.RecentActions) > MemoryCapacity {
		c.RecentActions = c.RecentActions[len(c.RecentActions)-MemoryCapacity:]
	}
}

// TickComboWindow counts the combo window down, clearing the recorded
// chain on expiry.
func (c *Combatant) TickComboWindow() {
	if c.ComboWindow > 0 {
		c.ComboWindow--
		if c.ComboWindow <= 0 {
			c.RecentActions = nil
		}
	}
}
