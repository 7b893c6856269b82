package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/voidmarch/combat/internal/ai"
	"github.com/voidmarch/combat/internal/combat"
	"github.com/voidmarch/combat/internal/engine"
	"github.com/voidmarch/combat/internal/logging"
)

// TurnResult is what a resolved turn reports back to the caller.
type TurnResult struct {
	TurnNumber  int          `json:"turn_number"`
	Messages    []string     `json:"messages"`
	PlayerState combat.State `json:"player_state"`
	EnemyState  combat.State `json:"enemy_state"`
	Finished    bool         `json:"finished"`
}

// turnContext accumulates the narrative and shared machinery of one turn.
type turnContext struct {
	resolver *engine.Resolver
	catalog  []combat.Technique
	messages []string
}

func (t *turnContext) addf(format string, args ...interface{}) {
	t.messages = append(t.messages, fmt.Sprintf(format, args...))
}

// SubmitAction resolves one full turn: the player's declared action against
// the AI's choice for the enemy, ordered by initiative. The encounter is
// persisted once, at the end of the turn.
func SubmitAction(repo EncounterRepo, rng combat.Source, encounterUUID string, action combat.Action, techniqueName string, catalog []combat.Technique) (*combat.Encounter, *TurnResult, error) {
	e, err := repo.GetEncounterByUUID(encounterUUID)
	if err != nil || e == nil {
		return nil, nil, ErrEncounterNotFound
	}
	if e.Status != combat.StatusInProgress {
		return nil, nil, ErrEncounterNotInProgress
	}
	if !action.IsAttack() && !action.IsDefense() {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	// Validate the player's technique up front so a bad request mutates
	// nothing. A stamina shortfall is not an error; it surfaces as a
	// wasted action during resolution.
	var technique *combat.Technique
	if techniqueName != "" {
		technique = engine.FindTechnique(catalog, techniqueName)
		if technique == nil {
			return nil, nil, fmt.Errorf("%w: %q", engine.ErrInvalidTechnique, techniqueName)
		}
		if e.Player.WeaponSkill() < technique.SkillRequirement || !technique.AllowsWeapon(e.Player.Weapon) {
			return nil, nil, fmt.Errorf("%w: %q", engine.ErrInvalidTechnique, techniqueName)
		}
	}

	env := engine.NewEnvironment(toFactors(e.Factors)...)
	resolver := engine.NewResolver(rng, env)
	turn := &turnContext{resolver: resolver, catalog: catalog}

	decision := ai.ChooseAction(e.Enemy, e.Player, catalog, rng)
	e.Player.PendingAction = action
	e.Enemy.PendingAction = decision.Action

	playerFirst, initText := resolver.CalculateInitiative(
		&e.Player.Stats, &e.Enemy.Stats, e.Player.WeaponSkill(), e.Enemy.WeaponSkill())
	turn.addf("%s", initText)

	type move struct {
		actor, target *combat.Combatant
		action        combat.Action
		technique     *combat.Technique
	}
	moves := []move{
		{e.Player, e.Enemy, action, technique},
		{e.Enemy, e.Player, decision.Action, decision.Technique},
	}
	if !playerFirst {
		moves[0], moves[1] = moves[1], moves[0]
	}

	for _, m := range moves {
		if e.Player.State().Downed() || e.Enemy.State().Downed() {
			break
		}
		turn.act(m.actor, m.target, m.action, m.technique)
	}

	e.Player.TickComboWindow()
	e.Enemy.TickComboWindow()
	tickCooldowns(e.Player)
	tickCooldowns(e.Enemy)

	finishEncounter(e)
	e.TurnCount++
	e.LastTurnSummary = strings.Join(turn.messages, " ")

	result := &TurnResult{
		TurnNumber:  e.TurnCount - 1,
		Messages:    turn.messages,
		PlayerState: e.Player.State(),
		EnemyState:  e.Enemy.State(),
		Finished:    e.Status == combat.StatusFinished,
	}

	if err := repo.UpdateEncounter(e); err != nil {
		return nil, nil, err
	}
	logging.Info("turn resolved", logging.Fields{
		"uuid":     e.UUID,
		"turn":     result.TurnNumber,
		"finished": result.Finished,
	})
	return e, result, nil
}

// act resolves one combatant's declared move against the other.
func (t *turnContext) act(actor, target *combat.Combatant, action combat.Action, technique *combat.Technique) {
	if actor.Stats.IsStunned {
		actor.Stats.StunDuration--
		if actor.Stats.StunDuration <= 0 {
			actor.Stats.IsStunned = false
		}
		t.addf("%s is stunned and loses the action.", actor.Name)
		return
	}
	if !actor.Stats.IsConscious {
		t.addf("%s is out cold.", actor.Name)
		return
	}

	if action.IsDefense() {
		// Held until the opponent's attack resolves against it.
		t.addf("%s braces for a %s.", actor.Name, action)
		return
	}

	if technique != nil {
		t.actTechnique(actor, target, technique)
		return
	}

	weaponDamage := 5.0
	dt := combat.DamageBlunt
	if actor.Weapon != nil {
		weaponDamage = actor.Weapon.EffectiveDamage()
		dt = actor.Weapon.DamageType
	}

	// Reach advantage folds into the skill differential: the hit formula
	// divides the difference by 100, so one point of advantage is worth
	// a hundred skill points' sliver.
	skill := actor.WeaponSkill() + int(engine.ReachAdvantage(actor.Weapon, target.Weapon)*100)

	executed, res := t.resolver.PerformAttack(
		&actor.Stats, &target.Stats, skill, target.DefenseSkill(), action, weaponDamage, dt)
	if !executed {
		t.addf("%s is too spent to follow through.", actor.Name)
		return
	}

	actor.RecordAction(action)
	target.Memory.Observe(action)

	if !res.Hit {
		t.addf("%s swings wide; %s.", actor.Name, res.Description)
		return
	}

	damage := res.Damage

	// A held defensive reaction is consumed by the first incoming hit.
	if reaction := target.PendingAction; reaction.IsDefense() {
		target.PendingAction = combat.ActionNone
		if ok, reduction := t.resolver.PerformDefense(&target.Stats, target.DefenseSkill(), reaction); ok {
			damage = math.Round(damage*(1-reduction)*10) / 10
			t.addf("%s answers with a %s.", target.Name, reaction)
		}
	}

	if target.Armor != nil {
		damage = math.Max(0, math.Round((damage-target.Armor.ProtectionFor(res.BodyPart, dt))*10)/10)
	}

	if damage <= 0 {
		t.addf("%s's attack is turned aside completely.", actor.Name)
		engine.WeaponDegradation(actor.Weapon, action)
		if target.Armor != nil {
			target.Armor.Degrade(engine.ArmorWearPerHit)
		}
		return
	}

	// Reduced damage means a shallower wound and less pain than the raw
	// attack carried.
	injury := res.Injury
	pain := res.PainCaused
	if damage < res.Damage {
		pain = res.PainCaused * damage / res.Damage
		injury = nil
		if damage > 5 {
			injury = combat.NewInjury(res.BodyPart, damage, dt)
		}
	}

	desc := t.resolver.ApplyDamage(&target.Stats, damage, pain, res.BodyPart, dt, injury)
	if injury != nil {
		target.AddInjury(injury)
	}
	t.addf("%s lands %s; %s %s.", actor.Name, res.Description, target.Name, desc)

	engine.WeaponDegradation(actor.Weapon, action)
	if target.Armor != nil {
		target.Armor.Degrade(engine.ArmorWearPerHit)
	}

	target.Memory.LastDamageTaken = damage
	actor.Memory.LastDamageDealt = damage

	if combo := engine.ComboOpportunity(actor, t.catalog); combo != nil {
		t.addf("%s has an opening for %s!", actor.Name, combo.Name)
	}
}

func (t *turnContext) actTechnique(actor, target *combat.Combatant, technique *combat.Technique) {
	executed, res, err := t.resolver.ExecuteTechnique(actor, target, technique)
	if err != nil {
		t.addf("%s fumbles the maneuver.", actor.Name)
		return
	}
	actor.RecordAction(combat.ActionBasicAttack)
	target.Memory.Observe(combat.ActionBasicAttack)
	if !executed || !res.Hit {
		t.addf("%s: %s.", actor.Name, res.Description)
		return
	}
	engine.WeaponDegradation(actor.Weapon, combat.ActionBasicAttack)
	target.Memory.LastDamageTaken = res.Damage
	actor.Memory.LastDamageDealt = res.Damage
	t.addf("%s executes %s.", actor.Name, res.Description)
}

// finishEncounter derives the end-of-combat outcome from the lifecycle
// states. A downed enemy counts as victory even if the player drops too.
func finishEncounter(e *combat.Encounter) {
	switch {
	case e.Enemy.State().Downed():
		e.Status = combat.StatusFinished
		e.Outcome = combat.OutcomeVictory
		e.Winner = e.Player.Name
	case e.Player.State().Downed():
		e.Status = combat.StatusFinished
		e.Outcome = combat.OutcomeDefeat
		e.Winner = e.Enemy.Name
	}
}

func tickCooldowns(c *combat.Combatant) {
	for name, turns := range c.VoidCooldowns {
		if turns <= 1 {
			delete(c.VoidCooldowns, name)
		} else {
			c.VoidCooldowns[name] = turns - 1
		}
	}
}

func toFactors(names []string) []engine.Factor {
	out := make([]engine.Factor, 0, len(names))
	for _, n := range names {
		out = append(out, engine.Factor(n))
	}
	return out
}
