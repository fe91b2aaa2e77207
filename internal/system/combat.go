package system

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"delve/internal/component"
	"delve/internal/ecs"
)

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage   int
	NoEffect bool // damage was not positive; nothing changed
	Killed   bool // this attack triggered the target's death
	Message  string
	Death    string // death announcement when Killed
}

// Attack resolves one blow from attackerID against targetID.
// Damage is the attacker's power minus the target's defense; an attacker
// without a Fighter hits with power 0. The target must have a Fighter.
func Attack(w *ecs.World, attackerID, targetID ecs.EntityID) AttackResult {
	attacker, target := w.Pair(attackerID, targetID)
	if target.Fighter == nil {
		panic(fmt.Sprintf("system: attack target %d (%s) has no fighter", targetID, target.Name))
	}

	power := 0
	if attacker.Fighter != nil {
		power = attacker.Fighter.Power
	}
	damage := power - target.Fighter.Defense

	if damage <= 0 {
		return AttackResult{
			NoEffect: true,
			Message:  fmt.Sprintf("%s attacks %s but it has no effect!", capitalize(attacker.Name), target.Name),
		}
	}

	result := AttackResult{
		Damage:  damage,
		Message: fmt.Sprintf("%s attacks %s for %d hit points.", capitalize(attacker.Name), target.Name, damage),
	}
	name, policy := target.Name, target.Fighter.OnDeath
	if TakeDamage(target, damage) {
		result.Killed = true
		result.Death = deathMessage(policy, name)
	}
	return result
}

// TakeDamage subtracts a positive damage from e's Fighter. When hp falls to 0
// or below on a living entity, the death policy runs. Reports whether this
// call caused the death; later calls never do.
func TakeDamage(e *ecs.Entity, damage int) bool {
	if e.Fighter == nil {
		return false
	}
	if damage > 0 {
		e.Fighter.HP -= damage
	}
	if e.Fighter.HP <= 0 && e.Alive {
		e.Alive = false
		applyDeathPolicy(e, e.Fighter.OnDeath)
		return true
	}
	return false
}

func applyDeathPolicy(e *ecs.Entity, policy component.DeathPolicy) {
	switch policy {
	case component.PlayerDeath:
		e.Render = component.CorpseRenderable
	case component.MonsterDeath:
		e.Render = component.CorpseRenderable
		e.Blocks = false
		e.Fighter = nil
		e.AI = nil
		e.Name = "corpse of " + e.Name
	default:
		panic(fmt.Sprintf("system: unknown death policy %d", policy))
	}
}

func deathMessage(policy component.DeathPolicy, name string) string {
	if policy == component.PlayerDeath {
		return "You died!"
	}
	return fmt.Sprintf("%s is dead!", capitalize(name))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
