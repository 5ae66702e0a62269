package combat

import "math"

// MinDamage is the least damage any attack deals.
const MinDamage = 1

// AttackResult holds the outcome of a single attack.
type AttackResult struct {
	Attacker string
	Target   string
	// Attack is the attacker's effective attack at resolution time.
	Attack float64
	// Defence is the target's effective defence at resolution time.
	Defence float64
	Damage  int
	// TargetHP is the target's hit points after damage; may be negative.
	TargetHP int
}

// DamageFor returns floor(attack - defence), floored again at MinDamage.
//
// Postcondition: Returns >= MinDamage.
func DamageFor(attack, defence float64) int {
	dmg := math.Floor(attack - defence)
	if dmg < MinDamage {
		return MinDamage
	}
	return int(dmg)
}

// ResolveAttack applies one attack from attacker to target. It does not decide
// whether the encounter has ended; callers check IsAlive afterwards.
//
// Precondition: attacker and target must be non-nil.
// Postcondition: target.HP is reduced by the returned Damage, which is >= MinDamage.
func ResolveAttack(attacker, target *Combatant) AttackResult {
	atk := attacker.EffectiveAttack()
	def := target.EffectiveDefence()
	dmg := DamageFor(atk, def)
	target.HP -= dmg
	return AttackResult{
		Attacker: attacker.Name,
		Target:   target.Name,
		Attack:   atk,
		Defence:  def,
		Damage:   dmg,
		TargetHP: target.HP,
	}
}
