// Package combat implements combatants, attack resolution, and the scripted
// behaviors of enemies.
package combat

import "github.com/cory-johannsen/skirmish/internal/game/effect"

// Combatant is the player or one enemy of an encounter.
type Combatant struct {
	Name        string
	// Description is flavor text shown when the combatant is engaged.
	Description string
	MaxHP       int
	HP          int
	BaseAttack  int
	BaseDefence int
	// Behavior selects the scripted enemy action; ignored for the player.
	Behavior    Behavior
	Multipliers *effect.Ledger
}

// Init restores the combatant to full health with no multipliers.
//
// Postcondition: HP == MaxHP; Multipliers is non-nil and empty.
func (c *Combatant) Init() {
	c.HP = c.MaxHP
	if c.Multipliers == nil {
		c.Multipliers = effect.NewLedger()
		return
	}
	c.Multipliers.Clear()
}

// IsAlive reports whether the combatant has positive hit points.
func (c *Combatant) IsAlive() bool {
	return c.HP > 0
}

// EffectiveStat returns the combatant's base value for stat scaled by its
// active multipliers.
func (c *Combatant) EffectiveStat(stat effect.Stat) float64 {
	switch stat {
	case effect.StatAttack:
		return effect.Effective(c.BaseAttack, c.Multipliers, stat)
	case effect.StatDefence:
		return effect.Effective(c.BaseDefence, c.Multipliers, stat)
	default:
		return 0
	}
}

// EffectiveAttack is EffectiveStat(effect.StatAttack).
func (c *Combatant) EffectiveAttack() float64 { return c.EffectiveStat(effect.StatAttack) }

// EffectiveDefence is EffectiveStat(effect.StatDefence).
func (c *Combatant) EffectiveDefence() float64 { return c.EffectiveStat(effect.StatDefence) }
