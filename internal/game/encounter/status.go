package encounter

import "github.com/cory-johannsen/skirmish/internal/game/combat"

// Who selects which side of the encounter Query reports on.
type Who int

const (
	WhoPlayer Who = iota
	WhoEnemy
)

// Status is a read-only snapshot of one combatant.
type Status struct {
	Name             string
	HP               int
	MaxHP            int
	EffectiveAttack  float64
	EffectiveDefence float64
}

// Query reports the current status of the player or the current enemy.
//
// Postcondition: Returns (status, true), or (Status{}, false) when who is
// WhoEnemy and the roster is exhausted. Never mutates enc.
func Query(enc *Encounter, who Who) (Status, bool) {
	var c *combat.Combatant
	switch who {
	case WhoPlayer:
		c = enc.Player
	case WhoEnemy:
		c = enc.CurrentEnemy()
	}
	if c == nil {
		return Status{}, false
	}
	return Status{
		Name:             c.Name,
		HP:               c.HP,
		MaxHP:            c.MaxHP,
		EffectiveAttack:  c.EffectiveAttack(),
		EffectiveDefence: c.EffectiveDefence(),
	}, true
}
