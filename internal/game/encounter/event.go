package encounter

import (
	"fmt"

	"github.com/cory-johannsen/skirmish/internal/game/effect"
)

// EventKind identifies what an Event reports.
type EventKind int

const (
	EventDamageDealt EventKind = iota
	EventMultiplierAdded
	EventMultiplierExpired
	EventEnemyDefeated
	EventPlayerDefeated
	EventVictory
	// EventOpponentEngaged announces the next enemy after a defeat.
	EventOpponentEngaged
)

// String returns a human-readable event kind label.
func (k EventKind) String() string {
	switch k {
	case EventDamageDealt:
		return "damage_dealt"
	case EventMultiplierAdded:
		return "multiplier_added"
	case EventMultiplierExpired:
		return "multiplier_expired"
	case EventEnemyDefeated:
		return "enemy_defeated"
	case EventPlayerDefeated:
		return "player_defeated"
	case EventVictory:
		return "victory"
	case EventOpponentEngaged:
		return "opponent_engaged"
	default:
		return "unknown"
	}
}

// Event records one thing that happened while resolving a command.
// Only the fields relevant to Kind are populated:
//   - EventDamageDealt: Actor, Target, Damage, HP (target HP after), MaxHP.
//   - EventMultiplierAdded, EventMultiplierExpired: Actor, Multiplier.
//   - EventEnemyDefeated: Target (the enemy), HP, MaxHP.
//   - EventOpponentEngaged: Target (the enemy), HP, MaxHP, Description.
//   - EventPlayerDefeated: Actor (the enemy that won).
//   - EventVictory: no payload.
type Event struct {
	Kind        EventKind
	Actor       string
	Target      string
	Damage      int
	HP          int
	MaxHP       int
	Multiplier  effect.Multiplier
	Description string
}

// String returns a compact description, used in logs and test failures.
func (e Event) String() string {
	switch e.Kind {
	case EventDamageDealt:
		return fmt.Sprintf("%s: %s hits %s for %d (%d/%d)", e.Kind, e.Actor, e.Target, e.Damage, e.HP, e.MaxHP)
	case EventMultiplierAdded, EventMultiplierExpired:
		return fmt.Sprintf("%s: %s %s x%g (%d)", e.Kind, e.Actor, e.Multiplier.Stat, e.Multiplier.Size, e.Multiplier.Remaining)
	case EventEnemyDefeated, EventOpponentEngaged:
		return fmt.Sprintf("%s: %s", e.Kind, e.Target)
	case EventPlayerDefeated:
		return fmt.Sprintf("%s: by %s", e.Kind, e.Actor)
	default:
		return e.Kind.String()
	}
}
