package combat

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/skirmish/internal/game/effect"
)

// Behavior selects an enemy's scripted action each turn.
type Behavior int

const (
	// BehaviorDefault always attacks.
	BehaviorDefault Behavior = iota
	// BehaviorOrc raises its shield on even turns and attacks on odd turns.
	BehaviorOrc
	// BehaviorOrcChief winds up on every third turn and attacks otherwise.
	BehaviorOrcChief
)

// String returns the roster name of the behavior.
func (b Behavior) String() string {
	switch b {
	case BehaviorDefault:
		return "default"
	case BehaviorOrc:
		return "orc"
	case BehaviorOrcChief:
		return "orc_chief"
	default:
		return "unknown"
	}
}

// ParseBehavior maps a roster behavior name to its Behavior. Spaces and
// hyphens are treated as underscores; an empty name is BehaviorDefault.
//
// Postcondition: Returns a known Behavior, or an error.
func ParseBehavior(name string) (Behavior, error) {
	norm := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(strings.TrimSpace(name)))
	switch norm {
	case "", "default":
		return BehaviorDefault, nil
	case "orc":
		return BehaviorOrc, nil
	case "orc_chief":
		return BehaviorOrcChief, nil
	default:
		return BehaviorDefault, fmt.Errorf("unknown behavior %q", name)
	}
}

// IntentKind distinguishes an attack from a self-buff.
type IntentKind int

const (
	IntentAttack IntentKind = iota
	IntentBuff
)

// Intent is the action an enemy chose for the current turn. Stat, Size, and
// Duration are set only for IntentBuff.
type Intent struct {
	Kind     IntentKind
	Stat     effect.Stat
	Size     float64
	Duration int
}

// Decide returns the enemy's action for the given turn counter.
//
// Postcondition: Returns IntentAttack or a fully populated IntentBuff.
func (b Behavior) Decide(turn int, rules Rules) Intent {
	switch b {
	case BehaviorOrc:
		if turn%2 == 0 {
			return Intent{Kind: IntentBuff, Stat: effect.StatDefence, Size: rules.DefendMultiplier, Duration: DefendDuration}
		}
	case BehaviorOrcChief:
		if turn%3 == 0 {
			return Intent{Kind: IntentBuff, Stat: effect.StatAttack, Size: rules.ChargeMultiplier, Duration: ChargeDuration}
		}
	}
	return Intent{Kind: IntentAttack}
}
