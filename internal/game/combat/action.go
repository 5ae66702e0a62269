package combat

import (
	"fmt"
	"strings"
)

// ActionType identifies what the player does with a turn.
// The zero value (ActionUnknown) is intentionally invalid.
type ActionType int

const (
	ActionUnknown ActionType = iota // zero value; intentionally invalid
	ActionAttack                    // damages the current enemy
	ActionCharge                    // multiplies attack through the next enemy turn
	ActionDefend                    // multiplies defence through this enemy turn
)

// String returns the human-readable name of the ActionType.
// Postcondition: returns "attack", "charge", "defend", or "unknown".
func (a ActionType) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionCharge:
		return "charge"
	case ActionDefend:
		return "defend"
	default:
		return "unknown"
	}
}

// ParseAction maps an action name, case-insensitively, to its ActionType.
//
// Postcondition: Returns a valid ActionType, or ActionUnknown and an error.
func ParseAction(name string) (ActionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "attack":
		return ActionAttack, nil
	case "charge":
		return ActionCharge, nil
	case "defend":
		return ActionDefend, nil
	default:
		return ActionUnknown, fmt.Errorf("unknown action %q", name)
	}
}
