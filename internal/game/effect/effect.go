// Package effect provides timed stat multipliers and the calculation of
// effective stats from them.
package effect

// Stat identifies which combatant stat a multiplier scales.
// The zero value (StatUnknown) is intentionally invalid.
type Stat int

const (
	StatUnknown Stat = iota
	StatAttack
	StatDefence
)

// String returns the lowercase stat name.
func (s Stat) String() string {
	switch s {
	case StatAttack:
		return "attack"
	case StatDefence:
		return "defence"
	default:
		return "unknown"
	}
}

// Infinite marks a multiplier that never expires.
const Infinite = -1

// Multiplier scales one stat by Size until it expires.
type Multiplier struct {
	Stat Stat
	Size float64
	// Remaining is the number of further ticks the multiplier survives;
	// Infinite never expires.
	Remaining int
}

// IsInfinite reports whether the multiplier is exempt from expiry.
func (m Multiplier) IsInfinite() bool { return m.Remaining == Infinite }

// Expired reports whether the next tick will remove the multiplier.
func (m Multiplier) Expired() bool { return !m.IsInfinite() && m.Remaining <= 0 }
