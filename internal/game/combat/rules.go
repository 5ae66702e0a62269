package combat

// Durations of the player's stances, in ledger ticks.
const (
	// ChargeDuration keeps a charge active through the next enemy action.
	ChargeDuration = 1
	// DefendDuration keeps a defensive stance only through the current enemy action.
	DefendDuration = 0
)

// Rules holds the tunable sizes of the stance multipliers.
type Rules struct {
	ChargeMultiplier float64
	DefendMultiplier float64
}

// DefaultRules returns the standard rules: both stances double their stat.
func DefaultRules() Rules {
	return Rules{ChargeMultiplier: 2, DefendMultiplier: 2}
}
