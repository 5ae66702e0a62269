package effect

// Effective returns base scaled by the size of every multiplier in l whose
// stat matches. A nil ledger leaves base unchanged.
//
// Postcondition: Returns base * product(Size) over matching multipliers.
func Effective(base int, l *Ledger, stat Stat) float64 {
	result := float64(base)
	if l == nil {
		return result
	}
	for _, m := range l.multipliers {
		if m.Stat == stat {
			result *= m.Size
		}
	}
	return result
}
