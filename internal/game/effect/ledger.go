package effect

import "fmt"

// Ledger is the ordered set of multipliers carried by one combatant.
// It is not safe for concurrent use; the caller must serialise access.
type Ledger struct {
	multipliers []Multiplier
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add appends a multiplier. Multipliers are never merged: two of the same
// stat compound.
//
// duration is the number of ticks the multiplier survives after the one that
// follows its creation: 0 applies only until the next tick, 1 survives one
// tick and is removed by the second. Use Infinite for a permanent multiplier.
//
// Precondition: stat is StatAttack or StatDefence; size > 0; duration >= Infinite.
// Postcondition: On success the new multiplier is last in All().
func (l *Ledger) Add(stat Stat, size float64, duration int) (Multiplier, error) {
	if stat != StatAttack && stat != StatDefence {
		return Multiplier{}, fmt.Errorf("Add: invalid stat %v", stat)
	}
	if size <= 0 {
		return Multiplier{}, fmt.Errorf("Add: size must be > 0, got %v", size)
	}
	if duration < Infinite {
		return Multiplier{}, fmt.Errorf("Add: duration must be >= %d, got %d", Infinite, duration)
	}
	m := Multiplier{Stat: stat, Size: size, Remaining: duration}
	l.multipliers = append(l.multipliers, m)
	return m, nil
}

// Tick advances every multiplier by one turn. Expired multipliers are removed
// first, then every survivor that is not Infinite is decremented.
//
// Postcondition: Returns the removed multipliers in their original order;
// no remaining multiplier was expired before the call.
func (l *Ledger) Tick() []Multiplier {
	var expired []Multiplier
	kept := l.multipliers[:0]
	for _, m := range l.multipliers {
		if m.Expired() {
			expired = append(expired, m)
			continue
		}
		kept = append(kept, m)
	}
	l.multipliers = kept
	for i := range l.multipliers {
		if !l.multipliers[i].IsInfinite() {
			l.multipliers[i].Remaining--
		}
	}
	return expired
}

// All returns a copy of the active multipliers in insertion order.
func (l *Ledger) All() []Multiplier {
	out := make([]Multiplier, len(l.multipliers))
	copy(out, l.multipliers)
	return out
}

// Len returns the number of active multipliers.
func (l *Ledger) Len() int { return len(l.multipliers) }

// Clear removes every multiplier.
func (l *Ledger) Clear() { l.multipliers = nil }
