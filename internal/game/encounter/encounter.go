// Package encounter runs a player through an ordered roster of enemies: it
// owns the turn state machine, death checks, and opponent progression.
package encounter

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
)

// Phase is the turn state machine position.
type Phase int

const (
	PhaseAwaitingCommand Phase = iota
	PhaseEnemyActing
	PhaseRoundComplete
	PhaseEncounterOver // terminal
)

// String returns a human-readable phase label.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingCommand:
		return "awaiting_command"
	case PhaseEnemyActing:
		return "enemy_acting"
	case PhaseRoundComplete:
		return "round_complete"
	case PhaseEncounterOver:
		return "encounter_over"
	default:
		return "unknown"
	}
}

// Outcome is how a finished encounter ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// Encounter holds the live state of one player's run through a roster.
// It is not safe for concurrent use; each encounter is driven by one caller.
type Encounter struct {
	ID     string
	Player *combat.Combatant
	// Roster is the ordered list of enemies, fought one at a time.
	Roster []*combat.Combatant
	// CurrentIndex is the position of the current enemy; len(Roster) means victory.
	CurrentIndex int
	// TurnCounter counts completed turns against the current enemy.
	TurnCounter int
	// FirstTurn is true until the player's first command against a fresh
	// opponent has been resolved; that turn draws no enemy response.
	FirstTurn bool
	Phase     Phase
	Outcome   Outcome
}

// Start initializes player and every roster entry and returns a new Encounter
// against the first enemy.
//
// Precondition: player must be non-nil; roster must be non-empty with no nil entries.
// Postcondition: Every combatant is at full HP with no multipliers; CurrentIndex == 0;
// TurnCounter == 0; FirstTurn is true; Phase is PhaseAwaitingCommand.
func Start(player *combat.Combatant, roster []*combat.Combatant) (*Encounter, error) {
	if player == nil {
		return nil, fmt.Errorf("Start: player must not be nil")
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("Start: roster must not be empty")
	}
	for i, e := range roster {
		if e == nil {
			return nil, fmt.Errorf("Start: roster entry %d is nil", i)
		}
		e.Init()
	}
	player.Init()

	enemies := make([]*combat.Combatant, len(roster))
	copy(enemies, roster)
	return &Encounter{
		ID:        uuid.NewString(),
		Player:    player,
		Roster:    enemies,
		FirstTurn: true,
		Phase:     PhaseAwaitingCommand,
	}, nil
}

// CurrentEnemy returns the enemy being fought, or nil once the roster is exhausted.
func (e *Encounter) CurrentEnemy() *combat.Combatant {
	if e.CurrentIndex < 0 || e.CurrentIndex >= len(e.Roster) {
		return nil
	}
	return e.Roster[e.CurrentIndex]
}

// Over reports whether the encounter has reached its terminal phase.
func (e *Encounter) Over() bool {
	return e.Phase == PhaseEncounterOver
}

// CanAct reports whether the player may submit a command.
//
// Postcondition: Returns true iff the encounter is not over and the player is alive.
func (e *Encounter) CanAct() bool {
	return !e.Over() && e.Player.IsAlive()
}
