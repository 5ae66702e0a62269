package text

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/skirmish/internal/game/command"
	"github.com/cory-johannsen/skirmish/internal/game/effect"
	"github.com/cory-johannsen/skirmish/internal/game/encounter"
)

// CannotActHint is shown when the player issues a command they cannot act on.
const CannotActHint = "you need to start a new game with start"

// Renderer formats encounter output for one terminal.
type Renderer struct {
	Palette Palette
}

// NewRenderer creates a Renderer; color enables ANSI styling.
func NewRenderer(color bool) *Renderer {
	return &Renderer{Palette: Palette{Enabled: color}}
}

// Welcome introduces the first opponent of a fresh encounter.
func (r *Renderer) Welcome(enc *encounter.Encounter) string {
	enemy := enc.CurrentEnemy()
	if enemy == nil {
		return ""
	}
	line := r.Palette.Colorf(BrightYellow, "welcome! your first opponent is %s (%d/%d)", enemy.Name, enemy.HP, enemy.MaxHP)
	return withDescription(line, enemy.Description)
}

func withDescription(line, description string) string {
	if description == "" {
		return line
	}
	return line + "\n" + description
}

// Result renders every event of a command result, one line per message.
// A command rejected because the game is finished (or never started, with an
// empty Reason) renders the cannot-act hint; any other rejection renders its reason.
func (r *Renderer) Result(playerName string, res encounter.CommandResult) string {
	if res.Rejected {
		switch res.Reason {
		case "", encounter.ReasonEncounterOver, encounter.ReasonPlayerDown:
			return r.Palette.Colorize(Dim, CannotActHint)
		default:
			return r.Palette.Colorf(Dim, "command rejected: %s", res.Reason)
		}
	}
	lines := make([]string, 0, len(res.Events))
	for _, e := range res.Events {
		if s := r.Event(playerName, e); s != "" {
			lines = append(lines, s)
		}
	}
	return strings.Join(lines, "\n")
}

// Event renders one event. playerName distinguishes the player's own stances
// from an enemy's.
func (r *Renderer) Event(playerName string, e encounter.Event) string {
	isPlayer := e.Actor == playerName
	switch e.Kind {
	case encounter.EventDamageDealt:
		return r.Palette.Colorf(Red, "%s did %d damage to %s", e.Actor, e.Damage, e.Target) + "\n" +
			fmt.Sprintf("%s has %dhp left!", e.Target, e.HP)
	case encounter.EventMultiplierAdded:
		return r.Palette.Colorize(Cyan, stanceLine(e, isPlayer))
	case encounter.EventMultiplierExpired:
		if isPlayer {
			return r.Palette.Colorf(Dim, "your %s bonus wears off", e.Multiplier.Stat)
		}
		return r.Palette.Colorf(Dim, "the %s's %s bonus wears off", e.Actor, e.Multiplier.Stat)
	case encounter.EventEnemyDefeated:
		return r.Palette.Colorf(BrightGreen, "You have defeated the %s!", e.Target)
	case encounter.EventOpponentEngaged:
		return withDescription(r.Palette.Colorf(BrightYellow, "Your next opponent is %s (%d/%d)", e.Target, e.HP, e.MaxHP), e.Description)
	case encounter.EventPlayerDefeated:
		return r.Palette.Colorf(BrightRed, "You've been defeated by %s!", e.Actor)
	case encounter.EventVictory:
		return r.Palette.Colorize(Bold+BrightGreen, "you win!")
	default:
		return ""
	}
}

func stanceLine(e encounter.Event, isPlayer bool) string {
	switch {
	case isPlayer && e.Multiplier.Stat == effect.StatAttack:
		return "you charge up your attack"
	case isPlayer:
		return "you take a defensive stance"
	case e.Multiplier.Stat == effect.StatAttack:
		return fmt.Sprintf("%s winds up his weapon!", e.Actor)
	default:
		return fmt.Sprintf("%s raises his shield!", e.Actor)
	}
}

// Status renders a status line such as "You have 20/20hp, 4 attack and 2 defence".
// ok is the second result of encounter.Query.
func (r *Renderer) Status(who encounter.Who, s encounter.Status, ok bool) string {
	if !ok {
		return r.Palette.Colorize(Dim, "there is no one left to fight")
	}
	prefix := "You have"
	if who == encounter.WhoEnemy {
		prefix = fmt.Sprintf("The %s has", s.Name)
	}
	return r.Palette.Colorf(White, "%s %d/%dhp, %g attack and %g defence", prefix, s.HP, s.MaxHP, s.EffectiveAttack, s.EffectiveDefence)
}

// Help lists every command with its aliases, grouped by category.
func (r *Renderer) Help(reg *command.Registry) string {
	var b strings.Builder
	for i, cat := range reg.Categories() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.Palette.Colorize(Bold, cat))
		for _, cmd := range reg.Commands() {
			if cmd.Category != cat {
				continue
			}
			b.WriteString("\n  ")
			b.WriteString(r.HelpFor(cmd))
		}
	}
	return b.String()
}

// HelpFor renders one command with its aliases and help text.
func (r *Renderer) HelpFor(cmd *command.Command) string {
	name := cmd.Name
	if len(cmd.Aliases) > 0 {
		name += " (" + strings.Join(cmd.Aliases, ", ") + ")"
	}
	return fmt.Sprintf("%s - %s", r.Palette.Colorize(Cyan, name), cmd.Help)
}
