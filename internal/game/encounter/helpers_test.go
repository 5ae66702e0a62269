package encounter_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/encounter"
)

func player() *combat.Combatant {
	return &combat.Combatant{Name: "you", MaxHP: 20, BaseAttack: 4, BaseDefence: 2}
}

func goblin() *combat.Combatant {
	return &combat.Combatant{Name: "goblin", MaxHP: 10, BaseAttack: 2, BaseDefence: 1, Behavior: combat.BehaviorDefault}
}

func orc() *combat.Combatant {
	return &combat.Combatant{Name: "orc", MaxHP: 20, BaseAttack: 4, BaseDefence: 2, Behavior: combat.BehaviorOrc}
}

func orcChief() *combat.Combatant {
	return &combat.Combatant{Name: "orc chief", MaxHP: 25, BaseAttack: 6, BaseDefence: 4, Behavior: combat.BehaviorOrcChief}
}

func newEngine() *encounter.Engine {
	return encounter.NewEngine(combat.DefaultRules(), zap.NewNop())
}

func start(t *testing.T, enemies ...*combat.Combatant) *encounter.Encounter {
	t.Helper()
	enc, err := encounter.Start(player(), enemies)
	require.NoError(t, err)
	return enc
}

func kinds(events []encounter.Event) []encounter.EventKind {
	out := make([]encounter.EventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func submit(t *testing.T, g *encounter.Engine, enc *encounter.Encounter, a combat.ActionType) encounter.CommandResult {
	t.Helper()
	res := g.Submit(enc, a)
	require.False(t, res.Rejected, "command %s rejected: %s", a, res.Reason)
	return res
}
