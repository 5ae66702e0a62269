package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/effect"
)

func newCombatant(name string, hp, atk, def int) *combat.Combatant {
	c := &combat.Combatant{Name: name, MaxHP: hp, BaseAttack: atk, BaseDefence: def}
	c.Init()
	return c
}

func TestCombatant_Init_RestoresHPAndClearsMultipliers(t *testing.T) {
	c := newCombatant("you", 20, 4, 2)
	c.HP = 3
	_, err := c.Multipliers.Add(effect.StatAttack, 2, 1)
	require.NoError(t, err)
	c.Init()
	assert.Equal(t, 20, c.HP)
	assert.Equal(t, 0, c.Multipliers.Len())
}

func TestCombatant_IsAlive(t *testing.T) {
	c := newCombatant("goblin", 10, 2, 1)
	assert.True(t, c.IsAlive())
	c.HP = 0
	assert.False(t, c.IsAlive())
	c.HP = -3
	assert.False(t, c.IsAlive())
}

func TestCombatant_EffectiveStats(t *testing.T) {
	c := newCombatant("you", 20, 4, 2)
	_, _ = c.Multipliers.Add(effect.StatAttack, 2, 1)
	_, _ = c.Multipliers.Add(effect.StatDefence, 3, 0)
	assert.Equal(t, 8.0, c.EffectiveAttack())
	assert.Equal(t, 6.0, c.EffectiveDefence())
	assert.Equal(t, 0.0, c.EffectiveStat(effect.StatUnknown))
}

func TestParseAction(t *testing.T) {
	for name, want := range map[string]combat.ActionType{
		"attack": combat.ActionAttack,
		"Charge": combat.ActionCharge,
		"DEFEND": combat.ActionDefend,
	} {
		got, err := combat.ParseAction(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
		assert.Equal(t, want.String(), got.String())
	}
	got, err := combat.ParseAction("flee")
	assert.Error(t, err)
	assert.Equal(t, combat.ActionUnknown, got)
	assert.Equal(t, "unknown", got.String())
}

func TestPropertyCombatant_InitAlwaysFullHealth(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxHP := rapid.IntRange(1, 200).Draw(rt, "max_hp")
		hp := rapid.IntRange(-50, 200).Draw(rt, "hp")
		c := &combat.Combatant{Name: "x", MaxHP: maxHP, HP: hp}
		c.Init()
		assert.Equal(rt, maxHP, c.HP)
		assert.True(rt, c.IsAlive())
	})
}
