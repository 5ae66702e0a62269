package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/effect"
)

func TestResolveAttack_PlayerHitsGoblin(t *testing.T) {
	player := newCombatant("you", 20, 4, 2)
	goblin := newCombatant("goblin", 10, 2, 1)
	r := combat.ResolveAttack(player, goblin)
	assert.Equal(t, 3, r.Damage)
	assert.Equal(t, 7, r.TargetHP)
	assert.Equal(t, 7, goblin.HP)
	assert.Equal(t, "you", r.Attacker)
	assert.Equal(t, "goblin", r.Target)
	assert.Equal(t, 4.0, r.Attack)
	assert.Equal(t, 1.0, r.Defence)
}

func TestResolveAttack_UsesMultipliers(t *testing.T) {
	player := newCombatant("you", 20, 4, 2)
	orc := newCombatant("orc", 20, 4, 2)
	_, err := player.Multipliers.Add(effect.StatAttack, 2, 1)
	require.NoError(t, err)
	r := combat.ResolveAttack(player, orc)
	assert.Equal(t, 6, r.Damage) // 8 - 2
	assert.Equal(t, 14, orc.HP)
}

func TestResolveAttack_FloorOfOne(t *testing.T) {
	goblin := newCombatant("goblin", 10, 2, 1)
	player := newCombatant("you", 20, 4, 2)
	_, _ = player.Multipliers.Add(effect.StatDefence, 2, 0)
	r := combat.ResolveAttack(goblin, player) // 2 - 4
	assert.Equal(t, combat.MinDamage, r.Damage)
	assert.Equal(t, 19, player.HP)
}

func TestResolveAttack_HPMayGoNegative(t *testing.T) {
	chief := newCombatant("orc chief", 25, 6, 4)
	player := newCombatant("you", 20, 4, 2)
	player.HP = 2
	r := combat.ResolveAttack(chief, player)
	assert.Equal(t, -2, r.TargetHP)
	assert.False(t, player.IsAlive())
}

func TestDamageFor_FractionalFloors(t *testing.T) {
	assert.Equal(t, 2, combat.DamageFor(5.5, 3))
	assert.Equal(t, 1, combat.DamageFor(3.5, 3))
	assert.Equal(t, 1, combat.DamageFor(1, 100))
	assert.Equal(t, 3, combat.DamageFor(4.5, 1))
	assert.Equal(t, 4, combat.DamageFor(6, 1.5))
}

func TestResolveAttack_FractionalMultiplierFloorsDamage(t *testing.T) {
	player := newCombatant("you", 20, 3, 2)
	goblin := newCombatant("goblin", 10, 2, 1)
	_, err := player.Multipliers.Add(effect.StatAttack, 1.5, 1)
	require.NoError(t, err)
	r := combat.ResolveAttack(player, goblin) // 4.5 - 1
	assert.Equal(t, 4.5, r.Attack)
	assert.Equal(t, 3, r.Damage)
	assert.Equal(t, 7, goblin.HP)
}

func TestPropertyResolveAttack_DamageAtLeastOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		atk := rapid.IntRange(0, 20).Draw(rt, "atk")
		def := rapid.IntRange(0, 20).Draw(rt, "def")
		stacks := rapid.IntRange(0, 5).Draw(rt, "defence_stacks")
		attacker := newCombatant("a", 10, atk, 0)
		target := newCombatant("t", 50, 0, def)
		for i := 0; i < stacks; i++ {
			_, err := target.Multipliers.Add(effect.StatDefence, 2, 0)
			require.NoError(rt, err)
		}
		before := target.HP
		r := combat.ResolveAttack(attacker, target)
		assert.GreaterOrEqual(rt, r.Damage, combat.MinDamage)
		assert.Equal(rt, before-r.Damage, target.HP)
	})
}
