package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntity_HealthClamping(t *testing.T) {
	e := NewCharacter("hero")

	e.TakeDamage(250)
	assert.Zero(t, e.Health())
	assert.False(t, e.Alive())

	e.Heal(500)
	assert.Equal(t, e.MaxHealth(), e.Health())
}

func TestEntity_ManaClamping(t *testing.T) {
	e := NewCharacter("hero")

	e.SetMana(-10)
	assert.Zero(t, e.Mana())

	e.SetMana(999)
	assert.Equal(t, e.MaxMana(), e.Mana())
}

func TestEntity_HealthRatio(t *testing.T) {
	e := NewEnemy("grunt", 0, 0)

	e.SetHealth(15)
	assert.InDelta(t, 0.15, e.HealthRatio(), 1e-9)
}

func TestEntity_DistanceToTarget(t *testing.T) {
	e := NewEnemy("grunt", 0, 0)

	// No target set.
	assert.Equal(t, -1.0, e.DistanceToTarget())

	e.SetTarget(3, 4)
	assert.Equal(t, 5.0, e.DistanceToTarget())

	e.ClearTarget()
	assert.Equal(t, -1.0, e.DistanceToTarget())
}

func TestEntity_MoveTowardDeadband(t *testing.T) {
	e := NewEnemy("grunt", 0, 0)

	// Inside the one-unit deadband nothing moves.
	e.MoveToward(0.5, 0, 1.0)
	assert.Zero(t, e.Position().X)

	e.MoveToward(100, 0, 0.1)
	assert.InDelta(t, 5.0, e.Position().X, 1e-9) // speed 50 * 0.1
}

func TestEntity_FleeFrom(t *testing.T) {
	e := NewEnemy("grunt", 10, 0)

	e.FleeFrom(0, 0, 1.5, 0.1)
	assert.InDelta(t, 17.5, e.Position().X, 1e-9)

	// Fleeing from the exact current position has no direction.
	before := e.Position()
	e.FleeFrom(before.X, before.Y, 1.5, 0.1)
	assert.Equal(t, before, e.Position())
}

func TestEntity_EffectCounters(t *testing.T) {
	e := NewCharacter("hero")
	require.Equal(t, 50, e.Mana())

	e.Attack()
	e.Attack()
	assert.Equal(t, 2, e.AttacksDelivered())

	e.CastSpell(10)
	assert.Equal(t, 40, e.Mana())
	assert.Equal(t, 1, e.SpellsCast())
}

func TestEntity_Identity(t *testing.T) {
	a := NewCharacter("hero")
	b := NewCharacter("hero")

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "hero", a.Name())
}
