package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skirmish/skirmish/internal/core/entity"
)

func newTestMachine(t *testing.T) (*Machine, *entity.Entity) {
	t.Helper()
	ent := entity.NewCharacter("test")
	return NewMachine(ent, DefaultParams(), nil, nil), ent
}

func TestMachine_StartsIdle(t *testing.T) {
	m, ent := newTestMachine(t)

	assert.Equal(t, StateIdle, m.Current())
	assert.Zero(t, ent.MoveSpeed())
	assert.True(t, ent.Grounded())
}

func TestMachine_WalkingHasNoTimeBasedExit(t *testing.T) {
	m, _ := newTestMachine(t)

	m.HandleInput(InputRight)
	require.Equal(t, StateWalking, m.Current())

	// No further input: Walking must not auto-revert.
	m.Update(0.5)
	assert.Equal(t, StateWalking, m.Current())

	m.HandleInput(InputNone)
	assert.Equal(t, StateIdle, m.Current())
}

func TestMachine_UnrecognizedInputIsNoop(t *testing.T) {
	m, ent := newTestMachine(t)

	m.HandleInput(99)
	assert.Equal(t, StateIdle, m.Current())
	assert.Zero(t, ent.Position().X)

	m.HandleInput(InputRight)
	require.Equal(t, StateWalking, m.Current())
	before := ent.Position()

	m.HandleInput(99)
	assert.Equal(t, StateWalking, m.Current())
	assert.Equal(t, before, ent.Position())
}

func TestMachine_GuardRejectionLeavesTimersUntouched(t *testing.T) {
	m, _ := newTestMachine(t)

	m.HandleInput(InputAttack)
	require.Equal(t, StateAttacking, m.Current())

	m.Update(0.3)
	require.InDelta(t, 0.3, m.StateElapsed(), 1e-9)

	// Attacking -> Casting is not in the table.
	m.SetState(StateCasting)
	assert.Equal(t, StateAttacking, m.Current())
	assert.InDelta(t, 0.3, m.StateElapsed(), 1e-9)

	// Unknown tags are ignored as well.
	m.SetState(StateTag(99))
	assert.Equal(t, StateAttacking, m.Current())
}

func TestMachine_SetStateByName(t *testing.T) {
	m, _ := newTestMachine(t)

	m.SetStateByName("walking")
	assert.Equal(t, StateWalking, m.Current())

	m.SetStateByName("levitating")
	assert.Equal(t, StateWalking, m.Current())
}

func TestMachine_JumpMatchesDirectIntegration(t *testing.T) {
	m, ent := newTestMachine(t)
	p := DefaultParams()

	m.HandleInput(InputJump)
	require.Equal(t, StateJumping, m.Current())
	require.False(t, ent.Grounded())
	require.Equal(t, p.JumpForce, ent.JumpVelocity())

	y := 0.0
	v := p.JumpForce
	const dt = 0.016

	landings := 0
	for i := 0; i < 2000 && m.Current() == StateJumping; i++ {
		v += p.Gravity * dt
		y += v * dt

		m.Update(dt)

		if y > 0 {
			assert.InDelta(t, y, ent.Position().Y, 1e-9)
		} else {
			landings++
		}
	}

	// Landed exactly once, clamped, grounded, back to Idle.
	assert.Equal(t, 1, landings)
	assert.Equal(t, StateIdle, m.Current())
	assert.Zero(t, ent.Position().Y)
	assert.Zero(t, ent.JumpVelocity())
	assert.True(t, ent.Grounded())
}

func TestMachine_AttackAutoTransitionsWhenGrounded(t *testing.T) {
	m, ent := newTestMachine(t)

	m.HandleInput(InputAttack)
	require.Equal(t, StateAttacking, m.Current())
	// The attack effect lands on entry.
	assert.Equal(t, 1, ent.AttacksDelivered())

	m.Update(0.49)
	assert.Equal(t, StateAttacking, m.Current())

	m.Update(0.01)
	assert.Equal(t, StateIdle, m.Current())
}

func TestMachine_AttackAutoTransitionsToJumpingWhenAirborne(t *testing.T) {
	m, ent := newTestMachine(t)

	m.HandleInput(InputJump)
	require.Equal(t, StateJumping, m.Current())

	m.HandleInput(InputAttack)
	require.Equal(t, StateAttacking, m.Current())
	require.False(t, ent.Grounded())

	m.Update(0.5)
	assert.Equal(t, StateJumping, m.Current())
}

func TestMachine_CastCompletionConsumesMana(t *testing.T) {
	m, ent := newTestMachine(t)
	require.Equal(t, 50, ent.Mana())

	m.HandleInput(InputCast)
	require.Equal(t, StateCasting, m.Current())

	m.Update(1.0)
	assert.Equal(t, StateIdle, m.Current())
	assert.Equal(t, 40, ent.Mana())
	assert.Equal(t, 1, ent.SpellsCast())
}

func TestMachine_CastInterruptForfeitsNoMana(t *testing.T) {
	m, ent := newTestMachine(t)

	m.HandleInput(InputCast)
	require.Equal(t, StateCasting, m.Current())

	m.Update(0.4)
	m.HandleInput(InputRight)

	assert.Equal(t, StateWalking, m.Current())
	assert.Equal(t, 50, ent.Mana())
	assert.Zero(t, ent.SpellsCast())
}

func TestMachine_CastWithInsufficientManaRevertsImmediately(t *testing.T) {
	m, ent := newTestMachine(t)
	ent.SetMana(5)

	// The Idle input handler gates on mana, so the cast never starts.
	m.HandleInput(InputCast)
	assert.Equal(t, StateIdle, m.Current())

	// A direct transition reverts inside the same call, with no mana change.
	m.SetState(StateCasting)
	assert.Equal(t, StateIdle, m.Current())
	assert.Equal(t, 5, ent.Mana())
	assert.Zero(t, ent.SpellsCast())
}

func TestMachine_IdleRegeneratesManaTowardCap(t *testing.T) {
	m, ent := newTestMachine(t)
	ent.SetMana(30)

	m.Update(1.0)
	assert.Equal(t, 35, ent.Mana())

	// Fractional regen accumulates across small frames: 60 steps of 0.016
	// is 0.96 time-units, worth 4.8 mana, of which 4 whole points land.
	for i := 0; i < 60; i++ {
		m.Update(0.016)
	}
	assert.Equal(t, 39, ent.Mana())

	m.Update(10.0)
	assert.Equal(t, ent.MaxMana(), ent.Mana())
}

func TestMachine_WalkingMovesOnInput(t *testing.T) {
	m, ent := newTestMachine(t)
	p := DefaultParams()

	m.HandleInput(InputRight)
	require.Equal(t, StateWalking, m.Current())
	require.Equal(t, p.WalkSpeed, ent.MoveSpeed())

	m.HandleInput(InputRight)
	assert.InDelta(t, p.WalkSpeed*p.InputStep, ent.Position().X, 1e-9)

	m.HandleInput(InputLeft)
	assert.InDelta(t, 0, ent.Position().X, 1e-9)
}

func TestMachine_JumpingAirControlIsReduced(t *testing.T) {
	m, ent := newTestMachine(t)
	p := DefaultParams()

	m.HandleInput(InputJump)
	require.Equal(t, StateJumping, m.Current())

	m.HandleInput(InputRight)
	assert.InDelta(t, p.AirControlSpeed*p.InputStep, ent.Position().X, 1e-9)
	assert.Equal(t, StateJumping, m.Current())
}

func TestMachine_JumpRequiresGround(t *testing.T) {
	m, ent := newTestMachine(t)
	ent.SetGrounded(false)

	m.HandleInput(InputJump)
	assert.Equal(t, StateIdle, m.Current())
}
