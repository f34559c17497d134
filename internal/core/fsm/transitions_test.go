package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    StateTag
		to      StateTag
		allowed bool
	}{
		{StateIdle, StateWalking, true},
		{StateIdle, StateJumping, true},
		{StateIdle, StateAttacking, true},
		{StateIdle, StateCasting, true},
		{StateIdle, StateIdle, false},

		{StateWalking, StateIdle, true},
		{StateWalking, StateJumping, true},
		{StateWalking, StateAttacking, true},
		{StateWalking, StateCasting, false},

		{StateJumping, StateIdle, true},
		{StateJumping, StateAttacking, true},
		{StateJumping, StateWalking, false},
		{StateJumping, StateCasting, false},

		{StateAttacking, StateIdle, true},
		{StateAttacking, StateJumping, true},
		{StateAttacking, StateWalking, false},
		{StateAttacking, StateCasting, false},

		{StateCasting, StateIdle, true},
		{StateCasting, StateWalking, true},
		{StateCasting, StateJumping, false},
		{StateCasting, StateAttacking, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCanTransition_OutOfRange(t *testing.T) {
	assert.False(t, CanTransition(StateIdle, StateTag(99)))
	assert.False(t, CanTransition(StateTag(99), StateIdle))
}

func TestParseState(t *testing.T) {
	for _, s := range []StateTag{StateIdle, StateWalking, StateJumping, StateAttacking, StateCasting} {
		tag, ok := ParseState(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, tag)
	}

	_, ok := ParseState("levitating")
	assert.False(t, ok)
}
