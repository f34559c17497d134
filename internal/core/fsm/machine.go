package fsm

import (
	"github.com/skirmish/skirmish/internal/core/entity"
	"github.com/skirmish/skirmish/internal/core/events/bus"
	"github.com/skirmish/skirmish/internal/core/observability/log"
)

// EventStateChanged is published on every accepted transition. Data carries
// "from", "to" and the entity name.
const EventStateChanged = "state.changed"

// Machine drives a single entity through the five character states. Exactly
// one state is active at a time; per-state timers live in the machine and
// reset on entry.
//
// Illegal transitions, unknown states and unrecognized input codes are all
// silent no-ops. The machine never returns errors from the hot path.
type Machine struct {
	ent    *entity.Entity
	params Params
	logger log.Log
	events bus.EventBus

	current StateTag

	// Per-state data, valid only while the owning state is active.
	stateTime  float64 // elapsed time in Attacking/Casting
	regenCarry float64 // fractional mana regen accumulated while Idle
}

// NewMachine creates a machine for the entity and enters Idle. Logger and
// event bus may be nil.
func NewMachine(ent *entity.Entity, params Params, logger log.Log, events bus.EventBus) *Machine {
	if logger == nil {
		logger = log.NewNop()
	}
	m := &Machine{
		ent:     ent,
		params:  params,
		logger:  logger,
		events:  events,
		current: StateIdle,
	}
	m.enter(StateIdle)
	return m
}

// Entity returns the controlled entity.
func (m *Machine) Entity() *entity.Entity { return m.ent }

// Current returns the active state tag.
func (m *Machine) Current() StateTag { return m.current }

// StateElapsed returns time accumulated in the active state's timer.
func (m *Machine) StateElapsed() float64 { return m.stateTime }

// HandleInput dispatches an input code to the active state. Codes a state
// does not recognize are ignored.
func (m *Machine) HandleInput(code int) {
	switch m.current {
	case StateIdle:
		m.idleInput(code)
	case StateWalking:
		m.walkingInput(code)
	case StateJumping:
		m.jumpingInput(code)
	case StateAttacking:
		// Attacks run to completion; input cannot interrupt them.
	case StateCasting:
		m.castingInput(code)
	}
}

// Update advances the active state by dt and applies any automatic
// transition whose condition is met.
func (m *Machine) Update(dt float64) {
	switch m.current {
	case StateIdle:
		m.idleUpdate(dt)
	case StateWalking:
		// Walking has no time-based behavior; leaving requires input.
	case StateJumping:
		m.jumpingUpdate(dt)
	case StateAttacking:
		m.attackingUpdate(dt)
	case StateCasting:
		m.castingUpdate(dt)
	}
}

// SetStateByName looks the name up and transitions if the guard allows it.
// Unknown names are silent no-ops.
func (m *Machine) SetStateByName(name string) {
	if tag, ok := ParseState(name); ok {
		m.SetState(tag)
	}
}

// SetState transitions to the named state if the guard allows it. Rejected
// and unknown transitions leave the machine untouched.
func (m *Machine) SetState(to StateTag) {
	if to >= stateCount {
		return
	}
	if !CanTransition(m.current, to) {
		return
	}

	from := m.current
	m.exit(from)
	m.current = to
	m.stateTime = 0

	m.logger.Debug("state changed",
		log.String("entity", m.ent.Name()),
		log.String("from", from.String()),
		log.String("to", to.String()),
	)
	m.publish(from, to)

	// The enter hook may itself transition (Casting reverts to Idle when mana
	// is short), so it runs after the change above is fully observable.
	m.enter(to)
}

func (m *Machine) enter(s StateTag) {
	switch s {
	case StateIdle:
		m.ent.SetMoveSpeed(0)
	case StateWalking:
		m.ent.SetMoveSpeed(m.params.WalkSpeed)
	case StateJumping:
		m.ent.SetGrounded(false)
		m.ent.SetJumpVelocity(m.params.JumpForce)
	case StateAttacking:
		m.ent.SetMoveSpeed(0)
		// The attack effect lands on entry, not on completion.
		m.ent.Attack()
	case StateCasting:
		m.ent.SetMoveSpeed(0)
		if m.ent.Mana() < m.params.ManaCost {
			// Not enough mana: revert to Idle in the same call, no cost.
			m.SetState(StateIdle)
		}
	}
}

func (m *Machine) exit(s StateTag) {
	switch s {
	case StateWalking:
		m.ent.SetMoveSpeed(0)
	}
	// Leaving Casting early forfeits nothing: mana is deducted only on
	// completion, so an interrupted cast simply never pays.
}

func (m *Machine) idleInput(code int) {
	switch code {
	case InputLeft, InputRight:
		m.SetState(StateWalking)
	case InputJump:
		if m.ent.Grounded() {
			m.SetState(StateJumping)
		}
	case InputAttack:
		m.SetState(StateAttacking)
	case InputCast:
		if m.ent.Mana() >= m.params.ManaCost {
			m.SetState(StateCasting)
		}
	}
}

func (m *Machine) idleUpdate(dt float64) {
	if m.ent.Mana() >= m.ent.MaxMana() {
		m.regenCarry = 0
		return
	}
	m.regenCarry += m.params.ManaRegenRate * dt
	if whole := int(m.regenCarry); whole > 0 {
		m.ent.SetMana(m.ent.Mana() + whole)
		m.regenCarry -= float64(whole)
	}
}

func (m *Machine) walkingInput(code int) {
	switch code {
	case InputLeft:
		m.ent.Move(-m.params.WalkSpeed*m.params.InputStep, 0)
	case InputRight:
		m.ent.Move(m.params.WalkSpeed*m.params.InputStep, 0)
	case InputJump:
		if m.ent.Grounded() {
			m.SetState(StateJumping)
		}
	case InputAttack:
		m.SetState(StateAttacking)
	case InputNone:
		m.SetState(StateIdle)
	}
}

func (m *Machine) jumpingInput(code int) {
	switch code {
	case InputLeft:
		m.ent.Move(-m.params.AirControlSpeed*m.params.InputStep, 0)
	case InputRight:
		m.ent.Move(m.params.AirControlSpeed*m.params.InputStep, 0)
	case InputAttack:
		m.SetState(StateAttacking)
	}
}

func (m *Machine) jumpingUpdate(dt float64) {
	v := m.ent.JumpVelocity() + m.params.Gravity*dt
	m.ent.SetJumpVelocity(v)
	m.ent.Move(0, v*dt)

	if m.ent.Position().Y <= 0 {
		m.ent.SetPosition(m.ent.Position().X, 0)
		m.ent.SetGrounded(true)
		m.ent.SetJumpVelocity(0)
		m.SetState(StateIdle)
	}
}

func (m *Machine) attackingUpdate(dt float64) {
	m.stateTime += dt
	if m.stateTime < m.params.AttackDuration {
		return
	}
	if m.ent.Grounded() {
		m.SetState(StateIdle)
	} else {
		m.SetState(StateJumping)
	}
}

func (m *Machine) castingInput(code int) {
	// Movement interrupts the cast. The reserved mana is never charged.
	if code == InputLeft || code == InputRight {
		m.SetState(StateWalking)
	}
}

func (m *Machine) castingUpdate(dt float64) {
	m.stateTime += dt
	if m.stateTime < m.params.CastDuration {
		return
	}
	m.ent.CastSpell(m.params.ManaCost)
	m.SetState(StateIdle)
}

func (m *Machine) publish(from, to StateTag) {
	if m.events == nil {
		return
	}
	_ = m.events.Publish(bus.NewEvent(EventStateChanged, m.ent.Name(), map[string]any{
		"from": from.String(),
		"to":   to.String(),
	}))
}
