package strategy

import (
	"github.com/skirmish/skirmish/internal/core/entity"
	"github.com/skirmish/skirmish/internal/core/events/bus"
	"github.com/skirmish/skirmish/internal/core/geometry"
	"github.com/skirmish/skirmish/internal/core/observability/log"
)

// EventBehaviorChanged is published on every behavior switch. Data carries
// "from", "to" and the entity name.
const EventBehaviorChanged = "behavior.changed"

// Selector periodically re-evaluates which behavior should control an entity
// and executes the active one every update. Exactly one behavior is active at
// a time; behaviors keep no entity-local data across a switch, only the
// selector's cooldown timers, which reset on activation.
type Selector struct {
	ent    *entity.Entity
	params Params
	logger log.Log
	events bus.EventBus

	current   BehaviorTag
	sinceEval float64

	// Per-behavior timers, reset when the owning behavior activates.
	attackTimer float64
	defendTimer float64

	wpIndex int
}

// NewSelector creates a selector starting in Patrol. Logger and event bus may
// be nil.
func NewSelector(ent *entity.Entity, params Params, logger log.Log, events bus.EventBus) *Selector {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Selector{
		ent:     ent,
		params:  params,
		logger:  logger,
		events:  events,
		current: BehaviorPatrol,
	}
}

// Entity returns the controlled entity.
func (s *Selector) Entity() *entity.Entity { return s.ent }

// Current returns the active behavior tag.
func (s *Selector) Current() BehaviorTag { return s.current }

// Update accumulates dt, re-evaluates the behavior choice once per interval,
// then always executes the active behavior.
func (s *Selector) Update(dt float64) {
	s.sinceEval += dt
	if s.sinceEval >= s.params.EvalInterval {
		s.SelectBestBehavior()
		s.sinceEval = 0
	}
	s.execute(dt)
}

// SelectBestBehavior walks the priority order and switches to the first
// eligible behavior. If the active behavior is itself the first eligible one,
// nothing changes and its timers survive. With no eligible candidate the
// active behavior stays as well.
func (s *Selector) SelectBestBehavior() {
	for _, tag := range priorityOrder {
		if !eligible(tag, s.ent, s.params) {
			continue
		}
		if tag != s.current {
			s.switchTo(tag)
		}
		return
	}
}

// ForceBehavior overrides the selection by name, regardless of eligibility.
// Unknown names are silent no-ops.
func (s *Selector) ForceBehavior(name string) {
	tag, ok := ParseBehavior(name)
	if !ok {
		return
	}
	if tag != s.current {
		s.switchTo(tag)
	}
}

func (s *Selector) switchTo(tag BehaviorTag) {
	from := s.current
	s.current = tag
	s.attackTimer = 0
	s.defendTimer = 0

	// Activation side effects on the entity's speed. Defend's reduction is
	// never restored when the behavior ends; that matches the legacy
	// selector, bug and all.
	switch tag {
	case BehaviorDefend:
		s.ent.SetMoveSpeed(s.ent.MoveSpeed() * s.params.DefendSpeedFactor)
	case BehaviorBerserk:
		s.ent.SetMoveSpeed(s.ent.MoveSpeed() * s.params.BerserkSpeedFactor)
	}

	s.logger.Debug("behavior changed",
		log.String("entity", s.ent.Name()),
		log.String("from", from.String()),
		log.String("to", tag.String()),
	)
	if s.events != nil {
		_ = s.events.Publish(bus.NewEvent(EventBehaviorChanged, s.ent.Name(), map[string]any{
			"from": from.String(),
			"to":   tag.String(),
		}))
	}
}

func (s *Selector) execute(dt float64) {
	switch s.current {
	case BehaviorPatrol:
		s.patrol(dt)
	case BehaviorChase:
		s.chase(dt)
	case BehaviorAttack:
		s.attack(dt)
	case BehaviorFlee:
		s.flee(dt)
	case BehaviorDefend:
		s.defend(dt)
	case BehaviorBerserk:
		s.berserk(dt)
	}
}

func (s *Selector) patrol(dt float64) {
	wps := s.params.Waypoints
	if len(wps) == 0 {
		return
	}
	wp := wps[s.wpIndex%len(wps)]
	s.ent.MoveToward(wp.X, wp.Y, dt)

	r := s.params.ArrivalRadius
	if geometry.DistanceSq(s.ent.Position(), wp) < r*r {
		s.wpIndex++
	}
}

func (s *Selector) chase(dt float64) {
	if !s.ent.HasTarget() {
		return
	}
	t := s.ent.Target()
	s.ent.MoveToward(t.X, t.Y, dt)
}

func (s *Selector) attack(dt float64) {
	s.attackTimer += dt
	if s.attackTimer >= s.params.AttackCooldown {
		s.ent.Attack()
		s.attackTimer = 0
	}
}

func (s *Selector) flee(dt float64) {
	if !s.ent.HasTarget() {
		return
	}
	t := s.ent.Target()
	s.ent.FleeFrom(t.X, t.Y, s.params.FleeSpeedFactor, dt)
}

func (s *Selector) defend(dt float64) {
	s.defendTimer += dt
	if s.defendTimer >= s.params.DefendDuration {
		s.defendTimer = 0
		// Legacy behavior: every elapsed window halves the speed again and
		// nothing restores it.
		s.ent.SetMoveSpeed(s.ent.MoveSpeed() * s.params.DefendSpeedFactor)
	}
}

func (s *Selector) berserk(dt float64) {
	if !s.ent.HasTarget() {
		return
	}
	t := s.ent.Target()
	s.ent.MoveToward(t.X, t.Y, dt)
	// No cooldown gating while berserk: attack every frame in range.
	if d := s.ent.DistanceToTarget(); d >= 0 && d <= s.ent.AttackRange() {
		s.ent.Attack()
	}
}
