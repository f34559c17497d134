package entity

import (
	"github.com/google/uuid"

	"github.com/skirmish/skirmish/internal/core/geometry"
)

// Entity is the in-memory game object both the character state machine and
// the AI behavior selector operate on. It is owned by the driver; controllers
// borrow it for the duration of a single call and keep no ownership.
//
// Health and mana setters clamp into [0, max]. There is no internal locking:
// the simulation is single-threaded by contract.
type Entity struct {
	id   uuid.UUID
	name string

	pos       geometry.Vec2
	health    int
	maxHealth int
	moveSpeed float64

	mana    int
	maxMana int

	grounded     bool
	jumpVelocity float64

	detectionRange float64
	attackRange    float64

	target    geometry.Vec2
	hasTarget bool

	attacksDelivered int
	spellsCast       int
}

// NewCharacter creates a player-style entity: grounded, full health and mana.
func NewCharacter(name string) *Entity {
	return &Entity{
		id:        uuid.New(),
		name:      name,
		health:    100,
		maxHealth: 100,
		moveSpeed: 100.0,
		mana:      50,
		maxMana:   50,
		grounded:  true,
	}
}

// NewEnemy creates an AI-controlled entity at the given position.
func NewEnemy(name string, x, y float64) *Entity {
	return &Entity{
		id:             uuid.New(),
		name:           name,
		pos:            geometry.Vec2{X: x, Y: y},
		health:         100,
		maxHealth:      100,
		moveSpeed:      50.0,
		detectionRange: 100.0,
		attackRange:    30.0,
	}
}

func (e *Entity) ID() uuid.UUID { return e.id }

func (e *Entity) Name() string { return e.name }

func (e *Entity) Position() geometry.Vec2 { return e.pos }

func (e *Entity) SetPosition(x, y float64) { e.pos = geometry.Vec2{X: x, Y: y} }

// Move applies a position delta.
func (e *Entity) Move(dx, dy float64) {
	e.pos.X += dx
	e.pos.Y += dy
}

func (e *Entity) Health() int { return e.health }

func (e *Entity) MaxHealth() int { return e.maxHealth }

// SetHealth clamps into [0, max health].
func (e *Entity) SetHealth(hp int) {
	e.health = clamp(hp, 0, e.maxHealth)
}

func (e *Entity) TakeDamage(damage int) { e.SetHealth(e.health - damage) }

func (e *Entity) Heal(amount int) { e.SetHealth(e.health + amount) }

// HealthRatio returns health as a fraction of max health.
func (e *Entity) HealthRatio() float64 {
	if e.maxHealth == 0 {
		return 0
	}
	return float64(e.health) / float64(e.maxHealth)
}

func (e *Entity) Alive() bool { return e.health > 0 }

func (e *Entity) MoveSpeed() float64 { return e.moveSpeed }

func (e *Entity) SetMoveSpeed(speed float64) { e.moveSpeed = speed }

func (e *Entity) Grounded() bool { return e.grounded }

func (e *Entity) SetGrounded(grounded bool) { e.grounded = grounded }

func (e *Entity) JumpVelocity() float64 { return e.jumpVelocity }

func (e *Entity) SetJumpVelocity(v float64) { e.jumpVelocity = v }

func (e *Entity) Mana() int { return e.mana }

func (e *Entity) MaxMana() int { return e.maxMana }

// SetMana clamps into [0, max mana].
func (e *Entity) SetMana(mp int) {
	e.mana = clamp(mp, 0, e.maxMana)
}

func (e *Entity) DetectionRange() float64 { return e.detectionRange }

func (e *Entity) AttackRange() float64 { return e.attackRange }

func (e *Entity) SetTarget(x, y float64) {
	e.target = geometry.Vec2{X: x, Y: y}
	e.hasTarget = true
}

func (e *Entity) ClearTarget() { e.hasTarget = false }

func (e *Entity) HasTarget() bool { return e.hasTarget }

func (e *Entity) Target() geometry.Vec2 { return e.target }

// DistanceToTarget returns the distance to the current target, or -1 when no
// target is set.
func (e *Entity) DistanceToTarget() float64 {
	if !e.hasTarget {
		return -1.0
	}
	return geometry.Distance(e.pos, e.target)
}

// MoveToward steps toward a point at the entity's move speed. Movement stops
// inside a one-unit deadband to avoid jitter around the destination.
func (e *Entity) MoveToward(x, y float64, dt float64) {
	to := geometry.Vec2{X: x, Y: y}
	if geometry.Distance(e.pos, to) <= 1.0 {
		return
	}
	dir := to.Sub(e.pos).Normalized()
	e.pos = e.pos.Add(dir.Scale(e.moveSpeed * dt))
}

// FleeFrom steps directly away from a point. The factor scales move speed,
// fleeing entities run faster than their nominal speed.
func (e *Entity) FleeFrom(x, y float64, factor, dt float64) {
	from := geometry.Vec2{X: x, Y: y}
	dir := e.pos.Sub(from).Normalized()
	if dir == (geometry.Vec2{}) {
		return
	}
	e.pos = e.pos.Add(dir.Scale(e.moveSpeed * factor * dt))
}

// Attack records one delivered attack. Damage resolution belongs to the
// driver; controllers only trigger the effect.
func (e *Entity) Attack() { e.attacksDelivered++ }

func (e *Entity) AttacksDelivered() int { return e.attacksDelivered }

// CastSpell deducts the mana cost and records the completed cast.
func (e *Entity) CastSpell(cost int) {
	e.SetMana(e.mana - cost)
	e.spellsCast++
}

func (e *Entity) SpellsCast() int { return e.spellsCast }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
