package strategy

import "github.com/skirmish/skirmish/internal/core/entity"

// BehaviorTag identifies one of the closed set of AI behaviors. Behaviors are
// tags with logic keyed off them; switching never allocates.
type BehaviorTag uint8

const (
	BehaviorPatrol BehaviorTag = iota
	BehaviorChase
	BehaviorAttack
	BehaviorFlee
	BehaviorDefend
	BehaviorBerserk

	behaviorCount
)

func (b BehaviorTag) String() string {
	switch b {
	case BehaviorPatrol:
		return "patrol"
	case BehaviorChase:
		return "chase"
	case BehaviorAttack:
		return "attack"
	case BehaviorFlee:
		return "flee"
	case BehaviorDefend:
		return "defend"
	case BehaviorBerserk:
		return "berserk"
	default:
		return "unknown"
	}
}

// ParseBehavior maps a behavior name to its tag. The second result is false
// for unknown names; callers treat those as no-ops.
func ParseBehavior(name string) (BehaviorTag, bool) {
	switch name {
	case "patrol":
		return BehaviorPatrol, true
	case "chase":
		return BehaviorChase, true
	case "attack":
		return BehaviorAttack, true
	case "flee":
		return BehaviorFlee, true
	case "defend":
		return BehaviorDefend, true
	case "berserk":
		return BehaviorBerserk, true
	default:
		return BehaviorPatrol, false
	}
}

// priorityOrder is the static tie-break ranking among simultaneously eligible
// behaviors. Flee and Berserk overlap below a 0.2 health ratio; list order
// resolves that in favor of Flee.
var priorityOrder = [behaviorCount]BehaviorTag{
	BehaviorFlee,
	BehaviorBerserk,
	BehaviorAttack,
	BehaviorDefend,
	BehaviorChase,
	BehaviorPatrol,
}

// eligible evaluates a behavior's predicate against the entity. Dead entities
// are eligible for nothing.
func eligible(tag BehaviorTag, e *entity.Entity, p Params) bool {
	if !e.Alive() {
		return false
	}
	ratio := e.HealthRatio()
	switch tag {
	case BehaviorPatrol:
		return true
	case BehaviorChase:
		return e.HasTarget() && e.DistanceToTarget() > e.AttackRange()
	case BehaviorAttack:
		return e.HasTarget() && e.DistanceToTarget() <= e.AttackRange()
	case BehaviorFlee:
		return ratio < p.FleeThreshold
	case BehaviorDefend:
		return ratio >= p.DefendLowThreshold && ratio <= p.DefendHighThreshold
	case BehaviorBerserk:
		return ratio < p.BerserkThreshold
	default:
		return false
	}
}
