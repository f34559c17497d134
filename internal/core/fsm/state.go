package fsm

// StateTag identifies one of the character controller's states. The set is
// closed: states are tags with logic keyed off them, not objects, so a
// transition never allocates.
type StateTag uint8

const (
	StateIdle StateTag = iota
	StateWalking
	StateJumping
	StateAttacking
	StateCasting

	stateCount
)

func (s StateTag) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateJumping:
		return "jumping"
	case StateAttacking:
		return "attacking"
	case StateCasting:
		return "casting"
	default:
		return "unknown"
	}
}

// ParseState maps a state name to its tag. The second result is false for
// unknown names; callers treat those as no-ops.
func ParseState(name string) (StateTag, bool) {
	switch name {
	case "idle":
		return StateIdle, true
	case "walking":
		return StateWalking, true
	case "jumping":
		return StateJumping, true
	case "attacking":
		return StateAttacking, true
	case "casting":
		return StateCasting, true
	default:
		return StateIdle, false
	}
}

// Input codes forwarded by the driver. Values match the raw key codes the
// legacy controller consumed.
const (
	InputNone   = 0
	InputJump   = 32
	InputLeft   = 65 // A
	InputRight  = 68 // D
	InputAttack = 74 // J
	InputCast   = 75 // K
)
