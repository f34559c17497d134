package fsm

// transitionTable holds the closed set of legal transitions. Absence means
// the guard rejects the change and SetState is a no-op.
var transitionTable = [stateCount][]StateTag{
	StateIdle:      {StateWalking, StateJumping, StateAttacking, StateCasting},
	StateWalking:   {StateIdle, StateJumping, StateAttacking},
	StateJumping:   {StateIdle, StateAttacking},
	StateAttacking: {StateIdle, StateJumping},
	StateCasting:   {StateIdle, StateWalking},
}

// CanTransition reports whether the guard allows moving from one state to
// another. Self-transitions are rejected like any other absent edge.
func CanTransition(from, to StateTag) bool {
	if from >= stateCount || to >= stateCount {
		return false
	}
	for _, allowed := range transitionTable[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
