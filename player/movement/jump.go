package movement

// highJumpTask runs the buffer of a jump. The buffer only runs out while the body is in the air. The task
// finishes when it does, when the body lands again, or when the body is still on the ground after a full
// buffer's worth of time.
type highJumpTask struct {
	w      *Walk
	buffer float32
	// airborne is set once the body left the ground it jumped from.
	airborne bool
	// held is how long the body has been on the ground without taking off.
	held float32
}

func (t *highJumpTask) Step(dt float32) bool {
	if t.w.grounded {
		if t.airborne {
			return true
		}
		t.held += dt
		return t.held >= t.w.s.HighJumpBufferTime
	}
	t.airborne = true
	t.buffer -= dt
	return t.buffer <= 0
}

// coyoteTask is the grace period after walking off a ledge during which a jump still succeeds.
type coyoteTask struct {
	w      *Walk
	buffer float32
}

func (t *coyoteTask) Step(dt float32) bool {
	if t.w.grounded {
		return true
	}
	t.buffer -= dt
	return t.buffer <= 0
}
