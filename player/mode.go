package player

import "github.com/go-gl/mathgl/mgl32"

// MovementMode identifies one of the ways a character can move.
type MovementMode uint8

const (
	ModeNone MovementMode = iota
	ModeWalk
	ModeSurfaceClimb
	ModePointClimb

	modeCount
)

func (m MovementMode) String() string {
	switch m {
	case ModeNone:
		return "None"
	case ModeWalk:
		return "Walk"
	case ModeSurfaceClimb:
		return "SurfaceClimb"
	case ModePointClimb:
		return "PointClimb"
	}
	return "Unknown"
}

// Climbing returns true for the modes that receive climbing input.
func (m MovementMode) Climbing() bool {
	return m == ModeSurfaceClimb || m == ModePointClimb
}

// InputMap returns the input map that is bound while the mode is active.
func (m MovementMode) InputMap() InputMap {
	switch {
	case m == ModeWalk:
		return InputMapWalking
	case m.Climbing():
		return InputMapClimbing
	}
	return InputMapNone
}

// InputMap is the logical set of input actions delivered to the active mode.
type InputMap uint8

const (
	InputMapNone InputMap = iota
	InputMapWalking
	InputMapClimbing
)

func (m InputMap) String() string {
	switch m {
	case InputMapWalking:
		return "Walking"
	case InputMapClimbing:
		return "Climbing"
	}
	return "None"
}

// MoveStatus is the outcome of a mode evaluating its surroundings for one tick.
type MoveStatus uint8

const (
	StatusClimbable MoveStatus = iota
	StatusPossiblyClimbable
	StatusNotClimbable
	StatusWalkable
	StatusPossiblyWalkable
	StatusNotWalkable
	StatusTransitioning
)

func (s MoveStatus) String() string {
	switch s {
	case StatusClimbable:
		return "Climbable"
	case StatusPossiblyClimbable:
		return "PossiblyClimbable"
	case StatusNotClimbable:
		return "NotClimbable"
	case StatusWalkable:
		return "Walkable"
	case StatusPossiblyWalkable:
		return "PossiblyWalkable"
	case StatusNotWalkable:
		return "NotWalkable"
	case StatusTransitioning:
		return "Transitioning"
	}
	return "Unknown"
}

// Mode is a movement mode registered with a Controller. All methods are called from the goroutine that
// ticks the controller.
type Mode interface {
	// Enter is called when the mode becomes active.
	Enter()
	// Exit is called when another mode is about to become active.
	Exit()
	// Update runs once per rendered frame.
	Update(dt float32)
	// FixedUpdate runs once per physics step and reports what the mode found.
	FixedUpdate(dt float32) MoveStatus
	// OnMove receives the latest directional input.
	OnMove(dir mgl32.Vec2)
	// OnJump receives jump presses and releases.
	OnJump(pressed bool)
}
