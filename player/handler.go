package player

import "github.com/go-gl/mathgl/mgl32"

// Handler receives notifications about what a Controller does.
type Handler interface {
	// HandleModeSwitch is called after a mode switch completed.
	HandleModeSwitch(from, to MovementMode)
	// HandleFixedTick is called after every physics step with the status the active mode reported and the
	// resulting body position.
	HandleFixedTick(mode MovementMode, status MoveStatus, pos mgl32.Vec3)
}

// NopHandler implements Handler and does nothing.
type NopHandler struct{}

func (NopHandler) HandleModeSwitch(MovementMode, MovementMode)          {}
func (NopHandler) HandleFixedTick(MovementMode, MoveStatus, mgl32.Vec3) {}
