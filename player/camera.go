package player

import "github.com/go-gl/mathgl/mgl32"

// Camera is the view the character's input is relative to.
type Camera interface {
	// Rotation returns the orientation of the camera.
	Rotation() mgl32.Quat
	// SetOnWall tells the camera whether the character is clinging to a wall.
	SetOnWall(onWall bool)
}

// FixedCamera is a Camera whose rotation is set by the host.
type FixedCamera struct {
	rot    mgl32.Quat
	onWall bool
}

// NewFixedCamera returns a camera with the given rotation.
func NewFixedCamera(rot mgl32.Quat) *FixedCamera {
	return &FixedCamera{rot: rot}
}

// Rotation returns the rotation of the camera.
func (c *FixedCamera) Rotation() mgl32.Quat {
	return c.rot
}

// SetRotation changes the rotation of the camera.
func (c *FixedCamera) SetRotation(rot mgl32.Quat) {
	c.rot = rot
}

// SetOnWall records whether the character is on a wall.
func (c *FixedCamera) SetOnWall(onWall bool) {
	c.onWall = onWall
}

// OnWall returns the last value passed to SetOnWall.
func (c *FixedCamera) OnWall() bool {
	return c.onWall
}
