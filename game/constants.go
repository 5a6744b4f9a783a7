package game

import "github.com/go-gl/mathgl/mgl32"

const (
	// Epsilon is the length below which a vector is treated as zero.
	Epsilon = float32(1e-5)
	// DefaultGravity is the downward acceleration applied to dynamic bodies, in units per second squared.
	DefaultGravity = float32(-9.81)
)

var (
	WorldUp      = mgl32.Vec3{0, 1, 0}
	WorldForward = mgl32.Vec3{0, 0, 1}
	WorldRight   = mgl32.Vec3{1, 0, 0}
)
