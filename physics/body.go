package physics

import "github.com/go-gl/mathgl/mgl32"

// ForceMode selects how AddForce applies a vector to a body.
type ForceMode uint8

const (
	// ForceModeForce accumulates a continuous force that is integrated over the next physics step.
	ForceModeForce ForceMode = iota
	// ForceModeImpulse changes the velocity of the body immediately.
	ForceModeImpulse
)

// RotationLock is a bitset of rotation axes a dynamic body is not allowed to rotate around.
type RotationLock uint8

const (
	LockRotationX RotationLock = 1 << iota
	LockRotationY
	LockRotationZ
)

// Body is the character's rigid body. Only the active movement mode mutates it.
type Body interface {
	Position() mgl32.Vec3
	// SetPosition moves the body immediately. Casts issued afterwards in the same tick see the new position.
	SetPosition(pos mgl32.Vec3)
	Rotation() mgl32.Quat
	SetRotation(rot mgl32.Quat)

	Velocity() mgl32.Vec3
	SetVelocity(vel mgl32.Vec3)
	SetAngularVelocity(vel mgl32.Vec3)

	Kinematic() bool
	SetKinematic(kinematic bool)
	// SetUseGravity toggles gravity for the body.
	SetUseGravity(use bool)
	// GravityScale returns the multiplier applied to world gravity for this body.
	GravityScale() float32
	SetGravityScale(scale float32)
	SetRotationLocks(locks RotationLock)

	AddForce(force mgl32.Vec3, mode ForceMode)
}
