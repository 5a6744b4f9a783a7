package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/physics"
)

// Body is a box shaped rigid body. It only integrates linear motion; rotation is whatever was last set.
type Body struct {
	w *World

	half     mgl32.Vec3
	pos      mgl32.Vec3
	lastPos  mgl32.Vec3
	rot      mgl32.Quat
	vel      mgl32.Vec3
	angVel   mgl32.Vec3
	force    mgl32.Vec3
	onGround bool

	mass         float32
	drag         float32
	gravityScale float32
	useGravity   bool
	kinematic    bool
	locks        physics.RotationLock
	mask         physics.Mask
}

// NewBody returns a dynamic body centered on pos with the given half extents.
func (w *World) NewBody(pos, half mgl32.Vec3) *Body {
	return &Body{
		w:            w,
		half:         half,
		pos:          pos,
		lastPos:      pos,
		rot:          mgl32.QuatIdent(),
		mass:         1,
		gravityScale: 1,
		useGravity:   true,
		mask:         physics.MaskAll,
	}
}

// Position returns the center of the body.
func (b *Body) Position() mgl32.Vec3 {
	return b.pos
}

// SetPosition teleports the body.
func (b *Body) SetPosition(pos mgl32.Vec3) {
	b.lastPos, b.pos = b.pos, pos
}

// LastPosition returns the position of the body before the last step or teleport.
func (b *Body) LastPosition() mgl32.Vec3 {
	return b.lastPos
}

// Rotation returns the rotation of the body.
func (b *Body) Rotation() mgl32.Quat {
	return b.rot
}

// SetRotation sets the rotation of the body.
func (b *Body) SetRotation(rot mgl32.Quat) {
	b.rot = rot.Normalize()
}

// Velocity returns the linear velocity of the body.
func (b *Body) Velocity() mgl32.Vec3 {
	return b.vel
}

// SetVelocity sets the linear velocity of the body.
func (b *Body) SetVelocity(vel mgl32.Vec3) {
	b.vel = vel
}

// AngularVelocity returns the angular velocity of the body.
func (b *Body) AngularVelocity() mgl32.Vec3 {
	return b.angVel
}

// SetAngularVelocity sets the angular velocity of the body.
func (b *Body) SetAngularVelocity(vel mgl32.Vec3) {
	b.angVel = vel
}

// Kinematic returns true if the body ignores forces and gravity.
func (b *Body) Kinematic() bool {
	return b.kinematic
}

// SetKinematic toggles whether the body ignores forces and gravity.
func (b *Body) SetKinematic(kinematic bool) {
	b.kinematic = kinematic
}

// UsesGravity returns true if gravity is applied to the body.
func (b *Body) UsesGravity() bool {
	return b.useGravity
}

// SetUseGravity toggles gravity for the body.
func (b *Body) SetUseGravity(use bool) {
	b.useGravity = use
}

// GravityScale returns the multiplier applied to world gravity.
func (b *Body) GravityScale() float32 {
	return b.gravityScale
}

// SetGravityScale sets the multiplier applied to world gravity.
func (b *Body) SetGravityScale(scale float32) {
	b.gravityScale = scale
}

// RotationLocks returns the axes the body may not rotate around.
func (b *Body) RotationLocks() physics.RotationLock {
	return b.locks
}

// SetRotationLocks sets the axes the body may not rotate around.
func (b *Body) SetRotationLocks(locks physics.RotationLock) {
	b.locks = locks
}

// SetMass sets the mass used to turn forces into acceleration. Non-positive values are ignored.
func (b *Body) SetMass(mass float32) {
	if mass > 0 {
		b.mass = mass
	}
}

// SetDrag sets the linear damping of the body.
func (b *Body) SetDrag(drag float32) {
	b.drag = max(drag, 0)
}

// SetMask sets the layers the body collides with.
func (b *Body) SetMask(mask physics.Mask) {
	b.mask = mask
}

// OnGround returns true if the last step was stopped by something below the body.
func (b *Body) OnGround() bool {
	return b.onGround
}

// BBox returns the bounds of the body.
func (b *Body) BBox() cube.BBox {
	return game.AABBFromCenter(b.pos, b.half)
}

// AddForce applies a force or an impulse to the body. Kinematic bodies ignore both.
func (b *Body) AddForce(force mgl32.Vec3, mode physics.ForceMode) {
	if b.kinematic {
		return
	}
	switch mode {
	case physics.ForceModeImpulse:
		b.vel = b.vel.Add(force.Mul(1 / b.mass))
	default:
		b.force = b.force.Add(force)
	}
}

// Step integrates the body over dt seconds and resolves collisions with the world.
func (b *Body) Step(dt float32) {
	defer func() { b.force = mgl32.Vec3{} }()
	if b.kinematic || dt <= 0 {
		return
	}

	acc := b.force.Mul(1 / b.mass)
	if b.useGravity {
		acc = acc.Add(b.w.Gravity().Mul(b.gravityScale))
	}
	b.vel = b.vel.Add(acc.Mul(dt))
	if b.drag > 0 {
		b.vel = b.vel.Mul(1 / (1 + b.drag*dt))
	}

	delta := b.vel.Mul(dt)
	moved := b.collide(delta)
	for i := range moved {
		if moved[i] != delta[i] {
			b.vel[i] = 0
		}
	}
	b.onGround = delta[1] < 0 && moved[1] != delta[1]
	b.SetPosition(b.pos.Add(moved))
}
