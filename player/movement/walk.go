package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/climb"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/physics"
	"github.com/oomph-ac/traverse/player"
	"github.com/oomph-ac/traverse/settings"
	"github.com/oomph-ac/traverse/transition"
)

// Walk moves the character over walkable ground. Jumps get higher the longer the button is held, and
// still succeed shortly after walking off a ledge.
type Walk struct {
	c *player.Controller
	s settings.Walk

	grounded    bool
	onSlope     bool
	jumpPressed bool
	// groundNormal is the normal of the ground below the body during the last physics step.
	groundNormal mgl32.Vec3

	moveDir  mgl32.Vec2
	movement mgl32.Vec3
	castDir  mgl32.Vec3

	coyoteAttempted bool
	coyoteDisabled  bool

	highJump transition.Slot
	coyote   transition.Slot
}

// NewWalk creates the walking mode for the controller.
func NewWalk(c *player.Controller, s settings.Settings) *Walk {
	return &Walk{c: c, s: s.Walk}
}

// Apply replaces the settings of the mode.
func (w *Walk) Apply(s settings.Settings) {
	w.s = s.Walk
}

// Grounded returns true if the body stood on walkable ground during the last physics step.
func (w *Walk) Grounded() bool {
	return w.grounded
}

// OnSlope returns true if the ground below the body is a slope.
func (w *Walk) OnSlope() bool {
	return w.onSlope
}

// HighJumping returns true while the buffer of a jump runs.
func (w *Walk) HighJumping() bool {
	return w.highJump.Active()
}

// CoyoteActive returns true while a jump would still succeed after leaving the ground.
func (w *Walk) CoyoteActive() bool {
	return w.coyote.Active()
}

func (w *Walk) mask() physics.Mask {
	return physics.Mask(w.s.Movement.Mask)
}

func (w *Walk) Enter() {
	body := w.c.Body()
	body.SetUseGravity(true)
	body.SetKinematic(false)
	body.SetVelocity(mgl32.Vec3{})
	body.SetAngularVelocity(mgl32.Vec3{})
	body.SetRotationLocks(physics.LockRotationX | physics.LockRotationZ)
	body.SetGravityScale(1)
	w.c.Camera().SetOnWall(false)

	w.grounded, w.onSlope = false, false
	w.coyoteAttempted, w.coyoteDisabled = false, false
}

func (w *Walk) Exit() {
	body := w.c.Body()
	body.SetVelocity(mgl32.Vec3{})
	body.SetAngularVelocity(mgl32.Vec3{})
	body.SetRotationLocks(physics.LockRotationX | physics.LockRotationZ)

	w.cancelTimers()
	body.SetGravityScale(1)
	w.movement, w.castDir = mgl32.Vec3{}, mgl32.Vec3{}
}

func (w *Walk) OnMove(dir mgl32.Vec2) {
	w.moveDir = dir
}

// OnJump starts a jump when pressed on the ground or within coyote time. Releasing the button ends the
// jump's buffer early and restores normal gravity.
func (w *Walk) OnJump(pressed bool) {
	w.jumpPressed = pressed
	if !pressed {
		w.highJump.Cancel()
		w.c.Body().SetGravityScale(1)
		return
	}
	if w.grounded || w.coyote.Active() {
		w.startHighJump()
	}
}

func (w *Walk) startHighJump() {
	w.coyote.Cancel()

	body := w.c.Body()
	body.SetGravityScale(1)
	body.AddForce(game.WorldUp.Mul(w.s.Movement.JumpStrength), physics.ForceModeImpulse)
	w.c.Dbg.Notify(player.ModeWalk, true, "jumping (coyote attempted: %v)", w.coyoteAttempted)

	w.highJump.Start(&highJumpTask{w: w, buffer: w.s.HighJumpBufferTime}, func() {
		if w.jumpPressed {
			body.SetGravityScale(w.s.HighJumpMultiplier)
			return
		}
		body.SetGravityScale(1)
	})
}

func (w *Walk) startCoyote() {
	w.highJump.Cancel()
	w.coyoteAttempted = true
	w.coyote.Start(&coyoteTask{w: w, buffer: w.s.CoyoteBufferTime}, nil)
	w.c.Dbg.Notify(player.ModeWalk, true, "left the ground, coyote time started")
}

func (w *Walk) cancelTimers() {
	w.highJump.Cancel()
	w.coyote.Cancel()
}

// inputDirection returns the camera-relative horizontal direction of the stick.
func (w *Walk) inputDirection() mgl32.Vec3 {
	return game.ProjectOnPlane(game.TransformDirection(w.c.Camera().Rotation(), game.PlanarInput(w.moveDir)), game.WorldUp)
}

func (w *Walk) Update(dt float32) {
	w.highJump.Step(dt)
	w.coyote.Step(dt)

	w.movement = w.inputDirection()
	w.castDir = mgl32.Vec3{}
	if w.grounded {
		w.movement = w.movement.Mul(w.s.Movement.MoveSpeed)
		if w.jumpPressed {
			w.castDir = w.castDir.Add(game.WorldUp)
		}
	} else {
		w.movement = w.movement.Mul(w.s.Movement.MoveSpeed * w.s.JumpMoveControlFactor)
	}
	w.castDir = w.castDir.Add(w.movement).Add(game.Normalize(w.c.Body().Velocity()))

	if w.grounded && w.jumpPressed {
		w.castDir = w.castDir.Mul(1.0 / 3.0)
	} else {
		w.castDir = w.castDir.Mul(0.5)
	}
	w.castDir = game.Normalize(w.castDir)
}

func (w *Walk) FixedUpdate(float32) player.MoveStatus {
	w.checkGround()
	w.move()
	w.rotate()
	return w.detectClimb()
}

// classifyGround returns whether a surface with the given normal dot product against world up can be
// stood on, and whether it is a slope.
func classifyGround(dot float32, s settings.Walk) (grounded, slope bool) {
	grounded = dot >= s.Movement.WalkableDot || dot >= s.SlopeDot
	slope = grounded && dot >= s.SlopeDot && dot < s.Movement.WalkableDot
	return
}

// checkGround casts below the body to find out whether it stands on walkable ground, and drives the jump
// timers on landing and on leaving the ground.
func (w *Walk) checkGround() {
	body := w.c.Body()
	g := w.s.Movement.Ground

	wasGrounded := w.grounded
	hit, ok := w.c.Probe().BoxCast(body.Position().Add(g.Offset.Vec()), g.HalfSize.Vec(), game.WorldUp.Mul(-1), mgl32.QuatIdent(), g.Distance, w.mask())
	w.grounded, w.onSlope = false, false
	if ok {
		w.grounded, w.onSlope = classifyGround(hit.Normal.Dot(game.WorldUp), w.s)
	}

	if w.grounded {
		w.groundNormal = hit.Normal
		w.movement = game.ProjectOnPlane(w.movement, hit.Normal)
		if !wasGrounded {
			w.land()
		}
		return
	}

	vy := body.Velocity().Y()
	if vy > 0 {
		// The body left the ground by jumping, not by walking off an edge.
		w.coyoteDisabled = true
	}
	if vy < 0 && !w.coyoteDisabled && !w.coyoteAttempted && !w.highJump.Active() {
		w.startCoyote()
	}
}

// land resets the jump state once the body touches the ground again.
func (w *Walk) land() {
	w.cancelTimers()
	w.coyoteAttempted, w.coyoteDisabled = false, false
	w.c.Body().SetGravityScale(1)
	w.c.Dbg.Notify(player.ModeWalk, true, "landed (slope: %v)", w.onSlope)
}

// move applies the movement of this step as a force. On slopes the force is scaled by how steep the slope
// is, differently for heading up and down.
func (w *Walk) move() {
	body := w.c.Body()
	if !w.onSlope {
		body.AddForce(w.movement, physics.ForceModeForce)
		return
	}
	body.AddForce(slopeMovement(w.movement, w.groundNormal, w.s), physics.ForceModeForce)
}

// slopeMovement scales movement on a slope with the given normal.
func slopeMovement(movement, normal mgl32.Vec3, s settings.Walk) mgl32.Vec3 {
	slopeRight := normal.Cross(game.WorldUp)
	slopeUp := normal.Cross(slopeRight.Mul(-1))
	steepness := normal.Dot(game.WorldUp)

	if slopeUp.Dot(game.Normalize(movement)) > 0 {
		return movement.Mul(steepness * s.SlopeUpMultiplier)
	}
	return movement.Mul(steepness * s.SlopeDownMultiplier)
}

// rotate turns the body towards the direction of the input.
func (w *Walk) rotate() {
	dir := w.inputDirection()
	if game.IsZero(dir) {
		return
	}
	body := w.c.Body()
	body.SetRotation(game.Slerp(body.Rotation(), game.LookRotation(dir, game.WorldUp), w.s.LookRotationSpeed))
}

// detectClimb casts in the direction the body is heading and starts climbing whatever climbable geometry
// it runs into.
func (w *Walk) detectClimb() player.MoveStatus {
	body := w.c.Body()
	d := w.s.Movement.Direction

	dir := w.castDir
	if game.IsZero(dir) {
		dir = game.Forward(body.Rotation())
	}
	hit, ok := w.c.Probe().BoxCast(body.Position().Add(d.Offset.Vec()), d.HalfSize.Vec(), dir, mgl32.QuatIdent(), d.Distance, w.mask())
	if !ok {
		return player.StatusWalkable
	}
	if grounded, _ := classifyGround(hit.Normal.Dot(game.WorldUp), w.s); grounded {
		return player.StatusWalkable
	}

	switch hit.Tag() {
	case physics.TagClimbSurface:
		w.c.Dbg.Notify(player.ModeWalk, true, "climbable surface ahead (normal %v)", hit.Normal)
		w.c.SwitchMode(player.ModeSurfaceClimb)
	case physics.TagClimbPoint:
		p, ok := hit.Collider.(*climb.Point)
		if !ok {
			break
		}
		w.c.Dbg.Notify(player.ModeWalk, true, "climb point %s ahead", p.ID())
		body.SetPosition(p.AttachPosition())
		body.SetRotation(p.AttachRotation())
		w.c.SwitchMode(player.ModePointClimb)
	}
	return player.StatusWalkable
}
