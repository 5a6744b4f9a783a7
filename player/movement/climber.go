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

// climber holds what both climbing modes share: the bezier that moves the body between surfaces, the
// accumulated cast direction and the checks that run before either mode moves the body.
type climber struct {
	c    *player.Controller
	mode player.MovementMode

	climb    settings.Climb
	movement settings.Movement

	bezier *transition.Bezier

	// castDir is the smoothed direction the body has been moving in along the wall.
	castDir mgl32.Vec3
	// climbDir is the raw stick input.
	climbDir mgl32.Vec2
}

func newClimber(c *player.Controller, mode player.MovementMode, cl settings.Climb, m settings.Movement) climber {
	return climber{
		c:        c,
		mode:     mode,
		climb:    cl,
		movement: m,
		bezier:   transition.NewBezier(c.Body()),
	}
}

func (cl *climber) mask() physics.Mask {
	return physics.Mask(cl.movement.Mask)
}

// left returns true if the controller is no longer in the mode of the climber.
func (cl *climber) left() bool {
	return cl.c.Mode() != cl.mode
}

func (cl *climber) notify(format string, args ...any) {
	cl.c.Dbg.Notify(cl.mode, true, format, args...)
}

func (cl *climber) enter() {
	body := cl.c.Body()
	body.SetUseGravity(false)
	body.SetKinematic(true)
	body.SetVelocity(mgl32.Vec3{})
	body.SetAngularVelocity(mgl32.Vec3{})
	body.SetRotationLocks(physics.LockRotationY | physics.LockRotationZ)
	cl.c.Camera().SetOnWall(true)
}

func (cl *climber) exit() {
	body := cl.c.Body()
	body.SetVelocity(mgl32.Vec3{})
	body.SetAngularVelocity(mgl32.Vec3{})
	cl.bezier.Cancel()
	cl.castDir = mgl32.Vec3{}
}

// transitioning returns true while a bezier drives the body.
func (cl *climber) transitioning() bool {
	return cl.bezier.Active()
}

// stepTransition advances the bezier in flight and returns true if its completion switched the mode.
func (cl *climber) stepTransition(dt float32) bool {
	cl.bezier.Step(dt)
	return cl.left()
}

// accumulate folds the wall-space movement of this frame into the cast direction.
func (cl *climber) accumulate(climbMovement mgl32.Vec3) {
	rot := cl.c.Body().Rotation()
	cl.castDir = cl.castDir.Add(climbMovement)
	cl.castDir = cl.castDir.Add(game.Right(rot).Mul(cl.climbDir.X()))
	cl.castDir = cl.castDir.Add(game.Up(rot).Mul(cl.climbDir.Y()))
	cl.castDir = game.Normalize(cl.castDir.Mul(1.0 / 3.0))
}

// relative returns the point offset from the body along its own up and right axes.
func (cl *climber) relative(offset settings.Vec3) mgl32.Vec3 {
	body := cl.c.Body()
	rot := body.Rotation()
	return body.Position().Add(game.Up(rot).Mul(offset.Y)).Add(game.Right(rot).Mul(offset.X))
}

// diagonal is the orientation of the directional casts, halfway between forward and right.
func (cl *climber) diagonal() mgl32.Quat {
	rot := cl.c.Body().Rotation()
	return game.LookRotation(game.Lerp(game.Forward(rot), game.Right(rot), 0.5), game.Up(rot))
}

// fixedUpdate runs the checks shared by both climbing modes. Callers must stop processing the tick if the
// controller left their mode or a transition is running afterwards.
func (cl *climber) fixedUpdate() player.MoveStatus {
	if cl.transitioning() {
		return player.StatusTransitioning
	}
	cl.correctFacing()

	if cl.onFloor() {
		cl.notify("floor below reached, walking")
		cl.castDir = mgl32.Vec3{}
		cl.c.SwitchMode(player.ModeWalk)
		return player.StatusWalkable
	}
	return cl.directional()
}

// correctFacing squares the body up with the wall in front of it using two casts a body-height apart.
func (cl *climber) correctFacing() {
	body := cl.c.Body()
	rot := body.Rotation()
	fwd, up := game.Forward(rot), game.Up(rot)

	bottom := cl.relative(cl.climb.FacingOffset)
	top := bottom.Add(up.Mul(cl.climb.FacingHalfHeight * 2))

	probe := cl.c.Probe()
	hitBottom, okBottom := probe.SphereCast(bottom, cl.climb.FacingRadius, fwd, cl.climb.FacingDistance, cl.mask())
	hitTop, okTop := probe.SphereCast(top, cl.climb.FacingRadius, fwd, cl.climb.FacingDistance, cl.mask())
	okBottom = okBottom && cl.wall(hitBottom)
	okTop = okTop && cl.wall(hitTop)

	var normal mgl32.Vec3
	switch {
	case okBottom && okTop:
		normal = game.Normalize(hitBottom.Normal.Add(hitTop.Normal).Mul(0.5))
	case okBottom:
		normal = hitBottom.Normal
	case okTop:
		normal = hitTop.Normal
	default:
		return
	}
	if game.IsZero(normal) {
		return
	}
	body.SetRotation(game.LookRotation(normal.Mul(-1), game.WorldUp))
}

// wall returns true if the hit is something the body could be hanging on.
func (cl *climber) wall(hit physics.Hit) bool {
	return hit.Tag() != physics.TagFloor && hit.Normal.Dot(game.WorldUp) < cl.movement.WalkableDot
}

// onFloor returns true if the body is climbing downwards onto walkable floor.
func (cl *climber) onFloor() bool {
	rot := cl.c.Body().Rotation()
	up := game.Up(rot)
	if cl.castDir.Dot(up.Mul(-1)) < 0.5 {
		return false
	}

	g := cl.movement.Ground
	hit, ok := cl.c.Probe().BoxCast(cl.relative(g.Offset), g.HalfSize.Vec(), up.Mul(-1), game.LookRotation(game.Forward(rot), up), g.Distance, cl.mask())
	return ok && hit.Tag() == physics.TagFloor && hit.Normal.Dot(game.WorldUp) >= cl.movement.WalkableDot
}

// directional casts along the direction the body is climbing in and decides what lies ahead.
func (cl *climber) directional() player.MoveStatus {
	d := cl.movement.Direction
	hit, ok := cl.c.Probe().BoxCast(cl.relative(d.Offset), d.HalfSize.Vec(), cl.castDir, cl.diagonal(), d.Distance, cl.mask())
	if !ok {
		return player.StatusClimbable
	}
	if hit.Tag() == physics.TagFloor {
		return player.StatusWalkable
	}
	if hit.Normal.Dot(game.WorldUp) >= cl.movement.WalkableDot {
		cl.notify("walkable surface ahead (normal %v), walking", hit.Normal)
		cl.castDir = mgl32.Vec3{}
		cl.c.SwitchMode(player.ModeWalk)
		return player.StatusPossiblyWalkable
	}

	fwd := game.Forward(cl.c.Body().Rotation())
	switch {
	case hit.Tag() == physics.TagClimbSurface && cl.mode == player.ModePointClimb:
		cl.notify("climbable surface ahead, moving off the climb points")
		cl.crossMode(hit.Point.Add(hit.Normal), hit.Normal, player.ModeSurfaceClimb)
		return player.StatusTransitioning
	case hit.Tag() == physics.TagClimbPoint && cl.mode == player.ModeSurfaceClimb:
		p, ok := hit.Collider.(*climb.Point)
		if !ok {
			break
		}
		cl.notify("climb point %s ahead, moving onto it", p.ID())
		cl.crossMode(p.AttachPosition(), p.WallNormal(), player.ModePointClimb)
		return player.StatusTransitioning
	}
	cl.c.Dbg.Notify(cl.mode, true, "blocking wall ahead (tag %q, facing %v)", hit.Tag(), fwd)
	return player.StatusPossiblyClimbable
}

// crossMode moves the body onto a wall of the other climbing mode and switches to it on arrival.
func (cl *climber) crossMode(end, normal mgl32.Vec3, to player.MovementMode) {
	fwd := game.Forward(cl.c.Body().Rotation())
	cl.bezier.Begin(transition.Params{
		End:         end,
		CurveNormal: game.Lerp(fwd.Mul(-1), normal, 0.5),
		Duration:    cl.climb.CrossMode.Duration,
		Height:      cl.climb.CrossMode.Height,
		Rotate:      true,
		EndForward:  fwd,
	}, func() {
		cl.castDir = mgl32.Vec3{}
		cl.c.SwitchMode(to)
	})
}

// canJumpOff returns true if the input asks to let go of the wall.
func (cl *climber) canJumpOff() bool {
	return cl.climbDir.Y() < cl.climb.JumpDownThreshold
}

// jumpDown hops the body off the wall, away from it and in the direction of the input, and switches to
// walking with a push away from the wall once it lands there.
func (cl *climber) jumpDown() {
	body := cl.c.Body()
	rot := body.Rotation()

	local := game.PlanarInput(cl.climbDir)
	dir := game.TransformDirection(rot, local)
	dir = dir.Add(game.ProjectOnPlane(game.TransformDirection(cl.c.Camera().Rotation(), local), game.WorldUp))
	dir = game.Normalize(dir.Mul(0.5))

	cl.notify("jumping down towards %v", dir)
	cl.bezier.Begin(transition.Params{
		End:         body.Position().Add(game.Up(rot)).Add(dir.Mul(2)),
		CurveNormal: game.WorldUp,
		Duration:    cl.climb.JumpDown.Duration,
		Height:      cl.climb.JumpDown.Height,
	}, func() {
		cl.c.SwitchMode(player.ModeWalk)
		body.AddForce(game.Forward(body.Rotation()).Mul(-1), physics.ForceModeImpulse)
	})
}

// curve returns bezier parameters ending at end using the curve settings given.
func curve(end, normal mgl32.Vec3, s settings.Curve) transition.Params {
	return transition.Params{End: end, CurveNormal: normal, Duration: s.Duration, Height: s.Height}
}
