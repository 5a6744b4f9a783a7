package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/physics"
	"github.com/oomph-ac/traverse/player"
	"github.com/oomph-ac/traverse/settings"
)

// Surface lets the character climb freely over any surface tagged as climbable, wrapping around corners
// and onto ledges it reaches.
type Surface struct {
	climber
	s settings.Surface

	// climbMovement is the velocity along the wall for the next physics step.
	climbMovement mgl32.Vec3
}

// NewSurface creates the surface climbing mode for the controller.
func NewSurface(c *player.Controller, s settings.Settings) *Surface {
	return &Surface{
		climber: newClimber(c, player.ModeSurfaceClimb, s.Climb, s.Surface.Movement),
		s:       s.Surface,
	}
}

// Apply replaces the settings of the mode.
func (m *Surface) Apply(s settings.Settings) {
	m.climb, m.movement, m.s = s.Climb, s.Surface.Movement, s.Surface
}

func (m *Surface) Enter() {
	m.enter()
}

func (m *Surface) Exit() {
	m.exit()
	m.climbMovement = mgl32.Vec3{}
}

func (m *Surface) OnMove(dir mgl32.Vec2) {
	m.climbDir = dir
}

// OnJump lets go of the wall if the input points down far enough, and hops up the wall otherwise.
func (m *Surface) OnJump(pressed bool) {
	if !pressed {
		return
	}
	if m.canJumpOff() {
		m.jumpDown()
		return
	}

	body := m.c.Body()
	rot := body.Rotation()
	m.notify("hopping up the wall")
	m.bezier.Begin(curve(body.Position().Add(game.Up(rot).Mul(m.movement.JumpStrength)), game.Forward(rot).Mul(-1), m.s.Hop), func() {
		m.castDir = mgl32.Vec3{}
	})
}

func (m *Surface) Update(dt float32) {
	if m.stepTransition(dt) {
		return
	}
	m.climbMovement = game.TransformDirection(m.c.Body().Rotation(), game.WallInput(m.climbDir))
	m.accumulate(m.climbMovement)
	m.climbMovement = m.climbMovement.Mul(m.movement.MoveSpeed)
}

func (m *Surface) FixedUpdate(dt float32) player.MoveStatus {
	status := m.fixedUpdate()
	if m.left() || m.transitioning() {
		return status
	}
	if status == player.StatusPossiblyClimbable {
		return m.corner()
	}

	body := m.c.Body()
	body.SetPosition(body.Position().Add(m.climbMovement.Mul(dt)))

	scan := m.scan()
	if scan.gapTooSmall(m.s.MinGapDistance) {
		m.notify("gap towards the next surface is too small")
		return player.StatusNotClimbable
	}
	if scan.sameSurface(m.s.MinSphericalNormalDot) {
		return player.StatusClimbable
	}
	return m.wrap()
}

// corner looks for a wall facing the body in the direction it is climbing and moves onto it if found.
func (m *Surface) corner() player.MoveStatus {
	t := m.s.Transition
	hit, ok := m.c.Probe().BoxCast(m.relative(t.Offset), t.HalfSize.Vec(), m.castDir, m.diagonal(), t.Distance, m.mask())
	if !ok || hit.Tag() != physics.TagClimbSurface || hit.Normal.Dot(game.WorldUp) >= m.movement.WalkableDot {
		return player.StatusNotClimbable
	}

	m.notify("moving onto the wall at the corner (normal %v)", hit.Normal)
	fwd := game.Forward(m.c.Body().Rotation())
	p := curve(hit.Point.Add(hit.Normal), game.Lerp(fwd.Mul(-1), hit.Normal, 0.5), m.s.Corner)
	p.Rotate, p.EndForward = true, hit.Normal.Mul(-1)
	m.bezier.Begin(p, func() {
		m.castDir = mgl32.Vec3{}
	})
	return player.StatusClimbable
}

// scan steps along the climbing direction, casting forward at every step to find out where the wall
// ends and whether another surface follows.
func (m *Surface) scan() wallScan {
	var s wallScan
	if game.IsZero(m.castDir) {
		return s
	}

	t := m.s.Transition
	rot := m.c.Body().Rotation()
	fwd := game.Forward(rot)
	orientation := game.LookRotation(fwd, game.Up(rot))
	probe := m.c.Probe()

	start := m.relative(t.Offset)
	step := m.castDir.Mul(m.s.ScanStep)
	for pos := start; pos.Sub(start).Len() < t.Distance; pos = pos.Add(step) {
		// Nothing behind a collider between the start and this step is of interest.
		if _, blocked := probe.Linecast(start, pos, m.mask()); blocked {
			break
		}
		hit, ok := probe.BoxCast(pos, t.HalfSize.Vec(), fwd, orientation, t.Distance, m.mask())
		switch {
		case !ok:
			s.miss(pos)
		case hit.Tag() == physics.TagClimbSurface:
			s.hit(pos, hit.Normal)
		}
	}
	return s
}

// wrap looks back towards the body from past the edge it is climbing towards and moves onto the surface
// it finds there.
func (m *Surface) wrap() player.MoveStatus {
	t := m.s.Transition
	fwd := game.Forward(m.c.Body().Rotation())
	origin := m.relative(t.Offset).Add(m.castDir.Mul(t.Distance)).Add(fwd.Mul(m.s.WrapForwardOffset))

	hit, ok := m.c.Probe().BoxCast(origin, t.HalfSize.Vec(), m.castDir.Mul(-1), game.LookRotation(fwd, game.Up(m.c.Body().Rotation())), t.Distance, m.mask())
	if !ok {
		return player.StatusClimbable
	}
	if hit.Tag() != physics.TagClimbSurface {
		return player.StatusNotClimbable
	}

	normal := game.Lerp(fwd.Mul(-1), hit.Normal, 0.5)
	switch {
	case hit.Normal.Dot(game.WorldUp) >= m.movement.WalkableDot:
		m.notify("climbing onto walkable ledge (normal %v)", hit.Normal)
		p := curve(hit.Point.Add(game.WorldUp.Mul(m.s.LedgeHeight)), normal, m.s.Wrap)
		p.Rotate, p.EndForward = true, fwd
		m.bezier.Begin(p, func() {
			m.castDir = mgl32.Vec3{}
			m.c.SwitchMode(player.ModeWalk)
		})
	case hit.Normal.Dot(fwd.Mul(-1)) < m.s.TransitionMaxAngleDot:
		m.notify("wrapping around onto wall (normal %v)", hit.Normal)
		p := curve(hit.Point.Add(hit.Normal), normal, m.s.Wrap)
		p.Rotate, p.EndForward = true, hit.Normal.Mul(-1)
		m.bezier.Begin(p, func() {
			m.castDir = mgl32.Vec3{}
		})
	default:
		m.notify("surface past the edge faces the body too much to wrap onto")
	}
	return player.StatusClimbable
}
