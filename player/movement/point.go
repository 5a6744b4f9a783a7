package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/climb"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/player"
	"github.com/oomph-ac/traverse/settings"
)

// Point lets the character hang from climb points, shuffle sideways within the range of the point it
// hangs from and jump between neighbouring points.
type Point struct {
	climber
	s settings.Point

	current *climb.Point
	target  *climb.Point
}

// NewPoint creates the point climbing mode for the controller.
func NewPoint(c *player.Controller, s settings.Settings) *Point {
	return &Point{
		climber: newClimber(c, player.ModePointClimb, s.Climb, s.Point.Movement),
		s:       s.Point,
	}
}

// Apply replaces the settings of the mode.
func (m *Point) Apply(s settings.Settings) {
	m.climb, m.movement, m.s = s.Climb, s.Point.Movement, s.Point
}

// Current returns the point the character hangs from, if any.
func (m *Point) Current() (*climb.Point, bool) {
	return m.current, m.current != nil
}

// Target returns the point a jump would move the character to, if any.
func (m *Point) Target() (*climb.Point, bool) {
	return m.target, m.target != nil
}

// Enter attaches to the climb point nearest to the body. With no point in range the character goes back
// to walking.
func (m *Point) Enter() {
	m.enter()
	m.current, m.target = nil, nil

	body := m.c.Body()
	colliders := m.c.Probe().OverlapSphere(body.Position(), m.s.DetectRadius, m.mask())
	p, ok := climb.Nearest(climb.FromColliders(colliders), body.Position())
	if !ok {
		m.c.Log().Warnf("movement: no climb point within %.2f of %v, walking instead", m.s.DetectRadius, body.Position())
		m.c.SwitchMode(player.ModeWalk)
		return
	}
	m.current = p
	body.SetRotation(p.AttachRotation())
	m.notify("attached to climb point %s", p.ID())
}

func (m *Point) Exit() {
	m.exit()
	m.current, m.target = nil, nil
}

func (m *Point) OnMove(dir mgl32.Vec2) {
	m.climbDir = dir
}

// OnJump moves to the target point if there is one. Otherwise the character lets go if the input points
// down far enough.
func (m *Point) OnJump(pressed bool) {
	if !pressed || m.transitioning() {
		return
	}
	if m.target == nil {
		if m.canJumpOff() {
			m.jumpDown()
		}
		return
	}

	m.current, m.target = m.target, nil
	m.notify("jumping to climb point %s", m.current.ID())
	m.bezier.Begin(curve(m.current.AttachPosition(), m.current.WallNormal(), m.s.Hop), nil)
	m.c.Body().SetRotation(m.current.AttachRotation())
}

func (m *Point) Update(dt float32) {
	m.stepTransition(dt)
}

func (m *Point) FixedUpdate(dt float32) player.MoveStatus {
	status := m.fixedUpdate()
	if m.left() || m.transitioning() || m.current == nil {
		return status
	}

	body := m.c.Body()
	rot := body.Rotation()
	climbMovement := game.TransformDirection(rot, game.WallInput(m.climbDir))
	m.accumulate(climbMovement)

	movement := m.movementOnWall()
	inPlane := game.ProjectOnPlane(game.ProjectOnPlane(movement, game.Forward(m.current.Rotation())), game.Up(m.current.Rotation()))
	next := body.Position().Add(inPlane.Mul(m.movement.MoveSpeed * dt))
	if m.current.CanMoveOnWall(next) {
		body.SetPosition(next)
	}

	m.target, _ = climb.BestNeighbor(m.current, body.Position(), movement, m.s.MinNeighborDot)
	return status
}

// movementOnWall mixes the input along the body's axes with the input relative to the camera.
func (m *Point) movementOnWall() mgl32.Vec3 {
	rot := m.c.Body().Rotation()
	movement := game.Up(rot).Mul(m.climbDir.Y()).Add(game.Right(rot).Mul(m.climbDir.X()))

	camera := game.ProjectOnPlane(game.TransformDirection(m.c.Camera().Rotation(), game.WallInput(m.climbDir)), game.WorldUp)
	movement = movement.Add(mgl32.Vec3{camera.X(), camera.Y(), 0})
	return game.Normalize(movement.Mul(0.5))
}
