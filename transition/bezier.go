package transition

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/physics"
)

const (
	DefaultDuration = float32(1)
	DefaultHeight   = float32(3)
)

// Params describes a curved move of a body from wherever it is to End.
type Params struct {
	End mgl32.Vec3
	// CurveNormal is the direction the curve bulges towards.
	CurveNormal mgl32.Vec3
	// Duration is in seconds. A non-positive duration finishes on the first step.
	Duration float32
	Height   float32

	// Rotate turns the body to look along EndForward, with Up as up, over the course of the move.
	Rotate     bool
	EndForward mgl32.Vec3
	Up         mgl32.Vec3
}

// Bezier moves a body along quadratic curves, one at a time.
type Bezier struct {
	Slot
	body physics.Body
}

// NewBezier returns a Bezier that drives the given body.
func NewBezier(body physics.Body) *Bezier {
	return &Bezier{body: body}
}

// Begin cancels the move in flight, if any, and starts a new one from the current pose of the body.
func (b *Bezier) Begin(p Params, onComplete func()) *Handle {
	task := &bezierTask{
		body:     b.body,
		curve:    NewCurve(b.body.Position(), p.End, p.CurveNormal, p.Height),
		duration: p.Duration,
	}
	if p.Rotate && !game.IsZero(p.EndForward) {
		up := p.Up
		if game.IsZero(up) {
			up = game.WorldUp
		}
		task.rotate = true
		task.from = b.body.Rotation()
		task.to = game.LookRotation(p.EndForward, up)
	}
	return b.Start(task, onComplete)
}

type bezierTask struct {
	body physics.Body

	curve             Curve
	duration, elapsed float32

	rotate   bool
	from, to mgl32.Quat
}

func (b *bezierTask) Step(dt float32) bool {
	b.elapsed += dt

	t := float32(1)
	if b.duration > 0 {
		t = mgl32.Clamp(b.elapsed/b.duration, 0, 1)
	}

	b.body.SetPosition(b.curve.Eval(t))
	if b.rotate {
		b.body.SetRotation(game.Slerp(b.from, b.to, t))
	}
	return t >= 1
}
