package transition

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/game"
)

// Curve is a quadratic Bezier curve.
type Curve struct {
	Start, Control, End mgl32.Vec3
}

// NewCurve returns a curve from start to end whose control point is lifted off the midpoint along normal
// by height.
func NewCurve(start, end, normal mgl32.Vec3, height float32) Curve {
	mid := start.Add(end).Mul(0.5)
	return Curve{Start: start, Control: mid.Add(normal.Mul(height)), End: end}
}

// Eval returns the point on the curve at t using de Casteljau's algorithm. Eval(0) is exactly Start and
// Eval(1) is exactly End.
func (c Curve) Eval(t float32) mgl32.Vec3 {
	a := game.Lerp(c.Start, c.Control, t)
	b := game.Lerp(c.Control, c.End, t)
	return game.Lerp(a, b, t)
}
