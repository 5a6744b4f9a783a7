package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/game"
)

// Probe wraps the queries the movement modes issue against a World. It holds no state of its own other
// than where to send debug geometry.
type Probe struct {
	w      World
	drawer Drawer
	debug  func() bool
}

// NewProbe returns a Probe over the world. The drawer receives cast visualisations whenever debug
// returns true. Either may be nil.
func NewProbe(w World, drawer Drawer, debug func() bool) *Probe {
	if drawer == nil {
		drawer = NopDrawer{}
	}
	if debug == nil {
		debug = func() bool { return false }
	}
	return &Probe{w: w, drawer: drawer, debug: debug}
}

// World returns the world the probe queries.
func (p *Probe) World() World {
	return p.w
}

// BoxCast sweeps an oriented box. A zero direction or a non-positive distance never hits.
func (p *Probe) BoxCast(origin, halfExtents, direction mgl32.Vec3, orientation mgl32.Quat, maxDistance float32, mask Mask) (Hit, bool) {
	direction = game.Normalize(direction)
	if game.IsZero(direction) || maxDistance <= 0 {
		return Hit{}, false
	}

	hit, ok := p.w.BoxCast(origin, halfExtents, direction, orientation, maxDistance, mask)
	if p.debug() {
		box := Box{Origin: origin, HalfExtents: halfExtents, Orientation: orientation}
		if ok {
			DrawBoxCastOnHit(p.drawer, box, direction, hit, ColorHit)
		} else {
			DrawBoxCastBox(p.drawer, box, direction, maxDistance, ColorMiss)
		}
	}
	return hit, ok
}

// SphereCast sweeps a sphere. A zero direction or a non-positive distance never hits.
func (p *Probe) SphereCast(origin mgl32.Vec3, radius float32, direction mgl32.Vec3, maxDistance float32, mask Mask) (Hit, bool) {
	direction = game.Normalize(direction)
	if game.IsZero(direction) || maxDistance <= 0 {
		return Hit{}, false
	}

	hit, ok := p.w.SphereCast(origin, radius, direction, maxDistance, mask)
	if p.debug() {
		end := origin.Add(direction.Mul(maxDistance))
		if ok {
			end = hit.Point
		}
		p.drawer.DrawLine(origin, end, ColorCast)
	}
	return hit, ok
}

// Linecast returns the first collider between start and end.
func (p *Probe) Linecast(start, end mgl32.Vec3, mask Mask) (Hit, bool) {
	delta := end.Sub(start)
	return p.SphereCast(start, 0, delta, delta.Len(), mask)
}

// OverlapSphere returns every collider touching the sphere.
func (p *Probe) OverlapSphere(center mgl32.Vec3, radius float32, mask Mask) []Collider {
	if radius <= 0 {
		return nil
	}
	return p.w.OverlapSphere(center, radius, mask)
}

// Draw forwards a debug line when debugging is enabled.
func (p *Probe) Draw(from, to mgl32.Vec3) {
	if p.debug() {
		p.drawer.DrawLine(from, to, ColorCast)
	}
}
