package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// contactEpsilon is how far a body may sink into a collider and still be pushed back out of it.
const contactEpsilon = float32(1e-4)

// collide clips delta against every collider near the body, resolving the Y axis first, then X, then Z.
func (b *Body) collide(delta mgl32.Vec3) mgl32.Vec3 {
	bb := b.BBox()

	b.w.RLock()
	var nearby []cube.BBox
	swept := bb.Extend(delta)
	b.w.each(b.mask, func(e *entry) {
		if c := e.bounds(); c.IntersectsWith(swept) {
			nearby = append(nearby, c)
		}
	})
	b.w.RUnlock()

	var moved mgl32.Vec3
	for _, axis := range [3]int{1, 0, 2} {
		d := delta[axis]
		for _, c := range nearby {
			d = axisOffset(c, bb, axis, d)
		}
		var step mgl32.Vec3
		step[axis] = d
		bb = bb.Translate(step)
		moved[axis] = d
	}
	return moved
}

// axisOffset returns how far moving can travel along axis by at most d before running into stationary.
// Boxes that do not overlap on the two other axes never limit the movement.
func axisOffset(stationary, moving cube.BBox, axis int, d float32) float32 {
	for other := 0; other < 3; other++ {
		if other == axis {
			continue
		}
		if moving.Max()[other] <= stationary.Min()[other] || moving.Min()[other] >= stationary.Max()[other] {
			return d
		}
	}

	if d > 0 && moving.Max()[axis] <= stationary.Min()[axis]+contactEpsilon {
		if gap := stationary.Min()[axis] - moving.Max()[axis]; gap < d {
			d = gap
		}
	} else if d < 0 && moving.Min()[axis] >= stationary.Max()[axis]-contactEpsilon {
		if gap := stationary.Max()[axis] - moving.Min()[axis]; gap > d {
			d = gap
		}
	}
	return d
}
