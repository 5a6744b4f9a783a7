package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/physics"
)

// BoxCast sweeps the axis aligned bounds of the oriented box. Colliders the box already overlaps at its
// origin are ignored.
func (w *World) BoxCast(origin, halfExtents, direction mgl32.Vec3, orientation mgl32.Quat, maxDistance float32, mask physics.Mask) (physics.Hit, bool) {
	return w.sweep(origin, orientedExtents(halfExtents, orientation), direction, maxDistance, mask)
}

// SphereCast sweeps the bounding box of the sphere. A radius of zero casts a ray.
func (w *World) SphereCast(origin mgl32.Vec3, radius float32, direction mgl32.Vec3, maxDistance float32, mask physics.Mask) (physics.Hit, bool) {
	return w.sweep(origin, mgl32.Vec3{radius, radius, radius}, direction, maxDistance, mask)
}

// OverlapSphere returns every collider whose bounds are within radius of center.
func (w *World) OverlapSphere(center mgl32.Vec3, radius float32, mask physics.Mask) []physics.Collider {
	w.RLock()
	defer w.RUnlock()

	var found []physics.Collider
	w.each(mask, func(e *entry) {
		if game.AABBVectorDistance(e.bounds(), center) <= radius {
			found = append(found, e.owner)
		}
	})
	return found
}

// sweep finds the closest collider hit by a box of the given half extents moving from origin along
// direction. Every collider is grown by the extents so the sweep reduces to a segment test.
func (w *World) sweep(origin, ext, direction mgl32.Vec3, maxDistance float32, mask physics.Mask) (physics.Hit, bool) {
	direction = game.Normalize(direction)
	if game.IsZero(direction) || maxDistance <= 0 {
		return physics.Hit{}, false
	}
	end := origin.Add(direction.Mul(maxDistance))

	w.RLock()
	defer w.RUnlock()

	var (
		best  physics.Hit
		found bool
	)
	w.each(mask, func(e *entry) {
		bb := e.bounds()
		grown := bb.GrowVec3(ext)
		if game.AABBContains(grown, origin) {
			return
		}
		res, ok := trace.BBoxIntercept(grown, origin, end)
		if !ok {
			return
		}

		dist := res.Position().Sub(origin).Len()
		if found && dist >= best.Distance {
			return
		}
		normal := faceNormal(res.Face())
		contact := res.Position().Sub(mgl32.Vec3{normal[0] * ext[0], normal[1] * ext[1], normal[2] * ext[2]})

		best = physics.Hit{
			Point:    game.ClampToAABB(bb, contact),
			Normal:   normal,
			Distance: dist,
			Collider: e.owner,
		}
		found = true
	})
	return best, found
}

// orientedExtents returns the half extents of the axis aligned box enclosing the oriented box.
func orientedExtents(half mgl32.Vec3, orientation mgl32.Quat) mgl32.Vec3 {
	x := orientation.Rotate(mgl32.Vec3{half[0], 0, 0})
	y := orientation.Rotate(mgl32.Vec3{0, half[1], 0})
	z := orientation.Rotate(mgl32.Vec3{0, 0, half[2]})

	var ext mgl32.Vec3
	for i := range ext {
		ext[i] = math32.Abs(x[i]) + math32.Abs(y[i]) + math32.Abs(z[i])
	}
	return ext
}

func faceNormal(f cube.Face) mgl32.Vec3 {
	switch f {
	case cube.FaceDown:
		return mgl32.Vec3{0, -1, 0}
	case cube.FaceUp:
		return mgl32.Vec3{0, 1, 0}
	case cube.FaceNorth:
		return mgl32.Vec3{0, 0, -1}
	case cube.FaceSouth:
		return mgl32.Vec3{0, 0, 1}
	case cube.FaceWest:
		return mgl32.Vec3{-1, 0, 0}
	default:
		return mgl32.Vec3{1, 0, 0}
	}
}
