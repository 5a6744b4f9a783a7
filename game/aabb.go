package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBCenter returns the center point of the bounding box.
func AABBCenter(a cube.BBox) mgl32.Vec3 {
	return a.Min().Add(a.Max()).Mul(0.5)
}

// AABBFromCenter returns a bounding box centered on c that extends half in every direction.
func AABBFromCenter(c, half mgl32.Vec3) cube.BBox {
	return cube.Box(
		c[0]-half[0], c[1]-half[1], c[2]-half[2],
		c[0]+half[0], c[1]+half[1], c[2]+half[2],
	)
}

// AABBContains returns true if the vector lies strictly inside the bounding box.
func AABBContains(a cube.BBox, v mgl32.Vec3) bool {
	return v[0] > a.Min()[0] && v[0] < a.Max()[0] &&
		v[1] > a.Min()[1] && v[1] < a.Max()[1] &&
		v[2] > a.Min()[2] && v[2] < a.Max()[2]
}

// AABBVectorDistance calculates the distance between an AABB and a vector.
func AABBVectorDistance(a cube.BBox, v mgl32.Vec3) float32 {
	x := math32.Max(a.Min().X()-v.X(), math32.Max(0, v.X()-a.Max().X()))
	y := math32.Max(a.Min().Y()-v.Y(), math32.Max(0, v.Y()-a.Max().Y()))
	z := math32.Max(a.Min().Z()-v.Z(), math32.Max(0, v.Z()-a.Max().Z()))

	return math32.Sqrt(x*x + y*y + z*z)
}

// ClampToAABB returns the point inside the bounding box that is closest to v.
func ClampToAABB(a cube.BBox, v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(v[0], a.Min()[0], a.Max()[0]),
		mgl32.Clamp(v[1], a.Min()[1], a.Max()[1]),
		mgl32.Clamp(v[2], a.Min()[2], a.Max()[2]),
	}
}
