package physics

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/game"
)

// Box is an oriented box used to visualise box casts.
type Box struct {
	Origin      mgl32.Vec3
	HalfExtents mgl32.Vec3
	Orientation mgl32.Quat
}

// Corners returns the eight world space corners of the box. The first four are the front face
// (top left, top right, bottom left, bottom right), the last four the back face in the same order.
func (b Box) Corners() [8]mgl32.Vec3 {
	x, y, z := b.HalfExtents[0], b.HalfExtents[1], b.HalfExtents[2]
	frontTopLeft := mgl32.Vec3{-x, y, -z}
	frontTopRight := mgl32.Vec3{x, y, -z}
	frontBottomLeft := mgl32.Vec3{-x, -y, -z}
	frontBottomRight := mgl32.Vec3{x, -y, -z}

	local := [8]mgl32.Vec3{
		frontTopLeft, frontTopRight, frontBottomLeft, frontBottomRight,
		frontBottomRight.Mul(-1), frontBottomLeft.Mul(-1), frontTopRight.Mul(-1), frontTopLeft.Mul(-1),
	}
	for i, c := range local {
		local[i] = b.Origin.Add(b.Orientation.Rotate(c))
	}
	return local
}

// Translate returns the box moved by v.
func (b Box) Translate(v mgl32.Vec3) Box {
	b.Origin = b.Origin.Add(v)
	return b
}

// CastCenterOnHit returns the center of a cast shape at the moment it touched something.
func CastCenterOnHit(origin, direction mgl32.Vec3, distance float32) mgl32.Vec3 {
	return origin.Add(game.Normalize(direction).Mul(distance))
}

// DrawBox draws the twelve edges of the box.
func DrawBox(d Drawer, b Box, c color.RGBA) {
	p := b.Corners()
	edges := [12][2]int{
		{0, 1}, {1, 3}, {3, 2}, {2, 0},
		{4, 5}, {5, 7}, {7, 6}, {6, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		d.DrawLine(p[e[0]], p[e[1]], c)
	}
}

// DrawBoxCastBox draws the box at its origin and at the end of its sweep, connected at the corners.
func DrawBoxCastBox(d Drawer, b Box, direction mgl32.Vec3, distance float32, c color.RGBA) {
	end := b.Translate(game.Normalize(direction).Mul(distance))
	DrawBox(d, b, c)
	DrawBox(d, end, c)

	from, to := b.Corners(), end.Corners()
	for i := range from {
		d.DrawLine(from[i], to[i], c)
	}
}

// DrawBoxCastOnHit draws a box cast up to the point where it hit.
func DrawBoxCastOnHit(d Drawer, b Box, direction mgl32.Vec3, hit Hit, c color.RGBA) {
	DrawBoxCastBox(d, b, direction, hit.Distance, c)
	d.DrawLine(hit.Point, hit.Point.Add(hit.Normal), ColorHit)
}
