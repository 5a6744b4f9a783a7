package physics

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ColorCast = color.RGBA{R: 0x33, G: 0x99, B: 0xff, A: 0xff}
	ColorHit  = color.RGBA{R: 0xff, G: 0x33, B: 0x33, A: 0xff}
	ColorMiss = color.RGBA{R: 0x33, G: 0xff, B: 0x66, A: 0xff}
)

// Drawer receives debug geometry. Drawing never influences the simulation.
type Drawer interface {
	DrawLine(from, to mgl32.Vec3, c color.RGBA)
}

// NopDrawer discards everything drawn to it.
type NopDrawer struct{}

func (NopDrawer) DrawLine(mgl32.Vec3, mgl32.Vec3, color.RGBA) {}
