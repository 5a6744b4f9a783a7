package movement

import (
	"github.com/oomph-ac/traverse/player"
	"github.com/oomph-ac/traverse/settings"
)

// Modes are the movement modes registered to a controller.
type Modes struct {
	Walk    *Walk
	Surface *Surface
	Point   *Point
}

// Register creates every movement mode for the controller and registers them to it. The controller is
// left in whatever mode it was in.
func Register(c *player.Controller, s settings.Settings) *Modes {
	m := &Modes{
		Walk:    NewWalk(c, s),
		Surface: NewSurface(c, s),
		Point:   NewPoint(c, s),
	}
	c.Register(player.ModeWalk, m.Walk)
	c.Register(player.ModeSurfaceClimb, m.Surface)
	c.Register(player.ModePointClimb, m.Point)
	c.SetDebug(s.Debug.Enabled)
	return m
}

// Apply replaces the settings of every mode. It must be called from the goroutine that ticks the
// controller.
func (m *Modes) Apply(s settings.Settings) {
	m.Walk.Apply(s)
	m.Surface.Apply(s)
	m.Point.Apply(s)
}
