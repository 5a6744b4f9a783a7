package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/game"
)

// wallScan collects the samples taken while stepping along the climbing direction, looking for the wall
// to end and another surface to start.
type wallScan struct {
	// gapOpened is set by the first sample that found no wall, gapClosed by the first wall after it.
	gapOpened, gapClosed bool
	opening, closing     mgl32.Vec3

	hasOriginal, hasCompare bool
	original, compare       mgl32.Vec3
}

// hit records a sample at pos that found a climbable surface with the given normal.
func (s *wallScan) hit(pos, normal mgl32.Vec3) {
	if s.hasOriginal && !s.hasCompare && !game.Vec3ApproxEq(normal, s.original, game.Epsilon) {
		s.compare, s.hasCompare = normal, true
	}
	if !s.hasOriginal {
		s.original, s.hasOriginal = normal, true
	}
	if s.gapOpened && !s.gapClosed {
		s.closing, s.gapClosed = pos, true
	}
}

// miss records a sample at pos that found nothing.
func (s *wallScan) miss(pos mgl32.Vec3) {
	if !s.gapOpened {
		s.opening, s.gapOpened = pos, true
	}
}

// gapTooSmall returns true if a gap was found and closed again within minGap.
func (s *wallScan) gapTooSmall(minGap float32) bool {
	if !s.gapOpened || !s.gapClosed {
		return false
	}
	return s.closing.Sub(s.opening).LenSqr() < minGap*minGap
}

// sameSurface returns true if the scanned normals do not differ enough to warrant moving onto another
// surface. With one or no normal seen the body is on a flat wall or just finished a transition.
func (s *wallScan) sameSurface(minDot float32) bool {
	if !s.hasOriginal || !s.hasCompare {
		return true
	}
	return s.original.Dot(s.compare) > minDot
}
