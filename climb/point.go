package climb

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/physics"
)

// DefaultMinNeighborDot is the smallest alignment between the movement direction and the direction to a
// neighbor for that neighbor to be picked as the next target.
const DefaultMinNeighborDot = float32(0.15)

// Point is a discrete handhold placed on a wall. Its forward axis is the wall normal.
type Point struct {
	id string

	pos mgl32.Vec3
	rot mgl32.Quat

	offset    mgl32.Vec3
	halfRange float32

	neighbors []*Point
}

// NewPoint creates a point with the given transform. offset is the attach offset in the point's local
// space (x right, y up, z along the wall normal) and halfRange how far the climber may shuffle to either
// side of the attach position.
func NewPoint(id string, pos mgl32.Vec3, rot mgl32.Quat, offset mgl32.Vec3, halfRange float32) *Point {
	return &Point{id: id, pos: pos, rot: rot.Normalize(), offset: offset, halfRange: halfRange}
}

// ID returns the identifier of the point.
func (p *Point) ID() string {
	return p.id
}

// Tag always returns physics.TagClimbPoint.
func (p *Point) Tag() physics.Tag {
	return physics.TagClimbPoint
}

// Position returns the world position of the point.
func (p *Point) Position() mgl32.Vec3 {
	return p.pos
}

// Rotation returns the world rotation of the point.
func (p *Point) Rotation() mgl32.Quat {
	return p.rot
}

// SetTransform moves the point. Everything derived from the transform follows immediately.
func (p *Point) SetTransform(pos mgl32.Vec3, rot mgl32.Quat) {
	p.pos, p.rot = pos, rot.Normalize()
}

// Offset returns the local attach offset.
func (p *Point) Offset() mgl32.Vec3 {
	return p.offset
}

// HalfRange returns the lateral distance the climber may move to either side of the attach position.
func (p *Point) HalfRange() float32 {
	return p.halfRange
}

// WallNormal returns the direction pointing out of the wall the point sits on.
func (p *Point) WallNormal() mgl32.Vec3 {
	return game.Forward(p.rot)
}

// AttachPosition returns where the climber's body should be while holding on to the point.
func (p *Point) AttachPosition() mgl32.Vec3 {
	return p.pos.
		Add(game.Up(p.rot).Mul(p.offset.Y())).
		Add(game.Right(p.rot).Mul(p.offset.X())).
		Add(game.Forward(p.rot).Mul(p.offset.Z()))
}

// AttachRotation returns the orientation of a climber facing into the wall.
func (p *Point) AttachRotation() mgl32.Quat {
	return game.LookRotation(p.WallNormal().Mul(-1), game.WorldUp)
}

// Boundaries returns the two lateral limits of the point, left first.
func (p *Point) Boundaries() (left, right mgl32.Vec3) {
	attach, side := p.AttachPosition(), game.Right(p.rot).Mul(p.halfRange)
	return attach.Sub(side), attach.Add(side)
}

// CanMoveOnWall returns true if next lies strictly between the two lateral boundaries of the point. The
// vectors from each boundary to next point in opposite directions only while next is between them.
func (p *Point) CanMoveOnWall(next mgl32.Vec3) bool {
	left, right := p.Boundaries()
	toLeft := game.Normalize(next.Sub(left))
	toRight := game.Normalize(next.Sub(right))
	return toLeft.Dot(toRight) < 0
}

// Neighbors returns the points reachable from this one, in authoring order.
func (p *Point) Neighbors() []*Point {
	return p.neighbors
}

// AddNeighbor links n as reachable from p. Links are one way.
func (p *Point) AddNeighbor(n *Point) {
	p.neighbors = append(p.neighbors, n)
}

// NeighborDirections returns the normalized direction from the given position to every neighbor.
func (p *Point) NeighborDirections(from mgl32.Vec3) []mgl32.Vec3 {
	dirs := make([]mgl32.Vec3, len(p.neighbors))
	for i, n := range p.neighbors {
		dirs[i] = game.Normalize(n.pos.Sub(from))
	}
	return dirs
}

// BestNeighbor returns the neighbor of p whose direction from the given position is best aligned with
// movement. Neighbors aligned by minDot or less are never selected.
func BestNeighbor(p *Point, from, movement mgl32.Vec3, minDot float32) (*Point, bool) {
	if p == nil {
		return nil, false
	}

	var best *Point
	bestDot := minDot
	for i, dir := range p.NeighborDirections(from) {
		if d := movement.Dot(dir); d > bestDot {
			best, bestDot = p.neighbors[i], d
		}
	}
	return best, best != nil
}

// Nearest returns the point closest to the given position.
func Nearest(points []*Point, from mgl32.Vec3) (*Point, bool) {
	var (
		nearest *Point
		minDist float32
	)
	for _, p := range points {
		if d := p.pos.Sub(from).LenSqr(); nearest == nil || d < minDist {
			nearest, minDist = p, d
		}
	}
	return nearest, nearest != nil
}

// FromColliders returns every climb point among the colliders.
func FromColliders(colliders []physics.Collider) []*Point {
	var points []*Point
	for _, c := range colliders {
		if p, ok := c.(*Point); ok {
			points = append(points, p)
		}
	}
	return points
}
