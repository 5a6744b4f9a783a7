package physics

import "github.com/go-gl/mathgl/mgl32"

// Tag classifies the geometry a collider belongs to. Any tag other than the ones declared here is
// treated as generic blocking geometry.
type Tag string

const (
	TagUntagged     Tag = ""
	TagFloor        Tag = "Floor"
	TagClimbSurface Tag = "ClimbSurface"
	TagClimbPoint   Tag = "ClimbPoint"
)

// Known returns true if the tag is one of the tags the movement modes dispatch on.
func (t Tag) Known() bool {
	switch t {
	case TagFloor, TagClimbSurface, TagClimbPoint:
		return true
	}
	return false
}

// Mask is a bitset of collision layers a query should consider.
type Mask uint32

// MaskAll matches every layer.
const MaskAll = ^Mask(0)

// Matches returns true if the layer bit(s) given overlap the mask.
func (m Mask) Matches(layer Mask) bool {
	return m&layer != 0
}

// Collider is an object in the physics world that queries may return.
type Collider interface {
	// Tag returns the tag of the collider.
	Tag() Tag
	// Position returns the world position of the collider.
	Position() mgl32.Vec3
}

// Hit is the result of a shape cast that touched a collider.
type Hit struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
	Collider Collider
}

// Tag returns the tag of the collider that was hit, or TagUntagged if the hit carries no collider.
func (h Hit) Tag() Tag {
	if h.Collider == nil {
		return TagUntagged
	}
	return h.Collider.Tag()
}

// World is the physics collaborator the movement modes query. Casts that find nothing return false,
// never an error. A cast must observe body positions written earlier in the same tick.
type World interface {
	// BoxCast sweeps an oriented box from origin along direction for at most maxDistance.
	BoxCast(origin, halfExtents, direction mgl32.Vec3, orientation mgl32.Quat, maxDistance float32, mask Mask) (Hit, bool)
	// SphereCast sweeps a sphere from origin along direction for at most maxDistance. A radius of zero
	// behaves like a ray.
	SphereCast(origin mgl32.Vec3, radius float32, direction mgl32.Vec3, maxDistance float32, mask Mask) (Hit, bool)
	// OverlapSphere returns every collider touching the sphere.
	OverlapSphere(center mgl32.Vec3, radius float32, mask Mask) []Collider
}
