package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3ApproxEq determines whether every component of the two vectors is within eps of the other.
func Vec3ApproxEq(a, b mgl32.Vec3, eps float32) bool {
	return math32.Abs(a[0]-b[0]) <= eps && math32.Abs(a[1]-b[1]) <= eps && math32.Abs(a[2]-b[2]) <= eps
}

// IsZero returns true if the vector is shorter than Epsilon.
func IsZero(v mgl32.Vec3) bool {
	return v.LenSqr() < Epsilon*Epsilon
}

// Normalize returns the unit vector of v, or a zero vector if v is too short to have a direction.
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < Epsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// Lerp linearly interpolates between a and b. The result is exactly a at t=0 and exactly b at t=1.
func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// ProjectOnPlane removes the component of v that lies along the plane normal n.
func ProjectOnPlane(v, n mgl32.Vec3) mgl32.Vec3 {
	sqr := n.Dot(n)
	if sqr < Epsilon*Epsilon {
		return v
	}
	return v.Sub(n.Mul(v.Dot(n) / sqr))
}

// LookRotation returns the rotation whose forward axis (+Z) points along forward and whose up axis (+Y)
// is as close to up as possible. A zero forward yields the identity rotation.
func LookRotation(forward, up mgl32.Vec3) mgl32.Quat {
	f := Normalize(forward)
	if IsZero(f) {
		return mgl32.QuatIdent()
	}
	if IsZero(up) {
		up = WorldUp
	}

	r := up.Cross(f)
	if r.LenSqr() < Epsilon {
		// Forward is parallel to up, so any perpendicular right axis will do.
		alt := WorldForward
		if math32.Abs(f.Z()) > 0.9 {
			alt = WorldRight
		}
		r = alt.Cross(f)
	}
	r = r.Normalize()
	u := f.Cross(r)

	return mgl32.Mat4ToQuat(mgl32.Mat3FromCols(r, u, f).Mat4()).Normalize()
}

// Slerp spherically interpolates from a to b along the shortest arc. t is clamped to [0, 1].
func Slerp(a, b mgl32.Quat, t float32) mgl32.Quat {
	t = mgl32.Clamp(t, 0, 1)
	if t == 1 {
		return b
	}
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl32.QuatSlerp(a, b, t)
}

// Forward returns the forward (+Z) axis of the rotation.
func Forward(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(WorldForward)
}

// Up returns the up (+Y) axis of the rotation.
func Up(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(WorldUp)
}

// Right returns the right (+X) axis of the rotation.
func Right(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(WorldRight)
}

// TransformDirection rotates a local direction into the space of the rotation.
func TransformDirection(q mgl32.Quat, local mgl32.Vec3) mgl32.Vec3 {
	return q.Rotate(local)
}

// PlanarInput converts a two dimensional stick input into a local direction on the XZ plane.
func PlanarInput(v mgl32.Vec2) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Y()}
}

// WallInput converts a two dimensional stick input into a local direction on the XY plane.
func WallInput(v mgl32.Vec2) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), v.Y(), 0}
}
