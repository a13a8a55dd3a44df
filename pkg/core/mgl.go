package core

import "github.com/go-gl/mathgl/mgl64"

// Vec3 converts the vector to an mgl64 vector
func (v Vector) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// VectorFromVec3 converts an mgl64 vector to a Vector
func VectorFromVec3(v mgl64.Vec3) Vector {
	return Vector{X: v[0], Y: v[1], Z: v[2]}
}

// Vec3 converts the point to an mgl64 vector
func (p Point) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// PointFromVec3 converts an mgl64 vector to a Point
func PointFromVec3(v mgl64.Vec3) Point {
	return Point{X: v[0], Y: v[1], Z: v[2]}
}

// Transform applies m to the vector as a direction (w = 0), so translation is ignored
func (v Vector) Transform(m mgl64.Mat4) Vector {
	return VectorFromVec3(mgl64.TransformNormal(v.Vec3(), m))
}

// Transform applies m to the point as a position (w = 1) with perspective divide
func (p Point) Transform(m mgl64.Mat4) Point {
	return PointFromVec3(mgl64.TransformCoordinate(p.Vec3(), m))
}

// Transform maps the ray into the space described by m. The direction is not
// renormalized, so At(t) in the new space corresponds to At(t) in the old one.
func (r Ray) Transform(m mgl64.Mat4) Ray {
	return NewRay(r.Origin.Transform(m), r.Direction.Transform(m))
}
