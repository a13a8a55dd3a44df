package geometry

import "github.com/df07/go-raykernel/pkg/core"

// Intersection is the hit record produced when a ray meets a surface.
// The hit point is never stored; it is derived from the ray and distance on demand.
type Intersection struct {
	ray      core.Ray
	distance float64
	n        core.Vector
	uv       core.Point
}

// NewIntersection creates a hit record for ray at parameter distance, with surface
// normal n and local surface coordinate uv
func NewIntersection(distance float64, ray core.Ray, n core.Vector, uv core.Point) Intersection {
	return Intersection{ray: ray, distance: distance, n: n, uv: uv}
}

// Ray returns the ray that produced the hit
func (i Intersection) Ray() core.Ray { return i.ray }

// Distance returns the ray parameter at the hit
func (i Intersection) Distance() float64 { return i.distance }

// HitPoint returns the position of the hit along the ray
func (i Intersection) HitPoint() core.Point {
	return i.ray.At(i.distance)
}

// Normal returns the surface normal at the hit
func (i Intersection) Normal() core.Vector { return i.n }

// Local returns the surface parameterization coordinate of the hit
func (i Intersection) Local() core.Point { return i.uv }
