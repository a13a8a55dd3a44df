package geometry

import "github.com/df07/go-raykernel/pkg/core"

// Primitive is implemented by geometric shapes that can be placed in a scene
type Primitive interface {
	// Bounds returns a box enclosing the whole primitive
	Bounds() BBox

	// Intersect returns the closest hit along ray, or false if there is none or the
	// closest hit is farther than previousBestDistance
	Intersect(ray core.Ray, previousBestDistance float64) (*Intersection, bool)
}
