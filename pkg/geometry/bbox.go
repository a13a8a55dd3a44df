package geometry

import (
	"math"

	"github.com/df07/go-raykernel/pkg/core"
)

// BBox represents an axis-aligned bounding box. A box with Min greater than Max on
// any axis is empty; a component at ±math.MaxFloat64 marks it unbounded.
type BBox struct {
	Min core.Point // Minimum corner
	Max core.Point // Maximum corner
}

// NewBBox creates a new BBox from min and max corners
func NewBBox(min, max core.Point) BBox {
	return BBox{Min: min, Max: max}
}

// EmptyBBox returns the inverted box that encloses nothing. It is the identity for Union.
func EmptyBBox() BBox {
	return BBox{
		Min: core.UniformPoint(math.MaxFloat64),
		Max: core.UniformPoint(-math.MaxFloat64),
	}
}

// FullBBox returns the box spanning all representable space
func FullBBox() BBox {
	return BBox{
		Min: core.UniformPoint(-math.MaxFloat64),
		Max: core.UniformPoint(math.MaxFloat64),
	}
}

// NewBBoxFromPoints creates a BBox that bounds all given points
func NewBBoxFromPoints(points ...core.Point) BBox {
	box := EmptyBBox()
	for _, p := range points {
		box.ExtendPoint(p)
	}
	return box
}

// Union returns a BBox that bounds both this box and another
func (b BBox) Union(other BBox) BBox {
	return BBox{
		Min: b.Min.Min(other.Min),
		Max: b.Max.Max(other.Max),
	}
}

// Extend grows the box in place to enclose other
func (b *BBox) Extend(other BBox) {
	*b = b.Union(other)
}

// ExtendPoint grows the box in place to enclose p
func (b *BBox) ExtendPoint(p core.Point) {
	*b = b.Union(BBox{Min: p, Max: p})
}

// Intersect clips the ray against the box using the slab method and returns the
// parameter interval [tEnter, tExit] during which the ray is inside all three slabs.
// The ray hits the box only if tEnter <= tExit; checking that is up to the caller.
//
// A zero direction component divides to ±Inf, which orders correctly through the
// min/max chain. A 0/0 term is NaN and is skipped by MinNum/MaxNum.
func (b BBox) Intersect(ray core.Ray) (tEnter, tExit float64) {
	tx0, tx1 := slab(b.Min.X, b.Max.X, ray.Origin.X, ray.Direction.X)
	ty0, ty1 := slab(b.Min.Y, b.Max.Y, ray.Origin.Y, ray.Direction.Y)
	tz0, tz1 := slab(b.Min.Z, b.Max.Z, ray.Origin.Z, ray.Direction.Z)

	tEnter = core.MaxNum(core.MaxNum(tx0, ty0), tz0)
	tExit = core.MinNum(core.MinNum(tx1, ty1), tz1)
	return tEnter, tExit
}

// slab returns the ordered ray parameters at which a single axis's two planes are crossed
func slab(min, max, origin, direction float64) (float64, float64) {
	t0 := (min - origin) / direction
	t1 := (max - origin) / direction
	return core.MinNum(t0, t1), core.MaxNum(t0, t1)
}

// IsUnbound reports whether any side of the box sits at the sentinel used by FullBBox
func (b BBox) IsUnbound() bool {
	maxComponent := core.MaxNum(core.MaxNum(b.Max.X, b.Max.Y), b.Max.Z)
	minComponent := core.MinNum(core.MinNum(b.Min.X, b.Min.Y), b.Min.Z)
	return maxComponent == math.MaxFloat64 || minComponent == -math.MaxFloat64
}

// Contains reports whether other lies entirely inside the box
func (b BBox) Contains(other BBox) bool {
	return b.Union(other) == b
}

// ContainsPoint reports whether p lies inside the box or on its surface
func (b BBox) ContainsPoint(p core.Point) bool {
	return b.Min.Min(p) == b.Min && b.Max.Max(p) == b.Max
}

// IsEmpty returns true if min exceeds max on any axis
func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Center returns the center point of the box
func (b BBox) Center() core.Point {
	return b.Min.Add(b.Max.Subtract(b.Min).Multiply(0.5))
}

// Size returns the extent of the box along each axis
func (b BBox) Size() core.Vector {
	return b.Max.Subtract(b.Min)
}

// SurfaceArea returns the surface area of the box
func (b BBox) SurfaceArea() float64 {
	size := b.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (b BBox) LongestAxis() int {
	size := b.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}
