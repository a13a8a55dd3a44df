package camera

import "github.com/df07/go-raykernel/pkg/core"

// Camera generates primary rays through the image plane
type Camera interface {
	// PrimaryRay returns the ray through normalized image-plane coordinates (x, y),
	// typically in [-1, 1] with (0, 0) at the center of the frame
	PrimaryRay(x, y float64) core.Ray
}

// GenericCamera holds the frame shared by every camera model. XSpan and YSpan map
// a unit step in image-plane x and y to world space.
type GenericCamera struct {
	Origin    core.Point
	Direction core.Vector
	Up        core.Vector
	XSpan     core.Vector
	YSpan     core.Vector
}

// planeOffset returns the world-space displacement for image-plane coordinates (x, y)
func (c GenericCamera) planeOffset(x, y float64) core.Vector {
	return core.ScaleVector(x, c.XSpan).Add(core.ScaleVector(y, c.YSpan))
}
