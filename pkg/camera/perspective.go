package camera

import (
	"math"

	"github.com/df07/go-raykernel/pkg/core"
)

// Perspective is a pinhole camera: every primary ray starts at the origin
type Perspective struct {
	GenericCamera
}

// NewPerspective creates a perspective camera at origin looking along direction.
// hFov and vFov are the full horizontal and vertical fields of view in radians. With a
// unit-length direction the frame edges (x or y = ±1) sit at half of each angle from it.
// direction and up must not be parallel.
func NewPerspective(origin core.Point, direction, up core.Vector, hFov, vFov float64) *Perspective {
	xSpan := direction.Cross(up).Normalize().Multiply(math.Tan(hFov / 2))
	ySpan := xSpan.Cross(direction).Normalize().Multiply(math.Tan(vFov / 2))

	return &Perspective{
		GenericCamera: GenericCamera{
			Origin:    origin,
			Direction: direction,
			Up:        up,
			XSpan:     xSpan,
			YSpan:     ySpan,
		},
	}
}

// PrimaryRay returns a normalized ray from the origin through the image-plane point
func (c *Perspective) PrimaryRay(x, y float64) core.Ray {
	direction := c.Direction.Add(c.planeOffset(x, y)).Normalize()
	return core.NewRay(c.Origin, direction)
}
