package camera

import "github.com/df07/go-raykernel/pkg/core"

// Orthographic is a camera whose primary rays are all parallel to its direction
type Orthographic struct {
	GenericCamera
}

// NewOrthographic creates an orthographic camera at origin looking along direction.
// The spans are not normalized: the length of direction × up scales the frame along
// with scaleX and scaleY. direction and up must not be parallel.
func NewOrthographic(origin core.Point, direction, up core.Vector, scaleX, scaleY float64) *Orthographic {
	xSpan := direction.Cross(up).Multiply(scaleX).Multiply(0.5)
	ySpan := xSpan.Cross(direction).Multiply(scaleY).Multiply(0.5)

	return &Orthographic{
		GenericCamera: GenericCamera{
			Origin:    origin,
			Direction: direction,
			Up:        up,
			XSpan:     xSpan,
			YSpan:     ySpan,
		},
	}
}

// PrimaryRay shifts the origin across the image plane and keeps the camera direction
func (c *Orthographic) PrimaryRay(x, y float64) core.Ray {
	return core.NewRay(c.Origin.Add(c.planeOffset(x, y)), c.Direction)
}
