package core

// Point represents a position in 3D space
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// UniformPoint creates a Point with the same coordinate on every axis
func UniformPoint(s float64) Point {
	return Point{X: s, Y: s, Z: s}
}

// Add translates the point by a vector
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the displacement from other to p
func (p Point) Subtract(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Multiply returns the point with every coordinate scaled
func (p Point) Multiply(scalar float64) Point {
	return Point{p.X * scalar, p.Y * scalar, p.Z * scalar}
}

// ScalePoint returns scalar * p
func ScalePoint(scalar float64, p Point) Point {
	return Point{scalar * p.X, scalar * p.Y, scalar * p.Z}
}

// Divide returns the point with every coordinate divided by a scalar
func (p Point) Divide(scalar float64) Point {
	return Point{p.X / scalar, p.Y / scalar, p.Z / scalar}
}

func (p *Point) AddAssign(v Vector) { *p = p.Add(v) }
func (p *Point) MultiplyAssign(scalar float64) { *p = p.Multiply(scalar) }
func (p *Point) DivideAssign(scalar float64) { *p = p.Divide(scalar) }

// Min returns the component-wise minimum of two points
func (p Point) Min(other Point) Point {
	return Point{
		X: MinNum(p.X, other.X),
		Y: MinNum(p.Y, other.Y),
		Z: MinNum(p.Z, other.Z),
	}
}

// Max returns the component-wise maximum of two points
func (p Point) Max(other Point) Point {
	return Point{
		X: MaxNum(p.X, other.X),
		Y: MaxNum(p.Y, other.Y),
		Z: MaxNum(p.Z, other.Z),
	}
}
