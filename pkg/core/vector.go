package core

import "math"

// Vector represents a free 3D direction or displacement
type Vector struct {
	X, Y, Z float64
}

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// UniformVector creates a Vector with the same value on every axis
func UniformVector(s float64) Vector {
	return Vector{X: s, Y: s, Z: s}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vector) Multiply(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// ScaleVector returns scalar * v. Each component is computed as scalar*c, which is
// identical to v.Multiply(scalar) since float multiplication is commutative.
func ScaleVector(scalar float64, v Vector) Vector {
	return Vector{scalar * v.X, scalar * v.Y, scalar * v.Z}
}

// Divide returns the vector divided by a scalar
func (v Vector) Divide(scalar float64) Vector {
	return Vector{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Negate returns the negative of the vector
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// In-place forms replace the whole receiver value.
func (v *Vector) AddAssign(other Vector) { *v = v.Add(other) }
func (v *Vector) SubtractAssign(other Vector) { *v = v.Subtract(other) }
func (v *Vector) MultiplyAssign(scalar float64) { *v = v.Multiply(scalar) }
func (v *Vector) DivideAssign(scalar float64) { *v = v.Divide(scalar) }

// Length returns the magnitude of the vector
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction; its components come back NaN.
func (v Vector) Normalize() Vector {
	return v.Divide(v.Length())
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}
