package core

import (
	"image/color"
	"math"
)

// Color is an RGB radiance or reflectance triple. Arithmetic is unbounded;
// only Clamp restricts channels to the displayable range.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// UniformColor creates a grey Color with every channel set to s
func UniformColor(s float64) Color {
	return Color{R: s, G: s, B: s}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the channel-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// MultiplyColor returns the channel-wise product, e.g. light filtered by a reflectance
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// ScaleColor returns scalar * c
func ScaleColor(scalar float64, c Color) Color {
	return Color{scalar * c.R, scalar * c.G, scalar * c.B}
}

// Divide returns the color divided by a scalar
func (c Color) Divide(scalar float64) Color {
	return Color{c.R / scalar, c.G / scalar, c.B / scalar}
}

func (c *Color) AddAssign(other Color) { *c = c.Add(other) }
func (c *Color) SubtractAssign(other Color) { *c = c.Subtract(other) }
func (c *Color) MultiplyColorAssign(other Color) { *c = c.MultiplyColor(other) }
func (c *Color) MultiplyAssign(scalar float64) { *c = c.Multiply(scalar) }
func (c *Color) DivideAssign(scalar float64) { *c = c.Divide(scalar) }

// Clamp returns the color with each channel clamped to [0, 1].
// A NaN channel becomes 0.
func (c Color) Clamp() Color {
	return Color{
		R: clampUnit(c.R),
		G: clampUnit(c.G),
		B: clampUnit(c.B),
	}
}

func clampUnit(v float64) float64 {
	return MinNum(1.0, MaxNum(0.0, v))
}

// GammaCorrect applies gamma correction to every channel
func (c Color) GammaCorrect(gamma float64) Color {
	invGamma := 1.0 / gamma
	return Color{
		R: math.Pow(c.R, invGamma),
		G: math.Pow(c.G, invGamma),
		B: math.Pow(c.B, invGamma),
	}
}

// ToRGBA converts the color to an opaque 8-bit RGBA value, clamping first
func (c Color) ToRGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: 255,
	}
}
