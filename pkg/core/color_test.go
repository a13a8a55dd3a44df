package core

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func TestColor_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		input    Color
		expected Color
	}{
		{"Mixed out of range", NewColor(-1, 10, 0.5), NewColor(0, 1, 0.5)},
		{"Already in range", NewColor(0, 0.25, 1), NewColor(0, 0.25, 1)},
		{"All above", UniformColor(3), UniformColor(1)},
		{"All below", UniformColor(-0.1), UniformColor(0)},
		{"Infinite", NewColor(math.Inf(1), math.Inf(-1), 0), NewColor(1, 0, 0)},
		{"NaN channel", NewColor(math.NaN(), 0.5, 0.5), NewColor(0, 0.5, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.input.Clamp()
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestColor_ClampIdempotent(t *testing.T) {
	random := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		c := NewColor(random.Float64()*4-2, random.Float64()*4-2, random.Float64()*4-2)
		once := c.Clamp()
		if once.Clamp() != once {
			t.Fatalf("Clamp not idempotent for %v", c)
		}
		for _, ch := range []float64{once.R, once.G, once.B} {
			if ch < 0 || ch > 1 {
				t.Fatalf("Clamped channel %f out of range for %v", ch, c)
			}
		}
	}
}

func TestColor_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Color
		expected Color
	}{
		{"Add", NewColor(0.5, 0.25, 0.125).Add(NewColor(0.25, 0.5, 0.125)), NewColor(0.75, 0.75, 0.25)},
		{"Subtract", NewColor(1, 0.5, 0.75).Subtract(NewColor(0.25, 0.5, 0.75)), NewColor(0.75, 0, 0)},
		{"Unbounded subtract", NewColor(0.25, 0.5, 0).Subtract(NewColor(1, 0, 0)), NewColor(-0.75, 0.5, 0)},
		{"MultiplyColor", NewColor(1, 5, 6).MultiplyColor(NewColor(3, 2, 0.5)), NewColor(3, 10, 3)},
		{"Multiply", NewColor(1, 5, 6).Multiply(500), NewColor(500, 2500, 3000)},
		{"Scale from left", ScaleColor(500, NewColor(1, 5, 6)), NewColor(500, 2500, 3000)},
		{"Divide", NewColor(1, 4, 2).Divide(0.5), NewColor(2, 8, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestColor_AssignForms(t *testing.T) {
	c := NewColor(3, 7, 2)
	c.DivideAssign(10)
	if c != NewColor(0.3, 0.7, 0.2) {
		t.Errorf("DivideAssign: got %v", c)
	}

	c = NewColor(3, 2, 9)
	c.MultiplyAssign(1.25)
	if c != NewColor(3.75, 2.5, 11.25) {
		t.Errorf("MultiplyAssign: got %v", c)
	}

	c = UniformColor(0.5)
	c.AddAssign(NewColor(0.25, 0, 0))
	c.SubtractAssign(NewColor(0, 0.5, 0))
	c.MultiplyColorAssign(NewColor(2, 1, 4))
	if c != NewColor(1.5, 0, 2) {
		t.Errorf("Add/Subtract/MultiplyColor assign: got %v", c)
	}
}

func TestColor_ScalarCommutes(t *testing.T) {
	random := rand.New(rand.NewSource(13))
	for i := 0; i < 100; i++ {
		c := NewColor(random.Float64(), random.Float64(), random.Float64())
		k := random.Float64() * 8
		if ScaleColor(k, c) != c.Multiply(k) {
			t.Fatalf("k*c != c*k for k=%f c=%v", k, c)
		}
	}
}

func TestColor_GammaCorrect(t *testing.T) {
	got := NewColor(0.25, 1, 0).GammaCorrect(2.0)
	if got != NewColor(0.5, 1, 0) {
		t.Errorf("Expected {0.5 1 0}, got %v", got)
	}
}

func TestColor_ToRGBA(t *testing.T) {
	got := NewColor(2, 0.5, -1).ToRGBA()
	expected := color.RGBA{R: 255, G: 127, B: 0, A: 255}
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
