// Package vec provides the 2D vector type shared by the entity store,
// the physics helpers and the renderers.
package vec

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector in world pixels. Y grows downward.
type Vec2 struct {
	X, Y float32
}

// New returns the vector (x, y).
func New(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float32) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Div divides both components by f. Division by zero yields the zero vector.
func (v Vec2) Div(f float32) Vec2 {
	if f == 0 {
		return Vec2{}
	}
	return Vec2{v.X / f, v.Y / f}
}

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{abs32(v.X), abs32(v.Y)}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float32 {
	return v.Sub(o).Len()
}

func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) String() string {
	return fmt.Sprintf("{%.2f, %.2f}", v.X, v.Y)
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
