package geometry

// Minimal 2D helpers shared by the character controller and the AI behaviors.
// Intentionally small to avoid introducing heavy dependencies.

import "math"

// Vec2 represents a 2D point or direction.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Length computes the Euclidean norm.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalized returns the unit vector, or the zero vector when the input has
// no length.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance computes Euclidean distance between two points.
func Distance(a, b Vec2) float64 { return math.Hypot(b.X-a.X, b.Y-a.Y) }

// DistanceSq computes squared distance, for range checks that do not need
// the root.
func DistanceSq(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}
