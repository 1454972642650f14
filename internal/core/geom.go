// Package core provides fundamental types and utilities for the breakout game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec is a 2D vector in surface units.
type Vec struct {
	X, Y float64
}

// Len returns the Euclidean length of the vector.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the direction of the vector in radians, as atan2(y, x).
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle builds a vector of the given length pointing along angle.
func FromAngle(angle, length float64) Vec {
	return Vec{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// RectF is an axis-aligned rectangle in surface units.
// Y grows downwards, like the drawing surface.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center of the rectangle.
func (r RectF) CenterX() float64 {
	return r.X + r.W/2
}

// Intersects reports whether two rectangles overlap.
// Touching edges do not count as overlap.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Circle is a circle in surface units.
type Circle struct {
	X, Y float64 // Center
	R    float64
}

// CircleRectDelta clamps the circle center to the rectangle bounds to find
// the closest point and returns the vector from that point to the center.
// A center inside the rectangle yields the zero vector.
func CircleRectDelta(c Circle, r RectF) Vec {
	closestX := ClampF(c.X, r.X, r.Right())
	closestY := ClampF(c.Y, r.Y, r.Bottom())
	return Vec{X: c.X - closestX, Y: c.Y - closestY}
}

// CircleIntersectsRect reports whether the circle touches or overlaps the
// rectangle, together with the delta used for the test.
func CircleIntersectsRect(c Circle, r RectF) (bool, Vec) {
	d := CircleRectDelta(c, r)
	return d.Len() <= c.R, d
}

// Axis names the velocity component flipped by a bounce.
type Axis int

const (
	AxisHorizontal Axis = iota // Flip the x component
	AxisVertical               // Flip the y component
)

// ReflectAxis picks the velocity component to flip after a circle hit a
// rectangle, given the closest-point delta. Deltas within 45 degrees of the
// horizontal axis flip x, everything else flips y. This is a single-axis
// approximation, not a reflection about the surface normal.
func ReflectAxis(delta Vec) Axis {
	a := math.Abs(delta.Angle())
	if a < math.Pi/4 || a > 3*math.Pi/4 {
		return AxisHorizontal
	}
	return AxisVertical
}

// MaxLaunchAngle is the largest deflection from vertical a paddle can give.
const MaxLaunchAngle = math.Pi / 3

// PaddleLaunch returns the velocity of a ball leaving a paddle.
// The impact offset from the paddle center, normalised to [-1, 1], maps
// linearly to an angle in [-60°, +60°] from straight up.
func PaddleLaunch(ballX, paddleCenterX, paddleWidth, speed float64) Vec {
	impact := 0.0
	if paddleWidth > 0 {
		impact = ClampF((ballX-paddleCenterX)/(paddleWidth/2), -1, 1)
	}
	angle := impact * MaxLaunchAngle
	v := Vec{X: speed * math.Sin(angle), Y: -speed * math.Cos(angle)}
	if v.Y > 0 {
		v.Y = -v.Y
	}
	return v
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
