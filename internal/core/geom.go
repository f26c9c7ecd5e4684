// Package core provides fundamental types and utilities for the asteroids game.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector in world units (pixels of the logical viewport).
// The y axis grows downward, matching screen coordinates.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether v has zero magnitude.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v.
// A zero vector has no direction and is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rotate returns v rotated by deg degrees. With y growing downward a
// positive angle turns clockwise on screen.
func (v Vec2) Rotate(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// IsNaN reports whether either component is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// String implements fmt.Stringer.
func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Forward returns the unit heading vector for a rotation in degrees.
// Rotation 0 points down the screen, 180 points up.
func Forward(deg float64) Vec2 {
	return Vec2{X: 0, Y: 1}.Rotate(deg)
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Rect represents an axis-aligned rectangle, used for the viewport and
// for terminal layout boxes.
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

// Viewport is the fixed-size play area. Its closed bounds are
// [0, Width] x [0, Height].
type Viewport struct {
	Width  float64
	Height float64
}

// Contains reports whether p lies within the closed viewport bounds.
func (vp Viewport) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= vp.Width && p.Y >= 0 && p.Y <= vp.Height
}

// Wrap moves p to the opposite edge when it has left the viewport,
// shifting by exactly one viewport width or height per axis.
func (vp Viewport) Wrap(p Vec2) Vec2 {
	switch {
	case p.X < 0:
		p.X += vp.Width
	case p.X > vp.Width:
		p.X -= vp.Width
	}
	switch {
	case p.Y < 0:
		p.Y += vp.Height
	case p.Y > vp.Height:
		p.Y -= vp.Height
	}
	return p
}

// Center returns the middle of the viewport.
func (vp Viewport) Center() Vec2 {
	return Vec2{X: vp.Width / 2, Y: vp.Height / 2}
}
