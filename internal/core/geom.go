// Package core provides the platform primitives shared by games and hosts:
// the screen buffer, input frames and runtime configuration. It has no
// terminal dependencies so game logic stays pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in cell coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(val, hi))
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

// Viewport maps a continuous design space onto screen cells, letterboxed
// so that circles stay round on terminal cells twice as tall as wide.
type Viewport struct {
	Scale   float64 // Cells per design unit, horizontally
	OffsetX float64
	OffsetY float64
}

// FitViewport returns the largest viewport that shows a worldW x worldH
// design area on a cols x rows screen, centred.
func FitViewport(worldW, worldH float64, cols, rows int) Viewport {
	if worldW <= 0 || worldH <= 0 || cols <= 0 || rows <= 0 {
		return Viewport{Scale: 1}
	}
	scale := math.Min(float64(cols)/worldW, float64(rows)*CellAspect/worldH)
	return Viewport{
		Scale:   scale,
		OffsetX: (float64(cols) - worldW*scale) / 2,
		OffsetY: (float64(rows) - worldH*scale/CellAspect) / 2,
	}
}

// ToCell converts a design-space point to the cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	cx := v.OffsetX + x*v.Scale
	cy := v.OffsetY + y*v.Scale/CellAspect
	return int(math.Floor(cx)), int(math.Floor(cy))
}

// ToWorld converts a cell's centre back to design space.
func (v Viewport) ToWorld(cx, cy int) (float64, float64) {
	x := (float64(cx) + 0.5 - v.OffsetX) / v.Scale
	y := (float64(cy) + 0.5 - v.OffsetY) * CellAspect / v.Scale
	return x, y
}
