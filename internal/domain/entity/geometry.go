// Package entity defines domain entities for the browser shell.
package entity

import "math"

// Size is a width/height pair in logical units.
type Size struct {
	Width  int
	Height int
}

// Scale returns the size multiplied by factor, rounded to the nearest unit.
// A non-positive factor leaves the size unchanged.
func (s Size) Scale(factor float64) Size {
	if factor <= 0 {
		return s
	}
	return Size{
		Width:  int(math.Round(float64(s.Width) * factor)),
		Height: int(math.Round(float64(s.Height) * factor)),
	}
}

// IsEmpty reports whether either dimension is non-positive.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Point is a screen position in logical units.
type Point struct {
	X int
	Y int
}

// Rect is a positioned size.
type Rect struct {
	Point
	Size
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// CenterIn returns the top-left location that centers a window of size s
// within r.
func (r Rect) CenterIn(s Size) Point {
	c := r.Center()
	return Point{X: c.X - s.Width/2, Y: c.Y - s.Height/2}
}

// WindowFeatures carries the geometry a page asked for in window.open().
// Width/Height are only meaningful when HasSize is set, Left/Top only when
// HasPosition is set.
type WindowFeatures struct {
	HasSize     bool
	Width       int
	Height      int
	HasPosition bool
	Left        int
	Top         int
}

// Geometry is the resolved placement of a popup window.
type Geometry struct {
	ClientSize Size
	// Location is only valid when CenterOnParent is false.
	Location       Point
	CenterOnParent bool
}
