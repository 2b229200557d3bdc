// Package core provides fundamental types and utilities for the 2048 platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an area of the screen in character cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenterX returns the column where text of the given length starts
// when centered in the rectangle.
func (r Rect) CenterX(textLen int) int {
	return r.X + (r.W-textLen)/2
}

// GridCell returns the interior of cell (col, row) of a ruled grid drawn
// from r's corner. Every cell is cellW x cellH including its top and left
// rules, so the interior is one smaller on each axis.
func (r Rect) GridCell(col, row, cellW, cellH int) Rect {
	return Rect{
		X: r.X + col*cellW + 1,
		Y: r.Y + row*cellH + 1,
		W: cellW - 1,
		H: cellH - 1,
	}
}
