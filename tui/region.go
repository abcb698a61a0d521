// Package tui provides rectangular drawing regions over a tcell screen.
//
// All coordinates passed to Region methods are relative to the region origin.
// Drawing outside the region is clipped.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Region represents a rectangular area of a screen
type Region struct {
	Screen tcell.Screen
	X, Y   int // Absolute position on screen
	W, H   int // Region dimensions
}

// NewRegion creates a region on a screen with bounds
func NewRegion(s tcell.Screen, x, y, w, h int) Region {
	return Region{Screen: s, X: x, Y: y, W: w, H: h}
}

// Root returns a region covering the whole screen
func Root(s tcell.Screen) Region {
	w, h := s.Size()
	return NewRegion(s, 0, 0, w, h)
}

// Sub returns a nested region with coordinates relative to parent, clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{Screen: r.Screen, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Contains reports whether an absolute screen point lies inside the region
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Fill fills the entire region with spaces in the given style
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', style)
		}
	}
}

// Text draws a string starting at (x, y), returns the number of columns used
// Wide runes take two columns
func (r Region) Text(x, y int, s string, style tcell.Style) int {
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		r.Cell(col, y, ch, style)
		col += w
	}
	return col - x
}

// TextCenter draws a string horizontally centered on row y
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	s = Truncate(s, r.W)
	x := (r.W - runewidth.StringWidth(s)) / 2
	r.Text(x, y, s, style)
}

// TextRight draws a string flush right on row y
func (r Region) TextRight(y int, s string, style tcell.Style) {
	s = Truncate(s, r.W)
	r.Text(r.W-runewidth.StringWidth(s), y, s, style)
}
