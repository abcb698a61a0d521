package tui

import "github.com/gdamore/tcell/v2"

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = iota
	boxH
	boxTR
	boxV
	boxBL
	boxBR
)

// Box draws a border around the region edge
func (r Region) Box(line LineType, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if int(line) >= len(boxChars) {
		line = LineSingle
	}
	chars := boxChars[line]

	r.Cell(0, 0, chars[boxTL], style)
	r.Cell(r.W-1, 0, chars[boxTR], style)
	r.Cell(0, r.H-1, chars[boxBL], style)
	r.Cell(r.W-1, r.H-1, chars[boxBR], style)

	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], style)
		r.Cell(x, r.H-1, chars[boxH], style)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], style)
		r.Cell(r.W-1, y, chars[boxV], style)
	}
}

// BoxFilled fills the region then draws the border
func (r Region) BoxFilled(line LineType, style tcell.Style) {
	r.Fill(style)
	r.Box(line, style)
}

// HLine draws a horizontal line across the region at row y
func (r Region) HLine(y int, line LineType, style tcell.Style) {
	if int(line) >= len(boxChars) {
		line = LineSingle
	}
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, boxChars[line][boxH], style)
	}
}

// VLine draws a vertical line down the region at column x
func (r Region) VLine(x int, line LineType, style tcell.Style) {
	if int(line) >= len(boxChars) {
		line = LineSingle
	}
	for y := 0; y < r.H; y++ {
		r.Cell(x, y, boxChars[line][boxV], style)
	}
}
