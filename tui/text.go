package tui

import "github.com/mattn/go-runewidth"

// Truncate cuts s to at most width columns, ending with … when shortened
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return runewidth.Truncate(s, width, "…")
}

// PadCenter pads s with spaces on both sides to width columns
func PadCenter(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return runewidth.FillLeft(s, w+left) + spaces(width-w-left)
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
