package view

import (
	"github.com/lixenwraith/seat-planner/constants"
	"github.com/lixenwraith/seat-planner/model"
)

// SeatZone is the screen rectangle of one seat
type SeatZone struct {
	X, Y, W, H int
	Table      *model.Table
	Index      int
}

// Contains reports whether a screen point lies on the seat
func (z SeatZone) Contains(x, y int) bool {
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}

// Scroll is the offset of the table grid in screen cells
type Scroll struct {
	X, Y int
}

// Layout maps the room and the roster panel to screen cells for one screen size and scroll state
type Layout struct {
	Width, Height int
	Scroll        Scroll

	columnCenters []int
	zones         []SeatZone
	contentRows   int
	contentWidth  int
}

// NewLayout computes seat zones for the room
// Columns are as wide as their widest table; tables are centered in their column
func NewLayout(room *model.Room, width, height int, scroll Scroll) Layout {
	l := Layout{Width: width, Height: height, Scroll: scroll}

	x := constants.Margin - scroll.X
	l.contentWidth = constants.Margin
	for _, w := range room.ColumnWidths(constants.SeatWidth, constants.ColumnGap) {
		columnW := w - constants.ColumnGap
		l.columnCenters = append(l.columnCenters, x+columnW/2)
		x += w
		l.contentWidth += w
	}

	roomW := l.RoomWidth()
	bottom := l.Height - constants.StatusBarHeight
	for _, t := range room.Tables() {
		col, row := t.Position()
		if row+1 > l.contentRows {
			l.contentRows = row + 1
		}
		capacity := t.Capacity()
		xBase := l.columnCenters[col] - capacity*constants.SeatWidth/2
		y := l.rowY(row)

		for i := 0; i < capacity; i++ {
			z := SeatZone{
				X: xBase + i*constants.SeatWidth, Y: y,
				W: constants.SeatWidth, H: constants.SeatHeight,
				Table: t, Index: i,
			}
			// Only fully visible seats are drawn and hit-tested
			if z.X < 0 || z.X+z.W > roomW || z.Y < constants.TablesTop || z.Y+z.H > bottom {
				continue
			}
			l.zones = append(l.zones, z)
		}
	}
	return l
}

func (l Layout) rowY(row int) int {
	return constants.TablesTop + row*(constants.SeatHeight+constants.RowGap) - l.Scroll.Y
}

// RoomWidth is the screen width left of the roster panel
func (l Layout) RoomWidth() int {
	w := l.Width - constants.RosterWidth
	if w < 0 {
		return 0
	}
	return w
}

// Zones returns the visible seat zones
func (l Layout) Zones() []SeatZone {
	return l.zones
}

// SeatAt returns the visible seat under a screen point
func (l Layout) SeatAt(x, y int) (SeatZone, bool) {
	for _, z := range l.zones {
		if z.Contains(x, y) {
			return z, true
		}
	}
	return SeatZone{}, false
}

// ZoneOf returns the visible zone of a given seat
func (l Layout) ZoneOf(t *model.Table, index int) (SeatZone, bool) {
	for _, z := range l.zones {
		if z.Table == t && z.Index == index {
			return z, true
		}
	}
	return SeatZone{}, false
}

// InRoster reports whether a screen point lies on the roster panel
func (l Layout) InRoster(x, y int) bool {
	return x >= l.RoomWidth() && x < l.Width && y >= 0 && y < l.RosterVisible()*constants.RosterItemHeight
}

// RosterRowAt returns the visible roster row under a point, before scroll offset
func (l Layout) RosterRowAt(x, y int) (int, bool) {
	if !l.InRoster(x, y) {
		return 0, false
	}
	return y / constants.RosterItemHeight, true
}

// RosterVisible returns how many roster entries fit on screen
func (l Layout) RosterVisible() int {
	n := (l.Height - constants.StatusBarHeight) / constants.RosterItemHeight
	if n < 0 {
		return 0
	}
	return n
}

// MaxTableScroll keeps at least the last table row on screen
func (l Layout) MaxTableScroll() int {
	if l.contentRows == 0 {
		return 0
	}
	return (l.contentRows - 1) * (constants.SeatHeight + constants.RowGap)
}

// MaxTableScrollX is the horizontal offset that brings the last column fully on screen
func (l Layout) MaxTableScrollX() int {
	if over := l.contentWidth - l.RoomWidth(); over > 0 {
		return over
	}
	return 0
}

// DeskOrigin returns the top-left corner of the desk, centered over the room area
func (l Layout) DeskOrigin() (x, y int) {
	return (l.RoomWidth() - constants.DeskWidth) / 2, 1
}
