package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/seat-planner/constants"
	"github.com/lixenwraith/seat-planner/model"
	"github.com/lixenwraith/seat-planner/tui"
)

// Palette
var (
	colorBackground = tui.RGB(24, 24, 28)
	colorText       = tui.RGB(220, 220, 220)
	colorDim        = tui.RGB(120, 120, 130)
	colorWood       = tui.RGB(139, 94, 60)
	colorDisabled   = tui.RGB(60, 60, 64)
	colorHover      = tui.RGB(250, 210, 120)
	colorDesk       = tui.RGB(90, 60, 40)
	colorHeld       = tui.RGB(80, 140, 220)
	colorMenu       = tui.RGB(50, 50, 60)
	colorStatus     = tui.RGB(40, 40, 48)
	colorFemale     = tui.RGB(240, 170, 190)
	colorMale       = tui.RGB(150, 200, 240)
)

// hoverBlend is how far a hovered seat moves toward the highlight color
const hoverBlend = 0.45

// Draw renders the full frame and shows it
func (v *View) Draw() {
	v.screen.Clear()
	root := tui.Root(v.screen)
	root.Fill(tcell.StyleDefault.Background(colorBackground))

	v.drawDesk(root)
	v.drawSeats(root)
	v.drawRoster(root)
	v.drawStatus(root)
	v.drawMenu(root)
	v.drawHeld(root)

	v.screen.Show()
}

func (v *View) drawDesk(root tui.Region) {
	x, y := v.layout.DeskOrigin()
	desk := root.Sub(x, y, constants.DeskWidth, constants.DeskHeight)
	style := tcell.StyleDefault.Background(colorDesk).Foreground(colorText)
	desk.BoxFilled(tui.LineRounded, style)
	desk.TextCenter(constants.DeskHeight/2, constants.DeskLabel, style.Bold(true))
}

func (v *View) drawSeats(root tui.Region) {
	for _, z := range v.layout.Zones() {
		v.drawSeat(root, z)
	}
}

func (v *View) drawSeat(root tui.Region, z SeatZone) {
	bg := colorWood
	label := "·"
	fg := colorDim

	switch {
	case !z.Table.IsSeatEnabled(z.Index):
		bg = colorDisabled
		label = "×"
	case z.Table.Occupant(z.Index) != nil:
		s := z.Table.Occupant(z.Index)
		label = v.label(s)
		fg = categoryColor(s)
	}

	if v.hovering && v.hover.Table == z.Table && v.hover.Index == z.Index {
		bg = tui.Blend(bg, colorHover, hoverBlend)
	}

	seat := root.Sub(z.X, z.Y, z.W, z.H)
	seat.Fill(tcell.StyleDefault.Background(bg))
	// One cell of padding on each side keeps neighbouring seats readable
	inner := seat.Sub(1, 0, z.W-2, z.H)
	inner.TextCenter(0, tui.Truncate(label, inner.W), tcell.StyleDefault.Background(bg).Foreground(fg))
}

func (v *View) drawRoster(root tui.Region) {
	rw := v.layout.RoomWidth()
	panel := root.Sub(rw, 0, v.layout.Width-rw, v.layout.RosterVisible()*constants.RosterItemHeight)
	panel.VLine(0, tui.LineSingle, tcell.StyleDefault.Background(colorBackground).Foreground(colorDim))

	roster := v.ctrl.Roster()
	for row := 0; row < v.layout.RosterVisible(); row++ {
		i := row + v.rosterScroll
		if i >= len(roster) {
			break
		}
		s := roster[i]
		style := tcell.StyleDefault.Background(colorBackground).Foreground(categoryColor(s))
		panel.Text(2, row*constants.RosterItemHeight, tui.Truncate(s.Name(), panel.W-3), style)
	}
}

func (v *View) drawStatus(root tui.Region) {
	bar := root.Sub(0, v.layout.Height-constants.StatusBarHeight, v.layout.Width, constants.StatusBarHeight)
	style := tcell.StyleDefault.Background(colorStatus).Foreground(colorText)
	bar.Fill(style)

	st := v.ctrl.Stats()
	left := fmt.Sprintf(" Placed %d/%d  Unplaced %d  Free seats %d/%d",
		st.Placed, st.Placed+st.Unplaced, st.Unplaced, st.FreeSeats, st.Seats)
	n := bar.Text(0, 0, left, style)

	hint := "drag to seat · right-click seat · ←→ columns · n names · q quit "
	if bar.W-n > len(hint) {
		bar.TextRight(0, hint, style.Foreground(colorDim))
	}
}

func (v *View) drawMenu(root tui.Region) {
	if !v.menu.open {
		return
	}
	menu := root.Sub(v.menu.x, v.menu.y, constants.MenuWidth, len(constants.MenuItems)*constants.MenuItemHeight)
	style := tcell.StyleDefault.Background(colorMenu).Foreground(colorText)
	menu.Fill(style)

	enabled := v.menu.table.IsSeatEnabled(v.menu.index)
	occupied := v.menu.table.Occupant(v.menu.index) != nil
	for i, item := range constants.MenuItems {
		itemStyle := style
		// Items that would be refused are dimmed
		if (i == 0 && !enabled) || (i == 1 && enabled) || (i == 2 && !occupied) {
			itemStyle = style.Foreground(colorDim)
		}
		menu.Text(1, i*constants.MenuItemHeight, item, itemStyle)
	}
}

func (v *View) drawHeld(root tui.Region) {
	held := v.ctrl.Held()
	if held == nil {
		return
	}
	style := tcell.StyleDefault.Background(colorHeld).Foreground(colorText).Bold(true)
	root.Text(v.pointerX, v.pointerY, " "+v.label(held)+" ", style)
}

// label returns the seat label of a student, never empty
func (v *View) label(s *model.Student) string {
	if l := v.labels[s]; l != "" {
		return l
	}
	return s.Name()
}

func categoryColor(s *model.Student) tcell.Color {
	switch s.Category() {
	case "F":
		return colorFemale
	case "M":
		return colorMale
	}
	return colorText
}
