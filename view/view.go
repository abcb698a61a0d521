// Package view is the terminal front end of the seating planner.
//
// It renders the room and the roster with tcell and turns mouse and key events
// into seating controller calls. Everything runs on one goroutine: an event is
// handled, then the screen is redrawn.
package view

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/seat-planner/audio"
	"github.com/lixenwraith/seat-planner/constants"
	"github.com/lixenwraith/seat-planner/core"
	"github.com/lixenwraith/seat-planner/model"
	"github.com/lixenwraith/seat-planner/seating"
)

// CuePlayer plays feedback sounds
type CuePlayer interface {
	Play(audio.Cue)
}

type silentPlayer struct{}

func (silentPlayer) Play(audio.Cue) {}

// menuState tracks the seat context menu
type menuState struct {
	open  bool
	x, y  int
	table *model.Table
	index int
}

// View owns the presentation state: scroll offsets, pointer, hover and menu
type View struct {
	screen tcell.Screen
	ctrl   *seating.Controller
	cues   CuePlayer

	layout       Layout
	labels       map[*model.Student]string
	familyLabels bool
	rosterScroll int
	tableScroll  Scroll

	pointerX, pointerY int
	hover              SeatZone
	hovering           bool
	buttons            tcell.ButtonMask
	menu               menuState
}

// New creates a view; cues may be nil
func New(screen tcell.Screen, ctrl *seating.Controller, cues CuePlayer) *View {
	if cues == nil {
		cues = silentPlayer{}
	}
	v := &View{
		screen: screen,
		ctrl:   ctrl,
		cues:   cues,
		labels: ctrl.GivenNameLabels(),
	}
	v.relayout()
	return v
}

// Run polls events and redraws until the user quits or ctx ends
func (v *View) Run(ctx context.Context) error {
	v.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	defer v.screen.DisableMouse()

	events := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	defer close(stop)

	core.Go(func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	})

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		}
	}
}

// HandleEvent dispatches one event, returns false when the session should end
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		v.screen.Sync()
		v.relayout()
	}
	return true
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		if v.menu.open {
			v.menu = menuState{}
			return true
		}
		return false
	case tcell.KeyUp:
		v.scrollTables(-1)
	case tcell.KeyDown:
		v.scrollTables(1)
	case tcell.KeyLeft:
		v.scrollColumns(-1)
	case tcell.KeyRight:
		v.scrollColumns(1)
	case tcell.KeyPgUp:
		v.scrollRoster(-v.layout.RosterVisible())
	case tcell.KeyPgDn:
		v.scrollRoster(v.layout.RosterVisible())
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'n':
			v.toggleLabels()
		}
	}
	return true
}

// toggleLabels switches seat labels between given-name and family-name forms
func (v *View) toggleLabels() {
	v.familyLabels = !v.familyLabels
	if v.familyLabels {
		v.labels = v.ctrl.FamilyNameLabels()
	} else {
		v.labels = v.ctrl.GivenNameLabels()
	}
}

func (v *View) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()

	held := btn & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	pressed := held &^ v.buttons
	released := v.buttons &^ held
	v.buttons = held

	v.pointerX, v.pointerY = x, y
	v.hover, v.hovering = v.layout.SeatAt(x, y)

	// Shift turns the vertical wheel into a horizontal table scroll
	sideways := ev.Modifiers()&tcell.ModShift != 0
	switch {
	case btn&tcell.WheelUp != 0 && sideways, btn&tcell.WheelLeft != 0:
		v.scrollColumns(-1)
	case btn&tcell.WheelDown != 0 && sideways, btn&tcell.WheelRight != 0:
		v.scrollColumns(1)
	case btn&tcell.WheelUp != 0:
		v.scroll(x, y, -1)
	case btn&tcell.WheelDown != 0:
		v.scroll(x, y, 1)
	}

	if pressed&tcell.Button1 != 0 {
		v.leftPress(x, y)
	}
	if pressed&tcell.Button2 != 0 {
		v.rightPress(x, y)
	}
	if released&tcell.Button1 != 0 {
		v.leftRelease(x, y)
	}
}

func (v *View) leftPress(x, y int) {
	if v.menu.open {
		v.menuClick(x, y)
		return
	}
	i, ok := v.RosterIndexAt(x, y)
	if !ok {
		return
	}
	if v.ctrl.PickUpFromRoster(i) {
		v.cues.Play(audio.CuePickUp)
	}
}

func (v *View) leftRelease(x, y int) {
	if v.ctrl.Held() == nil {
		return
	}

	var result seating.DropResult
	if z, ok := v.layout.SeatAt(x, y); ok {
		result = v.ctrl.DropOnSeat(z.Table, z.Index)
	} else {
		result = v.ctrl.DropOnNothing()
	}

	switch result {
	case seating.DropSeated:
		v.cues.Play(audio.CueSeated)
	case seating.DropSwapped:
		v.cues.Play(audio.CueEvicted)
	case seating.DropRefused:
		v.cues.Play(audio.CueRefused)
	}
	v.clampRosterScroll()
}

func (v *View) rightPress(x, y int) {
	z, ok := v.layout.SeatAt(x, y)
	if !ok {
		v.menu = menuState{}
		return
	}

	mx, my := x, y
	menuH := len(constants.MenuItems) * constants.MenuItemHeight
	if mx+constants.MenuWidth > v.layout.Width {
		mx = v.layout.Width - constants.MenuWidth
	}
	if my+menuH > v.layout.Height {
		my = v.layout.Height - menuH
	}
	v.menu = menuState{open: true, x: mx, y: my, table: z.Table, index: z.Index}
}

// menuClick runs the item under the pointer, a click outside just closes the menu
func (v *View) menuClick(x, y int) {
	m := v.menu
	v.menu = menuState{}

	menuH := len(constants.MenuItems) * constants.MenuItemHeight
	if x < m.x || x >= m.x+constants.MenuWidth || y < m.y || y >= m.y+menuH {
		return
	}

	switch (y - m.y) / constants.MenuItemHeight {
	case 0:
		v.ctrl.DisableSeat(m.table, m.index)
	case 1:
		v.ctrl.EnableSeat(m.table, m.index)
	case 2:
		v.ctrl.ClearSeat(m.table, m.index)
	}
	v.clampRosterScroll()
}

// scroll moves the roster when the pointer is over it, otherwise the tables
func (v *View) scroll(x, y, dir int) {
	if x >= v.layout.RoomWidth() {
		v.scrollRoster(dir)
		return
	}
	v.scrollTables(dir)
}

func (v *View) scrollRoster(delta int) {
	v.rosterScroll += delta
	v.clampRosterScroll()
}

func (v *View) clampRosterScroll() {
	maxOffset := v.ctrl.RosterLen() - v.layout.RosterVisible()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.rosterScroll > maxOffset {
		v.rosterScroll = maxOffset
	}
	if v.rosterScroll < 0 {
		v.rosterScroll = 0
	}
}

func (v *View) scrollTables(dir int) {
	v.tableScroll.Y += dir * constants.TableScrollStep
	v.relayout()
}

func (v *View) scrollColumns(dir int) {
	v.tableScroll.X += dir * constants.ColumnScrollStep
	v.relayout()
}

// relayout recomputes seat zones after a resize or table scroll
func (v *View) relayout() {
	w, h := v.screen.Size()
	bounds := NewLayout(v.ctrl.Room(), w, h, Scroll{})
	v.tableScroll.X = clamp(v.tableScroll.X, 0, bounds.MaxTableScrollX())
	v.tableScroll.Y = clamp(v.tableScroll.Y, 0, bounds.MaxTableScroll())
	v.layout = NewLayout(v.ctrl.Room(), w, h, v.tableScroll)
	v.clampRosterScroll()
	v.hover, v.hovering = v.layout.SeatAt(v.pointerX, v.pointerY)
}

// RosterIndexAt returns the roster index under a screen point, scroll offset included
func (v *View) RosterIndexAt(x, y int) (int, bool) {
	row, ok := v.layout.RosterRowAt(x, y)
	if !ok {
		return 0, false
	}
	i := row + v.rosterScroll
	if i >= v.ctrl.RosterLen() {
		return 0, false
	}
	return i, true
}

// RosterScroll returns the first visible roster index
func (v *View) RosterScroll() int { return v.rosterScroll }

// TableScroll returns the vertical table offset in screen rows
func (v *View) TableScroll() int { return v.tableScroll.Y }

// TableScrollX returns the horizontal table offset in screen columns
func (v *View) TableScrollX() int { return v.tableScroll.X }

func clamp(n, lo, hi int) int {
	if n > hi {
		n = hi
	}
	if n < lo {
		n = lo
	}
	return n
}

// MenuOpen reports whether the seat context menu is shown
func (v *View) MenuOpen() bool { return v.menu.open }

// Layout returns the current layout
func (v *View) Layout() Layout { return v.layout }
