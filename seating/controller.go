package seating

import (
	"log"

	"github.com/lixenwraith/seat-planner/label"
	"github.com/lixenwraith/seat-planner/model"
)

// State is the drag state of the controller
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// DropResult describes what a drop did
type DropResult int

const (
	DropNone     DropResult = iota // nothing was held
	DropSeated                     // held student took an empty seat
	DropSwapped                    // held student took a seat, occupant went back to the roster
	DropRefused                    // seat was disabled or missing, held student went back to the roster
	DropReturned                   // released outside any seat, held student went back to the roster
)

// Stats summarizes placement progress
type Stats struct {
	Placed    int
	Unplaced  int
	FreeSeats int
	Seats     int
}

// Controller mediates every move between the roster and the room's seats
// A student is always in exactly one of: the roster, one seat, or the controller's hand
type Controller struct {
	room     *model.Room
	roster   *Roster
	students []*model.Student
	held     *model.Student
}

// NewController places every student in the roster
func NewController(room *model.Room, students []*model.Student) *Controller {
	all := make([]*model.Student, len(students))
	copy(all, students)
	return &Controller{
		room:     room,
		roster:   NewRoster(students),
		students: all,
	}
}

// Room returns the controlled room
func (c *Controller) Room() *model.Room { return c.room }

// Students returns every known student in import order
func (c *Controller) Students() []*model.Student { return c.students }

// Roster returns a snapshot of the unplaced students
func (c *Controller) Roster() []*model.Student { return c.roster.Snapshot() }

// RosterLen returns the number of unplaced students
func (c *Controller) RosterLen() int { return c.roster.Len() }

// Held returns the student being moved, nil when idle
func (c *Controller) Held() *model.Student { return c.held }

// State returns Idle or Dragging
func (c *Controller) State() State {
	if c.held != nil {
		return StateDragging
	}
	return StateIdle
}

// PickUpFromRoster removes the student at index from the roster and holds it
// No-op when already dragging or when index is out of range
func (c *Controller) PickUpFromRoster(index int) bool {
	if c.held != nil {
		return false
	}
	s, ok := c.roster.Remove(index)
	if !ok {
		return false
	}
	c.held = s
	log.Printf("Picked up %s from roster position %d", s.Name(), index)
	return true
}

// DropOnSeat places the held student on a seat, sending any occupant back to the roster
// A disabled or missing seat refuses the drop and the held student returns to the roster
func (c *Controller) DropOnSeat(t *model.Table, index int) DropResult {
	s := c.held
	if s == nil {
		return DropNone
	}
	c.held = nil

	if t == nil || !t.IsSeatEnabled(index) {
		c.roster.Insert(s)
		log.Printf("Drop of %s refused on disabled seat %d", s.Name(), index)
		return DropRefused
	}

	result := DropSeated
	if prev := t.Occupant(index); prev != nil {
		t.PlaceStudent(nil, index)
		c.roster.Insert(prev)
		result = DropSwapped
		log.Printf("Evicted %s to roster", prev.Name())
	}
	t.PlaceStudent(s, index)

	col, row := t.Position()
	log.Printf("Seated %s at table (%d, %d) seat %d", s.Name(), col, row, index)
	return result
}

// DropOnNothing returns the held student to the roster
func (c *Controller) DropOnNothing() DropResult {
	s := c.held
	if s == nil {
		return DropNone
	}
	c.held = nil
	c.roster.Insert(s)
	log.Printf("Returned %s to roster", s.Name())
	return DropReturned
}

// evict moves a seat's occupant to the roster
func (c *Controller) evict(t *model.Table, index int) bool {
	prev := t.Occupant(index)
	if prev == nil {
		return false
	}
	t.PlaceStudent(nil, index)
	c.roster.Insert(prev)
	log.Printf("Evicted %s to roster", prev.Name())
	return true
}

func (c *Controller) validSeat(t *model.Table, index int) bool {
	return t != nil && index >= 0 && index < t.Capacity()
}

// DisableSeat evicts any occupant then disables the seat
// Administrative actions are ignored while dragging
func (c *Controller) DisableSeat(t *model.Table, index int) bool {
	if c.held != nil || !c.validSeat(t, index) {
		return false
	}
	c.evict(t, index)
	t.DisableSeat(index)
	return true
}

// EnableSeat re-enables a seat; no occupant is restored
func (c *Controller) EnableSeat(t *model.Table, index int) bool {
	if c.held != nil || !c.validSeat(t, index) {
		return false
	}
	t.EnableSeat(index)
	return true
}

// ToggleSeatDisabled flips the enabled flag, evicting the occupant when disabling
func (c *Controller) ToggleSeatDisabled(t *model.Table, index int) bool {
	if !c.validSeat(t, index) {
		return false
	}
	if t.IsSeatEnabled(index) {
		return c.DisableSeat(t, index)
	}
	return c.EnableSeat(t, index)
}

// ClearSeat sends the occupant back to the roster, keeping the enabled flag
func (c *Controller) ClearSeat(t *model.Table, index int) bool {
	if c.held != nil || !c.validSeat(t, index) {
		return false
	}
	return c.evict(t, index)
}

// Stats counts placed and unplaced students and free seats
func (c *Controller) Stats() Stats {
	unplaced := c.roster.Len()
	if c.held != nil {
		unplaced++
	}
	return Stats{
		Placed:    len(c.students) - unplaced,
		Unplaced:  unplaced,
		FreeSeats: c.room.FreeSeatCount(),
		Seats:     c.room.SeatCount(),
	}
}

// GivenNameLabels returns unique given-name labels for every student
func (c *Controller) GivenNameLabels() map[*model.Student]string {
	return label.Given.Disambiguate(c.students)
}

// FamilyNameLabels returns unique family-name labels for every student
func (c *Controller) FamilyNameLabels() map[*model.Student]string {
	return label.Family.Disambiguate(c.students)
}
