package model

import (
	"fmt"
	"strings"
)

// Table is a fixed-capacity row of seats at a grid position
// Column runs left to right, row runs from the desk towards the back of the room
type Table struct {
	col, row int
	seats    []*Student
	enabled  []bool
}

// NewTable creates a table with every seat enabled and empty
func NewTable(col, row, capacity int) *Table {
	if capacity < 0 {
		capacity = 0
	}
	t := &Table{
		col:     col,
		row:     row,
		seats:   make([]*Student, capacity),
		enabled: make([]bool, capacity),
	}
	for i := range t.enabled {
		t.enabled[i] = true
	}
	return t
}

// Position returns the (column, row) of the table
func (t *Table) Position() (col, row int) {
	return t.col, t.row
}

// Capacity returns the seat count, fixed at construction
func (t *Table) Capacity() int {
	return len(t.seats)
}

func (t *Table) inRange(index int) bool {
	return index >= 0 && index < len(t.seats)
}

// Occupant returns the student on a seat, nil when empty or out of range
func (t *Table) Occupant(index int) *Student {
	if !t.inRange(index) {
		return nil
	}
	return t.seats[index]
}

// Seats returns a copy of the seat contents
func (t *Table) Seats() []*Student {
	out := make([]*Student, len(t.seats))
	copy(out, t.seats)
	return out
}

// PlaceStudent puts a student on a seat, or frees the seat when s is nil
// Placing into an occupied seat fails; the caller must evict first
func (t *Table) PlaceStudent(s *Student, index int) bool {
	if !t.inRange(index) {
		return false
	}

	if s == nil {
		if prev := t.seats[index]; prev != nil {
			prev.clearSeat()
		}
		t.seats[index] = nil
		return true
	}

	if t.seats[index] != nil {
		return false
	}
	t.seats[index] = s
	s.setSeat(t, index)
	return true
}

// IsSeatEnabled reports the seat flag, false when out of range
func (t *Table) IsSeatEnabled(index int) bool {
	return t.inRange(index) && t.enabled[index]
}

// IsSeatFree reports whether the seat exists, is enabled and is empty
func (t *Table) IsSeatFree(index int) bool {
	return t.inRange(index) && t.enabled[index] && t.seats[index] == nil
}

// DisableSeat clears the enabled flag without touching the occupant
func (t *Table) DisableSeat(index int) {
	if t.inRange(index) {
		t.enabled[index] = false
	}
}

// EnableSeat sets the enabled flag
func (t *Table) EnableSeat(index int) {
	if t.inRange(index) {
		t.enabled[index] = true
	}
}

func (t *Table) String() string {
	names := make([]string, len(t.seats))
	for i, s := range t.seats {
		if s == nil {
			names[i] = "empty"
		} else {
			names[i] = s.Name()
		}
	}
	return fmt.Sprintf("Table (%d, %d) : [%s]", t.col, t.row, strings.Join(names, ", "))
}
