package seating

import (
	"sort"

	"github.com/lixenwraith/seat-planner/model"
)

// Roster is the ordered list of unplaced students
// It stays sorted by family name then given name after every mutation
type Roster struct {
	students []*model.Student
}

// NewRoster creates a sorted roster from the given students
func NewRoster(students []*model.Student) *Roster {
	r := &Roster{students: make([]*model.Student, 0, len(students))}
	for _, s := range students {
		r.Insert(s)
	}
	return r
}

// Insert adds a student at its sorted position, after any equal keys
func (r *Roster) Insert(s *model.Student) {
	i := sort.Search(len(r.students), func(i int) bool {
		return s.Less(r.students[i])
	})
	r.students = append(r.students, nil)
	copy(r.students[i+1:], r.students[i:])
	r.students[i] = s
}

// Remove takes the student at index out of the roster
func (r *Roster) Remove(index int) (*model.Student, bool) {
	if index < 0 || index >= len(r.students) {
		return nil, false
	}
	s := r.students[index]
	r.students = append(r.students[:index], r.students[index+1:]...)
	return s, true
}

// Len returns the number of unplaced students
func (r *Roster) Len() int {
	return len(r.students)
}

// At returns the student at index, nil when out of range
func (r *Roster) At(index int) *model.Student {
	if index < 0 || index >= len(r.students) {
		return nil
	}
	return r.students[index]
}

// IndexOf returns the position of a student, -1 if absent
func (r *Roster) IndexOf(s *model.Student) int {
	for i, other := range r.students {
		if other == s {
			return i
		}
	}
	return -1
}

// Contains reports whether the student is in the roster
func (r *Roster) Contains(s *model.Student) bool {
	return r.IndexOf(s) >= 0
}

// Snapshot returns a copy safe to read while the roster changes
func (r *Roster) Snapshot() []*model.Student {
	out := make([]*model.Student, len(r.students))
	copy(out, r.students)
	return out
}
