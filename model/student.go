package model

import (
	"fmt"
	"strings"
	"unicode"
)

// SeatRef locates a seat: a table and the seat index on it
type SeatRef struct {
	Table *Table
	Index int
}

// Student is a roster entry that can occupy one seat
// Identity is the full name string
type Student struct {
	name     string
	category string
	family   string
	given    string
	fixed    bool

	seat    SeatRef
	hasSeat bool
}

// NewStudent creates a student and splits the name into family and given parts
// The leading run of all-uppercase tokens is the family name, the rest is the given name
func NewStudent(name, category string) *Student {
	s := &Student{
		name:     strings.TrimSpace(name),
		category: strings.TrimSpace(category),
	}

	tokens := strings.Fields(s.name)
	i := 0
	for i < len(tokens) && isUpperToken(tokens[i]) {
		i++
	}
	s.family = strings.Join(tokens[:i], " ")
	s.given = strings.Join(tokens[i:], " ")
	return s
}

// isUpperToken reports whether a token has at least one cased letter and none lowercase or titlecase
func isUpperToken(tok string) bool {
	cased := false
	for _, r := range tok {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

func (s *Student) Name() string       { return s.name }
func (s *Student) FamilyName() string { return s.family }
func (s *Student) GivenName() string  { return s.given }
func (s *Student) Category() string   { return s.category }
func (s *Student) IsFixed() bool      { return s.fixed }

// Fix exempts the student from automatic placement
func (s *Student) Fix() { s.fixed = true }

// Unfix makes the student available to automatic placement again
func (s *Student) Unfix() { s.fixed = false }

// Seat returns the seat the student occupies, if any
func (s *Student) Seat() (SeatRef, bool) {
	return s.seat, s.hasSeat
}

func (s *Student) setSeat(t *Table, index int) {
	s.seat = SeatRef{Table: t, Index: index}
	s.hasSeat = true
}

func (s *Student) clearSeat() {
	s.seat = SeatRef{}
	s.hasSeat = false
}

// Key returns the identity key of the student
func (s *Student) Key() string { return s.name }

// Equal compares students by full name
func (s *Student) Equal(other *Student) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.name == other.name
}

// Less orders students by family name, then given name
func (s *Student) Less(other *Student) bool {
	if s.family != other.family {
		return s.family < other.family
	}
	return s.given < other.given
}

// Compare returns -1, 0 or +1 following Less
func (s *Student) Compare(other *Student) int {
	if c := strings.Compare(s.family, other.family); c != 0 {
		return c
	}
	return strings.Compare(s.given, other.given)
}

func (s *Student) String() string {
	return fmt.Sprintf("%s (%s)", s.name, s.category)
}
