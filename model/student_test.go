package model

import "testing"

// TestNewStudentNameSplit verifies the uppercase-run heuristic for family and given names
func TestNewStudentNameSplit(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantFamily string
		wantGiven  string
	}{
		{"Simple", "DUPONT Leo", "DUPONT", "Leo"},
		{"Compound family", "DE LA FONTAINE Jean Marie", "DE LA FONTAINE", "Jean Marie"},
		{"All uppercase", "MARTIN CLARA", "MARTIN CLARA", ""},
		{"No uppercase", "Leo Dupont", "", "Leo Dupont"},
		{"Accents", "ÉLOI Zoé", "ÉLOI", "Zoé"},
		{"Apostrophe", "O'NEIL Sean", "O'NEIL", "Sean"},
		{"Digits are not cased", "123 Leo", "", "123 Leo"},
		{"Surrounding spaces", "  BERNARD   Anne  ", "BERNARD", "Anne"},
		{"Uppercase after given", "Leo DUPONT", "", "Leo DUPONT"},
		{"Empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStudent(tt.input, "F")
			if s.FamilyName() != tt.wantFamily {
				t.Errorf("Expected family %q, got %q", tt.wantFamily, s.FamilyName())
			}
			if s.GivenName() != tt.wantGiven {
				t.Errorf("Expected given %q, got %q", tt.wantGiven, s.GivenName())
			}
		})
	}
}

// TestStudentTrimsFields verifies name and category are trimmed
func TestStudentTrimsFields(t *testing.T) {
	s := NewStudent("  DUPONT Leo ", " M ")
	if s.Name() != "DUPONT Leo" {
		t.Errorf("Expected trimmed name, got %q", s.Name())
	}
	if s.Category() != "M" {
		t.Errorf("Expected trimmed category, got %q", s.Category())
	}
	if s.String() != "DUPONT Leo (M)" {
		t.Errorf("Unexpected String(): %q", s.String())
	}
}

// TestStudentOrdering verifies ordering by family name then given name
func TestStudentOrdering(t *testing.T) {
	a := NewStudent("DUPONT Anne", "F")
	b := NewStudent("DUPONT Leo", "M")
	c := NewStudent("MARTIN Alice", "F")

	if !a.Less(b) {
		t.Error("Expected DUPONT Anne < DUPONT Leo")
	}
	if !b.Less(c) {
		t.Error("Expected DUPONT Leo < MARTIN Alice")
	}
	if c.Less(a) {
		t.Error("Expected MARTIN Alice not < DUPONT Anne")
	}
	if a.Compare(a) != 0 {
		t.Error("Expected a student to compare equal to itself")
	}
	if b.Compare(a) != 1 || a.Compare(b) != -1 {
		t.Error("Compare disagrees with Less")
	}
}

// TestStudentIdentity verifies equality by full name
func TestStudentIdentity(t *testing.T) {
	a := NewStudent("DUPONT Leo", "M")
	b := NewStudent("DUPONT Leo", "F")
	c := NewStudent("DUPONT Lea", "F")

	if !a.Equal(b) {
		t.Error("Expected students with the same name to be equal")
	}
	if a.Equal(c) {
		t.Error("Expected students with different names to differ")
	}
	if a.Key() != b.Key() {
		t.Error("Expected identical keys")
	}
}

// TestStudentFixFlag verifies Fix and Unfix
func TestStudentFixFlag(t *testing.T) {
	s := NewStudent("DUPONT Leo", "M")
	if s.IsFixed() {
		t.Fatal("New student should not be fixed")
	}
	s.Fix()
	if !s.IsFixed() {
		t.Error("Expected fixed after Fix")
	}
	s.Unfix()
	if s.IsFixed() {
		t.Error("Expected free after Unfix")
	}
}
