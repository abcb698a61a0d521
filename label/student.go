package label

import "github.com/lixenwraith/seat-planner/model"

// Given labels students by given name, adding a family-name prefix for duplicates
// A student with no given name is labelled by full name
var Given = Strategy[*model.Student]{
	Primary:   givenOrName,
	Secondary: (*model.Student).FamilyName,
	Format:    Abbreviated,
}

// Family labels students by family name, adding a given-name prefix for duplicates
// A student with no family name is labelled by full name
var Family = Strategy[*model.Student]{
	Primary:   familyOrName,
	Secondary: (*model.Student).GivenName,
	Format:    Abbreviated,
}

func givenOrName(s *model.Student) string {
	if g := s.GivenName(); g != "" {
		return g
	}
	return s.Name()
}

func familyOrName(s *model.Student) string {
	if f := s.FamilyName(); f != "" {
		return f
	}
	return s.Name()
}
