package label

import (
	"testing"

	"github.com/lixenwraith/seat-planner/model"
)

type person struct {
	first, last string
}

var byFirst = Strategy[person]{
	Primary:   func(p person) string { return p.first },
	Secondary: func(p person) string { return p.last },
	Format:    Abbreviated,
}

// TestDisambiguateTwoLeos verifies the second candidate extends its prefix on collision
func TestDisambiguateTwoLeos(t *testing.T) {
	dupont := person{"Leo", "Dupont"}
	delacroix := person{"Leo", "Delacroix"}

	got := byFirst.Disambiguate([]person{dupont, delacroix})

	if got[dupont] != "Leo D." {
		t.Errorf("Expected %q, got %q", "Leo D.", got[dupont])
	}
	if got[delacroix] != "Leo De." {
		t.Errorf("Expected %q, got %q", "Leo De.", got[delacroix])
	}
}

// TestDisambiguateGroupOfThree verifies independent prefix extension per member
func TestDisambiguateGroupOfThree(t *testing.T) {
	items := []person{
		{"Sam", "Ann"},
		{"Sam", "Ana"},
		{"Sam", "Anabelle"},
	}
	got := byFirst.Labels(items)

	want := []string{"Sam A.", "Sam An.", "Sam Ana."}
	seen := make(map[string]bool)
	for i, l := range got {
		if l != want[i] {
			t.Errorf("Item %d: expected %q, got %q", i, want[i], l)
		}
		if seen[l] {
			t.Errorf("Duplicate label %q", l)
		}
		seen[l] = true
	}
}

// TestDisambiguateSingletons verifies unique primary keys stay bare
func TestDisambiguateSingletons(t *testing.T) {
	items := []person{{"Leo", "Dupont"}, {"Ana", "Martin"}}
	got := byFirst.Labels(items)
	if got[0] != "Leo" || got[1] != "Ana" {
		t.Errorf("Expected bare labels, got %v", got)
	}
}

// TestDisambiguateExhausted verifies the fallback when the secondary key runs out
func TestDisambiguateExhausted(t *testing.T) {
	tests := []struct {
		name  string
		items []person
		want  []string
	}{
		{
			name:  "Short key uses full key",
			items: []person{{"Leo", "Da"}, {"Leo", "D"}},
			want:  []string{"Leo D.", "Leo D. 2"},
		},
		{
			name:  "Identical keys grow to full key",
			items: []person{{"Leo", "Roy"}, {"Leo", "Roy"}, {"Leo", "Roy"}},
			want:  []string{"Leo R.", "Leo Ro.", "Leo Roy."},
		},
		{
			name:  "Identical keys beyond length",
			items: []person{{"Leo", "Al"}, {"Leo", "Al"}, {"Leo", "Al"}},
			want:  []string{"Leo A.", "Leo Al.", "Leo Al. 2"},
		},
		{
			name:  "Empty secondary keys",
			items: []person{{"Leo", ""}, {"Leo", ""}},
			want:  []string{"Leo .", "Leo . 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Values are comparable structs; duplicates collapse in the map,
			// so label each group with pointers instead
			ptrs := make([]*person, len(tt.items))
			for i := range tt.items {
				ptrs[i] = &tt.items[i]
			}
			s := Strategy[*person]{
				Primary:   func(p *person) string { return p.first },
				Secondary: func(p *person) string { return p.last },
				Format:    Abbreviated,
			}
			got := s.Labels(ptrs)
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Item %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

// TestDisambiguateRunes verifies prefixes are cut on rune boundaries
func TestDisambiguateRunes(t *testing.T) {
	items := []person{{"Léo", "Dupont"}, {"Léo", "Dèlacroix"}}
	got := byFirst.Labels(items)
	if got[1] != "Léo Dè." {
		t.Errorf("Expected %q, got %q", "Léo Dè.", got[1])
	}
}

// TestDisambiguateDeterministic verifies repeated runs give identical output
func TestDisambiguateDeterministic(t *testing.T) {
	items := []person{{"Leo", "Dupont"}, {"Ana", "B"}, {"Leo", "Delacroix"}, {"Leo", "Dumas"}}
	first := byFirst.Labels(items)
	for run := 0; run < 20; run++ {
		again := byFirst.Labels(items)
		for i := range first {
			if first[i] != again[i] {
				t.Fatalf("Run %d differs at %d: %q vs %q", run, i, first[i], again[i])
			}
		}
	}
	if first[3] != "Leo Du." {
		t.Errorf("Expected %q, got %q", "Leo Du.", first[3])
	}
}

// TestStudentStrategies verifies the given and family presets
func TestStudentStrategies(t *testing.T) {
	dupont := model.NewStudent("DUPONT Leo", "M")
	delacroix := model.NewStudent("DELACROIX Leo", "M")
	martin := model.NewStudent("MARTIN Ana", "F")
	martinB := model.NewStudent("MARTIN Bea", "F")

	students := []*model.Student{dupont, delacroix, martin, martinB}

	given := Given.Disambiguate(students)
	if given[dupont] != "Leo D." || given[delacroix] != "Leo DE." {
		t.Errorf("Unexpected given labels: %q, %q", given[dupont], given[delacroix])
	}
	if given[martin] != "Ana" {
		t.Errorf("Expected bare %q, got %q", "Ana", given[martin])
	}

	family := Family.Disambiguate(students)
	if family[martin] != "MARTIN A." || family[martinB] != "MARTIN B." {
		t.Errorf("Unexpected family labels: %q, %q", family[martin], family[martinB])
	}
	if family[dupont] != "DUPONT" {
		t.Errorf("Expected bare %q, got %q", "DUPONT", family[dupont])
	}
}

// TestStudentStrategiesMissingPart verifies students without a given or family name never get a blank label
func TestStudentStrategiesMissingPart(t *testing.T) {
	capsOnly := model.NewStudent("DUPONT", "M")
	leo := model.NewStudent("MARTIN Leo", "M")
	demo := []*model.Student{
		model.NewStudent("Élève1", "F"),
		model.NewStudent("Élève2", "M"),
		model.NewStudent("Élève3", "F"),
	}

	given := Given.Disambiguate([]*model.Student{capsOnly, leo})
	if given[capsOnly] != "DUPONT" {
		t.Errorf("Expected full name for caps-only student, got %q", given[capsOnly])
	}
	if given[leo] != "Leo" {
		t.Errorf("Expected %q, got %q", "Leo", given[leo])
	}

	got := Family.Labels(demo)
	want := []string{"Élève1", "Élève2", "Élève3"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Item %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	// Two caps-only students with the same name still get distinct labels
	twin := model.NewStudent("DUPONT", "F")
	pair := Given.Labels([]*model.Student{capsOnly, twin})
	if pair[0] == "" || pair[1] == "" || pair[0] == pair[1] {
		t.Errorf("Expected two distinct non-empty labels, got %q", pair)
	}
}
