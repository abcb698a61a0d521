// Package importer reads class rosters exported by school management software.
//
// Rows are semicolon separated. Column 0 holds the full name, column 3 the category.
// Shorter rows are skipped.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/lixenwraith/seat-planner/model"
)

const (
	nameColumn     = 0
	categoryColumn = 3
	minColumns     = 4
)

// LoadFile reads a roster file
func LoadFile(path string) ([]*model.Student, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	students, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %d student(s) from %s", len(students), path)
	return students, nil
}

// Load reads UTF-8 roster rows, with or without a byte-order mark
func Load(r io.Reader) ([]*model.Student, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var students []*model.Student
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read roster: %w", err)
		}
		if len(record) < minColumns {
			continue
		}

		name := strings.TrimSpace(strings.Trim(record[nameColumn], `"`))
		if name == "" {
			continue
		}
		students = append(students, model.NewStudent(name, record[categoryColumn]))
	}
	return students, nil
}

// Demo builds a synthetic roster of n students alternating F and M
func Demo(n int) []*model.Student {
	students := make([]*model.Student, n)
	for i := range students {
		category := "M"
		if i%2 == 0 {
			category = "F"
		}
		students[i] = model.NewStudent(fmt.Sprintf("Élève%d", i+1), category)
	}
	return students
}
