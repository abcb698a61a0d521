package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/seat-planner/config"
)

// TestRunRejectsBadConfig verifies configuration errors exit before the terminal is touched
func TestRunRejectsBadConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-demo", "5", "-rows", "0"}, &stdout, &stderr); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Rows") {
		t.Errorf("Expected error naming Rows, got %q", stderr.String())
	}
}

// TestRunHelp verifies -h exits cleanly
func TestRunHelp(t *testing.T) {
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, &stdout, &stderr); code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stderr.String(), "-roster") {
		t.Errorf("Expected usage on stderr, got %q", stderr.String())
	}
}

// TestPrepare verifies roster and room construction from configuration
func TestPrepare(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "class.csv")
	content := "DUPONT Leo;3A;2010;M\nMARTIN Zoe;3A;2011;F\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		cfg      config.Config
		students int
		seats    int
		wantErr  bool
	}{
		{"Roster file", config.Config{RosterPath: path, Rows: 2, Capacities: []int{2, 3}}, 2, 10, false},
		{"Demo", config.Config{DemoSize: 7, Rows: 1, Capacities: []int{4}}, 7, 4, false},
		{"Missing file", config.Config{RosterPath: filepath.Join(dir, "none.csv"), Rows: 1, Capacities: []int{1}}, 0, 0, true},
		{"Bad schema", config.Config{DemoSize: 1, Schema: ";"}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students, room, err := prepare(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("prepare: %v", err)
			}
			if len(students) != tt.students {
				t.Errorf("Expected %d students, got %d", tt.students, len(students))
			}
			if room.SeatCount() != tt.seats {
				t.Errorf("Expected %d seats, got %d", tt.seats, room.SeatCount())
			}
		})
	}
}
