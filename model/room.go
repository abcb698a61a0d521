package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNegativeCapacity = errors.New("table capacity cannot be negative")
	ErrEmptyLayout      = errors.New("room layout needs at least one row and one table")
)

// Room holds the tables of a classroom in construction order
type Room struct {
	tables []*Table
	index  map[[2]int]*Table
}

// NewRoom builds a room from a list of rows, each row listing table capacities left to right
// Rows may have different lengths; a schema without any table is rejected
func NewRoom(schema [][]int) (*Room, error) {
	r := &Room{index: make(map[[2]int]*Table)}
	for row, line := range schema {
		for col, capacity := range line {
			if capacity < 0 {
				return nil, fmt.Errorf("table (%d, %d): %w", col, row, ErrNegativeCapacity)
			}
			t := NewTable(col, row, capacity)
			r.tables = append(r.tables, t)
			r.index[[2]int{col, row}] = t
		}
	}
	if len(r.tables) == 0 {
		return nil, ErrEmptyLayout
	}
	return r, nil
}

// NewCompactRoom replicates one list of capacities across the given number of rows
//
//	rows=3, caps=[2, 3, 2] ->
//	  [2, 3, 2]
//	  [2, 3, 2]
//	  [2, 3, 2]
func NewCompactRoom(rows int, caps []int) (*Room, error) {
	if rows < 1 || len(caps) == 0 {
		return nil, ErrEmptyLayout
	}
	schema := make([][]int, rows)
	for i := range schema {
		schema[i] = append([]int(nil), caps...)
	}
	return NewRoom(schema)
}

// Tables returns every table in construction order
func (r *Room) Tables() []*Table {
	return r.tables
}

// TableAt returns the table at a grid position
func (r *Room) TableAt(col, row int) (*Table, bool) {
	t, ok := r.index[[2]int{col, row}]
	return t, ok
}

// Schema rebuilds capacities indexed [column][row] from the live tables
// Missing entries in jagged columns are zero
func (r *Room) Schema() [][]int {
	if len(r.tables) == 0 {
		return nil
	}

	maxCol := 0
	for _, t := range r.tables {
		if t.col > maxCol {
			maxCol = t.col
		}
	}

	schema := make([][]int, maxCol+1)
	for _, t := range r.tables {
		column := schema[t.col]
		if len(column) <= t.row {
			column = append(column, make([]int, t.row-len(column)+1)...)
		}
		column[t.row] = t.Capacity()
		schema[t.col] = column
	}
	return schema
}

// Rows rebuilds capacities indexed [row][column], the construction format
func (r *Room) Rows() [][]int {
	if len(r.tables) == 0 {
		return nil
	}

	maxRow := 0
	for _, t := range r.tables {
		if t.row > maxRow {
			maxRow = t.row
		}
	}

	rows := make([][]int, maxRow+1)
	for _, t := range r.tables {
		line := rows[t.row]
		if len(line) <= t.col {
			line = append(line, make([]int, t.col-len(line)+1)...)
		}
		line[t.col] = t.Capacity()
		rows[t.row] = line
	}
	return rows
}

// ColumnWidths returns per column the widest table times seatWidth, plus margin
func (r *Room) ColumnWidths(seatWidth, margin int) []int {
	schema := r.Schema()
	widths := make([]int, len(schema))
	for i, column := range schema {
		widest := 0
		for _, c := range column {
			if c > widest {
				widest = c
			}
		}
		widths[i] = widest*seatWidth + margin
	}
	return widths
}

// SeatCount returns the total number of seats
func (r *Room) SeatCount() int {
	n := 0
	for _, t := range r.tables {
		n += t.Capacity()
	}
	return n
}

// FreeSeatCount returns the number of enabled empty seats
func (r *Room) FreeSeatCount() int {
	n := 0
	for _, t := range r.tables {
		for i := 0; i < t.Capacity(); i++ {
			if t.IsSeatFree(i) {
				n++
			}
		}
	}
	return n
}

func (r *Room) String() string {
	byRow := make(map[int][]*Table)
	for _, t := range r.tables {
		byRow[t.row] = append(byRow[t.row], t)
	}

	rowKeys := make([]int, 0, len(byRow))
	for k := range byRow {
		rowKeys = append(rowKeys, k)
	}
	sort.Ints(rowKeys)

	lines := make([]string, 0, len(rowKeys))
	for _, y := range rowKeys {
		line := byRow[y]
		sort.Slice(line, func(i, j int) bool { return line[i].col < line[j].col })
		parts := make([]string, len(line))
		for i, t := range line {
			parts[i] = t.String()
		}
		lines = append(lines, strings.Join(parts, " | "))
	}
	return strings.Join(lines, "\n")
}
