package constants

// Room Layout (terminal cells)
const (
	// Margin is the gap between the screen edge and the room
	Margin = 2

	// SeatWidth is the width of one seat; a table is capacity * SeatWidth wide
	SeatWidth = 12

	// SeatHeight is the height of one table row
	SeatHeight = 1

	// RowGap is the vertical gap between two table rows
	RowGap = 1

	// ColumnGap is the horizontal gap between two table columns
	ColumnGap = 4

	// TablesTop is the first screen row used by tables, below the desk
	TablesTop = 6

	// TableScrollStep is how many screen rows one wheel notch scrolls the tables
	TableScrollStep = 2

	// ColumnScrollStep is how many screen columns one horizontal notch scrolls the tables
	ColumnScrollStep = SeatWidth
)

// Desk
const (
	DeskWidth  = 20
	DeskHeight = 3
	DeskLabel  = "Desk"
)

// Roster Panel
const (
	// RosterWidth is the width of the unplaced-student panel on the right edge
	RosterWidth = 24

	// RosterItemHeight is the height of one roster entry
	RosterItemHeight = 1

	// StatusBarHeight is reserved at the bottom of the screen
	StatusBarHeight = 1
)

// Context Menu
const (
	MenuWidth      = 14
	MenuItemHeight = 1
)

// MenuItems are the seat context menu entries in display order
var MenuItems = []string{"Disable", "Enable", "Clear"}
