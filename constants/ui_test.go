package constants

import "testing"

// TestLayoutFitsSmallTerminal verifies one three-seat table, the gap and the roster fit 80 columns
func TestLayoutFitsSmallTerminal(t *testing.T) {
	width := Margin + 3*SeatWidth + ColumnGap + RosterWidth
	if width > 80 {
		t.Errorf("Expected layout to fit 80 columns, needs %d", width)
	}
}

// TestMenuItems verifies context menu entries fit the menu box
func TestMenuItems(t *testing.T) {
	if len(MenuItems) != 3 {
		t.Fatalf("Expected 3 menu items, got %d", len(MenuItems))
	}
	for _, item := range MenuItems {
		if len(item)+2 > MenuWidth {
			t.Errorf("Menu item %q wider than menu", item)
		}
	}
}
