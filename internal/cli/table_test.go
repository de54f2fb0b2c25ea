package cli

import (
	"strings"
	"testing"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Hex"})

	// Add matching row
	table.AddRow([]string{"accent", "#ff8000"})
	if len(table.rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.rows))
	}

	// Add row with fewer columns (should be padded)
	table.AddRow([]string{"surface"})
	if len(table.rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(table.rows))
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}

	// Add row with more columns (should be truncated)
	table.AddRow([]string{"primary", "#0000ff", "extra"})
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row to be truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Name", "Hex", "Angle"})
	table.AlignRight(2)
	table.AddRow([]string{"primary", "#ff0000", "0"})
	table.AddRow([]string{"azure", "#0080ff", "210"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines (header, separator, 2 rows), got %d", len(lines))
	}

	if !strings.HasPrefix(lines[0], "Name") {
		t.Errorf("Header line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "----") {
		t.Errorf("Separator line = %q", lines[1])
	}

	// Right-aligned numeric column lines up on its last character.
	if !strings.HasSuffix(lines[2], "  0") {
		t.Errorf("Right-aligned cell not padded: %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "210") {
		t.Errorf("Right-aligned cell = %q", lines[3])
	}

	// Columns align: the Hex header and cells start at the same offset.
	col := strings.Index(lines[0], "Hex")
	if col < 0 || lines[2][col:col+1] != "#" {
		t.Errorf("Hex column misaligned:\n%s", out)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("Expected empty output, got %q", out)
	}
}
