package cli

import (
	"strings"
)

// Table is a simple column-aligned text formatter for colour listings.
type Table struct {
	headers []string
	rows    [][]string
	rightAl map[int]bool
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rightAl: make(map[int]bool),
		padding: 2,
	}
}

// AlignRight right-aligns the given column, for numeric values.
func (t *Table) AlignRight(colIndex int) {
	t.rightAl[colIndex] = true
}

// AddRow adds a row to the table. Short rows are padded with empty cells;
// long ones are truncated to the header count.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var b strings.Builder

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = pad(cell, widths[i], t.rightAl[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		b.WriteString("\n")
	}

	writeRow(t.headers)

	seps := make([]string, len(t.headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	writeRow(seps)

	for _, row := range t.rows {
		writeRow(row)
	}

	return b.String()
}

// pad spaces a cell out to the column width on the appropriate side.
func pad(s string, width int, right bool) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if right {
		return fill + s
	}
	return s + fill
}
