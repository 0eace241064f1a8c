package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnSeparator = " | "

// Format renders records as a fixed-width text table in the given
// column order: one header line, one line per record, cells
// left-justified to the widest trimmed value (or header label) in each
// column. Widths are display widths, not byte counts, so multi-byte
// cells line up. Returns "" when records is empty.
func Format(records []Record, columns []string) string {
	if len(records) == 0 {
		return ""
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = runewidth.StringWidth(col)
		for _, rec := range records {
			if n := runewidth.StringWidth(strings.TrimSpace(rec[col])); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString(columnSeparator)
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		b.WriteByte('\n')
	}

	writeRow(columns)
	cells := make([]string, len(columns))
	for _, rec := range records {
		for i, col := range columns {
			cells[i] = strings.TrimSpace(rec[col])
		}
		writeRow(cells)
	}

	return strings.TrimSuffix(b.String(), "\n")
}
