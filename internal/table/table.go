// Package table loads delimited text tables into ordered records and
// renders annotated records back out as fixed-width text.
package table

// Record holds one row as a column-name to trimmed-value mapping.
// Column order is not carried by the record itself; Table.Columns is
// the ordering authority.
type Record map[string]string

// Table is a fully materialized delimited table: the header-derived
// column order plus every data row in input order. Row position is
// significant downstream, so Records must never be reordered.
type Table struct {
	Columns []string
	Records []Record
}

// MissingColumns returns the requested column names that do not appear
// in the table header, preserving request order.
func (t *Table) MissingColumns(requested []string) []string {
	available := make(map[string]bool, len(t.Columns))
	for _, col := range t.Columns {
		available[col] = true
	}

	var missing []string
	for _, col := range requested {
		if !available[col] {
			missing = append(missing, col)
		}
	}
	return missing
}
