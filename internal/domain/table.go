package domain

// Table is a loosely-typed tabular extract: an ordered header plus string
// cells keyed by column name. Cells missing from a row read as "".
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// HasColumn reports whether the table header contains the given column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
