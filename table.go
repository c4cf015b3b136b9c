package csvtable

// Table describes a CSV document for records of type R: its columns, left to
// right, and the configuration used to encode their values.
//
// A Table holds no state between calls. Concurrent exports are safe as long
// as the attribute functions are.
type Table[R any] struct {
	columns []Column[R]
	config  Config
}

// NewTable creates a table from columns. A nil cfg selects [DefaultConfig].
// The columns slice is copied.
func NewTable[R any](columns []Column[R], cfg *Config) *Table[R] {
	cols := make([]Column[R], len(columns))
	copy(cols, columns)
	return &Table[R]{columns: cols, config: *resolve(cfg)}
}

// Columns returns a copy of the table's columns.
func (t *Table[R]) Columns() []Column[R] {
	out := make([]Column[R], len(t.columns))
	copy(out, t.columns)
	return out
}

// Config returns the table's configuration.
func (t *Table[R]) Config() Config { return t.config }

// Header returns the escaped header line.
func (t *Table[R]) Header() string {
	fields := make([]string, len(t.columns))
	for i, c := range t.columns {
		fields[i] = Escape(c.header)
	}
	return joinFields(fields)
}

// Row returns the escaped line for a single record.
func (t *Table[R]) Row(r R) string {
	fields := make([]string, len(t.columns))
	for i, c := range t.columns {
		fields[i] = c.field(r, &t.config)
	}
	return joinFields(fields)
}

// Export renders the header line followed by one line per row, in order,
// joined by [RowSeparator]. With no rows the result is the header line alone.
//
// Export only builds the text; persisting it is up to the caller.
func (t *Table[R]) Export(rows []R) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, t.Header())
	for _, r := range rows {
		lines = append(lines, t.Row(r))
	}
	return joinRows(lines)
}

// Export renders rows with [DefaultConfig].
func Export[R any](columns []Column[R], rows ...R) string {
	return NewTable(columns, nil).Export(rows)
}
