package csvtable

// Column defines one column of a [Table]: a header and an attribute function
// deriving the field value from a record.
type Column[R any] struct {
	header    string
	attribute func(R) Encodable
}

// NewColumn creates a column. A nil attribute yields empty fields.
//
//	csvtable.NewColumn("Title", func(e Episode) csvtable.Encodable {
//		return csvtable.String(e.Title)
//	})
func NewColumn[R any](header string, attribute func(R) Encodable) Column[R] {
	return Column[R]{header: header, attribute: attribute}
}

// Field creates a column from a plain accessor. The returned value is adapted
// with [Value], so pointers act as optionals:
//
//	csvtable.Field("Notes", func(e Episode) *string { return e.Notes })
func Field[R, V any](header string, get func(R) V) Column[R] {
	if get == nil {
		return Column[R]{header: header}
	}
	return Column[R]{header: header, attribute: func(r R) Encodable { return Value(get(r)) }}
}

// Header returns the header name.
func (c Column[R]) Header() string { return c.header }

// Attribute derives the column's value for r.
func (c Column[R]) Attribute(r R) Encodable {
	if c.attribute == nil {
		return None[String]()
	}
	return c.attribute(r)
}

func (c Column[R]) field(r R, cfg *Config) string {
	v := c.Attribute(r)
	if v == nil {
		return ""
	}
	return Escape(v.EncodeCSV(cfg))
}
