// Package csvtable renders typed records as CSV text.
//
// A [Table] is declared once from an ordered list of [Column] definitions,
// each pairing a header with a function that derives a field from a record,
// and can then export any number of record slices:
//
//	type Episode struct {
//		Title  string
//		Number int
//		Aired  time.Time
//		Notes  *string
//	}
//
//	episodes := csvtable.NewTable([]csvtable.Column[Episode]{
//		csvtable.Field("Title", func(e Episode) string { return e.Title }),
//		csvtable.Field("Number", func(e Episode) int { return e.Number }),
//		csvtable.Field("Aired", func(e Episode) time.Time { return e.Aired }),
//		csvtable.Field("Notes", func(e Episode) *string { return e.Notes }),
//	}, nil)
//
//	text := episodes.Export(list)
//
// [Table.Export] only builds a string. Writing it somewhere is up to the
// caller.
//
// # Values
//
// Attribute functions return an [Encodable]. The package provides [String],
// [Int], [Uint], [Float], [Bool], [Time], [UUID] and [Optional]; [Field] and
// [Value] adapt plain Go values to these. Absent optionals and nil pointers
// encode as empty fields.
//
// Implement [Encodable] to give your own types a CSV representation. The
// returned text must not be quoted; the table escapes every field once.
//
// # Escaping
//
// A field is wrapped in double quotes when it contains a comma, a double
// quote, the [RowSeparator] token, or a leading or trailing space. Embedded
// double quotes are doubled. See [Escape].
//
// Rows are joined with [RowSeparator], which is the two characters `\n`
// rather than a newline control character.
//
// # Configuration
//
// A [Config] chooses a [DateStrategy] and a [BoolStrategy]:
//
//   - Dates: [ISO8601] (default), [DeferredToDate], [FormattedDate] with a
//     [Layout] or [Strftime] pattern, or [CustomDate].
//   - Booleans: [TrueFalse] (default), [TrueFalseUppercase], [YesNo],
//     [YesNoUppercase], [IntegerBool], or [CustomBool].
//
// Tables built with a nil config use [DefaultConfig]. Configurations can also
// be read from YAML with [LoadConfig].
//
// # Errors
//
// Encoding never fails. Configuration parsing reports sentinel errors:
//
//   - [ErrUnknownStrategy] — unknown strategy name
//   - [ErrInvalidConfig] — malformed YAML configuration
package csvtable
