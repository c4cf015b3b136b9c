package csvtable

import "strings"

// Escape quotes a raw field when it contains a comma, a double quote, the
// [RowSeparator] token, or a leading or trailing space. Quoting doubles every
// double quote and wraps the field in double quotes. Other fields, including
// the empty string, are returned unchanged.
//
// Escape is not idempotent.
func Escape(field string) string {
	if !needsQuote(field) {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func needsQuote(field string) bool {
	return strings.ContainsAny(field, `,"`) ||
		strings.Contains(field, RowSeparator) ||
		strings.HasPrefix(field, " ") ||
		strings.HasSuffix(field, " ")
}

func joinFields(fields []string) string {
	return strings.Join(fields, FieldSeparator)
}

func joinRows(rows []string) string {
	return strings.Join(rows, RowSeparator)
}
