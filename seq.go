package csvtable

import "iter"

// ExportSeq is like [Table.Export] but takes rows from an iterator. The
// sequence is consumed in full before returning.
func (t *Table[R]) ExportSeq(rows iter.Seq[R]) string {
	lines := []string{t.Header()}
	if rows != nil {
		for r := range rows {
			lines = append(lines, t.Row(r))
		}
	}
	return joinRows(lines)
}

// ExportChan is a thin wrapper around [Table.ExportSeq] that drains ch. The
// sender must close ch.
func (t *Table[R]) ExportChan(ch <-chan R) string {
	return t.ExportSeq(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
