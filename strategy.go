package csvtable

import (
	"time"

	"github.com/ncruces/go-strftime"
)

type dateKind int

const (
	dateISO8601 dateKind = iota
	dateDeferred
	dateFormatted
	dateCustom
)

// DateStrategy selects how [Time] values are rendered. The zero value is
// [ISO8601].
type DateStrategy struct {
	kind      dateKind
	formatter DateFormatter
	custom    func(time.Time) string
}

var (
	// DeferredToDate renders times with Go's native [time.Time.String] form,
	// without the monotonic clock reading.
	DeferredToDate = DateStrategy{kind: dateDeferred}
	// ISO8601 renders times in UTC as RFC 3339 with a 'Z' designator,
	// e.g. 2023-11-07T17:34:21Z.
	ISO8601 = DateStrategy{kind: dateISO8601}
)

// FormattedDate delegates rendering to f. A nil formatter yields [ISO8601].
func FormattedDate(f DateFormatter) DateStrategy {
	if f == nil {
		return ISO8601
	}
	return DateStrategy{kind: dateFormatted, formatter: f}
}

// CustomDate calls fn with the raw time. A nil fn yields [ISO8601].
func CustomDate(fn func(time.Time) string) DateStrategy {
	if fn == nil {
		return ISO8601
	}
	return DateStrategy{kind: dateCustom, custom: fn}
}

// String returns the strategy name.
func (d DateStrategy) String() string {
	switch d.kind {
	case dateDeferred:
		return "deferred"
	case dateFormatted:
		return "formatted"
	case dateCustom:
		return "custom"
	default:
		return "iso8601"
	}
}

// Formatter returns the formatter of a formatted strategy, or nil.
func (d DateStrategy) Formatter() DateFormatter { return d.formatter }

func (d DateStrategy) format(t time.Time) string {
	switch d.kind {
	case dateDeferred:
		return t.Round(0).String()
	case dateFormatted:
		return d.formatter.Format(t)
	case dateCustom:
		return d.custom(t)
	default:
		return t.UTC().Format(time.RFC3339)
	}
}

// DateFormatter renders a time for [FormattedDate].
type DateFormatter interface {
	Format(time.Time) string
}

// Layout is a Go reference layout, e.g. "2006-01-02 15:04".
type Layout string

// Format implements [DateFormatter].
func (l Layout) Format(t time.Time) string { return t.Format(string(l)) }

// Strftime is a C strftime pattern, e.g. "%d/%m/%Y %H:%M".
type Strftime string

// Format implements [DateFormatter].
func (s Strftime) Format(t time.Time) string { return strftime.Format(string(s), t) }

// InLocation converts times to loc before handing them to f.
// A nil loc leaves times untouched. A nil f yields nil, which
// [FormattedDate] treats as [ISO8601].
func InLocation(f DateFormatter, loc *time.Location) DateFormatter {
	if f == nil {
		return nil
	}
	return located{f: f, loc: loc}
}

type located struct {
	f   DateFormatter
	loc *time.Location
}

func (l located) Format(t time.Time) string {
	if l.loc != nil {
		t = t.In(l.loc)
	}
	return l.f.Format(t)
}

type boolKind int

const (
	boolTrueFalse boolKind = iota
	boolTrueFalseUpper
	boolYesNo
	boolYesNoUpper
	boolInteger
	boolCustom
)

// BoolStrategy selects how [Bool] values are rendered. The zero value is
// [TrueFalse].
type BoolStrategy struct {
	kind       boolKind
	trueValue  string
	falseValue string
}

var (
	TrueFalse          = BoolStrategy{kind: boolTrueFalse}      // true / false
	TrueFalseUppercase = BoolStrategy{kind: boolTrueFalseUpper} // TRUE / FALSE
	YesNo              = BoolStrategy{kind: boolYesNo}          // yes / no
	YesNoUppercase     = BoolStrategy{kind: boolYesNoUpper}     // YES / NO
	IntegerBool        = BoolStrategy{kind: boolInteger}        // 1 / 0
)

// CustomBool renders true as t and false as f.
func CustomBool(t, f string) BoolStrategy {
	return BoolStrategy{kind: boolCustom, trueValue: t, falseValue: f}
}

// Values returns the strings used for true and false.
func (b BoolStrategy) Values() (string, string) {
	switch b.kind {
	case boolTrueFalseUpper:
		return "TRUE", "FALSE"
	case boolYesNo:
		return "yes", "no"
	case boolYesNoUpper:
		return "YES", "NO"
	case boolInteger:
		return "1", "0"
	case boolCustom:
		return b.trueValue, b.falseValue
	default:
		return "true", "false"
	}
}

// String returns the strategy name.
func (b BoolStrategy) String() string {
	switch b.kind {
	case boolTrueFalseUpper:
		return "true_false_upper"
	case boolYesNo:
		return "yes_no"
	case boolYesNoUpper:
		return "yes_no_upper"
	case boolInteger:
		return "integer"
	case boolCustom:
		return "custom"
	default:
		return "true_false"
	}
}
