package csvtable

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Field and row separators used when assembling a table.
const (
	FieldSeparator = ","
	// RowSeparator is the two-character token backslash followed by 'n', not a
	// newline control character.
	RowSeparator = `\n`
)

var (
	dateStrategies = []DateStrategy{DeferredToDate, ISO8601}
	boolStrategies = []BoolStrategy{TrueFalse, TrueFalseUppercase, YesNo, YesNoUppercase, IntegerBool}
)

// DateStrategies returns the date strategies that can be selected by name.
// Formatted and custom strategies are not included because they carry a payload.
func DateStrategies() []DateStrategy {
	out := make([]DateStrategy, len(dateStrategies))
	copy(out, dateStrategies)
	return out
}

// BoolStrategies returns the bool strategies that can be selected by name.
// Custom pairs are not included.
func BoolStrategies() []BoolStrategy {
	out := make([]BoolStrategy, len(boolStrategies))
	copy(out, boolStrategies)
	return out
}

// ParseDateStrategy parses a date strategy name such as "iso8601" or "deferred".
func ParseDateStrategy(s string) (DateStrategy, error) {
	for _, d := range dateStrategies {
		if d.String() == s {
			return d, nil
		}
	}
	return DateStrategy{}, fmt.Errorf("%w: date %q", ErrUnknownStrategy, s)
}

// ParseBoolStrategy parses a bool strategy name such as "yes_no" or "integer".
func ParseBoolStrategy(s string) (BoolStrategy, error) {
	for _, b := range boolStrategies {
		if b.String() == s {
			return b, nil
		}
	}
	return BoolStrategy{}, fmt.Errorf("%w: bool %q", ErrUnknownStrategy, s)
}
