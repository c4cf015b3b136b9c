package csvtable

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Encodable is implemented by values that can render themselves as a raw CSV
// field. EncodeCSV must not quote or escape its output; the table applies
// [Escape] exactly once after encoding. A nil cfg means [DefaultConfig].
type Encodable interface {
	EncodeCSV(cfg *Config) string
}

// String encodes as itself.
type String string

// EncodeCSV implements [Encodable].
func (s String) EncodeCSV(*Config) string { return string(s) }

// Int encodes as a base-10 integer without grouping.
type Int int64

// EncodeCSV implements [Encodable].
func (i Int) EncodeCSV(*Config) string { return strconv.FormatInt(int64(i), 10) }

// Uint encodes as a base-10 integer without grouping.
type Uint uint64

// EncodeCSV implements [Encodable].
func (u Uint) EncodeCSV(*Config) string { return strconv.FormatUint(uint64(u), 10) }

// Float encodes as the shortest decimal that round-trips, never in exponent
// form: 12345.678901, 3, 0.5.
type Float float64

// EncodeCSV implements [Encodable].
func (f Float) EncodeCSV(*Config) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

// Bool encodes using the configured [BoolStrategy].
type Bool bool

// EncodeCSV implements [Encodable].
func (b Bool) EncodeCSV(cfg *Config) string {
	t, f := resolve(cfg).BoolStrategy.Values()
	if b {
		return t
	}
	return f
}

// Time encodes using the configured [DateStrategy].
type Time time.Time

// EncodeCSV implements [Encodable].
func (t Time) EncodeCSV(cfg *Config) string {
	return resolve(cfg).DateStrategy.format(time.Time(t))
}

// UUID encodes in canonical 36-character hyphenated form.
type UUID uuid.UUID

// EncodeCSV implements [Encodable].
func (u UUID) EncodeCSV(*Config) string { return uuid.UUID(u).String() }

// Optional wraps a value that may be absent. Absent values encode as the
// empty string; present values delegate to the wrapped value.
type Optional[T Encodable] struct {
	Value T
	Valid bool
}

// Some returns a present optional.
func Some[T Encodable](v T) Optional[T] { return Optional[T]{Value: v, Valid: true} }

// None returns an absent optional.
func None[T Encodable]() Optional[T] { return Optional[T]{} }

// FromPtr returns an optional that is absent when p is nil.
func FromPtr[T Encodable](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return Some(*p)
}

// EncodeCSV implements [Encodable].
func (o Optional[T]) EncodeCSV(cfg *Config) string {
	if !o.Valid {
		return ""
	}
	return o.Value.EncodeCSV(cfg)
}
