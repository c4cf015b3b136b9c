package csvtable

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var (
	encodableType = reflect.TypeFor[Encodable]()
	stringerType  = reflect.TypeFor[fmt.Stringer]()
	errorType     = reflect.TypeFor[error]()
	timeType      = reflect.TypeFor[time.Time]()
	uuidType      = reflect.TypeFor[uuid.UUID]()
	bytesType     = reflect.TypeFor[[]byte]()
)

// Value adapts a plain Go value to [Encodable]:
//
//   - Encodable values are returned as is.
//   - nil and nil pointers are absent and encode as the empty string.
//   - Other pointers are dereferenced.
//   - time.Time, uuid.UUID, []byte, error and fmt.Stringer values use their
//     natural text.
//   - Strings, integers, floats and bools (including named types built on them)
//     map to [String], [Int], [Uint], [Float] and [Bool].
//
// Anything else is rendered with fmt.Sprint.
func Value(v any) Encodable {
	if v == nil {
		return None[String]()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return None[String]()
		}
		if e, ok := v.(Encodable); ok {
			return e
		}
		// Keep pointers whose methods are declared on the pointer receiver.
		if !textual(rv.Type()) || textual(rv.Type().Elem()) {
			return Value(rv.Elem().Interface())
		}
	}

	switch x := v.(type) {
	case Encodable:
		return x
	case time.Time:
		return Time(x)
	case uuid.UUID:
		return UUID(x)
	case []byte:
		return String(x)
	case error:
		return String(x.Error())
	case fmt.Stringer:
		return String(x.String())
	}

	switch rv.Kind() {
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint())
	case reflect.Float32:
		// Format at 32-bit precision so float32(0.1) prints as 0.1.
		return float32Value(float32(rv.Float()))
	case reflect.Float64:
		return Float(rv.Float())
	default:
		return String(fmt.Sprint(v))
	}
}

// CanEncode reports whether [Value] has a dedicated rendering for T rather
// than falling back to fmt.Sprint.
func CanEncode[T any]() bool {
	return canEncode(reflect.TypeFor[T]())
}

func canEncode(t reflect.Type) bool {
	if textual(t) {
		return true
	}
	switch t {
	case timeType, uuidType, bytesType:
		return true
	}
	switch t.Kind() {
	case reflect.Pointer:
		return canEncode(t.Elem())
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func textual(t reflect.Type) bool {
	return t.Implements(encodableType) || t.Implements(stringerType) || t.Implements(errorType)
}

type float32Value float32

func (f float32Value) EncodeCSV(*Config) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
