package sqltext

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Raw is a SQL fragment emitted verbatim, without quoting.
// Use it for placeholders, function calls or pre-built fragments:
//
//	b.Set("updated_at", sqltext.Raw("CURRENT_TIMESTAMP"))
//
// !!! Raw is never escaped. Do not build it from user input.
type Raw string

// String implements fmt.Stringer.
func (r Raw) String() string {
	return string(r)
}

type nullValue struct{}

func (nullValue) String() string { return "null" }

// Null is the SQL null marker. It renders as the literal null,
// while the string "null" renders as 'null'.
var Null = nullValue{}

// TimeLayout is the layout used to format time.Time values.
const TimeLayout = "2006-01-02 15:04:05"

// Value formats v as a SQL literal:
//   - integers and floats render as decimal text, unquoted
//   - bool renders as 1 or 0
//   - string, []byte, time.Time and fmt.Stringer render single-quoted,
//     with embedded single quotes doubled
//   - Raw and *Column render verbatim
//   - Null and nil render as null
//   - driver.Valuer renders as the value it returns
//
// Named types render by their kind, e.g. a `type status int` is unquoted.
// Pointers render as the value they point to, and nil pointers, maps and
// slices as null.
//
// Value never fails. A driver.Valuer error renders as a /* comment */ in
// place of the value, and kinds not listed above are quoted from fmt.Sprint.
func Value(v any) string {
	switch v := v.(type) {
	case nil, nullValue:
		return "null"
	case Raw:
		return string(v)
	case *Column:
		if v == nil {
			return "null"
		}
		return v.String()
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case string:
		return quote(v)
	case []byte:
		return quote(string(v))
	case time.Time:
		return quote(v.Format(TimeLayout))
	case driver.Valuer:
		if e, ok, isNil := elem[driver.Valuer](v); isNil {
			return "null"
		} else if ok {
			return Value(e)
		}
		dv, err := v.Value()
		if err != nil {
			return errorMarker(err)
		}
		return Value(dv)
	case fmt.Stringer:
		if e, ok, isNil := elem[fmt.Stringer](v); isNil {
			return "null"
		} else if ok {
			return Value(e)
		}
		return quote(v.String())
	default:
		return kindValue(reflect.ValueOf(v))
	}
}

// elem dereferences v if it is a pointer to a T.
func elem[T any](v any) (e any, ok bool, isNil bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return nil, false, false
	}
	if rv.IsNil() {
		return nil, false, true
	}
	e = rv.Elem().Interface()
	_, ok = e.(T)
	return e, ok, false
}

func kindValue(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Invalid:
		return "null"
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		return Value(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Bool:
		return Value(rv.Bool())
	case reflect.String:
		return quote(rv.String())
	case reflect.Map, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return "null"
		}
	case reflect.Slice:
		if rv.IsNil() {
			return "null"
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return quote(string(rv.Bytes()))
		}
	}
	return quote(fmt.Sprint(rv.Interface()))
}

// Values formats each value with Value.
func Values(vs ...any) []string {
	r := make([]string, len(vs))
	for i, v := range vs {
		r[i] = Value(v)
	}
	return r
}

func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	b.WriteString(strings.ReplaceAll(s, "'", "''"))
	b.WriteByte('\'')
	return b.String()
}

// errorMarker renders err as a SQL comment, to take the place of the
// fragment that failed to build.
func errorMarker(err error) string {
	return "/* " + strings.ReplaceAll(err.Error(), "*/", "* /") + " */"
}
