package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cast"
)

// LiteralKind is the scalar type tag carried by a [Literal].
type LiteralKind uint8

const (
	KindString LiteralKind = iota + 1
	KindBoolean
	// KindInteger tags signed integers of any width.
	KindInteger
	// KindUnsigned tags unsigned integers of any width.
	KindUnsigned
	KindFloat
	KindDecimal
	KindDateTime
	KindDate
	KindTime
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05.999999999"
)

var (
	ErrInvalidLiteral = errors.New("invalid literal")

	literalKindNames = map[LiteralKind]string{
		KindString:   "string",
		KindBoolean:  "boolean",
		KindInteger:  "integer",
		KindUnsigned: "unsigned",
		KindFloat:    "float",
		KindDecimal:  "decimal",
		KindDateTime: "dateTime",
		KindDate:     "date",
		KindTime:     "time",
	}
	literalKindTypes = map[LiteralKind]string{
		KindString:   "xsd:string",
		KindBoolean:  "xsd:boolean",
		KindInteger:  "xsd:integer",
		KindUnsigned: "xsd:nonNegativeInteger",
		KindFloat:    "xsd:double",
		KindDecimal:  "xsd:decimal",
		KindDateTime: "xsd:dateTime",
		KindDate:     "xsd:date",
		KindTime:     "xsd:time",
	}
)

func (k LiteralKind) String() string {
	if n, ok := literalKindNames[k]; ok {
		return n
	}
	return "LiteralKind(" + strconv.Itoa(int(k)) + ")"
}

// XSD returns the prefixed XML Schema datatype the kind is sent as.
func (k LiteralKind) XSD() string {
	return literalKindTypes[k]
}

// Literal is a typed scalar embedded in a query: the Data variant of [Value],
// [DataValue] and [ArithmeticValue].
//
// The zero Literal is invalid; use one of the constructors.
type Literal struct {
	kind LiteralKind
	v    any
}

func (Literal) value()                {}
func (Literal) dataValue()            {}
func (Literal) arithmeticValue()      {}
func (Literal) arithmeticExpression() {}

// Kind returns the scalar type tag.
func (l Literal) Kind() LiteralKind { return l.kind }

// Value returns the underlying Go value: string, bool, int64, uint64, float64
// or time.Time. Decimals are returned in their canonical string form.
func (l Literal) Value() any { return l.v }

// IsValid reports whether l was built by a constructor.
func (l Literal) IsValid() bool { return l.kind != 0 }

// Lexical renders the literal in its lexical (XSD) form.
func (l Literal) Lexical() string {
	switch v := l.v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case time.Time:
		switch l.kind {
		case KindDate:
			return v.Format(dateLayout)
		case KindTime:
			return v.Format(timeLayout)
		}
		return v.Format(time.RFC3339Nano)
	}
	return ""
}

func (l Literal) String() string {
	if !l.IsValid() {
		return "<invalid literal>"
	}
	if l.kind == KindString {
		return strconv.Quote(l.Lexical())
	}
	return l.Lexical() + "^^" + l.kind.XSD()
}

// String builds a string literal.
func String(s string) Literal { return Literal{kind: KindString, v: s} }

// Bool builds a boolean literal.
func Bool(b bool) Literal { return Literal{kind: KindBoolean, v: b} }

// Int builds a signed integer literal.
func Int(i int64) Literal { return Literal{kind: KindInteger, v: i} }

// Uint builds an unsigned integer literal.
func Uint(u uint64) Literal { return Literal{kind: KindUnsigned, v: u} }

// Float builds a floating point literal.
func Float(f float64) Literal { return Literal{kind: KindFloat, v: f} }

// Signed builds a signed integer literal from any signed integer width.
func Signed[T ~int | ~int8 | ~int16 | ~int32 | ~int64](v T) Literal {
	return Int(int64(v))
}

// Unsigned builds an unsigned integer literal from any unsigned integer width.
func Unsigned[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr](v T) Literal {
	return Uint(uint64(v))
}

// Decimal builds an arbitrary precision decimal literal from its textual
// form. NaN and infinities are rejected.
func Decimal(s string) (Literal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Literal{}, fmt.Errorf("%w: decimal %q: %w", ErrInvalidLiteral, s, err)
	}
	if d.Form != apd.Finite {
		return Literal{}, fmt.Errorf("%w: decimal %q is not finite", ErrInvalidLiteral, s)
	}
	return Literal{kind: KindDecimal, v: d.Text('f')}, nil
}

// MustDecimal is like [Decimal] but panics on malformed input.
func MustDecimal(s string) Literal {
	l, err := Decimal(s)
	if err != nil {
		panic(err)
	}
	return l
}

// DateTime builds a dateTime literal. The instant is normalised to UTC.
func DateTime(t time.Time) Literal {
	return Literal{kind: KindDateTime, v: t.UTC()}
}

// ParseDateTime parses s with the layouts understood by [cast.ToTimeE]
// (RFC 3339 and friends); zone-less input is taken as UTC.
func ParseDateTime(s string) (Literal, error) {
	t, err := cast.ToTimeE(s)
	if err != nil {
		return Literal{}, fmt.Errorf("%w: dateTime %q: %w", ErrInvalidLiteral, s, err)
	}
	return DateTime(t), nil
}

// Date builds a calendar date literal.
func Date(year int, month time.Month, day int) Literal {
	return Literal{kind: KindDate, v: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (Literal, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Literal{}, fmt.Errorf("%w: date %q: %w", ErrInvalidLiteral, s, err)
	}
	return Literal{kind: KindDate, v: t}, nil
}

// TimeOfDay builds a time-of-day literal.
func TimeOfDay(hour, minute, sec, nsec int) Literal {
	return Literal{kind: KindTime, v: time.Date(0, time.January, 1, hour, minute, sec, nsec, time.UTC)}
}

// LiteralOf converts a host scalar into a literal. Signed integers tag as
// [KindInteger], unsigned integers as [KindUnsigned], floats as [KindFloat]
// and time.Time as [KindDateTime]. Named types are converted by their
// underlying kind.
func LiteralOf(v any) (Literal, error) {
	switch x := v.(type) {
	case Literal:
		if !x.IsValid() {
			return Literal{}, fmt.Errorf("%w: zero literal", ErrInvalidLiteral)
		}
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Signed(x), nil
	case int8:
		return Signed(x), nil
	case int16:
		return Signed(x), nil
	case int32:
		return Signed(x), nil
	case int64:
		return Int(x), nil
	case uint:
		return Unsigned(x), nil
	case uint8:
		return Unsigned(x), nil
	case uint16:
		return Unsigned(x), nil
	case uint32:
		return Unsigned(x), nil
	case uint64:
		return Uint(x), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case time.Time:
		return DateTime(x), nil
	case *apd.Decimal:
		if x == nil {
			break
		}
		return Decimal(x.Text('f'))
	case json.Number:
		if i, err := cast.ToInt64E(x); err == nil {
			return Int(i), nil
		}
		f, err := cast.ToFloat64E(x)
		if err != nil {
			return Literal{}, fmt.Errorf("%w: %w", ErrInvalidLiteral, err)
		}
		return Float(f), nil
	}
	if v == nil {
		return Literal{}, fmt.Errorf("%w: nil", ErrInvalidLiteral)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	}
	return Literal{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidLiteral, v)
}
