package internal

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/rlch/woql/query"
)

// VariablePrefix marks a plain Go string as a variable reference.
const VariablePrefix = "v:"

var ErrEmptyBuilder = errors.New("builder has no queries to finalize")

// BuilderError reports an operand that cannot stand in the position a builder
// call put it in, or a builder that was finalized with nothing in it.
type BuilderError struct {
	// Context names the builder call, e.g. "Triple.subject".
	Context  string
	Expected string
	Actual   string
	Err      error
}

func (e *BuilderError) Error() string {
	var b strings.Builder
	b.WriteString("woql: ")
	b.WriteString(e.Context)
	if e.Expected != "" {
		fmt.Fprintf(&b, ": expected %s, got %s", e.Expected, e.Actual)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *BuilderError) Unwrap() error { return e.Err }

func operandErr(ctx, expected string, operand any, err error) *BuilderError {
	return &BuilderError{
		Context:  ctx,
		Expected: expected,
		Actual:   describe(operand),
		Err:      err,
	}
}

func describe(v any) string {
	if k := query.KindOf(v); k != query.ValueUnknown {
		return k.String()
	}
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

// StringOperand interprets s as a variable when it carries the "v:" prefix and
// as a node otherwise.
func StringOperand(s string) query.Value {
	if len(s) > len(VariablePrefix) && strings.HasPrefix(s, VariablePrefix) {
		return query.Variable(s[len(VariablePrefix):])
	}
	return query.Node(s)
}

// ToValue coerces a host operand into a [query.Value]. IR values pass through,
// strings become nodes or variables, slices become lists and everything else
// goes through [query.LiteralOf].
func ToValue(ctx string, v any) (query.Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, operandErr(ctx, "Value", v, errors.New("nil operand"))
	case query.Value:
		return x, nil
	case query.DataList:
		return query.DataToValue(x), nil
	case string:
		return StringOperand(x), nil
	case []any:
		return toList(ctx, x)
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return toList(ctx, items)
	}
	l, err := query.LiteralOf(v)
	if err != nil {
		return nil, operandErr(ctx, "Value", v, err)
	}
	return l, nil
}

func toList(ctx string, items []any) (query.List, error) {
	out := make(query.List, 0, len(items))
	for _, item := range items {
		iv, err := ToValue(ctx, item)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}

// ToNodeValue coerces v into a [query.NodeValue]. Literals and lists are
// rejected.
func ToNodeValue(ctx string, v any) (query.NodeValue, error) {
	if n, ok := v.(query.NodeValue); ok {
		return n, nil
	}
	val, err := ToValue(ctx, v)
	if err != nil {
		return nil, err
	}
	n, err := query.AsNodeValue(val)
	if err != nil {
		return nil, operandErr(ctx, "NodeValue", val, err)
	}
	return n, nil
}

// ToOptionalNodeValue is [ToNodeValue] for positions that may be left unset.
func ToOptionalNodeValue(ctx string, v any) (query.NodeValue, error) {
	if v == nil {
		return nil, nil
	}
	return ToNodeValue(ctx, v)
}

// ToDataValue coerces v into a [query.DataValue]. Nodes are rejected; lists
// are narrowed element-wise.
func ToDataValue(ctx string, v any) (query.DataValue, error) {
	if d, ok := v.(query.DataValue); ok {
		return d, nil
	}
	val, err := ToValue(ctx, v)
	if err != nil {
		return nil, err
	}
	d, err := query.AsDataValue(val)
	if err != nil {
		return nil, operandErr(ctx, "DataValue", val, err)
	}
	return d, nil
}

// ToOptionalDataValue is [ToDataValue] for positions that may be left unset.
func ToOptionalDataValue(ctx string, v any) (query.DataValue, error) {
	if v == nil {
		return nil, nil
	}
	return ToDataValue(ctx, v)
}

// ToOptionalValue is [ToValue] for positions that may be left unset.
func ToOptionalValue(ctx string, v any) (query.Value, error) {
	if v == nil {
		return nil, nil
	}
	return ToValue(ctx, v)
}

// ToArithmeticValue coerces v into a [query.ArithmeticValue].
func ToArithmeticValue(ctx string, v any) (query.ArithmeticValue, error) {
	if a, ok := v.(query.ArithmeticValue); ok {
		return a, nil
	}
	d, err := ToDataValue(ctx, v)
	if err != nil {
		return nil, err
	}
	a, err := query.DataAsArithmetic(d)
	if err != nil {
		return nil, operandErr(ctx, "ArithmeticValue", d, err)
	}
	return a, nil
}

// ToArithmeticExpression coerces v into an expression; expressions pass
// through and anything else must be an arithmetic value.
func ToArithmeticExpression(ctx string, v any) (query.ArithmeticExpression, error) {
	if e, ok := v.(query.ArithmeticExpression); ok {
		return e, nil
	}
	return ToArithmeticValue(ctx, v)
}

// ToDataValues coerces each element of vs with [ToDataValue].
func ToDataValues(ctx string, vs []any) ([]query.DataValue, error) {
	out := make([]query.DataValue, 0, len(vs))
	for _, v := range vs {
		d, err := ToDataValue(ctx, v)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// CheckEquality rejects comparing two node references, which can only be
// decided by identity and belongs in a triple pattern.
func CheckEquality(ctx string, left, right query.Value) error {
	_, ln := left.(query.Node)
	_, rn := right.(query.Node)
	if ln && rn {
		return &BuilderError{
			Context:  ctx,
			Expected: "at least one DataValue",
			Actual:   "Node and Node",
		}
	}
	return nil
}

// CheckPattern compiles a literal regexp pattern so malformed patterns are
// caught while building rather than on the server. Variables are left alone.
func CheckPattern(ctx string, pattern query.DataValue) error {
	l, ok := pattern.(query.Literal)
	if !ok || l.Kind() != query.KindString {
		return nil
	}
	if _, err := regexp2.Compile(l.Lexical(), regexp2.RE2); err != nil {
		return operandErr(ctx, "valid regexp", pattern, err)
	}
	return nil
}

// VariableNames strips the variable prefix from each name.
func VariableNames(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.TrimPrefix(n, VariablePrefix)
	}
	return out
}
