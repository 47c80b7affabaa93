package query

import (
	"errors"
	"fmt"
)

type (
	// Value is any operand a query node can reference: [Variable], [Node],
	// [Literal], [List] or [Dictionary].
	Value interface{ value() }

	// NodeValue is an operand that can only name a graph node: [Variable] or
	// [Node].
	NodeValue interface{ nodeValue() }

	// DataValue is an operand that can only carry data: [Variable], [Literal]
	// or [DataList].
	DataValue interface{ dataValue() }

	// ArithmeticValue is the leaf of an [ArithmeticExpression]: [Variable] or
	// [Literal].
	ArithmeticValue interface {
		ArithmeticExpression
		arithmeticValue()
	}
)

type (
	// Variable is a named logic variable, bound by the server.
	Variable string

	// Node references a graph node by IRI or prefixed name.
	Node string

	// List is an ordered list of values.
	List []Value

	// DataList is an ordered list of data values.
	DataList []DataValue

	// Dictionary is a field/value template, used to shape group_by results and
	// to describe documents.
	Dictionary struct {
		Fields []Field
	}
	Field struct {
		Name  string
		Value Value
	}
)

func (Variable) value()                {}
func (Variable) nodeValue()            {}
func (Variable) dataValue()            {}
func (Variable) arithmeticValue()      {}
func (Variable) arithmeticExpression() {}

func (Node) value()     {}
func (Node) nodeValue() {}

func (List) value() {}

func (DataList) dataValue() {}

func (Dictionary) value() {}

// Name returns the variable name.
func (v Variable) Name() string { return string(v) }

// ValueKind names the variant of a value for diagnostics.
type ValueKind uint8

const (
	ValueUnknown ValueKind = iota
	ValueVariable
	ValueNode
	ValueData
	ValueList
	ValueDictionary
)

func (k ValueKind) String() string {
	switch k {
	case ValueVariable:
		return "Variable"
	case ValueNode:
		return "Node"
	case ValueData:
		return "Data"
	case ValueList:
		return "List"
	case ValueDictionary:
		return "Dictionary"
	}
	return "Unknown"
}

// KindOf reports the variant of any Value, NodeValue, DataValue or
// ArithmeticValue.
func KindOf(v any) ValueKind {
	switch v.(type) {
	case Variable:
		return ValueVariable
	case Node:
		return ValueNode
	case Literal:
		return ValueData
	case List, DataList:
		return ValueList
	case Dictionary:
		return ValueDictionary
	}
	return ValueUnknown
}

// ErrInvalidConversion is matched by every [InvalidConversionError].
var ErrInvalidConversion = errors.New("invalid conversion")

// InvalidConversionError reports a narrowing conversion whose source variant
// has no counterpart in the target union.
type InvalidConversionError struct {
	From ValueKind
	To   string
}

func (e *InvalidConversionError) Error() string {
	return fmt.Sprintf("invalid conversion: %s cannot be used as %s", e.From, e.To)
}

func (e *InvalidConversionError) Is(target error) bool {
	return target == ErrInvalidConversion
}

func invalid(from any, to string) error {
	return &InvalidConversionError{From: KindOf(from), To: to}
}

// AsNodeValue narrows v to a [NodeValue].
func AsNodeValue(v Value) (NodeValue, error) {
	switch x := v.(type) {
	case Variable:
		return x, nil
	case Node:
		return x, nil
	}
	return nil, invalid(v, "NodeValue")
}

// AsDataValue narrows v to a [DataValue]. Lists are narrowed element-wise.
func AsDataValue(v Value) (DataValue, error) {
	switch x := v.(type) {
	case Variable:
		return x, nil
	case Literal:
		return x, nil
	case List:
		out := make(DataList, 0, len(x))
		for _, item := range x {
			d, err := AsDataValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}
		return out, nil
	}
	return nil, invalid(v, "DataValue")
}

// AsArithmeticValue narrows v to an [ArithmeticValue].
func AsArithmeticValue(v Value) (ArithmeticValue, error) {
	switch x := v.(type) {
	case Variable:
		return x, nil
	case Literal:
		return x, nil
	}
	return nil, invalid(v, "ArithmeticValue")
}

// NodeAsData narrows a node value to a data value; only variables survive.
func NodeAsData(v NodeValue) (DataValue, error) {
	if x, ok := v.(Variable); ok {
		return x, nil
	}
	return nil, invalid(v, "DataValue")
}

// DataAsArithmetic narrows a data value to an arithmetic value.
func DataAsArithmetic(v DataValue) (ArithmeticValue, error) {
	switch x := v.(type) {
	case Variable:
		return x, nil
	case Literal:
		return x, nil
	}
	return nil, invalid(v, "ArithmeticValue")
}

// NodeToValue widens a node value.
func NodeToValue(v NodeValue) Value {
	if v == nil {
		return nil
	}
	return v.(Value)
}

// DataToValue widens a data value, converting a [DataList] into a [List].
func DataToValue(v DataValue) Value {
	switch x := v.(type) {
	case nil:
		return nil
	case DataList:
		out := make(List, 0, len(x))
		for _, item := range x {
			out = append(out, DataToValue(item))
		}
		return out
	}
	return v.(Value)
}

// ArithmeticToValue widens an arithmetic value.
func ArithmeticToValue(v ArithmeticValue) Value {
	if v == nil {
		return nil
	}
	return v.(Value)
}
