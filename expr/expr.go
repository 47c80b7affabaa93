// Package expr builds the arithmetic expressions evaluated by
// [woql.Builder.Eval].
//
// Operands are coerced like builder operands: "v:X" names a variable and Go
// numbers become literals. An operand with no arithmetic form, such as a
// node or a list, is a programming error and panics.
package expr

import (
	"fmt"

	"github.com/rlch/woql/internal"
	"github.com/rlch/woql/query"
)

func operand(op string, v any) query.ArithmeticExpression {
	e, err := internal.ToArithmeticExpression("expr."+op, v)
	if err != nil {
		panic(err)
	}
	return e
}

func Plus(left, right any) query.ArithmeticExpression {
	return query.Plus{Left: operand("Plus", left), Right: operand("Plus", right)}
}

func Minus(left, right any) query.ArithmeticExpression {
	return query.Minus{Left: operand("Minus", left), Right: operand("Minus", right)}
}

func Times(left, right any) query.ArithmeticExpression {
	return query.Times{Left: operand("Times", left), Right: operand("Times", right)}
}

// Divide is floating point division.
func Divide(left, right any) query.ArithmeticExpression {
	return query.Divide{Left: operand("Divide", left), Right: operand("Divide", right)}
}

// Div is integer division.
func Div(left, right any) query.ArithmeticExpression {
	return query.Div{Left: operand("Div", left), Right: operand("Div", right)}
}

// Exp raises base to exponent.
func Exp(base, exponent any) query.ArithmeticExpression {
	return query.Exp{Left: operand("Exp", base), Right: operand("Exp", exponent)}
}

func Floor(v any) query.ArithmeticExpression {
	return query.Floor{Argument: operand("Floor", v)}
}

// Sum folds operands with [Plus], left to right. It needs at least one
// operand.
func Sum(operands ...any) query.ArithmeticExpression {
	if len(operands) == 0 {
		panic(fmt.Errorf("expr.Sum: no operands"))
	}
	acc := operand("Sum", operands[0])
	for _, o := range operands[1:] {
		acc = query.Plus{Left: acc, Right: operand("Sum", o)}
	}
	return acc
}
