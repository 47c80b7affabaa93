package query

// ArithmeticExpression is evaluated by an [Eval] node. Leaves are
// [ArithmeticValue]s; inner nodes are the operators below.
type ArithmeticExpression interface{ arithmeticExpression() }

type (
	Plus struct {
		Left, Right ArithmeticExpression
	}
	Minus struct {
		Left, Right ArithmeticExpression
	}
	Times struct {
		Left, Right ArithmeticExpression
	}
	// Divide is floating point division.
	Divide struct {
		Left, Right ArithmeticExpression
	}
	// Div is integer division.
	Div struct {
		Left, Right ArithmeticExpression
	}
	Exp struct {
		Left, Right ArithmeticExpression
	}
	Floor struct {
		Argument ArithmeticExpression
	}
)

func (Plus) arithmeticExpression()   {}
func (Minus) arithmeticExpression()  {}
func (Times) arithmeticExpression()  {}
func (Divide) arithmeticExpression() {}
func (Div) arithmeticExpression()    {}
func (Exp) arithmeticExpression()    {}
func (Floor) arithmeticExpression()  {}

// Operands returns the direct sub-expressions of e.
func Operands(e ArithmeticExpression) []ArithmeticExpression {
	switch x := e.(type) {
	case Plus:
		return []ArithmeticExpression{x.Left, x.Right}
	case Minus:
		return []ArithmeticExpression{x.Left, x.Right}
	case Times:
		return []ArithmeticExpression{x.Left, x.Right}
	case Divide:
		return []ArithmeticExpression{x.Left, x.Right}
	case Div:
		return []ArithmeticExpression{x.Left, x.Right}
	case Exp:
		return []ArithmeticExpression{x.Left, x.Right}
	case Floor:
		return []ArithmeticExpression{x.Argument}
	}
	return nil
}
