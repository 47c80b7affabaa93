package query

// Query is a node of the query IR. Every node owns its children outright; a
// finished tree is never mutated.
type Query interface{ isQuery() }

// GraphType selects which graph of a data product a triple pattern reads or
// writes.
type GraphType string

const (
	GraphInstance GraphType = "instance"
	GraphSchema   GraphType = "schema"
)

// ParseGraphType accepts "instance" and "schema".
func ParseGraphType(s string) (GraphType, bool) {
	switch GraphType(s) {
	case GraphInstance, GraphSchema:
		return GraphType(s), true
	}
	return "", false
}

type (
	And struct {
		And []Query
	}
	Or struct {
		Or []Query
	}
	Not struct {
		Query Query
	}
	// Optional succeeds whether or not Query does, keeping its bindings when
	// it does.
	Optional struct {
		Query Query
	}
	If struct {
		Test, Then, Else Query
	}
	True struct{}
)

func (And) isQuery()      {}
func (Or) isQuery()       {}
func (Not) isQuery()      {}
func (Optional) isQuery() {}
func (If) isQuery()       {}
func (True) isQuery()     {}

type (
	Limit struct {
		Limit uint64
		Query Query
	}
	Start struct {
		Start uint64
		Query Query
	}
	Select struct {
		Variables []string
		Query     Query
	}
	Distinct struct {
		Variables []string
		Query     Query
	}
	// Using sets the collection (data product or commit path) Query runs in.
	Using struct {
		Collection string
		Query      Query
	}
	// From sets the graph Query reads from.
	From struct {
		Graph string
		Query Query
	}
	// Into sets the graph Query writes into.
	Into struct {
		Graph string
		Query Query
	}
	Once struct {
		Query Query
	}
	Immediately struct {
		Query Query
	}
	Pin struct {
		Query Query
	}
)

func (Limit) isQuery()       {}
func (Start) isQuery()       {}
func (Select) isQuery()      {}
func (Distinct) isQuery()    {}
func (Using) isQuery()       {}
func (From) isQuery()        {}
func (Into) isQuery()        {}
func (Once) isQuery()        {}
func (Immediately) isQuery() {}
func (Pin) isQuery()         {}

type (
	Eval struct {
		Expression ArithmeticExpression
		Result     ArithmeticValue
	}
	// Path matches Subject to Object through Pattern. Path, when set, is bound
	// to the list of edges traversed.
	Path struct {
		Subject Value
		Pattern PathPattern
		Object  Value
		Path    Value
	}
)

func (Eval) isQuery() {}
func (Path) isQuery() {}
