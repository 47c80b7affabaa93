package query

import "strconv"

// Order is a sort direction.
type Order uint8

const (
	Asc Order = iota + 1
	Desc
)

func (o Order) String() string {
	switch o {
	case Asc:
		return "asc"
	case Desc:
		return "desc"
	}
	return "Order(" + strconv.Itoa(int(o)) + ")"
}

type OrderTemplate struct {
	Variable string
	Order    Order
}

type (
	Count struct {
		Query Query
		Count DataValue
	}
	Sum struct {
		List, Result DataValue
	}
	Length struct {
		List, Length DataValue
	}
	// GroupBy collects one Template per solution of Query, grouped by the
	// GroupBy variables, into Grouped.
	GroupBy struct {
		Template Value
		GroupBy  []string
		Grouped  Value
		Query    Query
	}
	OrderBy struct {
		Ordering []OrderTemplate
		Query    Query
	}
	Member struct {
		Member, List DataValue
	}
	// Dot reads Field of the dictionary Document into Value.
	Dot struct {
		Document, Field, Value DataValue
	}
	TripleCount struct {
		Resource string
		Count    DataValue
	}
	Size struct {
		Resource string
		Size     DataValue
	}
)

func (Count) isQuery()       {}
func (Sum) isQuery()         {}
func (Length) isQuery()      {}
func (GroupBy) isQuery()     {}
func (OrderBy) isQuery()     {}
func (Member) isQuery()      {}
func (Dot) isQuery()         {}
func (TripleCount) isQuery() {}
func (Size) isQuery()        {}

type (
	// LexicalKey builds URI from Base and the lexical forms of KeyList.
	LexicalKey struct {
		Base    DataValue
		KeyList []DataValue
		URI     NodeValue
	}
	HashKey struct {
		Base    DataValue
		KeyList []DataValue
		URI     NodeValue
	}
	RandomKey struct {
		Base DataValue
		URI  NodeValue
	}
)

func (LexicalKey) isQuery() {}
func (HashKey) isQuery()    {}
func (RandomKey) isQuery()  {}
