package query

type (
	Equals struct {
		Left, Right Value
	}
	Greater struct {
		Left, Right DataValue
	}
	Less struct {
		Left, Right DataValue
	}
	// IsA holds when Element is an instance of Type.
	IsA struct {
		Element NodeValue
		Type    NodeValue
	}
	// Subsumption holds when Child is a subclass of Parent.
	Subsumption struct {
		Parent NodeValue
		Child  NodeValue
	}
	TypeOf struct {
		Value Value
		Type  NodeValue
	}
	Typecast struct {
		Value  Value
		Type   NodeValue
		Result Value
	}
)

func (Equals) isQuery()      {}
func (Greater) isQuery()     {}
func (Less) isQuery()        {}
func (IsA) isQuery()         {}
func (Subsumption) isQuery() {}
func (TypeOf) isQuery()      {}
func (Typecast) isQuery()    {}

type (
	ReadDocument struct {
		Identifier NodeValue
		Document   Value
	}
	// InsertDocument inserts Document; Identifier, if set, is bound to the
	// new document's IRI.
	InsertDocument struct {
		Document   Value
		Identifier NodeValue
	}
	UpdateDocument struct {
		Document   Value
		Identifier NodeValue
	}
	DeleteDocument struct {
		Identifier NodeValue
	}
)

func (ReadDocument) isQuery()   {}
func (InsertDocument) isQuery() {}
func (UpdateDocument) isQuery() {}
func (DeleteDocument) isQuery() {}
