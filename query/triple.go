package query

type (
	// Triple matches edges Subject -Predicate-> Object in Graph.
	Triple struct {
		Subject   NodeValue
		Predicate NodeValue
		Object    Value
		Graph     GraphType
	}
	AddTriple     Triple
	DeleteTriple  Triple
	// AddedTriple matches triples added by the commit in scope.
	AddedTriple   Triple
	DeletedTriple Triple

	// Link is a triple whose object must be a node.
	Link struct {
		Subject   NodeValue
		Predicate NodeValue
		Object    NodeValue
		Graph     GraphType
	}
	AddLink     Link
	AddedLink   Link
	DeleteLink  Link
	DeletedLink Link

	// Data is a triple whose object must be data.
	Data struct {
		Subject   NodeValue
		Predicate NodeValue
		Object    DataValue
		Graph     GraphType
	}
	AddData   Data
	AddedData Data
)

func (Triple) isQuery()        {}
func (AddTriple) isQuery()     {}
func (DeleteTriple) isQuery()  {}
func (AddedTriple) isQuery()   {}
func (DeletedTriple) isQuery() {}
func (Link) isQuery()          {}
func (AddLink) isQuery()       {}
func (AddedLink) isQuery()     {}
func (DeleteLink) isQuery()    {}
func (DeletedLink) isQuery()   {}
func (Data) isQuery()          {}
func (AddData) isQuery()       {}
func (AddedData) isQuery()     {}
