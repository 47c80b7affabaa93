package woql

import (
	"github.com/rlch/woql/query"
)

func (b *Builder) triple(call string, s, p, o any, graph query.GraphType, build func(query.Triple) query.Query) *Builder {
	return b.leaf(call, func(c *operands) query.Query {
		return build(query.Triple{
			Subject:   c.node("subject", s),
			Predicate: c.node("predicate", p),
			Object:    c.value("object", o),
			Graph:     graph,
		})
	})
}

func (b *Builder) link(call string, s, p, o any, graph query.GraphType, build func(query.Link) query.Query) *Builder {
	return b.leaf(call, func(c *operands) query.Query {
		return build(query.Link{
			Subject:   c.node("subject", s),
			Predicate: c.node("predicate", p),
			Object:    c.node("object", o),
			Graph:     graph,
		})
	})
}

func (b *Builder) data(call string, s, p, o any, graph query.GraphType, build func(query.Data) query.Query) *Builder {
	return b.leaf(call, func(c *operands) query.Query {
		return build(query.Data{
			Subject:   c.node("subject", s),
			Predicate: c.node("predicate", p),
			Object:    c.data("object", o),
			Graph:     graph,
		})
	})
}

// graphOr returns the first of graphs, or the configured default.
func (b *Builder) graphOr(graphs []query.GraphType) query.GraphType {
	if len(graphs) > 0 && graphs[0] != "" {
		return graphs[0]
	}
	return b.config().Graph
}

// Triple matches the edge subject -predicate-> object.
func (b *Builder) Triple(subject, predicate, object any) *Builder {
	return b.triple("Triple", subject, predicate, object, b.graphOr(nil),
		func(t query.Triple) query.Query { return t })
}

// TripleIn is [Builder.Triple] against an explicit graph.
func (b *Builder) TripleIn(subject, predicate, object any, graph query.GraphType) *Builder {
	return b.triple("TripleIn", subject, predicate, object, graph,
		func(t query.Triple) query.Query { return t })
}

func (b *Builder) AddTriple(subject, predicate, object any) *Builder {
	return b.triple("AddTriple", subject, predicate, object, b.graphOr(nil),
		func(t query.Triple) query.Query { return query.AddTriple(t) })
}

// AddedTriple matches triples added by the commit in scope. The graph
// defaults to the configured one.
func (b *Builder) AddedTriple(subject, predicate, object any, graph ...query.GraphType) *Builder {
	return b.triple("AddedTriple", subject, predicate, object, b.graphOr(graph),
		func(t query.Triple) query.Query { return query.AddedTriple(t) })
}

func (b *Builder) DeleteTriple(subject, predicate, object any) *Builder {
	return b.triple("DeleteTriple", subject, predicate, object, b.graphOr(nil),
		func(t query.Triple) query.Query { return query.DeleteTriple(t) })
}

// DeletedTriple matches triples removed by the commit in scope.
func (b *Builder) DeletedTriple(subject, predicate, object any, graph ...query.GraphType) *Builder {
	return b.triple("DeletedTriple", subject, predicate, object, b.graphOr(graph),
		func(t query.Triple) query.Query { return query.DeletedTriple(t) })
}

// Link is [Builder.Triple] with an object that must be a node.
func (b *Builder) Link(subject, predicate, object any) *Builder {
	return b.link("Link", subject, predicate, object, b.graphOr(nil),
		func(l query.Link) query.Query { return l })
}

func (b *Builder) AddLink(subject, predicate, object any) *Builder {
	return b.link("AddLink", subject, predicate, object, b.graphOr(nil),
		func(l query.Link) query.Query { return query.AddLink(l) })
}

func (b *Builder) AddedLink(subject, predicate, object any, graph ...query.GraphType) *Builder {
	return b.link("AddedLink", subject, predicate, object, b.graphOr(graph),
		func(l query.Link) query.Query { return query.AddedLink(l) })
}

func (b *Builder) DeleteLink(subject, predicate, object any) *Builder {
	return b.link("DeleteLink", subject, predicate, object, b.graphOr(nil),
		func(l query.Link) query.Query { return query.DeleteLink(l) })
}

func (b *Builder) DeletedLink(subject, predicate, object any, graph ...query.GraphType) *Builder {
	return b.link("DeletedLink", subject, predicate, object, b.graphOr(graph),
		func(l query.Link) query.Query { return query.DeletedLink(l) })
}

// Data is [Builder.Triple] with an object that must be data.
func (b *Builder) Data(subject, predicate, object any) *Builder {
	return b.data("Data", subject, predicate, object, b.graphOr(nil),
		func(d query.Data) query.Query { return d })
}

func (b *Builder) AddData(subject, predicate, object any) *Builder {
	return b.data("AddData", subject, predicate, object, b.graphOr(nil),
		func(d query.Data) query.Query { return query.AddData(d) })
}

func (b *Builder) AddedData(subject, predicate, object any, graph ...query.GraphType) *Builder {
	return b.data("AddedData", subject, predicate, object, b.graphOr(graph),
		func(d query.Data) query.Query { return query.AddedData(d) })
}

// ReadDocument binds the document stored under identifier to document.
func (b *Builder) ReadDocument(identifier, document any) *Builder {
	return b.leaf("ReadDocument", func(c *operands) query.Query {
		return query.ReadDocument{
			Identifier: c.node("identifier", identifier),
			Document:   c.value("document", document),
		}
	})
}

// InsertDocument inserts document. When identifier is not nil it is bound to
// the identifier of the new document.
func (b *Builder) InsertDocument(document, identifier any) *Builder {
	return b.leaf("InsertDocument", func(c *operands) query.Query {
		return query.InsertDocument{
			Document:   c.value("document", document),
			Identifier: c.optionalNode("identifier", identifier),
		}
	})
}

// UpdateDocument replaces a document. When identifier is not nil it is bound
// to the identifier of the updated document.
func (b *Builder) UpdateDocument(document, identifier any) *Builder {
	return b.leaf("UpdateDocument", func(c *operands) query.Query {
		return query.UpdateDocument{
			Document:   c.value("document", document),
			Identifier: c.optionalNode("identifier", identifier),
		}
	})
}

func (b *Builder) DeleteDocument(identifier any) *Builder {
	return b.leaf("DeleteDocument", func(c *operands) query.Query {
		return query.DeleteDocument{Identifier: c.node("identifier", identifier)}
	})
}
