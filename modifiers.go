package woql

import (
	"github.com/rlch/woql/internal"
	"github.com/rlch/woql/query"
)

// Limit keeps at most n solutions of the current query.
func (b *Builder) Limit(n uint64) *Builder {
	return b.wrap("Limit", func(q query.Query) query.Query { return query.Limit{Limit: n, Query: q} })
}

// Start skips the first n solutions of the current query.
func (b *Builder) Start(n uint64) *Builder {
	return b.wrap("Start", func(q query.Query) query.Query { return query.Start{Start: n, Query: q} })
}

// Select projects the current query onto the named variables. Names may carry
// the "v:" prefix.
func (b *Builder) Select(variables ...string) *Builder {
	names := internal.VariableNames(variables)
	return b.wrap("Select", func(q query.Query) query.Query {
		return query.Select{Variables: names, Query: q}
	})
}

// Distinct drops solutions that repeat the bindings of the named variables.
func (b *Builder) Distinct(variables ...string) *Builder {
	names := internal.VariableNames(variables)
	return b.wrap("Distinct", func(q query.Query) query.Query {
		return query.Distinct{Variables: names, Query: q}
	})
}

// Using runs the current query against another collection, e.g.
// "admin/people" or "admin/people/local/branch/dev".
func (b *Builder) Using(collection string) *Builder {
	return b.wrap("Using", func(q query.Query) query.Query {
		return query.Using{Collection: collection, Query: q}
	})
}

// From reads the current query from graph.
func (b *Builder) From(graph string) *Builder {
	return b.wrap("From", func(q query.Query) query.Query { return query.From{Graph: graph, Query: q} })
}

// Into writes the current query into graph.
func (b *Builder) Into(graph string) *Builder {
	return b.wrap("Into", func(q query.Query) query.Query { return query.Into{Graph: graph, Query: q} })
}

// Not negates the current query.
func (b *Builder) Not() *Builder {
	return b.wrap("Not", func(q query.Query) query.Query { return query.Not{Query: q} })
}

// Opt makes the current query optional: the chain succeeds whether or not it
// matches.
func (b *Builder) Opt() *Builder {
	return b.wrap("Opt", func(q query.Query) query.Query { return query.Optional{Query: q} })
}

// Optional is an alias for [Builder.Opt].
func (b *Builder) Optional() *Builder { return b.Opt() }

// Once keeps only the first solution of the current query.
func (b *Builder) Once() *Builder {
	return b.wrap("Once", func(q query.Query) query.Query { return query.Once{Query: q} })
}

// Immediately performs the side effects of the current query eagerly.
func (b *Builder) Immediately() *Builder {
	return b.wrap("Immediately", func(q query.Query) query.Query { return query.Immediately{Query: q} })
}

func (b *Builder) Pin() *Builder {
	return b.wrap("Pin", func(q query.Query) query.Query { return query.Pin{Query: q} })
}

// Count binds the number of solutions of the current query to count.
func (b *Builder) Count(count any) *Builder {
	return b.wrapWith("Count", func(c *operands, q query.Query) query.Query {
		return query.Count{Query: q, Count: c.data("count", count)}
	})
}

// GroupBy collects, for each distinct binding of groupBy, the list of
// template instances produced by the current query and binds it to grouped.
func (b *Builder) GroupBy(template any, groupBy []string, grouped any) *Builder {
	names := internal.VariableNames(groupBy)
	return b.wrapWith("GroupBy", func(c *operands, q query.Query) query.Query {
		return query.GroupBy{
			Template: c.value("template", template),
			GroupBy:  names,
			Grouped:  c.value("grouped", grouped),
			Query:    q,
		}
	})
}

// OrderBy sorts the solutions of the current query.
func (b *Builder) OrderBy(ordering ...query.OrderTemplate) *Builder {
	templates := make([]query.OrderTemplate, len(ordering))
	for i, o := range ordering {
		o.Variable = internal.VariableNames([]string{o.Variable})[0]
		templates[i] = o
	}
	return b.wrap("OrderBy", func(q query.Query) query.Query {
		return query.OrderBy{Ordering: templates, Query: q}
	})
}

// IfThenElse runs then for the solutions of test and els when test has none.
func IfThenElse(test, then, els *Builder) *Builder {
	b := &Builder{cfg: test.config(), scope: internal.NewScope()}
	return b.conditional("IfThenElse", test, then, els)
}

// When runs then for the solutions of test and succeeds without bindings when
// test has none.
func When(test, then *Builder) *Builder {
	b := &Builder{cfg: test.config(), scope: internal.NewScope()}
	return b.conditional("When", test, then, nil)
}

func (b *Builder) conditional(call string, test, then, els *Builder) *Builder {
	branches := [3]query.Query{2: query.True{}}
	for i, branch := range [...]struct {
		name string
		b    *Builder
	}{{"test", test}, {"then", then}, {"else", els}} {
		if branch.b == nil && i == 2 {
			continue
		}
		q, err := branch.b.state().Collapse(call + "." + branch.name)
		if err != nil {
			return b.fail(err)
		}
		branches[i] = q
	}
	return b.with(internal.NewScope(query.If{Test: branches[0], Then: branches[1], Else: branches[2]}))
}
