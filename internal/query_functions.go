package internal

import (
	"fmt"
	"strconv"

	"github.com/rlch/woql/query"
)

const unbounded = -1

type queryFunc func(c *call) (query.Query, error)

// queryFunctions maps each snake_case call name to the function that checks
// its arguments and builds the query node.
var queryFunctions map[string]queryFunc

func init() {
	queryFunctions = map[string]queryFunc{
		"triple":         tripleFunc(func(t query.Triple) query.Query { return t }),
		"add_triple":     tripleFunc(func(t query.Triple) query.Query { return query.AddTriple(t) }),
		"added_triple":   tripleFunc(func(t query.Triple) query.Query { return query.AddedTriple(t) }),
		"delete_triple":  tripleFunc(func(t query.Triple) query.Query { return query.DeleteTriple(t) }),
		"deleted_triple": tripleFunc(func(t query.Triple) query.Query { return query.DeletedTriple(t) }),
		"link":           linkFunc(func(l query.Link) query.Query { return l }),
		"add_link":       linkFunc(func(l query.Link) query.Query { return query.AddLink(l) }),
		"added_link":     linkFunc(func(l query.Link) query.Query { return query.AddedLink(l) }),
		"delete_link":    linkFunc(func(l query.Link) query.Query { return query.DeleteLink(l) }),
		"deleted_link":   linkFunc(func(l query.Link) query.Query { return query.DeletedLink(l) }),
		"data":           dataFunc(func(d query.Data) query.Query { return d }),
		"add_data":       dataFunc(func(d query.Data) query.Query { return query.AddData(d) }),
		"added_data":     dataFunc(func(d query.Data) query.Query { return query.AddedData(d) }),

		"and": func(c *call) (query.Query, error) {
			qs, err := c.queries()
			if err != nil {
				return nil, err
			}
			return query.And{And: qs}, nil
		},
		"or": func(c *call) (query.Query, error) {
			qs, err := c.queries()
			if err != nil {
				return nil, err
			}
			return query.Or{Or: qs}, nil
		},
		"not":         wrapFunc(func(q query.Query) query.Query { return query.Not{Query: q} }),
		"opt":         wrapFunc(func(q query.Query) query.Query { return query.Optional{Query: q} }),
		"optional":    wrapFunc(func(q query.Query) query.Query { return query.Optional{Query: q} }),
		"once":        wrapFunc(func(q query.Query) query.Query { return query.Once{Query: q} }),
		"immediately": wrapFunc(func(q query.Query) query.Query { return query.Immediately{Query: q} }),
		"pin":         wrapFunc(func(q query.Query) query.Query { return query.Pin{Query: q} }),
		"true": func(c *call) (query.Query, error) {
			if err := c.arity(0, 0); err != nil {
				return nil, err
			}
			return query.True{}, nil
		},
		"if": func(c *call) (query.Query, error) {
			if err := c.arity(2, 3); err != nil {
				return nil, err
			}
			test, err := c.query(0)
			if err != nil {
				return nil, err
			}
			then, err := c.query(1)
			if err != nil {
				return nil, err
			}
			var els query.Query = query.True{}
			if len(c.args) == 3 {
				if els, err = c.query(2); err != nil {
					return nil, err
				}
			}
			return query.If{Test: test, Then: then, Else: els}, nil
		},
		"when": func(c *call) (query.Query, error) {
			if err := c.arity(2, 2); err != nil {
				return nil, err
			}
			test, err := c.query(0)
			if err != nil {
				return nil, err
			}
			then, err := c.query(1)
			if err != nil {
				return nil, err
			}
			return query.If{Test: test, Then: then, Else: query.True{}}, nil
		},

		"select": func(c *call) (query.Query, error) {
			vars, q, err := c.variablesAndQuery()
			if err != nil {
				return nil, err
			}
			return query.Select{Variables: vars, Query: q}, nil
		},
		"distinct": func(c *call) (query.Query, error) {
			vars, q, err := c.variablesAndQuery()
			if err != nil {
				return nil, err
			}
			return query.Distinct{Variables: vars, Query: q}, nil
		},
		"limit": func(c *call) (query.Query, error) {
			n, q, err := c.countAndQuery()
			if err != nil {
				return nil, err
			}
			return query.Limit{Limit: n, Query: q}, nil
		},
		"start": func(c *call) (query.Query, error) {
			n, q, err := c.countAndQuery()
			if err != nil {
				return nil, err
			}
			return query.Start{Start: n, Query: q}, nil
		},
		"using": func(c *call) (query.Query, error) {
			s, q, err := c.textAndQuery()
			if err != nil {
				return nil, err
			}
			return query.Using{Collection: s, Query: q}, nil
		},
		"from": func(c *call) (query.Query, error) {
			s, q, err := c.textAndQuery()
			if err != nil {
				return nil, err
			}
			return query.From{Graph: s, Query: q}, nil
		},
		"into": func(c *call) (query.Query, error) {
			s, q, err := c.textAndQuery()
			if err != nil {
				return nil, err
			}
			return query.Into{Graph: s, Query: q}, nil
		},
		"order_by": func(c *call) (query.Query, error) {
			if err := c.arity(2, 2); err != nil {
				return nil, err
			}
			ordering, err := c.ordering(0)
			if err != nil {
				return nil, err
			}
			q, err := c.query(1)
			if err != nil {
				return nil, err
			}
			return query.OrderBy{Ordering: ordering, Query: q}, nil
		},
		"group_by": func(c *call) (query.Query, error) {
			if err := c.arity(4, 4); err != nil {
				return nil, err
			}
			var (
				g   query.GroupBy
				err error
			)
			if g.Template, err = c.value(0); err != nil {
				return nil, err
			}
			if g.GroupBy, err = c.variables(1); err != nil {
				return nil, err
			}
			if g.Grouped, err = c.value(2); err != nil {
				return nil, err
			}
			if g.Query, err = c.query(3); err != nil {
				return nil, err
			}
			return g, nil
		},
		"count": func(c *call) (query.Query, error) {
			if err := c.arity(2, 2); err != nil {
				return nil, err
			}
			q, err := c.query(0)
			if err != nil {
				return nil, err
			}
			n, err := c.dataValue(1)
			if err != nil {
				return nil, err
			}
			return query.Count{Query: q, Count: n}, nil
		},

		"eq": func(c *call) (query.Query, error) {
			if err := c.arity(2, 2); err != nil {
				return nil, err
			}
			l, err := c.value(0)
			if err != nil {
				return nil, err
			}
			r, err := c.value(1)
			if err != nil {
				return nil, err
			}
			return query.Equals{Left: l, Right: r}, nil
		},
		"greater": dataFunc2(func(l, r query.DataValue) query.Query { return query.Greater{Left: l, Right: r} }),
		"less":    dataFunc2(func(l, r query.DataValue) query.Query { return query.Less{Left: l, Right: r} }),
		"isa": func(c *call) (query.Query, error) {
			if err := c.arity(2, 2); err != nil {
				return nil, err
			}
			e, err := c.nodeValue(0)
			if err != nil {
				return nil, err
			}
			t, err := c.nodeOrName(1)
			if err != nil {
				return nil, err
			}
			return query.IsA{Element: e, Type: t}, nil
		},
		"subsumption": func(c *call) (query.Query, error) {
			if err := c.arity(2, 2); err != nil {
				return nil, err
			}
			parent, err := c.nodeValue(0)
			if err != nil {
				return nil, err
			}
			child, err := c.nodeValue(1)
			if err != nil {
				return nil, err
			}
			return query.Subsumption{Parent: parent, Child: child}, nil
		},
		"type_of": func(c *call) (query.Query, error) {
			if err := c.arity(2, 2); err != nil {
				return nil, err
			}
			v, err := c.value(0)
			if err != nil {
				return nil, err
			}
			t, err := c.nodeValue(1)
			if err != nil {
				return nil, err
			}
			return query.TypeOf{Value: v, Type: t}, nil
		},
		"typecast": func(c *call) (query.Query, error) {
			if err := c.arity(3, 3); err != nil {
				return nil, err
			}
			v, err := c.value(0)
			if err != nil {
				return nil, err
			}
			t, err := c.nodeOrName(1)
			if err != nil {
				return nil, err
			}
			r, err := c.value(2)
			if err != nil {
				return nil, err
			}
			return query.Typecast{Value: v, Type: t, Result: r}, nil
		},

		"eval": func(c *call) (query.Query, error) {
			if err := c.arity(2, 2); err != nil {
				return nil, err
			}
			e, err := c.expression(0)
			if err != nil {
				return nil, err
			}
			r, err := c.arithmeticValue(1)
			if err != nil {
				return nil, err
			}
			return query.Eval{Expression: e, Result: r}, nil
		},
		"path": func(c *call) (query.Query, error) {
			if err := c.arity(3, 4); err != nil {
				return nil, err
			}
			var (
				q   query.Path
				err error
			)
			if q.Subject, err = c.value(0); err != nil {
				return nil, err
			}
			if q.Pattern, err = c.path(1); err != nil {
				return nil, err
			}
			if q.Object, err = c.value(2); err != nil {
				return nil, err
			}
			if len(c.args) == 4 {
				if q.Path, err = c.value(3); err != nil {
					return nil, err
				}
			}
			return q, nil
		},

		"read_document": func(c *call) (query.Query, error) {
			if err := c.arity(2, 2); err != nil {
				return nil, err
			}
			id, err := c.nodeValue(0)
			if err != nil {
				return nil, err
			}
			doc, err := c.value(1)
			if err != nil {
				return nil, err
			}
			return query.ReadDocument{Identifier: id, Document: doc}, nil
		},
		"insert_document": func(c *call) (query.Query, error) {
			doc, id, err := c.documentAndIdentifier()
			if err != nil {
				return nil, err
			}
			return query.InsertDocument{Document: doc, Identifier: id}, nil
		},
		"update_document": func(c *call) (query.Query, error) {
			doc, id, err := c.documentAndIdentifier()
			if err != nil {
				return nil, err
			}
			return query.UpdateDocument{Document: doc, Identifier: id}, nil
		},
		"delete_document": func(c *call) (query.Query, error) {
			if err := c.arity(1, 1); err != nil {
				return nil, err
			}
			id, err := c.nodeValue(0)
			if err != nil {
				return nil, err
			}
			return query.DeleteDocument{Identifier: id}, nil
		},

		"sum":    dataFunc2(func(l, r query.DataValue) query.Query { return query.Sum{List: l, Result: r} }),
		"length": dataFunc2(func(l, r query.DataValue) query.Query { return query.Length{List: l, Length: r} }),
		"member": dataFunc2(func(m, l query.DataValue) query.Query { return query.Member{Member: m, List: l} }),
		"concat": dataFunc2(func(l, r query.DataValue) query.Query { return query.Concatenate{List: l, Result: r} }),
		"concatenate": dataFunc2(func(l, r query.DataValue) query.Query {
			return query.Concatenate{List: l, Result: r}
		}),
		"trim":  dataFunc2(func(u, t query.DataValue) query.Query { return query.Trim{Untrimmed: u, Trimmed: t} }),
		"upper": dataFunc2(func(m, u query.DataValue) query.Query { return query.Upper{Mixed: m, Upper: u} }),
		"lower": dataFunc2(func(m, l query.DataValue) query.Query { return query.Lower{Mixed: m, Lower: l} }),
		"dot": dataFuncN(3, func(v []query.DataValue) query.Query {
			return query.Dot{Document: v[0], Field: v[1], Value: v[2]}
		}),
		"split": dataFuncN(3, func(v []query.DataValue) query.Query {
			return query.Split{String: v[0], Pattern: v[1], List: v[2]}
		}),
		"join": dataFuncN(3, func(v []query.DataValue) query.Query {
			return query.Join{List: v[0], Separator: v[1], Result: v[2]}
		}),
		"like": dataFuncN(3, func(v []query.DataValue) query.Query {
			return query.Like{Left: v[0], Right: v[1], Similarity: v[2]}
		}),
		"pad": dataFuncN(4, func(v []query.DataValue) query.Query {
			return query.Pad{String: v[0], Char: v[1], Times: v[2], Result: v[3]}
		}),
		"substring": dataFuncN(5, func(v []query.DataValue) query.Query {
			return query.Substring{String: v[0], Before: v[1], Length: v[2], After: v[3], Substring: v[4]}
		}),
		"regexp": func(c *call) (query.Query, error) {
			if err := c.arity(2, 3); err != nil {
				return nil, err
			}
			s, err := c.dataValue(0)
			if err != nil {
				return nil, err
			}
			pattern, err := c.dataValue(1)
			if err != nil {
				return nil, err
			}
			re := query.Regexp{Pattern: pattern, String: s}
			if len(c.args) == 3 {
				if re.Result, err = c.dataValue(2); err != nil {
					return nil, err
				}
			}
			return re, nil
		},

		"triple_count": func(c *call) (query.Query, error) {
			resource, n, err := c.resourceAndData()
			if err != nil {
				return nil, err
			}
			return query.TripleCount{Resource: resource, Count: n}, nil
		},
		"size": func(c *call) (query.Query, error) {
			resource, n, err := c.resourceAndData()
			if err != nil {
				return nil, err
			}
			return query.Size{Resource: resource, Size: n}, nil
		},
	}
}

func tripleFunc(build func(query.Triple) query.Query) queryFunc {
	return func(c *call) (query.Query, error) {
		if err := c.arity(3, 4); err != nil {
			return nil, err
		}
		var (
			t   = query.Triple{Graph: query.GraphInstance}
			err error
		)
		if t.Subject, t.Predicate, err = c.subjectPredicate(); err != nil {
			return nil, err
		}
		if t.Object, err = c.value(2); err != nil {
			return nil, err
		}
		if t.Graph, err = c.optionalGraph(3); err != nil {
			return nil, err
		}
		return build(t), nil
	}
}

func linkFunc(build func(query.Link) query.Query) queryFunc {
	return func(c *call) (query.Query, error) {
		if err := c.arity(3, 4); err != nil {
			return nil, err
		}
		var (
			l   query.Link
			err error
		)
		if l.Subject, l.Predicate, err = c.subjectPredicate(); err != nil {
			return nil, err
		}
		if l.Object, err = c.nodeValue(2); err != nil {
			return nil, err
		}
		if l.Graph, err = c.optionalGraph(3); err != nil {
			return nil, err
		}
		return build(l), nil
	}
}

func dataFunc(build func(query.Data) query.Query) queryFunc {
	return func(c *call) (query.Query, error) {
		if err := c.arity(3, 4); err != nil {
			return nil, err
		}
		var (
			d   query.Data
			err error
		)
		if d.Subject, d.Predicate, err = c.subjectPredicate(); err != nil {
			return nil, err
		}
		if d.Object, err = c.dataValue(2); err != nil {
			return nil, err
		}
		if d.Graph, err = c.optionalGraph(3); err != nil {
			return nil, err
		}
		return build(d), nil
	}
}

func wrapFunc(wrap func(query.Query) query.Query) queryFunc {
	return func(c *call) (query.Query, error) {
		if err := c.arity(1, 1); err != nil {
			return nil, err
		}
		q, err := c.query(0)
		if err != nil {
			return nil, err
		}
		return wrap(q), nil
	}
}

func dataFunc2(build func(a, b query.DataValue) query.Query) queryFunc {
	return dataFuncN(2, func(v []query.DataValue) query.Query { return build(v[0], v[1]) })
}

func dataFuncN(n int, build func([]query.DataValue) query.Query) queryFunc {
	return func(c *call) (query.Query, error) {
		if err := c.arity(n, n); err != nil {
			return nil, err
		}
		vs := make([]query.DataValue, n)
		for i := range vs {
			v, err := c.dataValue(i)
			if err != nil {
				return nil, err
			}
			vs[i] = v
		}
		return build(vs), nil
	}
}

func (c *call) arity(lo, hi int) error {
	n := len(c.args)
	if n >= lo && (hi == unbounded || n <= hi) {
		return nil
	}
	var want string
	switch {
	case lo == hi:
		want = strconv.Itoa(lo)
	case hi == unbounded:
		want = fmt.Sprintf("at least %d", lo)
	default:
		want = fmt.Sprintf("%d to %d", lo, hi)
	}
	noun := "arguments"
	if lo == 1 && hi == 1 {
		noun = "argument"
	}
	return fatalf(c.tok, "%s expects %s %s, got %d", c.name, want, noun, n)
}

func (c *call) mismatch(i int, expected string) error {
	a := c.args[i]
	got := a.kind.String()
	if a.kind == argValue {
		got = query.KindOf(a.value).String()
	}
	return &SyntaxError{
		Pos:      a.tok.Pos,
		Message:  fmt.Sprintf("%s: argument %d", c.name, i+1),
		Expected: []string{expected},
		Got:      got,
		fatal:    true,
	}
}

func (c *call) query(i int) (query.Query, error) {
	if a := c.args[i]; a.kind == argQuery {
		return a.query, nil
	}
	return nil, c.mismatch(i, "query")
}

func (c *call) queries() ([]query.Query, error) {
	qs := make([]query.Query, 0, len(c.args))
	for i := range c.args {
		q, err := c.query(i)
		if err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}
	return qs, nil
}

// value accepts plain values and bracketed lists. An empty [] lexes as an
// empty order template list first and is read back as an empty list here.
func (c *call) value(i int) (query.Value, error) {
	switch a := c.args[i]; a.kind {
	case argValue:
		return a.value, nil
	case argValueList:
		return a.list, nil
	case argOrder:
		if len(a.order) == 0 {
			return query.List{}, nil
		}
	}
	return nil, c.mismatch(i, "value")
}

func (c *call) nodeValue(i int) (query.NodeValue, error) {
	v, err := c.value(i)
	if err != nil {
		return nil, err
	}
	n, err := query.AsNodeValue(v)
	if err != nil {
		return nil, c.mismatch(i, "variable or node")
	}
	return n, nil
}

// nodeOrName is nodeValue that also reads a bare string as a node, for
// predicate and type positions where a name can only mean a node.
func (c *call) nodeOrName(i int) (query.NodeValue, error) {
	if a := c.args[i]; a.kind == argValue {
		if l, ok := a.value.(query.Literal); ok && l.Kind() == query.KindString {
			return query.Node(l.Lexical()), nil
		}
	}
	return c.nodeValue(i)
}

func (c *call) subjectPredicate() (s, p query.NodeValue, err error) {
	if s, err = c.nodeValue(0); err != nil {
		return nil, nil, err
	}
	if p, err = c.nodeOrName(1); err != nil {
		return nil, nil, err
	}
	return s, p, nil
}

func (c *call) dataValue(i int) (query.DataValue, error) {
	v, err := c.value(i)
	if err != nil {
		return nil, err
	}
	d, err := query.AsDataValue(v)
	if err != nil {
		return nil, c.mismatch(i, "variable or data")
	}
	return d, nil
}

func (c *call) arithmeticValue(i int) (query.ArithmeticValue, error) {
	v, err := c.value(i)
	if err != nil {
		return nil, err
	}
	a, err := query.AsArithmeticValue(v)
	if err != nil {
		return nil, c.mismatch(i, "variable or number")
	}
	return a, nil
}

func (c *call) expression(i int) (query.ArithmeticExpression, error) {
	if a := c.args[i]; a.kind == argExpression {
		return a.expr, nil
	}
	if c.args[i].kind != argValue {
		return nil, c.mismatch(i, "arithmetic expression")
	}
	return c.arithmeticValue(i)
}

func (c *call) path(i int) (query.PathPattern, error) {
	if a := c.args[i]; a.kind == argPath {
		return a.path, nil
	}
	return nil, c.mismatch(i, "path pattern")
}

func (c *call) ordering(i int) ([]query.OrderTemplate, error) {
	if a := c.args[i]; a.kind == argOrder {
		return a.order, nil
	}
	return nil, c.mismatch(i, "list of asc($V) or desc($V)")
}

func (c *call) variables(i int) ([]string, error) {
	v, err := c.value(i)
	if err != nil {
		return nil, err
	}
	list, ok := v.(query.List)
	if !ok {
		return nil, c.mismatch(i, "list of variables")
	}
	names := make([]string, 0, len(list))
	for _, item := range list {
		name, ok := item.(query.Variable)
		if !ok {
			return nil, c.mismatch(i, "list of variables")
		}
		names = append(names, name.Name())
	}
	return names, nil
}

// text reads a string or node argument as its raw text.
func (c *call) text(i int) (string, error) {
	v, err := c.value(i)
	if err != nil {
		return "", err
	}
	switch x := v.(type) {
	case query.Node:
		return string(x), nil
	case query.Literal:
		if x.Kind() == query.KindString {
			return x.Lexical(), nil
		}
	}
	return "", c.mismatch(i, "string")
}

func (c *call) optionalGraph(i int) (query.GraphType, error) {
	if i >= len(c.args) {
		return query.GraphInstance, nil
	}
	s, err := c.text(i)
	if err != nil {
		return "", err
	}
	g, ok := query.ParseGraphType(s)
	if !ok {
		return "", c.mismatch(i, `"instance" or "schema"`)
	}
	return g, nil
}

func (c *call) whole(i int) (uint64, error) {
	v, err := c.value(i)
	if err != nil {
		return 0, err
	}
	l, ok := v.(query.Literal)
	if !ok {
		return 0, c.mismatch(i, "non-negative whole number")
	}
	n, err := wholeNumber(l)
	if err != nil {
		return 0, c.mismatch(i, "non-negative whole number")
	}
	return n, nil
}

func (c *call) variablesAndQuery() ([]string, query.Query, error) {
	if err := c.arity(2, 2); err != nil {
		return nil, nil, err
	}
	vars, err := c.variables(0)
	if err != nil {
		return nil, nil, err
	}
	q, err := c.query(1)
	if err != nil {
		return nil, nil, err
	}
	return vars, q, nil
}

func (c *call) countAndQuery() (uint64, query.Query, error) {
	if err := c.arity(2, 2); err != nil {
		return 0, nil, err
	}
	n, err := c.whole(0)
	if err != nil {
		return 0, nil, err
	}
	q, err := c.query(1)
	if err != nil {
		return 0, nil, err
	}
	return n, q, nil
}

func (c *call) textAndQuery() (string, query.Query, error) {
	if err := c.arity(2, 2); err != nil {
		return "", nil, err
	}
	s, err := c.text(0)
	if err != nil {
		return "", nil, err
	}
	q, err := c.query(1)
	if err != nil {
		return "", nil, err
	}
	return s, q, nil
}

func (c *call) documentAndIdentifier() (query.Value, query.NodeValue, error) {
	if err := c.arity(1, 2); err != nil {
		return nil, nil, err
	}
	doc, err := c.value(0)
	if err != nil {
		return nil, nil, err
	}
	if len(c.args) == 1 {
		return doc, nil, nil
	}
	id, err := c.nodeValue(1)
	if err != nil {
		return nil, nil, err
	}
	return doc, id, nil
}

func (c *call) resourceAndData() (string, query.DataValue, error) {
	if err := c.arity(2, 2); err != nil {
		return "", nil, err
	}
	resource, err := c.text(0)
	if err != nil {
		return "", nil, err
	}
	d, err := c.dataValue(1)
	if err != nil {
		return "", nil, err
	}
	return resource, d, nil
}
