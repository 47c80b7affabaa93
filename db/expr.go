package db

import (
	"fmt"

	"github.com/rlch/woql/query"
)

// Node references a graph node by IRI or prefixed name.
func Node(iri string) query.Node { return query.Node(iri) }

// String returns a string literal. Plain Go strings passed to the builder are
// read as nodes, so data that happens to be text must go through String.
func String(s string) query.Literal { return query.String(s) }

// Lit converts v into a literal the way the builder does, panicking on types
// that have no literal form.
func Lit(v any) query.Literal {
	l, err := query.LiteralOf(v)
	if err != nil {
		panic(fmt.Errorf("db.Lit: %w", err))
	}
	return l
}

// Field pairs a dictionary field name with its value.
func Field(name string, value query.Value) query.Field {
	return query.Field{Name: name, Value: value}
}

// Dict builds a dictionary template, e.g. for the template of a group_by:
//
//	Dict(Field("name", Var("Name")), Field("age", Var("Age")))
func Dict(fields ...query.Field) query.Dictionary {
	return query.Dictionary{Fields: fields}
}

// Asc orders solutions by the variable called name, smallest first.
func Asc(name string) query.OrderTemplate {
	return query.OrderTemplate{Variable: Var(name).Name(), Order: query.Asc}
}

// Desc orders solutions by the variable called name, largest first.
func Desc(name string) query.OrderTemplate {
	return query.OrderTemplate{Variable: Var(name).Name(), Order: query.Desc}
}
