// Package tests checks that queries written with the builder and with the
// call syntax produce the same tree.
package tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rlch/woql"
	"github.com/rlch/woql/query"
)

// check finalizes b, parses src and requires both to equal want.
func check(t *testing.T, b *woql.Builder, src string, want query.Query) {
	t.Helper()
	built, err := b.Finalize()
	require.NoError(t, err)
	require.Equal(t, want, built, "builder")

	parsed, err := woql.Parse(src)
	require.NoError(t, err)
	require.Equal(t, want, parsed, "parser")
}

var (
	person = query.Variable("Person")
	name   = query.Variable("Name")
	age    = query.Variable("Age")
)

func instance(s, p query.NodeValue, o query.Value) query.Triple {
	return query.Triple{Subject: s, Predicate: p, Object: o, Graph: query.GraphInstance}
}
