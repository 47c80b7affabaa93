package db

import (
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/rlch/woql/query"
)

// Var returns the variable called name. A leading "v:" is dropped, so Var
// accepts the same spelling the builder does.
func Var(name string) query.Variable {
	return query.Variable(strings.TrimPrefix(name, "v:"))
}

// Vars is [Var] for several names.
func Vars(names ...string) []query.Variable {
	out := make([]query.Variable, len(names))
	for i, n := range names {
		out[i] = Var(n)
	}
	return out
}

// Fresh returns a variable that no hand-written query will collide with,
// e.g. Fresh("match") -> match_01HF8Z6Q9R4V1W3YB2K7C5N0TD.
func Fresh(prefix string) query.Variable {
	return query.Variable(prefix + "_" + ulid.Make().String())
}
