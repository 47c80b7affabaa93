package internal

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/require"

	"github.com/rlch/woql/query"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		types []string
		vals  []string
	}{
		{``, nil, nil},
		{`  `, nil, nil},
		{`$Person`, []string{"Variable"}, []string{"$Person"}},
		{`"a b"`, []string{"String"}, []string{`"a b"`}},
		{`-1.5e3`, []string{"Number"}, []string{"-1.5e3"}},
		{`triple(`, []string{"Ident", "Punct"}, []string{"triple", "("}},
		{`[ ] ,`, []string{"Punct", "Punct", "Punct"}, []string{"[", "]", ","}},
		{`@`, []string{"Invalid"}, []string{"@"}},
	}
	names := map[lexer.TokenType]string{}
	for name, typ := range queryLexer.Symbols() {
		names[typ] = name
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require := require.New(t)
			toks, err := tokenize(tt.input)
			require.NoError(err)
			require.Equal(tokenEOF, toks[len(toks)-1].Type)
			var (
				types []string
				vals  []string
			)
			for _, tok := range toks[:len(toks)-1] {
				types = append(types, names[tok.Type])
				vals = append(vals, tok.Value)
			}
			require.Equal(tt.types, types)
			require.Equal(tt.vals, vals)
		})
	}
}

func tripleOf(s, p query.NodeValue, o query.Value) query.Triple {
	return query.Triple{Subject: s, Predicate: p, Object: o, Graph: query.GraphInstance}
}

func TestParseQuery(t *testing.T) {
	var (
		a = query.Variable("A")
		b = query.Variable("B")
		c = query.Variable("C")
	)
	tests := []struct {
		name  string
		input string
		want  query.Query
	}{
		{
			name:  "triple",
			input: `triple($A, "p", $B)`,
			want:  tripleOf(a, query.Node("p"), b),
		},
		{
			name:  "strings that look like IRIs are nodes",
			input: `triple("doc:1", "@schema:name", "Alice")`,
			want:  tripleOf(query.Node("doc:1"), query.Node("@schema:name"), query.String("Alice")),
		},
		{
			name:  "explicit graph",
			input: `triple($A, "p", $B, "schema")`,
			want: query.Triple{
				Subject: a, Predicate: query.Node("p"), Object: b, Graph: query.GraphSchema,
			},
		},
		{
			name:  "vars declarations are discarded",
			input: `vars($A, $B) triple($A, "p", $B)`,
			want:  tripleOf(a, query.Node("p"), b),
		},
		{
			name:  "nested modifiers",
			input: `select([$A], limit(10, start(5, triple($A, "p", $B))))`,
			want: query.Select{
				Variables: []string{"A"},
				Query: query.Limit{Limit: 10, Query: query.Start{
					Start: 5,
					Query: tripleOf(a, query.Node("p"), b),
				}},
			},
		},
		{
			name:  "conjunction and disjunction",
			input: `and(triple($A, "p", $B), or(triple($B, "q", $C), not(true())))`,
			want: query.And{And: []query.Query{
				tripleOf(a, query.Node("p"), b),
				query.Or{Or: []query.Query{
					tripleOf(b, query.Node("q"), c),
					query.Not{Query: query.True{}},
				}},
			}},
		},
		{
			name:  "if without else",
			input: `if(triple($A, "p", $B), eq($A, $C))`,
			want: query.If{
				Test: tripleOf(a, query.Node("p"), b),
				Then: query.Equals{Left: a, Right: c},
				Else: query.True{},
			},
		},
		{
			name:  "order_by",
			input: `order_by([asc($A), desc($B)], triple($A, "p", $B))`,
			want: query.OrderBy{
				Ordering: []query.OrderTemplate{
					{Variable: "A", Order: query.Asc},
					{Variable: "B", Order: query.Desc},
				},
				Query: tripleOf(a, query.Node("p"), b),
			},
		},
		{
			name:  "group_by",
			input: `group_by([$A, $B], [$A], $G, triple($A, "p", $B))`,
			want: query.GroupBy{
				Template: query.List{a, b},
				GroupBy:  []string{"A"},
				Grouped:  query.Variable("G"),
				Query:    tripleOf(a, query.Node("p"), b),
			},
		},
		{
			name:  "eval",
			input: `eval(plus($X, times(2, $Y)), $Z)`,
			want: query.Eval{
				Expression: query.Plus{
					Left:  query.Variable("X"),
					Right: query.Times{Left: query.Float(2), Right: query.Variable("Y")},
				},
				Result: query.Variable("Z"),
			},
		},
		{
			name:  "eval of a bare value",
			input: `eval(3, $Z)`,
			want:  query.Eval{Expression: query.Float(3), Result: query.Variable("Z")},
		},
		{
			name:  "floor and divide",
			input: `eval(floor(divide($X, 2)), $Z)`,
			want: query.Eval{
				Expression: query.Floor{Argument: query.Divide{Left: query.Variable("X"), Right: query.Float(2)}},
				Result:     query.Variable("Z"),
			},
		},
		{
			name:  "path",
			input: `path($A, seq(pred("knows"), star(inv("likes"))), $B, $P)`,
			want: query.Path{
				Subject: a,
				Pattern: query.PathSequence{Sequence: []query.PathPattern{
					query.PathPredicate{Predicate: "knows"},
					query.PathStar{Star: query.InversePathPredicate{Predicate: "likes"}},
				}},
				Object: b,
				Path:   query.Variable("P"),
			},
		},
		{
			name:  "path keywords shared with arithmetic",
			input: `path($A, or(times(pred("p"), 1, 3), plus(pred("q"))), $B)`,
			want: query.Path{
				Subject: a,
				Pattern: query.PathOr{Or: []query.PathPattern{
					query.PathTimes{Times: query.PathPredicate{Predicate: "p"}, From: 1, To: 3},
					query.PathPlus{Plus: query.PathPredicate{Predicate: "q"}},
				}},
				Object: b,
			},
		},
		{
			name:  "camelCase call names",
			input: `readDocument("doc:1", $D)`,
			want:  query.ReadDocument{Identifier: query.Node("doc:1"), Document: query.Variable("D")},
		},
		{
			name:  "empty brackets are an empty list",
			input: `eq($A, [])`,
			want:  query.Equals{Left: a, Right: query.List{}},
		},
		{
			name:  "bare type names are nodes",
			input: `isa($A, "Person")`,
			want:  query.IsA{Element: a, Type: query.Node("Person")},
		},
		{
			name:  "regexp",
			input: `regexp($S, "^a.*", $M)`,
			want: query.Regexp{
				Pattern: query.String("^a.*"),
				String:  query.Variable("S"),
				Result:  query.Variable("M"),
			},
		},
		{
			name:  "string functions over data lists",
			input: `join(["a", $B], ",", $R)`,
			want: query.Join{
				List:      query.DataList{query.String("a"), b},
				Separator: query.String(","),
				Result:    query.Variable("R"),
			},
		},
		{
			name:  "literals",
			input: `eq($A, [true, false, 1.5, "x"])`,
			want: query.Equals{Left: a, Right: query.List{
				query.Bool(true), query.Bool(false), query.Float(1.5), query.String("x"),
			}},
		},
		{
			name:  "from",
			input: `from("schema", triple($A, "p", $B))`,
			want:  query.From{Graph: "schema", Query: tripleOf(a, query.Node("p"), b)},
		},
		{
			name:  "count",
			input: `count(triple($A, "p", $B), $N)`,
			want:  query.Count{Query: tripleOf(a, query.Node("p"), b), Count: query.Variable("N")},
		},
		{
			name:  "insert_document without identifier",
			input: `insert_document($Doc)`,
			want:  query.InsertDocument{Document: query.Variable("Doc")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			q, err := ParseQuery(tt.input, 0)
			require.NoError(err)
			require.Equal(tt.want, q)
		})
	}
}

func TestParseQueryErrors(t *testing.T) {
	t.Run("trailing input reports the offset of the first unconsumed token", func(t *testing.T) {
		require := require.New(t)
		src := `triple($A,"p",$B) extra  `
		_, err := ParseQuery(src, 0)
		var pe *ParseError
		require.ErrorAs(err, &pe)
		require.Equal(KindTrailingInput, pe.Kind)
		require.Equal(strings.Index(src, "extra"), pe.Offset)
		require.Equal("extra", pe.Remainder)
		require.ErrorIs(err, ErrParse)
	})

	t.Run("a second query is trailing input", func(t *testing.T) {
		require := require.New(t)
		src := "true()\n  true()"
		_, err := ParseQuery(src, 0)
		var pe *ParseError
		require.ErrorAs(err, &pe)
		require.Equal(KindTrailingInput, pe.Kind)
		require.Equal(strings.LastIndex(src, "true"), pe.Offset)
	})

	tests := []struct {
		name     string
		input    string
		message  string
		expected []string
		got      string
	}{
		{
			name:    "empty input",
			input:   ``,
			message: "unexpected token",
			got:     "end of input",
		},
		{
			name:     "unterminated call",
			input:    `triple($A, "p"`,
			message:  "unexpected token",
			expected: []string{`","`, `")"`},
			got:      "end of input",
		},
		{
			name:    "unknown function",
			input:   `frobnicate($A)`,
			message: `unknown query function "frobnicate"`,
		},
		{
			name:    "too many arguments",
			input:   `not(true(), true())`,
			message: "not expects 1 argument, got 2",
		},
		{
			name:    "too few arguments",
			input:   `triple($A, "p")`,
			message: "triple expects 3 to 4 arguments, got 2",
		},
		{
			name:     "literal subject",
			input:    `triple(1, "p", $B)`,
			message:  "triple: argument 1",
			expected: []string{"variable or node"},
			got:      "Data",
		},
		{
			name:     "fractional limit",
			input:    `limit(1.5, true())`,
			message:  "limit: argument 1",
			expected: []string{"non-negative whole number"},
		},
		{
			name:     "negative start",
			input:    `start(-1, true())`,
			message:  "start: argument 1",
			expected: []string{"non-negative whole number"},
		},
		{
			name:     "unknown graph",
			input:    `triple($A, "p", $B, "inference")`,
			message:  "triple: argument 4",
			expected: []string{`"instance" or "schema"`},
		},
		{
			name:    "arithmetic arity",
			input:   `eval(floor(1, 2), $X)`,
			message: "floor expects 1 operands, got 2",
		},
		{
			name:     "query where a value belongs",
			input:    `eq(true(), $A)`,
			message:  "eq: argument 1",
			expected: []string{"value"},
			got:      "query",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			_, err := ParseQuery(tt.input, 0)
			var pe *ParseError
			require.ErrorAs(err, &pe)
			require.Equal(KindGrammar, pe.Kind)
			require.ErrorIs(err, ErrParse)

			var se *SyntaxError
			require.ErrorAs(err, &se)
			require.Equal(tt.message, se.Message)
			if tt.expected != nil {
				require.Equal(tt.expected, se.Expected)
			}
			if tt.got != "" {
				require.Equal(tt.got, se.Got)
			}
		})
	}

	t.Run("nesting depth is bounded", func(t *testing.T) {
		require := require.New(t)
		src := strings.Repeat("not(", 20) + "true()" + strings.Repeat(")", 20)
		_, err := ParseQuery(src, 32)
		require.NoError(err)

		_, err = ParseQuery(src, 10)
		var se *SyntaxError
		require.ErrorAs(err, &se)
		require.Contains(se.Message, "maximum depth of 10")
	})

	t.Run("invalid characters are reported in place", func(t *testing.T) {
		require := require.New(t)
		src := `triple($A, ?, $B)`
		_, err := ParseQuery(src, 0)
		var pe *ParseError
		require.ErrorAs(err, &pe)
		require.Equal(strings.Index(src, "?"), pe.Offset)
		require.True(errors.Is(err, ErrParse))
	})
}

func TestWholeNumber(t *testing.T) {
	require := require.New(t)
	n, err := wholeNumber(query.Float(10))
	require.NoError(err)
	require.Equal(uint64(10), n)

	n, err = wholeNumber(query.Uint(7))
	require.NoError(err)
	require.Equal(uint64(7), n)

	_, err = wholeNumber(query.Float(2.5))
	require.Error(err)
	_, err = wholeNumber(query.Float(-1))
	require.Error(err)
}
