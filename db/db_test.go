package db

import (
	"strings"
	"testing"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/require"

	"github.com/rlch/woql/query"
)

func TestVar(t *testing.T) {
	require := require.New(t)
	require.Equal(query.Variable("Name"), Var("v:Name"))
	require.Equal(query.Variable("Name"), Var("Name"))
	require.Equal([]query.Variable{"A", "B"}, Vars("v:A", "B"))
}

func TestFresh(t *testing.T) {
	require := require.New(t)
	a, b := Fresh("x"), Fresh("x")
	require.NotEqual(a, b)
	require.True(strings.HasPrefix(a.Name(), "x_"))
	require.Len(a.Name(), len("x_")+26)
}

func TestLit(t *testing.T) {
	require := require.New(t)
	require.Equal(query.Int(3), Lit(3))
	require.Equal(query.Uint(3), Lit(uint16(3)))
	require.Equal(query.String("3"), Lit("3"))
	require.Panics(func() { Lit(struct{}{}) })
}

func TestOrdering(t *testing.T) {
	require := require.New(t)
	require.Equal(query.OrderTemplate{Variable: "Age", Order: query.Desc}, Desc("v:Age"))
	require.Equal(query.OrderTemplate{Variable: "Name", Order: query.Asc}, Asc("Name"))
}

func TestTypeName(t *testing.T) {
	require := require.New(t)
	require.Equal(query.Node("@schema:BlogPost"), TypeName("blog_post"))
	require.Equal(query.Node("@schema:Person"), TypeName("Person"))
}

func TestPathPatterns(t *testing.T) {
	require := require.New(t)
	p := Seq(Pred("knows"), Or(PathStar(Inv("likes")), PathTimes(Pred("p"), 1, 2)), PathPlus(Pred("q")))
	require.Equal(query.PathSequence{Sequence: []query.PathPattern{
		query.PathPredicate{Predicate: "knows"},
		query.PathOr{Or: []query.PathPattern{
			query.PathStar{Star: query.InversePathPredicate{Predicate: "likes"}},
			query.PathTimes{Times: query.PathPredicate{Predicate: "p"}, From: 1, To: 2},
		}},
		query.PathPlus{Plus: query.PathPredicate{Predicate: "q"}},
	}}, p)
}

func TestPathPatternsCopyOperands(t *testing.T) {
	require := require.New(t)
	steps := []query.PathPattern{Pred("a"), Pred("b")}
	seq, or := Seq(steps...), Or(steps...)
	steps[0] = Pred("z")
	require.Equal(Pred("a"), seq.(query.PathSequence).Sequence[0])
	require.Equal(Pred("a"), or.(query.PathOr).Or[0])
}

func TestComparisons(t *testing.T) {
	age := Var("Age")
	tests := []struct {
		name string
		op   string
		want query.Query
	}{
		{"eq", "=", query.Equals{Left: age, Right: query.Int(18)}},
		{"ne", "!=", query.Not{Query: query.Equals{Left: age, Right: query.Int(18)}}},
		{"lt", "<", query.Less{Left: age, Right: query.Int(18)}},
		{"gt", ">", query.Greater{Left: age, Right: query.Int(18)}},
		{"le", "<=", query.Or{Or: []query.Query{
			query.Less{Left: age, Right: query.Int(18)},
			query.Equals{Left: age, Right: query.Int(18)},
		}}},
		{"ge", ">=", query.Or{Or: []query.Query{
			query.Greater{Left: age, Right: query.Int(18)},
			query.Equals{Left: age, Right: query.Int(18)},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			b, err := Compare("v:Age", tt.op, 18)
			require.NoError(err)
			q, err := b.Finalize()
			require.NoError(err)
			require.Equal(tt.want, q)
		})
	}

	t.Run("unknown operator", func(t *testing.T) {
		_, err := Compare("v:Age", "<>", 18)
		require.ErrorContains(t, err, `"<>"`)
	})
}

func TestInBetween(t *testing.T) {
	require := require.New(t)
	q, err := InBetween("v:X", 1, 10).Finalize()
	require.NoError(err)

	and, ok := q.(query.And)
	require.True(ok)
	require.Len(and.And, 2)
	require.IsType(query.Or{}, and.And[0])
	require.IsType(query.Or{}, and.And[1])
}

func TestToday(t *testing.T) {
	require := require.New(t)
	before := time.Now()
	today := Today()
	require.Equal(query.KindDateTime, today.Kind())

	at, err := time.Parse(time.RFC3339Nano, today.Lexical())
	require.NoError(err)
	require.WithinDuration(before, at, time.Minute)

	q, err := TodayInBetween(
		query.DateTime(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)),
		query.DateTime(time.Date(3000, time.January, 1, 0, 0, 0, 0, time.UTC)),
	).Finalize()
	require.NoError(err)
	require.IsType(query.And{}, q)
}

func TestStringMatching(t *testing.T) {
	tests := []struct {
		name    string
		b       func() (query.Query, error)
		pattern string
		matches []string
		misses  []string
	}{
		{
			name:    "starts with",
			b:       StartsWith("v:Name", "Dr. J").Finalize,
			pattern: `^Dr\. J`,
			matches: []string{"Dr. Jones"},
			misses:  []string{"DrX Jones", "The Dr. J"},
		},
		{
			name:    "ends with",
			b:       EndsWith("v:File", "(1).txt").Finalize,
			pattern: `\(1\)\.txt$`,
			matches: []string{"notes (1).txt"},
			misses:  []string{"notes (1).txt.bak", "notes 1.txt"},
		},
		{
			name:    "contains",
			b:       Contains("v:Tag", "#go+").Finalize,
			pattern: `#go\+`,
			matches: []string{"x #go+ y"},
			misses:  []string{"#goo"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			q, err := tt.b()
			require.NoError(err)

			re, ok := q.(query.Regexp)
			require.True(ok)
			require.Equal(query.String(tt.pattern), re.Pattern)
			require.IsType(query.Variable(""), re.Result)

			compiled := regexp2.MustCompile(tt.pattern, regexp2.RE2)
			for _, s := range tt.matches {
				ok, err := compiled.MatchString(s)
				require.NoError(err)
				require.True(ok, s)
			}
			for _, s := range tt.misses {
				ok, err := compiled.MatchString(s)
				require.NoError(err)
				require.False(ok, s)
			}
		})
	}
}
