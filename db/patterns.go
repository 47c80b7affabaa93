package db

import (
	"slices"

	"github.com/iancoleman/strcase"

	"github.com/rlch/woql/query"
)

// Pred follows predicate forwards.
func Pred(predicate string) query.PathPattern {
	return query.PathPredicate{Predicate: predicate}
}

// Inv follows predicate backwards.
func Inv(predicate string) query.PathPattern {
	return query.InversePathPredicate{Predicate: predicate}
}

// Seq matches each pattern in turn.
func Seq(patterns ...query.PathPattern) query.PathPattern {
	return query.PathSequence{Sequence: slices.Clone(patterns)}
}

// Or matches any one of patterns.
func Or(patterns ...query.PathPattern) query.PathPattern {
	return query.PathOr{Or: slices.Clone(patterns)}
}

func PathStar(p query.PathPattern) query.PathPattern {
	return query.PathStar{Star: p}
}

func PathPlus(p query.PathPattern) query.PathPattern {
	return query.PathPlus{Plus: p}
}

// PathTimes matches p repeated between from and to times, inclusive.
func PathTimes(p query.PathPattern, from, to uint64) query.PathPattern {
	return query.PathTimes{Times: p, From: from, To: to}
}

// TypeName returns the schema node of the class called name. Names are
// converted to UpperCamelCase, so "blog_post" and "BlogPost" name the same
// class.
func TypeName(name string) query.Node {
	return query.Node("@schema:" + strcase.ToCamel(name))
}
