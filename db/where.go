package db

import (
	"fmt"
	"time"

	"github.com/rlch/woql"
	"github.com/rlch/woql/query"
)

// NotEquals holds when left and right differ.
func NotEquals(left, right any) *woql.Builder {
	return woql.New().Eq(left, right).Not()
}

// GreaterOrEqual holds when left > right or left = right.
func GreaterOrEqual(left, right any) *woql.Builder {
	return woql.New().Greater(left, right).Or(woql.New().Eq(left, right))
}

// LessOrEqual holds when left < right or left = right.
func LessOrEqual(left, right any) *woql.Builder {
	return woql.New().Less(left, right).Or(woql.New().Eq(left, right))
}

// After holds when the date or dateTime left is later than right.
func After(left, right any) *woql.Builder { return woql.New().Greater(left, right) }

// Before holds when the date or dateTime left is earlier than right.
func Before(left, right any) *woql.Builder { return woql.New().Less(left, right) }

// InBetween holds when low <= value <= high.
func InBetween(value, low, high any) *woql.Builder {
	return GreaterOrEqual(value, low).And(LessOrEqual(value, high))
}

// Today returns the current instant as a dateTime literal.
func Today() query.Literal {
	return query.DateTime(time.Now())
}

// TodayInBetween holds when today falls between low and high.
func TodayInBetween(low, high any) *woql.Builder {
	return InBetween(Today(), low, high)
}

// Compare builds the comparison named by op: one of =, !=, <, <=, >, >=.
func Compare(left any, op string, right any) (*woql.Builder, error) {
	switch op {
	case "=", "==":
		return woql.New().Eq(left, right), nil
	case "!=":
		return NotEquals(left, right), nil
	case "<":
		return woql.New().Less(left, right), nil
	case "<=":
		return LessOrEqual(left, right), nil
	case ">":
		return woql.New().Greater(left, right), nil
	case ">=":
		return GreaterOrEqual(left, right), nil
	}
	return nil, fmt.Errorf("db.Compare: unknown operator %q", op)
}
