package woql

import (
	"log/slog"

	"github.com/rlch/woql/internal"
	"github.com/rlch/woql/query"
)

// Parse reads exactly one query written in the call syntax, e.g.
//
//	select([$Name], triple($Person, "@schema:name", $Name))
//
// Call names are matched case-insensitively across snake_case and camelCase.
// Any failure is a [*ParseError] matching [ErrParse].
func Parse(src string, configurers ...Configurer) (query.Query, error) {
	cfg := newConfig(configurers)
	q, err := internal.ParseQuery(src, cfg.MaxDepth)
	if err != nil {
		cfg.Logger.Debug("woql: parse failed", slog.Int("len", len(src)), slog.Any("error", err))
		return nil, err
	}
	return q, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(src string, configurers ...Configurer) query.Query {
	q, err := Parse(src, configurers...)
	if err != nil {
		panic(err)
	}
	return q
}
