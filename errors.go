package woql

import "github.com/rlch/woql/internal"

type (
	// BuilderError reports a builder call that was given an operand it cannot
	// place, or a builder finalized with nothing in it. It is latched by the
	// builder and returned from [Builder.Finalize].
	BuilderError = internal.BuilderError
	// ParseError is returned by [Parse] for source text that does not describe
	// exactly one query.
	ParseError     = internal.ParseError
	ParseErrorKind = internal.ParseErrorKind
	// SyntaxError is wrapped by grammar failures and locates the token at
	// which parsing stopped.
	SyntaxError = internal.SyntaxError
)

const (
	KindGrammar       = internal.KindGrammar
	KindTrailingInput = internal.KindTrailingInput
)

var (
	ErrEmptyBuilder = internal.ErrEmptyBuilder
	ErrParse        = internal.ErrParse
)
