package internal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

var ErrParse = errors.New("parse error")

type ParseErrorKind uint8

const (
	// KindGrammar means the source did not match the grammar.
	KindGrammar ParseErrorKind = iota + 1
	// KindTrailingInput means a complete query was parsed but input remained.
	KindTrailingInput
)

func (k ParseErrorKind) String() string {
	switch k {
	case KindGrammar:
		return "grammar"
	case KindTrailingInput:
		return "trailing input"
	}
	return fmt.Sprintf("ParseErrorKind(%d)", uint8(k))
}

// ParseError is returned for any source text that does not describe exactly
// one query.
type ParseError struct {
	Kind ParseErrorKind
	// Offset is the byte offset into the source at which parsing stopped.
	Offset int
	// Remainder is the unconsumed source from Offset on, without trailing
	// whitespace.
	Remainder string
	Err       error
}

func (e *ParseError) Error() string {
	if e.Kind == KindTrailingInput {
		return fmt.Sprintf("woql: unexpected input at offset %d: %q", e.Offset, e.Remainder)
	}
	return fmt.Sprintf("woql: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// SyntaxError describes the point at which the grammar could not continue.
type SyntaxError struct {
	Pos      lexer.Position
	Message  string
	Got      string
	Expected []string

	// fatal errors are not retried by enclosing alternatives.
	fatal bool
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Pos, e.Message)
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, ": expected %s", strings.Join(e.Expected, " or "))
	}
	if e.Got != "" {
		fmt.Fprintf(&b, ", got %s", e.Got)
	}
	return b.String()
}

func isFatal(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se) && se.fatal
}
