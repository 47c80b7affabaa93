package internal

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var queryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "whitespace", Pattern: `\s+`},
	{Name: "Variable", Pattern: `\$[\p{L}_][\p{L}\p{N}_]*`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
	{Name: "Punct", Pattern: `[()\[\],]`},
	{Name: "Invalid", Pattern: `.`},
})

var (
	tokenEOF      = lexer.EOF
	tokenVariable = queryLexer.Symbols()["Variable"]
	tokenString   = queryLexer.Symbols()["String"]
	tokenNumber   = queryLexer.Symbols()["Number"]
	tokenIdent    = queryLexer.Symbols()["Ident"]
	tokenPunct    = queryLexer.Symbols()["Punct"]
)

// tokenize splits src into tokens, dropping whitespace. The final token is
// always EOF. Unrecognised characters are returned as single-character tokens
// so the parser can report them in place.
func tokenize(src string) ([]lexer.Token, error) {
	lex, err := queryLexer.LexString("", src)
	if err != nil {
		return nil, err
	}
	return lexer.ConsumeAll(lex)
}

func describeToken(t lexer.Token) string {
	switch t.Type {
	case tokenEOF:
		return "end of input"
	case tokenVariable:
		return "variable " + t.Value
	case tokenString:
		return "string " + t.Value
	case tokenNumber:
		return "number " + t.Value
	case tokenIdent:
		return "identifier " + t.Value
	}
	return "\"" + t.Value + "\""
}
