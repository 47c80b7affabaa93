package internal

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/iancoleman/strcase"
	"github.com/spf13/cast"

	"github.com/rlch/woql/query"
)

// DefaultMaxDepth bounds how deeply calls, lists and patterns may nest.
const DefaultMaxDepth = 256

type (
	argKind uint8

	// argument is one parsed call argument, before it is checked against the
	// position it appears in.
	argument struct {
		kind  argKind
		tok   lexer.Token
		query query.Query
		value query.Value
		list  query.List
		expr  query.ArithmeticExpression
		path  query.PathPattern
		order []query.OrderTemplate
	}

	call struct {
		name string
		tok  lexer.Token
		args []argument
	}

	parser struct {
		src      string
		toks     []lexer.Token
		pos      int
		depth    int
		maxDepth int
		furthest *SyntaxError
	}
)

const (
	argOrder argKind = iota + 1
	argValueList
	argExpression
	argPath
	argQuery
	argValue
)

func (k argKind) String() string {
	switch k {
	case argOrder:
		return "order template list"
	case argValueList:
		return "list"
	case argExpression:
		return "arithmetic expression"
	case argPath:
		return "path pattern"
	case argQuery:
		return "query"
	case argValue:
		return "value"
	}
	return "argument"
}

// ParseQuery parses src into a query. A leading vars($A, ...) declaration is
// accepted and discarded. Everything after the query must be whitespace.
func ParseQuery(src string, maxDepth int) (query.Query, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, &ParseError{Kind: KindGrammar, Remainder: trimRight(src), Err: err}
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{src: src, toks: toks, maxDepth: maxDepth}
	q, err := p.parseProgram()
	if err != nil {
		se := p.syntaxError(err)
		return nil, &ParseError{
			Kind:      KindGrammar,
			Offset:    se.Pos.Offset,
			Remainder: p.remainder(se.Pos.Offset),
			Err:       se,
		}
	}
	if t := p.peek(); t.Type != tokenEOF {
		return nil, &ParseError{
			Kind:      KindTrailingInput,
			Offset:    t.Pos.Offset,
			Remainder: p.remainder(t.Pos.Offset),
		}
	}
	return q, nil
}

func trimRight(s string) string { return strings.TrimRightFunc(s, unicode.IsSpace) }

func (p *parser) remainder(offset int) string {
	if offset >= len(p.src) {
		return ""
	}
	return trimRight(p.src[offset:])
}

// syntaxError picks the error to report: a fatal error as is, otherwise the
// failure that got furthest into the input.
func (p *parser) syntaxError(err error) *SyntaxError {
	se, ok := err.(*SyntaxError)
	if ok && se.fatal {
		return se
	}
	if p.furthest != nil {
		return p.furthest
	}
	if ok {
		return se
	}
	return &SyntaxError{Pos: p.peek().Pos, Message: err.Error()}
}

func (p *parser) peek() lexer.Token { return p.toks[p.pos] }

func (p *parser) peekAt(n int) lexer.Token {
	return p.toks[min(p.pos+n, len(p.toks)-1)]
}

func (p *parser) next() lexer.Token {
	t := p.toks[p.pos]
	if t.Type != tokenEOF {
		p.pos++
	}
	return t
}

func isPunct(t lexer.Token, s string) bool {
	return t.Type == tokenPunct && t.Value == s
}

func (p *parser) isPunct(s string) bool { return isPunct(p.peek(), s) }

func (p *parser) punct(s string) (lexer.Token, error) {
	t := p.peek()
	if !isPunct(t, s) {
		return t, p.fail(t, strconv.Quote(s))
	}
	return p.next(), nil
}

func (p *parser) fail(t lexer.Token, expected ...string) *SyntaxError {
	err := &SyntaxError{
		Pos:      t.Pos,
		Message:  "unexpected token",
		Got:      describeToken(t),
		Expected: expected,
	}
	switch {
	case p.furthest == nil || t.Pos.Offset > p.furthest.Pos.Offset:
		cp := *err
		cp.Expected = slices.Clone(expected)
		p.furthest = &cp
	case t.Pos.Offset == p.furthest.Pos.Offset:
		for _, e := range expected {
			if !slices.Contains(p.furthest.Expected, e) {
				p.furthest.Expected = append(p.furthest.Expected, e)
			}
		}
	}
	return err
}

func fatalf(t lexer.Token, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: t.Pos, Message: fmt.Sprintf(format, args...), fatal: true}
}

func (p *parser) enter(t lexer.Token) error {
	p.depth++
	if p.depth > p.maxDepth {
		return fatalf(t, "nesting exceeds the maximum depth of %d", p.maxDepth)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) parseProgram() (query.Query, error) {
	for t := p.peek(); t.Type == tokenIdent && t.Value == "vars" && isPunct(p.peekAt(1), "("); t = p.peek() {
		if err := p.parseVars(); err != nil {
			return nil, err
		}
	}
	return p.parseQueryCall()
}

// parseVars consumes a vars($A, $B) declaration. It binds nothing.
func (p *parser) parseVars() error {
	p.next()
	if _, err := p.punct("("); err != nil {
		return err
	}
	for {
		if t := p.peek(); t.Type != tokenVariable {
			return p.fail(t, "variable")
		}
		p.next()
		if p.isPunct(",") {
			p.next()
			continue
		}
		_, err := p.punct(")")
		return err
	}
}

func (p *parser) parseQueryCall() (query.Query, error) {
	t := p.peek()
	if t.Type != tokenIdent {
		return nil, p.fail(t, "query")
	}
	p.next()
	if err := p.enter(t); err != nil {
		return nil, err
	}
	defer p.leave()
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	name := strcase.ToSnake(t.Value)
	build, ok := queryFunctions[name]
	if !ok {
		return nil, fatalf(t, "unknown query function %q", t.Value)
	}
	return build(&call{name: name, tok: t, args: args})
}

func (p *parser) parseArgs() ([]argument, error) {
	if _, err := p.punct("("); err != nil {
		return nil, err
	}
	var args []argument
	if p.isPunct(")") {
		p.next()
		return args, nil
	}
	for {
		a, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		t := p.peek()
		switch {
		case isPunct(t, ","):
			p.next()
		case isPunct(t, ")"):
			p.next()
			return args, nil
		default:
			return nil, p.fail(t, `","`, `")"`)
		}
	}
}

// parseArgument tries each argument form in turn. Order matters: a bracketed
// list of asc/desc templates must not be read as a value list, and
// arithmetic or path calls must not be read as queries.
func (p *parser) parseArgument() (argument, error) {
	start, tok := p.pos, p.peek()
	alternatives := [...]func() (argument, error){
		p.orderListArg,
		p.valueListArg,
		p.expressionArg,
		p.pathArg,
		p.queryArg,
		p.valueArg,
	}
	var err error
	for _, alt := range alternatives {
		var a argument
		if a, err = alt(); err == nil {
			a.tok = tok
			return a, nil
		}
		if isFatal(err) {
			return argument{}, err
		}
		p.pos = start
	}
	return argument{}, err
}

func (p *parser) orderListArg() (argument, error) {
	open, err := p.punct("[")
	if err != nil {
		return argument{}, err
	}
	if err := p.enter(open); err != nil {
		return argument{}, err
	}
	defer p.leave()
	order := []query.OrderTemplate{}
	if !p.isPunct("]") {
		for {
			tmpl, err := p.parseOrderTemplate()
			if err != nil {
				return argument{}, err
			}
			order = append(order, tmpl)
			if !p.isPunct(",") {
				break
			}
			p.next()
		}
	}
	if _, err := p.punct("]"); err != nil {
		return argument{}, err
	}
	return argument{kind: argOrder, order: order}, nil
}

func (p *parser) parseOrderTemplate() (query.OrderTemplate, error) {
	t := p.peek()
	var order query.Order
	switch {
	case t.Type == tokenIdent && t.Value == "asc":
		order = query.Asc
	case t.Type == tokenIdent && t.Value == "desc":
		order = query.Desc
	default:
		return query.OrderTemplate{}, p.fail(t, "asc", "desc")
	}
	p.next()
	if _, err := p.punct("("); err != nil {
		return query.OrderTemplate{}, err
	}
	v := p.peek()
	if v.Type != tokenVariable {
		return query.OrderTemplate{}, p.fail(v, "variable")
	}
	p.next()
	if _, err := p.punct(")"); err != nil {
		return query.OrderTemplate{}, err
	}
	return query.OrderTemplate{Variable: v.Value[1:], Order: order}, nil
}

func (p *parser) valueListArg() (argument, error) {
	list, err := p.parseList()
	if err != nil {
		return argument{}, err
	}
	return argument{kind: argValueList, list: list}, nil
}

func (p *parser) expressionArg() (argument, error) {
	e, err := p.parseExpressionCall()
	if err != nil {
		return argument{}, err
	}
	return argument{kind: argExpression, expr: e}, nil
}

func (p *parser) pathArg() (argument, error) {
	pp, err := p.parsePath()
	if err != nil {
		return argument{}, err
	}
	return argument{kind: argPath, path: pp}, nil
}

func (p *parser) queryArg() (argument, error) {
	q, err := p.parseQueryCall()
	if err != nil {
		return argument{}, err
	}
	return argument{kind: argQuery, query: q}, nil
}

func (p *parser) valueArg() (argument, error) {
	v, err := p.parseValue()
	if err != nil {
		return argument{}, err
	}
	return argument{kind: argValue, value: v}, nil
}

func (p *parser) parseList() (query.List, error) {
	open, err := p.punct("[")
	if err != nil {
		return nil, err
	}
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()
	list := query.List{}
	if p.isPunct("]") {
		p.next()
		return list, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		list = append(list, v)
		t := p.peek()
		switch {
		case isPunct(t, ","):
			p.next()
		case isPunct(t, "]"):
			p.next()
			return list, nil
		default:
			return nil, p.fail(t, `","`, `"]"`)
		}
	}
}

func (p *parser) parseValue() (query.Value, error) {
	t := p.peek()
	switch {
	case t.Type == tokenVariable:
		p.next()
		return query.Variable(t.Value[1:]), nil
	case t.Type == tokenString:
		p.next()
		return stringValue(unquote(t)), nil
	case t.Type == tokenNumber:
		p.next()
		return number(t)
	case t.Type == tokenIdent && (t.Value == "true" || t.Value == "false"):
		p.next()
		return query.Bool(t.Value == "true"), nil
	case isPunct(t, "["):
		return p.parseList()
	}
	return nil, p.fail(t, "value")
}

// stringValue reads IRI-like strings (prefixed with @ or containing a colon)
// as nodes and everything else as string data.
func stringValue(s string) query.Value {
	if strings.HasPrefix(s, "@") || strings.Contains(s, ":") {
		return query.Node(s)
	}
	return query.String(s)
}

func unquote(t lexer.Token) string { return t.Value[1 : len(t.Value)-1] }

func number(t lexer.Token) (query.Literal, error) {
	f, err := strconv.ParseFloat(t.Value, 64)
	if err != nil {
		return query.Literal{}, fatalf(t, "invalid number %s", t.Value)
	}
	return query.Float(f), nil
}

var binaryOperators = map[string]func(l, r query.ArithmeticExpression) query.ArithmeticExpression{
	"plus":   func(l, r query.ArithmeticExpression) query.ArithmeticExpression { return query.Plus{Left: l, Right: r} },
	"minus":  func(l, r query.ArithmeticExpression) query.ArithmeticExpression { return query.Minus{Left: l, Right: r} },
	"times":  func(l, r query.ArithmeticExpression) query.ArithmeticExpression { return query.Times{Left: l, Right: r} },
	"divide": func(l, r query.ArithmeticExpression) query.ArithmeticExpression { return query.Divide{Left: l, Right: r} },
	"div":    func(l, r query.ArithmeticExpression) query.ArithmeticExpression { return query.Div{Left: l, Right: r} },
	"exp":    func(l, r query.ArithmeticExpression) query.ArithmeticExpression { return query.Exp{Left: l, Right: r} },
}

func (p *parser) parseExpressionCall() (query.ArithmeticExpression, error) {
	t := p.peek()
	binary, isBinary := binaryOperators[t.Value]
	if t.Type != tokenIdent || !(isBinary || t.Value == "floor") {
		return nil, p.fail(t, "arithmetic expression")
	}
	p.next()
	if err := p.enter(t); err != nil {
		return nil, err
	}
	defer p.leave()
	if _, err := p.punct("("); err != nil {
		return nil, err
	}
	var operands []query.ArithmeticExpression
	for {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		operands = append(operands, e)
		if !p.isPunct(",") {
			break
		}
		p.next()
	}
	if _, err := p.punct(")"); err != nil {
		return nil, err
	}
	want := 2
	if !isBinary {
		want = 1
	}
	if len(operands) != want {
		return nil, fatalf(t, "%s expects %d operands, got %d", t.Value, want, len(operands))
	}
	if !isBinary {
		return query.Floor{Argument: operands[0]}, nil
	}
	return binary(operands[0], operands[1]), nil
}

func (p *parser) parseExpression() (query.ArithmeticExpression, error) {
	t := p.peek()
	switch t.Type {
	case tokenVariable:
		p.next()
		return query.Variable(t.Value[1:]), nil
	case tokenNumber:
		p.next()
		return number(t)
	case tokenIdent:
		return p.parseExpressionCall()
	}
	return nil, p.fail(t, "variable", "number", "arithmetic expression")
}

func (p *parser) parsePath() (query.PathPattern, error) {
	t := p.peek()
	if t.Type != tokenIdent {
		return nil, p.fail(t, "path pattern")
	}
	switch t.Value {
	case "pred", "inv", "star", "plus", "seq", "or", "times":
	default:
		return nil, p.fail(t, "path pattern")
	}
	p.next()
	if err := p.enter(t); err != nil {
		return nil, err
	}
	defer p.leave()
	if _, err := p.punct("("); err != nil {
		return nil, err
	}
	var pattern query.PathPattern
	switch t.Value {
	case "pred", "inv":
		s := p.peek()
		if s.Type != tokenString {
			return nil, p.fail(s, "string")
		}
		p.next()
		if t.Value == "pred" {
			pattern = query.PathPredicate{Predicate: unquote(s)}
		} else {
			pattern = query.InversePathPredicate{Predicate: unquote(s)}
		}
	case "star", "plus":
		inner, err := p.parsePath()
		if err != nil {
			return nil, err
		}
		if t.Value == "star" {
			pattern = query.PathStar{Star: inner}
		} else {
			pattern = query.PathPlus{Plus: inner}
		}
	case "seq", "or":
		var patterns []query.PathPattern
		for {
			inner, err := p.parsePath()
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, inner)
			if !p.isPunct(",") {
				break
			}
			p.next()
		}
		if t.Value == "seq" {
			pattern = query.PathSequence{Sequence: patterns}
		} else {
			pattern = query.PathOr{Or: patterns}
		}
	case "times":
		inner, err := p.parsePath()
		if err != nil {
			return nil, err
		}
		var bounds [2]uint64
		for i := range bounds {
			if _, err := p.punct(","); err != nil {
				return nil, err
			}
			n := p.peek()
			if n.Type != tokenNumber {
				return nil, p.fail(n, "number")
			}
			p.next()
			l, err := number(n)
			if err != nil {
				return nil, err
			}
			if bounds[i], err = wholeNumber(l); err != nil {
				return nil, fatalf(n, "times: %v", err)
			}
		}
		pattern = query.PathTimes{Times: inner, From: bounds[0], To: bounds[1]}
	}
	if _, err := p.punct(")"); err != nil {
		return nil, err
	}
	return pattern, nil
}

// wholeNumber converts a numeric literal that holds a non-negative integer.
func wholeNumber(l query.Literal) (uint64, error) {
	f, ok := l.Value().(float64)
	if !ok {
		return cast.ToUint64E(l.Value())
	}
	if f < 0 || f != math.Trunc(f) || f >= 0x1p64 {
		return 0, fmt.Errorf("%s is not a non-negative whole number", l.Lexical())
	}
	return cast.ToUint64E(f)
}
