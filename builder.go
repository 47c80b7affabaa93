package woql

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rlch/woql/internal"
	"github.com/rlch/woql/query"
)

// Builder assembles a query through chained calls.
//
// Leaf calls (Triple, Eq, Regexp, ...) append a query to the builder's
// pending list; modifier calls (Limit, Select, Not, ...) collapse the pending
// list into a single query, joining several with [query.And], and wrap it.
// Finalize performs the same collapse without wrapping.
//
// Every call returns a new Builder and leaves its receiver untouched, so a
// prefix of a chain can be shared between several queries.
//
// Operands are coerced as follows: IR values from package query are used as
// they are, a Go string is a node unless it carries the "v:" prefix, in which
// case it names a variable, slices become lists and any other scalar becomes a
// literal. An operand that cannot be used in its position latches a
// [*BuilderError]; every later call on that chain is a no-op and Finalize
// returns the error.
type Builder struct {
	cfg   *Config
	scope *internal.Scope
}

// New returns an empty builder.
func New(configurers ...Configurer) *Builder {
	return &Builder{cfg: newConfig(configurers), scope: internal.NewScope()}
}

func (b *Builder) config() *Config {
	if b == nil || b.cfg == nil {
		return defaultConfig()
	}
	return b.cfg
}

func (b *Builder) state() *internal.Scope {
	if b == nil || b.scope == nil {
		return internal.NewScope()
	}
	return b.scope
}

func (b *Builder) with(s *internal.Scope) *Builder {
	return &Builder{cfg: b.config(), scope: s}
}

// Err returns the error latched by the chain so far, if any.
func (b *Builder) Err() error { return b.state().Error() }

// Finalize collapses the builder into one query: a single pending query is
// returned as is and several are joined with [query.And]. Finalizing an
// empty builder returns a [*BuilderError] matching [ErrEmptyBuilder].
func (b *Builder) Finalize() (query.Query, error) {
	return b.state().Collapse("Finalize")
}

// MustFinalize is like [Builder.Finalize] but panics on error.
func (b *Builder) MustFinalize() query.Query {
	q, err := b.Finalize()
	if err != nil {
		panic(err)
	}
	return q
}

func (b *Builder) fail(err error) *Builder {
	b.config().Logger.Debug("woql: builder error latched", slog.Any("error", err))
	return b.with(b.state().AddError(err))
}

func (b *Builder) poisoned() bool { return b.state().Error() != nil }

// leaf appends the query returned by build. Coercion errors raised through c
// latch instead.
func (b *Builder) leaf(call string, build func(c *operands) query.Query) *Builder {
	if b.poisoned() {
		return b
	}
	c := &operands{call: call}
	q := build(c)
	if c.err != nil {
		return b.fail(c.err)
	}
	return b.with(b.state().Append(q))
}

// wrapWith collapses the pending queries and wraps the result with the query
// returned by build.
func (b *Builder) wrapWith(call string, build func(c *operands, q query.Query) query.Query) *Builder {
	if b.poisoned() {
		return b
	}
	c := &operands{call: call}
	next := b.state().Wrap(call, func(q query.Query) query.Query { return build(c, q) })
	err := next.Error()
	if err == nil {
		err = c.err
	}
	if err != nil {
		return b.fail(err)
	}
	return b.with(next)
}

func (b *Builder) wrap(call string, wrap func(query.Query) query.Query) *Builder {
	return b.wrapWith(call, func(_ *operands, q query.Query) query.Query { return wrap(q) })
}

// Query appends a query built elsewhere.
func (b *Builder) Query(q query.Query) *Builder {
	if q == nil {
		return b.leaf("Query", func(c *operands) query.Query {
			c.err = &BuilderError{Context: "Query", Expected: "Query", Actual: "nil"}
			return nil
		})
	}
	return b.leaf("Query", func(*operands) query.Query { return q })
}

// And joins the pending queries of b and every other builder, in order, into
// one conjunction that becomes the only pending query. Pending lists are
// spliced rather than collapsed, so no conjunction is nested inside another.
// Leaves appended afterwards sit next to the conjunction, not inside it.
func (b *Builder) And(others ...*Builder) *Builder {
	if b.poisoned() {
		return b
	}
	scopes := make([]*internal.Scope, len(others))
	for i, o := range others {
		scopes[i] = o.state()
	}
	merged := internal.Merge("And", b.state(), scopes...)
	if err := merged.Error(); err != nil {
		b.config().Logger.Debug("woql: builder error latched", slog.Any("error", err))
	}
	return b.with(merged)
}

// Or collapses b and every other builder into one query each and makes their
// disjunction the only pending query. The receiver is the first disjunct, so
// an empty receiver fails like an empty [Builder.Finalize].
func (b *Builder) Or(others ...*Builder) *Builder {
	if b.poisoned() {
		return b
	}
	branches := append([]*Builder{b}, others...)
	var (
		disjuncts = make([]query.Query, 0, len(branches))
		errs      []error
	)
	for i, o := range branches {
		q, err := o.state().Collapse(fmt.Sprintf("Or[%d]", i))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		disjuncts = append(disjuncts, q)
	}
	switch len(errs) {
	case 0:
	case 1:
		return b.fail(errs[0])
	default:
		return b.fail(errors.Join(errs...))
	}
	return b.with(internal.NewScope(query.Or{Or: disjuncts}))
}

// operands coerces the arguments of one builder call, keeping the first
// error.
type operands struct {
	call string
	err  error
}

func (c *operands) ctx(name string) string { return c.call + "." + name }

func (c *operands) keep(err error) bool {
	if c.err == nil && err != nil {
		c.err = err
	}
	return c.err == nil
}

func (c *operands) value(name string, v any) query.Value {
	if c.err != nil {
		return nil
	}
	out, err := internal.ToValue(c.ctx(name), v)
	if !c.keep(err) {
		return nil
	}
	return out
}

func (c *operands) optionalValue(name string, v any) query.Value {
	if v == nil {
		return nil
	}
	return c.value(name, v)
}

func (c *operands) node(name string, v any) query.NodeValue {
	if c.err != nil {
		return nil
	}
	out, err := internal.ToNodeValue(c.ctx(name), v)
	if !c.keep(err) {
		return nil
	}
	return out
}

func (c *operands) optionalNode(name string, v any) query.NodeValue {
	if c.err != nil {
		return nil
	}
	out, err := internal.ToOptionalNodeValue(c.ctx(name), v)
	if !c.keep(err) {
		return nil
	}
	return out
}

func (c *operands) data(name string, v any) query.DataValue {
	if c.err != nil {
		return nil
	}
	out, err := internal.ToDataValue(c.ctx(name), v)
	if !c.keep(err) {
		return nil
	}
	return out
}

func (c *operands) optionalData(name string, v any) query.DataValue {
	if c.err != nil {
		return nil
	}
	out, err := internal.ToOptionalDataValue(c.ctx(name), v)
	if !c.keep(err) {
		return nil
	}
	return out
}

func (c *operands) dataList(name string, vs []any) []query.DataValue {
	if c.err != nil {
		return nil
	}
	out, err := internal.ToDataValues(c.ctx(name), vs)
	if !c.keep(err) {
		return nil
	}
	return out
}

func (c *operands) arithmetic(name string, v any) query.ArithmeticValue {
	if c.err != nil {
		return nil
	}
	out, err := internal.ToArithmeticValue(c.ctx(name), v)
	if !c.keep(err) {
		return nil
	}
	return out
}

func (c *operands) expression(name string, v any) query.ArithmeticExpression {
	if c.err != nil {
		return nil
	}
	out, err := internal.ToArithmeticExpression(c.ctx(name), v)
	if !c.keep(err) {
		return nil
	}
	return out
}

func (c *operands) check(err error) { c.keep(err) }
