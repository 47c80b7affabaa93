package internal

import (
	"errors"
	"slices"

	"github.com/rlch/woql/query"
)

// Scope is the pending state of a builder chain: the leaves appended since
// the last wrap, and the first error raised while building them.
//
// A Scope is never mutated after it has been handed out; every operation
// returns a fresh copy.
type Scope struct {
	leaves []query.Query
	err    error
}

func NewScope(leaves ...query.Query) *Scope {
	return &Scope{leaves: slices.Clone(leaves)}
}

// Leaves returns a copy of the pending leaves.
func (s *Scope) Leaves() []query.Query { return slices.Clone(s.leaves) }

func (s *Scope) Len() int { return len(s.leaves) }

func (s *Scope) Error() error { return s.err }

func (s *Scope) clone() *Scope {
	return &Scope{leaves: slices.Clone(s.leaves), err: s.err}
}

// AddError returns a copy of s with err recorded alongside any error already
// latched.
func (s *Scope) AddError(err error) *Scope {
	c := s.clone()
	if err == nil {
		return c
	}
	if c.err != nil {
		c.err = errors.Join(c.err, err)
	} else {
		c.err = err
	}
	return c
}

// Append returns a copy of s with q added as a new leaf.
func (s *Scope) Append(q query.Query) *Scope {
	c := s.clone()
	c.leaves = append(c.leaves, q)
	return c
}

// Collapse folds the pending leaves into one query: a single leaf is returned
// as is, several become an [query.And].
func (s *Scope) Collapse(ctx string) (query.Query, error) {
	if s.err != nil {
		return nil, s.err
	}
	switch len(s.leaves) {
	case 0:
		return nil, &BuilderError{Context: ctx, Err: ErrEmptyBuilder}
	case 1:
		return s.leaves[0], nil
	}
	return query.And{And: slices.Clone(s.leaves)}, nil
}

// Wrap collapses s and replaces its leaves with wrap applied to the result.
func (s *Scope) Wrap(ctx string, wrap func(query.Query) query.Query) *Scope {
	if s.err != nil {
		return s
	}
	q, err := s.Collapse(ctx)
	if err != nil {
		return s.AddError(err)
	}
	return &Scope{leaves: []query.Query{wrap(q)}}
}

// Merge joins the raw leaves of s and others, in order, into a single
// [query.And] that becomes the only leaf. Neither side is collapsed first, so
// no conjunction is nested inside another. Errors from every operand are
// joined; with no leaves at all the result latches ErrEmptyBuilder.
func Merge(ctx string, s *Scope, others ...*Scope) *Scope {
	out := s.clone()
	for _, o := range others {
		if o == nil {
			continue
		}
		out.leaves = append(out.leaves, o.leaves...)
		if o.err != nil {
			out = out.AddError(o.err)
		}
	}
	if out.err != nil {
		return out
	}
	if len(out.leaves) == 0 {
		return out.AddError(&BuilderError{Context: ctx, Err: ErrEmptyBuilder})
	}
	return &Scope{leaves: []query.Query{query.And{And: out.leaves}}}
}
