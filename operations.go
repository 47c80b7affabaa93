package woql

import (
	"github.com/rlch/woql/internal"
	"github.com/rlch/woql/query"
)

// Eq holds when left and right are equal. Comparing two nodes is rejected;
// that is what a triple pattern is for.
func (b *Builder) Eq(left, right any) *Builder {
	return b.leaf("Eq", func(c *operands) query.Query {
		eq := query.Equals{Left: c.value("left", left), Right: c.value("right", right)}
		if c.err == nil {
			c.check(internal.CheckEquality("Eq", eq.Left, eq.Right))
		}
		return eq
	})
}

func (b *Builder) Greater(left, right any) *Builder {
	return b.leaf("Greater", func(c *operands) query.Query {
		return query.Greater{Left: c.data("left", left), Right: c.data("right", right)}
	})
}

func (b *Builder) Less(left, right any) *Builder {
	return b.leaf("Less", func(c *operands) query.Query {
		return query.Less{Left: c.data("left", left), Right: c.data("right", right)}
	})
}

// IsA holds when element is an instance of typ.
func (b *Builder) IsA(element, typ any) *Builder {
	return b.leaf("IsA", func(c *operands) query.Query {
		return query.IsA{Element: c.node("element", element), Type: c.node("type", typ)}
	})
}

// Subsumption holds when child is parent or one of its subclasses.
func (b *Builder) Subsumption(child, parent any) *Builder {
	return b.leaf("Subsumption", func(c *operands) query.Query {
		return query.Subsumption{Child: c.node("child", child), Parent: c.node("parent", parent)}
	})
}

func (b *Builder) TypeOf(value, typ any) *Builder {
	return b.leaf("TypeOf", func(c *operands) query.Query {
		return query.TypeOf{Value: c.value("value", value), Type: c.node("type", typ)}
	})
}

// Typecast converts value to typ, e.g. "xsd:integer", and binds result.
func (b *Builder) Typecast(value, typ, result any) *Builder {
	return b.leaf("Typecast", func(c *operands) query.Query {
		return query.Typecast{
			Value:  c.value("value", value),
			Type:   c.node("type", typ),
			Result: c.value("result", result),
		}
	})
}

func (b *Builder) Trim(untrimmed, trimmed any) *Builder {
	return b.leaf("Trim", func(c *operands) query.Query {
		return query.Trim{Untrimmed: c.data("untrimmed", untrimmed), Trimmed: c.data("trimmed", trimmed)}
	})
}

func (b *Builder) Lower(mixed, lower any) *Builder {
	return b.leaf("Lower", func(c *operands) query.Query {
		return query.Lower{Mixed: c.data("mixed", mixed), Lower: c.data("lower", lower)}
	})
}

func (b *Builder) Upper(mixed, upper any) *Builder {
	return b.leaf("Upper", func(c *operands) query.Query {
		return query.Upper{Mixed: c.data("mixed", mixed), Upper: c.data("upper", upper)}
	})
}

// Pad left-pads str with char repeated times times and binds result.
func (b *Builder) Pad(str, char, times, result any) *Builder {
	return b.leaf("Pad", func(c *operands) query.Query {
		return query.Pad{
			String: c.data("string", str),
			Char:   c.data("char", char),
			Times:  c.data("times", times),
			Result: c.data("result", result),
		}
	})
}

func (b *Builder) Split(str, pattern, list any) *Builder {
	return b.leaf("Split", func(c *operands) query.Query {
		return query.Split{
			String:  c.data("string", str),
			Pattern: c.data("pattern", pattern),
			List:    c.data("list", list),
		}
	})
}

func (b *Builder) Join(list, separator, result any) *Builder {
	return b.leaf("Join", func(c *operands) query.Query {
		return query.Join{
			List:      c.data("list", list),
			Separator: c.data("separator", separator),
			Result:    c.data("result", result),
		}
	})
}

// Concatenate binds result to the concatenation of the strings in list.
func (b *Builder) Concatenate(list, result any) *Builder {
	return b.leaf("Concatenate", func(c *operands) query.Query {
		return query.Concatenate{List: c.data("list", list), Result: c.data("result", result)}
	})
}

// Concat is an alias for [Builder.Concatenate].
func (b *Builder) Concat(list, result any) *Builder { return b.Concatenate(list, result) }

func (b *Builder) Substring(str, before, length, after, substring any) *Builder {
	return b.leaf("Substring", func(c *operands) query.Query {
		return query.Substring{
			String:    c.data("string", str),
			Before:    c.data("before", before),
			Length:    c.data("length", length),
			After:     c.data("after", after),
			Substring: c.data("substring", substring),
		}
	})
}

// Regexp matches str against pattern. When result is not nil it is bound to
// the list of capture groups. A literal pattern must compile.
func (b *Builder) Regexp(pattern, str, result any) *Builder {
	return b.leaf("Regexp", func(c *operands) query.Query {
		re := query.Regexp{
			Pattern: c.data("pattern", pattern),
			String:  c.data("string", str),
			Result:  c.optionalData("result", result),
		}
		if c.err == nil {
			c.check(internal.CheckPattern(c.ctx("pattern"), re.Pattern))
		}
		return re
	})
}

// Like binds similarity to a score between -1 and 1 of how alike left and
// right are.
func (b *Builder) Like(left, right, similarity any) *Builder {
	return b.leaf("Like", func(c *operands) query.Query {
		return query.Like{
			Left:       c.data("left", left),
			Right:      c.data("right", right),
			Similarity: c.data("similarity", similarity),
		}
	})
}

func (b *Builder) Member(member, list any) *Builder {
	return b.leaf("Member", func(c *operands) query.Query {
		return query.Member{Member: c.data("member", member), List: c.data("list", list)}
	})
}

// Dot reads field of the dictionary document into value.
func (b *Builder) Dot(document, field, value any) *Builder {
	return b.leaf("Dot", func(c *operands) query.Query {
		return query.Dot{
			Document: c.data("document", document),
			Field:    c.data("field", field),
			Value:    c.data("value", value),
		}
	})
}

// Eval evaluates expression and binds result. See package expr for the
// operators.
func (b *Builder) Eval(expression, result any) *Builder {
	return b.leaf("Eval", func(c *operands) query.Query {
		return query.Eval{
			Expression: c.expression("expression", expression),
			Result:     c.arithmetic("result", result),
		}
	})
}

// LexicalKey binds uri to base followed by the URI-encoded lexical forms of
// keys.
func (b *Builder) LexicalKey(base any, keys []any, uri any) *Builder {
	return b.leaf("LexicalKey", func(c *operands) query.Query {
		return query.LexicalKey{
			Base:    c.data("base", base),
			KeyList: c.dataList("keys", keys),
			URI:     c.node("uri", uri),
		}
	})
}

// HashKey is [Builder.LexicalKey] with the keys hashed.
func (b *Builder) HashKey(base any, keys []any, uri any) *Builder {
	return b.leaf("HashKey", func(c *operands) query.Query {
		return query.HashKey{
			Base:    c.data("base", base),
			KeyList: c.dataList("keys", keys),
			URI:     c.node("uri", uri),
		}
	})
}

func (b *Builder) RandomKey(base, uri any) *Builder {
	return b.leaf("RandomKey", func(c *operands) query.Query {
		return query.RandomKey{Base: c.data("base", base), URI: c.node("uri", uri)}
	})
}

// Size binds size to the size in bytes of resource.
func (b *Builder) Size(resource string, size any) *Builder {
	return b.leaf("Size", func(c *operands) query.Query {
		return query.Size{Resource: resource, Size: c.data("size", size)}
	})
}

// Sum binds result to the sum of the numbers in list.
func Sum(list, result any) *Builder {
	return New().leaf("Sum", func(c *operands) query.Query {
		return query.Sum{List: c.data("list", list), Result: c.data("result", result)}
	})
}

// Length binds length to the number of elements in list.
func Length(list, length any) *Builder {
	return New().leaf("Length", func(c *operands) query.Query {
		return query.Length{List: c.data("list", list), Length: c.data("length", length)}
	})
}

// TripleCount binds count to the number of triples in resource.
func TripleCount(resource string, count any) *Builder {
	return New().leaf("TripleCount", func(c *operands) query.Query {
		return query.TripleCount{Resource: resource, Count: c.data("count", count)}
	})
}

// Path matches subject to object through pattern. When path is not nil it is
// bound to the edges traversed.
func Path(subject any, pattern query.PathPattern, object, path any) *Builder {
	return New().leaf("Path", func(c *operands) query.Query {
		p := query.Path{
			Subject: c.value("subject", subject),
			Pattern: pattern,
			Object:  c.value("object", object),
			Path:    c.optionalValue("path", path),
		}
		if c.err == nil && pattern == nil {
			c.err = &BuilderError{Context: "Path.pattern", Expected: "PathPattern", Actual: "nil"}
		}
		return p
	})
}
