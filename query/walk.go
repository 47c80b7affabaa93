package query

import (
	"reflect"
)

var (
	rQuery    = reflect.TypeOf((*Query)(nil)).Elem()
	rVariable = reflect.TypeOf(Variable(""))
)

// Children returns the direct sub-queries of q in field order.
func Children(q Query) []Query {
	if q == nil {
		return nil
	}
	var out []Query
	v := reflect.ValueOf(q)
	if v.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		switch {
		case f.Kind() == reflect.Interface && f.Type() == rQuery:
			if !f.IsNil() {
				out = append(out, f.Interface().(Query))
			}
		case f.Kind() == reflect.Slice && f.Type().Elem() == rQuery:
			for j := 0; j < f.Len(); j++ {
				if c := f.Index(j); !c.IsNil() {
					out = append(out, c.Interface().(Query))
				}
			}
		}
	}
	return out
}

// Walk visits q and its descendants depth-first, parents before children.
// Returning false from fn skips the children of that node.
func Walk(q Query, fn func(Query) bool) {
	if q == nil || !fn(q) {
		return
	}
	for _, c := range Children(q) {
		Walk(c, fn)
	}
}

// Variables returns the names of every variable referenced anywhere in q,
// including the names listed by Select, Distinct, GroupBy and OrderBy, in
// order of first appearance.
func Variables(q Query) []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	var visit func(v reflect.Value)
	visit = func(v reflect.Value) {
		switch v.Kind() {
		case reflect.Interface, reflect.Pointer:
			if !v.IsNil() {
				visit(v.Elem())
			}
		case reflect.Struct:
			// Literal has only unexported fields and never holds a variable.
			if v.Type() == rLiteral {
				return
			}
			for i := 0; i < v.NumField(); i++ {
				f := v.Type().Field(i)
				if !f.IsExported() || isQueryField(f.Type) {
					continue
				}
				visit(v.Field(i))
			}
		case reflect.Slice:
			for i := 0; i < v.Len(); i++ {
				visit(v.Index(i))
			}
		case reflect.String:
			if v.Type() == rVariable {
				add(v.String())
			}
		}
	}
	Walk(q, func(n Query) bool {
		switch x := n.(type) {
		case Select:
			addAll(add, x.Variables)
		case Distinct:
			addAll(add, x.Variables)
		case GroupBy:
			addAll(add, x.GroupBy)
		case OrderBy:
			for _, o := range x.Ordering {
				add(o.Variable)
			}
		}
		visit(reflect.ValueOf(n))
		return true
	})
	return out
}

var rLiteral = reflect.TypeOf(Literal{})

func isQueryField(t reflect.Type) bool {
	return t == rQuery || (t.Kind() == reflect.Slice && t.Elem() == rQuery)
}

func addAll(add func(string), names []string) {
	for _, n := range names {
		add(n)
	}
}
