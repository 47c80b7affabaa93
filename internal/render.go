package internal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
	"github.com/sanity-io/litter"
	"gopkg.in/yaml.v3"

	"github.com/rlch/woql/query"
)

// Format selects an inspection rendering.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatGo   Format = "go"
)

var ErrUnknownFormat = errors.New("unknown render format")

// object is a JSON/YAML object that keeps its keys in insertion order, so
// renderings are stable and "@type" always comes first.
type object struct {
	keys []string
	vals []any
}

func (o *object) set(k string, v any) {
	o.keys = append(o.keys, k)
	o.vals = append(o.vals, v)
}

func typed(name string) *object {
	o := &object{}
	o.set("@type", name)
	return o
}

var (
	rGraphType   = reflect.TypeOf(query.GraphType(""))
	rOrder       = reflect.TypeOf(query.Order(0))
	rStringSlice = reflect.TypeOf([]string(nil))
)

// Document converts any IR value into a tree of *object, []any and scalars.
// Struct nodes become objects tagged with their type name and keyed by the
// snake_case field names; nil fields are omitted.
func Document(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case query.Variable:
		o := typed("Variable")
		o.set("name", x.Name())
		return o
	case query.Node:
		o := typed("Node")
		o.set("node", string(x))
		return o
	case query.Literal:
		return literalDocument(x)
	case query.List:
		return sliceDocument(reflect.ValueOf(x))
	case query.DataList:
		return sliceDocument(reflect.ValueOf(x))
	case query.Dictionary:
		o := typed("Dictionary")
		fields := make([]any, 0, len(x.Fields))
		for _, f := range x.Fields {
			fo := typed("FieldValuePair")
			fo.set("field", f.Name)
			fo.set("value", Document(f.Value))
			fields = append(fields, fo)
		}
		o.set("fields", fields)
		return o
	}
	return reflectDocument(reflect.ValueOf(v))
}

func literalDocument(l query.Literal) *object {
	o := typed(l.Kind().XSD())
	switch v := l.Value().(type) {
	case string, bool, int64, uint64, float64:
		if l.Kind() == query.KindDecimal {
			o.set("@value", l.Lexical())
		} else {
			o.set("@value", v)
		}
	default:
		o.set("@value", l.Lexical())
	}
	return o
}

func sliceDocument(rv reflect.Value) []any {
	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out = append(out, Document(rv.Index(i).Interface()))
	}
	return out
}

func reflectDocument(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return Document(rv.Elem().Interface())
	case reflect.Slice:
		if rv.Type() == rStringSlice {
			out := make([]any, 0, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				out = append(out, rv.Index(i).String())
			}
			return out
		}
		return sliceDocument(rv)
	case reflect.Struct:
		o := typed(rv.Type().Name())
		for i := 0; i < rv.NumField(); i++ {
			f := rv.Type().Field(i)
			if !f.IsExported() {
				continue
			}
			fv := rv.Field(i)
			if (fv.Kind() == reflect.Interface || fv.Kind() == reflect.Slice) && fv.IsNil() {
				continue
			}
			o.set(strcase.ToSnake(f.Name), reflectDocument(fv))
		}
		return o
	}
	switch rv.Type() {
	case rGraphType:
		return rv.String()
	case rOrder:
		return rv.Interface().(query.Order).String()
	}
	return rv.Interface()
}

// Render writes q in the given format.
func Render(w io.Writer, q query.Query, format Format) error {
	switch format {
	case FormatJSON, "":
		b, err := RenderJSON(q)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(yamlNode(Document(q))); err != nil {
			return err
		}
		return enc.Close()
	case FormatGo:
		_, err := io.WriteString(w, litterOptions.Sdump(q))
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// RenderJSON renders q as indented JSON followed by a newline.
func RenderJSON(q query.Query) ([]byte, error) {
	var compact bytes.Buffer
	if err := writeJSON(&compact, Document(q)); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case *object:
		buf.WriteByte('{')
		for i, k := range x.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, x.vals[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case []any:
		buf.WriteByte('[')
		for i, item := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

func yamlNode(v any) *yaml.Node {
	switch x := v.(type) {
	case *object:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for i, k := range x.keys {
			n.Content = append(n.Content, yamlNode(k), yamlNode(x.vals[i]))
		}
		return n
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range x {
			n.Content = append(n.Content, yamlNode(item))
		}
		return n
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(v)}
	}
	return n
}

var litterOptions = litter.Options{
	HidePrivateFields: true,
	DumpFunc:          dumpValue,
}

// dumpValue prints values as the constructor calls that build them.
func dumpValue(v reflect.Value, w io.Writer) bool {
	if !v.IsValid() || !v.CanInterface() {
		return false
	}
	var s string
	switch x := v.Interface().(type) {
	case query.Variable:
		s = "query.Variable(" + strconv.Quote(x.Name()) + ")"
	case query.Node:
		s = "query.Node(" + strconv.Quote(string(x)) + ")"
	case query.Literal:
		s = literalCall(x)
	default:
		return false
	}
	_, _ = io.WriteString(w, s)
	return true
}

func literalCall(l query.Literal) string {
	switch l.Kind() {
	case query.KindString:
		return "query.String(" + strconv.Quote(l.Lexical()) + ")"
	case query.KindBoolean:
		return "query.Bool(" + l.Lexical() + ")"
	case query.KindInteger:
		return "query.Int(" + l.Lexical() + ")"
	case query.KindUnsigned:
		return "query.Uint(" + l.Lexical() + ")"
	case query.KindFloat:
		return "query.Float(" + l.Lexical() + ")"
	case query.KindDecimal:
		return "query.MustDecimal(" + strconv.Quote(l.Lexical()) + ")"
	}
	return "query.Literal(" + strconv.Quote(l.String()) + ")"
}
