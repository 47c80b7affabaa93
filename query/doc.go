// Package query defines the WOQL query IR: the typed operands ([Value],
// [NodeValue], [DataValue], [ArithmeticValue]), arithmetic expressions, path
// patterns and the closed set of [Query] nodes.
//
// Trees are plain values. They are built by the fluent builder in the parent
// package or by the DSL parser, and are compared with ordinary structural
// equality.
package query
