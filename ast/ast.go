/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package ast defines the slice of a GraphQL document's abstract syntax tree that the execution
// core actually touches: argument and directive values. Parsing a document into these nodes, and
// everything about field/fragment/operation structure, belongs to the planner (out of scope here;
// see graphql.ExecutionInfo, which already carries a field's resolved Arguments and Directives).
package ast

import "strconv"

// Value is a literal value appearing in an argument, directive argument, list, or object field,
// as written in a GraphQL document (or a variable reference to one supplied at request time).
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Values
type Value interface {
	// Interface returns the node itself as an interface{} value; a NullValue returns nil.
	Interface() interface{}

	valueNode()
}

// The following implement Value.
var (
	_ Value = Variable{}
	_ Value = IntValue{}
	_ Value = FloatValue{}
	_ Value = StringValue{}
	_ Value = BooleanValue{}
	_ Value = NullValue{}
	_ Value = EnumValue{}
	_ Value = ListValue{}
	_ Value = ObjectValue{}
)

// Variable is a reference to a request variable, e.g. `$name`.
type Variable struct {
	Name string
}

func (v Variable) Interface() interface{} { return v }
func (Variable) valueNode()               {}

// IntValue is an integer literal.
type IntValue struct {
	Value string
}

func (v IntValue) Interface() interface{} { return v }
func (IntValue) valueNode()               {}
func (v IntValue) String() string         { return v.Value }

// Int64Value parses the literal as a base-10 int64.
func (v IntValue) Int64Value() (int64, error) {
	return strconv.ParseInt(v.Value, 10, 64)
}

// FloatValue is a floating point literal.
type FloatValue struct {
	Value string
}

func (v FloatValue) Interface() interface{} { return v }
func (FloatValue) valueNode()               {}
func (v FloatValue) String() string         { return v.Value }

// Float64Value parses the literal as a float64.
func (v FloatValue) Float64Value() (float64, error) {
	return strconv.ParseFloat(v.Value, 64)
}

// StringValue is a string literal.
type StringValue struct {
	Value string
}

func (v StringValue) Interface() interface{} { return v }
func (StringValue) valueNode()               {}

// BooleanValue is a boolean literal.
type BooleanValue struct {
	Value bool
}

func (v BooleanValue) Interface() interface{} { return v }
func (BooleanValue) valueNode()               {}

// NullValue is the literal `null`.
type NullValue struct{}

func (NullValue) Interface() interface{} { return nil }
func (NullValue) valueNode()             {}

// EnumValue is an unquoted enum member name literal.
type EnumValue struct {
	Value string
}

func (v EnumValue) Interface() interface{} { return v }
func (EnumValue) valueNode()               {}

// ListValue is a `[ ... ]` literal.
type ListValue struct {
	Values []Value
}

func (v ListValue) Interface() interface{} { return v }
func (ListValue) valueNode()               {}

// ObjectField is one `name: value` entry of an ObjectValue.
type ObjectField struct {
	Name  string
	Value Value
}

// ObjectValue is a `{ ... }` literal.
type ObjectValue struct {
	Fields []*ObjectField
}

func (v ObjectValue) Interface() interface{} { return v }
func (ObjectValue) valueNode()               {}

// Argument is a single `name: value` pair attached to a field or directive.
//
// Reference: https://facebook.github.io/graphql/June2018/#Argument
type Argument struct {
	Name  string
	Value Value
}

// Directive is an `@name(args...)` annotation attached to a field or fragment selection.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Language.Directives
type Directive struct {
	Name      string
	Arguments []*Argument
}

// Lookup returns the named argument, or nil if absent.
func (d *Directive) Lookup(name string) *Argument {
	for _, arg := range d.Arguments {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}

// VariableDefinition declares one variable of an operation, along with its default.
type VariableDefinition struct {
	Variable     Variable
	DefaultValue Value // nil if none was given
}

// FieldNode carries the subset of a parsed `Field` selection that the executor needs: its
// arguments and directives. (Response key/alias and sub-selection structure live on
// graphql.ExecutionInfo, which is built by the planner from the full parsed Field.)
type FieldNode struct {
	Name       string
	Arguments  []*Argument
	Directives []*Directive
}

// Lookup returns the named argument, or nil if absent.
func (f *FieldNode) Lookup(name string) *Argument {
	for _, arg := range f.Arguments {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}
