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

package graphql

import "github.com/briarloom/graphql/ast"

// ExecuteInputFunc is the compiled form of an input position (an argument, a variable, or an
// input object field), produced once by the Schema Compile Pass (C8) and stored in
// InputFieldDef.ExecuteInput. It coerces either a literal AST value or, for a Variable node, looks
// the variable up in the supplied variable map.
//
// Returning (nil, nil) means the coerced value is null.
type ExecuteInputFunc func(variables VariableValues, value ast.Value) (interface{}, error)

// InputFieldDef defines one input position: an argument of a field or directive, or a field of an
// InputObject.
type InputFieldDef struct {
	Name        string
	Description string
	Type        TypeDef
	DefaultValue interface{}
	HasDefault  bool

	// ExecuteInput is filled in by the Schema Compile Pass (C8); nil until then.
	ExecuteInput ExecuteInputFunc
}

// InputFieldList is an ordered list of InputFieldDef, used for a field or directive's arguments.
type InputFieldList []*InputFieldDef

// Lookup finds the named argument definition, or nil if absent.
func (l InputFieldList) Lookup(name string) *InputFieldDef {
	for _, f := range l {
		if f.Name == name {
			return f
		}
	}
	return nil
}
