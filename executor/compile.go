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

package executor

import (
	"fmt"

	"github.com/briarloom/graphql"
	"github.com/briarloom/graphql/internal/value"
)

// CompileSchema is the one-shot pre-pass over schema's type map that fills every mutable
// execution slot: FieldDef.Execute on each Object field, and InputFieldDef.ExecuteInput on each
// field argument, input object field, and directive argument. It must run once, after NewSchema
// and before the first Evaluate; afterwards the schema is frozen for execution and freely shared
// by concurrent requests. Running it again recompiles the same slots to equivalent closures, so
// it is idempotent, but it is intended to run exactly once.
func CompileSchema(schema graphql.Schema) error {
	ensureStandardDirectives()
	for _, d := range schema.Directives() {
		compileDirectiveArgs(d)
	}

	for name, t := range schema.TypeMap() {
		switch t := t.(type) {
		case graphql.Object:
			if err := compileObjectFields(name, t); err != nil {
				return err
			}
		case graphql.InputObject:
			if err := compileInputObjectFields(name, t); err != nil {
				return err
			}
		}
	}

	// __typename is shared by every composite type rather than declared per object, so its
	// executor is compiled here instead of under any one type's field map.
	if graphql.TypeNameMetaFieldDef.Execute == nil {
		graphql.TypeNameMetaFieldDef.Execute = compileField(graphql.TypeNameMetaFieldDef)
	}

	return nil
}

func compileObjectFields(typeName string, t graphql.Object) error {
	for fieldName, field := range t.Fields() {
		field.Execute = compileField(field)

		for _, arg := range field.Args {
			prefix := fmt.Sprintf("Object %q: field %q: argument %q: ", typeName, fieldName, arg.Name)
			if !graphql.IsInputType(arg.Type) {
				return graphql.NewError(prefix+"type must be an input type", graphql.ErrKindInternal)
			}
			arg.ExecuteInput = value.CompileByType(prefix, arg.Type)
		}
	}
	return nil
}

func compileInputObjectFields(typeName string, t graphql.InputObject) error {
	// Fields() hands the defs out by value; the slots are filled through the ordered pointer
	// list, which every compilable InputObject exposes.
	defs, ok := t.(interface{ InputFields() graphql.InputFieldList })
	if !ok {
		return graphql.NewError(
			fmt.Sprintf("Input object %q does not expose its field definitions for compilation", typeName),
			graphql.ErrKindInternal)
	}

	for _, field := range defs.InputFields() {
		prefix := fmt.Sprintf("Input object %q: in field %q: ", typeName, field.Name)
		if !graphql.IsInputType(field.Type) {
			return graphql.NewError(prefix+"type must be an input type", graphql.ErrKindInternal)
		}
		field.ExecuteInput = value.CompileByType(prefix, field.Type)
	}
	return nil
}
