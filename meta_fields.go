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

import "context"

// TypeNameMetaFieldName is the reserved field name every composite type exposes without declaring
// it, resolving to the name of the concrete object type of the field's parent value.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-Name-Introspection
const TypeNameMetaFieldName = "__typename"

// SchemaMetaFieldName and TypeMetaFieldName are the query root's reserved introspection fields.
// Their full field graph (the __Schema/__Type type definitions) is a schema construction concern
// and out of scope for this package; TypeNameMetaFieldDef below is the only meta field this
// package compiles an executor for. A caller wiring introspection supplies its own FieldDef for
// these two, typically backed by a separately maintained introspection schema.
const (
	SchemaMetaFieldName = "__schema"
	TypeMetaFieldName   = "__type"
)

// TypeNameMetaFieldDef is the FieldDef installed for __typename on every Object and Interface.
// Its resolver is independent of the declared parent type: it reports the dynamic type of
// whatever ResolveFieldContext.ParentType supplies. executeField (C7) sets that to the Object type
// whose fields are being executed, which at an abstract type position is the resolved runtime type.
var TypeNameMetaFieldDef = &FieldDef{
	Name:        TypeNameMetaFieldName,
	Description: "The name of the current Object type at runtime, without any implementation detail.",
	Type:        String(),
	Resolve: SyncResolve(func(_ context.Context, _ interface{}, info ResolveInfo) (interface{}, error) {
		return info.ParentType().Name(), nil
	}),
}
