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

// ResolveInfo is passed to every field resolver (§3 "ResolveFieldContext"). It is created fresh
// for each field invocation by the executor; implementations are expected to be cheap value or
// small pointer types, not shared across fields.
type ResolveInfo interface {
	// Info is the planning node (graphql.ExecutionInfo) this field invocation was compiled from.
	Info() *ExecutionInfo

	// ReturnType is the field's declared output TypeDef.
	ReturnType() TypeDef

	// ParentType is the Object type that owns this field.
	ParentType() Object

	// Schema is the request's schema.
	Schema() Schema

	// Args are this field's coerced argument values (defaults already applied per §4.2).
	Args() ArgumentValues

	// Variables are the request's coerced variable values.
	Variables() VariableValues

	// AddError appends err to the request's error sink. Safe to call from multiple goroutines.
	AddError(err error)
}
