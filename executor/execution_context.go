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
	"sync"

	"github.com/briarloom/graphql"
)

// ExecutionContext carries the per-request state shared by every field task: the schema, the
// plan, the root value, the coerced variables, and the caller's error sink. It lives exactly as
// long as one Evaluate call's async graph and is dropped when the final ResultMap resolves.
type ExecutionContext struct {
	schema    graphql.Schema
	plan      *graphql.ExecutionPlan
	rootValue interface{}
	variables graphql.VariableValues

	// mu serializes appends to errs; field tasks touch the sink from multiple goroutines and it
	// is the only mutable per-request state they share.
	mu   sync.Mutex
	errs *graphql.Errors
}

// Schema returns the request's schema.
func (ctx *ExecutionContext) Schema() graphql.Schema { return ctx.schema }

// Plan returns the plan being executed.
func (ctx *ExecutionContext) Plan() *graphql.ExecutionPlan { return ctx.plan }

// RootValue returns the host value acting as the parent of the top-level fields.
func (ctx *ExecutionContext) RootValue() interface{} { return ctx.rootValue }

// VariableValues returns the request's coerced variables.
func (ctx *ExecutionContext) VariableValues() graphql.VariableValues { return ctx.variables }

// AppendError records err in the sink as a field error observed at path. Safe for concurrent
// use. A non-*graphql.Error is wrapped; an error without a path or kind of its own picks up path
// and ErrKindExecution here.
func (ctx *ExecutionContext) AppendError(err error, path graphql.ResponsePath) {
	e, ok := err.(*graphql.Error)
	if !ok {
		e = graphql.NewError(err.Error(), err).(*graphql.Error)
	}
	if e.Path.Empty() && !path.Empty() {
		e.Path = path.Clone()
	}
	if e.Kind == graphql.ErrKindOther {
		e.Kind = graphql.ErrKindExecution
	}

	ctx.mu.Lock()
	ctx.errs.Append(e)
	ctx.mu.Unlock()
}

// resolveFieldContext is the per-field graphql.ResolveInfo: one is created for every field
// invocation (and for every list element during collection completion) and never shared across
// fields.
type resolveFieldContext struct {
	info       *graphql.ExecutionInfo
	ctx        *ExecutionContext
	parentType graphql.Object
	args       graphql.ArgumentValues
	path       graphql.ResponsePath
}

var _ graphql.ResolveInfo = (*resolveFieldContext)(nil)

// Info implements graphql.ResolveInfo.
func (r *resolveFieldContext) Info() *graphql.ExecutionInfo { return r.info }

// ReturnType implements graphql.ResolveInfo.
func (r *resolveFieldContext) ReturnType() graphql.TypeDef { return r.info.Definition.Type }

// ParentType implements graphql.ResolveInfo.
func (r *resolveFieldContext) ParentType() graphql.Object { return r.parentType }

// Schema implements graphql.ResolveInfo.
func (r *resolveFieldContext) Schema() graphql.Schema { return r.ctx.schema }

// Args implements graphql.ResolveInfo.
func (r *resolveFieldContext) Args() graphql.ArgumentValues { return r.args }

// Variables implements graphql.ResolveInfo.
func (r *resolveFieldContext) Variables() graphql.VariableValues { return r.ctx.variables }

// AddError implements graphql.ResolveInfo.
func (r *resolveFieldContext) AddError(err error) { r.ctx.AppendError(err, r.path) }
