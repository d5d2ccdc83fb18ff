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
	"context"
	"fmt"

	"github.com/briarloom/graphql"
	"github.com/briarloom/graphql/internal/future"
)

// compileField builds the executor closure stored in def.Execute: invoke the user resolver per
// its kind, then hand a non-null result to the type-directed completion for def.Type.
//
// A synchronous resolver's error is caught here -- reported to the sink, the field yields null.
// An asynchronous resolver's rejection (and any field-level completion failure on its chain) is
// caught by the final Rescue, with structural errors passed through to fail the evaluation.
// Completion failures on the synchronous path flow out unrescued; executeField applies the same
// structural-aware rescue around every invocation.
func compileField(def *graphql.FieldDef) graphql.FieldExecuteFunc {
	returnType := def.Type

	switch def.Resolve.Kind {
	case graphql.ResolveSync:
		resolve := def.Resolve.Sync
		return func(ctx context.Context, source interface{}, info graphql.ResolveInfo) future.AsyncVal {
			rctx, err := fieldContextOf(info)
			if err != nil {
				return future.ReadyErr(err)
			}
			value, err := resolve(ctx, source, info)
			if err != nil {
				return rescueToNull(rctx, err)
			}
			if value == nil {
				return future.Ready(nil)
			}
			return completeValue(ctx, rctx, returnType, value)
		}

	case graphql.ResolveAsync:
		resolve := def.Resolve.Async
		return func(ctx context.Context, source interface{}, info graphql.ResolveInfo) future.AsyncVal {
			rctx, err := fieldContextOf(info)
			if err != nil {
				return future.ReadyErr(err)
			}
			return resolve(ctx, source, info).
				Bind(func(value interface{}) future.AsyncVal {
					if value == nil {
						return future.Ready(nil)
					}
					return completeValue(ctx, rctx, returnType, value)
				}).
				Rescue(func(err error) future.AsyncVal {
					if isStructural(err) {
						return future.ReadyErr(err)
					}
					return rescueToNull(rctx, err)
				})
		}
	}

	// ResolveUndefined: the planner traversed a field nobody wired a resolver to.
	name := def.Name
	return func(context.Context, interface{}, graphql.ResolveInfo) future.AsyncVal {
		return future.ReadyErr(graphql.NewError(
			fmt.Sprintf("Field %q does not define a resolver and cannot be executed.", name),
			graphql.ErrKindInternal))
	}
}

// fieldContextOf recovers the executor's own per-field context from the ResolveInfo interface.
// Compiled executors are only ever invoked through executeField, which constructs one; anything
// else reaching here is misuse of the compiled schema.
func fieldContextOf(info graphql.ResolveInfo) (*resolveFieldContext, error) {
	rctx, ok := info.(*resolveFieldContext)
	if !ok {
		return nil, graphql.NewError(
			"compiled field executors require the ResolveInfo constructed by this package",
			graphql.ErrKindInternal)
	}
	return rctx, nil
}
