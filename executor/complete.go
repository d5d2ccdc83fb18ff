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
	"reflect"

	"github.com/briarloom/graphql"
	"github.com/briarloom/graphql/internal/future"
)

// completeValue recursively coerces a resolver's raw value into the GraphQL output shape declared
// by returnType, guided by the plan node in rctx. The plan's Kind must agree with returnType's
// shape; a mismatch means the planner and the schema have diverged and fails the evaluation.
func completeValue(
	ctx context.Context,
	rctx *resolveFieldContext,
	returnType graphql.TypeDef,
	value interface{}) future.AsyncVal {

	switch returnType := returnType.(type) {
	case graphql.Nullable:
		if value == nil {
			return future.Ready(nil)
		}
		if opt, ok := value.(graphql.Optional); ok {
			if !opt.HasValue() {
				return future.Ready(nil)
			}
			value = opt.Value()
		}
		return completeValue(ctx, rctx, returnType.InnerType(), value)

	case graphql.List:
		return completeListValue(ctx, rctx, returnType, value)

	case graphql.LeafType:
		return completeLeafValue(rctx, returnType, value)

	case graphql.Object:
		info := rctx.info
		if info.Kind != graphql.KindSelectFields {
			return future.ReadyErr(unexpectedKindError(info, "an object sub-selection"))
		}
		return executeFields(ctx, rctx.ctx, returnType, rctx.path, value, info.SubFields)

	case graphql.AbstractType:
		return completeAbstractValue(ctx, rctx, returnType, value)
	}

	return future.ReadyErr(graphql.NewError(
		fmt.Sprintf("Cannot complete value for field %q: unexpected output type %s.",
			rctx.info.Identifier, graphql.Inspect(returnType)),
		graphql.ErrKindInternal))
}

// completeLeafValue finishes a Scalar or Enum position by applying the type's result coercion. A
// coercion that yields no value completes to null.
func completeLeafValue(
	rctx *resolveFieldContext,
	returnType graphql.LeafType,
	value interface{}) future.AsyncVal {

	if rctx.info.Kind != graphql.KindResolveValue {
		return future.ReadyErr(unexpectedKindError(rctx.info, "a leaf value"))
	}

	coerced, err := returnType.CoerceResultValue(value)
	if err != nil {
		return future.ReadyErr(graphql.WrapErrorf(err,
			"Expected a value matching %s but got: %s", returnType.Name(), graphql.Inspect(value)))
	}
	return future.Ready(coerced)
}

// completeListValue finishes a List position: each element is completed concurrently under the
// plan's element node, and the results are assembled in input order regardless of which element
// resolves first. A failed element is rescued to null like any other field unless the failure is
// structural.
func completeListValue(
	ctx context.Context,
	rctx *resolveFieldContext,
	returnType graphql.List,
	value interface{}) future.AsyncVal {

	info := rctx.info
	if info.Kind != graphql.KindResolveCollection || info.Element == nil {
		return future.ReadyErr(unexpectedKindError(info, "a list element plan"))
	}

	elements, ok := asList(value)
	if !ok {
		return future.ReadyErr(graphql.NewError(
			fmt.Sprintf("Expected a list value for field %q but got: %s.",
				info.Identifier, graphql.Inspect(value))))
	}

	elementType := returnType.ElementType()
	completed := make([]future.AsyncVal, len(elements))
	for i, element := range elements {
		elementCtx := &resolveFieldContext{
			info:       info.Element,
			ctx:        rctx.ctx,
			parentType: rctx.parentType,
			args:       rctx.args,
			path:       rctx.path.WithIndex(i),
		}
		completed[i] = completeElement(ctx, elementCtx, elementType, element)
	}
	return future.CollectParallel(completed)
}

func completeElement(
	ctx context.Context,
	rctx *resolveFieldContext,
	elementType graphql.TypeDef,
	element interface{}) future.AsyncVal {

	if element == nil {
		return future.Ready(nil)
	}
	return completeValue(ctx, rctx, elementType, element).Rescue(func(err error) future.AsyncVal {
		if isStructural(err) {
			return future.ReadyErr(err)
		}
		return rescueToNull(rctx, err)
	})
}

// asList adapts a resolver's value into a []interface{} sequence. A string is a single-element
// list of the whole string, never a sequence of its characters. Anything that is not a slice or
// array is not a sequence.
func asList(value interface{}) ([]interface{}, bool) {
	switch v := value.(type) {
	case []interface{}:
		return v, true
	case string:
		return []interface{}{v}, true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		list := make([]interface{}, rv.Len())
		for i := range list {
			list[i] = rv.Index(i).Interface()
		}
		return list, true
	}
	return nil, false
}

// completeAbstractValue finishes an Interface or Union position: resolve the concrete Object type
// of the value, look up that type's sub-selection in the plan's type cases, and execute it. For a
// union the value is additionally unwrapped through its ResolveValue before field execution.
func completeAbstractValue(
	ctx context.Context,
	rctx *resolveFieldContext,
	returnType graphql.AbstractType,
	value interface{}) future.AsyncVal {

	info := rctx.info
	if info.Kind != graphql.KindResolveAbstraction {
		return future.ReadyErr(unexpectedKindError(info, "per-type sub-selections"))
	}

	runtimeType, err := resolveAbstractType(rctx.ctx.schema, returnType, value)
	if err != nil {
		return future.ReadyErr(err)
	}

	union, isUnion := returnType.(graphql.Union)

	subFields, ok := info.TypeCases[runtimeType.Name()]
	if !ok {
		if isUnion {
			return future.ReadyErr(graphql.NewError(
				fmt.Sprintf("Union %q does not define a case for type %q.",
					returnType.Name(), runtimeType.Name()),
				graphql.ErrKindInternal))
		}
		return future.ReadyErr(graphql.NewError(
			fmt.Sprintf("Interface %q is not implemented by type %q.",
				returnType.Name(), runtimeType.Name()),
			graphql.ErrKindInternal))
	}

	if isUnion {
		value = union.ResolveValue(value)
	}
	return executeFields(ctx, rctx.ctx, runtimeType, rctx.path, value, subFields)
}

func unexpectedKindError(info *graphql.ExecutionInfo, expected string) error {
	return graphql.NewError(
		fmt.Sprintf("Plan node for field %q carries %s where the executor expected %s; the plan and the schema disagree.",
			info.Identifier, info.Kind, expected),
		graphql.ErrKindInternal)
}
