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
	"strings"

	"github.com/briarloom/graphql"
	"github.com/briarloom/graphql/ast"
	"github.com/briarloom/graphql/internal/future"
	"github.com/briarloom/graphql/internal/util"
	"github.com/briarloom/graphql/internal/value"
)

// Evaluate is the package's per-request entry point: coerce the request's raw variables against
// the plan's variable definitions, build the ExecutionContext, and run the plan's top-level
// fields against schema with root as their source value. Field errors are appended to errs; a
// structural failure (variable coercion, planner/schema misuse) fails the returned AsyncVal
// before or instead of producing a map.
func Evaluate(
	ctx context.Context,
	schema graphql.Schema,
	plan *graphql.ExecutionPlan,
	variables map[string]interface{},
	root interface{},
	errs *graphql.Errors) future.AsyncVal {

	coerced, coercionErrs := value.CoerceVariableValues(plan.Variables, variables)
	if coercionErrs.HaveOccurred() {
		return future.ReadyErr(variableCoercionError(coercionErrs))
	}

	rootType, err := rootOperationType(schema, plan.Operation)
	if err != nil {
		return future.ReadyErr(err)
	}

	ectx := &ExecutionContext{
		schema:    schema,
		plan:      plan,
		rootValue: root,
		variables: coerced,
		errs:      errs,
	}

	// The final Bind re-asserts the result-map invariant: whatever the plan walk produced, the
	// value Evaluate resolves with is a *graphql.ResultMap or nothing.
	return executePlan(ctx, ectx, plan, rootType, root).Bind(func(v interface{}) future.AsyncVal {
		if m, ok := v.(*graphql.ResultMap); ok {
			return future.Ready(m)
		}
		return future.ReadyErr(graphql.NewError(
			fmt.Sprintf("plan execution produced %s instead of a result map", graphql.Inspect(v)),
			graphql.ErrKindInternal))
	})
}

func variableCoercionError(errs graphql.Errors) error {
	first := errs.Errors[0]
	if len(errs.Errors) == 1 {
		return first
	}
	return graphql.WrapErrorf(first,
		"coercion of request variables failed with %d errors", len(errs.Errors))
}

func rootOperationType(schema graphql.Schema, op graphql.OperationKind) (graphql.Object, error) {
	var (
		rootType graphql.Object
		name     string
	)
	switch op {
	case graphql.OperationQuery:
		rootType, name = schema.Query(), "query"
	case graphql.OperationMutation:
		rootType, name = schema.Mutation(), "mutation"
	case graphql.OperationSubscription:
		rootType, name = schema.Subscription(), "subscription"
	default:
		return nil, graphql.NewError(
			fmt.Sprintf("unknown operation kind %d", op), graphql.ErrKindInternal)
	}
	if rootType == nil {
		return nil, graphql.NewError(
			fmt.Sprintf("schema does not define a %s root type", name), graphql.ErrKindInternal)
	}
	return rootType, nil
}

// executePlan runs the plan's top-level fields against rootType with the plan's strategy:
// Parallel schedules every included field concurrently, Sequential completes each field's entire
// sub-tree before invoking the next field's resolver.
func executePlan(
	ctx context.Context,
	ectx *ExecutionContext,
	plan *graphql.ExecutionPlan,
	rootType graphql.Object,
	root interface{}) future.AsyncVal {

	if plan.Strategy == graphql.StrategySequential {
		return executeFieldsSequentially(ctx, ectx, rootType, graphql.ResponsePath{}, root, plan.Fields)
	}
	return executeFields(ctx, ectx, rootType, graphql.ResponsePath{}, root, plan.Fields)
}

// executeFields runs every included selection in infos against source concurrently and assembles
// the results into a ResultMap keyed by each selection's Identifier in plan order. Concurrent
// completion never perturbs that order; the collector assembles by index.
func executeFields(
	ctx context.Context,
	ectx *ExecutionContext,
	parentType graphql.Object,
	path graphql.ResponsePath,
	source interface{},
	infos []*graphql.ExecutionInfo) future.AsyncVal {

	included, err := includedFields(ectx, infos)
	if err != nil {
		return future.ReadyErr(err)
	}

	keys := make([]string, len(included))
	tasks := make([]future.AsyncVal, len(included))
	for i, info := range included {
		keys[i] = info.Identifier
		tasks[i] = executeField(ctx, ectx, parentType, path, source, info)
	}

	return future.CollectParallel(tasks).Map(assembleResultMap(keys))
}

// includedFields filters infos by each selection's pre-bound @skip/@include predicate. A nil
// Include means the selection carries no directives and is always included.
func includedFields(ectx *ExecutionContext, infos []*graphql.ExecutionInfo) ([]*graphql.ExecutionInfo, error) {
	included := make([]*graphql.ExecutionInfo, 0, len(infos))
	for _, info := range infos {
		include := info.Include
		if include == nil {
			include = graphql.AlwaysInclude
		}
		ok, err := include(ectx.variables)
		if err != nil {
			return nil, err
		}
		if ok {
			included = append(included, info)
		}
	}
	return included, nil
}

// executeField builds the per-field ResolveFieldContext (arguments coerced, response path
// extended) and invokes the field's compiled executor. Any failure that is not structural is
// rescued: the error lands in the sink and the field's slot holds null, so siblings always
// complete.
func executeField(
	ctx context.Context,
	ectx *ExecutionContext,
	parentType graphql.Object,
	path graphql.ResponsePath,
	source interface{},
	info *graphql.ExecutionInfo) future.AsyncVal {

	def := info.Definition
	if def == nil {
		return future.ReadyErr(unknownFieldError(parentType, info.Identifier))
	}
	if def.Execute == nil {
		return future.ReadyErr(graphql.NewError(
			fmt.Sprintf("field %q on type %q has no compiled executor; run CompileSchema before serving requests",
				info.Identifier, parentType.Name()),
			graphql.ErrKindInternal))
	}

	rctx := &resolveFieldContext{
		info:       info,
		ctx:        ectx,
		parentType: parentType,
		path:       path.WithFieldName(info.Identifier),
	}

	var astArgs []*ast.Argument
	if info.Ast != nil {
		astArgs = info.Ast.Arguments
	}
	args, err := value.ArgumentValues(graphql.InputFieldList(def.Args), astArgs, ectx.variables)
	if err != nil {
		return rescueToNull(rctx, err)
	}
	rctx.args = args

	return def.Execute(ctx, source, rctx).Rescue(func(err error) future.AsyncVal {
		if isStructural(err) {
			return future.ReadyErr(err)
		}
		return rescueToNull(rctx, err)
	})
}

// unknownFieldError reports a plan node naming no field definition. A plan only arrives here with
// validation skipped or diverged, so the message suggests close matches from the parent type the
// way a validator's unknown-field error would.
func unknownFieldError(parentType graphql.Object, name string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Cannot query field %q on type %q.", name, parentType.Name())

	options := make([]string, 0, len(parentType.Fields()))
	for fieldName := range parentType.Fields() {
		options = append(options, fieldName)
	}
	if suggestions := util.SuggestionList(name, options); len(suggestions) > 0 {
		b.WriteString(" Did you mean ")
		util.OrList(&b, suggestions, 5, true)
		b.WriteString("?")
	}

	return graphql.NewError(b.String(), graphql.ErrKindInternal)
}

// assembleResultMap pairs collected values with their response keys, in plan order.
func assembleResultMap(keys []string) func(interface{}) interface{} {
	return func(v interface{}) interface{} {
		values := v.([]interface{})
		result := graphql.NewResultMapFromKeys(keys)
		for i, key := range keys {
			result.Update(key, values[i])
		}
		return result
	}
}
