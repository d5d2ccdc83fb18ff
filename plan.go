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

// OperationKind identifies the root operation an ExecutionPlan serves.
type OperationKind uint8

const (
	OperationQuery OperationKind = iota
	OperationMutation
	OperationSubscription
)

// Strategy is the top-level collection discipline for an ExecutionPlan's top-level fields.
//
// Reference: spec §4.6, §5.
type Strategy uint8

const (
	// StrategyParallel schedules every included top-level field concurrently. Used by queries and
	// subscriptions.
	StrategyParallel Strategy = iota

	// StrategySequential executes top-level fields in document order, each starting only after the
	// previous has fully completed including its entire sub-tree. Used by mutations.
	StrategySequential
)

// ExecutionPlan is the planner's output: a typed, fragment-free tree of fields to execute and the
// discipline with which to execute them. Constructing one is out of scope for this package (it is
// the planner's job); this core only consumes it.
type ExecutionPlan struct {
	Operation   OperationKind
	Variables   []*VariableDefinition
	Fields      []*ExecutionInfo
	Strategy    Strategy
}

// VariableDefinition declares one variable an operation accepts, already bound to its schema
// TypeDef by the planner (no AST-type-to-schema-type resolution happens in this package).
type VariableDefinition struct {
	Name         string
	Type         TypeDef
	DefaultValue ast.Value // nil if the variable has no default
}

// ExecutionInfoKind tags which of ExecutionInfo's Kind-specific fields is populated.
type ExecutionInfoKind uint8

const (
	// KindUndefined marks a zero-value ExecutionInfo; never valid on a real plan node.
	KindUndefined ExecutionInfoKind = iota

	// KindSelectFields means the field's value is an Object; SubFields holds its sub-selection.
	KindSelectFields

	// KindResolveCollection means the field's value is a List; Element holds the per-element plan.
	KindResolveCollection

	// KindResolveAbstraction means the field's value is an Interface or Union; TypeCases maps each
	// possible concrete Object's name to its sub-selection.
	KindResolveAbstraction

	// KindResolveValue means the field's value is a leaf (Scalar or Enum); nothing further to plan.
	KindResolveValue
)

// String implements fmt.Stringer, for use in plan/schema mismatch diagnostics.
func (k ExecutionInfoKind) String() string {
	switch k {
	case KindSelectFields:
		return "SelectFields"
	case KindResolveCollection:
		return "ResolveCollection"
	case KindResolveAbstraction:
		return "ResolveAbstraction"
	case KindResolveValue:
		return "ResolveValue"
	}
	return "Undefined"
}

// IncludeFunc reports whether a selection survives @skip/@include evaluation for a given set of
// coerced request variables. Planning pre-binds this per spec §4.3; this core only calls it.
type IncludeFunc func(variables VariableValues) (bool, error)

// AlwaysInclude is the IncludeFunc for a selection with no @skip/@include directives.
func AlwaysInclude(VariableValues) (bool, error) { return true, nil }

// ExecutionInfo is one planned selection, corresponding to one response key.
type ExecutionInfo struct {
	// Identifier is the response key (the field's alias, or its name if unaliased).
	Identifier string

	// Definition is the schema FieldDef this selection invokes.
	Definition *FieldDef

	// Ast is the field's AST node; carries its argument list and directive list.
	Ast *ast.FieldNode

	// Include reports whether this selection survives directive evaluation (C3).
	Include IncludeFunc

	Kind ExecutionInfoKind

	// SubFields is valid when Kind == KindSelectFields.
	SubFields []*ExecutionInfo

	// Element is valid when Kind == KindResolveCollection.
	Element *ExecutionInfo

	// TypeCases is valid when Kind == KindResolveAbstraction, keyed by concrete Object name.
	TypeCases map[string][]*ExecutionInfo
}
