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
	"sync"

	"github.com/briarloom/graphql"
	"github.com/briarloom/graphql/ast"
	"github.com/briarloom/graphql/internal/value"
)

// standardDirectivesOnce guards compilation of @skip's and @include's argument coercers, so that
// a planner calling CompileInclude before CompileSchema has run still finds them populated.
var standardDirectivesOnce sync.Once

func ensureStandardDirectives() {
	standardDirectivesOnce.Do(func() {
		compileDirectiveArgs(graphql.SkipDirective())
		compileDirectiveArgs(graphql.IncludeDirective())
	})
}

func compileDirectiveArgs(d graphql.Directive) {
	for _, arg := range d.Args() {
		if arg.ExecuteInput == nil {
			prefix := fmt.Sprintf("Directive %q: argument %q: ", d.Name(), arg.Name)
			arg.ExecuteInput = value.CompileByType(prefix, arg.Type)
		}
	}
}

// ShouldInclude reports whether a selection carrying directives survives @skip/@include for the
// given coerced variables. Neither directive has precedence over the other: the selection is
// queried only if the @skip condition is false and the @include condition is true, so it is
// excluded as soon as either says so. Directives other than @skip and @include have no effect
// here.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec--include
func ShouldInclude(directives []*ast.Directive, variables graphql.VariableValues) (bool, error) {
	if len(directives) == 0 {
		return true, nil
	}
	ensureStandardDirectives()

	skip, err := value.DirectiveValues(graphql.SkipDirective(), directives, variables)
	if err != nil {
		return false, err
	}
	if skip != nil {
		cond, err := boolDirectiveArg(graphql.SkipDirective(), skip)
		if err != nil {
			return false, err
		}
		if cond {
			return false, nil
		}
	}

	include, err := value.DirectiveValues(graphql.IncludeDirective(), directives, variables)
	if err != nil {
		return false, err
	}
	if include != nil {
		cond, err := boolDirectiveArg(graphql.IncludeDirective(), include)
		if err != nil {
			return false, err
		}
		if !cond {
			return false, nil
		}
	}

	return true, nil
}

// boolDirectiveArg reads the directive's coerced "if" condition, failing with an error naming the
// directive when the value is not a boolean.
func boolDirectiveArg(d graphql.Directive, args graphql.ArgumentValues) (bool, error) {
	cond, ok := args.Get("if").(bool)
	if !ok {
		return false, graphql.NewError(
			fmt.Sprintf(`Argument "if" on directive "@%s" requires a boolean value, got %s.`,
				d.Name(), graphql.Inspect(args.Get("if"))),
			graphql.ErrKindInternal)
	}
	return cond, nil
}

// CompileInclude pre-binds ShouldInclude over a selection's directives into the IncludeFunc a
// planner stores on ExecutionInfo.Include. The result is a pure function of the request's coerced
// variables, so evaluating it per request is all that remains at execution time.
func CompileInclude(directives []*ast.Directive) graphql.IncludeFunc {
	if len(directives) == 0 {
		return graphql.AlwaysInclude
	}
	return func(variables graphql.VariableValues) (bool, error) {
		return ShouldInclude(directives, variables)
	}
}
