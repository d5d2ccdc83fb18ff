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

package value

import (
	"github.com/briarloom/graphql"
	"github.com/briarloom/graphql/ast"
)

// DirectiveValues finds directiveName on astDirectives and coerces its arguments against def's
// declared ones, returning (nil, nil) if the directive isn't present in the list at all. This is
// C3's entry point for evaluating @skip/@include: a selection with neither directive present gets
// no ArgumentValues lookup at all, rather than one that happens to come back empty.
func DirectiveValues(
	def graphql.Directive,
	astDirectives []*ast.Directive,
	variables graphql.VariableValues,
) (graphql.ArgumentValues, error) {
	astDirective := lookupDirective(astDirectives, def.Name())
	if astDirective == nil {
		return nil, nil
	}
	return ArgumentValues(def.Args(), astDirective.Arguments, variables)
}

func lookupDirective(directives []*ast.Directive, name string) *ast.Directive {
	for _, d := range directives {
		if d.Name == name {
			return d
		}
	}
	return nil
}
