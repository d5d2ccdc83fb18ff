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

// ArgumentValues coerces the arguments a field or directive declares against the AST argument list
// a selection actually supplied, per spec §4.2. Unlike CoerceVariableValues, this does not call
// CompileByType itself: each def.ExecuteInput is expected to already be compiled, either by the
// Schema Compile Pass (C8) for a field/directive argument, or by a prior CompileByType call for any
// other caller. Looking it up fresh here would bypass C8's memoization and its error-prefix
// convention baked into the closure.
func ArgumentValues(
	defs graphql.InputFieldList,
	astArgs []*ast.Argument,
	variables graphql.VariableValues,
) (graphql.ArgumentValues, error) {
	if len(defs) == 0 {
		return graphql.NoArgumentValues(), nil
	}

	astByName := make(map[string]ast.Value, len(astArgs))
	for _, arg := range astArgs {
		astByName[arg.Name] = arg.Value
	}

	result := graphql.ArgumentValues{}
	for _, def := range defs {
		astValue, present := astByName[def.Name]
		if !present {
			if def.HasDefault {
				result[def.Name] = def.DefaultValue
			}
			continue
		}

		v, err := def.ExecuteInput(variables, astValue)
		if err != nil {
			return nil, err
		}
		if v == nil && def.HasDefault {
			result[def.Name] = def.DefaultValue
			continue
		}
		result[def.Name] = v
	}

	return result, nil
}
