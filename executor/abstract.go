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

	"github.com/briarloom/graphql"
)

// resolveAbstractType determines the concrete Object type of value at an interface or union
// position. An explicit resolver on the abstract type wins; otherwise the default resolver probes
// each of the schema's possible types for the first whose IsTypeOf accepts the value (for a
// union, the value unwrapped through its ResolveValue). Multiple matches are a schema bug; the
// first in the schema's possible-type order wins.
func resolveAbstractType(
	schema graphql.Schema,
	abstractType graphql.AbstractType,
	value interface{}) (graphql.Object, error) {

	if resolver := abstractType.ResolveType(); resolver != nil {
		runtimeType := resolver(value)
		if runtimeType == nil {
			return nil, graphql.NewError(
				fmt.Sprintf("Abstract type %s must resolve to an Object type at runtime for value %s, received nil.",
					abstractType.Name(), graphql.Inspect(value)),
				graphql.ErrKindInternal)
		}
		if !isPossibleType(schema, abstractType, runtimeType) {
			return nil, graphql.NewError(
				fmt.Sprintf(`Runtime Object type %q is not a possible type for %q.`,
					runtimeType.Name(), abstractType.Name()),
				graphql.ErrKindInternal)
		}
		return runtimeType, nil
	}

	candidate := value
	if union, ok := abstractType.(graphql.Union); ok {
		candidate = union.ResolveValue(value)
	}
	for _, possible := range schema.PossibleTypes(abstractType) {
		if possible.IsTypeOf(candidate) {
			return possible, nil
		}
	}

	return nil, graphql.NewError(
		fmt.Sprintf("Abstract type %s must resolve to an Object type at runtime for value %s.",
			abstractType.Name(), graphql.Inspect(value)),
		graphql.ErrKindInternal)
}

func isPossibleType(schema graphql.Schema, abstractType graphql.AbstractType, t graphql.Object) bool {
	for _, possible := range schema.PossibleTypes(abstractType) {
		if possible == t {
			return true
		}
	}
	return false
}
