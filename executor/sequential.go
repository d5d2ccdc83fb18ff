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

	"github.com/briarloom/graphql"
	"github.com/briarloom/graphql/internal/future"
)

// executeFieldsSequentially is executeFields under the Sequential strategy: field i+1's resolver
// does not run until field i's entire sub-tree has completed, so a mutation's observable effects
// (and its rescued errors) precede the next sibling's invocation. Only a structural failure stops
// the chain; later fields then never run.
func executeFieldsSequentially(
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
	items := make([]interface{}, len(included))
	for i, info := range included {
		keys[i] = info.Identifier
		items[i] = info
	}

	return future.CollectSequential(items, func(item interface{}, _ int) future.AsyncVal {
		return executeField(ctx, ectx, parentType, path, source, item.(*graphql.ExecutionInfo))
	}).Map(assembleResultMap(keys))
}
