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
	"github.com/briarloom/graphql"
	"github.com/briarloom/graphql/internal/future"
)

// multiError matches an aggregated error returned by a resolver so that each inner cause becomes
// an independent sink entry. Unpacking goes one level deep; an aggregate nested inside an
// aggregate lands in the sink as-is.
type multiError interface {
	error
	Errors() []error
}

// flattenFieldError unpacks an aggregated error into its causes, or returns err alone.
func flattenFieldError(err error) []error {
	if multi, ok := err.(multiError); ok {
		if causes := multi.Errors(); len(causes) > 0 {
			return causes
		}
	}
	return []error{err}
}

// isStructural reports whether err is a planner/schema misuse that must fail the enclosing
// computation rather than be rescued into a null field.
func isStructural(err error) bool {
	e, ok := err.(*graphql.Error)
	return ok && e.Kind == graphql.ErrKindInternal
}

// rescueToNull reports err on rctx's sink (unpacking an aggregate into its individual causes)
// and substitutes a null value for the field, leaving siblings undisturbed.
func rescueToNull(rctx *resolveFieldContext, err error) future.AsyncVal {
	for _, cause := range flattenFieldError(err) {
		rctx.AddError(cause)
	}
	return future.Ready(nil)
}
