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

// Package executor runs a pre-built, validated ExecutionPlan against a compiled Schema and
// produces an ordered result tree.
//
// The package has two phases. CompileSchema is the one-shot pre-pass that turns every field
// definition into an executor closure (user resolver fused with the type-directed completion for
// the field's return type) and every input position into a coercion closure; it runs once per
// schema, after which the schema is frozen and freely shared by concurrent requests. Evaluate is
// the per-request entry point: it coerces the request's variables, walks the plan's top-level
// fields with the plan's strategy (concurrently for queries, strictly in document order for
// mutations), and assembles a ResultMap whose keys are the included selections' response keys in
// plan order.
//
// Errors split into two categories. A failure inside a single field's resolver or completion is
// rescued: it is appended to the request's error sink, the field's slot holds null, and sibling
// fields are undisturbed. A structural failure -- the plan and the schema disagreeing on a field's
// shape, an abstract type resolving to a type the plan has no case for, a field traversed without
// a resolver -- is a programmer error and fails the whole evaluation instead.
package executor
