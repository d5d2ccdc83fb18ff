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

// Package graphql provides the type system that a compiled execution plan runs against: scalars,
// enums, objects, interfaces, unions, input objects, lists and nullable wrappers, plus the schema
// that ties them together.
//
// Every type other than List and Nullable is non-null by construction. NullableOf(inner) is the
// wrapper that opts a position back into accepting null; similarly ListOf(inner) wraps an inner
// type to describe a sequence of it. This is the inverse of the common "NonNull wraps nullable"
// convention, and is deliberate: see DESIGN.md.
//
// Building a Schema from these types is this package's job; parsing, validating and planning a
// GraphQL document into an ExecutionPlan that references them is somebody else's (package
// executor consumes the result, it does not produce it).
package graphql
