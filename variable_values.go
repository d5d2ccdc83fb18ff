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

// VariableValues holds a request's variables, already coerced against their declared types
// (§4.2). A nil map and an empty, non-nil map are both valid "no variables" states; use Lookup
// rather than indexing directly so callers don't need to care which.
type VariableValues map[string]interface{}

// NoVariableValues returns an empty VariableValues, for contexts (e.g. coercing a default value)
// that have no request variables in scope.
func NoVariableValues() VariableValues {
	return VariableValues{}
}

// Lookup returns the named variable's value and whether it was present.
func (v VariableValues) Lookup(name string) (interface{}, bool) {
	if v == nil {
		return nil, false
	}
	value, ok := v[name]
	return value, ok
}

// ArgumentValues holds a field or directive's coerced argument values (§4.2). A key absent from
// the map means the argument was neither supplied nor defaulted.
type ArgumentValues map[string]interface{}

// NoArgumentValues returns an empty ArgumentValues.
func NoArgumentValues() ArgumentValues {
	return ArgumentValues{}
}

// Lookup returns the named argument's value and whether it was present.
func (a ArgumentValues) Lookup(name string) (interface{}, bool) {
	if a == nil {
		return nil, false
	}
	value, ok := a[name]
	return value, ok
}

// Get returns the named argument's value, or nil if absent. A convenience for call sites that
// treat "absent" and "present with value nil" the same way (e.g. a boolean directive argument that
// is always required).
func (a ArgumentValues) Get(name string) interface{} {
	return a[name]
}
