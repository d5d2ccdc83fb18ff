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

import "strconv"

// ResponsePath is an array of "keys" where each key is either a string (an object field name) or
// an int (a list index). It is built top-down while the executor walks the plan, unlike the
// teacher's ResultNode.Path() which reconstructs it bottom-up from unsafe pointer arithmetic over
// a parent-linked result tree; building it top-down is simpler and needs no unsafe package.
//
// Reference: https://facebook.github.io/graphql/June2018/#example-90475
type ResponsePath struct {
	keys []interface{}
}

// Empty reports whether the path has no keys.
func (p ResponsePath) Empty() bool {
	return len(p.keys) == 0
}

// Keys returns the path's keys in order. The returned slice must not be mutated.
func (p ResponsePath) Keys() []interface{} {
	return p.keys
}

// Clone returns a copy of p that shares no backing array with it.
func (p ResponsePath) Clone() ResponsePath {
	keys := make([]interface{}, len(p.keys))
	copy(keys, p.keys)
	return ResponsePath{keys: keys}
}

// WithFieldName returns a new path with name appended.
func (p ResponsePath) WithFieldName(name string) ResponsePath {
	return ResponsePath{keys: append(append([]interface{}(nil), p.keys...), name)}
}

// WithIndex returns a new path with index appended.
func (p ResponsePath) WithIndex(index int) ResponsePath {
	return ResponsePath{keys: append(append([]interface{}(nil), p.keys...), index)}
}

// String renders the path in the common "a.b[2].c" diagnostic form.
func (p ResponsePath) String() string {
	var b []byte
	for i, key := range p.keys {
		switch key := key.(type) {
		case string:
			if i > 0 {
				b = append(b, '.')
			}
			b = append(b, key...)
		case int:
			b = append(b, '[')
			b = strconv.AppendInt(b, int64(key), 10)
			b = append(b, ']')
		}
	}
	return string(b)
}
