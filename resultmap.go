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

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ResultMap is an ordered, fixed-shape string-keyed map: the set of keys and their order is fixed
// at construction time (from a selection set compiled ahead of execution) and can never grow or
// shrink afterward. Completing a field only ever overwrites the value already sitting in its slot.
//
// This differs from the teacher's ObjectResultValue, which pairs an []ExecutionNode with a
// []ResultNode addressed positionally, and from ccbrown-api-fu's OrderedMap, which grows
// dynamically via Set. ResultMap keeps ccbrown's plain map+order-slice representation (simpler
// than the teacher's unsafe-pointer-arithmetic result tree) but enforces the teacher's fixed-shape
// discipline: Update panics on an unknown key instead of silently inserting one, since an
// execution plan's selection set can never introduce a key the compiler didn't already see.
type ResultMap struct {
	keys   []string
	values []interface{}
	index  map[string]int
}

// NewResultMapFromKeys constructs a ResultMap with the given keys, in order, each initialized to
// nil. It is the shape a compiled selection set hands to the executor before any field has run.
func NewResultMapFromKeys(keys []string) *ResultMap {
	m := &ResultMap{
		keys:   append([]string(nil), keys...),
		values: make([]interface{}, len(keys)),
		index:  make(map[string]int, len(keys)),
	}
	for i, key := range m.keys {
		if _, dup := m.index[key]; dup {
			panic("graphql.NewResultMapFromKeys: duplicate key " + key)
		}
		m.index[key] = i
	}
	return m
}

// NewResultMapFromPairs constructs a ResultMap with the given key/value pairs already populated,
// in order. It is a convenience for tests and for building leaf-level maps (e.g. directive
// argument values) whose full shape is known up front.
func NewResultMapFromPairs(pairs ...interface{}) *ResultMap {
	if len(pairs)%2 != 0 {
		panic("graphql.NewResultMapFromPairs: odd number of arguments")
	}
	keys := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		keys = append(keys, pairs[i].(string))
	}
	m := NewResultMapFromKeys(keys)
	for i := 0; i < len(pairs); i += 2 {
		m.values[i/2] = pairs[i+1]
	}
	return m
}

// Count returns the number of keys in the map.
func (m *ResultMap) Count() int {
	return len(m.keys)
}

// Keys returns the map's keys in order. The returned slice must not be mutated.
func (m *ResultMap) Keys() []string {
	return m.keys
}

// Get returns the value at key and whether key is present.
func (m *ResultMap) Get(key string) (interface{}, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.values[i], true
}

// Update overwrites the value already sitting at key. It panics if key is not one of the map's
// fixed keys, since that would mean the plan and the result map have fallen out of sync.
func (m *ResultMap) Update(key string, value interface{}) {
	i, ok := m.index[key]
	if !ok {
		panic("graphql.ResultMap.Update: unknown key " + key)
	}
	m.values[i] = value
}

// Range calls fn for each key/value pair in order. Range stops early if fn returns false.
func (m *ResultMap) Range(fn func(key string, value interface{}) bool) {
	for i, key := range m.keys {
		if !fn(key, m.values[i]) {
			return
		}
	}
}

// Equal reports whether m and other have the same keys, in the same order, with deeply equal
// values. Nested *ResultMap and []interface{} values are compared structurally.
func (m *ResultMap) Equal(other *ResultMap) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil || len(m.keys) != len(other.keys) {
		return false
	}
	for i, key := range m.keys {
		if other.keys[i] != key {
			return false
		}
		if !valuesEqual(m.values[i], other.values[i]) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b interface{}) bool {
	switch a := a.(type) {
	case *ResultMap:
		b, ok := b.(*ResultMap)
		return ok && a.Equal(b)
	case []interface{}:
		b, ok := b.([]interface{})
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !valuesEqual(a[i], b[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// String renders the map as "{ key: value, key: value }" using Inspect for each value, for use in
// diagnostics and test failure messages.
func (m *ResultMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	m.Range(func(key string, value interface{}) bool {
		if b.Len() > 1 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(Inspect(value))
		return true
	})
	if m.Count() > 0 {
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}

// MarshalJSON renders the map as a JSON object preserving key order, which encoding/json's
// built-in map handling cannot do (it always sorts map keys alphabetically).
func (m *ResultMap) MarshalJSON() ([]byte, error) {
	var b []byte
	stream := jsoniter.ConfigDefault.BorrowStream(nil)
	defer jsoniter.ConfigDefault.ReturnStream(stream)

	stream.WriteObjectStart()
	m.Range(func(key string, value interface{}) bool {
		if stream.Buffered() > 1 {
			stream.WriteMore()
		}
		stream.WriteObjectField(key)
		stream.WriteVal(value)
		return true
	})
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}
	b = append(b, stream.Buffer()...)
	return b, nil
}
