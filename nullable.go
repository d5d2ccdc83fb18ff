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

import "fmt"

// Nullable is a TypeDef that opts an otherwise non-null position back into accepting a null value.
// Construct with NullableOf. Every TypeDef not wrapped in Nullable is non-null; see doc.go.
type Nullable interface {
	TypeDef
	WrappingType

	// InnerType returns the wrapped, non-null TypeDef.
	InnerType() TypeDef

	graphqlNullableType()
}

// Optional is a host-language optional wrapper. A resolver may hand a value implementing Optional
// to a Nullable position; completion unwraps it to its payload (or to null) before recursing into
// the inner type. A value not implementing Optional is treated as already unwrapped.
type Optional interface {
	// HasValue reports whether the optional holds a payload.
	HasValue() bool

	// Value returns the payload. Only meaningful when HasValue reports true.
	Value() interface{}
}

type nullableType struct {
	of TypeDef
}

// NullableOf wraps inner, which must not itself be Nullable, to describe a position that accepts
// a null value in addition to values of inner.
func NullableOf(inner TypeDef) Nullable {
	return &nullableType{of: inner}
}

var (
	_ TypeDef      = (*nullableType)(nil)
	_ WrappingType = (*nullableType)(nil)
	_ Nullable     = (*nullableType)(nil)
)

func (*nullableType) graphqlTypeDef()      {}
func (*nullableType) graphqlWrappingType() {}
func (*nullableType) graphqlNullableType() {}

// String implements fmt.Stringer.
func (n *nullableType) String() string { return fmt.Sprintf("%s?", n.of.String()) }

// InnerType implements Nullable.
func (n *nullableType) InnerType() TypeDef { return n.of }

// WrappedType implements WrappingType.
func (n *nullableType) WrappedType() TypeDef { return n.of }
