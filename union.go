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

// UnionType is a Union a caller constructs directly.
type UnionType struct {
	NameStr        string
	DescriptionStr string
	Types          []Object

	// ResolveTypeFn is the explicit resolver; nil means the default IsTypeOf-based resolver applies.
	ResolveTypeFn TypeResolver

	// ResolveValueFn unwraps a tagged host value (e.g. a Go interface value or a one-of wrapper
	// struct) into the payload handed to the resolved member type's field resolvers. The identity
	// function if nil.
	ResolveValueFn func(value interface{}) interface{}
}

var (
	_ TypeDef = (*UnionType)(nil)
	_ Union   = (*UnionType)(nil)
)

func (*UnionType) graphqlTypeDef()      {}
func (*UnionType) graphqlAbstractType() {}
func (*UnionType) graphqlUnionType()    {}

// Name implements TypeDefWithName.
func (u *UnionType) Name() string { return u.NameStr }

// Description implements TypeDefWithDescription.
func (u *UnionType) Description() string { return u.DescriptionStr }

// String implements fmt.Stringer.
func (u *UnionType) String() string { return u.NameStr }

// PossibleTypes implements Union.
func (u *UnionType) PossibleTypes() []Object { return u.Types }

// ResolveType implements AbstractType.
func (u *UnionType) ResolveType() TypeResolver { return u.ResolveTypeFn }

// ResolveValue implements Union.
func (u *UnionType) ResolveValue(value interface{}) interface{} {
	if u.ResolveValueFn == nil {
		return value
	}
	return u.ResolveValueFn(value)
}
