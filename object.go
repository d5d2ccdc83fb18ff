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

// ObjectType is an Object a caller constructs directly, instead of through the teacher's
// NewObject/ObjectConfig builder (schema construction DSL, out of scope per spec.md §1).
type ObjectType struct {
	NameStr        string
	DescriptionStr string
	FieldList      FieldMap
	ImplementsList []Interface

	// IsTypeOfFn backs the default abstract-type resolver (§4.4) when the owning interface/union
	// has no explicit ResolveType. nil means this type never matches by default dispatch.
	IsTypeOfFn func(value interface{}) bool
}

var (
	_ TypeDef = (*ObjectType)(nil)
	_ Object  = (*ObjectType)(nil)
)

func (*ObjectType) graphqlTypeDef()   {}
func (*ObjectType) graphqlObjectType() {}

// Name implements TypeDefWithName.
func (o *ObjectType) Name() string { return o.NameStr }

// Description implements TypeDefWithDescription.
func (o *ObjectType) Description() string { return o.DescriptionStr }

// String implements fmt.Stringer.
func (o *ObjectType) String() string { return o.NameStr }

// Fields implements Object.
func (o *ObjectType) Fields() FieldMap { return o.FieldList }

// Interfaces implements Object.
func (o *ObjectType) Interfaces() []Interface { return o.ImplementsList }

// IsTypeOf implements Object.
func (o *ObjectType) IsTypeOf(value interface{}) bool {
	if o.IsTypeOfFn == nil {
		return false
	}
	return o.IsTypeOfFn(value)
}
