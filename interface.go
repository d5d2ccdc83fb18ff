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

// TypeResolver resolves the concrete Object type implementing an abstract (Interface or Union)
// type from a runtime value, per §4.4.
type TypeResolver func(value interface{}) Object

// InterfaceType is an Interface a caller constructs directly.
type InterfaceType struct {
	NameStr        string
	DescriptionStr string
	FieldList      FieldMap

	// ResolveTypeFn is the explicit resolver; nil means the default IsTypeOf-based resolver applies.
	ResolveTypeFn TypeResolver
}

var (
	_ TypeDef   = (*InterfaceType)(nil)
	_ Interface = (*InterfaceType)(nil)
)

func (*InterfaceType) graphqlTypeDef()     {}
func (*InterfaceType) graphqlAbstractType() {}
func (*InterfaceType) graphqlInterfaceType() {}

// Name implements TypeDefWithName.
func (i *InterfaceType) Name() string { return i.NameStr }

// Description implements TypeDefWithDescription.
func (i *InterfaceType) Description() string { return i.DescriptionStr }

// String implements fmt.Stringer.
func (i *InterfaceType) String() string { return i.NameStr }

// Fields implements Interface.
func (i *InterfaceType) Fields() FieldMap { return i.FieldList }

// ResolveType implements AbstractType.
func (i *InterfaceType) ResolveType() TypeResolver { return i.ResolveTypeFn }
