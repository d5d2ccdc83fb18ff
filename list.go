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

// List is a TypeDef describing a sequence of another TypeDef. Construct with ListOf.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.List
type List interface {
	TypeDef
	WrappingType

	// ElementType returns the TypeDef of the list's elements.
	ElementType() TypeDef

	graphqlListType()
}

type listType struct {
	of TypeDef
}

// ListOf wraps elementType to describe a list of it.
func ListOf(elementType TypeDef) List {
	return &listType{of: elementType}
}

var (
	_ TypeDef      = (*listType)(nil)
	_ WrappingType = (*listType)(nil)
	_ List         = (*listType)(nil)
)

func (*listType) graphqlTypeDef()      {}
func (*listType) graphqlWrappingType() {}
func (*listType) graphqlListType()     {}

// String implements fmt.Stringer.
func (l *listType) String() string { return fmt.Sprintf("[%s]", l.of.String()) }

// ElementType implements List.
func (l *listType) ElementType() TypeDef { return l.of }

// WrappedType implements WrappingType.
func (l *listType) WrappedType() TypeDef { return l.of }
