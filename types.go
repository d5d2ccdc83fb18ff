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
	"fmt"

	"github.com/briarloom/graphql/ast"
)

// TypeDef is the common interface satisfied by every member of the schema's type graph: Scalar,
// Enum, Object, Interface, Union, InputObject, List and Nullable.
//
// Every TypeDef other than List and Nullable is non-null by construction. NullableOf(inner) is the
// wrapper that opts a position back into accepting a null value, and ListOf(inner) wraps a TypeDef
// to describe a sequence of it. This is the inverse of the conventional "NonNull wraps nullable"
// arrangement; see DESIGN.md for why.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Types
type TypeDef interface {
	fmt.Stringer

	// graphqlTypeDef marks the closed set of types that may implement TypeDef.
	graphqlTypeDef()
}

// LeafType is a TypeDef at which completion terminates: currently Scalar and Enum.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type LeafType interface {
	TypeDef
	TypeDefWithName

	// CoerceResultValue coerces a resolver's raw return value into the value to be serialized for
	// a field of this type; returning (nil, nil) yields a null result.
	CoerceResultValue(value interface{}) (interface{}, error)

	graphqlLeafType()
}

// AbstractType is an Interface or Union: a position whose concrete Object type depends on the
// runtime value and must be resolved per §4.4.
type AbstractType interface {
	TypeDef
	TypeDefWithName

	// ResolveType returns the explicit resolver for this abstract type, or nil if none was
	// configured (in which case the default IsTypeOf-based resolver applies).
	ResolveType() TypeResolver

	graphqlAbstractType()
}

// WrappingType wraps another TypeDef: List and Nullable.
type WrappingType interface {
	TypeDef

	// WrappedType returns the TypeDef this one wraps.
	WrappedType() TypeDef

	graphqlWrappingType()
}

// TypeDefWithName is implemented by every named TypeDef (everything except List and Nullable).
type TypeDefWithName interface {
	Name() string
}

// TypeDefWithDescription is implemented by TypeDefs carrying documentation.
type TypeDefWithDescription interface {
	Description() string
}

// Deprecation marks a field or enum value as deprecated, with an optional reason.
type Deprecation struct {
	Reason string
}

// Defined reports whether the deprecation is active (d is non-nil).
func (d *Deprecation) Defined() bool {
	return d != nil
}

//===----------------------------------------------------------------------------------------====//
// Scalar
//===----------------------------------------------------------------------------------------====//

// Scalar is a leaf TypeDef whose values are coerced to and from Go values by hand-written
// functions rather than a field map.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type Scalar interface {
	LeafType

	// CoerceVariableValue coerces a value from the request's variables map.
	CoerceVariableValue(value interface{}) (interface{}, error)

	// CoerceArgumentValue coerces a literal AST value from a field or directive argument.
	CoerceArgumentValue(value ast.Value) (interface{}, error)

	graphqlScalarType()
}

//===----------------------------------------------------------------------------------------====//
// Object
//===----------------------------------------------------------------------------------------====//

// Object is an intermediate TypeDef: a set of named fields, each independently resolved.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects
type Object interface {
	TypeDef
	TypeDefWithName
	TypeDefWithDescription

	// Fields returns the object's fields, keyed by name. FieldMap is a Go map, so ranging over it
	// visits the fields in no defined order.
	Fields() FieldMap

	// Interfaces lists the interfaces this object claims to implement.
	Interfaces() []Interface

	// IsTypeOf reports whether value is an instance of this object type. Used by the default
	// abstract-type resolver (§4.4) when the owning interface/union has no explicit ResolveType.
	IsTypeOf(value interface{}) bool

	graphqlObjectType()
}

//===----------------------------------------------------------------------------------------====//
// Interface
//===----------------------------------------------------------------------------------------====//

// Interface describes a set of fields that every implementing Object must provide.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Interfaces
type Interface interface {
	AbstractType

	Fields() FieldMap

	graphqlInterfaceType()
}

//===----------------------------------------------------------------------------------------====//
// Union
//===----------------------------------------------------------------------------------------====//

// Union describes a set of possible Object types with no fields of its own.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Unions
type Union interface {
	AbstractType

	// PossibleTypes lists the union's member Object types.
	PossibleTypes() []Object

	// ResolveValue unwraps a tagged host value into the payload to hand to the resolved member
	// type's field resolvers, prior to executeFields. The identity function if unset.
	ResolveValue(value interface{}) interface{}

	graphqlUnionType()
}

//===----------------------------------------------------------------------------------------====//
// Enum
//===----------------------------------------------------------------------------------------====//

// EnumValueMap maps an enum value's name to its definition.
type EnumValueMap map[string]EnumValue

// Lookup finds the enum value with the given name, or nil if there is none.
func (m EnumValueMap) Lookup(name string) EnumValue {
	return m[name]
}

// Enum is a leaf TypeDef whose values are serialized as strings but may be backed internally by
// any Go value (an int constant, typically).
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Enums
type Enum interface {
	LeafType

	Values() EnumValueMap

	// CoerceVariableValue coerces a value from the request's variables map.
	CoerceVariableValue(value interface{}) (interface{}, error)

	// CoerceArgumentValue coerces a literal AST value from a field or directive argument.
	CoerceArgumentValue(value ast.Value) (interface{}, error)

	graphqlEnumType()
}

// EnumValue is one member of an Enum type.
type EnumValue interface {
	Name() string
	Description() string

	// Value is the internal representation read when this member is supplied as input.
	Value() interface{}

	Deprecation() *Deprecation
}

//===------------------------------------------------------------------------------------------===//
// InputObject
//===------------------------------------------------------------------------------------------===//

// InputFieldMap maps an input field's name to its definition.
type InputFieldMap map[string]InputFieldDef

// InputObject describes a structured collection of input fields that may be supplied to an
// argument or variable. Unlike Object, its fields take no arguments and cannot reference
// interfaces or unions.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Objects
type InputObject interface {
	TypeDef
	TypeDefWithName
	TypeDefWithDescription

	Fields() InputFieldMap

	graphqlInputObjectType()
}

//===------------------------------------------------------------------------------------------===//
// Type predicates
//===------------------------------------------------------------------------------------------===//

// NamedTypeOf unwraps List and Nullable layers and returns the underlying named TypeDef.
func NamedTypeOf(t TypeDef) TypeDef {
	for {
		switch wrapped := t.(type) {
		case List:
			if wrapped == nil {
				return nil
			}
			t = wrapped.ElementType()
		case Nullable:
			if wrapped == nil {
				return nil
			}
			t = wrapped.InnerType()
		default:
			return t
		}
	}
}

// IsInputType reports whether t is valid for an argument or variable position.
func IsInputType(t TypeDef) bool {
	switch NamedTypeOf(t).(type) {
	case Scalar, Enum, InputObject:
		return true
	default:
		return false
	}
}

// IsOutputType reports whether t is valid for a field's output position.
func IsOutputType(t TypeDef) bool {
	switch NamedTypeOf(t).(type) {
	case Scalar, Object, Interface, Union, Enum:
		return true
	default:
		return false
	}
}

// IsCompositeType reports whether t is an Object, Interface or Union.
func IsCompositeType(t TypeDef) bool {
	switch t.(type) {
	case Object, Interface, Union:
		return true
	default:
		return false
	}
}

// IsNullableType reports whether t accepts a null value, i.e. is wrapped in Nullable.
func IsNullableType(t TypeDef) bool {
	_, ok := t.(Nullable)
	return ok
}

// IsNamedType reports whether t is not a List or Nullable wrapper.
func IsNamedType(t TypeDef) bool {
	return !IsWrappingType(t)
}

// IsLeafType reports whether t is a Scalar or Enum.
func IsLeafType(t TypeDef) bool {
	_, ok := t.(LeafType)
	return ok
}

// IsAbstractType reports whether t is an Interface or Union.
func IsAbstractType(t TypeDef) bool {
	_, ok := t.(AbstractType)
	return ok
}

// IsWrappingType reports whether t is a List or Nullable.
func IsWrappingType(t TypeDef) bool {
	_, ok := t.(WrappingType)
	return ok
}

// IsScalarType reports whether t is a Scalar.
func IsScalarType(t TypeDef) bool {
	_, ok := t.(Scalar)
	return ok
}

// IsObjectType reports whether t is an Object.
func IsObjectType(t TypeDef) bool {
	_, ok := t.(Object)
	return ok
}

// IsInterfaceType reports whether t is an Interface.
func IsInterfaceType(t TypeDef) bool {
	_, ok := t.(Interface)
	return ok
}

// IsUnionType reports whether t is a Union.
func IsUnionType(t TypeDef) bool {
	_, ok := t.(Union)
	return ok
}

// IsEnumType reports whether t is an Enum.
func IsEnumType(t TypeDef) bool {
	_, ok := t.(Enum)
	return ok
}

// IsInputObjectType reports whether t is an InputObject.
func IsInputObjectType(t TypeDef) bool {
	_, ok := t.(InputObject)
	return ok
}

// IsListType reports whether t is a List.
func IsListType(t TypeDef) bool {
	_, ok := t.(List)
	return ok
}
