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
	"github.com/briarloom/graphql/ast"
)

// EnumValueDef is one member of an EnumType, constructed directly rather than through a builder.
type EnumValueDef struct {
	NameStr        string
	DescriptionStr string
	InternalValue  interface{}
	DeprecationVal *Deprecation
}

var _ EnumValue = (*EnumValueDef)(nil)

func (v *EnumValueDef) Name() string            { return v.NameStr }
func (v *EnumValueDef) Description() string      { return v.DescriptionStr }
func (v *EnumValueDef) Value() interface{}       { return v.InternalValue }
func (v *EnumValueDef) Deprecation() *Deprecation { return v.DeprecationVal }

// EnumType is an Enum a caller constructs directly. Values are matched to a host value with a
// reverse lookup by InternalValue built once in NewEnumType.
type EnumType struct {
	NameStr        string
	DescriptionStr string
	ValueList      []*EnumValueDef

	valueMap    EnumValueMap
	reverse     map[interface{}]*EnumValueDef
}

var (
	_ TypeDef = (*EnumType)(nil)
	_ Enum    = (*EnumType)(nil)
)

// NewEnumType builds the name->value and value->name lookup tables. Must be called before the
// type is used; Schema Compile Pass (C8) does not touch Enum, so this is the caller's
// responsibility at schema-construction time.
func NewEnumType(name, description string, values []*EnumValueDef) *EnumType {
	e := &EnumType{
		NameStr:        name,
		DescriptionStr: description,
		ValueList:      values,
		valueMap:       make(EnumValueMap, len(values)),
		reverse:        make(map[interface{}]*EnumValueDef, len(values)),
	}
	for _, v := range values {
		e.valueMap[v.NameStr] = v
		e.reverse[v.InternalValue] = v
	}
	return e
}

func (*EnumType) graphqlTypeDef() {}
func (*EnumType) graphqlLeafType() {}
func (*EnumType) graphqlEnumType() {}

// Name implements TypeDefWithName.
func (e *EnumType) Name() string { return e.NameStr }

// Description implements TypeDefWithDescription.
func (e *EnumType) Description() string { return e.DescriptionStr }

// String implements fmt.Stringer.
func (e *EnumType) String() string { return e.NameStr }

// Values implements Enum.
func (e *EnumType) Values() EnumValueMap { return e.valueMap }

// CoerceResultValue implements LeafType: a resolver's internal value is coerced to its member
// name; an unrecognized value yields (nil, nil), completing to null per §4.5's Enum row.
func (e *EnumType) CoerceResultValue(value interface{}) (interface{}, error) {
	v, ok := e.reverse[value]
	if !ok {
		return nil, nil
	}
	return v.NameStr, nil
}

// CoerceVariableValue coerces a name supplied via the variables map to its internal value.
func (e *EnumType) CoerceVariableValue(value interface{}) (interface{}, error) {
	name, ok := value.(string)
	if !ok {
		return nil, NewCoercionError("Enum %q cannot represent non-string value: %v", e.NameStr, value)
	}
	v, ok := e.valueMap[name]
	if !ok {
		return nil, NewCoercionError("Value %q does not exist in %q enum.", name, e.NameStr)
	}
	return v.Value(), nil
}

// CoerceArgumentValue coerces an unquoted enum literal to its internal value.
func (e *EnumType) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	enumValue, ok := value.(ast.EnumValue)
	if !ok {
		return nil, NewCoercionError("Enum %q cannot represent non-enum value: %v", e.NameStr, value.Interface())
	}
	v, ok := e.valueMap[enumValue.Value]
	if !ok {
		return nil, NewCoercionError("Value %q does not exist in %q enum.", enumValue.Value, e.NameStr)
	}
	return v.Value(), nil
}
