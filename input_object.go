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

// InputObjectType is an InputObject a caller constructs with NewInputObjectType from an ordered
// field list, rather than through the teacher's InputObjectConfig/BuildInputFieldMap builder
// (schema construction DSL, out of scope per spec.md §1).
type InputObjectType struct {
	NameStr        string
	DescriptionStr string
	FieldList      InputFieldList
}

var (
	_ TypeDef     = (*InputObjectType)(nil)
	_ InputObject = (*InputObjectType)(nil)
)

// NewInputObjectType constructs an InputObjectType from an ordered field list.
func NewInputObjectType(name, description string, fields InputFieldList) *InputObjectType {
	return &InputObjectType{
		NameStr:        name,
		DescriptionStr: description,
		FieldList:      fields,
	}
}

func (*InputObjectType) graphqlTypeDef()        {}
func (*InputObjectType) graphqlInputObjectType() {}

// Name implements TypeDefWithName.
func (o *InputObjectType) Name() string { return o.NameStr }

// Description implements TypeDefWithDescription.
func (o *InputObjectType) Description() string { return o.DescriptionStr }

// String implements fmt.Stringer.
func (o *InputObjectType) String() string { return o.NameStr }

// InputFields returns the ordered field definitions by pointer, which is how the Schema Compile
// Pass (C8) fills each field's ExecuteInput slot in place.
func (o *InputObjectType) InputFields() InputFieldList { return o.FieldList }

// Fields implements InputObject. The map is rebuilt from FieldList on each call so it always
// reflects the ExecuteInput the Schema Compile Pass (C8) fills into each *InputFieldDef in place.
func (o *InputObjectType) Fields() InputFieldMap {
	fieldMap := make(InputFieldMap, len(o.FieldList))
	for _, f := range o.FieldList {
		fieldMap[f.Name] = *f
	}
	return fieldMap
}
