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

// DirectiveLocation specifies a valid location for a directive to be used.
//
// Reference: https://facebook.github.io/graphql/June2018/#DirectiveLocations
type DirectiveLocation string

const (
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"

	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// DirectiveDef is a Directive a caller constructs directly, rather than through the teacher's
// NewDirective/DirectiveConfig builder (schema construction DSL, out of scope per spec.md §1).
type DirectiveDef struct {
	NameStr        string
	DescriptionStr string
	LocationList   []DirectiveLocation
	ArgList        InputFieldList
}

var _ Directive = (*DirectiveDef)(nil)

// Name implements Directive.
func (d *DirectiveDef) Name() string { return d.NameStr }

// Description implements Directive.
func (d *DirectiveDef) Description() string { return d.DescriptionStr }

// Locations implements Directive.
func (d *DirectiveDef) Locations() []DirectiveLocation { return d.LocationList }

// Args implements Directive.
func (d *DirectiveDef) Args() InputFieldList { return d.ArgList }

// String implements fmt.Stringer.
func (d *DirectiveDef) String() string { return fmt.Sprintf("@%s", d.NameStr) }

// Directive is used by the executor (C3) to modify per-field execution, such as @skip/@include.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives
type Directive interface {
	fmt.Stringer

	Name() string
	Description() string
	Locations() []DirectiveLocation
	Args() InputFieldList
}
