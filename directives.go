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

// This file implements the 3 directives required by the spec.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives

// DefaultDeprecationReason is the default reason text for an element deprecated without one.
const DefaultDeprecationReason = "No longer supported"

var skipDirective = &DirectiveDef{
	NameStr: "skip",
	DescriptionStr: "Directs the executor to skip this field or fragment when the `if` " +
		"argument is true.",
	LocationList: []DirectiveLocation{
		DirectiveLocationField,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
	},
	ArgList: InputFieldList{
		{Name: "if", Description: "Skipped when true.", Type: Boolean()},
	},
}

// SkipDirective returns the definition for @skip.
func SkipDirective() Directive { return skipDirective }

var includeDirective = &DirectiveDef{
	NameStr: "include",
	DescriptionStr: "Directs the executor to include this field or fragment only when " +
		"the `if` argument is true.",
	LocationList: []DirectiveLocation{
		DirectiveLocationField,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
	},
	ArgList: InputFieldList{
		{Name: "if", Description: "Included when true.", Type: Boolean()},
	},
}

// IncludeDirective returns the definition for @include.
func IncludeDirective() Directive { return includeDirective }

var deprecatedDirective = &DirectiveDef{
	NameStr:        "deprecated",
	DescriptionStr: "Marks an element of a GraphQL schema as no longer supported.",
	LocationList: []DirectiveLocation{
		DirectiveLocationFieldDefinition,
		DirectiveLocationEnumValue,
	},
	ArgList: InputFieldList{
		{
			Name: "reason",
			Description: "Explains why this element was deprecated, usually also including a " +
				"suggestion for how to access supported similar data. Formatted in " +
				"[Markdown](https://daringfireball.net/projects/markdown/).",
			Type:         NullableOf(String()),
			DefaultValue: DefaultDeprecationReason,
			HasDefault:   true,
		},
	},
}

// DeprecatedDirective returns the definition for @deprecated.
func DeprecatedDirective() Directive { return deprecatedDirective }

// StandardDirectives returns the directives required by every schema.
func StandardDirectives() []Directive {
	return []Directive{
		SkipDirective(),
		IncludeDirective(),
		DeprecatedDirective(),
	}
}
