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

// TypeMap keeps track of all named types reachable from a schema's root operations, declared
// types and directive arguments.
type TypeMap map[string]TypeDef

// Lookup finds a type with the given name, or nil.
func (m TypeMap) Lookup(name string) TypeDef { return m[name] }

// DirectiveList is a list of Directive.
type DirectiveList []Directive

// Lookup finds a directive with the given name, or nil.
func (l DirectiveList) Lookup(name string) Directive {
	for _, d := range l {
		if d.Name() == name {
			return d
		}
	}
	return nil
}

// SchemaConfig configures a schema to build with NewSchema.
type SchemaConfig struct {
	Query        Object
	Mutation     Object
	Subscription Object

	// Types lists additional named types reachable only through an abstract type's possible types
	// (e.g. a Union member that otherwise appears nowhere in Query/Mutation/Subscription) or that
	// should be present even though nothing references them yet.
	Types []TypeDef

	// Directives come first, followed by the standard directives (@skip, @include, @deprecated),
	// unless ExcludeStandardDirectives is set, in which case it is the exact directive list.
	Directives                DirectiveList
	ExcludeStandardDirectives bool
}

// Schema is a GraphQL service's collective type system: the types and directives it supports, and
// the root operation type for each of query, mutation and subscription.
//
// A Schema is immutable after NewSchema returns, other than the Execute/ExecuteInput function
// slots the Schema Compile Pass (C8) fills into its FieldDef/InputFieldDef values in place.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Schema
type Schema interface {
	TypeMap() TypeMap
	Directives() DirectiveList

	Query() Object
	Mutation() Object
	Subscription() Object

	// PossibleTypes returns the concrete Object types that can satisfy t: the implementing types of
	// an Interface, or the member types of a Union.
	PossibleTypes(t AbstractType) []Object
}

type schemaImpl struct {
	query        Object
	mutation     Object
	subscription Object

	typeMap    TypeMap
	directives DirectiveList

	possibleTypes map[AbstractType][]Object
}

var _ Schema = (*schemaImpl)(nil)

// NewSchema builds a Schema from config, walking every reachable type to populate TypeMap and
// each abstract type's possible types. It does not run the Schema Compile Pass (C8); call
// executor.CompileSchema on the result before serving requests.
func NewSchema(config *SchemaConfig) (Schema, error) {
	s := &schemaImpl{
		query:        config.Query,
		mutation:     config.Mutation,
		subscription: config.Subscription,
	}

	if config.ExcludeStandardDirectives {
		s.directives = append(DirectiveList{}, config.Directives...)
	} else {
		s.directives = append(append(DirectiveList{}, config.Directives...), StandardDirectives()...)
	}

	typeMap := TypeMap{}
	add := func(t TypeDef) error { return addType(typeMap, t) }

	if err := add(config.Query); err != nil {
		return nil, err
	}
	if err := add(config.Mutation); err != nil {
		return nil, err
	}
	if err := add(config.Subscription); err != nil {
		return nil, err
	}
	if err := add(Int()); err != nil {
		return nil, err
	}
	if err := add(Float()); err != nil {
		return nil, err
	}
	if err := add(String()); err != nil {
		return nil, err
	}
	if err := add(Boolean()); err != nil {
		return nil, err
	}
	if err := add(ID()); err != nil {
		return nil, err
	}
	for _, t := range config.Types {
		if err := add(t); err != nil {
			return nil, err
		}
	}
	for _, d := range s.directives {
		for _, arg := range d.Args() {
			if err := add(arg.Type); err != nil {
				return nil, err
			}
		}
	}
	s.typeMap = typeMap

	possibleTypes := map[AbstractType][]Object{}
	for _, t := range typeMap {
		switch t := t.(type) {
		case Object:
			for _, iface := range t.Interfaces() {
				possibleTypes[iface] = append(possibleTypes[iface], t)
			}
		case Union:
			possibleTypes[t] = t.PossibleTypes()
		}
	}
	s.possibleTypes = possibleTypes

	return s, nil
}

// addType walks t and everything it references (field types, argument types, interfaces, union
// members), recording every named type in typeMap. Returns an error if two distinct types claim
// the same name.
func addType(typeMap TypeMap, t TypeDef) error {
	if t == nil {
		return nil
	}

	stack := []TypeDef{t}
	for len(stack) > 0 {
		t, stack = stack[len(stack)-1], stack[:len(stack)-1]
		if t == nil {
			continue
		}

		if named, ok := t.(TypeDefWithName); ok {
			name := named.Name()
			if prev, exists := typeMap[name]; exists {
				if prev != t {
					return NewError(fmt.Sprintf(
						"Schema must contain uniquely named types but contains multiple types named %q.", name))
				}
				continue
			}
			typeMap[name] = t
		}

		switch t := t.(type) {
		case Scalar, Enum:
			// Leaf types reference nothing further.

		case Object:
			for _, iface := range t.Interfaces() {
				stack = append(stack, iface)
			}
			for _, field := range t.Fields() {
				stack = append(stack, field.Type)
				for _, arg := range field.Args {
					stack = append(stack, arg.Type)
				}
			}

		case Interface:
			for _, field := range t.Fields() {
				stack = append(stack, field.Type)
				for _, arg := range field.Args {
					stack = append(stack, arg.Type)
				}
			}

		case Union:
			for _, possible := range t.PossibleTypes() {
				stack = append(stack, possible)
			}

		case InputObject:
			for _, field := range t.Fields() {
				stack = append(stack, field.Type)
			}

		case List:
			stack = append(stack, t.ElementType())

		case Nullable:
			stack = append(stack, t.InnerType())

		default:
			return NewError(fmt.Sprintf("cannot add %v to schema: unsupported type %T", t, t))
		}
	}

	return nil
}

// TypeMap implements Schema.
func (s *schemaImpl) TypeMap() TypeMap { return s.typeMap }

// Directives implements Schema.
func (s *schemaImpl) Directives() DirectiveList { return s.directives }

// Query implements Schema.
func (s *schemaImpl) Query() Object { return s.query }

// Mutation implements Schema.
func (s *schemaImpl) Mutation() Object { return s.mutation }

// Subscription implements Schema.
func (s *schemaImpl) Subscription() Object { return s.subscription }

// PossibleTypes implements Schema.
func (s *schemaImpl) PossibleTypes(t AbstractType) []Object { return s.possibleTypes[t] }
