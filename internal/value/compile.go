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

// Package value implements C2 (Input Coercion): CompileByType turns a TypeDef into the compiled
// ExecuteInputFunc the Schema Compile Pass (C8) stores on each InputFieldDef, and
// CoerceVariableValues/ArgumentValues orchestrate calling those compiled functions against a
// request's raw variables and a selection's AST argument list.
package value

import (
	"fmt"

	"github.com/briarloom/graphql"
	"github.com/briarloom/graphql/ast"
	"github.com/modern-go/concurrent"
)

// compiled memoizes CompileByType's result per (error prefix, TypeDef) pair: the same type under
// the same prefix compiles once. A type reached under different prefixes (each field argument C8
// compiles carries its own prefix) compiles once per prefix.
var compiled concurrent.Map

// CompileByType returns the ExecuteInputFunc for t, building and memoizing it on first use.
// errPrefix is prepended to every error message CompileByType's closures produce, matching C8's
// convention (e.g. `Object "X": field "f": argument "a": `).
func CompileByType(errPrefix string, t graphql.TypeDef) graphql.ExecuteInputFunc {
	key := compileKey{errPrefix: errPrefix, t: t}
	if fn, ok := compiled.Load(key); ok {
		return fn.(graphql.ExecuteInputFunc)
	}
	fn := compileType(errPrefix, t)
	actual, _ := compiled.LoadOrStore(key, fn)
	return actual.(graphql.ExecuteInputFunc)
}

// compileKey distinguishes compilations of the same TypeDef under different error prefixes (an
// InputObject reused by two arguments with different blame text compiles twice, each memoized).
type compileKey struct {
	errPrefix string
	t         graphql.TypeDef
}

// compileType builds the ExecuteInputFunc for t. Every branch first handles a variable reference
// or an explicit null literal identically: a variable's already-coerced host value is returned
// as-is (validation, out of scope here, is assumed to have matched its declared type to t); an
// explicit null is accepted only if t is Nullable. Everything past that point deals only with
// type-specific literal coercion.
func compileType(errPrefix string, t graphql.TypeDef) graphql.ExecuteInputFunc {
	_, nullable := t.(graphql.Nullable)
	literal := compileLiteral(errPrefix, t)

	return func(variables graphql.VariableValues, astValue ast.Value) (interface{}, error) {
		if v, ok := astValue.(ast.Variable); ok {
			val, exists := variables.Lookup(v.Name)
			if !exists {
				return nil, graphql.NewCoercionError(`%svalue of variable "$%s" is undefined`, errPrefix, v.Name)
			}
			if val == nil && !nullable {
				return nil, graphql.NewCoercionError(`%svariable "$%s" does not accept a null value`, errPrefix, v.Name)
			}
			return val, nil
		}
		if _, ok := astValue.(ast.NullValue); ok {
			if !nullable {
				return nil, graphql.NewCoercionError("%sexpected non-nullable type %s not to be null", errPrefix, graphql.Inspect(t))
			}
			return nil, nil
		}
		return literal(variables, astValue)
	}
}

// compileLiteral builds the part of ExecuteInputFunc that coerces an actual literal AST value
// (never ast.Variable or ast.NullValue; compileType's wrapper has already handled those).
func compileLiteral(errPrefix string, t graphql.TypeDef) graphql.ExecuteInputFunc {
	switch t := t.(type) {
	case graphql.Nullable:
		// Delegate entirely to the inner type's compiled function; it independently re-derives
		// nullability (false, since t.InnerType() is never itself Nullable) so this adds no behavior
		// beyond unwrapping the layer.
		return CompileByType(errPrefix, t.InnerType())

	case graphql.List:
		return compileListType(errPrefix, t)

	case graphql.Scalar:
		return compileLeafType(errPrefix, t, t.CoerceArgumentValue)

	case graphql.Enum:
		return compileLeafType(errPrefix, t, t.CoerceArgumentValue)

	case graphql.InputObject:
		return compileInputObjectType(errPrefix, t)
	}

	return func(graphql.VariableValues, ast.Value) (interface{}, error) {
		return nil, graphql.NewError(fmt.Sprintf("%sunsupported input type %T", errPrefix, t))
	}
}

func compileLeafType(
	errPrefix string,
	t graphql.LeafType,
	coerceArgument func(ast.Value) (interface{}, error),
) graphql.ExecuteInputFunc {
	return func(_ graphql.VariableValues, astValue ast.Value) (interface{}, error) {
		v, err := coerceArgument(astValue)
		if err != nil {
			return nil, graphql.WrapErrorf(err, "%sexpected type %s", errPrefix, t.Name())
		}
		return v, nil
	}
}

// compileListType coerces a list literal element-by-element, and per the GraphQL spec also
// accepts a single non-list value by wrapping it in a one-element list.
func compileListType(errPrefix string, t graphql.List) graphql.ExecuteInputFunc {
	elementType := t.ElementType()
	_, elementNullable := elementType.(graphql.Nullable)
	element := CompileByType(errPrefix, elementType)

	return func(variables graphql.VariableValues, astValue ast.Value) (interface{}, error) {
		list, ok := astValue.(ast.ListValue)
		if !ok {
			coerced, err := element(variables, astValue)
			if err != nil {
				return nil, err
			}
			return []interface{}{coerced}, nil
		}

		result := make([]interface{}, len(list.Values))
		for i, v := range list.Values {
			coerced, err := element(variables, v)
			if err != nil {
				return nil, err
			}
			if coerced == nil && !elementNullable {
				return nil, graphql.NewCoercionError("%slist does not accept a null element value", errPrefix)
			}
			result[i] = coerced
		}
		return result, nil
	}
}

// compileInputObjectType compiles every field once up front (each under its own error prefix) so
// that applying the function to an ast.ObjectValue literal does no further compilation.
func compileInputObjectType(errPrefix string, t graphql.InputObject) graphql.ExecuteInputFunc {
	fields := t.Fields()
	type compiledField struct {
		def graphql.InputFieldDef
		fn  graphql.ExecuteInputFunc
	}
	compiledFields := make(map[string]compiledField, len(fields))
	for name, def := range fields {
		fieldPrefix := fmt.Sprintf("%sinput object %q: in field %q: ", errPrefix, t.Name(), name)
		compiledFields[name] = compiledField{def: def, fn: CompileByType(fieldPrefix, def.Type)}
	}

	return func(variables graphql.VariableValues, astValue ast.Value) (interface{}, error) {
		obj, ok := astValue.(ast.ObjectValue)
		if !ok {
			return nil, graphql.NewCoercionError("%sexpected an object value for input object %q", errPrefix, t.Name())
		}

		astFields := make(map[string]ast.Value, len(obj.Fields))
		for _, f := range obj.Fields {
			astFields[f.Name] = f.Value
		}

		result := make(map[string]interface{}, len(compiledFields))
		for name, field := range compiledFields {
			av, present := astFields[name]
			if !present {
				if field.def.HasDefault {
					result[name] = field.def.DefaultValue
				}
				continue
			}
			v, err := field.fn(variables, av)
			if err != nil {
				return nil, err
			}
			result[name] = v
		}
		return result, nil
	}
}
