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

package value

import (
	"fmt"

	"github.com/briarloom/graphql"
)

// CoerceVariableValues computes the coerced variable map for an operation's declared variables
// against the raw, JSON-decoded input values a request supplied. Per spec §4.2: a variable absent
// from rawValues uses its default, coerced by CompileByType's closure against an empty variable
// map (a default cannot itself reference another variable); a variable explicitly supplied as
// null is stored as null if its type is Nullable, else reported; otherwise coerceRawValue coerces
// the raw value against the declared type.
//
// rawValues holds already-JSON-decoded Go values (map[string]interface{}, []interface{}, string,
// float64, bool, nil), not AST literals, so supplied values do not pass through the compiled
// ExecuteInput closures (whose signature takes an AST value); coerceRawValue walks the declared
// type directly.
func CoerceVariableValues(
	variableDefs []*graphql.VariableDefinition,
	rawValues map[string]interface{},
) (graphql.VariableValues, graphql.Errors) {
	var errs graphql.Errors
	coerced := map[string]interface{}{}

	for _, def := range variableDefs {
		raw, hasValue := rawValues[def.Name]
		_, nullable := def.Type.(graphql.Nullable)

		switch {
		case !hasValue && def.DefaultValue != nil:
			v, err := CompileByType("", def.Type)(graphql.NoVariableValues(), def.DefaultValue)
			if err == nil {
				coerced[def.Name] = v
			}

		case (!hasValue || raw == nil) && !nullable:
			if hasValue {
				errs.Emplace(fmt.Sprintf(`Variable "$%s" of non-null type %q must not be null.`,
					def.Name, graphql.Inspect(def.Type)))
			} else {
				errs.Emplace(fmt.Sprintf(`Variable "$%s" of required type %q was not provided.`,
					def.Name, graphql.Inspect(def.Type)))
			}

		case !hasValue:
			// Nullable and simply absent: leave unset. Lookup then reports "not present", while an
			// explicit null is stored and reports "present, nil"; Lookup's bool tells the two apart.

		case raw == nil:
			coerced[def.Name] = nil

		default:
			v, err := coerceRawValue(raw, def.Type)
			if err != nil {
				errs.Emplace(fmt.Sprintf(`Variable "$%s" got invalid value %v; %s`,
					def.Name, raw, err.Error()))
				continue
			}
			coerced[def.Name] = v
		}
	}

	if errs.HaveOccurred() {
		return graphql.NoVariableValues(), errs
	}
	return graphql.VariableValues(coerced), graphql.NoErrors()
}

// coerceRawValue coerces a decoded JSON value (not an AST literal) against t. It mirrors
// compileType/compileLiteral's structure but works over interface{} shapes instead of ast.Value,
// since request variables arrive already decoded from JSON rather than parsed from the document.
func coerceRawValue(raw interface{}, t graphql.TypeDef) (interface{}, error) {
	if nullableT, ok := t.(graphql.Nullable); ok {
		if raw == nil {
			return nil, nil
		}
		return coerceRawValue(raw, nullableT.InnerType())
	}
	if raw == nil {
		return nil, graphql.NewCoercionError("expected non-nullable type %s not to be null", graphql.Inspect(t))
	}

	switch t := t.(type) {
	case graphql.Scalar:
		return t.CoerceVariableValue(raw)

	case graphql.Enum:
		return t.CoerceVariableValue(raw)

	case graphql.List:
		elementType := t.ElementType()
		values, ok := raw.([]interface{})
		if !ok {
			coerced, err := coerceRawValue(raw, elementType)
			if err != nil {
				return nil, err
			}
			return []interface{}{coerced}, nil
		}
		result := make([]interface{}, len(values))
		for i, v := range values {
			coerced, err := coerceRawValue(v, elementType)
			if err != nil {
				return nil, err
			}
			result[i] = coerced
		}
		return result, nil

	case graphql.InputObject:
		obj, ok := raw.(map[string]interface{})
		if !ok {
			return nil, graphql.NewCoercionError("expected an object value for input object %q", t.Name())
		}
		result := make(map[string]interface{}, len(obj))
		for name, fieldDef := range t.Fields() {
			v, present := obj[name]
			if !present {
				if fieldDef.HasDefault {
					result[name] = fieldDef.DefaultValue
				}
				continue
			}
			coerced, err := coerceRawValue(v, fieldDef.Type)
			if err != nil {
				return nil, err
			}
			result[name] = coerced
		}
		return result, nil
	}

	return nil, graphql.NewError(fmt.Sprintf("unsupported input type %T", t))
}
