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
	"math"
	"strconv"

	"github.com/briarloom/graphql/ast"
)

// ScalarType is a Scalar a caller constructs directly as a struct literal, rather than through the
// teacher's NewScalar/ScalarConfig builder (schema construction DSL, out of scope per spec.md §1).
// The three coercion directions are plain functions so a custom scalar (e.g. a DateTime type) only
// needs to supply the ones it cares about.
type ScalarType struct {
	NameStr        string
	DescriptionStr string

	// ResultFn coerces a resolver's return value for serialization. Required.
	ResultFn func(value interface{}) (interface{}, error)

	// VariableFn coerces a value decoded from a request's JSON variables map. Required.
	VariableFn func(value interface{}) (interface{}, error)

	// ArgumentFn coerces a literal AST value from a field or directive argument. Required.
	ArgumentFn func(value ast.Value) (interface{}, error)
}

var (
	_ TypeDef = (*ScalarType)(nil)
	_ Scalar  = (*ScalarType)(nil)
)

func (*ScalarType) graphqlTypeDef()   {}
func (*ScalarType) graphqlLeafType()  {}
func (*ScalarType) graphqlScalarType() {}

// Name implements TypeDefWithName.
func (s *ScalarType) Name() string { return s.NameStr }

// Description implements TypeDefWithDescription.
func (s *ScalarType) Description() string { return s.DescriptionStr }

// String implements fmt.Stringer.
func (s *ScalarType) String() string { return s.NameStr }

// CoerceResultValue implements LeafType.
func (s *ScalarType) CoerceResultValue(value interface{}) (interface{}, error) {
	return s.ResultFn(value)
}

// CoerceVariableValue implements Scalar.
func (s *ScalarType) CoerceVariableValue(value interface{}) (interface{}, error) {
	return s.VariableFn(value)
}

// CoerceArgumentValue implements Scalar.
func (s *ScalarType) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	return s.ArgumentFn(value)
}

// NewCoercionError builds a *Error of ErrKindCoercion with a formatted message, matching the
// teacher's graphql.NewCoercionError.
func NewCoercionError(format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), ErrKindCoercion)
}

//===----------------------------------------------------------------------------------------====//
// Built-in scalars
//===----------------------------------------------------------------------------------------====//
//
// The "internal value type" behind the interface{} returned by each coercion direction is fixed:
// Int -> int, Float -> float64, String -> string, Boolean -> bool, ID -> string. A resolver that
// returns an Int field can always type-assert the completed value to int.

func quoted(v interface{}) interface{} {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return v
}

var intType = &ScalarType{
	NameStr: "Int",
	DescriptionStr: "The `Int` scalar type represents non-fractional signed whole numeric " +
		"values. Int can represent values between -(2^31) and 2^31 - 1.",
	ResultFn: func(value interface{}) (interface{}, error) {
		switch v := value.(type) {
		case int:
			return v, nil
		case int32:
			return int(v), nil
		case int64:
			if v > math.MaxInt32 || v < math.MinInt32 {
				return nil, NewCoercionError("Int cannot represent %v: value out of range for 32-bit signed integer", v)
			}
			return int(v), nil
		case float64:
			i := int32(v)
			if float64(i) != v {
				return nil, NewCoercionError("Int cannot represent %v: not an integer", v)
			}
			return int(i), nil
		case bool:
			if v {
				return 1, nil
			}
			return 0, nil
		}
		return nil, NewCoercionError("Int cannot represent %v: not an integer", quoted(value))
	},
	VariableFn: func(value interface{}) (interface{}, error) {
		switch v := value.(type) {
		case int:
			return v, nil
		case float64:
			i := int32(v)
			if float64(i) != v {
				return nil, NewCoercionError("Int cannot represent %v: not an integer", v)
			}
			return int(i), nil
		}
		return nil, NewCoercionError("Int cannot represent %v: not an integer", quoted(value))
	},
	ArgumentFn: func(value ast.Value) (interface{}, error) {
		if v, ok := value.(ast.IntValue); ok {
			i, err := v.Int64Value()
			if err != nil || i > math.MaxInt32 || i < math.MinInt32 {
				return nil, NewCoercionError("Int cannot represent %v: value out of range for 32-bit signed integer", v.Value)
			}
			return int(i), nil
		}
		return nil, NewCoercionError("Int cannot represent non-integer value: %v", value.Interface())
	},
}

// Int returns the GraphQL builtin Int type.
func Int() Scalar { return intType }

var floatType = &ScalarType{
	NameStr: "Float",
	DescriptionStr: "The `Float` scalar type represents signed double-precision fractional " +
		"values as specified by IEEE 754.",
	ResultFn: func(value interface{}) (interface{}, error) {
		switch v := value.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case bool:
			if v {
				return 1.0, nil
			}
			return 0.0, nil
		}
		return nil, NewCoercionError("Float cannot represent %v: not a numeric value", quoted(value))
	},
	VariableFn: func(value interface{}) (interface{}, error) {
		switch v := value.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		}
		return nil, NewCoercionError("Float cannot represent %v: not a numeric value", quoted(value))
	},
	ArgumentFn: func(value ast.Value) (interface{}, error) {
		switch v := value.(type) {
		case ast.FloatValue:
			f, err := v.Float64Value()
			if err != nil {
				return nil, NewCoercionError("Float cannot represent %v: not a numeric value", v.Value)
			}
			return f, nil
		case ast.IntValue:
			i, err := v.Int64Value()
			if err != nil {
				return nil, NewCoercionError("Float cannot represent %v: not a numeric value", v.Value)
			}
			return float64(i), nil
		}
		return nil, NewCoercionError("Float cannot represent non-numeric value: %v", value.Interface())
	},
}

// Float returns the GraphQL builtin Float type.
func Float() Scalar { return floatType }

var stringType = &ScalarType{
	NameStr: "String",
	DescriptionStr: "The `String` scalar type represents textual data, represented as UTF-8 " +
		"character sequences. The String type is most often used by GraphQL to represent " +
		"free-form human-readable text.",
	ResultFn: func(value interface{}) (interface{}, error) {
		switch v := value.(type) {
		case string:
			return v, nil
		case bool:
			if v {
				return "true", nil
			}
			return "false", nil
		case int, int64, float64:
			return fmt.Sprintf("%v", v), nil
		}
		return nil, NewCoercionError("String cannot represent value: %v", value)
	},
	VariableFn: func(value interface{}) (interface{}, error) {
		if v, ok := value.(string); ok {
			return v, nil
		}
		return nil, NewCoercionError("String cannot represent a non string value: %v", value)
	},
	ArgumentFn: func(value ast.Value) (interface{}, error) {
		if v, ok := value.(ast.StringValue); ok {
			return v.Value, nil
		}
		return nil, NewCoercionError("String cannot represent a non string value: %v", value.Interface())
	},
}

// String returns the GraphQL builtin String type.
func String() Scalar { return stringType }

var booleanType = &ScalarType{
	NameStr:        "Boolean",
	DescriptionStr: "The `Boolean` scalar type represents `true` or `false`.",
	ResultFn: func(value interface{}) (interface{}, error) {
		if v, ok := value.(bool); ok {
			return v, nil
		}
		return nil, NewCoercionError("Boolean cannot represent a non boolean value: %v", value)
	},
	VariableFn: func(value interface{}) (interface{}, error) {
		if v, ok := value.(bool); ok {
			return v, nil
		}
		return nil, NewCoercionError("Boolean cannot represent a non boolean value: %v", value)
	},
	ArgumentFn: func(value ast.Value) (interface{}, error) {
		if v, ok := value.(ast.BooleanValue); ok {
			return v.Value, nil
		}
		return nil, NewCoercionError("Boolean cannot represent a non boolean value: %v", value.Interface())
	},
}

// Boolean returns the GraphQL builtin Boolean type.
func Boolean() Scalar { return booleanType }

var idType = &ScalarType{
	NameStr: "ID",
	DescriptionStr: "The `ID` scalar type represents a unique identifier, often used to " +
		"refetch an object or as key for a cache. The ID type appears in a JSON response as a " +
		"String; however, it is not intended to be human-readable. When expected as an input " +
		"type, any string or integer input value will be accepted as an ID.",
	ResultFn: func(value interface{}) (interface{}, error) {
		switch v := value.(type) {
		case string:
			return v, nil
		case int:
			return strconv.Itoa(v), nil
		case int64:
			return strconv.FormatInt(v, 10), nil
		}
		return nil, NewCoercionError("ID cannot represent value: %v", value)
	},
	VariableFn: func(value interface{}) (interface{}, error) {
		switch v := value.(type) {
		case string:
			return v, nil
		case float64:
			return strconv.FormatInt(int64(v), 10), nil
		}
		return nil, NewCoercionError("ID cannot represent value: %v", value)
	},
	ArgumentFn: func(value ast.Value) (interface{}, error) {
		switch v := value.(type) {
		case ast.StringValue:
			return v.Value, nil
		case ast.IntValue:
			return v.Value, nil
		}
		return nil, NewCoercionError("ID cannot represent value: %v", value.Interface())
	},
}

// ID returns the GraphQL builtin ID type.
func ID() Scalar { return idType }
