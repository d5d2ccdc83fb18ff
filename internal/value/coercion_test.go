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

package value_test

import (
	"github.com/briarloom/graphql"
	"github.com/briarloom/graphql/ast"
	"github.com/briarloom/graphql/internal/value"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("CompileByType", func() {
	noVars := graphql.NoVariableValues()

	It("coerces a scalar literal", func() {
		coerce := value.CompileByType("", graphql.Int())
		v, err := coerce(noVars, ast.IntValue{Value: "42"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(42))
	})

	It("rejects a null literal at a non-nullable position and accepts it at a nullable one", func() {
		_, err := coerceErr(value.CompileByType("", graphql.Int()), ast.NullValue{})
		Expect(err).Should(HaveOccurred())

		v, err := value.CompileByType("", graphql.NullableOf(graphql.Int()))(noVars, ast.NullValue{})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(BeNil())
	})

	It("resolves a variable reference from the coerced variable map", func() {
		coerce := value.CompileByType("", graphql.String())
		v, err := coerce(graphql.VariableValues{"who": "Ada"}, ast.Variable{Name: "who"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal("Ada"))
	})

	It("rejects an undefined variable reference", func() {
		coerce := value.CompileByType("", graphql.String())
		_, err := coerce(noVars, ast.Variable{Name: "who"})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`"$who"`))
	})

	It("wraps a single non-list value into a one-element list", func() {
		coerce := value.CompileByType("", graphql.ListOf(graphql.Int()))
		v, err := coerce(noVars, ast.IntValue{Value: "7"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal([]interface{}{7}))
	})

	It("coerces a list literal element-wise", func() {
		coerce := value.CompileByType("", graphql.ListOf(graphql.Int()))
		v, err := coerce(noVars, ast.ListValue{Values: []ast.Value{
			ast.IntValue{Value: "1"}, ast.IntValue{Value: "2"},
		}})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal([]interface{}{1, 2}))
	})

	It("applies input object field defaults for absent fields", func() {
		point := graphql.NewInputObjectType("Point", "", graphql.InputFieldList{
			{Name: "x", Type: graphql.Int()},
			{Name: "y", Type: graphql.NullableOf(graphql.Int()), DefaultValue: 0, HasDefault: true},
		})

		coerce := value.CompileByType("", point)
		v, err := coerce(noVars, ast.ObjectValue{Fields: []*ast.ObjectField{
			{Name: "x", Value: ast.IntValue{Value: "3"}},
		}})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(map[string]interface{}{"x": 3, "y": 0}))
	})
})

var _ = Describe("CoerceVariableValues", func() {
	It("coerces declared variables against supplied raw values", func() {
		defs := []*graphql.VariableDefinition{
			{Name: "count", Type: graphql.Int()},
			{Name: "label", Type: graphql.NullableOf(graphql.String())},
		}
		coerced, errs := value.CoerceVariableValues(defs, map[string]interface{}{
			"count": float64(3),
			"label": "hi",
		})
		Expect(errs.HaveOccurred()).Should(BeFalse())
		Expect(coerced).Should(Equal(graphql.VariableValues{"count": 3, "label": "hi"}))
	})

	It("reports a missing value for a required variable", func() {
		defs := []*graphql.VariableDefinition{{Name: "count", Type: graphql.Int()}}
		_, errs := value.CoerceVariableValues(defs, nil)
		Expect(errs.HaveOccurred()).Should(BeTrue())
		Expect(errs.Errors[0].Message).Should(ContainSubstring("was not provided"))
	})

	It("falls back to the declared default when the variable is absent", func() {
		defs := []*graphql.VariableDefinition{{
			Name:         "count",
			Type:         graphql.NullableOf(graphql.Int()),
			DefaultValue: ast.IntValue{Value: "10"},
		}}
		coerced, errs := value.CoerceVariableValues(defs, nil)
		Expect(errs.HaveOccurred()).Should(BeFalse())
		Expect(coerced).Should(Equal(graphql.VariableValues{"count": 10}))
	})
})

var _ = Describe("ArgumentValues", func() {
	defs := func() graphql.InputFieldList {
		list := graphql.InputFieldList{
			{Name: "name", Type: graphql.NullableOf(graphql.String()), DefaultValue: "world", HasDefault: true},
		}
		for _, def := range list {
			def.ExecuteInput = value.CompileByType("", def.Type)
		}
		return list
	}

	It("omits an argument that is absent with no default", func() {
		list := graphql.InputFieldList{{Name: "name", Type: graphql.NullableOf(graphql.String())}}
		list[0].ExecuteInput = value.CompileByType("", list[0].Type)

		args, err := value.ArgumentValues(list, nil, graphql.NoVariableValues())
		Expect(err).ShouldNot(HaveOccurred())
		_, present := args.Lookup("name")
		Expect(present).Should(BeFalse())
	})

	It("falls back to the default when the coerced value is null", func() {
		args, err := value.ArgumentValues(defs(), []*ast.Argument{
			{Name: "name", Value: ast.NullValue{}},
		}, graphql.NoVariableValues())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(args.Get("name")).Should(Equal("world"))
	})

	It("prefers a supplied non-null value over the default", func() {
		args, err := value.ArgumentValues(defs(), []*ast.Argument{
			{Name: "name", Value: ast.StringValue{Value: "Ada"}},
		}, graphql.NoVariableValues())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(args.Get("name")).Should(Equal("Ada"))
	})
})

func coerceErr(coerce graphql.ExecuteInputFunc, astValue ast.Value) (interface{}, error) {
	return coerce(graphql.NoVariableValues(), astValue)
}
