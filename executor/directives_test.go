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

package executor_test

import (
	"context"

	"github.com/briarloom/graphql"
	"github.com/briarloom/graphql/ast"
	"github.com/briarloom/graphql/executor"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func skipDirectiveAST(condition ast.Value) []*ast.Directive {
	return []*ast.Directive{{
		Name:      "skip",
		Arguments: []*ast.Argument{{Name: "if", Value: condition}},
	}}
}

func includeDirectiveAST(condition ast.Value) []*ast.Directive {
	return []*ast.Directive{{
		Name:      "include",
		Arguments: []*ast.Argument{{Name: "if", Value: condition}},
	}}
}

var _ = Describe("ShouldInclude", func() {
	noVars := graphql.NoVariableValues()

	It("includes a selection with no directives", func() {
		included, err := executor.ShouldInclude(nil, noVars)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(included).Should(BeTrue())
	})

	It("evaluates @skip on a boolean literal", func() {
		included, err := executor.ShouldInclude(skipDirectiveAST(ast.BooleanValue{Value: true}), noVars)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(included).Should(BeFalse())

		included, err = executor.ShouldInclude(skipDirectiveAST(ast.BooleanValue{Value: false}), noVars)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(included).Should(BeTrue())
	})

	It("evaluates @include on a boolean literal", func() {
		included, err := executor.ShouldInclude(includeDirectiveAST(ast.BooleanValue{Value: false}), noVars)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(included).Should(BeFalse())

		included, err = executor.ShouldInclude(includeDirectiveAST(ast.BooleanValue{Value: true}), noVars)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(included).Should(BeTrue())
	})

	It("excludes when @skip is true even though @include is true", func() {
		directives := append(skipDirectiveAST(ast.BooleanValue{Value: true}),
			includeDirectiveAST(ast.BooleanValue{Value: true})...)
		included, err := executor.ShouldInclude(directives, noVars)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(included).Should(BeFalse())
	})

	It("honours a variable-bound condition", func() {
		vars := graphql.VariableValues{"s": true}
		included, err := executor.ShouldInclude(skipDirectiveAST(ast.Variable{Name: "s"}), vars)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(included).Should(BeFalse())
	})

	It("fails with an error naming the directive for a non-boolean condition", func() {
		vars := graphql.VariableValues{"s": "yes"}
		_, err := executor.ShouldInclude(skipDirectiveAST(ast.Variable{Name: "s"}), vars)
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("skip"))
	})
})

var _ = Describe("Directive-driven field inclusion", func() {
	var (
		schema graphql.Schema
		aField *graphql.FieldDef
		bField *graphql.FieldDef
	)

	BeforeEach(func() {
		constantString := func(v string) graphql.FieldResolve {
			return graphql.SyncResolve(func(context.Context, interface{}, graphql.ResolveInfo) (interface{}, error) {
				return v, nil
			})
		}
		aField = &graphql.FieldDef{Name: "a", Type: graphql.String(), Resolve: constantString("alpha")}
		bField = &graphql.FieldDef{Name: "b", Type: graphql.String(), Resolve: constantString("bravo")}
		schema = mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"a": aField, "b": bField}},
		})
	})

	It("omits a field skipped through a variable", func() {
		aInfo := leafInfo("a", aField)
		aInfo.Include = executor.CompileInclude(skipDirectiveAST(ast.Variable{Name: "s"}))

		plan := queryPlan(aInfo, leafInfo("b", bField))
		plan.Variables = []*graphql.VariableDefinition{{Name: "s", Type: graphql.Boolean()}}

		result, errs, err := evaluate(schema, plan, map[string]interface{}{"s": true}, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(errs.HaveOccurred()).Should(BeFalse())
		Expect(result.Keys()).Should(Equal([]string{"b"}))
		Expect(result.Equal(graphql.NewResultMapFromPairs("b", "bravo"))).Should(BeTrue())

		result, _, err = evaluate(schema, plan, map[string]interface{}{"s": false}, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("a", "alpha", "b", "bravo"))).Should(BeTrue())
	})

	It("omits a field excluded by a literal @include(if: false)", func() {
		aInfo := leafInfo("a", aField)
		aInfo.Include = executor.CompileInclude(includeDirectiveAST(ast.BooleanValue{Value: false}))

		result, _, err := evaluate(schema, queryPlan(aInfo, leafInfo("b", bField)), nil, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Keys()).Should(Equal([]string{"b"}))
	})
})
