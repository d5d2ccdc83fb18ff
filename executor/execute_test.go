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
	"errors"
	"time"

	"github.com/briarloom/graphql"
	"github.com/briarloom/graphql/ast"
	"github.com/briarloom/graphql/executor"
	"github.com/briarloom/graphql/internal/future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// mustSchema builds and compiles a schema for a test, failing the spec on any error.
func mustSchema(config *graphql.SchemaConfig) graphql.Schema {
	schema, err := graphql.NewSchema(config)
	Expect(err).ShouldNot(HaveOccurred())
	Expect(executor.CompileSchema(schema)).Should(Succeed())
	return schema
}

// evaluate runs plan to completion and returns the result map together with the collected errors.
func evaluate(
	schema graphql.Schema,
	plan *graphql.ExecutionPlan,
	variables map[string]interface{},
	root interface{}) (*graphql.ResultMap, graphql.Errors, error) {

	errs := graphql.NoErrors()
	result := executor.Evaluate(context.Background(), schema, plan, variables, root, &errs).Await()
	if result.Error != nil {
		return nil, errs, result.Error
	}
	return result.Value.(*graphql.ResultMap), errs, nil
}

func queryPlan(fields ...*graphql.ExecutionInfo) *graphql.ExecutionPlan {
	return &graphql.ExecutionPlan{
		Operation: graphql.OperationQuery,
		Strategy:  graphql.StrategyParallel,
		Fields:    fields,
	}
}

func leafInfo(identifier string, def *graphql.FieldDef) *graphql.ExecutionInfo {
	return &graphql.ExecutionInfo{
		Identifier: identifier,
		Definition: def,
		Kind:       graphql.KindResolveValue,
	}
}

// maybeString implements graphql.Optional for the nullable-unwrap specs.
type maybeString struct {
	value string
	ok    bool
}

func (m maybeString) HasValue() bool     { return m.ok }
func (m maybeString) Value() interface{} { return m.value }

var _ = Describe("Evaluate", func() {
	It("resolves a scalar field from the root value", func() {
		helloField := &graphql.FieldDef{
			Name: "hello",
			Type: graphql.String(),
			Resolve: graphql.SyncResolve(func(_ context.Context, source interface{}, _ graphql.ResolveInfo) (interface{}, error) {
				return source.(map[string]interface{})["hello"], nil
			}),
		}
		schema := mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"hello": helloField}},
		})

		result, errs, err := evaluate(schema, queryPlan(leafInfo("hello", helloField)), nil,
			map[string]interface{}{"hello": "world"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(errs.HaveOccurred()).Should(BeFalse())
		Expect(result.Equal(graphql.NewResultMapFromPairs("hello", "world"))).Should(BeTrue())
	})

	It("keeps sibling fields unaffected by one resolver's failure", func() {
		aField := &graphql.FieldDef{
			Name: "a",
			Type: graphql.NullableOf(graphql.Int()),
			Resolve: graphql.SyncResolve(func(context.Context, interface{}, graphql.ResolveInfo) (interface{}, error) {
				return nil, errors.New("boom")
			}),
		}
		bField := &graphql.FieldDef{
			Name: "b",
			Type: graphql.Int(),
			Resolve: graphql.SyncResolve(func(context.Context, interface{}, graphql.ResolveInfo) (interface{}, error) {
				return 42, nil
			}),
		}
		schema := mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"a": aField, "b": bField}},
		})

		result, errs, err := evaluate(schema, queryPlan(leafInfo("a", aField), leafInfo("b", bField)), nil, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("a", nil, "b", 42))).Should(BeTrue())
		Expect(errs.Errors).Should(HaveLen(1))
		Expect(errs.Errors[0].Error()).Should(ContainSubstring("boom"))
		Expect(errs.Errors[0].Path.String()).Should(Equal("a"))
	})

	It("unpacks an aggregated resolver error into independent entries", func() {
		failField := &graphql.FieldDef{
			Name: "fail",
			Type: graphql.NullableOf(graphql.Int()),
			Resolve: graphql.SyncResolve(func(context.Context, interface{}, graphql.ResolveInfo) (interface{}, error) {
				return nil, aggregateError{errors.New("first cause"), errors.New("second cause")}
			}),
		}
		schema := mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"fail": failField}},
		})

		result, errs, err := evaluate(schema, queryPlan(leafInfo("fail", failField)), nil, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("fail", nil))).Should(BeTrue())
		Expect(errs.Errors).Should(HaveLen(2))
		Expect(errs.Errors[0].Error()).Should(ContainSubstring("first cause"))
		Expect(errs.Errors[1].Error()).Should(ContainSubstring("second cause"))
	})

	It("preserves plan order in the result keys regardless of completion order", func() {
		slowField := &graphql.FieldDef{
			Name: "slow",
			Type: graphql.String(),
			Resolve: graphql.AsyncResolve(func(context.Context, interface{}, graphql.ResolveInfo) future.AsyncVal {
				return future.Pending(func() future.Result {
					time.Sleep(30 * time.Millisecond)
					return future.Result{Value: "tortoise"}
				})
			}),
		}
		fastField := &graphql.FieldDef{
			Name: "fast",
			Type: graphql.String(),
			Resolve: graphql.SyncResolve(func(context.Context, interface{}, graphql.ResolveInfo) (interface{}, error) {
				return "hare", nil
			}),
		}
		schema := mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"slow": slowField, "fast": fastField}},
		})

		result, _, err := evaluate(schema, queryPlan(leafInfo("slow", slowField), leafInfo("fast", fastField)), nil, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Keys()).Should(Equal([]string{"slow", "fast"}))
		Expect(result.Equal(graphql.NewResultMapFromPairs("slow", "tortoise", "fast", "hare"))).Should(BeTrue())
	})

	It("completes list elements concurrently and assembles them in input order", func() {
		nField := &graphql.FieldDef{
			Name: "n",
			Type: graphql.Int(),
			Resolve: graphql.AsyncResolve(func(_ context.Context, source interface{}, _ graphql.ResolveInfo) future.AsyncVal {
				n := source.(int)
				return future.Pending(func() future.Result {
					// Later elements finish first.
					time.Sleep(time.Duration(40-10*n) * time.Millisecond)
					return future.Result{Value: n}
				})
			}),
		}
		itemType := &graphql.ObjectType{NameStr: "Item", FieldList: graphql.FieldMap{"n": nField}}
		xsField := &graphql.FieldDef{
			Name: "xs",
			Type: graphql.ListOf(itemType),
			Resolve: graphql.SyncResolve(func(context.Context, interface{}, graphql.ResolveInfo) (interface{}, error) {
				return []interface{}{1, 2, 3}, nil
			}),
		}
		schema := mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"xs": xsField}},
		})

		plan := queryPlan(&graphql.ExecutionInfo{
			Identifier: "xs",
			Definition: xsField,
			Kind:       graphql.KindResolveCollection,
			Element: &graphql.ExecutionInfo{
				Identifier: "xs",
				Definition: xsField,
				Kind:       graphql.KindSelectFields,
				SubFields:  []*graphql.ExecutionInfo{leafInfo("n", nField)},
			},
		})

		result, errs, err := evaluate(schema, plan, nil, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(errs.HaveOccurred()).Should(BeFalse())
		Expect(result.Equal(graphql.NewResultMapFromPairs("xs", []interface{}{
			graphql.NewResultMapFromPairs("n", 1),
			graphql.NewResultMapFromPairs("n", 2),
			graphql.NewResultMapFromPairs("n", 3),
		}))).Should(BeTrue())
	})

	It("treats a string as a single-element list, not a char sequence", func() {
		wordsField := &graphql.FieldDef{
			Name: "words",
			Type: graphql.ListOf(graphql.String()),
			Resolve: graphql.SyncResolve(func(context.Context, interface{}, graphql.ResolveInfo) (interface{}, error) {
				return "all one word", nil
			}),
		}
		schema := mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"words": wordsField}},
		})

		plan := queryPlan(&graphql.ExecutionInfo{
			Identifier: "words",
			Definition: wordsField,
			Kind:       graphql.KindResolveCollection,
			Element:    leafInfo("words", wordsField),
		})

		result, _, err := evaluate(schema, plan, nil, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("words", []interface{}{"all one word"}))).Should(BeTrue())
	})

	It("coerces an enum result to its member name and an unknown value to null", func() {
		colors := graphql.NewEnumType("Color", "", []*graphql.EnumValueDef{
			{NameStr: "RED", InternalValue: 0},
			{NameStr: "GREEN", InternalValue: 1},
		})
		colorField := &graphql.FieldDef{
			Name: "color",
			Type: graphql.NullableOf(colors),
			Resolve: graphql.SyncResolve(func(_ context.Context, source interface{}, _ graphql.ResolveInfo) (interface{}, error) {
				return source, nil
			}),
		}
		schema := mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"color": colorField}},
		})

		result, _, err := evaluate(schema, queryPlan(leafInfo("color", colorField)), nil, 1)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("color", "GREEN"))).Should(BeTrue())

		result, _, err = evaluate(schema, queryPlan(leafInfo("color", colorField)), nil, 99)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("color", nil))).Should(BeTrue())
	})

	It("unwraps an optional-wrapped value at a nullable position", func() {
		nickField := &graphql.FieldDef{
			Name: "nick",
			Type: graphql.NullableOf(graphql.String()),
			Resolve: graphql.SyncResolve(func(_ context.Context, source interface{}, _ graphql.ResolveInfo) (interface{}, error) {
				return source, nil
			}),
		}
		schema := mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"nick": nickField}},
		})

		result, _, err := evaluate(schema, queryPlan(leafInfo("nick", nickField)), nil,
			maybeString{value: "Ada", ok: true})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("nick", "Ada"))).Should(BeTrue())

		result, _, err = evaluate(schema, queryPlan(leafInfo("nick", nickField)), nil,
			maybeString{})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("nick", nil))).Should(BeTrue())
	})

	It("fails the evaluation when a traversed field defines no resolver", func() {
		bareField := &graphql.FieldDef{
			Name: "bare",
			Type: graphql.String(),
		}
		schema := mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"bare": bareField}},
		})

		_, _, err := evaluate(schema, queryPlan(leafInfo("bare", bareField)), nil, nil)
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`does not define a resolver`))
	})

	It("fails the evaluation when the plan's shape disagrees with the schema", func() {
		helloField := &graphql.FieldDef{
			Name: "hello",
			Type: graphql.String(),
			Resolve: graphql.SyncResolve(func(context.Context, interface{}, graphql.ResolveInfo) (interface{}, error) {
				return "world", nil
			}),
		}
		schema := mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"hello": helloField}},
		})

		// Leaf return type, but the plan claims an object sub-selection.
		plan := queryPlan(&graphql.ExecutionInfo{
			Identifier: "hello",
			Definition: helloField,
			Kind:       graphql.KindSelectFields,
		})

		_, _, err := evaluate(schema, plan, nil, nil)
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("the plan and the schema disagree"))
	})

	It("reports variable coercion failures before any field executes", func() {
		invoked := false
		helloField := &graphql.FieldDef{
			Name: "hello",
			Type: graphql.String(),
			Resolve: graphql.SyncResolve(func(context.Context, interface{}, graphql.ResolveInfo) (interface{}, error) {
				invoked = true
				return "world", nil
			}),
		}
		schema := mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"hello": helloField}},
		})

		plan := queryPlan(leafInfo("hello", helloField))
		plan.Variables = []*graphql.VariableDefinition{{Name: "count", Type: graphql.Int()}}

		_, _, err := evaluate(schema, plan, map[string]interface{}{"count": "not a number"}, nil)
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`Variable "$count"`))
		Expect(invoked).Should(BeFalse())
	})
})

var _ = Describe("Argument coercion", func() {
	var (
		schema     graphql.Schema
		greetField *graphql.FieldDef
	)

	BeforeEach(func() {
		greetField = &graphql.FieldDef{
			Name: "greet",
			Type: graphql.String(),
			Args: []*graphql.InputFieldDef{{
				Name:         "name",
				Type:         graphql.NullableOf(graphql.String()),
				DefaultValue: "world",
				HasDefault:   true,
			}},
			Resolve: graphql.SyncResolve(func(_ context.Context, _ interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return "Hello, " + info.Args().Get("name").(string), nil
			}),
		}
		schema = mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"greet": greetField}},
		})
	})

	greetPlan := func(args ...*ast.Argument) *graphql.ExecutionPlan {
		info := leafInfo("greet", greetField)
		info.Ast = &ast.FieldNode{Name: "greet", Arguments: args}
		return queryPlan(info)
	}

	It("applies the default when the argument is absent", func() {
		result, _, err := evaluate(schema, greetPlan(), nil, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("greet", "Hello, world"))).Should(BeTrue())
	})

	It("applies the default when the supplied argument coerces to null", func() {
		result, _, err := evaluate(schema, greetPlan(&ast.Argument{Name: "name", Value: ast.NullValue{}}), nil, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("greet", "Hello, world"))).Should(BeTrue())
	})

	It("prefers a non-null supplied argument over the default", func() {
		result, _, err := evaluate(schema, greetPlan(&ast.Argument{Name: "name", Value: ast.StringValue{Value: "Ada"}}), nil, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("greet", "Hello, Ada"))).Should(BeTrue())
	})

	It("resolves a variable reference through the request's coerced variables", func() {
		plan := greetPlan(&ast.Argument{Name: "name", Value: ast.Variable{Name: "who"}})
		plan.Variables = []*graphql.VariableDefinition{{Name: "who", Type: graphql.String()}}

		result, _, err := evaluate(schema, plan, map[string]interface{}{"who": "Grace"}, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("greet", "Hello, Grace"))).Should(BeTrue())
	})
})

var _ = Describe("Sequential mutations", func() {
	It("starts each mutation only after the previous one fully completed", func() {
		// Deliberately non-atomic read/sleep/write: under a parallel schedule both fields would
		// observe 0 and produce 1; only strict sequencing yields 1 then 2.
		counter := 0
		incField := &graphql.FieldDef{
			Name: "inc",
			Type: graphql.Int(),
			Resolve: graphql.AsyncResolve(func(context.Context, interface{}, graphql.ResolveInfo) future.AsyncVal {
				return future.Pending(func() future.Result {
					observed := counter
					time.Sleep(10 * time.Millisecond)
					counter = observed + 1
					return future.Result{Value: counter}
				})
			}),
		}
		mutation := &graphql.ObjectType{NameStr: "Mutation", FieldList: graphql.FieldMap{"inc": incField}}
		schema := mustSchema(&graphql.SchemaConfig{
			Query:    &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{}},
			Mutation: mutation,
		})

		plan := &graphql.ExecutionPlan{
			Operation: graphql.OperationMutation,
			Strategy:  graphql.StrategySequential,
			Fields: []*graphql.ExecutionInfo{
				leafInfo("first", incField),
				leafInfo("second", incField),
			},
		}

		result, errs, err := evaluate(schema, plan, nil, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(errs.HaveOccurred()).Should(BeFalse())
		Expect(result.Equal(graphql.NewResultMapFromPairs("first", 1, "second", 2))).Should(BeTrue())
	})
})

var _ = Describe("DefaultResolver", func() {
	It("reads a struct field by the CamelCase form of the field name", func() {
		type account struct {
			DisplayName string
		}
		nameField := &graphql.FieldDef{
			Name:    "displayName",
			Type:    graphql.String(),
			Resolve: executor.DefaultResolver(),
		}
		schema := mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"displayName": nameField}},
		})

		result, _, err := evaluate(schema, queryPlan(leafInfo("displayName", nameField)), nil,
			&account{DisplayName: "Ada"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("displayName", "Ada"))).Should(BeTrue())
	})

	It("reads a map entry by field name, falling back to its snake_case form", func() {
		nameField := &graphql.FieldDef{
			Name:    "displayName",
			Type:    graphql.NullableOf(graphql.String()),
			Resolve: executor.DefaultResolver(),
		}
		schema := mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"displayName": nameField}},
		})
		plan := queryPlan(leafInfo("displayName", nameField))

		result, _, err := evaluate(schema, plan, nil,
			map[string]interface{}{"displayName": "Ada"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("displayName", "Ada"))).Should(BeTrue())

		result, _, err = evaluate(schema, plan, nil,
			map[string]interface{}{"display_name": "Grace"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("displayName", "Grace"))).Should(BeTrue())

		result, _, err = evaluate(schema, plan, nil, map[string]interface{}{})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.Equal(graphql.NewResultMapFromPairs("displayName", nil))).Should(BeTrue())
	})
})

var _ = Describe("Unknown plan fields", func() {
	It("fails with close-match suggestions from the parent type", func() {
		helloField := &graphql.FieldDef{
			Name: "hello",
			Type: graphql.String(),
			Resolve: graphql.SyncResolve(func(context.Context, interface{}, graphql.ResolveInfo) (interface{}, error) {
				return "world", nil
			}),
		}
		schema := mustSchema(&graphql.SchemaConfig{
			Query: &graphql.ObjectType{NameStr: "Query", FieldList: graphql.FieldMap{"hello": helloField}},
		})

		// A plan node with no Definition: the planner referenced a field the schema never had.
		plan := queryPlan(&graphql.ExecutionInfo{Identifier: "helo", Kind: graphql.KindResolveValue})

		_, _, err := evaluate(schema, plan, nil, nil)
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`Cannot query field "helo" on type "Query".`))
		Expect(err.Error()).Should(ContainSubstring(`Did you mean "hello"?`))
	})
})

// aggregateError is a minimal multi-cause error, as a resolver built on a fan-out library might
// return.
type aggregateError []error

func (e aggregateError) Error() string {
	return "multiple errors occurred"
}

func (e aggregateError) Errors() []error {
	return e
}
