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

package graphql_test

import (
	"encoding/json"

	"github.com/briarloom/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ResultMap", func() {
	It("preserves key order across construction and marshaling", func() {
		m := graphql.NewResultMapFromPairs("foo", "bar", "foo2", "bar2")
		Expect(m.Count()).Should(Equal(2))
		Expect(m.Keys()).Should(Equal([]string{"foo", "foo2"}))

		buf, err := json.Marshal(m)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(buf)).Should(Equal(`{"foo":"bar","foo2":"bar2"}`))
	})

	It("keeps a key's order fixed across multiple updates", func() {
		m := graphql.NewResultMapFromKeys([]string{"a", "b", "c"})
		m.Update("b", 1)
		m.Update("a", 2)
		m.Update("b", 3)

		Expect(m.Keys()).Should(Equal([]string{"a", "b", "c"}))
		v, ok := m.Get("b")
		Expect(ok).Should(BeTrue())
		Expect(v).Should(Equal(3))
	})

	It("panics when updating a key outside its fixed shape", func() {
		m := graphql.NewResultMapFromKeys([]string{"a"})
		Expect(func() { m.Update("z", 1) }).Should(Panic())
	})

	It("reports absent keys without panicking", func() {
		m := graphql.NewResultMapFromKeys([]string{"a"})
		_, ok := m.Get("missing")
		Expect(ok).Should(BeFalse())
	})

	It("compares structurally, including nested maps and lists", func() {
		a := graphql.NewResultMapFromPairs(
			"x", []interface{}{1, 2, graphql.NewResultMapFromPairs("y", "z")},
		)
		b := graphql.NewResultMapFromPairs(
			"x", []interface{}{1, 2, graphql.NewResultMapFromPairs("y", "z")},
		)
		Expect(a.Equal(b)).Should(BeTrue())

		c := graphql.NewResultMapFromPairs(
			"x", []interface{}{1, 2, graphql.NewResultMapFromPairs("y", "different")},
		)
		Expect(a.Equal(c)).Should(BeFalse())
	})

	It("reports maps with the same keys and values in the same order as equal", func() {
		a := graphql.NewResultMapFromPairs("a", 1, "b", 2)
		b := graphql.NewResultMapFromPairs("a", 1, "b", 2)
		Expect(a.Equal(b)).Should(BeTrue())
	})
})
