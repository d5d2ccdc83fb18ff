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

package util_test

import (
	"github.com/briarloom/graphql/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("CamelCase", func() {
	expect := func(input, want string) {
		Expect(util.CamelCase(input)).Should(Equal(want), "input %q", input)
	}

	It("upper-cases the first letter of a plain word", func() {
		expect("", "")
		expect("a", "A")
		expect("foo", "Foo")
	})

	It("leaves already-cased input alone", func() {
		expect("A", "A")
		expect("FOO", "FOO")
		expect("CamelCase", "CamelCase")
	})

	It("joins underscore-separated segments, upper-casing each", func() {
		expect("foo_bar", "FooBar")
		expect("Foo_Bar", "FooBar")
		expect("foo1_bar2", "Foo1Bar2")
	})

	It("swallows leading, trailing and repeated underscores", func() {
		expect("_foo_bar", "FooBar")
		expect("foo_bar_", "FooBar")
		expect("_foo_bar_", "FooBar")
		expect("___foo_bar", "FooBar")
		expect("foo___bar", "FooBar")
		expect("foo_bar___", "FooBar")
	})
})
