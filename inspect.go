/**
 * Copyright (c) 2019, The Artemis Authors.
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
	"io"
	"reflect"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

const (
	maxArrayLength    = 10
	maxRecursiveDepth = 2
)

// InspectTo prints the Go value v to out in the same spirit as graphql-js's inspect function,
// used to render a value into a completion/coercion error message. A write error from rendering a
// string, a Stringer or another plain value is returned; errors from writing brackets and
// separators are ignored.
func InspectTo(out io.Writer, v interface{}) error {
	return inspectTo(out, v, nil)
}

// Inspect renders v the same way InspectTo does, returning the result as a string.
func Inspect(v interface{}) string {
	var b strings.Builder
	_ = InspectTo(&b, v)
	return b.String()
}

func inspectTo(out io.Writer, v interface{}, seenValues []interface{}) error {
	if s, ok := v.(fmt.Stringer); ok {
		_, err := io.WriteString(out, s.String())
		return err
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.String:
		b, err := jsoniter.Marshal(v.(string))
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err

	case reflect.Array, reflect.Slice:
		seenValues = append(seenValues, v)

		size := value.Len()
		if size == 0 {
			io.WriteString(out, "[]")
			break
		}
		if len(seenValues) > maxRecursiveDepth {
			io.WriteString(out, "[Array]")
			break
		}

		io.WriteString(out, "[")
		if err := inspectToWithCircularCheck(out, value.Index(0).Interface(), seenValues); err != nil {
			return err
		}
		l := size
		if l > maxArrayLength {
			l = maxArrayLength
		}
		for i := 1; i < l; i++ {
			io.WriteString(out, ", ")
			if err := inspectToWithCircularCheck(out, value.Index(i).Interface(), seenValues); err != nil {
				return err
			}
		}
		if remaining := size - l; remaining == 1 {
			io.WriteString(out, ", ... 1 more item")
		} else if remaining > 1 {
			io.WriteString(out, ", ... "+strconv.Itoa(remaining)+" more items")
		}
		io.WriteString(out, "]")

	case reflect.Map:
		seenValues = append(seenValues, v)

		keys := value.MapKeys()
		if len(keys) == 0 {
			io.WriteString(out, "{}")
			break
		}
		if len(seenValues) > maxRecursiveDepth {
			io.WriteString(out, "[Map]")
			break
		}

		io.WriteString(out, "{ ")
		for i, key := range keys {
			if err := inspectToWithCircularCheck(out, key.Interface(), seenValues); err != nil {
				return err
			}
			io.WriteString(out, ": ")
			if err := inspectToWithCircularCheck(out, value.MapIndex(key).Interface(), seenValues); err != nil {
				return err
			}
			if i != len(keys)-1 {
				io.WriteString(out, ", ")
			}
		}
		io.WriteString(out, " }")

	case reflect.Struct:
		seenValues = append(seenValues, v)

		typ := value.Type()
		if typ.NumField() == 0 {
			io.WriteString(out, "{}")
			break
		}
		if len(seenValues) > maxRecursiveDepth {
			name := typ.Name()
			if name == "" {
				name = "Object"
			}
			io.WriteString(out, "["+name+"]")
			break
		}

		io.WriteString(out, "{")
		printed := false
		for i := 0; i < typ.NumField(); i++ {
			fieldValue := value.Field(i)
			if !fieldValue.CanInterface() {
				continue
			}
			if printed {
				io.WriteString(out, ", ")
			} else {
				io.WriteString(out, " ")
				printed = true
			}
			io.WriteString(out, typ.Field(i).Name+": ")
			if err := inspectToWithCircularCheck(out, fieldValue.Interface(), seenValues); err != nil {
				return err
			}
		}
		if printed {
			io.WriteString(out, " ")
		}
		io.WriteString(out, "}")

	case reflect.Ptr:
		elem := value.Elem()
		if !elem.IsValid() {
			io.WriteString(out, "null")
			return nil
		}
		return inspectToWithCircularCheck(out, elem.Interface(), seenValues)

	case reflect.Invalid:
		io.WriteString(out, "null")

	default:
		_, err := fmt.Fprint(out, v)
		return err
	}

	return nil
}

func inspectToWithCircularCheck(out io.Writer, v interface{}, previouslySeenValues []interface{}) error {
	for _, seen := range previouslySeenValues {
		if reflect.DeepEqual(seen, v) {
			io.WriteString(out, "[Circular]")
			return nil
		}
	}
	return inspectTo(out, v, previouslySeenValues)
}
