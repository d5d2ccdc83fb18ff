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

package executor

import (
	"context"
	"fmt"
	"reflect"

	"github.com/briarloom/graphql"
	"github.com/briarloom/graphql/internal/util"
)

// DefaultResolver returns a resolver that reads a field's value off the source value's own shape:
// the exported struct field whose name is the field name in CamelCase, or the map entry keyed by
// the field name (falling back to its snake_case form, the common shape for row-scan maps). A
// schema author opts a field into it explicitly; a field left with no resolver at all is still an
// error when traversed.
func DefaultResolver() graphql.FieldResolve {
	return graphql.SyncResolve(resolveFromSource)
}

func resolveFromSource(_ context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
	fieldName := info.Info().Definition.Name

	value := reflect.ValueOf(source)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if !value.IsValid() {
		return nil, nil
	}

	switch value.Kind() {
	case reflect.Struct:
		field := value.FieldByName(util.CamelCase(fieldName))
		if field.IsValid() && field.CanInterface() {
			return field.Interface(), nil
		}

	case reflect.Map:
		if value.Type().Key().Kind() != reflect.String {
			break
		}
		if entry := value.MapIndex(reflect.ValueOf(fieldName)); entry.IsValid() {
			return entry.Interface(), nil
		}
		if entry := value.MapIndex(reflect.ValueOf(util.SnakeCase(fieldName))); entry.IsValid() {
			return entry.Interface(), nil
		}
		return nil, nil
	}

	return nil, graphql.NewError(fmt.Sprintf(
		`default resolver cannot resolve value for "%s.%s"`,
		info.ParentType().Name(), fieldName))
}
