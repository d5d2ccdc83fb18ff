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
	"context"

	"github.com/briarloom/graphql/internal/future"
)

// ResolveKind classifies a FieldDef's Resolve value.
type ResolveKind uint8

// Enumeration of ResolveKind.
const (
	// ResolveUndefined means the field has no resolver. Invoking its compiled Execute is a
	// programmer error.
	ResolveUndefined ResolveKind = iota

	// ResolveSync means the field's value is produced synchronously.
	ResolveSync

	// ResolveAsync means the field's value is produced asynchronously.
	ResolveAsync
)

// SyncResolveFunc produces a field's value synchronously from its parent source value.
type SyncResolveFunc func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)

// AsyncResolveFunc produces a field's value asynchronously.
type AsyncResolveFunc func(ctx context.Context, source interface{}, info ResolveInfo) future.AsyncVal

// FieldResolve holds exactly one resolver kind, selected by Kind.
type FieldResolve struct {
	Kind  ResolveKind
	Sync  SyncResolveFunc
	Async AsyncResolveFunc
}

// SyncResolve wraps fn as a synchronous FieldResolve.
func SyncResolve(fn SyncResolveFunc) FieldResolve {
	return FieldResolve{Kind: ResolveSync, Sync: fn}
}

// AsyncResolve wraps fn as an asynchronous FieldResolve.
func AsyncResolve(fn AsyncResolveFunc) FieldResolve {
	return FieldResolve{Kind: ResolveAsync, Async: fn}
}

// FieldExecuteFunc is the compiled form of a field, produced once by the Schema Compile Pass (C8)
// and stored in FieldDef.Execute. It combines the user resolver with the type-directed completion
// function for the field's return type.
type FieldExecuteFunc func(ctx context.Context, source interface{}, info ResolveInfo) future.AsyncVal

// FieldDef defines one field of an Object or Interface type.
type FieldDef struct {
	Name        string
	Description string
	Type        TypeDef
	Args        []*InputFieldDef
	Resolve     FieldResolve
	Deprecation *Deprecation

	// Execute is filled in by the Schema Compile Pass (C8); nil until then. Never set directly.
	Execute FieldExecuteFunc
}

// FieldMap maps a field's name to its definition, as declared on an Object or Interface.
type FieldMap map[string]*FieldDef

// Arg returns the named argument definition, or nil if the field declares no such argument.
func (f *FieldDef) Arg(name string) *InputFieldDef {
	for _, arg := range f.Args {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}
