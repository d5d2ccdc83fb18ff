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
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// Op describes an operation, usually the package and method, such as "executor.executeFields".
type Op string

// ErrKind classifies an Error so callers can tell field errors (rescued, reported, the field
// becomes null) from structural errors (a programmer/planner mistake, not rescued).
type ErrKind uint8

// Enumeration of ErrKind.
const (
	ErrKindOther     ErrKind = iota // Unclassified. Not printed in the error message.
	ErrKindCoercion                 // Failed to coerce an input or argument value.
	ErrKindExecution                // A field resolver or completion step failed; rescuable.
	ErrKindInternal                 // Planner/schema misuse; never rescued.
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindCoercion:
		return "coercion error"
	case ErrKindExecution:
		return "execution error"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// ErrorExtensions provides an additional "extensions" entry for vendor-specific error data.
//
// Reference: https://github.com/facebook/graphql/pull/407
type ErrorExtensions map[string]interface{}

// ErrorLocation is a { line, column } pointing into the source document. This core does not parse
// documents, so locations are only ever propagated from whatever the caller attaches; nothing here
// computes them from source text.
type ErrorLocation struct {
	Line   uint
	Column uint
}

// ErrorWithLocations is implemented by errors carrying source locations.
type ErrorWithLocations interface {
	Locations() []ErrorLocation
}

// ErrorWithPath is implemented by errors carrying a ResponsePath.
type ErrorWithPath interface {
	Path() ResponsePath
}

// ErrorWithExtensions is implemented by errors carrying ErrorExtensions.
type ErrorWithExtensions interface {
	Extensions() ErrorExtensions
}

// Error is this package's error value. It is designed to carry the fields of a GraphQL response
// error as per spec, plus Op and Kind to make debugging easier. NewError can build one by wrapping
// an existing error; any Locations/Path/Extensions/Kind not given explicitly are pulled up from the
// wrapped error.
//
// Modeled on upspin.io/errors; see https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
type Error struct {
	Message    string
	Locations  []ErrorLocation
	Path       ResponsePath
	Extensions ErrorExtensions
	Err        error
	Op         Op
	Kind       ErrKind
}

var _ error = (*Error)(nil)

// NewError builds an *Error from a message and a set of typed arguments. Unrecognized argument
// types are a programmer error and panic, matching Emplace's contract below.
func NewError(message string, args ...interface{}) error {
	e := &Error{Message: message}

	for _, arg := range args {
		switch arg := arg.(type) {
		case ErrorLocation:
			e.Locations = []ErrorLocation{arg}
		case []ErrorLocation:
			e.Locations = arg
		case ResponsePath:
			e.Path = arg
		case ErrorExtensions:
			e.Extensions = arg
		case error:
			e.Err = arg
		case Op:
			e.Op = arg
		case ErrKind:
			e.Kind = arg
		default:
			panic(fmt.Sprintf("graphql.NewError: unsupported argument type %T (value %v)", arg, arg))
		}
	}

	if prev := e.Err; prev != nil {
		if len(e.Locations) == 0 {
			switch err := prev.(type) {
			case ErrorWithLocations:
				e.Locations = err.Locations()
			case *Error:
				if len(err.Locations) > 0 {
					e.Locations = append([]ErrorLocation(nil), err.Locations...)
				}
			}
		}
		if e.Path.Empty() {
			switch err := prev.(type) {
			case ErrorWithPath:
				e.Path = err.Path()
			case *Error:
				if !err.Path.Empty() {
					e.Path = err.Path.Clone()
				}
			}
		}
		if e.Extensions == nil {
			switch err := prev.(type) {
			case ErrorWithExtensions:
				e.Extensions = err.Extensions()
			case *Error:
				e.Extensions = err.Extensions
			}
		}
		if e.Kind == ErrKindOther {
			if err, ok := prev.(*Error); ok {
				e.Kind = err.Kind
			}
		}
	}

	return e
}

// WrapError builds an Error from an underlying error with a new top-level message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is WrapError with a format specifier.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// Unwrap allows errors.Is/errors.As to see through an Error to its cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	e.printError(&b)
	return b.String()
}

func (e *Error) printError(b *strings.Builder) {
	pad := func(str string) {
		if b.Len() > 0 {
			b.WriteString(str)
		}
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}
	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}
	if !e.Path.Empty() {
		pad(" ")
		b.WriteString("(path ")
		b.WriteString(e.Path.String())
		b.WriteString(")")
	}
	if e.Kind != ErrKindOther {
		pad(" ")
		b.WriteString("[")
		b.WriteString(e.Kind.String())
		b.WriteString("]")
	}
	if e.Err != nil {
		if inner, ok := e.Err.(*Error); ok {
			pad(": ")
			inner.printError(b)
			return
		}
		pad(": ")
		b.WriteString(e.Err.Error())
	}
}

// errorMarshaller implements jsoniter.ValEncoder to encode Error to JSON.
type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return false
}

func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	e := (*Error)(ptr)
	stream.WriteObjectStart()
	stream.WriteObjectField("message")
	stream.WriteString(e.Message)

	if len(e.Locations) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("locations")
		stream.WriteArrayStart()
		for i, loc := range e.Locations {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectStart()
			stream.WriteObjectField("line")
			stream.WriteUint(loc.Line)
			stream.WriteMore()
			stream.WriteObjectField("column")
			stream.WriteUint(loc.Column)
			stream.WriteObjectEnd()
		}
		stream.WriteArrayEnd()
	}

	if !e.Path.Empty() {
		stream.WriteMore()
		stream.WriteObjectField("path")
		stream.WriteVal(e.Path.Keys())
	}

	if len(e.Extensions) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("extensions")
		stream.WriteVal(map[string]interface{}(e.Extensions))
	}

	stream.WriteObjectEnd()
}

// Errors wraps a list of *Error. It is a named struct (not a bare []*Error slice alias) so that
// callers are forced through HaveOccurred() instead of comparing against nil -- an Errors value
// can be a non-nil, zero-length slice, which must still mean "no error."
type Errors struct {
	Errors []*Error
}

// NoErrors constructs an empty Errors.
func NoErrors() Errors {
	return Errors{}
}

// ErrorsOf is a convenience constructor. It accepts either a list of *Error values, or the
// arguments that NewError itself would take (a message followed by typed context).
func ErrorsOf(args ...interface{}) Errors {
	var errs Errors
	for i, arg := range args {
		switch arg := arg.(type) {
		case error:
			errs.Append(arg)
		case string:
			errs.Emplace(arg, args[i+1:]...)
			return errs
		default:
			panic("graphql.ErrorsOf: unsupported argument")
		}
	}
	return errs
}

// Emplace constructs an Error from message and args (as NewError would) and appends it.
func (errs *Errors) Emplace(message string, args ...interface{}) {
	errs.Append(NewError(message, args...))
}

// Append appends errors to errs. Every value must be a *Error; anything else panics.
func (errs *Errors) Append(es ...error) {
	for _, err := range es {
		errs.Errors = append(errs.Errors, err.(*Error))
	}
}

// AppendErrors concatenates other Errors values onto errs in place.
func (errs *Errors) AppendErrors(others ...Errors) {
	for _, other := range others {
		errs.Errors = append(errs.Errors, other.Errors...)
	}
}

// HaveOccurred reports whether any error was recorded. Prefer this to a nil check: a value
// returned by NoErrors() is a valid, occurred-free Errors.
func (errs Errors) HaveOccurred() bool {
	return len(errs.Errors) > 0
}

func init() {
	jsoniter.RegisterTypeEncoder("graphql.Error", errorMarshaller{})
}
