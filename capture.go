// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

import "github.com/lightningnetwork/lnd/fn/v2"

// Captured holds data that a closure is about to capture.
// It is the starting point of every closure:
//
//	c := closure.Fun(closure.Capture(seq), func(s *[]int, i int) int {
//		return (*s)[i] * 2
//	})
type Captured[C any] struct {
	data C
}

// Capture wraps data for one of [Fun], [FunRef], [FunOptionRef] or
// [FunResultRef].
//
// The data may be a value, a pointer or any shared handle; it is moved
// into the closure as is and handed back by IntoCapturedData.
func Capture[C any](data C) Captured[C] {
	return Captured[C]{data: data}
}

// IntoCapturedData returns the wrapped data.
func (c Captured[C]) IntoCapturedData() C {
	return c.data
}

// Fun pairs the captured data with f, producing a value-returning closure.
//
// f receives a pointer to the closure's own copy of the data. It must not
// mutate through it and must not capture any variable of its own: the pair
// {data, f} is meant to describe the whole computation.
func Fun[C, In, Out any](c Captured[C], f func(*C, In) Out) Closure[C, In, Out] {
	return Closure[C, In, Out]{capture: c.data, fun: f}
}

// FunRef pairs the captured data with f, producing a closure that returns
// a pointer derived from the captured data.
func FunRef[C, In, Out any](c Captured[C], f func(*C, In) *Out) ClosureRef[C, In, Out] {
	return ClosureRef[C, In, Out]{capture: c.data, fun: f}
}

// FunOptionRef pairs the captured data with f, producing a closure that
// returns an optional pointer derived from the captured data.
func FunOptionRef[C, In, Out any](c Captured[C], f func(*C, In) fn.Option[*Out]) ClosureOptRef[C, In, Out] {
	return ClosureOptRef[C, In, Out]{capture: c.data, fun: f}
}

// FunResultRef pairs the captured data with f, producing a closure that
// returns a pointer derived from the captured data or an error of the
// caller's choosing. The error is passed through untouched.
func FunResultRef[C, In, Out any, E error](c Captured[C], f func(*C, In) (*Out, E)) ClosureResRef[C, In, Out, E] {
	return ClosureResRef[C, In, Out, E]{capture: c.data, fun: f}
}
