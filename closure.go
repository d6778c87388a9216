// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

import "fmt"

// Closure is a value-returning function with explicitly captured data:
// Closure[C, In, Out] computes Out from In using data of type C.
//
// Unlike a func literal, its type names the captured data, so it can be a
// struct field without a type parameter for the function and two closures
// over the same C from different call sites have the same type.
type Closure[C, In, Out any] struct {
	capture C
	fun     func(*C, In) Out
}

// Call applies the closure's function to its captured data and in.
func (c *Closure[C, In, Out]) Call(in In) Out {
	return c.fun(&c.capture, in)
}

// CapturedData returns a pointer to the captured data.
func (c *Closure[C, In, Out]) CapturedData() *C {
	return &c.capture
}

// IntoCapturedData returns the captured data.
func (c Closure[C, In, Out]) IntoCapturedData() C {
	return c.capture
}

// AsFn returns c.Call as a plain function, for call sites generic over
// func(In) Out rather than over [Caller].
func (c *Closure[C, In, Out]) AsFn() func(In) Out {
	return c.Call
}

// Clone returns a copy of c. The function is shared; the captured data is
// cloned through [Cloner] when it implements it.
func (c Closure[C, In, Out]) Clone() Closure[C, In, Out] {
	return Closure[C, In, Out]{capture: cloneData(c.capture), fun: c.fun}
}

// String formats the captured data only.
func (c Closure[C, In, Out]) String() string {
	return fmt.Sprintf("Closure{capture: %v}", c.capture)
}

// GoString formats the captured data only, with %#v.
func (c Closure[C, In, Out]) GoString() string {
	return fmt.Sprintf("closure.Closure{capture: %#v}", c.capture)
}
