// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

import "fmt"

// ClosureResRef is a closure returning either a pointer derived from its
// captured data or an error. E is chosen by the caller and passed through
// as returned by the function; the closure neither wraps nor inspects it.
type ClosureResRef[C, In, Out any, E error] struct {
	capture C
	fun     func(*C, In) (*Out, E)
}

// Call applies the closure's function to its captured data and in.
func (c *ClosureResRef[C, In, Out, E]) Call(in In) (*Out, E) {
	return c.fun(&c.capture, in)
}

// CapturedData returns a pointer to the captured data.
func (c *ClosureResRef[C, In, Out, E]) CapturedData() *C {
	return &c.capture
}

// IntoCapturedData returns the captured data.
func (c ClosureResRef[C, In, Out, E]) IntoCapturedData() C {
	return c.capture
}

// AsFn returns c.Call as a plain function.
func (c *ClosureResRef[C, In, Out, E]) AsFn() func(In) (*Out, E) {
	return c.Call
}

// Clone returns a copy of c with its captured data cloned.
func (c ClosureResRef[C, In, Out, E]) Clone() ClosureResRef[C, In, Out, E] {
	return ClosureResRef[C, In, Out, E]{capture: cloneData(c.capture), fun: c.fun}
}

func (c ClosureResRef[C, In, Out, E]) String() string {
	return fmt.Sprintf("ClosureResRef{capture: %v}", c.capture)
}

func (c ClosureResRef[C, In, Out, E]) GoString() string {
	return fmt.Sprintf("closure.ClosureResRef{capture: %#v}", c.capture)
}
