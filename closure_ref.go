// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

import "fmt"

// ClosureRef is a closure returning a pointer derived from its captured
// data. The pointer stays valid for as long as it is referenced; it points
// into the copy of the data held by the closure Call was invoked on.
type ClosureRef[C, In, Out any] struct {
	capture C
	fun     func(*C, In) *Out
}

// Call applies the closure's function to its captured data and in.
func (c *ClosureRef[C, In, Out]) Call(in In) *Out {
	return c.fun(&c.capture, in)
}

// CapturedData returns a pointer to the captured data.
func (c *ClosureRef[C, In, Out]) CapturedData() *C {
	return &c.capture
}

// IntoCapturedData returns the captured data.
func (c ClosureRef[C, In, Out]) IntoCapturedData() C {
	return c.capture
}

// AsFn returns c.Call as a plain function.
func (c *ClosureRef[C, In, Out]) AsFn() func(In) *Out {
	return c.Call
}

// Clone returns a copy of c with its captured data cloned.
func (c ClosureRef[C, In, Out]) Clone() ClosureRef[C, In, Out] {
	return ClosureRef[C, In, Out]{capture: cloneData(c.capture), fun: c.fun}
}

func (c ClosureRef[C, In, Out]) String() string {
	return fmt.Sprintf("ClosureRef{capture: %v}", c.capture)
}

func (c ClosureRef[C, In, Out]) GoString() string {
	return fmt.Sprintf("closure.ClosureRef{capture: %#v}", c.capture)
}
