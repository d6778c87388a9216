// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

import (
	"fmt"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// ClosureOptRef is a closure returning an optional pointer derived from its
// captured data. An absent result is an ordinary output of the function,
// not a failure of the closure.
type ClosureOptRef[C, In, Out any] struct {
	capture C
	fun     func(*C, In) fn.Option[*Out]
}

// Call applies the closure's function to its captured data and in.
func (c *ClosureOptRef[C, In, Out]) Call(in In) fn.Option[*Out] {
	return c.fun(&c.capture, in)
}

// CapturedData returns a pointer to the captured data.
func (c *ClosureOptRef[C, In, Out]) CapturedData() *C {
	return &c.capture
}

// IntoCapturedData returns the captured data.
func (c ClosureOptRef[C, In, Out]) IntoCapturedData() C {
	return c.capture
}

// AsFn returns c.Call as a plain function.
func (c *ClosureOptRef[C, In, Out]) AsFn() func(In) fn.Option[*Out] {
	return c.Call
}

// Clone returns a copy of c with its captured data cloned.
func (c ClosureOptRef[C, In, Out]) Clone() ClosureOptRef[C, In, Out] {
	return ClosureOptRef[C, In, Out]{capture: cloneData(c.capture), fun: c.fun}
}

func (c ClosureOptRef[C, In, Out]) String() string {
	return fmt.Sprintf("ClosureOptRef{capture: %v}", c.capture)
}

func (c ClosureOptRef[C, In, Out]) GoString() string {
	return fmt.Sprintf("closure.ClosureOptRef{capture: %#v}", c.capture)
}
