// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

import (
	"fmt"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// ClosureOneOf2 is a value-returning closure over one of two capture types.
//
// The populated slot is fixed when the closure is built with one of the
// IntoClosureOneOf2VarK promotions; there is no empty or later-filled state.
// The zero value holds no closure: Call, CapturedData and IntoCapturedData
// panic on it.
// Call dispatches to the populated slot without allocation or interface
// calls, so a ClosureOneOf2 can stand in for a heap-allocated func in a struct
// field while still accepting two different kinds of captured data.
type ClosureOneOf2[C1, C2, In, Out any] struct {
	closure OneOf2[Closure[C1, In, Out], Closure[C2, In, Out]]
}

// Call dispatches to the closure in the populated slot.
func (c *ClosureOneOf2[C1, C2, In, Out]) Call(in In) Out {
	switch c.closure.variant {
	case 1:
		return c.closure.v1.Call(in)
	case 2:
		return c.closure.v2.Call(in)
	}
	emptyOneOf("ClosureOneOf2")
	var zero Out
	return zero
}

// CapturedData returns a pointer to the captured data of the populated slot.
func (c *ClosureOneOf2[C1, C2, In, Out]) CapturedData() OneOf2[*C1, *C2] {
	switch c.closure.variant {
	case 1:
		return OneOf2[*C1, *C2]{variant: 1, v1: c.closure.v1.CapturedData()}
	case 2:
		return OneOf2[*C1, *C2]{variant: 2, v2: c.closure.v2.CapturedData()}
	}
	emptyOneOf("ClosureOneOf2")
	return OneOf2[*C1, *C2]{}
}

// IntoCapturedData returns the captured data of the populated slot.
func (c ClosureOneOf2[C1, C2, In, Out]) IntoCapturedData() OneOf2[C1, C2] {
	switch c.closure.variant {
	case 1:
		return OneOf2[C1, C2]{variant: 1, v1: c.closure.v1.IntoCapturedData()}
	case 2:
		return OneOf2[C1, C2]{variant: 2, v2: c.closure.v2.IntoCapturedData()}
	}
	emptyOneOf("ClosureOneOf2")
	return OneOf2[C1, C2]{}
}

// AsFn returns c.Call as a plain function.
func (c *ClosureOneOf2[C1, C2, In, Out]) AsFn() func(In) Out {
	return c.Call
}

// Variant returns the populated slot, from 1 to 2.
func (c ClosureOneOf2[C1, C2, In, Out]) Variant() int {
	return c.closure.Variant()
}

// Clone returns a copy of c with the captured data of the populated slot
// cloned.
func (c ClosureOneOf2[C1, C2, In, Out]) Clone() ClosureOneOf2[C1, C2, In, Out] {
	switch c.closure.variant {
	case 1:
		c.closure.v1 = c.closure.v1.Clone()
	case 2:
		c.closure.v2 = c.closure.v2.Clone()
	}
	return c
}

func (c ClosureOneOf2[C1, C2, In, Out]) String() string {
	return fmt.Sprintf("ClosureOneOf2{%v}", c.closure)
}

// IntoClosureOneOf2Var1 places c in slot 1 of a ClosureOneOf2.
// The capture types of the other slots cannot be inferred and are given
// explicitly: IntoClosureOneOf2Var1[C2](c).
func IntoClosureOneOf2Var1[C2, C1, In, Out any](c Closure[C1, In, Out]) ClosureOneOf2[C1, C2, In, Out] {
	var u ClosureOneOf2[C1, C2, In, Out]
	u.closure.variant = 1
	u.closure.v1 = c
	return u
}

// IntoClosureOneOf2Var2 places c in slot 2 of a ClosureOneOf2.
func IntoClosureOneOf2Var2[C1, C2, In, Out any](c Closure[C2, In, Out]) ClosureOneOf2[C1, C2, In, Out] {
	var u ClosureOneOf2[C1, C2, In, Out]
	u.closure.variant = 2
	u.closure.v2 = c
	return u
}

// ClosureRefOneOf2 is a reference-returning closure over one of two capture types.
type ClosureRefOneOf2[C1, C2, In, Out any] struct {
	closure OneOf2[ClosureRef[C1, In, Out], ClosureRef[C2, In, Out]]
}

// Call dispatches to the closure in the populated slot.
func (c *ClosureRefOneOf2[C1, C2, In, Out]) Call(in In) *Out {
	switch c.closure.variant {
	case 1:
		return c.closure.v1.Call(in)
	case 2:
		return c.closure.v2.Call(in)
	}
	emptyOneOf("ClosureRefOneOf2")
	return nil
}

// CapturedData returns a pointer to the captured data of the populated slot.
func (c *ClosureRefOneOf2[C1, C2, In, Out]) CapturedData() OneOf2[*C1, *C2] {
	switch c.closure.variant {
	case 1:
		return OneOf2[*C1, *C2]{variant: 1, v1: c.closure.v1.CapturedData()}
	case 2:
		return OneOf2[*C1, *C2]{variant: 2, v2: c.closure.v2.CapturedData()}
	}
	emptyOneOf("ClosureRefOneOf2")
	return OneOf2[*C1, *C2]{}
}

// IntoCapturedData returns the captured data of the populated slot.
func (c ClosureRefOneOf2[C1, C2, In, Out]) IntoCapturedData() OneOf2[C1, C2] {
	switch c.closure.variant {
	case 1:
		return OneOf2[C1, C2]{variant: 1, v1: c.closure.v1.IntoCapturedData()}
	case 2:
		return OneOf2[C1, C2]{variant: 2, v2: c.closure.v2.IntoCapturedData()}
	}
	emptyOneOf("ClosureRefOneOf2")
	return OneOf2[C1, C2]{}
}

// AsFn returns c.Call as a plain function.
func (c *ClosureRefOneOf2[C1, C2, In, Out]) AsFn() func(In) *Out {
	return c.Call
}

// Variant returns the populated slot, from 1 to 2.
func (c ClosureRefOneOf2[C1, C2, In, Out]) Variant() int {
	return c.closure.Variant()
}

// Clone returns a copy of c with the captured data of the populated slot
// cloned.
func (c ClosureRefOneOf2[C1, C2, In, Out]) Clone() ClosureRefOneOf2[C1, C2, In, Out] {
	switch c.closure.variant {
	case 1:
		c.closure.v1 = c.closure.v1.Clone()
	case 2:
		c.closure.v2 = c.closure.v2.Clone()
	}
	return c
}

func (c ClosureRefOneOf2[C1, C2, In, Out]) String() string {
	return fmt.Sprintf("ClosureRefOneOf2{%v}", c.closure)
}

// IntoClosureRefOneOf2Var1 places c in slot 1 of a ClosureRefOneOf2.
func IntoClosureRefOneOf2Var1[C2, C1, In, Out any](c ClosureRef[C1, In, Out]) ClosureRefOneOf2[C1, C2, In, Out] {
	var u ClosureRefOneOf2[C1, C2, In, Out]
	u.closure.variant = 1
	u.closure.v1 = c
	return u
}

// IntoClosureRefOneOf2Var2 places c in slot 2 of a ClosureRefOneOf2.
func IntoClosureRefOneOf2Var2[C1, C2, In, Out any](c ClosureRef[C2, In, Out]) ClosureRefOneOf2[C1, C2, In, Out] {
	var u ClosureRefOneOf2[C1, C2, In, Out]
	u.closure.variant = 2
	u.closure.v2 = c
	return u
}

// ClosureOptRefOneOf2 is an optional-reference-returning closure over one of two capture types.
type ClosureOptRefOneOf2[C1, C2, In, Out any] struct {
	closure OneOf2[ClosureOptRef[C1, In, Out], ClosureOptRef[C2, In, Out]]
}

// Call dispatches to the closure in the populated slot.
func (c *ClosureOptRefOneOf2[C1, C2, In, Out]) Call(in In) fn.Option[*Out] {
	switch c.closure.variant {
	case 1:
		return c.closure.v1.Call(in)
	case 2:
		return c.closure.v2.Call(in)
	}
	emptyOneOf("ClosureOptRefOneOf2")
	return fn.None[*Out]()
}

// CapturedData returns a pointer to the captured data of the populated slot.
func (c *ClosureOptRefOneOf2[C1, C2, In, Out]) CapturedData() OneOf2[*C1, *C2] {
	switch c.closure.variant {
	case 1:
		return OneOf2[*C1, *C2]{variant: 1, v1: c.closure.v1.CapturedData()}
	case 2:
		return OneOf2[*C1, *C2]{variant: 2, v2: c.closure.v2.CapturedData()}
	}
	emptyOneOf("ClosureOptRefOneOf2")
	return OneOf2[*C1, *C2]{}
}

// IntoCapturedData returns the captured data of the populated slot.
func (c ClosureOptRefOneOf2[C1, C2, In, Out]) IntoCapturedData() OneOf2[C1, C2] {
	switch c.closure.variant {
	case 1:
		return OneOf2[C1, C2]{variant: 1, v1: c.closure.v1.IntoCapturedData()}
	case 2:
		return OneOf2[C1, C2]{variant: 2, v2: c.closure.v2.IntoCapturedData()}
	}
	emptyOneOf("ClosureOptRefOneOf2")
	return OneOf2[C1, C2]{}
}

// AsFn returns c.Call as a plain function.
func (c *ClosureOptRefOneOf2[C1, C2, In, Out]) AsFn() func(In) fn.Option[*Out] {
	return c.Call
}

// Variant returns the populated slot, from 1 to 2.
func (c ClosureOptRefOneOf2[C1, C2, In, Out]) Variant() int {
	return c.closure.Variant()
}

// Clone returns a copy of c with the captured data of the populated slot
// cloned.
func (c ClosureOptRefOneOf2[C1, C2, In, Out]) Clone() ClosureOptRefOneOf2[C1, C2, In, Out] {
	switch c.closure.variant {
	case 1:
		c.closure.v1 = c.closure.v1.Clone()
	case 2:
		c.closure.v2 = c.closure.v2.Clone()
	}
	return c
}

func (c ClosureOptRefOneOf2[C1, C2, In, Out]) String() string {
	return fmt.Sprintf("ClosureOptRefOneOf2{%v}", c.closure)
}

// IntoClosureOptRefOneOf2Var1 places c in slot 1 of a ClosureOptRefOneOf2.
func IntoClosureOptRefOneOf2Var1[C2, C1, In, Out any](c ClosureOptRef[C1, In, Out]) ClosureOptRefOneOf2[C1, C2, In, Out] {
	var u ClosureOptRefOneOf2[C1, C2, In, Out]
	u.closure.variant = 1
	u.closure.v1 = c
	return u
}

// IntoClosureOptRefOneOf2Var2 places c in slot 2 of a ClosureOptRefOneOf2.
func IntoClosureOptRefOneOf2Var2[C1, C2, In, Out any](c ClosureOptRef[C2, In, Out]) ClosureOptRefOneOf2[C1, C2, In, Out] {
	var u ClosureOptRefOneOf2[C1, C2, In, Out]
	u.closure.variant = 2
	u.closure.v2 = c
	return u
}

// ClosureResRefOneOf2 is a fallible-reference-returning closure over one of two capture types.
type ClosureResRefOneOf2[C1, C2, In, Out any, E error] struct {
	closure OneOf2[ClosureResRef[C1, In, Out, E], ClosureResRef[C2, In, Out, E]]
}

// Call dispatches to the closure in the populated slot.
func (c *ClosureResRefOneOf2[C1, C2, In, Out, E]) Call(in In) (*Out, E) {
	switch c.closure.variant {
	case 1:
		return c.closure.v1.Call(in)
	case 2:
		return c.closure.v2.Call(in)
	}
	emptyOneOf("ClosureResRefOneOf2")
	var zero E
	return nil, zero
}

// CapturedData returns a pointer to the captured data of the populated slot.
func (c *ClosureResRefOneOf2[C1, C2, In, Out, E]) CapturedData() OneOf2[*C1, *C2] {
	switch c.closure.variant {
	case 1:
		return OneOf2[*C1, *C2]{variant: 1, v1: c.closure.v1.CapturedData()}
	case 2:
		return OneOf2[*C1, *C2]{variant: 2, v2: c.closure.v2.CapturedData()}
	}
	emptyOneOf("ClosureResRefOneOf2")
	return OneOf2[*C1, *C2]{}
}

// IntoCapturedData returns the captured data of the populated slot.
func (c ClosureResRefOneOf2[C1, C2, In, Out, E]) IntoCapturedData() OneOf2[C1, C2] {
	switch c.closure.variant {
	case 1:
		return OneOf2[C1, C2]{variant: 1, v1: c.closure.v1.IntoCapturedData()}
	case 2:
		return OneOf2[C1, C2]{variant: 2, v2: c.closure.v2.IntoCapturedData()}
	}
	emptyOneOf("ClosureResRefOneOf2")
	return OneOf2[C1, C2]{}
}

// AsFn returns c.Call as a plain function.
func (c *ClosureResRefOneOf2[C1, C2, In, Out, E]) AsFn() func(In) (*Out, E) {
	return c.Call
}

// Variant returns the populated slot, from 1 to 2.
func (c ClosureResRefOneOf2[C1, C2, In, Out, E]) Variant() int {
	return c.closure.Variant()
}

// Clone returns a copy of c with the captured data of the populated slot
// cloned.
func (c ClosureResRefOneOf2[C1, C2, In, Out, E]) Clone() ClosureResRefOneOf2[C1, C2, In, Out, E] {
	switch c.closure.variant {
	case 1:
		c.closure.v1 = c.closure.v1.Clone()
	case 2:
		c.closure.v2 = c.closure.v2.Clone()
	}
	return c
}

func (c ClosureResRefOneOf2[C1, C2, In, Out, E]) String() string {
	return fmt.Sprintf("ClosureResRefOneOf2{%v}", c.closure)
}

// IntoClosureResRefOneOf2Var1 places c in slot 1 of a ClosureResRefOneOf2.
func IntoClosureResRefOneOf2Var1[C2, C1, In, Out any, E error](c ClosureResRef[C1, In, Out, E]) ClosureResRefOneOf2[C1, C2, In, Out, E] {
	var u ClosureResRefOneOf2[C1, C2, In, Out, E]
	u.closure.variant = 1
	u.closure.v1 = c
	return u
}

// IntoClosureResRefOneOf2Var2 places c in slot 2 of a ClosureResRefOneOf2.
func IntoClosureResRefOneOf2Var2[C1, C2, In, Out any, E error](c ClosureResRef[C2, In, Out, E]) ClosureResRefOneOf2[C1, C2, In, Out, E] {
	var u ClosureResRefOneOf2[C1, C2, In, Out, E]
	u.closure.variant = 2
	u.closure.v2 = c
	return u
}
