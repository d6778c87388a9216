// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

import (
	"fmt"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// ClosureOneOf3 is a value-returning closure over one of three capture types.
//
// The populated slot is fixed when the closure is built with one of the
// IntoClosureOneOf3VarK promotions; there is no empty or later-filled state.
// The zero value holds no closure: Call, CapturedData and IntoCapturedData
// panic on it.
// Call dispatches to the populated slot without allocation or interface
// calls, so a ClosureOneOf3 can stand in for a heap-allocated func in a struct
// field while still accepting three different kinds of captured data.
type ClosureOneOf3[C1, C2, C3, In, Out any] struct {
	closure OneOf3[Closure[C1, In, Out], Closure[C2, In, Out], Closure[C3, In, Out]]
}

// Call dispatches to the closure in the populated slot.
func (c *ClosureOneOf3[C1, C2, C3, In, Out]) Call(in In) Out {
	switch c.closure.variant {
	case 1:
		return c.closure.v1.Call(in)
	case 2:
		return c.closure.v2.Call(in)
	case 3:
		return c.closure.v3.Call(in)
	}
	emptyOneOf("ClosureOneOf3")
	var zero Out
	return zero
}

// CapturedData returns a pointer to the captured data of the populated slot.
func (c *ClosureOneOf3[C1, C2, C3, In, Out]) CapturedData() OneOf3[*C1, *C2, *C3] {
	switch c.closure.variant {
	case 1:
		return OneOf3[*C1, *C2, *C3]{variant: 1, v1: c.closure.v1.CapturedData()}
	case 2:
		return OneOf3[*C1, *C2, *C3]{variant: 2, v2: c.closure.v2.CapturedData()}
	case 3:
		return OneOf3[*C1, *C2, *C3]{variant: 3, v3: c.closure.v3.CapturedData()}
	}
	emptyOneOf("ClosureOneOf3")
	return OneOf3[*C1, *C2, *C3]{}
}

// IntoCapturedData returns the captured data of the populated slot.
func (c ClosureOneOf3[C1, C2, C3, In, Out]) IntoCapturedData() OneOf3[C1, C2, C3] {
	switch c.closure.variant {
	case 1:
		return OneOf3[C1, C2, C3]{variant: 1, v1: c.closure.v1.IntoCapturedData()}
	case 2:
		return OneOf3[C1, C2, C3]{variant: 2, v2: c.closure.v2.IntoCapturedData()}
	case 3:
		return OneOf3[C1, C2, C3]{variant: 3, v3: c.closure.v3.IntoCapturedData()}
	}
	emptyOneOf("ClosureOneOf3")
	return OneOf3[C1, C2, C3]{}
}

// AsFn returns c.Call as a plain function.
func (c *ClosureOneOf3[C1, C2, C3, In, Out]) AsFn() func(In) Out {
	return c.Call
}

// Variant returns the populated slot, from 1 to 3.
func (c ClosureOneOf3[C1, C2, C3, In, Out]) Variant() int {
	return c.closure.Variant()
}

// Clone returns a copy of c with the captured data of the populated slot
// cloned.
func (c ClosureOneOf3[C1, C2, C3, In, Out]) Clone() ClosureOneOf3[C1, C2, C3, In, Out] {
	switch c.closure.variant {
	case 1:
		c.closure.v1 = c.closure.v1.Clone()
	case 2:
		c.closure.v2 = c.closure.v2.Clone()
	case 3:
		c.closure.v3 = c.closure.v3.Clone()
	}
	return c
}

func (c ClosureOneOf3[C1, C2, C3, In, Out]) String() string {
	return fmt.Sprintf("ClosureOneOf3{%v}", c.closure)
}

// IntoClosureOneOf3Var1 places c in slot 1 of a ClosureOneOf3.
// The capture types of the other slots cannot be inferred and are given
// explicitly: IntoClosureOneOf3Var1[C2, C3](c).
func IntoClosureOneOf3Var1[C2, C3, C1, In, Out any](c Closure[C1, In, Out]) ClosureOneOf3[C1, C2, C3, In, Out] {
	var u ClosureOneOf3[C1, C2, C3, In, Out]
	u.closure.variant = 1
	u.closure.v1 = c
	return u
}

// IntoClosureOneOf3Var2 places c in slot 2 of a ClosureOneOf3.
func IntoClosureOneOf3Var2[C1, C3, C2, In, Out any](c Closure[C2, In, Out]) ClosureOneOf3[C1, C2, C3, In, Out] {
	var u ClosureOneOf3[C1, C2, C3, In, Out]
	u.closure.variant = 2
	u.closure.v2 = c
	return u
}

// IntoClosureOneOf3Var3 places c in slot 3 of a ClosureOneOf3.
func IntoClosureOneOf3Var3[C1, C2, C3, In, Out any](c Closure[C3, In, Out]) ClosureOneOf3[C1, C2, C3, In, Out] {
	var u ClosureOneOf3[C1, C2, C3, In, Out]
	u.closure.variant = 3
	u.closure.v3 = c
	return u
}

// ClosureRefOneOf3 is a reference-returning closure over one of three capture types.
type ClosureRefOneOf3[C1, C2, C3, In, Out any] struct {
	closure OneOf3[ClosureRef[C1, In, Out], ClosureRef[C2, In, Out], ClosureRef[C3, In, Out]]
}

// Call dispatches to the closure in the populated slot.
func (c *ClosureRefOneOf3[C1, C2, C3, In, Out]) Call(in In) *Out {
	switch c.closure.variant {
	case 1:
		return c.closure.v1.Call(in)
	case 2:
		return c.closure.v2.Call(in)
	case 3:
		return c.closure.v3.Call(in)
	}
	emptyOneOf("ClosureRefOneOf3")
	return nil
}

// CapturedData returns a pointer to the captured data of the populated slot.
func (c *ClosureRefOneOf3[C1, C2, C3, In, Out]) CapturedData() OneOf3[*C1, *C2, *C3] {
	switch c.closure.variant {
	case 1:
		return OneOf3[*C1, *C2, *C3]{variant: 1, v1: c.closure.v1.CapturedData()}
	case 2:
		return OneOf3[*C1, *C2, *C3]{variant: 2, v2: c.closure.v2.CapturedData()}
	case 3:
		return OneOf3[*C1, *C2, *C3]{variant: 3, v3: c.closure.v3.CapturedData()}
	}
	emptyOneOf("ClosureRefOneOf3")
	return OneOf3[*C1, *C2, *C3]{}
}

// IntoCapturedData returns the captured data of the populated slot.
func (c ClosureRefOneOf3[C1, C2, C3, In, Out]) IntoCapturedData() OneOf3[C1, C2, C3] {
	switch c.closure.variant {
	case 1:
		return OneOf3[C1, C2, C3]{variant: 1, v1: c.closure.v1.IntoCapturedData()}
	case 2:
		return OneOf3[C1, C2, C3]{variant: 2, v2: c.closure.v2.IntoCapturedData()}
	case 3:
		return OneOf3[C1, C2, C3]{variant: 3, v3: c.closure.v3.IntoCapturedData()}
	}
	emptyOneOf("ClosureRefOneOf3")
	return OneOf3[C1, C2, C3]{}
}

// AsFn returns c.Call as a plain function.
func (c *ClosureRefOneOf3[C1, C2, C3, In, Out]) AsFn() func(In) *Out {
	return c.Call
}

// Variant returns the populated slot, from 1 to 3.
func (c ClosureRefOneOf3[C1, C2, C3, In, Out]) Variant() int {
	return c.closure.Variant()
}

// Clone returns a copy of c with the captured data of the populated slot
// cloned.
func (c ClosureRefOneOf3[C1, C2, C3, In, Out]) Clone() ClosureRefOneOf3[C1, C2, C3, In, Out] {
	switch c.closure.variant {
	case 1:
		c.closure.v1 = c.closure.v1.Clone()
	case 2:
		c.closure.v2 = c.closure.v2.Clone()
	case 3:
		c.closure.v3 = c.closure.v3.Clone()
	}
	return c
}

func (c ClosureRefOneOf3[C1, C2, C3, In, Out]) String() string {
	return fmt.Sprintf("ClosureRefOneOf3{%v}", c.closure)
}

// IntoClosureRefOneOf3Var1 places c in slot 1 of a ClosureRefOneOf3.
func IntoClosureRefOneOf3Var1[C2, C3, C1, In, Out any](c ClosureRef[C1, In, Out]) ClosureRefOneOf3[C1, C2, C3, In, Out] {
	var u ClosureRefOneOf3[C1, C2, C3, In, Out]
	u.closure.variant = 1
	u.closure.v1 = c
	return u
}

// IntoClosureRefOneOf3Var2 places c in slot 2 of a ClosureRefOneOf3.
func IntoClosureRefOneOf3Var2[C1, C3, C2, In, Out any](c ClosureRef[C2, In, Out]) ClosureRefOneOf3[C1, C2, C3, In, Out] {
	var u ClosureRefOneOf3[C1, C2, C3, In, Out]
	u.closure.variant = 2
	u.closure.v2 = c
	return u
}

// IntoClosureRefOneOf3Var3 places c in slot 3 of a ClosureRefOneOf3.
func IntoClosureRefOneOf3Var3[C1, C2, C3, In, Out any](c ClosureRef[C3, In, Out]) ClosureRefOneOf3[C1, C2, C3, In, Out] {
	var u ClosureRefOneOf3[C1, C2, C3, In, Out]
	u.closure.variant = 3
	u.closure.v3 = c
	return u
}

// ClosureOptRefOneOf3 is an optional-reference-returning closure over one of three capture types.
type ClosureOptRefOneOf3[C1, C2, C3, In, Out any] struct {
	closure OneOf3[ClosureOptRef[C1, In, Out], ClosureOptRef[C2, In, Out], ClosureOptRef[C3, In, Out]]
}

// Call dispatches to the closure in the populated slot.
func (c *ClosureOptRefOneOf3[C1, C2, C3, In, Out]) Call(in In) fn.Option[*Out] {
	switch c.closure.variant {
	case 1:
		return c.closure.v1.Call(in)
	case 2:
		return c.closure.v2.Call(in)
	case 3:
		return c.closure.v3.Call(in)
	}
	emptyOneOf("ClosureOptRefOneOf3")
	return fn.None[*Out]()
}

// CapturedData returns a pointer to the captured data of the populated slot.
func (c *ClosureOptRefOneOf3[C1, C2, C3, In, Out]) CapturedData() OneOf3[*C1, *C2, *C3] {
	switch c.closure.variant {
	case 1:
		return OneOf3[*C1, *C2, *C3]{variant: 1, v1: c.closure.v1.CapturedData()}
	case 2:
		return OneOf3[*C1, *C2, *C3]{variant: 2, v2: c.closure.v2.CapturedData()}
	case 3:
		return OneOf3[*C1, *C2, *C3]{variant: 3, v3: c.closure.v3.CapturedData()}
	}
	emptyOneOf("ClosureOptRefOneOf3")
	return OneOf3[*C1, *C2, *C3]{}
}

// IntoCapturedData returns the captured data of the populated slot.
func (c ClosureOptRefOneOf3[C1, C2, C3, In, Out]) IntoCapturedData() OneOf3[C1, C2, C3] {
	switch c.closure.variant {
	case 1:
		return OneOf3[C1, C2, C3]{variant: 1, v1: c.closure.v1.IntoCapturedData()}
	case 2:
		return OneOf3[C1, C2, C3]{variant: 2, v2: c.closure.v2.IntoCapturedData()}
	case 3:
		return OneOf3[C1, C2, C3]{variant: 3, v3: c.closure.v3.IntoCapturedData()}
	}
	emptyOneOf("ClosureOptRefOneOf3")
	return OneOf3[C1, C2, C3]{}
}

// AsFn returns c.Call as a plain function.
func (c *ClosureOptRefOneOf3[C1, C2, C3, In, Out]) AsFn() func(In) fn.Option[*Out] {
	return c.Call
}

// Variant returns the populated slot, from 1 to 3.
func (c ClosureOptRefOneOf3[C1, C2, C3, In, Out]) Variant() int {
	return c.closure.Variant()
}

// Clone returns a copy of c with the captured data of the populated slot
// cloned.
func (c ClosureOptRefOneOf3[C1, C2, C3, In, Out]) Clone() ClosureOptRefOneOf3[C1, C2, C3, In, Out] {
	switch c.closure.variant {
	case 1:
		c.closure.v1 = c.closure.v1.Clone()
	case 2:
		c.closure.v2 = c.closure.v2.Clone()
	case 3:
		c.closure.v3 = c.closure.v3.Clone()
	}
	return c
}

func (c ClosureOptRefOneOf3[C1, C2, C3, In, Out]) String() string {
	return fmt.Sprintf("ClosureOptRefOneOf3{%v}", c.closure)
}

// IntoClosureOptRefOneOf3Var1 places c in slot 1 of a ClosureOptRefOneOf3.
func IntoClosureOptRefOneOf3Var1[C2, C3, C1, In, Out any](c ClosureOptRef[C1, In, Out]) ClosureOptRefOneOf3[C1, C2, C3, In, Out] {
	var u ClosureOptRefOneOf3[C1, C2, C3, In, Out]
	u.closure.variant = 1
	u.closure.v1 = c
	return u
}

// IntoClosureOptRefOneOf3Var2 places c in slot 2 of a ClosureOptRefOneOf3.
func IntoClosureOptRefOneOf3Var2[C1, C3, C2, In, Out any](c ClosureOptRef[C2, In, Out]) ClosureOptRefOneOf3[C1, C2, C3, In, Out] {
	var u ClosureOptRefOneOf3[C1, C2, C3, In, Out]
	u.closure.variant = 2
	u.closure.v2 = c
	return u
}

// IntoClosureOptRefOneOf3Var3 places c in slot 3 of a ClosureOptRefOneOf3.
func IntoClosureOptRefOneOf3Var3[C1, C2, C3, In, Out any](c ClosureOptRef[C3, In, Out]) ClosureOptRefOneOf3[C1, C2, C3, In, Out] {
	var u ClosureOptRefOneOf3[C1, C2, C3, In, Out]
	u.closure.variant = 3
	u.closure.v3 = c
	return u
}

// ClosureResRefOneOf3 is a fallible-reference-returning closure over one of three capture types.
type ClosureResRefOneOf3[C1, C2, C3, In, Out any, E error] struct {
	closure OneOf3[ClosureResRef[C1, In, Out, E], ClosureResRef[C2, In, Out, E], ClosureResRef[C3, In, Out, E]]
}

// Call dispatches to the closure in the populated slot.
func (c *ClosureResRefOneOf3[C1, C2, C3, In, Out, E]) Call(in In) (*Out, E) {
	switch c.closure.variant {
	case 1:
		return c.closure.v1.Call(in)
	case 2:
		return c.closure.v2.Call(in)
	case 3:
		return c.closure.v3.Call(in)
	}
	emptyOneOf("ClosureResRefOneOf3")
	var zero E
	return nil, zero
}

// CapturedData returns a pointer to the captured data of the populated slot.
func (c *ClosureResRefOneOf3[C1, C2, C3, In, Out, E]) CapturedData() OneOf3[*C1, *C2, *C3] {
	switch c.closure.variant {
	case 1:
		return OneOf3[*C1, *C2, *C3]{variant: 1, v1: c.closure.v1.CapturedData()}
	case 2:
		return OneOf3[*C1, *C2, *C3]{variant: 2, v2: c.closure.v2.CapturedData()}
	case 3:
		return OneOf3[*C1, *C2, *C3]{variant: 3, v3: c.closure.v3.CapturedData()}
	}
	emptyOneOf("ClosureResRefOneOf3")
	return OneOf3[*C1, *C2, *C3]{}
}

// IntoCapturedData returns the captured data of the populated slot.
func (c ClosureResRefOneOf3[C1, C2, C3, In, Out, E]) IntoCapturedData() OneOf3[C1, C2, C3] {
	switch c.closure.variant {
	case 1:
		return OneOf3[C1, C2, C3]{variant: 1, v1: c.closure.v1.IntoCapturedData()}
	case 2:
		return OneOf3[C1, C2, C3]{variant: 2, v2: c.closure.v2.IntoCapturedData()}
	case 3:
		return OneOf3[C1, C2, C3]{variant: 3, v3: c.closure.v3.IntoCapturedData()}
	}
	emptyOneOf("ClosureResRefOneOf3")
	return OneOf3[C1, C2, C3]{}
}

// AsFn returns c.Call as a plain function.
func (c *ClosureResRefOneOf3[C1, C2, C3, In, Out, E]) AsFn() func(In) (*Out, E) {
	return c.Call
}

// Variant returns the populated slot, from 1 to 3.
func (c ClosureResRefOneOf3[C1, C2, C3, In, Out, E]) Variant() int {
	return c.closure.Variant()
}

// Clone returns a copy of c with the captured data of the populated slot
// cloned.
func (c ClosureResRefOneOf3[C1, C2, C3, In, Out, E]) Clone() ClosureResRefOneOf3[C1, C2, C3, In, Out, E] {
	switch c.closure.variant {
	case 1:
		c.closure.v1 = c.closure.v1.Clone()
	case 2:
		c.closure.v2 = c.closure.v2.Clone()
	case 3:
		c.closure.v3 = c.closure.v3.Clone()
	}
	return c
}

func (c ClosureResRefOneOf3[C1, C2, C3, In, Out, E]) String() string {
	return fmt.Sprintf("ClosureResRefOneOf3{%v}", c.closure)
}

// IntoClosureResRefOneOf3Var1 places c in slot 1 of a ClosureResRefOneOf3.
func IntoClosureResRefOneOf3Var1[C2, C3, C1, In, Out any, E error](c ClosureResRef[C1, In, Out, E]) ClosureResRefOneOf3[C1, C2, C3, In, Out, E] {
	var u ClosureResRefOneOf3[C1, C2, C3, In, Out, E]
	u.closure.variant = 1
	u.closure.v1 = c
	return u
}

// IntoClosureResRefOneOf3Var2 places c in slot 2 of a ClosureResRefOneOf3.
func IntoClosureResRefOneOf3Var2[C1, C3, C2, In, Out any, E error](c ClosureResRef[C2, In, Out, E]) ClosureResRefOneOf3[C1, C2, C3, In, Out, E] {
	var u ClosureResRefOneOf3[C1, C2, C3, In, Out, E]
	u.closure.variant = 2
	u.closure.v2 = c
	return u
}

// IntoClosureResRefOneOf3Var3 places c in slot 3 of a ClosureResRefOneOf3.
func IntoClosureResRefOneOf3Var3[C1, C2, C3, In, Out any, E error](c ClosureResRef[C3, In, Out, E]) ClosureResRefOneOf3[C1, C2, C3, In, Out, E] {
	var u ClosureResRefOneOf3[C1, C2, C3, In, Out, E]
	u.closure.variant = 3
	u.closure.v3 = c
	return u
}
