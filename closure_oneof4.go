// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

import (
	"fmt"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// ClosureOneOf4 is a value-returning closure over one of four capture types.
//
// The populated slot is fixed when the closure is built with one of the
// IntoClosureOneOf4VarK promotions; there is no empty or later-filled state.
// The zero value holds no closure: Call, CapturedData and IntoCapturedData
// panic on it.
// Call dispatches to the populated slot without allocation or interface
// calls, so a ClosureOneOf4 can stand in for a heap-allocated func in a struct
// field while still accepting four different kinds of captured data.
type ClosureOneOf4[C1, C2, C3, C4, In, Out any] struct {
	closure OneOf4[Closure[C1, In, Out], Closure[C2, In, Out], Closure[C3, In, Out], Closure[C4, In, Out]]
}

// Call dispatches to the closure in the populated slot.
func (c *ClosureOneOf4[C1, C2, C3, C4, In, Out]) Call(in In) Out {
	switch c.closure.variant {
	case 1:
		return c.closure.v1.Call(in)
	case 2:
		return c.closure.v2.Call(in)
	case 3:
		return c.closure.v3.Call(in)
	case 4:
		return c.closure.v4.Call(in)
	}
	emptyOneOf("ClosureOneOf4")
	var zero Out
	return zero
}

// CapturedData returns a pointer to the captured data of the populated slot.
func (c *ClosureOneOf4[C1, C2, C3, C4, In, Out]) CapturedData() OneOf4[*C1, *C2, *C3, *C4] {
	switch c.closure.variant {
	case 1:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 1, v1: c.closure.v1.CapturedData()}
	case 2:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 2, v2: c.closure.v2.CapturedData()}
	case 3:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 3, v3: c.closure.v3.CapturedData()}
	case 4:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 4, v4: c.closure.v4.CapturedData()}
	}
	emptyOneOf("ClosureOneOf4")
	return OneOf4[*C1, *C2, *C3, *C4]{}
}

// IntoCapturedData returns the captured data of the populated slot.
func (c ClosureOneOf4[C1, C2, C3, C4, In, Out]) IntoCapturedData() OneOf4[C1, C2, C3, C4] {
	switch c.closure.variant {
	case 1:
		return OneOf4[C1, C2, C3, C4]{variant: 1, v1: c.closure.v1.IntoCapturedData()}
	case 2:
		return OneOf4[C1, C2, C3, C4]{variant: 2, v2: c.closure.v2.IntoCapturedData()}
	case 3:
		return OneOf4[C1, C2, C3, C4]{variant: 3, v3: c.closure.v3.IntoCapturedData()}
	case 4:
		return OneOf4[C1, C2, C3, C4]{variant: 4, v4: c.closure.v4.IntoCapturedData()}
	}
	emptyOneOf("ClosureOneOf4")
	return OneOf4[C1, C2, C3, C4]{}
}

// AsFn returns c.Call as a plain function.
func (c *ClosureOneOf4[C1, C2, C3, C4, In, Out]) AsFn() func(In) Out {
	return c.Call
}

// Variant returns the populated slot, from 1 to 4.
func (c ClosureOneOf4[C1, C2, C3, C4, In, Out]) Variant() int {
	return c.closure.Variant()
}

// Clone returns a copy of c with the captured data of the populated slot
// cloned.
func (c ClosureOneOf4[C1, C2, C3, C4, In, Out]) Clone() ClosureOneOf4[C1, C2, C3, C4, In, Out] {
	switch c.closure.variant {
	case 1:
		c.closure.v1 = c.closure.v1.Clone()
	case 2:
		c.closure.v2 = c.closure.v2.Clone()
	case 3:
		c.closure.v3 = c.closure.v3.Clone()
	case 4:
		c.closure.v4 = c.closure.v4.Clone()
	}
	return c
}

func (c ClosureOneOf4[C1, C2, C3, C4, In, Out]) String() string {
	return fmt.Sprintf("ClosureOneOf4{%v}", c.closure)
}

// IntoClosureOneOf4Var1 places c in slot 1 of a ClosureOneOf4.
// The capture types of the other slots cannot be inferred and are given
// explicitly: IntoClosureOneOf4Var1[C2, C3, C4](c).
func IntoClosureOneOf4Var1[C2, C3, C4, C1, In, Out any](c Closure[C1, In, Out]) ClosureOneOf4[C1, C2, C3, C4, In, Out] {
	var u ClosureOneOf4[C1, C2, C3, C4, In, Out]
	u.closure.variant = 1
	u.closure.v1 = c
	return u
}

// IntoClosureOneOf4Var2 places c in slot 2 of a ClosureOneOf4.
func IntoClosureOneOf4Var2[C1, C3, C4, C2, In, Out any](c Closure[C2, In, Out]) ClosureOneOf4[C1, C2, C3, C4, In, Out] {
	var u ClosureOneOf4[C1, C2, C3, C4, In, Out]
	u.closure.variant = 2
	u.closure.v2 = c
	return u
}

// IntoClosureOneOf4Var3 places c in slot 3 of a ClosureOneOf4.
func IntoClosureOneOf4Var3[C1, C2, C4, C3, In, Out any](c Closure[C3, In, Out]) ClosureOneOf4[C1, C2, C3, C4, In, Out] {
	var u ClosureOneOf4[C1, C2, C3, C4, In, Out]
	u.closure.variant = 3
	u.closure.v3 = c
	return u
}

// IntoClosureOneOf4Var4 places c in slot 4 of a ClosureOneOf4.
func IntoClosureOneOf4Var4[C1, C2, C3, C4, In, Out any](c Closure[C4, In, Out]) ClosureOneOf4[C1, C2, C3, C4, In, Out] {
	var u ClosureOneOf4[C1, C2, C3, C4, In, Out]
	u.closure.variant = 4
	u.closure.v4 = c
	return u
}

// ClosureRefOneOf4 is a reference-returning closure over one of four capture types.
type ClosureRefOneOf4[C1, C2, C3, C4, In, Out any] struct {
	closure OneOf4[ClosureRef[C1, In, Out], ClosureRef[C2, In, Out], ClosureRef[C3, In, Out], ClosureRef[C4, In, Out]]
}

// Call dispatches to the closure in the populated slot.
func (c *ClosureRefOneOf4[C1, C2, C3, C4, In, Out]) Call(in In) *Out {
	switch c.closure.variant {
	case 1:
		return c.closure.v1.Call(in)
	case 2:
		return c.closure.v2.Call(in)
	case 3:
		return c.closure.v3.Call(in)
	case 4:
		return c.closure.v4.Call(in)
	}
	emptyOneOf("ClosureRefOneOf4")
	return nil
}

// CapturedData returns a pointer to the captured data of the populated slot.
func (c *ClosureRefOneOf4[C1, C2, C3, C4, In, Out]) CapturedData() OneOf4[*C1, *C2, *C3, *C4] {
	switch c.closure.variant {
	case 1:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 1, v1: c.closure.v1.CapturedData()}
	case 2:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 2, v2: c.closure.v2.CapturedData()}
	case 3:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 3, v3: c.closure.v3.CapturedData()}
	case 4:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 4, v4: c.closure.v4.CapturedData()}
	}
	emptyOneOf("ClosureRefOneOf4")
	return OneOf4[*C1, *C2, *C3, *C4]{}
}

// IntoCapturedData returns the captured data of the populated slot.
func (c ClosureRefOneOf4[C1, C2, C3, C4, In, Out]) IntoCapturedData() OneOf4[C1, C2, C3, C4] {
	switch c.closure.variant {
	case 1:
		return OneOf4[C1, C2, C3, C4]{variant: 1, v1: c.closure.v1.IntoCapturedData()}
	case 2:
		return OneOf4[C1, C2, C3, C4]{variant: 2, v2: c.closure.v2.IntoCapturedData()}
	case 3:
		return OneOf4[C1, C2, C3, C4]{variant: 3, v3: c.closure.v3.IntoCapturedData()}
	case 4:
		return OneOf4[C1, C2, C3, C4]{variant: 4, v4: c.closure.v4.IntoCapturedData()}
	}
	emptyOneOf("ClosureRefOneOf4")
	return OneOf4[C1, C2, C3, C4]{}
}

// AsFn returns c.Call as a plain function.
func (c *ClosureRefOneOf4[C1, C2, C3, C4, In, Out]) AsFn() func(In) *Out {
	return c.Call
}

// Variant returns the populated slot, from 1 to 4.
func (c ClosureRefOneOf4[C1, C2, C3, C4, In, Out]) Variant() int {
	return c.closure.Variant()
}

// Clone returns a copy of c with the captured data of the populated slot
// cloned.
func (c ClosureRefOneOf4[C1, C2, C3, C4, In, Out]) Clone() ClosureRefOneOf4[C1, C2, C3, C4, In, Out] {
	switch c.closure.variant {
	case 1:
		c.closure.v1 = c.closure.v1.Clone()
	case 2:
		c.closure.v2 = c.closure.v2.Clone()
	case 3:
		c.closure.v3 = c.closure.v3.Clone()
	case 4:
		c.closure.v4 = c.closure.v4.Clone()
	}
	return c
}

func (c ClosureRefOneOf4[C1, C2, C3, C4, In, Out]) String() string {
	return fmt.Sprintf("ClosureRefOneOf4{%v}", c.closure)
}

// IntoClosureRefOneOf4Var1 places c in slot 1 of a ClosureRefOneOf4.
func IntoClosureRefOneOf4Var1[C2, C3, C4, C1, In, Out any](c ClosureRef[C1, In, Out]) ClosureRefOneOf4[C1, C2, C3, C4, In, Out] {
	var u ClosureRefOneOf4[C1, C2, C3, C4, In, Out]
	u.closure.variant = 1
	u.closure.v1 = c
	return u
}

// IntoClosureRefOneOf4Var2 places c in slot 2 of a ClosureRefOneOf4.
func IntoClosureRefOneOf4Var2[C1, C3, C4, C2, In, Out any](c ClosureRef[C2, In, Out]) ClosureRefOneOf4[C1, C2, C3, C4, In, Out] {
	var u ClosureRefOneOf4[C1, C2, C3, C4, In, Out]
	u.closure.variant = 2
	u.closure.v2 = c
	return u
}

// IntoClosureRefOneOf4Var3 places c in slot 3 of a ClosureRefOneOf4.
func IntoClosureRefOneOf4Var3[C1, C2, C4, C3, In, Out any](c ClosureRef[C3, In, Out]) ClosureRefOneOf4[C1, C2, C3, C4, In, Out] {
	var u ClosureRefOneOf4[C1, C2, C3, C4, In, Out]
	u.closure.variant = 3
	u.closure.v3 = c
	return u
}

// IntoClosureRefOneOf4Var4 places c in slot 4 of a ClosureRefOneOf4.
func IntoClosureRefOneOf4Var4[C1, C2, C3, C4, In, Out any](c ClosureRef[C4, In, Out]) ClosureRefOneOf4[C1, C2, C3, C4, In, Out] {
	var u ClosureRefOneOf4[C1, C2, C3, C4, In, Out]
	u.closure.variant = 4
	u.closure.v4 = c
	return u
}

// ClosureOptRefOneOf4 is an optional-reference-returning closure over one of four capture types.
type ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out any] struct {
	closure OneOf4[ClosureOptRef[C1, In, Out], ClosureOptRef[C2, In, Out], ClosureOptRef[C3, In, Out], ClosureOptRef[C4, In, Out]]
}

// Call dispatches to the closure in the populated slot.
func (c *ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out]) Call(in In) fn.Option[*Out] {
	switch c.closure.variant {
	case 1:
		return c.closure.v1.Call(in)
	case 2:
		return c.closure.v2.Call(in)
	case 3:
		return c.closure.v3.Call(in)
	case 4:
		return c.closure.v4.Call(in)
	}
	emptyOneOf("ClosureOptRefOneOf4")
	return fn.None[*Out]()
}

// CapturedData returns a pointer to the captured data of the populated slot.
func (c *ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out]) CapturedData() OneOf4[*C1, *C2, *C3, *C4] {
	switch c.closure.variant {
	case 1:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 1, v1: c.closure.v1.CapturedData()}
	case 2:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 2, v2: c.closure.v2.CapturedData()}
	case 3:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 3, v3: c.closure.v3.CapturedData()}
	case 4:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 4, v4: c.closure.v4.CapturedData()}
	}
	emptyOneOf("ClosureOptRefOneOf4")
	return OneOf4[*C1, *C2, *C3, *C4]{}
}

// IntoCapturedData returns the captured data of the populated slot.
func (c ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out]) IntoCapturedData() OneOf4[C1, C2, C3, C4] {
	switch c.closure.variant {
	case 1:
		return OneOf4[C1, C2, C3, C4]{variant: 1, v1: c.closure.v1.IntoCapturedData()}
	case 2:
		return OneOf4[C1, C2, C3, C4]{variant: 2, v2: c.closure.v2.IntoCapturedData()}
	case 3:
		return OneOf4[C1, C2, C3, C4]{variant: 3, v3: c.closure.v3.IntoCapturedData()}
	case 4:
		return OneOf4[C1, C2, C3, C4]{variant: 4, v4: c.closure.v4.IntoCapturedData()}
	}
	emptyOneOf("ClosureOptRefOneOf4")
	return OneOf4[C1, C2, C3, C4]{}
}

// AsFn returns c.Call as a plain function.
func (c *ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out]) AsFn() func(In) fn.Option[*Out] {
	return c.Call
}

// Variant returns the populated slot, from 1 to 4.
func (c ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out]) Variant() int {
	return c.closure.Variant()
}

// Clone returns a copy of c with the captured data of the populated slot
// cloned.
func (c ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out]) Clone() ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out] {
	switch c.closure.variant {
	case 1:
		c.closure.v1 = c.closure.v1.Clone()
	case 2:
		c.closure.v2 = c.closure.v2.Clone()
	case 3:
		c.closure.v3 = c.closure.v3.Clone()
	case 4:
		c.closure.v4 = c.closure.v4.Clone()
	}
	return c
}

func (c ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out]) String() string {
	return fmt.Sprintf("ClosureOptRefOneOf4{%v}", c.closure)
}

// IntoClosureOptRefOneOf4Var1 places c in slot 1 of a ClosureOptRefOneOf4.
func IntoClosureOptRefOneOf4Var1[C2, C3, C4, C1, In, Out any](c ClosureOptRef[C1, In, Out]) ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out] {
	var u ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out]
	u.closure.variant = 1
	u.closure.v1 = c
	return u
}

// IntoClosureOptRefOneOf4Var2 places c in slot 2 of a ClosureOptRefOneOf4.
func IntoClosureOptRefOneOf4Var2[C1, C3, C4, C2, In, Out any](c ClosureOptRef[C2, In, Out]) ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out] {
	var u ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out]
	u.closure.variant = 2
	u.closure.v2 = c
	return u
}

// IntoClosureOptRefOneOf4Var3 places c in slot 3 of a ClosureOptRefOneOf4.
func IntoClosureOptRefOneOf4Var3[C1, C2, C4, C3, In, Out any](c ClosureOptRef[C3, In, Out]) ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out] {
	var u ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out]
	u.closure.variant = 3
	u.closure.v3 = c
	return u
}

// IntoClosureOptRefOneOf4Var4 places c in slot 4 of a ClosureOptRefOneOf4.
func IntoClosureOptRefOneOf4Var4[C1, C2, C3, C4, In, Out any](c ClosureOptRef[C4, In, Out]) ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out] {
	var u ClosureOptRefOneOf4[C1, C2, C3, C4, In, Out]
	u.closure.variant = 4
	u.closure.v4 = c
	return u
}

// ClosureResRefOneOf4 is a fallible-reference-returning closure over one of four capture types.
type ClosureResRefOneOf4[C1, C2, C3, C4, In, Out any, E error] struct {
	closure OneOf4[ClosureResRef[C1, In, Out, E], ClosureResRef[C2, In, Out, E], ClosureResRef[C3, In, Out, E], ClosureResRef[C4, In, Out, E]]
}

// Call dispatches to the closure in the populated slot.
func (c *ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E]) Call(in In) (*Out, E) {
	switch c.closure.variant {
	case 1:
		return c.closure.v1.Call(in)
	case 2:
		return c.closure.v2.Call(in)
	case 3:
		return c.closure.v3.Call(in)
	case 4:
		return c.closure.v4.Call(in)
	}
	emptyOneOf("ClosureResRefOneOf4")
	var zero E
	return nil, zero
}

// CapturedData returns a pointer to the captured data of the populated slot.
func (c *ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E]) CapturedData() OneOf4[*C1, *C2, *C3, *C4] {
	switch c.closure.variant {
	case 1:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 1, v1: c.closure.v1.CapturedData()}
	case 2:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 2, v2: c.closure.v2.CapturedData()}
	case 3:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 3, v3: c.closure.v3.CapturedData()}
	case 4:
		return OneOf4[*C1, *C2, *C3, *C4]{variant: 4, v4: c.closure.v4.CapturedData()}
	}
	emptyOneOf("ClosureResRefOneOf4")
	return OneOf4[*C1, *C2, *C3, *C4]{}
}

// IntoCapturedData returns the captured data of the populated slot.
func (c ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E]) IntoCapturedData() OneOf4[C1, C2, C3, C4] {
	switch c.closure.variant {
	case 1:
		return OneOf4[C1, C2, C3, C4]{variant: 1, v1: c.closure.v1.IntoCapturedData()}
	case 2:
		return OneOf4[C1, C2, C3, C4]{variant: 2, v2: c.closure.v2.IntoCapturedData()}
	case 3:
		return OneOf4[C1, C2, C3, C4]{variant: 3, v3: c.closure.v3.IntoCapturedData()}
	case 4:
		return OneOf4[C1, C2, C3, C4]{variant: 4, v4: c.closure.v4.IntoCapturedData()}
	}
	emptyOneOf("ClosureResRefOneOf4")
	return OneOf4[C1, C2, C3, C4]{}
}

// AsFn returns c.Call as a plain function.
func (c *ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E]) AsFn() func(In) (*Out, E) {
	return c.Call
}

// Variant returns the populated slot, from 1 to 4.
func (c ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E]) Variant() int {
	return c.closure.Variant()
}

// Clone returns a copy of c with the captured data of the populated slot
// cloned.
func (c ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E]) Clone() ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E] {
	switch c.closure.variant {
	case 1:
		c.closure.v1 = c.closure.v1.Clone()
	case 2:
		c.closure.v2 = c.closure.v2.Clone()
	case 3:
		c.closure.v3 = c.closure.v3.Clone()
	case 4:
		c.closure.v4 = c.closure.v4.Clone()
	}
	return c
}

func (c ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E]) String() string {
	return fmt.Sprintf("ClosureResRefOneOf4{%v}", c.closure)
}

// IntoClosureResRefOneOf4Var1 places c in slot 1 of a ClosureResRefOneOf4.
func IntoClosureResRefOneOf4Var1[C2, C3, C4, C1, In, Out any, E error](c ClosureResRef[C1, In, Out, E]) ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E] {
	var u ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E]
	u.closure.variant = 1
	u.closure.v1 = c
	return u
}

// IntoClosureResRefOneOf4Var2 places c in slot 2 of a ClosureResRefOneOf4.
func IntoClosureResRefOneOf4Var2[C1, C3, C4, C2, In, Out any, E error](c ClosureResRef[C2, In, Out, E]) ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E] {
	var u ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E]
	u.closure.variant = 2
	u.closure.v2 = c
	return u
}

// IntoClosureResRefOneOf4Var3 places c in slot 3 of a ClosureResRefOneOf4.
func IntoClosureResRefOneOf4Var3[C1, C2, C4, C3, In, Out any, E error](c ClosureResRef[C3, In, Out, E]) ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E] {
	var u ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E]
	u.closure.variant = 3
	u.closure.v3 = c
	return u
}

// IntoClosureResRefOneOf4Var4 places c in slot 4 of a ClosureResRefOneOf4.
func IntoClosureResRefOneOf4Var4[C1, C2, C3, C4, In, Out any, E error](c ClosureResRef[C4, In, Out, E]) ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E] {
	var u ClosureResRefOneOf4[C1, C2, C3, C4, In, Out, E]
	u.closure.variant = 4
	u.closure.v4 = c
	return u
}
