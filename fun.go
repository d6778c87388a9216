// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

import "github.com/lightningnetwork/lnd/fn/v2"

// Caller is the call contract of value-returning closures.
// Every [Closure] and ClosureOneOfN implements it through its pointer,
// and so does any plain func converted to [Func].
type Caller[In, Out any] interface {
	Call(in In) Out
}

// RefCaller is the call contract of closures returning a pointer
// into their own captured data.
type RefCaller[In, Out any] interface {
	Call(in In) *Out
}

// OptRefCaller is the call contract of closures returning an optional
// pointer into their own captured data.
type OptRefCaller[In, Out any] interface {
	Call(in In) fn.Option[*Out]
}

// ResRefCaller is the call contract of closures returning either a pointer
// into their own captured data or a caller-defined error.
type ResRefCaller[In, Out any, E error] interface {
	Call(in In) (*Out, E)
}

// Func adapts an ordinary function to [Caller].
// Capturing function literals are accepted; only closures built through
// [Capture] keep their captured data visible.
type Func[In, Out any] func(In) Out

// Call implements [Caller].
func (f Func[In, Out]) Call(in In) Out { return f(in) }

// FuncRef adapts an ordinary function to [RefCaller].
type FuncRef[In, Out any] func(In) *Out

// Call implements [RefCaller].
func (f FuncRef[In, Out]) Call(in In) *Out { return f(in) }

// FuncOptRef adapts an ordinary function to [OptRefCaller].
type FuncOptRef[In, Out any] func(In) fn.Option[*Out]

// Call implements [OptRefCaller].
func (f FuncOptRef[In, Out]) Call(in In) fn.Option[*Out] { return f(in) }

// FuncResRef adapts an ordinary function to [ResRefCaller].
type FuncResRef[In, Out any, E error] func(In) (*Out, E)

// Call implements [ResRefCaller].
func (f FuncResRef[In, Out, E]) Call(in In) (*Out, E) { return f(in) }

// FromCaller captures f itself and returns a closure forwarding to it.
// Union closures are callers through their pointers, so a union can be
// placed in a slot of another union; this is how closed sets wider than
// four are composed.
//
// In and Out cannot be inferred from the method set of F; pass them
// explicitly:
//
//	inner := closure.FromCaller[*closure.ClosureOneOf2[A, B, int, int], int, int](&u)
func FromCaller[F Caller[In, Out], In, Out any](f F) Closure[F, In, Out] {
	return Fun(Capture(f), callCaller[F, In, Out])
}

// FromRefCaller is [FromCaller] for the reference shape.
func FromRefCaller[F RefCaller[In, Out], In, Out any](f F) ClosureRef[F, In, Out] {
	return FunRef(Capture(f), callRefCaller[F, In, Out])
}

// FromOptRefCaller is [FromCaller] for the optional reference shape.
func FromOptRefCaller[F OptRefCaller[In, Out], In, Out any](f F) ClosureOptRef[F, In, Out] {
	return FunOptionRef(Capture(f), callOptRefCaller[F, In, Out])
}

// FromResRefCaller is [FromCaller] for the fallible reference shape.
func FromResRefCaller[F ResRefCaller[In, Out, E], In, Out any, E error](f F) ClosureResRef[F, In, Out, E] {
	return FunResultRef(Capture(f), callResRefCaller[F, In, Out, E])
}

// Named generic forwarders yield one static funcval per instantiation.

func callCaller[F Caller[In, Out], In, Out any](f *F, in In) Out { return (*f).Call(in) }

func callRefCaller[F RefCaller[In, Out], In, Out any](f *F, in In) *Out { return (*f).Call(in) }

func callOptRefCaller[F OptRefCaller[In, Out], In, Out any](f *F, in In) fn.Option[*Out] {
	return (*f).Call(in)
}

func callResRefCaller[F ResRefCaller[In, Out, E], In, Out any, E error](f *F, in In) (*Out, E) {
	return (*f).Call(in)
}
