// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package closure provides functions with explicitly captured data as
// plain, nameable, sized values.
//
// A Go func literal hides what it captures: its type only says func(In) Out,
// and a struct holding one either fixes that type or needs a type parameter
// for it. A closure from this package is split in two visible halves: the
// captured data, of a type named by the caller, and a non-capturing function
// that takes a pointer to that data plus an input.
//
//	seq := []int{0, 1, 2, 3, 4}
//	double := closure.Fun(closure.Capture(seq), func(s *[]int, i int) int {
//		return (*s)[i] * 2
//	})
//	double.Call(3)                     // 6
//	len(double.IntoCapturedData())     // 5
//
// # Design Philosophy
//
// closure provides:
//   - Closure types whose full type, including captured data, can be written down
//   - Data and function kept apart, so equality, cloning and printing follow the data
//   - Allocation-free dispatch, including for closed sets of capture types
//
// The function half must not capture variables of its own and must treat the
// data it is given as read-only. The compiler cannot check this; the pair
// {data, function} is expected to describe the whole computation.
//
// # Output Shapes
//
// Four closure types differ only in what Call returns:
//
//   - [Closure]: Call(In) Out
//   - [ClosureRef]: Call(In) *Out, a pointer into the captured data
//   - [ClosureOptRef]: Call(In) fn.Option[*Out]
//   - [ClosureResRef]: Call(In) (*Out, E), E chosen by the caller
//
// Each is built from [Capture] with the matching constructor:
//
//   - [Fun], [FunRef], [FunOptionRef], [FunResultRef]
//
// and offers the same operations:
//
//   - Call: apply the function to the captured data
//   - CapturedData: pointer to the captured data
//   - IntoCapturedData: the captured data itself
//   - AsFn: the closure as a plain func, for code generic over funcs
//   - Clone: copy, cloning the data through [Cloner] if implemented
//   - String, GoString: print the captured data only
//
// [Equal] and [EqualFunc] compare closures by their captured data.
//
// # Call Contracts
//
// [Caller], [RefCaller], [OptRefCaller] and [ResRefCaller] let code accept any
// closure of a given shape regardless of its captured data type.
// [Func], [FuncRef], [FuncOptRef] and [FuncResRef] turn an ordinary func into
// the matching caller.
//
// # Closed Sets of Captures
//
// When a value may hold one of a few differently captured closures, for
// example a lookup over one of several storage layouts, a union closure
// keeps a single named type without boxing:
//
//   - [ClosureOneOf2], [ClosureOneOf3], [ClosureOneOf4]
//   - [ClosureRefOneOf2], [ClosureRefOneOf3], [ClosureRefOneOf4]
//   - [ClosureOptRefOneOf2], [ClosureOptRefOneOf3], [ClosureOptRefOneOf4]
//   - [ClosureResRefOneOf2], [ClosureResRefOneOf3], [ClosureResRefOneOf4]
//
// A union closure is built only by promoting a base closure into one slot,
// e.g. [IntoClosureOneOf2Var1] or [IntoClosureOptRefOneOf4Var3]. The types
// of the other slots are passed as explicit type arguments.
//
//	type Provider = closure.ClosureOneOf2[Jagged, Uniform, Edge, int]
//
//	func NewProvider(rows Jagged) Provider {
//		if len(rows) == 0 {
//			c := closure.Fun(closure.Capture(Uniform{}), uniformWeight)
//			return closure.IntoClosureOneOf2Var2[Jagged](c)
//		}
//		c := closure.Fun(closure.Capture(rows), jaggedWeight)
//		return closure.IntoClosureOneOf2Var1[Uniform](c)
//	}
//
// Call, CapturedData, IntoCapturedData and AsFn dispatch to the populated
// slot. Captured data comes back as a [OneOf2], [OneOf3] or [OneOf4].
//
// Sets wider than four are composed: [FromCaller] and its siblings capture a
// union closure inside a base closure, which can then fill a slot of
// another union.
//
// # Tagged Unions
//
// [OneOf2], [OneOf3] and [OneOf4] are the closed sums underneath:
//
//   - OneOfNVarK: construct holding slot K
//   - Variant, VarK: inspect
//   - [RefOneOf2], [RefOneOf3], [RefOneOf4]: pointer view of the held value
//   - [MatchOneOf2], [MatchOneOf3], [MatchOneOf4]: exhaustive dispatch
package closure
