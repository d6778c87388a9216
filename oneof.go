// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

import "fmt"

// OneOf2, OneOf3 and OneOf4 are closed sums: each value holds exactly one
// of its slot types, chosen at construction and never changed.
// Slots are numbered from 1. A OneOfN is comparable with == whenever all
// of its slot types are.
//
// The zero value holds no slot. Constructors never return it; matching on
// it panics.

// emptyOneOf panics for dispatch on a zero OneOfN.
// Kept out of line so that the dispatching methods stay inlineable.
//
//go:noinline
func emptyOneOf(name string) {
	panic("closure: empty " + name)
}

// OneOf2 holds either a T1 or a T2.
type OneOf2[T1, T2 any] struct {
	variant uint8
	v1      T1
	v2      T2
}

// OneOf2Var1 returns a OneOf2 holding v in slot 1.
// The types of the other slots are given explicitly: OneOf2Var1[T2](v).
func OneOf2Var1[T2, T1 any](v T1) OneOf2[T1, T2] {
	return OneOf2[T1, T2]{variant: 1, v1: v}
}

// OneOf2Var2 returns a OneOf2 holding v in slot 2.
func OneOf2Var2[T1, T2 any](v T2) OneOf2[T1, T2] {
	return OneOf2[T1, T2]{variant: 2, v2: v}
}

// Variant returns the populated slot, from 1 to 2, or 0 for the zero value.
func (o OneOf2[T1, T2]) Variant() int {
	return int(o.variant)
}

// Var1 returns the value in slot 1 and true, or zero and false.
func (o OneOf2[T1, T2]) Var1() (T1, bool) {
	if o.variant == 1 {
		return o.v1, true
	}
	var zero T1
	return zero, false
}

// Var2 returns the value in slot 2 and true, or zero and false.
func (o OneOf2[T1, T2]) Var2() (T2, bool) {
	if o.variant == 2 {
		return o.v2, true
	}
	var zero T2
	return zero, false
}

// RefOneOf2 returns a OneOf2 holding a pointer to the value in the
// populated slot of o. An empty o gives an empty result.
func RefOneOf2[T1, T2 any](o *OneOf2[T1, T2]) OneOf2[*T1, *T2] {
	switch o.variant {
	case 1:
		return OneOf2[*T1, *T2]{variant: 1, v1: &o.v1}
	case 2:
		return OneOf2[*T1, *T2]{variant: 2, v2: &o.v2}
	}
	return OneOf2[*T1, *T2]{}
}

// MatchOneOf2 calls the function matching the populated slot of o.
func MatchOneOf2[T1, T2, R any](o OneOf2[T1, T2], f1 func(T1) R, f2 func(T2) R) R {
	switch o.variant {
	case 1:
		return f1(o.v1)
	case 2:
		return f2(o.v2)
	}
	emptyOneOf("OneOf2")
	var zero R
	return zero
}

func (o OneOf2[T1, T2]) String() string {
	switch o.variant {
	case 1:
		return fmt.Sprintf("Variant1(%v)", o.v1)
	case 2:
		return fmt.Sprintf("Variant2(%v)", o.v2)
	}
	return "OneOf2{}"
}

// OneOf3 holds one of T1, T2 or T3.
type OneOf3[T1, T2, T3 any] struct {
	variant uint8
	v1      T1
	v2      T2
	v3      T3
}

// OneOf3Var1 returns a OneOf3 holding v in slot 1.
// The types of the other slots are given explicitly: OneOf3Var1[T2, T3](v).
func OneOf3Var1[T2, T3, T1 any](v T1) OneOf3[T1, T2, T3] {
	return OneOf3[T1, T2, T3]{variant: 1, v1: v}
}

// OneOf3Var2 returns a OneOf3 holding v in slot 2.
func OneOf3Var2[T1, T3, T2 any](v T2) OneOf3[T1, T2, T3] {
	return OneOf3[T1, T2, T3]{variant: 2, v2: v}
}

// OneOf3Var3 returns a OneOf3 holding v in slot 3.
func OneOf3Var3[T1, T2, T3 any](v T3) OneOf3[T1, T2, T3] {
	return OneOf3[T1, T2, T3]{variant: 3, v3: v}
}

// Variant returns the populated slot, from 1 to 3, or 0 for the zero value.
func (o OneOf3[T1, T2, T3]) Variant() int {
	return int(o.variant)
}

// Var1 returns the value in slot 1 and true, or zero and false.
func (o OneOf3[T1, T2, T3]) Var1() (T1, bool) {
	if o.variant == 1 {
		return o.v1, true
	}
	var zero T1
	return zero, false
}

// Var2 returns the value in slot 2 and true, or zero and false.
func (o OneOf3[T1, T2, T3]) Var2() (T2, bool) {
	if o.variant == 2 {
		return o.v2, true
	}
	var zero T2
	return zero, false
}

// Var3 returns the value in slot 3 and true, or zero and false.
func (o OneOf3[T1, T2, T3]) Var3() (T3, bool) {
	if o.variant == 3 {
		return o.v3, true
	}
	var zero T3
	return zero, false
}

// RefOneOf3 returns a OneOf3 holding a pointer to the value in the
// populated slot of o. An empty o gives an empty result.
func RefOneOf3[T1, T2, T3 any](o *OneOf3[T1, T2, T3]) OneOf3[*T1, *T2, *T3] {
	switch o.variant {
	case 1:
		return OneOf3[*T1, *T2, *T3]{variant: 1, v1: &o.v1}
	case 2:
		return OneOf3[*T1, *T2, *T3]{variant: 2, v2: &o.v2}
	case 3:
		return OneOf3[*T1, *T2, *T3]{variant: 3, v3: &o.v3}
	}
	return OneOf3[*T1, *T2, *T3]{}
}

// MatchOneOf3 calls the function matching the populated slot of o.
func MatchOneOf3[T1, T2, T3, R any](o OneOf3[T1, T2, T3], f1 func(T1) R, f2 func(T2) R, f3 func(T3) R) R {
	switch o.variant {
	case 1:
		return f1(o.v1)
	case 2:
		return f2(o.v2)
	case 3:
		return f3(o.v3)
	}
	emptyOneOf("OneOf3")
	var zero R
	return zero
}

func (o OneOf3[T1, T2, T3]) String() string {
	switch o.variant {
	case 1:
		return fmt.Sprintf("Variant1(%v)", o.v1)
	case 2:
		return fmt.Sprintf("Variant2(%v)", o.v2)
	case 3:
		return fmt.Sprintf("Variant3(%v)", o.v3)
	}
	return "OneOf3{}"
}

// OneOf4 holds one of T1, T2, T3 or T4.
type OneOf4[T1, T2, T3, T4 any] struct {
	variant uint8
	v1      T1
	v2      T2
	v3      T3
	v4      T4
}

// OneOf4Var1 returns a OneOf4 holding v in slot 1.
// The types of the other slots are given explicitly: OneOf4Var1[T2, T3, T4](v).
func OneOf4Var1[T2, T3, T4, T1 any](v T1) OneOf4[T1, T2, T3, T4] {
	return OneOf4[T1, T2, T3, T4]{variant: 1, v1: v}
}

// OneOf4Var2 returns a OneOf4 holding v in slot 2.
func OneOf4Var2[T1, T3, T4, T2 any](v T2) OneOf4[T1, T2, T3, T4] {
	return OneOf4[T1, T2, T3, T4]{variant: 2, v2: v}
}

// OneOf4Var3 returns a OneOf4 holding v in slot 3.
func OneOf4Var3[T1, T2, T4, T3 any](v T3) OneOf4[T1, T2, T3, T4] {
	return OneOf4[T1, T2, T3, T4]{variant: 3, v3: v}
}

// OneOf4Var4 returns a OneOf4 holding v in slot 4.
func OneOf4Var4[T1, T2, T3, T4 any](v T4) OneOf4[T1, T2, T3, T4] {
	return OneOf4[T1, T2, T3, T4]{variant: 4, v4: v}
}

// Variant returns the populated slot, from 1 to 4, or 0 for the zero value.
func (o OneOf4[T1, T2, T3, T4]) Variant() int {
	return int(o.variant)
}

// Var1 returns the value in slot 1 and true, or zero and false.
func (o OneOf4[T1, T2, T3, T4]) Var1() (T1, bool) {
	if o.variant == 1 {
		return o.v1, true
	}
	var zero T1
	return zero, false
}

// Var2 returns the value in slot 2 and true, or zero and false.
func (o OneOf4[T1, T2, T3, T4]) Var2() (T2, bool) {
	if o.variant == 2 {
		return o.v2, true
	}
	var zero T2
	return zero, false
}

// Var3 returns the value in slot 3 and true, or zero and false.
func (o OneOf4[T1, T2, T3, T4]) Var3() (T3, bool) {
	if o.variant == 3 {
		return o.v3, true
	}
	var zero T3
	return zero, false
}

// Var4 returns the value in slot 4 and true, or zero and false.
func (o OneOf4[T1, T2, T3, T4]) Var4() (T4, bool) {
	if o.variant == 4 {
		return o.v4, true
	}
	var zero T4
	return zero, false
}

// RefOneOf4 returns a OneOf4 holding a pointer to the value in the
// populated slot of o. An empty o gives an empty result.
func RefOneOf4[T1, T2, T3, T4 any](o *OneOf4[T1, T2, T3, T4]) OneOf4[*T1, *T2, *T3, *T4] {
	switch o.variant {
	case 1:
		return OneOf4[*T1, *T2, *T3, *T4]{variant: 1, v1: &o.v1}
	case 2:
		return OneOf4[*T1, *T2, *T3, *T4]{variant: 2, v2: &o.v2}
	case 3:
		return OneOf4[*T1, *T2, *T3, *T4]{variant: 3, v3: &o.v3}
	case 4:
		return OneOf4[*T1, *T2, *T3, *T4]{variant: 4, v4: &o.v4}
	}
	return OneOf4[*T1, *T2, *T3, *T4]{}
}

// MatchOneOf4 calls the function matching the populated slot of o.
func MatchOneOf4[T1, T2, T3, T4, R any](o OneOf4[T1, T2, T3, T4], f1 func(T1) R, f2 func(T2) R, f3 func(T3) R, f4 func(T4) R) R {
	switch o.variant {
	case 1:
		return f1(o.v1)
	case 2:
		return f2(o.v2)
	case 3:
		return f3(o.v3)
	case 4:
		return f4(o.v4)
	}
	emptyOneOf("OneOf4")
	var zero R
	return zero
}

func (o OneOf4[T1, T2, T3, T4]) String() string {
	switch o.variant {
	case 1:
		return fmt.Sprintf("Variant1(%v)", o.v1)
	case 2:
		return fmt.Sprintf("Variant2(%v)", o.v2)
	case 3:
		return fmt.Sprintf("Variant3(%v)", o.v3)
	case 4:
		return fmt.Sprintf("Variant4(%v)", o.v4)
	}
	return "OneOf4{}"
}
