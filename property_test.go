// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/closure"
	"github.com/lightningnetwork/lnd/fn/v2"
)

const propertyN = 1000

// randInts returns a random slice of length [1, 16] with values in [-1000, 1000].
func randInts(rng *rand.Rand) []int {
	s := make([]int, rng.IntN(16)+1)
	for i := range s {
		s[i] = rng.IntN(2001) - 1000
	}
	return s
}

func at(s *[]int, i int) int { return (*s)[i%len(*s)] }

func atRef(s *[]int, i int) *int { return &(*s)[i%len(*s)] }

func atOpt(s *[]int, i int) fn.Option[*int] {
	if i >= len(*s) {
		return fn.None[*int]()
	}
	return fn.Some(&(*s)[i])
}

func atRes(s *[]int, i int) (*int, error) {
	if i >= len(*s) {
		return nil, errNoEdge
	}
	return &(*s)[i], nil
}

// sum is a second capture type for the union properties.
type sum struct{ offset int }

func sumAt(s *sum, i int) int { return s.offset + i }

// --- Group 1: Captured Data ---

// TestPropertyRoundTrip: IntoCapturedData(Fun*(Capture(d), f)) ≡ d
func TestPropertyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		d := randInts(rng)
		a := closure.Fun(closure.Capture(d), at).IntoCapturedData()
		b := closure.FunRef(closure.Capture(d), atRef).IntoCapturedData()
		c := closure.FunOptionRef(closure.Capture(d), atOpt).IntoCapturedData()
		e := closure.FunResultRef(closure.Capture(d), atRes).IntoCapturedData()
		for _, got := range [][]int{a, b, c, e} {
			if !slices.Equal(got, d) {
				t.Fatalf("round trip: %v != %v", got, d)
			}
		}
	}
}

// TestPropertyCallIdempotent: Call(i) ≡ Call(i), and the data is unchanged
func TestPropertyCallIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		d := randInts(rng)
		before := slices.Clone(d)
		c := closure.Fun(closure.Capture(d), at)
		r := closure.FunRef(closure.Capture(d), atRef)
		i := rng.IntN(32)
		if c.Call(i) != c.Call(i) {
			t.Fatalf("Closure.Call not idempotent (i=%d)", i)
		}
		if r.Call(i) != r.Call(i) {
			t.Fatalf("ClosureRef.Call returned different pointers (i=%d)", i)
		}
		if !slices.Equal(d, before) {
			t.Fatalf("call changed captured data: %v != %v", d, before)
		}
	}
}

// TestPropertyCloneIsolation: writes to the original do not reach a clone
func TestPropertyCloneIsolation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		d := ints(randInts(rng))
		c := closure.Fun(closure.Capture(d), func(s *ints, i int) int { return (*s)[i] })
		cloned := c.Clone()
		i := rng.IntN(len(d))
		want := cloned.Call(i)
		(*c.CapturedData())[i] = want + 1
		if got := cloned.Call(i); got != want {
			t.Fatalf("clone observed write: %d != %d", got, want)
		}
	}
}

// --- Group 2: Union Dispatch ---

// TestPropertyUnionDispatch: IntoClosureOneOfNVarK(c).Call(i) ≡ c.Call(i)
func TestPropertyUnionDispatch(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		c := closure.Fun(closure.Capture(randInts(rng)), at)
		s := closure.Fun(closure.Capture(sum{offset: rng.IntN(100)}), sumAt)
		i := rng.IntN(64)

		u2 := closure.IntoClosureOneOf2Var2[sum](c)
		u3 := closure.IntoClosureOneOf3Var3[sum, sum](c)
		u4 := closure.IntoClosureOneOf4Var1[sum, sum, sum](c)
		want := c.Call(i)
		for _, got := range []int{u2.Call(i), u3.Call(i), u4.Call(i)} {
			if got != want {
				t.Fatalf("union dispatch: %d != %d (i=%d)", got, want, i)
			}
		}

		v2 := closure.IntoClosureOneOf2Var1[[]int](s)
		v3 := closure.IntoClosureOneOf3Var2[[]int, []int](s)
		v4 := closure.IntoClosureOneOf4Var4[[]int, []int, []int](s)
		want = s.Call(i)
		for _, got := range []int{v2.Call(i), v3.Call(i), v4.Call(i)} {
			if got != want {
				t.Fatalf("union dispatch: %d != %d (i=%d)", got, want, i)
			}
		}
	}
}

// TestPropertyUnionDispatchRef: reference shapes resolve to the same values
func TestPropertyUnionDispatchRef(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		d := randInts(rng)
		i := rng.IntN(32)

		o := closure.FunOptionRef(closure.Capture(d), atOpt)
		uo := closure.IntoClosureOptRefOneOf3Var2[sum, sum](o)
		if want, got := o.Call(i), uo.Call(i); want.IsSome() != got.IsSome() {
			t.Fatalf("opt dispatch presence differs (i=%d)", i)
		} else if want.IsSome() && *want.UnwrapOr(nil) != *got.UnwrapOr(nil) {
			t.Fatalf("opt dispatch value differs (i=%d)", i)
		}

		r := closure.FunResultRef(closure.Capture(d), atRes)
		ur := closure.IntoClosureResRefOneOf4Var2[sum, sum, sum](r)
		wp, werr := r.Call(i)
		gp, gerr := ur.Call(i)
		if werr != gerr {
			t.Fatalf("res dispatch error differs: %v != %v (i=%d)", werr, gerr, i)
		}
		if werr == nil && *wp != *gp {
			t.Fatalf("res dispatch value differs: %d != %d (i=%d)", *wp, *gp, i)
		}
	}
}
