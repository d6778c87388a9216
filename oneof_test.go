// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure_test

import (
	"fmt"
	"strconv"
	"testing"

	"code.hybscloud.com/closure"
	"github.com/stretchr/testify/require"
)

func TestOneOf2(t *testing.T) {
	a := closure.OneOf2Var1[string](42)
	b := closure.OneOf2Var2[int]("x")

	require.Equal(t, 1, a.Variant())
	require.Equal(t, 2, b.Variant())

	v, ok := a.Var1()
	require.True(t, ok)
	require.Equal(t, 42, v)
	_, ok = a.Var2()
	require.False(t, ok)

	s, ok := b.Var2()
	require.True(t, ok)
	require.Equal(t, "x", s)
	_, ok = b.Var1()
	require.False(t, ok)
}

func TestOneOfEquality(t *testing.T) {
	require.True(t, closure.OneOf2Var1[string](1) == closure.OneOf2Var1[string](1))
	require.False(t, closure.OneOf2Var1[string](1) == closure.OneOf2Var1[string](2))
	require.False(t, closure.OneOf2Var1[int](0) == closure.OneOf2Var2[int](0))
	require.True(t, closure.OneOf4Var3[int, int, int](0) == closure.OneOf4Var3[int, int, int](0))
	require.False(t, closure.OneOf4Var3[int, int, int](0) == closure.OneOf4Var4[int, int, int](0))
}

func TestMatchOneOf3(t *testing.T) {
	show := func(o closure.OneOf3[int, string, bool]) string {
		return closure.MatchOneOf3(o,
			strconv.Itoa,
			func(s string) string { return s },
			strconv.FormatBool,
		)
	}

	require.Equal(t, "7", show(closure.OneOf3Var1[string, bool](7)))
	require.Equal(t, "seven", show(closure.OneOf3Var2[int, bool]("seven")))
	require.Equal(t, "true", show(closure.OneOf3Var3[int, string](true)))
}

func TestMatchOneOf4(t *testing.T) {
	o := closure.OneOf4Var4[int, int, int](9)
	got := closure.MatchOneOf4(o,
		func(int) int { return 1 },
		func(int) int { return 2 },
		func(int) int { return 3 },
		func(x int) int { return x * 10 },
	)
	require.Equal(t, 90, got)
}

func TestOneOfRef(t *testing.T) {
	o := closure.OneOf3Var2[int, int]("a")
	r := closure.RefOneOf3(&o)

	require.Equal(t, 2, r.Variant())
	p, ok := r.Var2()
	require.True(t, ok)
	*p = "b"

	v, _ := o.Var2()
	require.Equal(t, "b", v)

	o2 := closure.OneOf2Var1[string](1)
	p1, ok := closure.RefOneOf2(&o2).Var1()
	require.True(t, ok)
	*p1 = 2
	require.Equal(t, closure.OneOf2Var1[string](2), o2)
}

func TestOneOfString(t *testing.T) {
	require.Equal(t, "Variant1(42)", fmt.Sprint(closure.OneOf2Var1[string](42)))
	require.Equal(t, "Variant3(x)", closure.OneOf3Var3[int, int]("x").String())
	require.Equal(t, "Variant4([1 2])", closure.OneOf4Var4[int, int, int]([]int{1, 2}).String())
	require.Equal(t, "OneOf2{}", closure.OneOf2[int, int]{}.String())
}

func TestOneOfZeroValue(t *testing.T) {
	var o closure.OneOf4[int, int, int, int]
	require.Equal(t, 0, o.Variant())
	require.Equal(t, 0, closure.RefOneOf4(&o).Variant())

	require.PanicsWithValue(t, "closure: empty OneOf4", func() {
		closure.MatchOneOf4(o,
			func(int) int { return 1 },
			func(int) int { return 2 },
			func(int) int { return 3 },
			func(int) int { return 4 },
		)
	})
}
