// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure_test

import (
	"fmt"
	"testing"

	"code.hybscloud.com/closure"
	"github.com/stretchr/testify/require"
)

func TestClosureRefPointsIntoCapturedData(t *testing.T) {
	c := closure.FunRef(closure.Capture(newFlat()), flatRefWeight)

	w := c.Call(edge{1, 2})
	require.Equal(t, 5, *w)
	require.Same(t, &c.CapturedData().w[5], w)
}

func TestClosureRefMissingFallsBack(t *testing.T) {
	m := map[rune]int{'a': 1, 'b': 2}
	fallback := 42
	c := closure.FunRef(closure.Capture(m), func(m *map[rune]int, r rune) *int {
		if v, ok := (*m)[r]; ok {
			return &v
		}
		return &fallback
	})

	f := c.AsFn()
	require.Equal(t, 1, *f('a'))
	require.Equal(t, 2, *f('b'))
	require.Equal(t, 42, *f('c'))
}

func TestClosureRefCaptureDeref(t *testing.T) {
	table := newLookupTab()
	shared := closure.FunRef(closure.Capture(&table), func(m **lookupTab, e edge) *int {
		return lookupRefWeight(*m, e)
	})
	owned := closure.FunRef(closure.Capture(newLookupTab()), lookupRefWeight)

	for _, e := range allEdges() {
		require.Equal(t, *owned.Call(e), *shared.Call(e), "edge %v", e)
	}
}

func TestClosureRefAsRefCaller(t *testing.T) {
	c := closure.FunRef(closure.Capture(newJagged()), jaggedRefWeight)

	var caller closure.RefCaller[edge, int] = &c
	require.Equal(t, 4, *caller.Call(edge{0, 1}))
	require.Equal(t, -1, *caller.Call(edge{1, 0}))
}

func TestClosureRefIntoCapturedData(t *testing.T) {
	c := closure.FunRef(closure.Capture(newFlat()), flatRefWeight)

	require.Equal(t, newFlat(), c.IntoCapturedData())
}

func TestClosureRefString(t *testing.T) {
	c := closure.FunRef(closure.Capture(7), func(x *int, _ struct{}) *int { return x })

	require.Equal(t, "ClosureRef{capture: 7}", c.String())
	require.Equal(t, "closure.ClosureRef{capture: 7}", fmt.Sprintf("%#v", c))
}

func TestClosureRefClone(t *testing.T) {
	c := closure.FunRef(closure.Capture(ints{1, 2}), func(s *ints, i int) *int {
		return &(*s)[i]
	})
	cloned := c.Clone()

	*c.Call(0) = 10

	require.Equal(t, 10, *c.Call(0))
	require.Equal(t, 1, *cloned.Call(0))
	require.NotSame(t, c.Call(1), cloned.Call(1))
}
