// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure_test

import (
	"errors"

	"github.com/lightningnetwork/lnd/fn/v2"
)

type edge struct{ i, j int }

// Edge weights of a 3-node graph, in several storage layouts:
//
//	from  to  weight
//	0     0   0
//	0     1   4
//	0     2   2
//	1     0   -
//	1     1   0
//	1     2   5
//	2     0   -
//	2     1   -
//	2     2   0
type (
	jagged    [][]*int
	rowMaps   []map[int]*int
	lookupTab map[edge]*int
	flat      struct {
		n int
		w []int
		p []bool
	}
)

var (
	zeroWeight = 0

	errNoEdge = errors.New("edge doesn't exist")
)

func ptr(v int) *int { return &v }

func newJagged() jagged {
	return jagged{
		{ptr(0), ptr(4), ptr(2)},
		{nil, ptr(0), ptr(5)},
		{nil, nil, ptr(0)},
	}
}

func newRowMaps() rowMaps {
	return rowMaps{
		{1: ptr(4), 2: ptr(2)},
		{2: ptr(5)},
		{},
	}
}

func newLookupTab() lookupTab {
	return lookupTab{
		{0, 0}: ptr(0), {0, 1}: ptr(4), {0, 2}: ptr(2),
		{1, 1}: ptr(0), {1, 2}: ptr(5),
		{2, 2}: ptr(0),
	}
}

func newFlat() flat {
	return flat{
		n: 3,
		w: []int{0, 4, 2, 0, 0, 5, 0, 0, 0},
		p: []bool{true, true, true, false, true, true, false, false, true},
	}
}

// expectedWeight returns the weight of (i, j) in the table above, or
// false for an absent edge.
func expectedWeight(i, j int) (int, bool) {
	w := [3][3]int{{0, 4, 2}, {-1, 0, 5}, {-1, -1, 0}}[i][j]
	return w, w >= 0
}

func optWeight(p *int) fn.Option[*int] {
	if p == nil {
		return fn.None[*int]()
	}
	return fn.Some(p)
}

func jaggedOptWeight(m *jagged, e edge) fn.Option[*int] {
	return optWeight((*m)[e.i][e.j])
}

func rowMapsOptWeight(m *rowMaps, e edge) fn.Option[*int] {
	if e.i == e.j {
		return fn.Some(&zeroWeight)
	}
	return optWeight((*m)[e.i][e.j])
}

func lookupOptWeight(m *lookupTab, e edge) fn.Option[*int] {
	return optWeight((*m)[e])
}

func flatOptWeight(f *flat, e edge) fn.Option[*int] {
	k := e.i*f.n + e.j
	if !f.p[k] {
		return fn.None[*int]()
	}
	return fn.Some(&f.w[k])
}

func jaggedResWeight(m *jagged, e edge) (*int, error) {
	if w := (*m)[e.i][e.j]; w != nil {
		return w, nil
	}
	return nil, errNoEdge
}

func lookupResWeight(m *lookupTab, e edge) (*int, error) {
	if w, ok := (*m)[e]; ok {
		return w, nil
	}
	return nil, errNoEdge
}

func rowMapsResWeight(m *rowMaps, e edge) (*int, error) {
	if e.i == e.j {
		return &zeroWeight, nil
	}
	if w, ok := (*m)[e.i][e.j]; ok {
		return w, nil
	}
	return nil, errNoEdge
}

func flatResWeight(f *flat, e edge) (*int, error) {
	k := e.i*f.n + e.j
	if !f.p[k] {
		return nil, errNoEdge
	}
	return &f.w[k], nil
}

// Reference-shaped lookups that substitute a default for absent edges.

var missingWeight = -1

func jaggedRefWeight(m *jagged, e edge) *int {
	if w := (*m)[e.i][e.j]; w != nil {
		return w
	}
	return &missingWeight
}

func lookupRefWeight(m *lookupTab, e edge) *int {
	if w, ok := (*m)[e]; ok {
		return w
	}
	return &missingWeight
}

func rowMapsRefWeight(m *rowMaps, e edge) *int {
	if e.i == e.j {
		return &zeroWeight
	}
	if w, ok := (*m)[e.i][e.j]; ok {
		return w
	}
	return &missingWeight
}

func flatRefWeight(f *flat, e edge) *int {
	k := e.i*f.n + e.j
	if !f.p[k] {
		return &missingWeight
	}
	return &f.w[k]
}

// Value-shaped lookups, -1 for absent edges.

func jaggedValWeight(m *jagged, e edge) int { return *jaggedRefWeight(m, e) }

func lookupValWeight(m *lookupTab, e edge) int { return *lookupRefWeight(m, e) }

func rowMapsValWeight(m *rowMaps, e edge) int { return *rowMapsRefWeight(m, e) }

func flatValWeight(f *flat, e edge) int { return *flatRefWeight(f, e) }

func allEdges() []edge {
	var out []edge
	for i := range 3 {
		for j := range 3 {
			out = append(out, edge{i, j})
		}
	}
	return out
}
