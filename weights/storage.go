// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package weights

import (
	"github.com/lightningnetwork/lnd/fn/v2"
	"golang.org/x/exp/constraints"
)

// Number is the set of weight types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Edge is a directed edge between two nodes, numbered from 0.
type Edge struct {
	From, To int
}

func (e Edge) within(n int) bool {
	return e.From >= 0 && e.From < n && e.To >= 0 && e.To < n
}

type entry[W Number] struct {
	weight  W
	present bool
}

// Jagged stores one row of optional weights per node.
type Jagged[W Number] struct {
	rows [][]entry[W]
}

// NewJagged builds a Jagged storage of n nodes holding edges.
// Edges outside [0, n) are ignored. n must not be negative; [Build] checks
// it for every layout.
func NewJagged[W Number](n int, edges map[Edge]W) Jagged[W] {
	rows := make([][]entry[W], n)
	for i := range rows {
		rows[i] = make([]entry[W], n)
	}
	for e, w := range edges {
		if e.within(n) {
			rows[e.From][e.To] = entry[W]{weight: w, present: true}
		}
	}
	return Jagged[W]{rows: rows}
}

// Nodes returns the number of nodes.
func (j *Jagged[W]) Nodes() int { return len(j.rows) }

func jaggedWeight[W Number](j *Jagged[W], e Edge) fn.Option[*W] {
	if !e.within(len(j.rows)) {
		return fn.None[*W]()
	}
	if en := &j.rows[e.From][e.To]; en.present {
		return fn.Some(&en.weight)
	}
	return fn.None[*W]()
}

// Sparse stores one map of outgoing edges per node.
type Sparse[W Number] struct {
	rows []map[int]*W
}

// NewSparse builds a Sparse storage of n nodes holding edges.
// Edges outside [0, n) are ignored.
func NewSparse[W Number](n int, edges map[Edge]W) Sparse[W] {
	rows := make([]map[int]*W, n)
	for i := range rows {
		rows[i] = make(map[int]*W)
	}
	for e, w := range edges {
		if e.within(n) {
			rows[e.From][e.To] = &w
		}
	}
	return Sparse[W]{rows: rows}
}

// Nodes returns the number of nodes.
func (s *Sparse[W]) Nodes() int { return len(s.rows) }

func sparseWeight[W Number](s *Sparse[W], e Edge) fn.Option[*W] {
	if !e.within(len(s.rows)) {
		return fn.None[*W]()
	}
	if w, ok := s.rows[e.From][e.To]; ok {
		return fn.Some(w)
	}
	return fn.None[*W]()
}

// Dense stores all weights in one row-major slice.
type Dense[W Number] struct {
	n       int
	weights []W
	present []bool
}

// NewDense builds a Dense storage of n nodes holding edges.
func NewDense[W Number](n int, edges map[Edge]W) Dense[W] {
	d := Dense[W]{
		n:       n,
		weights: make([]W, n*n),
		present: make([]bool, n*n),
	}
	for e, w := range edges {
		if e.within(n) {
			k := e.From*n + e.To
			d.weights[k] = w
			d.present[k] = true
		}
	}
	return d
}

// Nodes returns the number of nodes.
func (d *Dense[W]) Nodes() int { return d.n }

func denseWeight[W Number](d *Dense[W], e Edge) fn.Option[*W] {
	if !e.within(d.n) {
		return fn.None[*W]()
	}
	k := e.From*d.n + e.To
	if !d.present[k] {
		return fn.None[*W]()
	}
	return fn.Some(&d.weights[k])
}

// Uniform is a complete graph whose edges all have the same weight.
type Uniform[W Number] struct {
	n      int
	weight W
}

// NewUniform returns a Uniform storage of n nodes with every edge weighing w.
func NewUniform[W Number](n int, w W) Uniform[W] {
	return Uniform[W]{n: n, weight: w}
}

// Nodes returns the number of nodes.
func (u *Uniform[W]) Nodes() int { return u.n }

func uniformWeight[W Number](u *Uniform[W], e Edge) fn.Option[*W] {
	if !e.within(u.n) {
		return fn.None[*W]()
	}
	return fn.Some(&u.weight)
}
