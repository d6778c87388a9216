// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package weights

import (
	"fmt"

	"code.hybscloud.com/closure"
	"github.com/cockroachdb/errors"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// ErrNoEdge is returned by [Provider.Lookup] for an edge that is absent or
// out of range.
var ErrNoEdge = errors.New("edge doesn't exist")

// Provider answers edge weight queries over one of the storage layouts.
// The zero value is not usable; build one with FromJagged, FromSparse,
// FromDense or FromUniform.
type Provider[W Number] struct {
	lookup closure.ClosureOptRefOneOf4[Jagged[W], Sparse[W], Dense[W], Uniform[W], Edge, W]
}

// FromJagged returns a provider over j.
func FromJagged[W Number](j Jagged[W]) Provider[W] {
	c := closure.FunOptionRef(closure.Capture(j), jaggedWeight[W])
	return Provider[W]{lookup: closure.IntoClosureOptRefOneOf4Var1[Sparse[W], Dense[W], Uniform[W]](c)}
}

// FromSparse returns a provider over s.
func FromSparse[W Number](s Sparse[W]) Provider[W] {
	c := closure.FunOptionRef(closure.Capture(s), sparseWeight[W])
	return Provider[W]{lookup: closure.IntoClosureOptRefOneOf4Var2[Jagged[W], Dense[W], Uniform[W]](c)}
}

// FromDense returns a provider over d.
func FromDense[W Number](d Dense[W]) Provider[W] {
	c := closure.FunOptionRef(closure.Capture(d), denseWeight[W])
	return Provider[W]{lookup: closure.IntoClosureOptRefOneOf4Var3[Jagged[W], Sparse[W], Uniform[W]](c)}
}

// FromUniform returns a provider over u.
func FromUniform[W Number](u Uniform[W]) Provider[W] {
	c := closure.FunOptionRef(closure.Capture(u), uniformWeight[W])
	return Provider[W]{lookup: closure.IntoClosureOptRefOneOf4Var4[Jagged[W], Sparse[W], Dense[W]](c)}
}

// Weight returns the weight of edge i->j, pointing into the provider's
// storage, or None when the edge is absent or out of range.
func (p *Provider[W]) Weight(i, j int) fn.Option[*W] {
	return p.lookup.Call(Edge{From: i, To: j})
}

// Lookup is like Weight but reports an absent edge as an error wrapping
// [ErrNoEdge].
func (p *Provider[W]) Lookup(i, j int) (*W, error) {
	c := p.Checked()
	return c.Call(Edge{From: i, To: j})
}

// Checked returns a fallible view of p that shares its storage.
// Call has a pointer receiver, so store the view in a variable before
// calling it.
func (p *Provider[W]) Checked() closure.ClosureResRef[*Provider[W], Edge, W, error] {
	return closure.FunResultRef(closure.Capture(p), checkedWeight[W])
}

func checkedWeight[W Number](p **Provider[W], e Edge) (*W, error) {
	w, err := (*p).lookup.Call(e).UnwrapOrErr(ErrNoEdge)
	if err != nil {
		return nil, errors.Wrapf(err, "edge %d->%d", e.From, e.To)
	}
	return w, nil
}

// CostView is the captured data of a [Provider.Cost] closure.
type CostView[W Number] struct {
	p       *Provider[W]
	missing int64
}

// Provider returns the provider the view reads from.
func (v *CostView[W]) Provider() *Provider[W] { return v.p }

// Cost returns a value-shaped view of p converting weights to int64, with
// absent edges costing missing. Fractional weights are truncated.
// As with [Provider.Checked], store the view before calling it.
func (p *Provider[W]) Cost(missing int64) closure.Closure[CostView[W], Edge, int64] {
	return closure.Fun(closure.Capture(CostView[W]{p: p, missing: missing}), edgeCost[W])
}

func edgeCost[W Number](v *CostView[W], e Edge) int64 {
	return fn.ElimOption(v.p.lookup.Call(e),
		func() int64 { return v.missing },
		func(w *W) int64 { return int64(*w) },
	)
}

// Nodes returns the number of nodes of the underlying storage.
func (p *Provider[W]) Nodes() int {
	return closure.MatchOneOf4(p.lookup.CapturedData(),
		(*Jagged[W]).Nodes,
		(*Sparse[W]).Nodes,
		(*Dense[W]).Nodes,
		(*Uniform[W]).Nodes,
	)
}

// Kind returns the underlying layout.
func (p *Provider[W]) Kind() Kind {
	return Kind(p.lookup.Variant())
}

// Storage returns the name of the underlying layout.
func (p *Provider[W]) Storage() string {
	return p.Kind().String()
}

// Sum returns the total weight of all present edges.
func (p *Provider[W]) Sum() W {
	var sum W
	n := p.Nodes()
	for i := range n {
		for j := range n {
			p.Weight(i, j).WhenSome(func(w *W) { sum += *w })
		}
	}
	return sum
}

// Matrix returns the weights as rows of optional values.
func (p *Provider[W]) Matrix() [][]fn.Option[W] {
	n := p.Nodes()
	m := make([][]fn.Option[W], n)
	for i := range m {
		m[i] = make([]fn.Option[W], n)
		for j := range m[i] {
			m[i][j] = fn.MapOption(func(w *W) W { return *w })(p.Weight(i, j))
		}
	}
	return m
}

// String formats the layout and node count.
func (p Provider[W]) String() string {
	return fmt.Sprintf("weights.Provider{%s, %d nodes}", p.Storage(), p.Nodes())
}
