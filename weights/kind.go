// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package weights

import "github.com/cockroachdb/errors"

// Kind names a storage layout. Its values match the slot of the layout in
// a provider, so the zero Kind is no layout at all.
type Kind int

const (
	KindJagged Kind = iota + 1
	KindSparse
	KindDense
	KindUniform
)

var kindNames = [...]string{
	KindJagged:  "jagged",
	KindSparse:  "sparse",
	KindDense:   "dense",
	KindUniform: "uniform",
}

func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ErrUnknownKind is returned by [ParseKind] for an unrecognized name.
var ErrUnknownKind = errors.New("unknown storage kind")

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for k := KindJagged; k <= KindUniform; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
}

// MaxNodes bounds the node count accepted by [Build]. A dense layout of
// MaxNodes nodes holds MaxNodes*MaxNodes weights.
const MaxNodes = 1 << 12

// ErrNodeCount is returned by [Build] for a node count outside [0, MaxNodes].
var ErrNodeCount = errors.New("node count out of range")

// Build stores edges of a graph with n nodes in the layout k. Edges outside
// [0, n) are dropped. A uniform layout takes the weight shared by all edges
// and requires the graph to be complete.
func Build[W Number](k Kind, n int, edges map[Edge]W) (Provider[W], error) {
	if n < 0 || n > MaxNodes {
		return Provider[W]{}, errors.Wrapf(ErrNodeCount, "%d nodes, limit %d", n, MaxNodes)
	}
	switch k {
	case KindJagged:
		return FromJagged(NewJagged(n, edges)), nil
	case KindSparse:
		return FromSparse(NewSparse(n, edges)), nil
	case KindDense:
		return FromDense(NewDense(n, edges)), nil
	case KindUniform:
		w, err := uniformWeightOf(n, edges)
		if err != nil {
			return Provider[W]{}, err
		}
		return FromUniform(NewUniform(n, w)), nil
	}
	return Provider[W]{}, errors.Wrapf(ErrUnknownKind, "%d", int(k))
}

// ErrNotUniform is returned by [Build] when a uniform layout cannot hold
// the given edges.
var ErrNotUniform = errors.New("edges are not uniform")

func uniformWeightOf[W Number](n int, edges map[Edge]W) (W, error) {
	var w W
	first := true
	for i := range n {
		for j := range n {
			v, ok := edges[Edge{From: i, To: j}]
			if !ok {
				return w, errors.Wrapf(ErrNotUniform, "edge %d->%d missing", i, j)
			}
			if !first && v != w {
				return w, errors.Wrapf(ErrNotUniform, "edge %d->%d weighs %v, want %v", i, j, v, w)
			}
			w, first = v, false
		}
	}
	return w, nil
}
