// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package table

import (
	"code.hybscloud.com/closure/weights"
	"github.com/yourbasic/graph"
)

// Graph copies the present edges of p into a mutable graph, with weights
// as edge costs. Self edges are skipped.
func Graph(p *weights.Provider[int64]) *graph.Mutable {
	n := p.Nodes()
	g := graph.New(n)
	for i := range n {
		for j := range n {
			if i == j {
				continue
			}
			p.Weight(i, j).WhenSome(func(w *int64) {
				g.AddCost(i, j, *w)
			})
		}
	}
	return g
}

// ShortestPath returns a cheapest path from v to w in p and its total
// weight. Weights must be non-negative, as [Table.Validate] ensures for
// loaded tables. ok is false when w is unreachable from v or either node
// is out of range.
func ShortestPath(p *weights.Provider[int64], v, w int) (path []int, dist int64, ok bool) {
	if n := p.Nodes(); v < 0 || v >= n || w < 0 || w >= n {
		return nil, 0, false
	}
	path, dist = graph.ShortestPath(Graph(p), v, w)
	if dist < 0 {
		return nil, 0, false
	}
	return path, dist, true
}

// Components returns the strongly connected components of p.
func Components(p *weights.Provider[int64]) [][]int {
	return graph.StrongComponents(Graph(p))
}
