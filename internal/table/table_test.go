// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package table_test

import (
	"path/filepath"
	"testing"

	"code.hybscloud.com/closure/internal/table"
	"code.hybscloud.com/closure/weights"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tab, err := table.Load(filepath.Join("testdata", "triangle.yaml"))
	require.NoError(t, err)
	require.Equal(t, 3, tab.Nodes)
	require.Len(t, tab.Edges, 5)
	require.Equal(t, weights.KindDense, tab.Kind())

	p, err := tab.Provider(0)
	require.NoError(t, err)
	require.Equal(t, "dense", p.Storage())
	require.Equal(t, int64(24), p.Sum())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := table.Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	require.NotErrorIs(t, err, table.ErrInvalidTable)
}

func TestLoadUniform(t *testing.T) {
	tab, err := table.Load(filepath.Join("testdata", "uniform.yaml"))
	require.NoError(t, err)
	require.Equal(t, weights.KindUniform, tab.Kind())

	p, err := tab.Provider(0)
	require.NoError(t, err)
	require.Equal(t, "uniform", p.Storage())
	require.Equal(t, int64(32), p.Sum())

	// A uniform table can be stored in any other layout.
	for _, k := range []weights.Kind{weights.KindJagged, weights.KindSparse, weights.KindDense} {
		q, err := tab.Provider(k)
		require.NoError(t, err)
		require.Equal(t, k, q.Kind())
		require.Equal(t, int64(2), *q.Weight(3, 0).UnwrapOr(nil))
	}
}

func TestProviderLayouts(t *testing.T) {
	tab, err := table.Load(filepath.Join("testdata", "triangle.yaml"))
	require.NoError(t, err)

	for _, k := range []weights.Kind{weights.KindJagged, weights.KindSparse, weights.KindDense} {
		p, err := tab.Provider(k)
		require.NoError(t, err)
		require.Equal(t, k, p.Kind())
		require.Equal(t, int64(3), *p.Weight(1, 2).UnwrapOr(nil))
		require.True(t, p.Weight(1, 0).IsNone())
	}

	_, err = tab.Provider(weights.KindUniform)
	require.ErrorIs(t, err, weights.ErrNotUniform)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no nodes", "edges: []"},
		{"too many nodes", "nodes: 3000000000"},
		{"bad storage", "nodes: 2\nstorage: csr"},
		{"out of range", "nodes: 2\nedges: [{from: 0, to: 2, weight: 1}]"},
		{"negative weight", "nodes: 2\nedges: [{from: 0, to: 1, weight: -1}]"},
		{"duplicate", "nodes: 2\nedges: [{from: 0, to: 1, weight: 1}, {from: 0, to: 1, weight: 2}]"},
		{"uniform and edges", "nodes: 2\nuniform: 1\nedges: [{from: 0, to: 1, weight: 1}]"},
		{"negative uniform", "nodes: 2\nuniform: -3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, table.ErrInvalidTable)
		})
	}

	_, err := table.Parse([]byte("nodes: 2\nstorage: csr"))
	require.ErrorIs(t, err, table.ErrInvalidTable)
	require.ErrorIs(t, err, weights.ErrUnknownKind)
	require.True(t, errors.Is(err, table.ErrInvalidTable))
}

func TestSelfEdgesAgreeAcrossLayouts(t *testing.T) {
	tab, err := table.Parse([]byte("nodes: 2\nedges: [{from: 0, to: 1, weight: 4}, {from: 1, to: 1, weight: 5}]"))
	require.NoError(t, err)

	for _, k := range []weights.Kind{weights.KindJagged, weights.KindSparse, weights.KindDense} {
		p, err := tab.Provider(k)
		require.NoError(t, err)
		require.Equal(t, int64(5), *p.Weight(1, 1).UnwrapOr(nil), "%s", k)
		require.True(t, p.Weight(0, 0).IsNone(), "%s", k)
		require.Equal(t, int64(9), p.Sum(), "%s", k)
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := table.Parse([]byte("nodes: [1"))
	require.Error(t, err)
	require.False(t, errors.Is(err, table.ErrInvalidTable))
}

func TestShortestPath(t *testing.T) {
	tab, err := table.Load(filepath.Join("testdata", "triangle.yaml"))
	require.NoError(t, err)
	p, err := tab.Provider(weights.KindSparse)
	require.NoError(t, err)

	path, dist, ok := table.ShortestPath(&p, 0, 2)
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2}, path)
	require.Equal(t, int64(7), dist)

	path, dist, ok = table.ShortestPath(&p, 1, 0)
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 0}, path)
	require.Equal(t, int64(10), dist)

	_, _, ok = table.ShortestPath(&p, 0, 3)
	require.False(t, ok)
}

func TestShortestPathUnreachable(t *testing.T) {
	tab, err := table.Parse([]byte("nodes: 3\nedges: [{from: 0, to: 1, weight: 1}]"))
	require.NoError(t, err)
	p, err := tab.Provider(0)
	require.NoError(t, err)

	_, _, ok := table.ShortestPath(&p, 1, 0)
	require.False(t, ok)
	require.Len(t, table.Components(&p), 3)
}

func TestGraphKeepsNegativeWeights(t *testing.T) {
	p := weights.FromSparse(weights.NewSparse(2, map[weights.Edge]int64{
		{From: 0, To: 1}: -1,
	}))

	g := table.Graph(&p)
	require.True(t, g.Edge(0, 1))
	require.Equal(t, int64(-1), g.Cost(0, 1))
	require.False(t, g.Edge(1, 0))
}

func TestGraph(t *testing.T) {
	tab, err := table.Load(filepath.Join("testdata", "uniform.yaml"))
	require.NoError(t, err)
	p, err := tab.Provider(0)
	require.NoError(t, err)

	g := table.Graph(&p)
	require.Equal(t, 4, g.Order())
	require.True(t, g.Edge(0, 3))
	require.Equal(t, int64(2), g.Cost(0, 3))
	require.False(t, g.Edge(1, 1))
	require.Len(t, table.Components(&p), 1)
}
