// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package table loads edge tables from YAML into weight providers.
//
// A table lists the node count, a default storage layout and the edges:
//
//	nodes: 3
//	storage: sparse
//	edges:
//	  - {from: 0, to: 1, weight: 4}
//	  - {from: 1, to: 2, weight: 3}
//
// A complete graph with one weight may be written with uniform instead of
// edges:
//
//	nodes: 4
//	uniform: 2
package table

import (
	"os"

	"code.hybscloud.com/closure/weights"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTable matches every validation failure.
var ErrInvalidTable = errors.New("invalid edge table")

// EdgeSpec is one edge of a table.
type EdgeSpec struct {
	From   int   `yaml:"from"`
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight"`
}

// Table is the decoded form of a table file.
type Table struct {
	Nodes   int        `yaml:"nodes"`
	Storage string     `yaml:"storage,omitempty"`
	Uniform *int64     `yaml:"uniform,omitempty"`
	Edges   []EdgeSpec `yaml:"edges,omitempty"`
}

// Load reads and validates the table at path.
func Load(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading table %s", path)
	}
	t, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "table %s", path)
	}
	return t, nil
}

// Parse decodes and validates a table.
func Parse(b []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, errors.Wrap(err, "decoding table")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that the table describes a graph a provider can hold.
func (t *Table) Validate() error {
	if t.Nodes <= 0 || t.Nodes > weights.MaxNodes {
		return errors.Wrapf(ErrInvalidTable, "nodes must be in [1, %d], got %d", weights.MaxNodes, t.Nodes)
	}
	if t.Storage != "" {
		if _, err := weights.ParseKind(t.Storage); err != nil {
			return errors.Join(ErrInvalidTable, errors.Wrap(err, "storage"))
		}
	}
	if t.Uniform != nil {
		if len(t.Edges) > 0 {
			return errors.Wrap(ErrInvalidTable, "uniform and edges are exclusive")
		}
		if *t.Uniform < 0 {
			return errors.Wrapf(ErrInvalidTable, "negative uniform weight %d", *t.Uniform)
		}
		return nil
	}
	seen := make(map[weights.Edge]struct{}, len(t.Edges))
	for i, e := range t.Edges {
		if e.From < 0 || e.From >= t.Nodes || e.To < 0 || e.To >= t.Nodes {
			return errors.Wrapf(ErrInvalidTable, "edge #%d %d->%d out of range [0, %d)", i, e.From, e.To, t.Nodes)
		}
		if e.Weight < 0 {
			return errors.Wrapf(ErrInvalidTable, "edge #%d %d->%d has negative weight %d", i, e.From, e.To, e.Weight)
		}
		k := weights.Edge{From: e.From, To: e.To}
		if _, dup := seen[k]; dup {
			return errors.Wrapf(ErrInvalidTable, "edge #%d %d->%d listed twice", i, e.From, e.To)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// Kind returns the table's storage layout: uniform for a uniform table,
// otherwise the storage field, defaulting to sparse.
func (t *Table) Kind() weights.Kind {
	if t.Uniform != nil {
		return weights.KindUniform
	}
	if k, err := weights.ParseKind(t.Storage); err == nil {
		return k
	}
	return weights.KindSparse
}

// EdgeMap returns the edges keyed by endpoints. A uniform table yields
// every edge of the complete graph.
func (t *Table) EdgeMap() map[weights.Edge]int64 {
	if t.Uniform != nil {
		m := make(map[weights.Edge]int64, t.Nodes*t.Nodes)
		for i := range t.Nodes {
			for j := range t.Nodes {
				m[weights.Edge{From: i, To: j}] = *t.Uniform
			}
		}
		return m
	}
	m := make(map[weights.Edge]int64, len(t.Edges))
	for _, e := range t.Edges {
		m[weights.Edge{From: e.From, To: e.To}] = e.Weight
	}
	return m
}

// Provider stores the table in layout k. A zero k uses [Table.Kind].
func (t *Table) Provider(k weights.Kind) (weights.Provider[int64], error) {
	if k == 0 {
		k = t.Kind()
	}
	if k == weights.KindUniform && t.Uniform != nil {
		return weights.FromUniform(weights.NewUniform(t.Nodes, *t.Uniform)), nil
	}
	p, err := weights.Build(k, t.Nodes, t.EdgeMap())
	if err != nil {
		return p, errors.Wrapf(err, "storing table as %s", k)
	}
	return p, nil
}
