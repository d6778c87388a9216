// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package weights looks up edge weights of a directed graph stored in one
// of several layouts, behind a single [Provider] type.
//
// Each layout is plain captured data paired with a lookup function; the
// provider holds one of the four as a closure.ClosureOptRefOneOf4, so the
// choice of layout is made at run time without an interface value or a
// heap-allocated func:
//
//   - [Jagged]: one slice of optional weights per node
//   - [Sparse]: one map of outgoing edges per node
//   - [Dense]: a single row-major slice with presence bits
//   - [Uniform]: every edge exists with the same weight
//
// Weights are returned as pointers into the provider's own storage.
package weights
