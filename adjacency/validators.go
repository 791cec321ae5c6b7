// SPDX-License-Identifier: MIT
// Package: adjset/adjacency
//
// validators.go — the three independent structural checkers.
//
// Each checker is a pure function over the vertex → incidence mapping: no
// state, no side effects, deterministic (sorted) output. They are exported
// individually so callers can probe one category, but Validate is the
// intended entry point.

package adjacency

import "github.com/katalvlaran/adjset/core"

// NullIncidence returns the vertices whose incidence record is nil.
// A present-but-empty EdgeSet is sound and is not reported.
// Complexity: O(V log V)
func NullIncidence(m map[core.Vertex]*core.EdgeSet) []core.Vertex {
	var out []core.Vertex
	for v, set := range m {
		if set == nil {
			out = append(out, v)
		}
	}

	return sortedVertexCopy(out)
}

// MissingEndpoints returns the vertices whose non-nil incidence record
// contains at least one edge that does not include them as an endpoint.
// Vertices with nil records are skipped; NullIncidence owns that category.
// Complexity: O(E log V)
func MissingEndpoints(m map[core.Vertex]*core.EdgeSet) []core.Vertex {
	var out []core.Vertex
	for v, set := range m {
		if set == nil {
			continue
		}
		for _, e := range set.Edges() {
			if !e.Has(v) {
				out = append(out, v)
				break
			}
		}
	}

	return sortedVertexCopy(out)
}

// AsymmetricPairs returns a pair (v, u) for every edge e = {u, v} held in
// u's incidence record but not in v's. Two guards keep categories disjoint:
//   - edges not touching u at all are skipped (MissingEndpoints owns them);
//   - a nil record for v is skipped (NullIncidence owns it) — but an entirely
//     absent v still counts as asymmetric, since its incidence trivially
//     lacks the edge.
//
// Complexity: O(E log E)
func AsymmetricPairs(m map[core.Vertex]*core.EdgeSet) []VertexPair {
	var out []VertexPair
	for u, set := range m {
		if set == nil {
			continue
		}
		for _, e := range set.Edges() {
			v, ok := e.Neighbor(u)
			if !ok {
				continue // u is not an endpoint of its own edge
			}
			vSet, present := m[v]
			if present && vSet == nil {
				continue // nil record: already a NullIncidence defect
			}
			if !present || !vSet.Contains(e) {
				out = append(out, VertexPair{Missing: v, Listing: u})
			}
		}
	}
	sortVertexPairs(out)

	return out
}

// Validate is the barricade: it runs every checker against m and records
// each non-empty result into st. All checks run regardless of earlier
// findings — validation is exhaustive, not short-circuiting, so one pass
// reports every category of defect.
// Complexity: O(E log E)
func Validate(m map[core.Vertex]*core.EdgeSet, st *Status) {
	st.RecordNullVertices(NullIncidence(m))
	st.RecordMissingVertices(MissingEndpoints(m))
	st.RecordAsymmetricPairs(AsymmetricPairs(m))
}
