// SPDX-License-Identifier: MIT
// Package: adjset/adjacency
//
// sets.go — the frozen, validated AdjacencySets graph representation.
//
// Determinism:
//   - Vertices() and String() enumerate in label order.
// Concurrency:
//   - Deeply immutable after From; freely shareable for concurrent reads.

package adjacency

import (
	"sort"
	"strings"

	"github.com/katalvlaran/adjset/core"
)

// AdjacencySets is an immutable mapping from each vertex to its incidence
// set. Values of this type only exist for mappings that passed every
// structural checker; From is the single admission point.
type AdjacencySets struct {
	edges map[core.Vertex]*core.EdgeSet
}

// From validates m through the barricade into st. When st ends up not OK,
// no graph is produced (nil, false) and the caller inspects st for the
// per-category diagnostics. Otherwise From returns an immutable graph that
// owns a private copy of the mapping (EdgeSet values are themselves
// immutable, so copying the map suffices).
// Complexity: O(E log E)
func From(m map[core.Vertex]*core.EdgeSet, st *Status) (*AdjacencySets, bool) {
	Validate(m, st)
	if !st.OK() {
		return nil, false
	}

	own := make(map[core.Vertex]*core.EdgeSet, len(m))
	for v, set := range m {
		own[v] = set
	}

	return &AdjacencySets{edges: own}, true
}

// Vertices returns all vertices in label order. The slice is a fresh copy.
// Complexity: O(V log V)
func (a *AdjacencySets) Vertices() []core.Vertex {
	out := make([]core.Vertex, 0, len(a.edges))
	for v := range a.edges {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })

	return out
}

// Edges returns a copy of the vertex → incidence mapping. Mutating the
// returned map does not affect the graph.
// Complexity: O(V)
func (a *AdjacencySets) Edges() map[core.Vertex]*core.EdgeSet {
	out := make(map[core.Vertex]*core.EdgeSet, len(a.edges))
	for v, set := range a.edges {
		out[v] = set
	}

	return out
}

// EdgeSet returns the incidence set of v, or false when v is not a vertex
// of this graph.
// Complexity: O(1)
func (a *AdjacencySets) EdgeSet(v core.Vertex) (*core.EdgeSet, bool) {
	set, ok := a.edges[v]

	return set, ok
}

// VertexCount returns the number of vertices. O(1).
func (a *AdjacencySets) VertexCount() int {
	return len(a.edges)
}

// String renders one line per vertex in label order:
//
//	A --> [(A --- B), (A --- C)]
//
// Each incident edge is printed from the perspective of the line's vertex.
// The dump is for diagnostics and tests, not for re-parsing.
func (a *AdjacencySets) String() string {
	var sb strings.Builder
	sb.WriteString("AdjacencySets:\n")
	for _, v := range a.Vertices() {
		writeIncidenceLine(&sb, v, a.edges[v])
	}

	return sb.String()
}

// writeIncidenceLine appends "   v --> [(v --- n), ...]\n" to sb. A nil set
// renders as an empty list; only validated graphs reach this path, so nil
// can only mean "vertex known, no incidence recorded" (PlainGraph allows it).
func writeIncidenceLine(sb *strings.Builder, v core.Vertex, set *core.EdgeSet) {
	sb.WriteString("   ")
	sb.WriteString(v.Label)
	sb.WriteString(" --> [")
	if set != nil {
		for i, e := range set.Edges() {
			if i > 0 {
				sb.WriteString(", ")
			}
			n, ok := e.Neighbor(v)
			if !ok {
				continue // validated graphs never hit this
			}
			sb.WriteString("(" + v.Label + " --- " + n.Label + ")")
		}
	}
	sb.WriteString("]\n")
}
