// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// builder.go — mutable adjacency staging: vertex/edge lifecycle and queries.
//
// Determinism:
//   - Every exported enumeration (Vertices, Edges, IncidentEdges) is sorted.
// Concurrency:
//   - Single-owner mutation; callers serialize access across goroutines.

package builder

import (
	"sort"
	"strings"

	"github.com/katalvlaran/adjset/adjacency"
	"github.com/katalvlaran/adjset/core"
)

// Builder is the mutable staging area for an adjacency-set graph. The
// internal state maps each vertex to the mutable set of its incident edges;
// vertices may exist with an empty incidence set (isolated vertices).
type Builder struct {
	incidence map[core.Vertex]map[core.Edge]struct{}
}

// New returns an empty builder.
// Complexity: O(1)
func New() *Builder {
	return &Builder{incidence: make(map[core.Vertex]map[core.Edge]struct{})}
}

// AddVertex inserts v with an empty incidence set if absent; idempotent.
// The nil vertex is ignored (guarding a caller bug, not a graph state).
// Complexity: O(1)
func (b *Builder) AddVertex(v core.Vertex) *Builder {
	if v.IsNil() {
		return b
	}
	if _, exists := b.incidence[v]; !exists {
		b.incidence[v] = make(map[core.Edge]struct{})
	}

	return b
}

// AddEdge registers e with both of its endpoints, auto-creating vertex
// entries as needed. The nil edge is ignored.
// Complexity: O(1)
func (b *Builder) AddEdge(e core.Edge) *Builder {
	if e.IsNil() {
		return b
	}
	u, v := e.Endpoints()
	b.AddVertex(u).AddVertex(v)
	b.incidence[u][e] = struct{}{}
	b.incidence[v][e] = struct{}{}

	return b
}

// RemoveEdge unregisters e from both endpoints' incidence sets if present;
// removing an absent edge is a safe no-op. Endpoints stay in the builder.
// Complexity: O(1)
func (b *Builder) RemoveEdge(e core.Edge) *Builder {
	if e.IsNil() {
		return b
	}
	u, v := e.Endpoints()
	if set, ok := b.incidence[u]; ok {
		delete(set, e)
	}
	if set, ok := b.incidence[v]; ok {
		delete(set, e)
	}

	return b
}

// RemoveVertex drops v and unregisters every edge incident on v from the
// neighbor at its other end. Removing an absent vertex is a safe no-op.
// Complexity: O(deg(v))
func (b *Builder) RemoveVertex(v core.Vertex) *Builder {
	set, ok := b.incidence[v]
	if !ok {
		return b
	}
	for e := range set {
		if n, found := e.Neighbor(v); found {
			if nset, exists := b.incidence[n]; exists {
				delete(nset, e)
			}
		}
	}
	delete(b.incidence, v)

	return b
}

// RemoveVertices applies RemoveVertex to each member.
// Complexity: O(Σ deg(v))
func (b *Builder) RemoveVertices(vs []core.Vertex) *Builder {
	for _, v := range vs {
		b.RemoveVertex(v)
	}

	return b
}

// Contains reports whether v is currently staged in the builder.
// Complexity: O(1)
func (b *Builder) Contains(v core.Vertex) bool {
	_, ok := b.incidence[v]

	return ok
}

// Edges returns the edges currently incident on v in canonical order.
// An absent vertex yields an empty slice. The slice is a fresh copy.
// Complexity: O(deg(v) log deg(v))
func (b *Builder) Edges(v core.Vertex) []core.Edge {
	set := b.incidence[v]
	out := make([]core.Edge, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// IncidentEdges returns every edge touching either endpoint of e, excluding
// e itself — the rewiring frontier used by contraction.
// Complexity: O(deg(u) + deg(v))
func (b *Builder) IncidentEdges(e core.Edge) []core.Edge {
	u, v := e.Endpoints()
	seen := make(map[core.Edge]struct{})
	for _, endpoint := range []core.Vertex{u, v} {
		for inc := range b.incidence[endpoint] {
			if inc != e {
				seen[inc] = struct{}{}
			}
		}
	}
	out := make([]core.Edge, 0, len(seen))
	for inc := range seen {
		out = append(out, inc)
	}
	sortEdges(out)

	return out
}

// Vertices returns all staged vertices in label order (fresh copy).
// Complexity: O(V log V)
func (b *Builder) Vertices() []core.Vertex {
	out := make([]core.Vertex, 0, len(b.incidence))
	for v := range b.incidence {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })

	return out
}

// VertexCount returns the number of staged vertices. O(1).
func (b *Builder) VertexCount() int {
	return len(b.incidence)
}

// EdgeCount returns the number of distinct staged edges.
// Complexity: O(E)
func (b *Builder) EdgeCount() int {
	seen := make(map[core.Edge]struct{})
	for _, set := range b.incidence {
		for e := range set {
			seen[e] = struct{}{}
		}
	}

	return len(seen)
}

// Build snapshots the current incidence sets into immutable EdgeSets and
// delegates to adjacency.From. On failure it returns (nil, false) with st
// populated; the builder stays mutable so the caller can repair the exact
// defects and retry.
// Complexity: O(E log E)
func (b *Builder) Build(st *adjacency.Status) (*adjacency.AdjacencySets, bool) {
	m := make(map[core.Vertex]*core.EdgeSet, len(b.incidence))
	for v, set := range b.incidence {
		edges := make([]core.Edge, 0, len(set))
		for e := range set {
			edges = append(edges, e)
		}
		snapshot, err := core.NewEdgeSet(edges...)
		if err != nil {
			// The builder never stores the nil edge, so this cannot happen;
			// degrade to a nil record so validation reports it instead of
			// admitting a corrupt snapshot.
			m[v] = nil
			continue
		}
		m[v] = snapshot
	}

	return adjacency.From(m, st)
}

// String renders one incidence line per vertex in label order, matching the
// frozen graph's diagnostic dump.
func (b *Builder) String() string {
	var sb strings.Builder
	sb.WriteString("Builder:\n")
	for _, v := range b.Vertices() {
		sb.WriteString("   ")
		sb.WriteString(v.Label)
		sb.WriteString(" --> [")
		for i, e := range b.Edges(v) {
			if i > 0 {
				sb.WriteString(", ")
			}
			n, _ := e.Neighbor(v)
			sb.WriteString("(" + v.Label + " --- " + n.Label + ")")
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// sortEdges orders edges canonically in place.
func sortEdges(edges []core.Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].Compare(edges[j]) < 0 })
}
