// SPDX-License-Identifier: MIT
// Package: adjset/adjacency
//
// graph.go — the read-only Graph interface and the validated PlainGraph.

package adjacency

import (
	"errors"
	"sort"
	"strings"

	"github.com/katalvlaran/adjset/core"
)

// ErrInvalidGraph indicates a validated constructor rejected its input.
// Usage: if errors.Is(err, ErrInvalidGraph) { /* inspect the Status */ }.
var ErrInvalidGraph = errors.New("adjacency: invalid graph structure")

// ValidationError carries the populated Status of a failed validation so
// callers can repair the exact defects. It unwraps to ErrInvalidGraph.
type ValidationError struct {
	Status *Status
}

// Error renders the failure with the per-category diagnostics.
func (e *ValidationError) Error() string {
	return ErrInvalidGraph.Error() + ": " + e.Status.String()
}

// Unwrap exposes the sentinel for errors.Is branching.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidGraph
}

// Graph is the read-only surface a structural graph exposes to collaborators
// such as the annotation layer: vertex iteration and the incidence mapping.
// Both views are snapshots; mutating them does not affect the graph.
type Graph interface {
	// Vertices returns all vertices in label order.
	Vertices() []core.Vertex

	// Edges returns a copy of the vertex → incidence mapping.
	Edges() map[core.Vertex]*core.EdgeSet
}

// PlainGraph is a simple validated Graph implementation. Unlike
// AdjacencySets it keeps an explicit vertex set, so it can carry vertices
// that have no incidence record at all.
type PlainGraph struct {
	vertices []core.Vertex // label order
	edges    map[core.Vertex]*core.EdgeSet
}

// NewPlainGraph builds a validated PlainGraph from a vertex set and an
// incidence mapping. The mapping runs through the barricade; a defective
// one yields a *ValidationError wrapping the populated Status.
// Complexity: O(E log E)
func NewPlainGraph(vertices []core.Vertex, edges map[core.Vertex]*core.EdgeSet) (*PlainGraph, error) {
	st := NewStatus()
	Validate(edges, st)
	if !st.OK() {
		return nil, &ValidationError{Status: st}
	}

	own := make(map[core.Vertex]*core.EdgeSet, len(edges))
	for v, set := range edges {
		own[v] = set
	}

	return &PlainGraph{vertices: sortedVertexCopy(vertices), edges: own}, nil
}

// Vertices returns the graph's vertices in label order (fresh copy).
// Complexity: O(V)
func (g *PlainGraph) Vertices() []core.Vertex {
	return append([]core.Vertex{}, g.vertices...)
}

// Edges returns a copy of the incidence mapping.
// Complexity: O(V)
func (g *PlainGraph) Edges() map[core.Vertex]*core.EdgeSet {
	out := make(map[core.Vertex]*core.EdgeSet, len(g.edges))
	for v, set := range g.edges {
		out[v] = set
	}

	return out
}

// String renders one incidence line per vertex. Vertices without an
// incidence record render with an empty list.
func (g *PlainGraph) String() string {
	var sb strings.Builder
	sb.WriteString("PlainGraph:\n")

	// Render known vertices first, then any mapping-only vertices.
	seen := make(map[core.Vertex]bool, len(g.vertices))
	for _, v := range g.vertices {
		seen[v] = true
		writeIncidenceLine(&sb, v, g.edges[v])
	}
	var rest []core.Vertex
	for v := range g.edges {
		if !seen[v] {
			rest = append(rest, v)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Label < rest[j].Label })
	for _, v := range rest {
		writeIncidenceLine(&sb, v, g.edges[v])
	}

	return sb.String()
}
