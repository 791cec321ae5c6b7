// SPDX-License-Identifier: MIT
// Package: adjset/annotate
//
// shrinkable.go — the contraction-aware annotated graph: component sets on
// vertices, summable float64 weights on edges.
//
// Determinism:
//   - Weight merging rides the structural builder's rewire hooks, which
//     fire in canonical edge order; summation is order-independent anyway.

package annotate

import (
	"fmt"

	"github.com/katalvlaran/adjset/builder"
	"github.com/katalvlaran/adjset/core"
)

// Shrinkable stages a graph whose vertices carry component sets and whose
// edges carry weights, and whose contraction merges both: components union,
// weights sum. The structural work is delegated to the one contraction
// primitive in package builder, so the plain and annotated paths share it.
type Shrinkable struct {
	Builder[VertexSet, float64]
}

// NewShrinkable returns an empty shrinkable-graph builder.
// Complexity: O(1)
func NewShrinkable() *Shrinkable {
	return &Shrinkable{Builder: Builder[VertexSet, float64]{
		structure: builder.New(),
		vertexAnn: make(map[core.Vertex]VertexSet),
		edgeAnn:   make(map[core.Edge]float64),
	}}
}

// componentOf returns v's recorded component, defaulting to the singleton
// of v itself when none (or an empty one) is recorded.
func (s *Shrinkable) componentOf(v core.Vertex) VertexSet {
	if comp, ok := s.vertexAnn[v]; ok && comp.Len() > 0 {
		return comp
	}

	return Singleton(v)
}

// ContractEdge contracts e = {u, v} structurally and merges annotations in
// lock-step, consuming the pre-contraction values before they are dropped:
//
//   - the merged vertex's component is the union of u's and v's components
//     (each defaulting to its own singleton);
//   - every edge ending up incident on the merged vertex weighs the sum of
//     the pre-contraction weights of the edges that collapsed onto it —
//     u's edge to that neighbor, v's edge to that neighbor, each counting
//     zero when absent;
//   - u's, v's and e's own annotations are dropped after the merge.
//
// Both endpoints must already be staged, else builder.ErrVertexNotFound.
// Returns the merged vertex.
// Complexity: O((deg(u)+deg(v)) log(deg(u)+deg(v)))
func (s *Shrinkable) ContractEdge(e core.Edge) (core.Vertex, error) {
	u, v := e.Endpoints()
	if !s.structure.Contains(u) || !s.structure.Contains(v) {
		return core.Vertex{}, fmt.Errorf("ContractEdge %s: %w", e, builder.ErrVertexNotFound)
	}

	// Capture the merged component before the parents' annotations go away.
	component := s.componentOf(u).Union(s.componentOf(v))

	merged, err := s.structure.Contract(e, func(old, rewired core.Edge) {
		// Each hook consumes one pre-contraction weight; collapsed
		// duplicates hit the same rewired edge and accumulate.
		s.edgeAnn[rewired] += s.edgeAnn[old]
		delete(s.edgeAnn, old)
	})
	if err != nil {
		return core.Vertex{}, fmt.Errorf("ContractEdge: %w", err)
	}

	s.vertexAnn[merged] = component
	delete(s.vertexAnn, u)
	delete(s.vertexAnn, v)
	delete(s.edgeAnn, e)

	return merged, nil
}

// Build freezes the staged graph into a ShrunkGraph.
func (s *Shrinkable) Build() (*ShrunkGraph, error) {
	frozen, err := s.Builder.Build()
	if err != nil {
		return nil, err
	}

	return &ShrunkGraph{Annotated: frozen}, nil
}

// ShrunkGraph is the frozen product of a Shrinkable. On top of the explicit
// presence-reporting lookups it applies the domain defaults.
type ShrunkGraph struct {
	*Annotated[VertexSet, float64]
}

// Component returns v's component set, defaulting to the singleton of v
// when none was recorded.
// Complexity: O(1)
func (g *ShrunkGraph) Component(v core.Vertex) VertexSet {
	if comp, ok := g.VertexProperty(v); ok && comp.Len() > 0 {
		return comp
	}

	return Singleton(v)
}

// Weight returns e's weight, defaulting to zero when none was recorded.
// Complexity: O(1)
func (g *ShrunkGraph) Weight(e core.Edge) float64 {
	w, _ := g.EdgeProperty(e)

	return w
}
