// SPDX-License-Identifier: MIT
// Package: adjset/annotate
//
// annotated.go — the generic annotated graph and its staging builder.
//
// Concurrency:
//   - Annotated is immutable after Build; Builder is single-owner mutable.

package annotate

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/adjset/adjacency"
	"github.com/katalvlaran/adjset/builder"
	"github.com/katalvlaran/adjset/core"
)

// Annotated is a frozen graph whose vertices and edges carry values of
// types V and E. It implements adjacency.Graph, so it can stand in wherever
// a read-only structural graph is consumed.
type Annotated[V, E any] struct {
	sets      *adjacency.AdjacencySets
	vertexAnn map[core.Vertex]V
	edgeAnn   map[core.Edge]E
}

// Vertices returns all vertices in label order.
func (a *Annotated[V, E]) Vertices() []core.Vertex {
	return a.sets.Vertices()
}

// Edges returns a copy of the vertex → incidence mapping.
func (a *Annotated[V, E]) Edges() map[core.Vertex]*core.EdgeSet {
	return a.sets.Edges()
}

// VertexProperty returns v's annotation; false when none is recorded.
// Complexity: O(1)
func (a *Annotated[V, E]) VertexProperty(v core.Vertex) (V, bool) {
	ann, ok := a.vertexAnn[v]

	return ann, ok
}

// EdgeProperty returns e's annotation; false when none is recorded.
// Complexity: O(1)
func (a *Annotated[V, E]) EdgeProperty(e core.Edge) (E, bool) {
	ann, ok := a.edgeAnn[e]

	return ann, ok
}

// String renders the underlying structural dump.
func (a *Annotated[V, E]) String() string {
	return a.sets.String()
}

// Builder stages an annotated graph: a structural builder plus the two
// annotation maps, mutated together so they cannot drift apart.
type Builder[V, E any] struct {
	structure *builder.Builder
	vertexAnn map[core.Vertex]V
	edgeAnn   map[core.Edge]E
}

// NewBuilder returns an empty annotated-graph builder.
// Complexity: O(1)
func NewBuilder[V, E any]() *Builder[V, E] {
	return &Builder[V, E]{
		structure: builder.New(),
		vertexAnn: make(map[core.Vertex]V),
		edgeAnn:   make(map[core.Edge]E),
	}
}

// AddVertex stages v with its annotation; re-adding overwrites the
// annotation only.
// Complexity: O(1)
func (b *Builder[V, E]) AddVertex(v core.Vertex, annotation V) *Builder[V, E] {
	if v.IsNil() {
		return b
	}
	b.structure.AddVertex(v)
	b.vertexAnn[v] = annotation

	return b
}

// AddEdge stages e with its annotation, auto-creating endpoint vertices
// (without vertex annotations).
// Complexity: O(1)
func (b *Builder[V, E]) AddEdge(e core.Edge, annotation E) *Builder[V, E] {
	if e.IsNil() {
		return b
	}
	b.structure.AddEdge(e)
	b.edgeAnn[e] = annotation

	return b
}

// RemoveEdge unstages e and its annotation; safe no-op when absent.
// Complexity: O(1)
func (b *Builder[V, E]) RemoveEdge(e core.Edge) *Builder[V, E] {
	b.structure.RemoveEdge(e)
	delete(b.edgeAnn, e)

	return b
}

// RemoveVertex unstages v, the annotations of every edge incident on v,
// and v's own annotation; safe no-op when absent.
// Complexity: O(deg(v))
func (b *Builder[V, E]) RemoveVertex(v core.Vertex) *Builder[V, E] {
	for _, e := range b.structure.Edges(v) {
		delete(b.edgeAnn, e)
	}
	b.structure.RemoveVertex(v)
	delete(b.vertexAnn, v)

	return b
}

// RemoveVertices applies RemoveVertex to each member.
// Complexity: O(Σ deg(v))
func (b *Builder[V, E]) RemoveVertices(vs []core.Vertex) *Builder[V, E] {
	for _, v := range vs {
		b.RemoveVertex(v)
	}

	return b
}

// Build freezes the staged structure through the validation pipeline and
// pairs it with copies of the annotation maps. A defective structure yields
// a *adjacency.ValidationError (wrapped with context) carrying the
// populated Status.
// Complexity: O(E log E)
func (b *Builder[V, E]) Build() (*Annotated[V, E], error) {
	st := adjacency.NewStatus()
	sets, ok := b.structure.Build(st)
	if !ok {
		return nil, errors.Wrap(&adjacency.ValidationError{Status: st}, "Build")
	}

	vertexAnn := make(map[core.Vertex]V, len(b.vertexAnn))
	for v, ann := range b.vertexAnn {
		vertexAnn[v] = ann
	}
	edgeAnn := make(map[core.Edge]E, len(b.edgeAnn))
	for e, ann := range b.edgeAnn {
		edgeAnn[e] = ann
	}

	return &Annotated[V, E]{sets: sets, vertexAnn: vertexAnn, edgeAnn: edgeAnn}, nil
}
