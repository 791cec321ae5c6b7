// SPDX-License-Identifier: MIT
// Package annotate_test — annotated builder lifecycle and freeze contracts.

package annotate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjset/annotate"
	"github.com/katalvlaran/adjset/core"
)

var (
	vA = core.NewVertex("A")
	vB = core.NewVertex("B")
	vC = core.NewVertex("C")
)

// mustEdge builds an edge or fails the test.
func mustEdge(t *testing.T, u, v core.Vertex) core.Edge {
	t.Helper()
	e, err := core.New(u, v)
	require.NoError(t, err)

	return e
}

// TestBuilder_BuildAndLookup verifies staged annotations survive the freeze
// and lookups report presence explicitly.
func TestBuilder_BuildAndLookup(t *testing.T) {
	ab := mustEdge(t, vA, vB)

	g, err := annotate.NewBuilder[string, int]().
		AddVertex(vA, "alpha").
		AddVertex(vB, "beta").
		AddEdge(ab, 42).
		Build()
	require.NoError(t, err)

	require.Equal(t, []core.Vertex{vA, vB}, g.Vertices())

	ann, ok := g.VertexProperty(vA)
	require.True(t, ok)
	require.Equal(t, "alpha", ann)

	w, ok := g.EdgeProperty(ab)
	require.True(t, ok)
	require.Equal(t, 42, w)

	_, ok = g.VertexProperty(vC)
	require.False(t, ok, "unrecorded annotation reports absence")
}

// TestBuilder_AutoCreatedEndpointHasNoAnnotation verifies AddEdge creates
// structure without fabricating vertex annotations.
func TestBuilder_AutoCreatedEndpointHasNoAnnotation(t *testing.T) {
	g, err := annotate.NewBuilder[string, int]().
		AddEdge(mustEdge(t, vA, vB), 1).
		Build()
	require.NoError(t, err)

	_, ok := g.VertexProperty(vA)
	require.False(t, ok)
}

// TestBuilder_RemoveVertexDropsEdgeAnnotations verifies annotation and
// structure stay consistent through removal.
func TestBuilder_RemoveVertexDropsEdgeAnnotations(t *testing.T) {
	ab := mustEdge(t, vA, vB)
	bc := mustEdge(t, vB, vC)

	b := annotate.NewBuilder[string, int]().
		AddEdge(ab, 1).
		AddEdge(bc, 2)
	b.RemoveVertex(vB)

	g, err := b.Build()
	require.NoError(t, err)

	_, ok := g.EdgeProperty(ab)
	require.False(t, ok, "annotations of B's incident edges must be dropped")
	_, ok = g.EdgeProperty(bc)
	require.False(t, ok)
	_, ok = g.VertexProperty(vB)
	require.False(t, ok)
}

// TestBuilder_FluentIsolation verifies the frozen product owns its
// annotation maps: later staging does not leak into it.
func TestBuilder_FluentIsolation(t *testing.T) {
	b := annotate.NewBuilder[string, int]().AddVertex(vA, "alpha")

	g, err := b.Build()
	require.NoError(t, err)

	b.AddVertex(vA, "mutated")
	ann, ok := g.VertexProperty(vA)
	require.True(t, ok)
	require.Equal(t, "alpha", ann)
}
