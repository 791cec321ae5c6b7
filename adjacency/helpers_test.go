// SPDX-License-Identifier: MIT
// Package adjacency_test — shared fixtures for the validation pipeline tests.

package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjset/core"
)

// Common vertices used across adjacency tests.
var (
	vA = core.NewVertex("A")
	vB = core.NewVertex("B")
	vC = core.NewVertex("C")
	vD = core.NewVertex("D")
)

// mustEdge builds an edge or fails the test.
func mustEdge(t *testing.T, u, v core.Vertex) core.Edge {
	t.Helper()
	e, err := core.New(u, v)
	require.NoError(t, err, "New(%s, %s)", u, v)

	return e
}

// mustEdgeSet builds an edge set or fails the test.
func mustEdgeSet(t *testing.T, edges ...core.Edge) *core.EdgeSet {
	t.Helper()
	set, err := core.NewEdgeSet(edges...)
	require.NoError(t, err)

	return set
}

// triangleMapping returns the sound mapping of the path A—B—C:
// A holds {A,B}; B holds {A,B} and {B,C}; C holds {B,C}.
func triangleMapping(t *testing.T) map[core.Vertex]*core.EdgeSet {
	t.Helper()
	ab := mustEdge(t, vA, vB)
	bc := mustEdge(t, vB, vC)

	return map[core.Vertex]*core.EdgeSet{
		vA: mustEdgeSet(t, ab),
		vB: mustEdgeSet(t, ab, bc),
		vC: mustEdgeSet(t, bc),
	}
}
