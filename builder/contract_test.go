// SPDX-License-Identifier: MIT
// Package builder_test — edge-contraction scenarios: identity, duplicate
// collapse, preconditions, hook lock-step, plan-first atomicity.

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/adjset/adjacency"
	"github.com/katalvlaran/adjset/builder"
	"github.com/katalvlaran/adjset/core"
)

// ContractSuite exercises Contract under various topologies.
type ContractSuite struct {
	suite.Suite
}

// edge is a suite-local helper: build an edge or fail.
func (s *ContractSuite) edge(u, v core.Vertex) core.Edge {
	e, err := core.New(u, v)
	s.Require().NoError(err)

	return e
}

// TestIdentity verifies the contraction-identity property: contracting
// {A,B} over vertices {A,B,C} with edges {A-B, B-C} yields vertices
// {AB, C} and the single edge {AB, C}.
func (s *ContractSuite) TestIdentity() {
	b := builder.New()
	ab := s.edge(vA, vB)
	bc := s.edge(vB, vC)
	b.AddEdge(ab).AddEdge(bc)

	merged, err := b.Contract(ab)
	s.Require().NoError(err)
	s.Require().Equal(core.NewVertex("AB"), merged)
	s.Require().NotEqual(vA, merged)
	s.Require().NotEqual(vB, merged)

	s.Require().Equal([]core.Vertex{core.NewVertex("AB"), vC}, b.Vertices())
	s.Require().Equal([]core.Edge{s.edge(merged, vC)}, b.Edges(merged))
	s.Require().Equal(1, b.EdgeCount())

	st := adjacency.NewStatus()
	_, ok := b.Build(st)
	s.Require().True(ok, "contracted structure must validate: %s", st)
}

// TestMergedLabelOrder verifies the canonical tie-break: the merged label
// concatenates endpoint labels in lexicographic order regardless of the
// order the edge was created with.
func (s *ContractSuite) TestMergedLabelOrder() {
	b := builder.New()
	ba := s.edge(vB, vA) // canonicalizes to {A,B}
	b.AddEdge(ba)

	merged, err := b.Contract(ba)
	s.Require().NoError(err)
	s.Require().Equal("AB", merged.Label)
}

// TestDuplicateCollapse verifies a triangle contracts to a single edge:
// both A and B neighbor C, and the two rewired edges collapse into one.
func (s *ContractSuite) TestDuplicateCollapse() {
	b := builder.New()
	ab := s.edge(vA, vB)
	b.AddEdge(ab).AddEdge(s.edge(vA, vC)).AddEdge(s.edge(vB, vC))

	merged, err := b.Contract(ab)
	s.Require().NoError(err)
	s.Require().Equal(1, b.EdgeCount(), "set semantics collapse the duplicate")
	s.Require().Equal([]core.Edge{s.edge(merged, vC)}, b.Edges(vC))
}

// TestMissingEndpoint verifies the precondition: both endpoints must be
// staged before contraction.
func (s *ContractSuite) TestMissingEndpoint() {
	b := builder.New()
	b.AddVertex(vA) // B never staged

	_, err := b.Contract(s.edge(vA, vB))
	s.Require().ErrorIs(err, builder.ErrVertexNotFound)
	s.Require().True(b.Contains(vA), "failed contraction must not mutate")
	s.Require().Equal(1, b.VertexCount())
}

// TestHooksLockStep verifies hooks observe every rewiring step with the old
// and replacement edges, in canonical order.
func (s *ContractSuite) TestHooksLockStep() {
	b := builder.New()
	ab := s.edge(vA, vB)
	ac := s.edge(vA, vC)
	bc := s.edge(vB, vC)
	bd := s.edge(vB, vD)
	b.AddEdge(ab).AddEdge(ac).AddEdge(bc).AddEdge(bd)

	type step struct{ old, fresh core.Edge }
	var steps []step
	merged, err := b.Contract(ab, func(old, fresh core.Edge) {
		steps = append(steps, step{old: old, fresh: fresh})
	})
	s.Require().NoError(err)

	abC := s.edge(merged, vC)
	abD := s.edge(merged, vD)
	s.Require().Equal([]step{
		{old: ac, fresh: abC},
		{old: bc, fresh: abC}, // same rewired edge: the collapsed duplicate
		{old: bd, fresh: abD},
	}, steps)
}

// TestLabelCollision verifies the planning guard: when a vertex already
// carries the merged label and neighbors an endpoint, contraction aborts
// with an edge-construction error before mutating anything.
func (s *ContractSuite) TestLabelCollision() {
	b := builder.New()
	ab := s.edge(vA, vB)
	vAB := core.NewVertex("AB")
	b.AddEdge(ab).AddEdge(s.edge(vA, vAB))

	_, err := b.Contract(ab)
	s.Require().ErrorIs(err, core.ErrSameVertex)
	s.Require().True(b.Contains(vA), "aborted contraction must leave the builder untouched")
	s.Require().True(b.Contains(vB))
	s.Require().Equal(2, b.EdgeCount())
}

// TestChained verifies repeated contraction shrinks a path to one vertex.
func (s *ContractSuite) TestChained() {
	b := builder.New()
	b.AddEdge(s.edge(vA, vB)).AddEdge(s.edge(vB, vC)).AddEdge(s.edge(vC, vD))

	m1, err := b.Contract(s.edge(vA, vB))
	s.Require().NoError(err)
	m2, err := b.Contract(s.edge(m1, vC))
	s.Require().NoError(err)
	m3, err := b.Contract(s.edge(m2, vD))
	s.Require().NoError(err)

	s.Require().Equal("ABCD", m3.Label)
	s.Require().Equal(1, b.VertexCount())
	s.Require().Equal(0, b.EdgeCount())
}

func TestContractSuite(t *testing.T) {
	suite.Run(t, new(ContractSuite))
}
