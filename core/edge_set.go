// SPDX-License-Identifier: MIT
// Package: adjset/core
//
// edge_set.go — the immutable EdgeSet wrapper.
//
// Determinism:
//   - Backed by an ordered tree keyed on Edge.Compare, so Edges() and
//     String() always enumerate in canonical order.
// Concurrency:
//   - Immutable after construction; freely shareable for concurrent reads.

package core

import (
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// edgeComparator adapts Edge.Compare to the gods comparator contract.
func edgeComparator(a, b interface{}) int {
	return a.(Edge).Compare(b.(Edge))
}

// EdgeSet is an immutable set of edges, typically the incidence set of one
// vertex. Construction validates every member eagerly; a nil *EdgeSet is
// the explicit "no incidence record" marker used by the validators.
type EdgeSet struct {
	tree *redblacktree.Tree // Edge → struct{}, ordered by Edge.Compare
}

// NewEdgeSet builds an EdgeSet from the given edges. Duplicates collapse.
// It fails with ErrNilEdge if any member is the zero Edge.
// Complexity: O(n log n)
func NewEdgeSet(edges ...Edge) (*EdgeSet, error) {
	tree := redblacktree.NewWith(edgeComparator)
	for _, e := range edges {
		if e.IsNil() {
			return nil, ErrNilEdge
		}
		tree.Put(e, struct{}{})
	}

	return &EdgeSet{tree: tree}, nil
}

// Contains reports whether e is a member of the set.
// Complexity: O(log n)
func (s *EdgeSet) Contains(e Edge) bool {
	_, found := s.tree.Get(e)

	return found
}

// Len returns the number of edges in the set.
// Complexity: O(1)
func (s *EdgeSet) Len() int {
	return s.tree.Size()
}

// Edges returns a fresh slice of the members in canonical order. Mutating
// the returned slice does not affect the set.
// Complexity: O(n)
func (s *EdgeSet) Edges() []Edge {
	keys := s.tree.Keys()
	out := make([]Edge, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.(Edge))
	}

	return out
}

// String renders the set as "[(a --- b), (b --- c)]".
func (s *EdgeSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range s.Edges() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
