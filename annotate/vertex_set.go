// SPDX-License-Identifier: MIT
// Package: adjset/annotate
//
// vertex_set.go — the small vertex-set value used for component annotations.

package annotate

import (
	"sort"
	"strings"

	"github.com/katalvlaran/adjset/core"
)

// VertexSet is an unordered set of vertices, used to annotate a merged
// vertex with the original vertices it absorbed.
type VertexSet map[core.Vertex]struct{}

// Singleton returns the set {v}.
// Complexity: O(1)
func Singleton(v core.Vertex) VertexSet {
	return VertexSet{v: {}}
}

// Contains reports membership. O(1).
func (s VertexSet) Contains(v core.Vertex) bool {
	_, ok := s[v]

	return ok
}

// Len returns the number of members. O(1).
func (s VertexSet) Len() int {
	return len(s)
}

// Union returns a fresh set holding every member of s and o.
// Complexity: O(len(s) + len(o))
func (s VertexSet) Union(o VertexSet) VertexSet {
	out := make(VertexSet, len(s)+len(o))
	for v := range s {
		out[v] = struct{}{}
	}
	for v := range o {
		out[v] = struct{}{}
	}

	return out
}

// Vertices returns the members in label order (fresh slice).
// Complexity: O(n log n)
func (s VertexSet) Vertices() []core.Vertex {
	out := make([]core.Vertex, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })

	return out
}

// String renders the set as "{A, B}".
func (s VertexSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range s.Vertices() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.Label)
	}
	sb.WriteByte('}')

	return sb.String()
}
