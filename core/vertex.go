// SPDX-License-Identifier: MIT
// Package: adjset/core
//
// vertex.go — the Vertex identity primitive.

package core

// Vertex is a label-bearing identity node. Two vertices are equal iff their
// labels are equal; the struct is comparable and safe to use as a map key.
// The zero value (empty label) is the nil vertex and is rejected wherever a
// real vertex is required.
type Vertex struct {
	// Label uniquely identifies this Vertex.
	Label string
}

// NewVertex returns a Vertex with the given label.
// Complexity: O(1)
func NewVertex(label string) Vertex {
	return Vertex{Label: label}
}

// IsNil reports whether v is the nil (empty-label) vertex.
// Complexity: O(1)
func (v Vertex) IsNil() bool {
	return v.Label == ""
}

// String returns the vertex label.
func (v Vertex) String() string {
	return v.Label
}
