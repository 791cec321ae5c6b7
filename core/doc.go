// Package core defines the identity primitives of an adjacency-set graph:
// Vertex, Edge and EdgeSet.
//
// A Vertex is identified by its label. An Edge is an unordered pair of two
// distinct, non-nil vertices: New(u, v) and New(v, u) produce the same value,
// and Edge values are comparable, so they can key maps directly. An EdgeSet
// is an immutable, ordered collection of edges validated at construction.
//
// Canonical order: every Edge stores its endpoints lexicographically by
// label. All iteration the package exposes follows that order, which makes
// renderings and downstream reports deterministic.
//
// Errors:
//
//	ErrNilVertex  - an endpoint is the nil (empty-label) vertex.
//	ErrSameVertex - both endpoints are the same vertex.
//	ErrNilEdge    - an edge set was given the zero Edge value.
//
// Edge construction failures are *EdgeError values; they unwrap to the
// sentinels above and carry the offending vertex when one is identifiable.
package core
