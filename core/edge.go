// SPDX-License-Identifier: MIT
// Package: adjset/core
//
// edge.go — the unordered Edge primitive.
//
// Determinism:
//   - Endpoints are stored canonically (lexicographic by label), so
//     New(u, v) == New(v, u) and Edge values compare with plain ==.
// Concurrency:
//   - Edge is an immutable value; freely shareable.

package core

import "strings"

// Edge is an unordered pair of two distinct vertices. The zero value is the
// nil edge; real edges are obtained only through New, which canonicalizes
// endpoint order so equality and map-key hashing are order-independent.
type Edge struct {
	lo, hi Vertex // canonical: lo.Label < hi.Label
}

// New creates the edge {u, v}.
//
// It fails with a *EdgeError when either endpoint is the nil vertex
// (ErrNilVertex, carrying the non-nil endpoint, or the nil vertex if both
// are nil) or when the endpoints are equal (ErrSameVertex, carrying u).
//
// Complexity: O(1)
func New(u, v Vertex) (Edge, error) {
	if u.IsNil() || v.IsNil() {
		offending := u
		if u.IsNil() {
			offending = v // the non-nil one, or nil when both are
		}

		return Edge{}, &EdgeError{Sentinel: ErrNilVertex, Vertex: offending}
	}
	if u == v {
		return Edge{}, &EdgeError{Sentinel: ErrSameVertex, Vertex: u}
	}

	// Canonicalize so {u,v} and {v,u} are the same value.
	if v.Label < u.Label {
		u, v = v, u
	}

	return Edge{lo: u, hi: v}, nil
}

// IsNil reports whether e is the zero (invalid) edge.
// Complexity: O(1)
func (e Edge) IsNil() bool {
	return e == Edge{}
}

// Endpoints returns both endpoints in canonical order.
// Complexity: O(1)
func (e Edge) Endpoints() (Vertex, Vertex) {
	return e.lo, e.hi
}

// Has reports whether z is an endpoint of e.
// Complexity: O(1)
func (e Edge) Has(z Vertex) bool {
	return z == e.lo || z == e.hi
}

// Neighbor returns the endpoint opposite z. The second return is false when
// z is not an endpoint of e.
// Complexity: O(1)
func (e Edge) Neighbor(z Vertex) (Vertex, bool) {
	switch z {
	case e.lo:
		return e.hi, true
	case e.hi:
		return e.lo, true
	default:
		return Vertex{}, false
	}
}

// NeighborOutside returns the endpoint of e that is absent from the given
// vertex set, but only when exactly one endpoint is absent. Zero or two
// absent endpoints yield false: the edge has no unique outside neighbor.
// This is the tie-break used when rewiring edges during contraction.
// Complexity: O(1)
func (e Edge) NeighborOutside(in map[Vertex]bool) (Vertex, bool) {
	loIn, hiIn := in[e.lo], in[e.hi]
	switch {
	case loIn && !hiIn:
		return e.hi, true
	case hiIn && !loIn:
		return e.lo, true
	default:
		return Vertex{}, false
	}
}

// Compare orders edges canonically: by the low endpoint label, then by the
// high one. Used for deterministic iteration and as the EdgeSet comparator.
// Complexity: O(len(labels))
func (e Edge) Compare(o Edge) int {
	if c := strings.Compare(e.lo.Label, o.lo.Label); c != 0 {
		return c
	}

	return strings.Compare(e.hi.Label, o.hi.Label)
}

// String renders the edge as "(lo --- hi)".
func (e Edge) String() string {
	return "(" + e.lo.Label + " --- " + e.hi.Label + ")"
}
