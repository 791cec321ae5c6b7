// SPDX-License-Identifier: MIT
// Package: adjset/adjacency
//
// status.go — the Status accumulator, Cause enum and VertexPair record.
//
// Lifecycle contract (strict):
//   • A Status is created empty, populated by exactly one Validate run and
//     read-only afterwards. Never reuse one across validation attempts.
//   • Record methods store immutable sorted copies; getters return fresh
//     slices (never nil), so callers cannot reach internal state.

package adjacency

import (
	"sort"
	"strings"

	"github.com/katalvlaran/adjset/core"
)

// Cause classifies one category of structural invalidity.
type Cause int

const (
	// CauseNullIncidence marks vertices whose incidence record is nil.
	CauseNullIncidence Cause = iota + 1

	// CauseMissingEndpoints marks vertices listing an edge that does not
	// include them as an endpoint.
	CauseMissingEndpoints

	// CauseAsymmetricPairs marks vertex pairs whose adjacency is one-sided.
	CauseAsymmetricPairs
)

// String names the cause for diagnostics.
func (c Cause) String() string {
	switch c {
	case CauseNullIncidence:
		return "NullIncidence"
	case CauseMissingEndpoints:
		return "MissingEndpoints"
	case CauseAsymmetricPairs:
		return "AsymmetricPairs"
	default:
		return "UnknownCause"
	}
}

// VertexPair reports one asymmetric adjacency: Listing's incidence holds an
// edge to Missing, but Missing's incidence does not hold it back.
type VertexPair struct {
	// Missing is the vertex whose incidence record lacks the edge.
	Missing core.Vertex

	// Listing is the vertex whose incidence record holds the edge.
	Listing core.Vertex
}

// Invert returns the pair with its positions swapped.
// Complexity: O(1)
func (p VertexPair) Invert() VertexPair {
	return VertexPair{Missing: p.Listing, Listing: p.Missing}
}

// String renders the pair as "(missing, listing)".
func (p VertexPair) String() string {
	return "(" + p.Missing.Label + ", " + p.Listing.Label + ")"
}

// Status accumulates the causes of a failed validation run together with the
// offending vertices and pairs. A fresh Status reports OK.
type Status struct {
	causes           map[Cause]struct{}
	nullIncidence    []core.Vertex
	missingEndpoints []core.Vertex
	asymmetricPairs  []VertexPair
}

// NewStatus returns an empty status with no recorded defects.
// Complexity: O(1)
func NewStatus() *Status {
	return &Status{causes: make(map[Cause]struct{})}
}

// RecordNullVertices stores the vertices found with nil incidence records.
// An empty input is a no-op returning false; a non-empty input stores a
// sorted copy, adds CauseNullIncidence, and returns true.
// Complexity: O(n log n)
func (s *Status) RecordNullVertices(vs []core.Vertex) bool {
	if len(vs) == 0 {
		return false
	}
	s.nullIncidence = sortedVertexCopy(vs)
	s.causes[CauseNullIncidence] = struct{}{}

	return true
}

// RecordMissingVertices stores the vertices whose incidence lists an edge
// not touching them. Same no-op/recorded contract as RecordNullVertices.
// Complexity: O(n log n)
func (s *Status) RecordMissingVertices(vs []core.Vertex) bool {
	if len(vs) == 0 {
		return false
	}
	s.missingEndpoints = sortedVertexCopy(vs)
	s.causes[CauseMissingEndpoints] = struct{}{}

	return true
}

// RecordAsymmetricPairs stores the one-sided adjacency pairs. Same
// no-op/recorded contract as RecordNullVertices.
// Complexity: O(n log n)
func (s *Status) RecordAsymmetricPairs(ps []VertexPair) bool {
	if len(ps) == 0 {
		return false
	}
	cp := make([]VertexPair, len(ps))
	copy(cp, ps)
	sortVertexPairs(cp)
	s.asymmetricPairs = cp
	s.causes[CauseAsymmetricPairs] = struct{}{}

	return true
}

// OK reports whether no cause has ever been recorded on this status.
// Complexity: O(1)
func (s *Status) OK() bool {
	return len(s.causes) == 0
}

// Causes returns the recorded causes in ascending order; empty when OK.
// Complexity: O(1) — at most three causes.
func (s *Status) Causes() []Cause {
	out := make([]Cause, 0, len(s.causes))
	for c := range s.causes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NullIncidenceVertices returns the vertices recorded for CauseNullIncidence.
// Absence of the cause yields an empty slice, never nil semantics surprises.
// Complexity: O(n)
func (s *Status) NullIncidenceVertices() []core.Vertex {
	return append([]core.Vertex{}, s.nullIncidence...)
}

// MissingEndpointVertices returns the vertices recorded for
// CauseMissingEndpoints; empty when the cause is absent.
// Complexity: O(n)
func (s *Status) MissingEndpointVertices() []core.Vertex {
	return append([]core.Vertex{}, s.missingEndpoints...)
}

// AsymmetricPairs returns the pairs recorded for CauseAsymmetricPairs;
// empty when the cause is absent.
// Complexity: O(n)
func (s *Status) AsymmetricPairs() []VertexPair {
	return append([]VertexPair{}, s.asymmetricPairs...)
}

// String renders the status for diagnostics: "ok" or the recorded causes
// with their offending entities.
func (s *Status) String() string {
	if s.OK() {
		return "ok"
	}

	var sb strings.Builder
	for i, c := range s.Causes() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(c.String())
		sb.WriteString(": ")
		switch c {
		case CauseNullIncidence:
			writeVertexList(&sb, s.nullIncidence)
		case CauseMissingEndpoints:
			writeVertexList(&sb, s.missingEndpoints)
		case CauseAsymmetricPairs:
			for j, p := range s.asymmetricPairs {
				if j > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(p.String())
			}
		}
	}

	return sb.String()
}

// sortedVertexCopy returns a label-sorted copy of vs.
func sortedVertexCopy(vs []core.Vertex) []core.Vertex {
	cp := make([]core.Vertex, len(vs))
	copy(cp, vs)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Label < cp[j].Label })

	return cp
}

// sortVertexPairs orders pairs by (Missing, Listing) labels in place.
func sortVertexPairs(ps []VertexPair) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Missing.Label != ps[j].Missing.Label {
			return ps[i].Missing.Label < ps[j].Missing.Label
		}

		return ps[i].Listing.Label < ps[j].Listing.Label
	})
}

// writeVertexList appends "A, B, C" to sb.
func writeVertexList(sb *strings.Builder, vs []core.Vertex) {
	for i, v := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.Label)
	}
}
