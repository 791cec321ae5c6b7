// SPDX-License-Identifier: MIT
// Package: adjset/core
//
// errors.go — sentinel errors and the EdgeError type.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed for branching.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • *EdgeError wraps a sentinel and carries the offending vertex; use
//     errors.As to recover the payload, errors.Is to classify.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.

package core

import (
	"errors"
	"fmt"
)

// ErrNilVertex indicates an edge endpoint was the nil (empty-label) vertex.
// Usage: if errors.Is(err, ErrNilVertex) { /* reject input */ }.
var ErrNilVertex = errors.New("core: nil vertex")

// ErrSameVertex indicates both edge endpoints were the same vertex; the
// library models simple graphs, so self-loops are rejected at construction.
// Usage: if errors.Is(err, ErrSameVertex) { /* reject self-loop */ }.
var ErrSameVertex = errors.New("core: edge endpoints must be distinct")

// ErrNilEdge indicates the zero Edge value was offered to an EdgeSet.
// A zero Edge can only arise from ignoring the error of New; rejecting it
// eagerly keeps every stored edge valid.
var ErrNilEdge = errors.New("core: nil edge")

// EdgeError reports a failed edge construction. It carries the offending
// vertex: the non-nil endpoint for ErrNilVertex (or the nil vertex when both
// endpoints were nil), the duplicated endpoint for ErrSameVertex.
type EdgeError struct {
	// Sentinel classifies the failure: ErrNilVertex or ErrSameVertex.
	Sentinel error

	// Vertex is the offending endpoint, when identifiable.
	Vertex Vertex
}

// Error renders the failure with its offending vertex.
func (e *EdgeError) Error() string {
	if e.Vertex.IsNil() {
		return e.Sentinel.Error()
	}

	return fmt.Sprintf("%s: %s", e.Sentinel.Error(), e.Vertex.Label)
}

// Unwrap exposes the sentinel so errors.Is(err, ErrNilVertex) etc. work.
func (e *EdgeError) Unwrap() error {
	return e.Sentinel
}
