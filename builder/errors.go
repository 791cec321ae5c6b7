// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w wrapping at the call site.

package builder

import "errors"

// ErrVertexNotFound indicates a contraction referenced an edge whose
// endpoints are not both present in the builder. This is a caller bug:
// contraction requires both endpoints to already exist.
// Usage: if errors.Is(err, ErrVertexNotFound) { /* add the vertices first */ }.
var ErrVertexNotFound = errors.New("builder: vertex not found")
