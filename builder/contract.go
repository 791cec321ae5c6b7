// SPDX-License-Identifier: MIT
// Package: adjset/builder
//
// contract.go — edge contraction, the core structural mutation.
//
// Determinism:
//   - The merged label concatenates the endpoint labels in canonical
//     (lexicographic) order, and hooks fire in canonical edge order.
// Atomicity:
//   - The rewiring plan is computed and checked before any mutation, so a
//     failed contraction leaves the builder untouched.

package builder

import (
	"fmt"

	"github.com/katalvlaran/adjset/core"
)

// RewireFunc observes one contraction rewiring step: old is the edge being
// detached from a merged endpoint, rewired is its replacement anchored at
// the merged vertex. When two old edges share an outside neighbor they are
// reported with the same rewired edge, which collapses to a single staged
// edge. Annotation layers use this hook to combine values in lock-step with
// the structural mutation.
type RewireFunc func(old, rewired core.Edge)

// rewiring is one planned step: detach old, attach fresh at the merged vertex.
type rewiring struct {
	old   core.Edge
	fresh core.Edge
}

// Contract merges the two endpoints of e into a single vertex:
//
//  1. Both endpoints must already be staged, else ErrVertexNotFound.
//  2. The merged vertex's label is lo.Label + hi.Label, lo and hi being e's
//     endpoints in canonical order — the documented tie-break that makes
//     contraction deterministic.
//  3. Every edge incident on either endpoint (except e) is re-anchored to
//     the merged vertex and its outside neighbor; edges that shared an
//     outside neighbor collapse into one, since incidence is a set.
//  4. e itself disappears with its endpoints.
//
// The returned vertex is the merged one, so callers never re-derive the
// label rule. Hooks fire once per re-anchored edge, in canonical order.
//
// An edge-construction failure while planning (possible only when a vertex
// bearing the merged label already neighbors one of the endpoints) aborts
// before any mutation.
//
// Complexity: O((deg(u)+deg(v)) log(deg(u)+deg(v)))
func (b *Builder) Contract(e core.Edge, hooks ...RewireFunc) (core.Vertex, error) {
	u, v := e.Endpoints()
	if !b.Contains(u) || !b.Contains(v) {
		return core.Vertex{}, fmt.Errorf("Contract %s: %w", e, ErrVertexNotFound)
	}

	merged := core.NewVertex(u.Label + v.Label)
	inside := map[core.Vertex]bool{u: true, v: true}

	// Plan the rewiring first: any construction failure aborts untouched.
	incident := b.IncidentEdges(e)
	plan := make([]rewiring, 0, len(incident))
	for _, old := range incident {
		outside, ok := old.NeighborOutside(inside)
		if !ok {
			continue // both endpoints are being merged away; nothing to re-anchor
		}
		fresh, err := core.New(merged, outside)
		if err != nil {
			return core.Vertex{}, fmt.Errorf("Contract %s: rewire %s: %w", e, old, err)
		}
		plan = append(plan, rewiring{old: old, fresh: fresh})
	}

	// Execute: removing the endpoints also unregisters e and every incident
	// edge from the neighbors' sets.
	b.RemoveVertex(u)
	b.RemoveVertex(v)
	b.AddVertex(merged)
	for _, step := range plan {
		b.AddEdge(step.fresh)
		for _, hook := range hooks {
			hook(step.old, step.fresh)
		}
	}

	return merged, nil
}
