// Package builder provides the mutable staging area for adjacency-set
// graphs: add and remove vertices and edges, query incidence, contract
// edges, then freeze the result through the validation pipeline.
//
// The builder maintains adjacency incrementally and keeps it consistent
// across every operation: adding an edge registers it with both endpoints,
// removing a vertex unregisters its edges from every neighbor. Mutators are
// fluent (they return the builder) and removal is always a safe no-op when
// the target is absent.
//
// Contract is the single structural contraction primitive. Annotation
// layers observe it in lock-step through RewireFunc hooks instead of
// re-implementing the rewiring, so the structural and annotated paths
// cannot diverge.
//
// Build snapshots the incidence sets and delegates to adjacency.From: a
// defective structure produces no graph and leaves the diagnostics in the
// Status, with the builder still mutable for targeted repair and retry.
//
// A Builder is an exclusively-owned staging object: it is not safe for
// concurrent mutation. The frozen product is immutable and freely
// shareable.
//
// Errors:
//
//	ErrVertexNotFound - Contract was asked to merge an edge whose
//	                    endpoints are not both present in the builder.
package builder
