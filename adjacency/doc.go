// Package adjacency implements the validation pipeline and the frozen
// adjacency-set graph representation.
//
// The input shape everywhere is map[core.Vertex]*core.EdgeSet: each vertex
// maps to its incidence record, and a nil *core.EdgeSet value is the explicit
// "record absent" marker (distinct from a present-but-empty set).
//
// Three independent checkers each scan one defect category:
//
//	NullIncidence    — vertices whose incidence record is nil.
//	MissingEndpoints — vertices listing an edge that does not include them.
//	AsymmetricPairs  — u lists {u,v} but v's record does not list it back.
//
// Validate is the barricade: it runs all three exhaustively (never
// short-circuiting) and records every non-empty result into a Status.
// A single pass therefore reports every category of defect at once.
//
// AdjacencySets.From is the single admission point for frozen graphs: it
// validates the mapping and either returns an immutable graph or leaves the
// diagnostics in the Status for targeted repair. No AdjacencySets value can
// exist in a structurally invalid state.
//
// Errors:
//
//	ErrInvalidGraph - a validated constructor rejected its input; the
//	                  returned *ValidationError carries the populated Status.
package adjacency
