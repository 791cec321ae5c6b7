// Package adjset models undirected graphs as validated adjacency sets:
// every vertex maps to the set of edges incident on it, and no graph value
// can exist in a structurally broken state.
//
// 🚀 What is adjset?
//
//	A small, strict library for building adjacency-set graphs safely:
//		• Core primitives: vertices, order-independent edges, immutable edge sets
//		• Validation pipeline: null incidence, missing endpoints, asymmetric pairs
//		• Status reporting: every defect is recorded, nothing short-circuits
//		• Mutable builder: add/remove vertices & edges, contract edges, freeze
//		• Annotation overlay: per-vertex / per-edge values that merge under contraction
//
// ✨ Why choose adjset?
//
//   - Validated by construction – a frozen graph has passed every checker
//   - Deterministic – canonical endpoint order, sorted iteration everywhere
//   - Recoverable invalidity – failed builds report causes, they don't throw
//   - Pure Go core – the only runtime deps are small collection/error helpers
//
// Everything is organized under four subpackages:
//
//	core/      — Vertex, Edge and EdgeSet primitives with strict construction
//	adjacency/ — the validators, the Status accumulator and the frozen AdjacencySets
//	builder/   — the mutable staging area with edge contraction
//	annotate/  — generic annotated graphs and the shrinkable (weight-merging) variant
//
// Quick ASCII example:
//
//	    A───B
//	     \ /
//	      C
//
//	contracting A───B yields the two-vertex graph AB───C; the weights of
//	A───C and B───C sum onto the single surviving edge.
//
//	go get github.com/katalvlaran/adjset
package adjset
