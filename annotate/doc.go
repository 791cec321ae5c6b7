// Package annotate decorates adjacency-set graphs with per-vertex and
// per-edge values.
//
// Annotated[V, E] is the frozen product: a validated graph plus two
// annotation maps keyed by vertex and edge identity. Builder[V, E] stages
// structure and annotations together, keeping them consistent: removing a
// vertex also drops the annotations of its incident edges.
//
// Shrinkable is the contraction-aware specialization: vertices carry
// component sets (which vertices were merged into them) and edges carry
// float64 weights. ContractEdge runs the structural contraction through the
// builder's single primitive and merges annotations in lock-step via its
// rewire hooks: the component of the merged vertex is the union of its
// parents' components, and every surviving edge's weight is the sum of the
// pre-contraction weights that collapsed onto it (absent values count as
// zero).
//
// Lookup policy: Annotated reports presence explicitly; ShrunkGraph applies
// the domain defaults — a vertex with no recorded component is its own
// singleton, an edge with no recorded weight weighs zero.
package annotate
