// Package closure implements closure operators for the lattice builder.
//
// Basic is the closure system of a facet incidence matrix: a set of ground
// elements is closed iff it is the intersection of the facets containing it.
// Its closure data carries the dual face (the facets containing the face)
// and computes the primal face on demand.
//
// ClosuresAbove enumerates the minimal closed sets strictly above a closed
// set H by the Kaibel–Pfetsch test: for every candidate v outside H the
// closure of H ∪ {v} is formed, and it is minimal iff it contains no other
// candidate still considered minimal. A candidate whose closure is not
// minimal is dropped from the pool, so each cover is reported once. Closures
// equal to the whole ground set are never reported; that face is the role
// of the builder's artificial node.
package closure
