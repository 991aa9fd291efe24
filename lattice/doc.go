// Package lattice builds and stores Hasse diagrams of closure systems.
//
// A Lattice is a directed graph whose nodes are closed faces, decorated with
// a face and a rank, and whose edges are covering relations pointing from
// lower to higher rank. An inverse rank map answers "which nodes have rank
// r" either as contiguous id ranges (Sequential) or as explicit lists
// (Nonsequential).
//
// Construction is generic over three strategies:
//
//   - ClosureOperator[C, D] enumerates closed sets: the closure of the empty
//     set and, for a closed set, the minimal closed sets strictly above it.
//     It also owns the face map deduplicating closed sets.
//
//   - Decorator[C, D] turns closure data into node decorations.
//
//   - Cut[D] filters decorations (rank bounds, avoided elements, ...).
//
// Build runs a breadth-first search from the closure of the empty set;
// Extend continues from an existing lattice. WithDual builds top-down, with
// edges reversed in storage so that they still point upwards in rank.
//
// Builds are single-goroutine. Every build emits a span and metrics through
// the global OpenTelemetry providers and logs via log15.
//
// Lattices persist as Record values (YAML via ToRecord / FromRecord) with
// the ADJACENCY, DECORATION, INVERSE_RANK_MAP, TOP_NODE and BOTTOM_NODE
// properties.
package lattice
