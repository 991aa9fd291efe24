// Package bfs provides a breadth-first iterator over a core.Graph with a
// pluggable Visitor, plus the algorithms built directly on it.
//
// What
//
//   - Iterator: a FIFO of discovered-but-unexpanded nodes. Current is the
//     queue front; Next expands it and pops it; Skip pops without expanding.
//   - Reset(n) clears the visitor and seeds n; Restart(n) keeps what was
//     discovered, so repeated Restarts sweep all components.
//     UndiscoveredNodes tells when a sweep is complete.
//   - Visitor decides whether an edge discovers its target. NodeVisitor keeps
//     a visited bitset; DistanceVisitor stores hop distances; TreeVisitor
//     stores BFS-tree parents.
//   - Diameter and Distances.
//
// Determinism
//
//	Neighbours come from core.Graph in ascending id order, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E) per drained traversal.
//   - Memory: O(V) for the queue and the visitor state.
//
// Errors
//
//   - ErrGraphNil, ErrVisitorNil  from New.
//   - ErrStartNode                from Reset/Restart on a missing node.
//   - ErrDisconnected             from Diameter.
//   - ctx.Err()                   via Iterator.Err after cancellation.
package bfs
