// Package matrix offers the two matrix shapes the lattice engine consumes.
//
//   - Incidence: a 0/1 rows×cols matrix stored as one bitset per row.
//     Closure operators read facets from its rows and compute closures as
//     row intersections (IntersectRows) and dual faces as RowsContaining.
//   - Dense: a row-major float64 matrix used as the weight input of the
//     Hungarian assignment method.
//
// Both types validate indices and return ErrOutOfRange instead of panicking.
package matrix
