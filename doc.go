// Package polylattice builds Hasse diagrams of closure systems: face
// lattices of polytopes, simplicial complexes and polyhedral fans, and
// lattices of (cyclic) flats of matroids.
//
// A lattice is grown breadth-first from a closure operator. Every closed
// face becomes a node decorated with its face and rank, edges are covering
// relations pointing from lower to higher rank, and a cut can keep faces
// out of the result. Building dually starts from the top and intersects
// facets downwards.
//
// Packages, leaves first:
//
//	set/         sorted integer sets and the FaceMap face→index trie
//	matrix/      incidence matrices (bitset rows) and dense weight matrices
//	core/        int-indexed directed graph
//	bfs/, dfs/   traversal iterators with visitor hooks
//	builder/     composable graph fixtures
//	components/  connected, biconnected and strongly connected components
//	matching/    Hungarian method, maximum and perfect bipartite matchings
//	cliques/     maximal cliques
//	lattice/     the Lattice type, cuts, decorators and the builder
//	closure/     the basic closure operator over an incidence matrix
//	simplicial/, polytope/, fan/, matroid/  domain specialisations
//	render/      DOT and Graphviz images of lattices
//	store/       BadgerDB persistence of lattice records
//	config/      viper-backed settings of the hasse command
//	cmd/hasse    the command line tool
//
// A square as a face lattice:
//
//	vif := matrix.MustFromRows(4, []set.Set{
//		set.New(0, 1), set.New(1, 2), set.New(2, 3), set.New(0, 3),
//	})
//	l, _ := polytope.FaceLattice(vif)
//	fmt.Println(l.FVector()) // [4 4]
package polylattice
