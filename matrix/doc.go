// Package matrix gives dense views of a core.Graph: the weighted adjacency
// matrix in vertex order and the all-pairs shortest distances derived from it
// with Floyd-Warshall.
//
// Row and column i both stand for the i-th vertex of g.Vertices(). A missing
// edge is +Inf. Declarations are read as written, so a neighbor list that is
// not mirrored gives an asymmetric matrix.
package matrix
