// Package allpaths enumerates every shortest path between two vertices of
// an undirected, unweighted core.Graph.
//
// What
//
//   - Enumerate runs a multi-parent BFS from the source and stops the
//     moment the target is dequeued, then reconstructs every path that
//     achieves the minimum distance by exhaustive backward recursion over
//     the accumulated parent sets.
//   - Returns a Result with the sorted PathSet (lexicographic by label
//     sequence) and the Distance in edges.
//   - Supports OnEnqueue/OnDequeue hooks and context cancellation.
//
// Why
//
//	A single-parent BFS yields one shortest path; recording every parent
//	that first reaches a vertex at its BFS layer is what surfaces all of
//	them. A vertex enters the frontier at most once (frontier-membership
//	guard), but keeps accumulating parents after its first enqueue.
//
// Determinism
//
//	core.NeighborIDs returns sorted neighbors and the PathSet is sorted
//	before it is returned, so repeated calls on the same graph produce
//	identical output.
//
// Degenerate case
//
//	Enumerate(g, x, x) returns an empty PathSet and distance 0 without
//	running BFS.
//
// Preconditions
//
//	Enumerate assumes the graph has passed validate.Check: reachability of
//	the target is guaranteed by connectedness. If the frontier drains
//	before the target is dequeued, Enumerate reports ErrTargetUnreached
//	rather than spinning.
//
// Complexity (V = |vertices|, E = |edges|, P = number of shortest paths)
//
//   - BFS:            O(V + E) time, O(V) memory
//   - Reconstruction: O(P · Distance) time after pruning
package allpaths
