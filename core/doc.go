// Package core defines the in-memory adjacency Graph that every other
// borderline package operates on.
//
// What
//
//   - Graph: a set of labeled vertices plus per-vertex neighbor lists,
//     built once from external adjacency data and read-only afterwards.
//   - AddEdge inserts the undirected mirror pair; FromAdjacency preserves
//     the raw lists verbatim, including dangling or one-way references,
//     so the validate package can detect them instead of masking them.
//   - All queries return sorted, deduplicated results for deterministic
//     traversal and reproducible test output.
//
// Why
//
//   - Shortest-path enumeration and the guessing game both assume a
//     symmetric, closed, connected graph; the loader cannot guarantee
//     that, so the raw shape must survive construction untouched.
//
// Concurrency
//
//	A Graph is mutated only while it is being built (AddVertex/AddEdge).
//	After construction it is never written again, so it may be shared by
//	reference across any number of enumerations and game sessions
//	without locking.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - AddVertex / HasVertex / HasEdge: O(1)
//   - AddEdge: O(1) amortized
//   - NeighborIDs: O(d log d) for out-degree d (sort on read)
//   - VertexIDs: O(V log V)
package core
