// Package validate checks the structural invariants a core.Graph must
// satisfy before shortest-path enumeration can be trusted.
//
// What
//
//   - CheckEntries: the queried source and target must be vertex keys.
//   - CheckAdjacency: every neighbor reference must point at a vertex key,
//     and every edge must have its undirected mirror.
//   - CheckConnectedness: every vertex must be reachable from every other;
//     the error names the unreached set.
//   - Check runs all three independently (no short-circuit on the first
//     failure) and joins every detected violation into one error, so a
//     caller can report all problems in a single pass.
//
// Why
//
//	The enumerator assumes reachability and symmetry; on a malformed graph
//	it would silently return wrong answers. Violations are reported with
//	the offending labels and never repaired automatically.
//
// Errors
//
//   - ErrUnknownNode     source or target is not a vertex key.
//   - ErrAsymmetricEdge  dangling neighbor reference or missing mirror edge.
//   - ErrDisconnected    one or more vertices unreachable from the rest.
//
// Every violation wraps its sentinel, so errors.Is works on the joined
// result of Check.
//
// Complexity: O(V + E) per check.
package validate
