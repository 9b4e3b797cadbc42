// Package render turns an enumerated PathSet into a DOT diagram and,
// optionally, hands it to the external Graphviz renderer.
//
// What
//
//   - Subgraph: the union of all paths as a small directed graph
//     (source to first hop, every consecutive hop, last hop to target),
//     with insertion order preserved for stable DOT output.
//   - WriteDOT: serializes the diagram as a left-to-right digraph.
//     Node identifiers replace spaces with underscores; multi-word
//     labels are restored via label attributes with line breaks.
//   - GraphvizRenderer: invokes the external `dot` binary to produce an
//     image; the core stays indifferent to the output format.
//
// Rendering is a collaborator, not core logic: everything here is
// produced from an already-enumerated PathSet and never feeds back into
// the algorithm.
package render
