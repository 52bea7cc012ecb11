// Package circuit defines the typed network model at the head of the
// transient-analysis pipeline: named nodes, oriented branches, and the
// validation rules that make the rest of the pipeline well-posed.
//
// What & Why
//
//   - A Network is an undirected multigraph: node identifiers (strings, with
//     one reserved reference node, "0" by default) and oriented branches.
//     A branch's From→To orientation fixes the positive reference direction
//     for its current and, for sources, its polarity.
//
//   - Validation happens once, in New. Everything downstream (spanning-tree
//     selection, cut/tie matrices, equation assembly) may then assume a
//     well-formed input: reference node present, endpoints declared, branch
//     IDs unique, values strictly positive, no self-loops. Violations are
//     reported with errors.Is-matchable sentinels before any topology work
//     begins.
//
//   - The Network is immutable after construction and carries no locks:
//     each analysis request builds its own instance, so concurrent requests
//     never share mutable state.
//
// Adjacency is exposed as index-based arenas (node index → incident branch
// indices) rather than pointer-linked structures, so traversal code in
// dependent packages works on plain ints.
//
// Connectivity is deliberately NOT checked here; it falls out of spanning
// tree selection (package spantree), which is the first consumer that needs
// it.
package circuit
