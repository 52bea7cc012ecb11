// Package kirchhoff derives the two fundamental circuit matrices from a
// spanning-tree partition: the cut-set matrix Q (one row per twig, KCL) and
// the tie-set matrix B (one row per link, KVL).
//
// What & Why
//
//   - Fundamental cut-set: removing one twig t splits the spanning tree
//     into two node sets A (containing t.From) and B (containing t.To).
//     The cut consists of t plus every link crossing the split. Entry
//     convention per branch: +1 oriented A→B (same sense as t), −1 B→A,
//     0 when both endpoints sit on one side. Q·I = 0 is the generalized
//     node law: signed branch currents through every cut sum to zero.
//
//   - Fundamental loop (tie-set): adding one link l to the tree closes
//     exactly one cycle: l plus the unique twig path between its
//     endpoints. The loop reference direction is the link's own
//     orientation: l gets +1, a twig traversed along its declared
//     orientation +1, against it −1, everything off-loop 0. B·V = 0 is
//     KVL: signed branch voltages around every fundamental loop sum to
//     zero.
//
//   - Rows follow twig (resp. link) order, columns follow branch
//     declaration order, so both matrices are deterministic for identical
//     input. Q and B built from the same tree always satisfy Q·Bᵀ = 0.
//
// Both constructions run on the index-based adjacency of circuit.Network: a
// breadth-first walk over twig edges gives the component split for cuts and
// parent links for tree paths, with no pointer-linked structures anywhere.
//
// Complexity: O(twigs·(V+E)) for CutSets, O(V+E + links·V) for TieSets,
// negligible at circuit sizes (matrices are bounded by branch count).
package kirchhoff
