// Package spantree partitions a circuit's branches into twigs (spanning
// tree) and links (co-tree), the split that every Kirchhoff matrix in the
// pipeline is derived from.
//
// What & Why
//
//   - Given a connected Network with n nodes and b branches, a spanning tree
//     has exactly n−1 twigs; the remaining b−n+1 branches are links. Each
//     twig will later yield one fundamental cut-set (KCL row), each link one
//     fundamental loop (KVL row).
//
//   - Which branches go into the tree matters: a voltage source left in the
//     co-tree closes a zero-impedance loop and a current source placed in
//     the tree opens a degenerate cut; both make the assembled system
//     singular. Select therefore runs Kruskal's algorithm with a
//     domain-specific weight instead of an edge weight: voltage sources
//     first (0), then R/L/C (1), current sources last (2). Ties break on
//     declaration order via a stable sort, so selection is deterministic
//     and reproducible for identical input.
//
//   - The greedy admission uses a disjoint-set (union-find) over node
//     indices with path compression and union by rank. If the scan ends
//     with fewer than n−1 twigs the graph is disconnected: ErrDisconnected.
//
// The priority policy is best-effort, not a guarantee: multiple voltage
// sources forming a loop (or current sources forming a cut) cannot all be
// placed well, and the resulting singular system is reported downstream by
// the solver.
//
// Complexity: O(b log b) for the sort plus near-O(b) union-find work.
package spantree
