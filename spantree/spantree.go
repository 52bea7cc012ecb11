// Package spantree implements priority-ordered spanning tree selection
// (Kruskal with a component-kind weight and a union-find admission test).
package spantree

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lapnet/lapnet/circuit"
)

// ErrNilNetwork is returned when Select receives a nil network.
var ErrNilNetwork = errors.New("spantree: network is nil")

// ErrDisconnected is returned when the network is not connected and no
// spanning tree can reach all nodes.
var ErrDisconnected = errors.New("spantree: network is disconnected")

// Tree is the twig/link partition of a network's branches. Both slices hold
// branch declaration indices into the originating Network, each in ascending
// declaration order. A Tree is immutable once returned by Select.
type Tree struct {
	// Twigs are the branch indices forming the spanning tree; exactly
	// NumNodes−1 of them.
	Twigs []int

	// Links are the co-tree branch indices; exactly
	// NumBranches−NumNodes+1 of them.
	Links []int

	twig []bool // per branch index: chosen as twig
}

// IsTwig reports whether branch index i was selected into the tree.
func (t *Tree) IsTwig(i int) bool { return t.twig[i] }

// Priority weight per component kind: voltage sources are pulled into the
// tree, current sources pushed into the co-tree, everything else neutral.
func weight(k circuit.Kind) int {
	switch k {
	case circuit.VoltageSource:
		return 0
	case circuit.CurrentSource:
		return 2
	default:
		return 1
	}
}

// Select partitions net's branches into twigs and links.
//
// Steps:
//  1. Stable-sort branch indices by kind weight (V=0, R/L/C=1, I=2);
//     stability preserves declaration order among equal weights.
//  2. Scan in that order, admitting a branch as twig when its endpoints are
//     not yet connected through already-chosen twigs (union-find test);
//     stop admitting once NumNodes−1 twigs are chosen.
//  3. Every branch not admitted is a link.
//  4. Fewer than NumNodes−1 twigs after the scan ⇒ ErrDisconnected.
//
// The returned partition is deterministic for identical input.
func Select(net *circuit.Network) (*Tree, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}

	numNodes := net.NumNodes()
	numBranches := net.NumBranches()

	// 1. Priority order: stable sort keeps declaration order inside each
	//    weight class, which is the documented tie-break.
	order := make([]int, numBranches)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return weight(net.Branch(order[a]).Kind) < weight(net.Branch(order[b]).Kind)
	})

	// 2. Union-find over node indices, path compression + union by rank.
	parent := make([]int, numNodes)
	rank := make([]int, numNodes)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // halve the path as we walk
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
	}

	tree := &Tree{twig: make([]bool, numBranches)}
	chosen := 0
	for _, i := range order {
		if chosen == numNodes-1 {
			break
		}
		from, to := net.Endpoints(i)
		if find(from) != find(to) {
			union(from, to)
			tree.twig[i] = true
			chosen++
		}
	}

	// 4. A short tree means some node is unreachable.
	if chosen < numNodes-1 {
		return nil, fmt.Errorf("%w: %d twigs chosen, need %d", ErrDisconnected, chosen, numNodes-1)
	}

	// 3. Materialize both sides in declaration order.
	tree.Twigs = make([]int, 0, numNodes-1)
	tree.Links = make([]int, 0, numBranches-numNodes+1)
	for i := 0; i < numBranches; i++ {
		if tree.twig[i] {
			tree.Twigs = append(tree.Twigs, i)
		} else {
			tree.Links = append(tree.Links, i)
		}
	}

	return tree, nil
}
