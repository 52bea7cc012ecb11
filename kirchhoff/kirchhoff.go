// Package kirchhoff builds fundamental cut-set and tie-set matrices from a
// network and its spanning tree via breadth-first walks over twig edges.
package kirchhoff

import (
	"errors"
	"fmt"

	"github.com/lapnet/lapnet/circuit"
	"github.com/lapnet/lapnet/spantree"
)

// Sentinel errors for matrix construction.
var (
	// ErrNilNetwork is returned when the network argument is nil.
	ErrNilNetwork = errors.New("kirchhoff: network is nil")

	// ErrNilTree is returned when the tree argument is nil.
	ErrNilTree = errors.New("kirchhoff: tree is nil")

	// ErrTreeMismatch is returned when the tree partition does not fit the
	// network (wrong twig count, or a walk cannot reach a twig endpoint).
	// It indicates the tree was built from a different network.
	ErrTreeMismatch = errors.New("kirchhoff: tree does not match network")
)

// walker holds the per-node twig adjacency used by both constructions.
// All state is index-based: nodes and branches are declaration indices.
type walker struct {
	net      *circuit.Network
	incident [][]int // node index → incident twig branch indices
}

func newWalker(net *circuit.Network, tree *spantree.Tree) *walker {
	w := &walker{
		net:      net,
		incident: make([][]int, net.NumNodes()),
	}
	for _, b := range tree.Twigs {
		from, to := net.Endpoints(b)
		w.incident[from] = append(w.incident[from], b)
		w.incident[to] = append(w.incident[to], b)
	}

	return w
}

// component marks every node reachable from start through twig edges,
// skipping the twig with branch index skip (−1 to disable). Standard BFS
// with an explicit queue; the twig subgraph is acyclic, so each node is
// enqueued at most once.
func (w *walker) component(start, skip int) []bool {
	seen := make([]bool, w.net.NumNodes())
	seen[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, b := range w.incident[u] {
			if b == skip {
				continue
			}
			from, to := w.net.Endpoints(b)
			v := from
			if v == u {
				v = to
			}
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// parents runs one BFS over the whole tree from root and records, per node,
// the twig used to reach it and the neighbor it was reached from. parent[root]
// stays (−1, −1).
func (w *walker) parents(root int) (parentNode, parentTwig []int) {
	n := w.net.NumNodes()
	parentNode = make([]int, n)
	parentTwig = make([]int, n)
	for i := range parentNode {
		parentNode[i], parentTwig[i] = -1, -1
	}
	seen := make([]bool, n)
	seen[root] = true
	queue := []int{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, b := range w.incident[u] {
			from, to := w.net.Endpoints(b)
			v := from
			if v == u {
				v = to
			}
			if !seen[v] {
				seen[v] = true
				parentNode[v] = u
				parentTwig[v] = b
				queue = append(queue, v)
			}
		}
	}

	return parentNode, parentTwig
}

// CutSets builds the fundamental cut-set matrix Q: one row per twig in twig
// order, one column per branch in declaration order.
//
// For each twig t, removing t splits the tree into side A (holding t.From)
// and side B; the row holds +1 for branches oriented A→B, −1 for B→A, 0
// otherwise. The twig itself is always +1 since t.From ∈ A by construction.
//
// Q states KCL: Q·I = 0 for the branch current vector I.
func CutSets(net *circuit.Network, tree *spantree.Tree) (Matrix, error) {
	if err := check(net, tree); err != nil {
		return nil, err
	}
	w := newWalker(net, tree)

	q := make(Matrix, len(tree.Twigs))
	for r, t := range tree.Twigs {
		from, _ := net.Endpoints(t)
		sideA := w.component(from, t)

		row := make([]int, net.NumBranches())
		for j := 0; j < net.NumBranches(); j++ {
			bFrom, bTo := net.Endpoints(j)
			switch {
			case sideA[bFrom] && !sideA[bTo]:
				row[j] = 1
			case !sideA[bFrom] && sideA[bTo]:
				row[j] = -1
			}
		}
		q[r] = row
	}

	return q, nil
}

// TieSets builds the fundamental tie-set (loop) matrix B: one row per link
// in link order, one column per branch in declaration order.
//
// For each link l the loop is l plus the unique twig path between its
// endpoints, traversed in the link's own direction: l gets +1, a twig
// walked along its declared orientation +1, against it −1.
//
// B states KVL: B·V = 0 for the branch voltage vector V.
func TieSets(net *circuit.Network, tree *spantree.Tree) (Matrix, error) {
	if err := check(net, tree); err != nil {
		return nil, err
	}
	w := newWalker(net, tree)

	// One BFS from the reference node covers every tree path; individual
	// paths are then recovered by climbing parent links to the lowest
	// common ancestor.
	root, _ := net.NodeIndex(net.Reference())
	parentNode, parentTwig := w.parents(root)
	depth := make([]int, net.NumNodes())
	for i := range depth {
		d, u := 0, i
		for parentNode[u] != -1 {
			u = parentNode[u]
			d++
		}
		depth[i] = d
	}

	b := make(Matrix, len(tree.Links))
	for r, l := range tree.Links {
		lFrom, lTo := net.Endpoints(l)
		row := make([]int, net.NumBranches())
		row[l] = 1 // the link fixes the loop reference direction

		// Walk the twig path lTo → lFrom, continuing the loop in the
		// link's direction. Climb both endpoints to their LCA: steps up
		// from lTo are traversed as-is, steps up from lFrom are traversed
		// in reverse (sign flipped).
		u, v := lTo, lFrom
		for depth[u] > depth[v] {
			u = climb(w.net, parentNode, parentTwig, u, row, +1)
		}
		for depth[v] > depth[u] {
			v = climb(w.net, parentNode, parentTwig, v, row, -1)
		}
		for u != v {
			if u == -1 || v == -1 {
				return nil, fmt.Errorf("%w: no tree path for link %d", ErrTreeMismatch, l)
			}
			u = climb(w.net, parentNode, parentTwig, u, row, +1)
			v = climb(w.net, parentNode, parentTwig, v, row, -1)
		}
		b[r] = row
	}

	return b, nil
}

// climb moves node x one step toward the root and stamps the traversed twig
// into row. dir is +1 when the loop direction follows the climb (x toward
// parent) and −1 when it opposes it; the twig's own orientation then decides
// the final sign.
func climb(net *circuit.Network, parentNode, parentTwig []int, x int, row []int, dir int) int {
	t := parentTwig[x]
	if t < 0 {
		return -1 // x was never reached by the tree walk; caller reports mismatch
	}
	from, _ := net.Endpoints(t)
	if from == x {
		row[t] = dir // traversed x→parent along declared orientation
	} else {
		row[t] = -dir
	}

	return parentNode[x]
}

func check(net *circuit.Network, tree *spantree.Tree) error {
	if net == nil {
		return ErrNilNetwork
	}
	if tree == nil {
		return ErrNilTree
	}
	if len(tree.Twigs) != net.NumNodes()-1 ||
		len(tree.Twigs)+len(tree.Links) != net.NumBranches() {
		return fmt.Errorf("%w: %d twigs / %d links against %d nodes / %d branches",
			ErrTreeMismatch, len(tree.Twigs), len(tree.Links), net.NumNodes(), net.NumBranches())
	}

	return nil
}
