package circuit

import "fmt"

// Network is an immutable, validated circuit graph: ordered nodes, ordered
// oriented branches, and index-based adjacency. Construct with New; a nil
// or zero Network is not usable.
//
// Determinism: Nodes and Branches preserve declaration order exactly, and
// every accessor returns data in that order. Two Networks built from the
// same input are indistinguishable.
type Network struct {
	ref      string   // reference node identifier
	nodes    []string // declaration order
	branches []Branch // declaration order

	nodeIndex   map[string]int // node ID → index into nodes
	branchIndex map[string]int // branch ID → index into branches
	adjacency   [][]int        // node index → incident branch indices, ascending
}

// New validates nodes and branches and builds a Network.
//
// Rules enforced (each with its own sentinel, see types.go):
//  1. node IDs non-empty and unique; the reference node is present and at
//     least one other node is declared;
//  2. branch IDs non-empty and unique;
//  3. branch endpoints are declared nodes;
//  4. no self-loops (From == To);
//  5. branch values strictly positive;
//  6. branch kinds within {R,L,C,V,I}.
//
// Complexity: O(V + E). The input slices are copied; later mutation of the
// caller's slices does not affect the Network.
func New(nodes []string, branches []Branch, opts ...Option) (*Network, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	net := &Network{
		ref:         o.Reference,
		nodes:       make([]string, 0, len(nodes)),
		branches:    make([]Branch, 0, len(branches)),
		nodeIndex:   make(map[string]int, len(nodes)),
		branchIndex: make(map[string]int, len(branches)),
	}

	// Nodes: non-empty, unique, reference present, at least one other.
	for _, id := range nodes {
		if id == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := net.nodeIndex[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
		}
		net.nodeIndex[id] = len(net.nodes)
		net.nodes = append(net.nodes, id)
	}
	if _, ok := net.nodeIndex[net.ref]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingReference, net.ref)
	}
	if len(net.nodes) < 2 {
		return nil, ErrNoNodes
	}

	// Branches: unique IDs, declared endpoints, no self-loops, positive
	// values, supported kinds. Checked in declaration order so the first
	// offending branch is the one reported.
	net.adjacency = make([][]int, len(net.nodes))
	for _, b := range branches {
		if b.ID == "" {
			return nil, ErrEmptyBranchID
		}
		if _, dup := net.branchIndex[b.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBranch, b.ID)
		}
		fromIdx, ok := net.nodeIndex[b.From]
		if !ok {
			return nil, fmt.Errorf("%w: branch %q endpoint %q", ErrUnknownEndpoint, b.ID, b.From)
		}
		toIdx, ok := net.nodeIndex[b.To]
		if !ok {
			return nil, fmt.Errorf("%w: branch %q endpoint %q", ErrUnknownEndpoint, b.ID, b.To)
		}
		if fromIdx == toIdx {
			return nil, fmt.Errorf("%w: branch %q at node %q", ErrSelfLoop, b.ID, b.From)
		}
		if !(b.Value > 0) { // rejects zero, negatives and NaN alike
			return nil, fmt.Errorf("%w: branch %q has value %v", ErrNonPositiveValue, b.ID, b.Value)
		}
		if !b.Kind.Valid() {
			return nil, fmt.Errorf("branch %q: %w", b.ID, errUnsupported(string(b.Kind)))
		}

		idx := len(net.branches)
		net.branchIndex[b.ID] = idx
		net.branches = append(net.branches, b)
		net.adjacency[fromIdx] = append(net.adjacency[fromIdx], idx)
		net.adjacency[toIdx] = append(net.adjacency[toIdx], idx)
	}

	return net, nil
}

// NumNodes returns the number of declared nodes, reference included.
func (n *Network) NumNodes() int { return len(n.nodes) }

// NumBranches returns the number of declared branches.
func (n *Network) NumBranches() int { return len(n.branches) }

// Reference returns the reference (ground) node identifier.
func (n *Network) Reference() string { return n.ref }

// Nodes returns the node identifiers in declaration order. The slice is a
// copy; callers may mutate it freely.
func (n *Network) Nodes() []string {
	out := make([]string, len(n.nodes))
	copy(out, n.nodes)

	return out
}

// Branches returns all branches in declaration order, copied.
func (n *Network) Branches() []Branch {
	out := make([]Branch, len(n.branches))
	copy(out, n.branches)

	return out
}

// Branch returns the branch at declaration index i. Panics if out of range,
// as would any slice access; indices come from this Network's own queries.
func (n *Network) Branch(i int) Branch { return n.branches[i] }

// BranchByID looks a branch up by identifier.
func (n *Network) BranchByID(id string) (Branch, bool) {
	i, ok := n.branchIndex[id]
	if !ok {
		return Branch{}, false
	}

	return n.branches[i], true
}

// NodeIndex maps a node identifier to its declaration index.
func (n *Network) NodeIndex(id string) (int, bool) {
	i, ok := n.nodeIndex[id]

	return i, ok
}

// Endpoints returns the node indices (tail, head) of branch i.
func (n *Network) Endpoints(i int) (from, to int) {
	b := n.branches[i]

	return n.nodeIndex[b.From], n.nodeIndex[b.To]
}

// Adjacency returns, for every node index, the indices of incident branches
// in ascending branch order. The outer and inner slices are copies.
func (n *Network) Adjacency() [][]int {
	out := make([][]int, len(n.adjacency))
	for i, row := range n.adjacency {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}

	return out
}

func errUnsupported(kind string) error {
	return fmt.Errorf("%w: %q (want R, L, C, V or I)", ErrUnsupportedKind, kind)
}
