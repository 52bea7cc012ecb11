package solver

import (
	"fmt"

	"github.com/lapnet/lapnet/circuit"
	"github.com/lapnet/lapnet/kirchhoff"
	"github.com/lapnet/lapnet/laplace"
	"github.com/lapnet/lapnet/rational"
)

// system is the assembled square linear system a·x = rhs over ℚ(s).
// Unknown ordering: x[j] = V of branch j for j < b, x[b+j] = I of branch j.
type system struct {
	a      [][]rational.Func
	rhs    []rational.Func
	labels []string // per unknown, for error reporting and results
}

// assemble builds the 2b×2b system from the Kirchhoff matrices and the
// per-branch transform relations:
//
//	rows 0..t−1:        Q·I = 0       (KCL, one per twig)
//	rows t..t+l−1:      B·V = 0       (KVL, one per link)
//	rows t+l..2b−1:     branch V–I relations
//
// Row count t + l + b equals 2b exactly, matching the unknown count.
func assemble(net *circuit.Network, q, b kirchhoff.Matrix, o Options) (*system, error) {
	nb := net.NumBranches()
	size := 2 * nb

	sys := &system{
		a:      make([][]rational.Func, 0, size),
		rhs:    make([]rational.Func, 0, size),
		labels: make([]string, 0, size),
	}
	for j := 0; j < nb; j++ {
		sys.labels = append(sys.labels, o.VoltagePrefix+net.Branch(j).ID)
	}
	for j := 0; j < nb; j++ {
		sys.labels = append(sys.labels, o.CurrentPrefix+net.Branch(j).ID)
	}

	// KCL: signed currents through each fundamental cut sum to zero.
	for r := 0; r < q.Rows(); r++ {
		row := zeroRow(size)
		for j := 0; j < nb; j++ {
			if v := q.At(r, j); v != 0 {
				row[nb+j] = rational.ConstInt(int64(v))
			}
		}
		sys.a = append(sys.a, row)
		sys.rhs = append(sys.rhs, rational.ConstInt(0))
	}

	// KVL: signed voltages around each fundamental loop sum to zero.
	for r := 0; r < b.Rows(); r++ {
		row := zeroRow(size)
		for j := 0; j < nb; j++ {
			if v := b.At(r, j); v != 0 {
				row[j] = rational.ConstInt(int64(v))
			}
		}
		sys.a = append(sys.a, row)
		sys.rhs = append(sys.rhs, rational.ConstInt(0))
	}

	// Branch relations: impedances for R/L/C, pinned variables for sources.
	for j := 0; j < nb; j++ {
		br := net.Branch(j)
		rel, err := laplace.BranchRelation(br.Kind, br.Value)
		if err != nil {
			return nil, fmt.Errorf("branch %q: %w", br.ID, err)
		}
		row := zeroRow(size)
		row[j] = rel.VCoeff
		row[nb+j] = rel.ICoeff
		sys.a = append(sys.a, row)
		sys.rhs = append(sys.rhs, rel.RHS)
	}

	return sys, nil
}

func zeroRow(n int) []rational.Func {
	row := make([]rational.Func, n)
	for i := range row {
		row[i] = rational.ConstInt(0)
	}

	return row
}
