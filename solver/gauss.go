package solver

import (
	"fmt"

	"github.com/lapnet/lapnet/rational"
)

// solve runs exact Gauss–Jordan elimination over ℚ(s) and returns the
// unknown vector in column order.
//
// Pivoting picks the first row with a nonzero entry in the current column;
// over an exact field any nonzero pivot is as good as any other, and
// "first" keeps the elimination deterministic. A column with no pivot
// means the system is rank deficient: ErrSingular, naming the unknown.
func (s *system) solve() ([]rational.Func, error) {
	n := len(s.a)

	for col := 0; col < n; col++ {
		// Find and swap in a pivot row.
		pivot := -1
		for r := col; r < n; r++ {
			if !s.a[r][col].IsZero() {
				pivot = r

				break
			}
		}
		if pivot < 0 {
			return nil, fmt.Errorf("%w: no pivot for unknown %s", ErrSingular, s.labels[col])
		}
		s.a[col], s.a[pivot] = s.a[pivot], s.a[col]
		s.rhs[col], s.rhs[pivot] = s.rhs[pivot], s.rhs[col]

		// Normalize the pivot row to a unit pivot.
		inv, err := rational.ConstInt(1).Div(s.a[col][col])
		if err != nil {
			return nil, fmt.Errorf("%w: pivot for %s", ErrSingular, s.labels[col])
		}
		for j := col; j < n; j++ {
			s.a[col][j] = s.a[col][j].Mul(inv)
		}
		s.rhs[col] = s.rhs[col].Mul(inv)

		// Eliminate the column from every other row.
		for r := 0; r < n; r++ {
			if r == col || s.a[r][col].IsZero() {
				continue
			}
			factor := s.a[r][col]
			for j := col; j < n; j++ {
				s.a[r][j] = s.a[r][j].Sub(factor.Mul(s.a[col][j]))
			}
			s.rhs[r] = s.rhs[r].Sub(factor.Mul(s.rhs[col]))
		}
	}

	return s.rhs, nil
}
