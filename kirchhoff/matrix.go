package kirchhoff

import "strings"

// Matrix is a small dense signed-incidence matrix with entries in
// {−1, 0, +1}. Rows correspond to twigs (cut-set matrix) or links (tie-set
// matrix); columns always follow branch declaration order.
type Matrix [][]int

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns (0 for an empty matrix).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// At returns the entry at row r, column c.
func (m Matrix) At(r, c int) int { return m[r][c] }

// String renders the matrix in compact sign notation, one row per line,
// entries as "+", "-" or ".". Intended for debugging and test failure
// output only.
func (m Matrix) String() string {
	var sb strings.Builder
	for r, row := range m {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			switch {
			case v > 0:
				sb.WriteByte('+')
			case v < 0:
				sb.WriteByte('-')
			default:
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}
