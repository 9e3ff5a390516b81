package solver

import (
	"errors"
	"fmt"
	"math"
)

// ErrSolverContract means the cost matrix broke a precondition of Solve.
// It signals a programming error upstream, not bad user input.
var ErrSolverContract = errors.New("solver contract violation")

// Solve returns assignment[i] = column chosen for row i such that every row
// gets a distinct column and the summed cost is minimal. Ties are broken
// arbitrarily.
//
// The matrix must be rectangular, finite-valued and have rows <= columns.
func Solve(cost [][]float64) ([]int, error) {
	n := len(cost)
	if n == 0 {
		return []int{}, nil
	}

	m := len(cost[0])
	if err := validate(cost, n, m); err != nil {
		return nil, err
	}

	const inf = math.MaxFloat64

	// 1-indexed; column 0 is a virtual column used to start each augmentation.
	u := make([]float64, n+1)    // row potentials
	v := make([]float64, m+1)    // column potentials
	p := make([]int, m+1)        // p[j] = row matched to column j, 0 if free
	way := make([]int, m+1)      // way[j] = previous column on the augmenting path
	minv := make([]float64, m+1) // minv[j] = smallest reduced cost reaching column j
	used := make([]bool, m+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0

		for j := range minv {
			minv[j] = inf
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := 0

			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Augment along the path.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assignment := make([]int, n)
	for j := 1; j <= m; j++ {
		if p[j] > 0 {
			assignment[p[j]-1] = j - 1
		}
	}

	return assignment, nil
}

func validate(cost [][]float64, n, m int) error {
	if n > m {
		return fmt.Errorf("%w: %d rows > %d columns", ErrSolverContract, n, m)
	}

	for i, row := range cost {
		if len(row) != m {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrSolverContract, i, len(row), m)
		}
		for j, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("%w: cost[%d][%d] is not finite", ErrSolverContract, i, j)
			}
		}
	}

	return nil
}

// TotalCost sums the cost of the chosen column of every row.
func TotalCost(cost [][]float64, assignment []int) float64 {
	var total float64
	for i, j := range assignment {
		total += cost[i][j]
	}

	return total
}
