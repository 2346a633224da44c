package matching

import "math"

// Assign solves the minimum-cost assignment for a rectangular cost matrix.
// Every row or every column, whichever is fewer, gets matched. The result
// maps each row to its column, or -1 when the row is left unmatched.
func Assign(cost [][]float64) []int {
	rows := len(cost)
	if rows == 0 {
		return nil
	}
	cols := len(cost[0])
	out := make([]int, rows)
	for i := range out {
		out[i] = -1
	}
	if cols == 0 {
		return out
	}
	if rows <= cols {
		for i, j := range solve(cost, rows, cols, false) {
			out[i] = j
		}
		return out
	}
	for j, i := range solve(cost, cols, rows, true) {
		out[i] = j
	}
	return out
}

// solve runs the shortest augmenting path method with potentials on an
// n x m matrix, n <= m. With transposed set, a[i][j] reads cost[j][i].
func solve(cost [][]float64, n, m int, transposed bool) []int {
	at := func(i, j int) float64 {
		if transposed {
			return cost[j][i]
		}
		return cost[i][j]
	}

	u := make([]float64, n+1)
	v := make([]float64, m+1)
	p := make([]int, m+1) // p[j] is the row matched to column j, 1-based
	way := make([]int, m+1)
	minv := make([]float64, m+1)
	used := make([]bool, m+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = math.Inf(1)
			used[j] = false
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := at(i0-1, j-1) - u[i0] - v[j]
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
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowToCol := make([]int, n)
	for j := 1; j <= m; j++ {
		if p[j] != 0 {
			rowToCol[p[j]-1] = j - 1
		}
	}
	return rowToCol
}
