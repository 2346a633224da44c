package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func total(cost [][]float64, assign []int) float64 {
	var s float64
	for i, j := range assign {
		if j >= 0 {
			s += cost[i][j]
		}
	}
	return s
}

func TestAssign(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		cost := [][]float64{
			{4, 1, 3},
			{2, 0, 5},
			{3, 2, 2},
		}
		got := Assign(cost)
		assert.Equal(t, []int{1, 0, 2}, got)
		assert.Equal(t, 5.0, total(cost, got))
	})

	t.Run("more columns than rows", func(t *testing.T) {
		cost := [][]float64{
			{9, 1, 9, 9},
			{9, 9, 9, 2},
		}
		assert.Equal(t, []int{1, 3}, Assign(cost))
	})

	t.Run("more rows than columns", func(t *testing.T) {
		cost := [][]float64{
			{5, 9},
			{1, 9},
			{9, 0},
		}
		assert.Equal(t, []int{-1, 0, 1}, Assign(cost))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, Assign(nil))
		assert.Equal(t, []int{-1, -1}, Assign([][]float64{{}, {}}))
	})

	t.Run("each column used once", func(t *testing.T) {
		cost := [][]float64{
			{0, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		}
		got := Assign(cost)
		seen := map[int]bool{}
		for _, j := range got {
			assert.False(t, seen[j])
			seen[j] = true
		}
	})
}
