package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF1(t *testing.T) {
	assert.Equal(t, 1.0, F1(0, 0, 3))
	assert.Equal(t, 0.0, F1(4, 0, 0))
	assert.Equal(t, 1.0, F1(2, 2, 0))
	assert.InDelta(t, 2.0/3.0, F1(2, 1, 0), 1e-9)
	assert.InDelta(t, 0.5, F1(2, 1, 1), 1e-9)
	assert.InDelta(t, 0.4, F1(2, 1, 2), 1e-9)

	t.Run("strictly decreases with spurious", func(t *testing.T) {
		prev := F1(3, 2, 0)
		for s := 1.0; s < 5; s++ {
			cur := F1(3, 2, s)
			assert.Less(t, cur, prev)
			prev = cur
		}
	})

	t.Run("strictly increases with predicted", func(t *testing.T) {
		prev := F1(4, 0, 1)
		for p := 1.0; p <= 4; p++ {
			cur := F1(4, p, 1)
			assert.Greater(t, cur, prev)
			prev = cur
		}
	})
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 1.0, Ratio(0, 0))
	assert.Equal(t, 0.25, Ratio(1, 4))
	assert.Equal(t, 0.0, Harmonic(0, 0))
	assert.InDelta(t, 0.5, Harmonic(0.5, 0.5), 1e-9)
}
