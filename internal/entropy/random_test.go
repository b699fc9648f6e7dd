package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float(), b.Float())
		require.Equal(t, a.Intn(17), b.Intn(17))
	}
	assert.Equal(t, uint64(200), a.Draws())
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a, b := New(1), New(2)
	same := 0
	for i := 0; i < 20; i++ {
		if a.Float() == b.Float() {
			same++
		}
	}
	assert.Less(t, same, 20)
}

func TestRangeInclusive(t *testing.T) {
	s := New(5)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := s.Range(2, 4)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 7, s.Range(7, 7))
}

func TestWeightedSkipsZeroWeights(t *testing.T) {
	s := New(11)
	for i := 0; i < 200; i++ {
		idx := s.Weighted([]int{0, 3, 0, 1})
		require.Contains(t, []int{1, 3}, idx)
	}
	assert.Equal(t, 0, s.Weighted([]int{0, 0}))
}

func TestRoundIntegralValuesAreExact(t *testing.T) {
	s := New(3)
	for i := 0; i < 50; i++ {
		require.Equal(t, 8, s.Round(8))
	}
	assert.Equal(t, 0, s.Round(-2))
	for i := 0; i < 50; i++ {
		v := s.Round(2.5)
		require.True(t, v == 2 || v == 3)
	}
}
