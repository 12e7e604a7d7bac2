package attendance

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/approx/core/model"
)

func TestGreedyAndExact_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		groups    []float64
		capacity  float64
		wantExact float64
		minGreedy float64
	}{
		{"mixed groups", []float64{5, 10, 20, 50, 55}, 60, 60, 30},
		{"uniform groups", []float64{5, 5, 5, 5, 5, 5}, 20, 20, 20},
		{"uniform groups above total", []float64{5, 5, 5, 5, 5, 5}, 45, 30, 30},
		{"empty", nil, 100, 0, 0},
		{"every group too large", []float64{70, 80}, 60, 0, 0},
		{"zero capacity", []float64{1, 2}, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exact, err := Exact(tt.groups, tt.capacity)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExact, exact)

			greedy, err := Greedy(tt.groups, tt.capacity)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, greedy, tt.minGreedy)
			assert.LessOrEqual(t, greedy, exact)
		})
	}
}

func TestGreedy_UniformMatchesExact(t *testing.T) {
	groups := []float64{5, 5, 5, 5, 5, 5}
	for c := 0.0; c <= 40; c += 5 {
		greedy, err := Greedy(groups, c)
		require.NoError(t, err)
		exact, err := Exact(groups, c)
		require.NoError(t, err)
		assert.Equal(t, exact, greedy, "capacity=%v", c)
	}
}

func TestGreedyDetail_StopsAtFirstOverflow(t *testing.T) {
	// Large-first admits 6, then 5 overflows and the walk ends even though
	// 4 would still fit.
	d, err := GreedyDetail([]float64{4, 5, 6}, 10)
	require.NoError(t, err)
	assert.Equal(t, 9.0, d.SmallFirst)
	assert.Equal(t, 6.0, d.LargeFirst)
	assert.Equal(t, 9.0, d.Best())

	// A group larger than the capacity ends the large-first walk at once.
	d, err = GreedyDetail([]float64{1, 2, 100}, 10)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d.SmallFirst)
	assert.Equal(t, 0.0, d.LargeFirst)
}

func TestGreedy_InvalidInput(t *testing.T) {
	_, err := Greedy([]float64{1, -1}, 10)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = Greedy([]float64{1}, -1)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = Exact([]float64{-3}, 10)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestExact_Guard(t *testing.T) {
	groups := make([]float64, DefaultMaxExactGroups+1)
	_, err := Exact(groups, 10)
	assert.ErrorIs(t, err, model.ErrInputTooLarge)

	_, err = ExactLimit(groups[:4], 10, 3)
	assert.ErrorIs(t, err, model.ErrInputTooLarge)

	got, err := ExactLimit([]float64{1, 2, 3}, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)
}

func TestExact_PermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	groups := []float64{12, 7, 33, 4, 19, 25, 8, 41}
	want, err := Exact(groups, 60)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		shuffled := append([]float64(nil), groups...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got, err := Exact(shuffled, 60)
		require.NoError(t, err)
		assert.Equal(t, want, got, "groups=%v", shuffled)
	}
}

func TestExact_PermutationInvariantFractional(t *testing.T) {
	for _, groups := range [][]float64{{0.1, 0.2, 0.3}, {0.3, 0.2, 0.1}, {0.2, 0.3, 0.1}} {
		got, err := Exact(groups, 0.6)
		require.NoError(t, err)
		assert.Equal(t, 0.6, got, "groups=%v", groups)
		approx, err := Greedy(groups, 0.6)
		require.NoError(t, err)
		assert.LessOrEqual(t, approx, got, "groups=%v", groups)
	}

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		groups := make([]float64, 1+rng.Intn(10))
		for j := range groups {
			groups[j] = float64(1+rng.Intn(100)) / 10
		}
		capacity := float64(10+rng.Intn(200)) / 10
		want, err := Exact(groups, capacity)
		require.NoError(t, err)
		approx, err := Greedy(groups, capacity)
		require.NoError(t, err)
		assert.LessOrEqual(t, approx, want, "groups=%v capacity=%v", groups, capacity)
		for k := 0; k < 5; k++ {
			shuffled := append([]float64(nil), groups...)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			got, err := Exact(shuffled, capacity)
			require.NoError(t, err)
			assert.Equal(t, want, got, "groups=%v capacity=%v", shuffled, capacity)
		}
	}
}

func TestGreedy_HalfApproximation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 300; i++ {
		n := rng.Intn(11)
		groups := make([]float64, n)
		for j := range groups {
			groups[j] = float64(1 + rng.Intn(50))
		}
		capacity := float64(50 + rng.Intn(101))

		greedy, err := Greedy(groups, capacity)
		require.NoError(t, err)
		exact, err := Exact(groups, capacity)
		require.NoError(t, err)

		assert.LessOrEqual(t, greedy, exact, "groups=%v capacity=%v", groups, capacity)
		assert.GreaterOrEqual(t, 2*greedy, exact, "groups=%v capacity=%v", groups, capacity)
	}
}

func TestGreedyAndExact_Idempotent(t *testing.T) {
	groups := []float64{9, 3, 14, 6}
	snapshot := append([]float64(nil), groups...)
	g1, _ := Greedy(groups, 20)
	g2, _ := Greedy(groups, 20)
	e1, _ := Exact(groups, 20)
	e2, _ := Exact(groups, 20)
	assert.Equal(t, g1, g2)
	assert.Equal(t, e1, e2)
	assert.Equal(t, snapshot, groups)
}
