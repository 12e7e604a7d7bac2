package makespan

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/approx/core/model"
)

func TestSchedule_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		jobs       []float64
		processors int
		want       float64
	}{
		{"balanced pairs", []float64{10, 10, 10, 10}, 2, 20},
		{"one dominant job", []float64{1, 1, 1, 1, 50}, 3, 50},
		{"uniform jobs", []float64{5, 5, 5, 5, 5, 5}, 3, 10},
		{"slight imbalance", []float64{5, 8, 7, 10, 12}, 3, 15},
		{"mixed sizes", []float64{3, 7, 8, 4, 2, 12, 15}, 4, 15},
		{"empty", nil, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Schedule(tt.jobs, tt.processors)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchedule_MoreProcessorsThanJobs(t *testing.T) {
	jobs := []float64{4, 9, 2}
	for p := len(jobs); p < len(jobs)+4; p++ {
		got, err := Schedule(jobs, p)
		require.NoError(t, err)
		assert.Equal(t, 9.0, got, "processors=%d", p)
	}
}

func TestSchedule_HugeProcessorCount(t *testing.T) {
	got, err := Schedule([]float64{5, 3}, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	a, err := Assign([]float64{5, 3}, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3}, a.Loads)
	assert.Equal(t, [][]int{{0}, {1}}, a.Jobs)

	lb, err := LowerBound([]float64{5, 3}, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 5.0, lb)

	opt, err := Optimal([]float64{5, 3}, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 5.0, opt)
}

func TestAssign_Empty(t *testing.T) {
	a, err := Assign(nil, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, a.Makespan)
	assert.Empty(t, a.Loads)
}

func TestSchedule_SingleProcessorSumsJobs(t *testing.T) {
	got, err := Schedule([]float64{3, 1.5, 7, 0}, 1)
	require.NoError(t, err)
	assert.Equal(t, 11.5, got)
}

func TestSchedule_InvalidInput(t *testing.T) {
	_, err := Schedule([]float64{1, 2}, 0)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = Schedule([]float64{1, -2}, 2)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestSchedule_DoesNotMutateInput(t *testing.T) {
	jobs := []float64{1, 9, 4, 7}
	snapshot := append([]float64(nil), jobs...)
	first, err := Schedule(jobs, 2)
	require.NoError(t, err)
	second, err := Schedule(jobs, 2)
	require.NoError(t, err)
	assert.Equal(t, snapshot, jobs)
	assert.Equal(t, first, second)
}

func TestAssign_TracksJobs(t *testing.T) {
	jobs := []float64{10, 10, 10, 10}
	a, err := Assign(jobs, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 20}, a.Loads)
	assert.Equal(t, 20.0, a.Makespan)

	seen := map[int]bool{}
	for p, idx := range a.Jobs {
		var sum float64
		for _, j := range idx {
			assert.False(t, seen[j], "job %d assigned twice", j)
			seen[j] = true
			sum += jobs[j]
		}
		assert.Equal(t, a.Loads[p], sum)
	}
	assert.Len(t, seen, len(jobs))
}

func TestLowerBound(t *testing.T) {
	lb, err := LowerBound([]float64{10, 10, 10, 10}, 2)
	require.NoError(t, err)
	assert.Equal(t, 20.0, lb)

	lb, err = LowerBound([]float64{1, 1, 50}, 3)
	require.NoError(t, err)
	assert.Equal(t, 50.0, lb)

	lb, err = LowerBound(nil, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lb)
}

func TestOptimal_KnownInstances(t *testing.T) {
	// LPT gives 7 here while {3,3} / {2,2,2} reaches 6.
	got, err := Optimal([]float64{3, 3, 2, 2, 2}, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)

	lpt, err := Schedule([]float64{3, 3, 2, 2, 2}, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, lpt)

	got, err = Optimal([]float64{5, 8, 7, 10, 12}, 3)
	require.NoError(t, err)
	assert.Equal(t, 15.0, got)

	got, err = Optimal(nil, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestOptimal_TooLarge(t *testing.T) {
	jobs := make([]float64, MaxOptimalJobs+1)
	_, err := Optimal(jobs, 2)
	assert.ErrorIs(t, err, model.ErrInputTooLarge)

	_, err = OptimalLimit([]float64{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, model.ErrInputTooLarge)
	got, err := OptimalLimit([]float64{1, 2, 3}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestSchedule_WithinApproximationBound(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		n := rng.Intn(9)
		p := 1 + rng.Intn(4)
		jobs := make([]float64, n)
		for j := range jobs {
			jobs[j] = float64(1 + rng.Intn(30))
		}
		lpt, err := Schedule(jobs, p)
		require.NoError(t, err)
		opt, err := Optimal(jobs, p)
		require.NoError(t, err)
		lb, err := LowerBound(jobs, p)
		require.NoError(t, err)

		assert.LessOrEqual(t, lb, opt, "jobs=%v p=%d", jobs, p)
		assert.LessOrEqual(t, opt, lpt, "jobs=%v p=%d", jobs, p)
		assert.LessOrEqual(t, lpt, 3*opt, "jobs=%v p=%d", jobs, p)
	}
}
