package bench

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomAttendance_Ranges(t *testing.T) {
	c := AttendanceConfig{Groups: 10, MaxGroupSize: 50, MinCapacity: 50, MaxCapacity: 150}
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		groups, capacity := RandomAttendance(rng, c)
		require.Len(t, groups, 10)
		for _, g := range groups {
			assert.GreaterOrEqual(t, g, 1.0)
			assert.LessOrEqual(t, g, 50.0)
		}
		assert.GreaterOrEqual(t, capacity, 50.0)
		assert.LessOrEqual(t, capacity, 150.0)
	}
}

func TestSuiteConfig_DefaultsAndValidate(t *testing.T) {
	var c SuiteConfig
	c.SetDefaults()
	require.NoError(t, c.Validate())
	assert.Len(t, c.MakespanCases, 5)
	assert.Equal(t, 10, c.Attendance.Groups)
	assert.Equal(t, 150, c.Attendance.MaxCapacity)

	bad := c
	bad.MakespanCases = []MakespanCase{{Name: "x", Processors: 0}}
	assert.Error(t, bad.Validate())

	bad = c
	bad.Attendance.MinCapacity = 200
	assert.Error(t, bad.Validate())
}

func TestCalcStats(t *testing.T) {
	s := CalcStats([]float64{1, 2, 3, 4})
	assert.Equal(t, 4, s.N)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.Equal(t, 2.5, s.Mean)
	assert.InDelta(t, 1.2910, s.Std, 1e-4)

	one := CalcStats([]float64{7})
	assert.Equal(t, 7.0, one.Mean)
	assert.Equal(t, 0.0, one.Std)

	assert.Equal(t, Stats{}, CalcStats(nil))
}

func TestMakespanReport_PassedAndRatio(t *testing.T) {
	r := MakespanReport{Case: MakespanCase{Expected: 15}, Makespan: 16, LowerBound: 14}
	assert.False(t, r.Passed())
	assert.InDelta(t, 16.0/14.0, r.Ratio(), 1e-9)

	r = MakespanReport{Makespan: 40, Optimal: 10, HasOptimal: true}
	assert.False(t, r.Passed())
	assert.Equal(t, 4.0, r.Ratio())
}

func TestWriteAttendanceText(t *testing.T) {
	var buf bytes.Buffer
	rep := AttendanceReport{
		Groups:     []float64{5, 10, 20, 50, 55},
		Capacity:   60,
		Approx:     55,
		Optimal:    60,
		GreedyTime: 1500 * time.Microsecond,
		ExactTime:  2 * time.Millisecond,
	}
	require.NoError(t, WriteAttendanceText(&buf, rep))
	want := "Groups: [5, 10, 20, 50, 55]\n" +
		"Capacity: 60\n" +
		"Algorithm Approximate Attendance: 55\n" +
		"Optimal Attendance (Brute Force): 60\n" +
		"Algorithm guarantees at least 91.67% of the optimal solution\n" +
		"Algorithm Time: 0.001500 seconds\n" +
		"Brute Force Time: 0.002000 seconds\n" +
		attendanceRule + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteMakespanText(t *testing.T) {
	var buf bytes.Buffer
	rep := MakespanReport{
		Case:       MakespanCase{Name: "dominant-job", Jobs: []float64{1, 1, 1, 1, 50}, Processors: 3, Expected: 50},
		Makespan:   50,
		Loads:      []float64{50, 2, 2},
		LowerBound: 50,
	}
	require.NoError(t, WriteMakespanText(&buf, 4, rep))
	out := buf.String()
	assert.Contains(t, out, "Test Case 4 (dominant-job):\n")
	assert.Contains(t, out, "Jobs: [1, 1, 1, 1, 50]\n")
	assert.Contains(t, out, "Expected Makespan: 50\n")
	assert.Contains(t, out, "Processor Loads: [50, 2, 2]\n")
	assert.Contains(t, out, "Test Passed\n")
	assert.NotContains(t, out, "Optimal Makespan")
}
