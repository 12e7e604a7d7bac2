package bench

import "math/rand"

// RandomAttendance draws an attendance instance: c.Groups sizes uniform in
// [1, MaxGroupSize] and a capacity uniform in [MinCapacity, MaxCapacity].
func RandomAttendance(rng *rand.Rand, c AttendanceConfig) ([]float64, float64) {
	groups := make([]float64, c.Groups)
	for i := range groups {
		groups[i] = float64(1 + rng.Intn(c.MaxGroupSize))
	}
	capacity := float64(c.MinCapacity + rng.Intn(c.MaxCapacity-c.MinCapacity+1))
	return groups, capacity
}

func randForSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomAttendanceSeed draws the instance RandomAttendance produces for seed.
func RandomAttendanceSeed(seed int64, c AttendanceConfig) ([]float64, float64) {
	return RandomAttendance(randForSeed(seed), c)
}
