package makespan

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/approx/core/model"
)

// LowerBound returns max(longest job, total work / processors), a value no
// schedule can beat.
func LowerBound(jobs []float64, processors int) (float64, error) {
	if err := model.ValidateProcessors(processors); err != nil {
		return 0, err
	}
	if err := model.ValidateValues("job", jobs); err != nil {
		return 0, err
	}
	if len(jobs) == 0 {
		return 0, nil
	}
	return math.Max(floats.Max(jobs), floats.Sum(jobs)/float64(processors)), nil
}
