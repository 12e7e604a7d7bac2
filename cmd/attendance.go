package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/approx/app"
	"github.com/kilianp07/approx/core/bench"
)

var (
	attendanceGroups   []float64
	attendanceCapacity float64
	attendanceRandom   bool
	attendanceSeed     int64
)

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Admit visitor groups under a capacity with the greedy heuristic",
	Example: `  approx attendance --groups 5,10,20,25,30 --capacity 60
  approx attendance --random --seed 7`,
	RunE: runAttendance,
}

func init() {
	attendanceCmd.Flags().Float64SliceVar(&attendanceGroups, "groups", nil, "group sizes")
	attendanceCmd.Flags().Float64Var(&attendanceCapacity, "capacity", 0, "venue capacity")
	attendanceCmd.Flags().BoolVar(&attendanceRandom, "random", false, "draw a random instance using the suite attendance parameters")
	attendanceCmd.Flags().Int64Var(&attendanceSeed, "seed", 0, "seed of the random instance (0 uses the current time)")
	attendanceCmd.MarkFlagsMutuallyExclusive("random", "groups")
	rootCmd.AddCommand(attendanceCmd)
}

func runAttendance(cmd *cobra.Command, _ []string) error {
	if !attendanceRandom && !cmd.Flags().Changed("capacity") {
		return fmt.Errorf("--capacity is required unless --random is set")
	}
	return withService(cmd, func(ctx context.Context, svc *app.Service) error {
		groups, capacity := attendanceGroups, attendanceCapacity
		if attendanceRandom {
			seed := attendanceSeed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			groups, capacity = bench.RandomAttendanceSeed(seed, svc.SuiteConfig().Attendance)
		}
		rep, err := svc.Runner.RunAttendance(ctx, groups, capacity)
		if err != nil {
			return err
		}
		return bench.WriteAttendanceText(cmd.OutOrStdout(), rep)
	})
}
