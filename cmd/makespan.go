package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kilianp07/approx/app"
	"github.com/kilianp07/approx/core/bench"
)

var (
	makespanJobs       []float64
	makespanProcessors int
	makespanOptimal    bool
)

var makespanCmd = &cobra.Command{
	Use:   "makespan",
	Short: "Schedule jobs on identical processors with LPT",
	Example: `  approx makespan --jobs 10,10,10,10 --processors 2
  approx makespan --jobs 3,3,2,2,2 --processors 2 --optimal`,
	RunE: runMakespan,
}

func init() {
	makespanCmd.Flags().Float64SliceVar(&makespanJobs, "jobs", nil, "job durations")
	makespanCmd.Flags().IntVarP(&makespanProcessors, "processors", "p", 1, "number of processors")
	makespanCmd.Flags().BoolVar(&makespanOptimal, "optimal", false, "also compute the exact makespan")
	rootCmd.AddCommand(makespanCmd)
}

func runMakespan(cmd *cobra.Command, _ []string) error {
	c := bench.MakespanCase{Name: "cli", Jobs: makespanJobs, Processors: makespanProcessors}
	return withService(cmd, func(ctx context.Context, svc *app.Service) error {
		rep, err := svc.Runner.RunMakespan(ctx, c, makespanOptimal)
		if err != nil {
			return err
		}
		return bench.WriteMakespanText(cmd.OutOrStdout(), 1, rep)
	})
}
