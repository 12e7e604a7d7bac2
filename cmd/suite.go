package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/approx/app"
	"github.com/kilianp07/approx/core/bench"
	"github.com/kilianp07/approx/pkg/export"
)

var (
	suiteOut          string
	suiteServeMetrics bool
)

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Run the makespan case table and the random attendance instances",
	RunE:  runSuite,
}

func init() {
	suiteCmd.Flags().StringVarP(&suiteOut, "out", "o", "", "export runs to a .csv or .json file")
	suiteCmd.Flags().BoolVar(&suiteServeMetrics, "serve-metrics", false, "expose Prometheus metrics until interrupted")
	rootCmd.AddCommand(suiteCmd)
}

func runSuite(cmd *cobra.Command, _ []string) error {
	return withService(cmd, func(ctx context.Context, svc *app.Service) error {
		if suiteServeMetrics {
			svc.ServeMetrics(ctx)
		}
		res, err := svc.Suite(ctx)
		if err != nil {
			return err
		}
		if err := writeSummaries(cmd, res.Summaries); err != nil {
			return err
		}
		if suiteOut != "" {
			if err := exportSuite(suiteOut, res); err != nil {
				return fmt.Errorf("export: %w", err)
			}
		}
		failed := 0
		for _, s := range res.Summaries {
			failed += s.Runs - s.Passed
		}
		if suiteServeMetrics {
			fmt.Fprintln(cmd.ErrOrStderr(), "serving metrics, press Ctrl+C to exit")
			<-ctx.Done()
		}
		if failed > 0 {
			return fmt.Errorf("%d runs failed", failed)
		}
		return nil
	})
}

func writeSummaries(cmd *cobra.Command, sums []bench.Summary) error {
	out := cmd.OutOrStdout()
	for _, s := range sums {
		_, err := fmt.Fprintf(out, "%s: %d/%d passed, ratio mean %.4f (std %.4f, min %.4f, max %.4f), heuristic %.4f ms, exact %.4f ms\n",
			s.Kind, s.Passed, s.Runs, s.Ratio.Mean, s.Ratio.Std, s.Ratio.Min, s.Ratio.Max, s.HeuristicMs.Mean, s.ExactMs.Mean)
		if err != nil {
			return err
		}
	}
	return nil
}

func exportSuite(path string, res bench.SuiteResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return export.WriteJSON(f, res)
	default:
		return export.WriteCSV(f, res)
	}
}
