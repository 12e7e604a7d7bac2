package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/approx/app"
	"github.com/kilianp07/approx/core/model"
	"github.com/kilianp07/approx/core/resultlog"
)

var (
	logsKind  string
	logsCase  string
	logsSince time.Duration
	logsLimit int
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print result log records as JSON lines",
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().StringVar(&logsKind, "kind", "", "filter by run kind (makespan or attendance)")
	logsCmd.Flags().StringVar(&logsCase, "case", "", "filter by makespan case name")
	logsCmd.Flags().DurationVar(&logsSince, "since", 0, "only records newer than this duration")
	logsCmd.Flags().IntVarP(&logsLimit, "limit", "n", 0, "keep the most recent records only")
	rootCmd.AddCommand(logsCmd)
}

func logsQuery(now time.Time) (resultlog.Query, error) {
	q := resultlog.Query{Case: logsCase, Limit: logsLimit}
	if logsKind != "" {
		q.Kind = model.ParseRunKind(logsKind)
		if q.Kind == 0 {
			return q, fmt.Errorf("unknown run kind %q", logsKind)
		}
	}
	if logsSince > 0 {
		q.Start = now.Add(-logsSince)
	}
	return q, nil
}

func runLogs(cmd *cobra.Command, _ []string) error {
	q, err := logsQuery(time.Now())
	if err != nil {
		return err
	}
	return withService(cmd, func(ctx context.Context, svc *app.Service) error {
		recs, err := svc.Query(ctx, q)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		for _, r := range recs {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encode record %s: %w", r.ID, err)
			}
		}
		return nil
	})
}
