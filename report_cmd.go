package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/sys-analyzer/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/sys-analyzer/display/tui"
	"gitlab.com/tinyland/lab/sys-analyzer/history"
	"gitlab.com/tinyland/lab/sys-analyzer/report"
)

var errReportCancelled = errors.New("report cancelled before the window filled; no file written")

func newReportCmd(root *rootOptions) *cobra.Command {
	var (
		seconds int
		dir     string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Sample CPU for a fixed window and write an HTML report without the dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if seconds < 1 || seconds > history.MaxWindowSeconds {
				return fmt.Errorf("--seconds must be between 1 and %d, got %d", history.MaxWindowSeconds, seconds)
			}

			cfg, logger, closeLog, err := loadSettings(root)
			if err != nil {
				return err
			}
			defer closeLog()
			if dir == "" {
				dir = cfg.Report.Dir
			}

			ctx := cmd.Context()
			sampler := sysmetrics.NewSampler(logger)
			if err := sampler.Probe(ctx); err != nil {
				return fmt.Errorf("cpu metrics unavailable: %w", err)
			}

			ticker := time.NewTicker(history.TickInterval)
			defer ticker.Stop()

			fmt.Fprintf(cmd.ErrOrStderr(), "sampling CPU for %ds...\n", seconds)
			res, err := runHeadless(ctx, sampler, report.NewReporter(dir, logger), seconds, ticker.C, logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Path)
			return nil
		},
	}

	cmd.Flags().IntVar(&seconds, "seconds", 0, "Report window in seconds (1-120)")
	cmd.Flags().StringVar(&dir, "dir", "", "Output directory (default: report.dir from config)")
	_ = cmd.MarkFlagRequired("seconds")
	return cmd
}

// runHeadless records one sample per tick until seconds worth of ticks have
// elapsed, then generates the report. Cancelling ctx first writes nothing.
func runHeadless(ctx context.Context, sampler tui.CPUSampler, reporter tui.Reporter, seconds int, ticks <-chan time.Time, logger *slog.Logger) (report.Result, error) {
	buf := history.NewBuffer(history.DefaultCapacity)
	want := seconds * history.TicksPerSecond

	for n := 0; n < want; {
		select {
		case <-ctx.Done():
			logger.Info("headless report cancelled", "ticks", n, "want", want)
			return report.Result{}, errReportCancelled
		case <-ticks:
		}
		n++

		s, err := sampler.SampleCPU(ctx)
		if err != nil {
			logger.Warn("cpu sample failed", "tick", n, "error", err)
			continue
		}
		buf.Append(s.Average)
	}

	return reporter.Generate(buf.Snapshot(), want, seconds)
}
