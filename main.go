// sys-analyzer is an interactive terminal dashboard for local host metrics.
//
// It samples CPU, memory, disk, network, battery and process statistics
// four times a second and can export the average CPU utilization over the
// last 10, 30, 60 or 120 seconds as a paginated HTML report.
//
// Usage:
//
//	sys-analyzer [flags]
//	sys-analyzer report --seconds N [--dir DIR]
//	sys-analyzer version
//
// Flags:
//
//	--config string    Path to configuration file (default: ~/.config/sys-analyzer/config.yaml)
//	--theme string     Theme override (monitoring|minimal|full)
//	--log-file string  Write logs to this file
//	--verbose          Enable debug logging
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/sys-analyzer/collectors/sysmetrics"
	"gitlab.com/tinyland/lab/sys-analyzer/config"
	"gitlab.com/tinyland/lab/sys-analyzer/display/tui"
	"gitlab.com/tinyland/lab/sys-analyzer/report"
)

var errNotTerminal = errors.New("stdout is not a terminal; use 'sys-analyzer report' for headless runs")

// rootOptions holds flags shared by every command.
type rootOptions struct {
	configPath string
	theme      string
	logFile    string
	verbose    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "sys-analyzer: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "sys-analyzer",
		Short:         "Terminal dashboard for host metrics with CPU history reports",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd.Context(), opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to configuration file (default: ~/.config/sys-analyzer/config.yaml)")
	pf.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme override ("+strings.Join(tui.ThemeNames(), "|")+")")

	cmd.AddCommand(newReportCmd(opts), newVersionCmd())
	return cmd
}

// loadSettings reads the config file, applies flag overrides and opens the
// logger. The caller must call the returned close func.
func loadSettings(opts *rootOptions) (*config.Config, *slog.Logger, func() error, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, nil, nil, err
	}

	if opts.theme != "" {
		cfg.Display.Theme = opts.theme
	}
	if opts.logFile != "" {
		cfg.Logging.File = opts.logFile
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg.Logging.File, cfg.LogLevel())
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, closeLog, nil
}

func runDashboard(ctx context.Context, opts *rootOptions) error {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return errNotTerminal
	}

	cfg, logger, closeLog, err := loadSettings(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	sampler := sysmetrics.NewSampler(logger)
	if err := sampler.Probe(ctx); err != nil {
		return fmt.Errorf("cpu metrics unavailable: %w", err)
	}

	logger.Info("dashboard starting", "version", version, "theme", cfg.Display.Theme, "report_dir", cfg.Report.Dir)

	m := tui.New(
		sampler,
		sysmetrics.NewHostReader(cfg.Display.ProcessLimit, logger),
		report.NewReporter(cfg.Report.Dir, logger),
		tui.Options{Theme: cfg.Display.Theme, Context: ctx, Logger: logger},
	)
	if err := tui.Run(m); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
