// Package run implements the 'calltrace run' command, which drives the probe
// with a built-in instrumented workload.
package run

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coral-mesh/calltrace/internal/cli/helpers"
	"github.com/coral-mesh/calltrace/internal/config"
	"github.com/coral-mesh/calltrace/internal/errors"
	"github.com/coral-mesh/calltrace/internal/logging"
	"github.com/coral-mesh/calltrace/pkg/probe"
)

// NewRunCmd creates the run command.
func NewRunCmd(global *helpers.GlobalFlags) *cobra.Command {
	var (
		depth      int
		fanout     int
		iterations int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Trace a built-in workload and report it to the collector",
		Long: `Run a recursive tree walk in which every call is traced.

Each function entry prints one line to stdout and sends one 28-byte datagram
to the collector on 127.0.0.1:7155. No collector needs to be listening.

Exit status 44 means the datagram socket could not be created, 45 means a
record could not be sent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.Load()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("depth") {
				cfg.Workload.Depth = depth
			}
			if cmd.Flags().Changed("fanout") {
				cfg.Workload.Fanout = fanout
			}
			if cmd.Flags().Changed("iterations") {
				cfg.Workload.Iterations = iterations
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := logging.NewWithComponent(cfg.LoggerConfig(), "run")

			out := cmd.OutOrStdout()
			if !cfg.Probe.Echo {
				out = io.Discard
			}

			_, err = Run(cfg, probe.Config{Output: out}, logger)
			return err
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "Height of the traced call tree")
	cmd.Flags().IntVar(&fanout, "fanout", 0, "Calls made by every non-leaf function")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "Number of tree walks")

	return cmd
}

// Summary describes a finished workload run.
type Summary struct {
	Entries    int
	FinalDepth uint32
	Duration   time.Duration
}

// Run traces cfg.Workload with a new tracer built from probeCfg. Transport
// failures terminate the process through probe.Hooks.
func Run(cfg *config.Config, probeCfg probe.Config, logger zerolog.Logger) (*Summary, error) {
	tracer := probe.NewTracer(probeCfg)
	defer errors.DeferClose(logger, tracer, "failed to close probe socket")

	hooks := probe.NewHooks(tracer, probe.HooksConfig{Logger: &logger})
	walk := &treeWalk{hooks: hooks, fanout: cfg.Workload.Fanout}

	logger.Debug().
		Str("collector", probe.CollectorAddr.String()).
		Int("depth", cfg.Workload.Depth).
		Int("fanout", cfg.Workload.Fanout).
		Int("iterations", cfg.Workload.Iterations).
		Msg("Starting traced workload")

	start := time.Now()
	entries := 0
	for i := 0; i < cfg.Workload.Iterations; i++ {
		entries += walk.visit(cfg.Workload.Depth)
	}

	summary := &Summary{
		Entries:    entries,
		FinalDepth: tracer.Depth(),
		Duration:   time.Since(start),
	}

	if summary.FinalDepth != 0 {
		return summary, fmt.Errorf("unbalanced trace: depth %d after workload", summary.FinalDepth)
	}

	logger.Info().
		Int("entries", summary.Entries).
		Uint32("final_depth", summary.FinalDepth).
		Dur("duration", summary.Duration).
		Msg("Traced workload finished")

	return summary, nil
}
