package main

import (
	"io"

	"github.com/coral-mesh/calltrace/internal/config"
	"github.com/coral-mesh/calltrace/internal/logging"
	"github.com/coral-mesh/calltrace/pkg/probe"
)

// newHooks builds the process-wide probe from CALLTRACE_* configuration.
// Diagnostics go to stderr; trace lines go to stdout unless echo is disabled.
func newHooks(stdout io.Writer) *probe.Hooks {
	cfg, err := config.Load(config.ResolvePath(""))
	if err != nil {
		cfg = config.Default()
	}

	logCfg := cfg.LoggerConfig()
	logCfg.Pretty = false
	logger := logging.NewWithComponent(logCfg, "cygprobe")
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid configuration, using defaults")
	}

	if !cfg.Probe.Echo {
		stdout = io.Discard
	}

	tracer := probe.NewTracer(probe.Config{Output: stdout})
	return probe.NewHooks(tracer, probe.HooksConfig{Logger: &logger})
}
