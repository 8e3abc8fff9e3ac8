// Package config provides configuration loading for calltrace.
//
// Configuration is layered: built-in defaults, then an optional YAML file,
// then CALLTRACE_* environment variables. The collector endpoint is fixed and
// deliberately absent from configuration.
package config

import (
	"fmt"

	"github.com/coral-mesh/calltrace/internal/constants"
	"github.com/coral-mesh/calltrace/internal/logging"
)

// Config is the calltrace configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Probe    ProbeConfig    `yaml:"probe"`
	Workload WorkloadConfig `yaml:"workload"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"CALLTRACE_LOG_LEVEL"`
	Pretty bool   `yaml:"pretty" env:"CALLTRACE_LOG_PRETTY"`
}

// ProbeConfig controls the probe.
type ProbeConfig struct {
	// Echo writes one line per traced entry to stdout.
	Echo bool `yaml:"echo" env:"CALLTRACE_ECHO"`
}

// WorkloadConfig sizes the built-in demo workload.
type WorkloadConfig struct {
	Depth      int `yaml:"depth" env:"CALLTRACE_WORKLOAD_DEPTH"`
	Fanout     int `yaml:"fanout" env:"CALLTRACE_WORKLOAD_FANOUT"`
	Iterations int `yaml:"iterations" env:"CALLTRACE_WORKLOAD_ITERATIONS"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  constants.DefaultLogLevel,
			Pretty: constants.DefaultLogPretty,
		},
		Probe: ProbeConfig{
			Echo: true,
		},
		Workload: WorkloadConfig{
			Depth:      constants.DefaultWorkloadDepth,
			Fanout:     constants.DefaultWorkloadFanout,
			Iterations: constants.DefaultWorkloadIterations,
		},
	}
}

// Validate checks the configuration for values the probe cannot run with.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("invalid logging.level %q (expected trace, debug, info, warn, error or disabled)", c.Logging.Level)
	}

	if c.Workload.Depth < 1 {
		return fmt.Errorf("workload.depth must be at least 1, got %d", c.Workload.Depth)
	}
	if c.Workload.Fanout < 1 {
		return fmt.Errorf("workload.fanout must be at least 1, got %d", c.Workload.Fanout)
	}
	if c.Workload.Iterations < 1 {
		return fmt.Errorf("workload.iterations must be at least 1, got %d", c.Workload.Iterations)
	}

	return nil
}

// LoggerConfig returns the logger configuration for this config.
func (c *Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Pretty = c.Logging.Pretty
	return cfg
}
