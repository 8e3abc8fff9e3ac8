package helpers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/coral-mesh/calltrace/internal/config"
)

// OutputFormat is a structured output format.
type OutputFormat string

const (
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// GlobalFlags holds the flags shared by every calltrace command.
type GlobalFlags struct {
	ConfigPath string
	LogLevel   string
	LogPretty  bool

	flags *pflag.FlagSet
}

// AddFlags registers the global flags on fs, usually the root command's
// persistent flag set.
func (g *GlobalFlags) AddFlags(fs *pflag.FlagSet) {
	g.flags = fs
	fs.StringVar(&g.ConfigPath, "config", "", "Config file (default $CALLTRACE_CONFIG or ./calltrace.yaml)")
	fs.StringVar(&g.LogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error, disabled)")
	fs.BoolVar(&g.LogPretty, "log-pretty", true, "Human-readable log output")
}

// Load resolves the effective configuration: defaults, config file,
// environment, then explicitly set flags.
func (g *GlobalFlags) Load() (*config.Config, error) {
	cfg, err := config.Load(config.ResolvePath(g.ConfigPath))
	if err != nil {
		return nil, err
	}

	if g.flags != nil {
		if g.flags.Changed("log-level") {
			cfg.Logging.Level = g.LogLevel
		}
		if g.flags.Changed("log-pretty") {
			cfg.Logging.Pretty = g.LogPretty
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AddFormatFlag adds a standard --format/-o flag to a command.
func AddFormatFlag(cmd *cobra.Command, formatVar *string, defaultFormat OutputFormat, supportedFormats []OutputFormat) {
	formatNames := make([]string, len(supportedFormats))
	for i, f := range supportedFormats {
		formatNames[i] = string(f)
	}

	description := fmt.Sprintf("Output format (%s)", strings.Join(formatNames, ", "))
	cmd.Flags().StringVarP(formatVar, "format", "o", string(defaultFormat), description)

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formatNames, cobra.ShellCompDirectiveNoFileComp
	})
}

// ValidateFormat checks if the format is in the supported list.
func ValidateFormat(format string, supported []OutputFormat) error {
	for _, s := range supported {
		if format == string(s) {
			return nil
		}
	}

	supportedNames := make([]string, len(supported))
	for i, s := range supported {
		supportedNames[i] = string(s)
	}

	return fmt.Errorf("unsupported format %q, must be one of: %s",
		format, strings.Join(supportedNames, ", "))
}
