// Package config implements the 'calltrace config' command family.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coral-mesh/calltrace/internal/cli/helpers"
	"github.com/coral-mesh/calltrace/internal/config"
)

// NewConfigCmd creates the config command and its subcommands.
func NewConfigCmd(global *helpers.GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect calltrace configuration",
		Long: `Inspect calltrace configuration.

Configuration Priority:
  1. Command-line flags (highest)
  2. CALLTRACE_* environment variables
  3. Config file (--config, $CALLTRACE_CONFIG or ./calltrace.yaml)
  4. Built-in defaults

The collector endpoint (127.0.0.1:7155) is fixed and not configurable.`,
	}

	cmd.AddCommand(newViewCmd(global))

	return cmd
}

// newViewCmd creates the 'config view' command.
func newViewCmd(global *helpers.GlobalFlags) *cobra.Command {
	var format string
	supported := []helpers.OutputFormat{helpers.FormatYAML, helpers.FormatJSON}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := helpers.ValidateFormat(format, supported); err != nil {
				return err
			}

			cfg, err := global.Load()
			if err != nil {
				return err
			}

			var data []byte
			switch helpers.OutputFormat(format) {
			case helpers.FormatJSON:
				data, err = json.MarshalIndent(cfg, "", "  ")
				data = append(data, '\n')
			default:
				data, err = config.Marshal(cfg)
			}
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	helpers.AddFormatFlag(cmd, &format, helpers.FormatYAML, supported)

	return cmd
}
