// Package cli assembles the calltrace command tree.
package cli

import (
	"github.com/spf13/cobra"

	configcmd "github.com/coral-mesh/calltrace/internal/cli/config"
	"github.com/coral-mesh/calltrace/internal/cli/helpers"
	"github.com/coral-mesh/calltrace/internal/cli/record"
	"github.com/coral-mesh/calltrace/internal/cli/run"
	"github.com/coral-mesh/calltrace/pkg/version"
)

// NewRootCmd creates the calltrace root command with all subcommands.
func NewRootCmd() *cobra.Command {
	global := &helpers.GlobalFlags{}

	rootCmd := &cobra.Command{
		Use:   "calltrace",
		Short: "calltrace - function call tracing probe",
		Long: `Trace function entries and exits and report every entry to a local
collector as a fixed 28-byte UDP datagram on 127.0.0.1:7155.

Each record carries the call-stack depth, the microseconds elapsed since the
first traced call, the call-site address and the stack pointer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	global.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(run.NewRunCmd(global))
	rootCmd.AddCommand(record.NewRecordCmd())
	rootCmd.AddCommand(configcmd.NewConfigCmd(global))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("calltrace version %s\n", version.Version)
			cmd.Printf("Git commit: %s\n", version.GitCommit)
			cmd.Printf("Build date: %s\n", version.BuildDate)
			cmd.Printf("Go version: %s\n", version.GoVersion)
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
