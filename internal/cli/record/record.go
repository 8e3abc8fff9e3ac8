// Package record implements the 'calltrace record' command, which prints the
// wire encoding of a single trace record.
package record

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coral-mesh/calltrace/pkg/probe"
)

// NewRecordCmd creates the record command.
func NewRecordCmd() *cobra.Command {
	var (
		depth   uint32
		elapsed uint64
		pc      string
		sp      string
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Print the 28-byte encoding of a trace record",
		Long: `Encode one trace record and print its bytes in hex, one group per field:

  depth (4) | elapsed_micros (8) | call_site (8) | stack_pointer (8)

Fields use the host's native byte order, exactly as the probe sends them.
Addresses accept decimal or 0x-prefixed hex.`,
		Example: `  calltrace record --depth 1 --pc 0x1000 --sp 0x7ffe1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			callSite, err := parseAddress(pc)
			if err != nil {
				return fmt.Errorf("invalid --pc: %w", err)
			}
			stackPointer, err := parseAddress(sp)
			if err != nil {
				return fmt.Errorf("invalid --sp: %w", err)
			}

			e := probe.Event{
				Depth:         depth,
				ElapsedMicros: elapsed,
				CallSite:      callSite,
				StackPointer:  stackPointer,
			}
			return writeRecord(cmd.OutOrStdout(), e)
		},
	}

	cmd.Flags().Uint32Var(&depth, "depth", 1, "Call-stack depth")
	cmd.Flags().Uint64Var(&elapsed, "elapsed", 0, "Elapsed microseconds")
	cmd.Flags().StringVar(&pc, "pc", "0", "Call-site address")
	cmd.Flags().StringVar(&sp, "sp", "0", "Stack pointer address")

	return cmd
}

func parseAddress(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 0, 64)
}

func writeRecord(w io.Writer, e probe.Event) error {
	var buf [probe.RecordSize]byte
	e.Encode(buf[:])

	fields := []string{
		spaced(buf[0:4]),
		spaced(buf[4:12]),
		spaced(buf[12:20]),
		spaced(buf[20:28]),
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", e, strings.Join(fields, " | "))
	return err
}

func spaced(b []byte) string {
	parts := make([]string, len(b))
	for i := range b {
		parts[i] = hex.EncodeToString(b[i : i+1])
	}
	return strings.Join(parts, " ")
}
