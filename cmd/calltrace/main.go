// Package main provides the calltrace binary.
package main

import (
	"fmt"
	"os"

	"github.com/coral-mesh/calltrace/internal/cli"
	"github.com/coral-mesh/calltrace/internal/constants"
	"github.com/coral-mesh/calltrace/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitCode(err, constants.ExitFailure))
	}
}
