//go:build !cgo

package main

import (
	"fmt"
	"os"

	"github.com/coral-mesh/calltrace/internal/constants"
)

func main() {
	_, _ = fmt.Fprintln(os.Stderr, "cygprobe must be built with cgo enabled (-buildmode=c-archive)")
	os.Exit(constants.ExitFailure)
}
