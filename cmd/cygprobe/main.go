//go:build cgo

// Command cygprobe packages the calltrace probe for C and C++ programs built
// with -finstrument-functions:
//
//	go build -buildmode=c-archive -o libcygprobe.a ./cmd/cygprobe
//	cc -finstrument-functions app.c libcygprobe.a -lpthread -o app
//
// The compiler-inserted __cyg_profile_func_enter/exit hooks are defined in
// shim.c, outside instrumentation, and forward to the exported functions below.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"os"

	"github.com/coral-mesh/calltrace/pkg/probe"
)

var hooks *probe.Hooks

func init() {
	hooks = newHooks(os.Stdout)
}

//export calltraceEnter
func calltraceEnter(callSite, sp uintptr) {
	hooks.EnterAt(callSite, sp)
}

//export calltraceExit
func calltraceExit(callSite uintptr) {
	hooks.Exit(callSite)
}

func main() {}
