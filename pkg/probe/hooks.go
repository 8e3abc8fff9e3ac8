package probe

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/coral-mesh/calltrace/internal/constants"
	"github.com/coral-mesh/calltrace/internal/errors"
	"github.com/coral-mesh/calltrace/internal/logging"
)

// HooksConfig contains Hooks configuration options.
type HooksConfig struct {
	// Logger receives fatal transport errors (optional, defaults to a plain
	// error-level logger on os.Stderr).
	Logger *zerolog.Logger

	// Exit terminates the process (optional, defaults to os.Exit).
	Exit func(code int)
}

// Hooks is the dispatch layer between instrumentation and a Tracer. Tracing
// failures are not recoverable here: they are logged and the process exits
// with the failure's exit code.
type Hooks struct {
	tracer *Tracer
	logger zerolog.Logger
	exit   func(int)
}

// NewHooks creates the hook dispatch for tracer.
func NewHooks(tracer *Tracer, cfg HooksConfig) *Hooks {
	var logger zerolog.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	} else {
		logger = logging.NewWithComponent(logging.Config{Level: "error", Output: os.Stderr}, "probe")
	}

	exit := cfg.Exit
	if exit == nil {
		exit = os.Exit
	}

	return &Hooks{
		tracer: tracer,
		logger: logger,
		exit:   exit,
	}
}

// Enter handles a function entry from callSite.
func (h *Hooks) Enter(callSite uintptr) {
	if err := h.tracer.HandleEntry(callSite); err != nil {
		h.fail(err)
	}
}

// EnterAt handles a function entry with a stack pointer read by the caller.
func (h *Hooks) EnterAt(callSite, sp uintptr) {
	if err := h.tracer.HandleEntryAt(callSite, sp); err != nil {
		h.fail(err)
	}
}

// Exit handles a function exit.
func (h *Hooks) Exit(callSite uintptr) {
	h.tracer.HandleExit(callSite)
}

// Trace enters the calling function and returns its exit hook:
//
//	defer hooks.Trace()()
//
//go:noinline
func (h *Hooks) Trace() func() {
	callSite := callerPC(3)
	h.Enter(callSite)
	return func() { h.Exit(callSite) }
}

// Tracer returns the tracer the hooks dispatch to.
func (h *Hooks) Tracer() *Tracer {
	return h.tracer
}

func (h *Hooks) fail(err error) {
	code := errors.ExitCode(err, constants.ExitFailure)
	h.logger.Error().
		Err(err).
		Int("exit_code", code).
		Msg("Trace transport failed")
	h.exit(code)
}

// callerPC returns the return address runtime.Callers records for the frame
// skip levels above callerPC.
//
//go:noinline
func callerPC(skip int) uintptr {
	var pcs [1]uintptr
	if runtime.Callers(skip+1, pcs[:]) == 0 {
		return 0
	}
	return pcs[0]
}
