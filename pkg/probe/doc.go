// Package probe implements the in-process side of calltrace: a function
// entry/exit tracer that reports every entry to a local collector.
//
// For each function entry the probe records the current call-stack depth, the
// microseconds elapsed since the first traced entry, the call-site program
// counter and the stack pointer, and sends them as one fixed 28-byte UDP
// datagram to 127.0.0.1:7155. Function exits only decrement the depth.
//
// The state of a probe lives in a Tracer, which is created once and passed to
// the hooks explicitly:
//
//	tracer := probe.NewTracer(probe.Config{})
//	hooks := probe.NewHooks(tracer, probe.HooksConfig{Logger: logger})
//
//	func work() {
//	    defer hooks.Trace()()
//	    // ...
//	}
//
// Transport failures are unrecoverable for a running probe. The Tracer returns
// them as *ChannelError or *SendError; Hooks logs them and terminates the
// process with exit status 44 or 45 respectively.
//
// C and C++ programs built with -finstrument-functions link the cmd/cygprobe
// archive, which forwards the compiler-inserted hooks to this package.
//
// Records are written in the host's native byte order. Collectors are expected
// to run on the same machine.
package probe
