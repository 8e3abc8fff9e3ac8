package probe

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Config contains Tracer configuration options. Zero values select defaults.
type Config struct {
	// Output receives one diagnostic line per entry (defaults to os.Stdout).
	// Use io.Discard to silence it.
	Output io.Writer

	// StackPointer reads the stack pointer (defaults to CurrentStackPointer).
	StackPointer StackPointerFunc

	// Socket opens the datagram socket (defaults to DefaultSocket).
	Socket SocketFunc

	// Clock is the wall clock (defaults to time.Now).
	Clock func() time.Time
}

// Tracer holds the state of one probe: the call-stack depth, the timestamp
// baseline and the transport to the collector.
//
// All goroutines sharing a Tracer are traced as a single logical call stack.
// Calls are serialized, so the state stays consistent, but interleaved entries
// from different goroutines produce meaningless depths.
type Tracer struct {
	mu           sync.Mutex
	tracker      *Tracker
	transport    *Transport
	out          io.Writer
	stackPointer StackPointerFunc
}

// NewTracer creates a new Tracer. No socket is opened until the first entry.
func NewTracer(cfg Config) *Tracer {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	sp := cfg.StackPointer
	if sp == nil {
		sp = CurrentStackPointer
	}

	return &Tracer{
		tracker:      NewTracker(cfg.Clock),
		transport:    NewTransport(cfg.Socket),
		out:          out,
		stackPointer: sp,
	}
}

// HandleEntry records a function entry from callSite and reports it.
func (t *Tracer) HandleEntry(callSite uintptr) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	depth, elapsed := t.tracker.OnEnter()
	return t.report(Event{
		Depth:         depth,
		ElapsedMicros: elapsed,
		CallSite:      uint64(callSite),
		StackPointer:  uint64(t.stackPointer()),
	})
}

// HandleEntryAt is HandleEntry with a stack pointer read by the caller.
func (t *Tracer) HandleEntryAt(callSite, sp uintptr) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	depth, elapsed := t.tracker.OnEnter()
	return t.report(Event{
		Depth:         depth,
		ElapsedMicros: elapsed,
		CallSite:      uint64(callSite),
		StackPointer:  uint64(sp),
	})
}

// HandleExit records a function exit. Nothing is reported.
func (t *Tracer) HandleExit(callSite uintptr) {
	t.mu.Lock()
	t.tracker.OnExit()
	t.mu.Unlock()
}

// Depth returns the current call-stack depth.
func (t *Tracer) Depth() uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tracker.Depth()
}

// Close releases the transport socket.
func (t *Tracer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.transport.Close()
}

func (t *Tracer) report(e Event) error {
	fmt.Fprintf(t.out, "%s\n", e)
	return t.transport.Send(e)
}
