package probe

import "time"

// Tracker maintains the call-stack depth and the elapsed-time baseline of a
// single logical call stack.
//
// A Tracker is not safe for concurrent use; Tracer serializes access to it.
type Tracker struct {
	clock    func() time.Time
	depth    uint32
	baseline time.Time
	started  bool
}

// NewTracker creates a tracker reading the given wall clock.
// A nil clock selects time.Now.
func NewTracker(clock func() time.Time) *Tracker {
	if clock == nil {
		clock = time.Now
	}
	return &Tracker{clock: clock}
}

// OnEnter records a function entry. It returns the depth after the increment
// and the microseconds elapsed since the first entry, which reports 0.
func (t *Tracker) OnEnter() (uint32, uint64) {
	t.depth++
	return t.depth, t.elapsedMicros()
}

// OnExit records a function exit. Unpaired exits wrap the depth around.
func (t *Tracker) OnExit() {
	t.depth--
}

// Depth returns the current call-stack depth.
func (t *Tracker) Depth() uint32 {
	return t.depth
}

func (t *Tracker) elapsedMicros() uint64 {
	now := t.clock()
	if !t.started {
		t.started = true
		t.baseline = now
		return 0
	}
	return elapsedMicros(t.baseline, now)
}

// elapsedMicros returns now-base in whole microseconds. A clock that moved
// backwards yields a wrapped, very large value.
func elapsedMicros(base, now time.Time) uint64 {
	sec := now.Unix() - base.Unix()
	usec := int64(now.Nanosecond()/1000) - int64(base.Nanosecond()/1000)
	return uint64(sec*1_000_000 + usec)
}
