package brew

import (
	"fmt"
	"time"
)

// State is the phase a Timer is in.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Timer is a stopwatch for a single steep. It holds accumulated elapsed
// time, the run flag and the draft notes for the session that a save
// would create. The timer itself has no clock: the owner measures time
// between ticks and feeds the deltas in through Tick, so exactly one
// tick source drives it at a time.
type Timer struct {
	elapsed time.Duration
	running bool
	notes   string
}

func New() *Timer {
	return &Timer{}
}

// Start begins accumulating time. No-op if already running.
func (t *Timer) Start() {
	t.running = true
}

// Stop pauses the timer, freezing elapsed. No-op if not running.
func (t *Timer) Stop() {
	t.running = false
}

// Toggle starts a stopped timer and stops a running one. This is the
// single control the UI exposes.
func (t *Timer) Toggle() {
	t.running = !t.running
}

// Reset returns the timer to idle: zero elapsed, stopped, draft notes
// cleared.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.running = false
	t.notes = ""
}

// Tick advances elapsed by the measured delta since the previous tick.
// Deltas are ignored while stopped and when non-positive, so elapsed
// never decreases and never moves while paused.
func (t *Timer) Tick(delta time.Duration) {
	if !t.running || delta <= 0 {
		return
	}
	t.elapsed += delta
}

func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

func (t *Timer) Running() bool {
	return t.running
}

func (t *Timer) State() State {
	switch {
	case t.running:
		return StateRunning
	case t.elapsed > 0:
		return StatePaused
	default:
		return StateIdle
	}
}

// CanSave reports whether the current steep may be recorded: some time
// must have accumulated and the timer must be stopped.
func (t *Timer) CanSave() bool {
	return t.elapsed > 0 && !t.running
}

// SetNotes replaces the draft notes attached to the steep in progress.
func (t *Timer) SetNotes(notes string) {
	t.notes = notes
}

func (t *Timer) Notes() string {
	return t.notes
}

// Format renders a duration as MM:SS.CC, the readout shown while
// steeping: zero-padded minutes, seconds and hundredths, no hour field.
// Minutes keep counting past 99.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%02d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}
