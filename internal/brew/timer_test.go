package brew

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{"zero", 0, "00:00.00"},
		{"negative clamps to zero", -time.Second, "00:00.00"},
		{"sub-centisecond truncates", 9 * time.Millisecond, "00:00.00"},
		{"one centisecond", 10 * time.Millisecond, "00:00.01"},
		{"just under a second", 999 * time.Millisecond, "00:00.99"},
		{"one second", time.Second, "00:01.00"},
		{"just under a minute", 59*time.Second + 990*time.Millisecond, "00:59.99"},
		{"one minute", time.Minute, "01:00.00"},
		{"minute five seconds", 65430 * time.Millisecond, "01:05.43"},
		{"long steep", 12*time.Minute + 34*time.Second + 560*time.Millisecond, "12:34.56"},
		{"minutes past two digits", 100 * time.Minute, "100:00.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.d)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.d, result, tt.expected)
			}
		})
	}
}

func TestTimerTransitions(t *testing.T) {
	tests := []struct {
		name    string
		steps   func(tm *Timer)
		state   State
		elapsed time.Duration
	}{
		{
			"fresh timer is idle",
			func(tm *Timer) {},
			StateIdle, 0,
		},
		{
			"start begins running",
			func(tm *Timer) { tm.Start() },
			StateRunning, 0,
		},
		{
			"start while running is a no-op",
			func(tm *Timer) {
				tm.Start()
				tm.Tick(time.Second)
				tm.Start()
			},
			StateRunning, time.Second,
		},
		{
			"stop freezes elapsed",
			func(tm *Timer) {
				tm.Start()
				tm.Tick(2 * time.Second)
				tm.Stop()
			},
			StatePaused, 2 * time.Second,
		},
		{
			"stop while idle stays idle",
			func(tm *Timer) { tm.Stop() },
			StateIdle, 0,
		},
		{
			"toggle starts then stops",
			func(tm *Timer) {
				tm.Toggle()
				tm.Tick(time.Second)
				tm.Toggle()
			},
			StatePaused, time.Second,
		},
		{
			"resume keeps accumulating",
			func(tm *Timer) {
				tm.Start()
				tm.Tick(time.Second)
				tm.Stop()
				tm.Start()
				tm.Tick(time.Second)
			},
			StateRunning, 2 * time.Second,
		},
		{
			"reset returns to idle",
			func(tm *Timer) {
				tm.Start()
				tm.Tick(90 * time.Second)
				tm.Reset()
			},
			StateIdle, 0,
		},
		{
			"reset while running stops the timer",
			func(tm *Timer) {
				tm.Start()
				tm.Reset()
			},
			StateIdle, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := New()
			tt.steps(tm)
			if got := tm.State(); got != tt.state {
				t.Errorf("State() = %v, want %v", got, tt.state)
			}
			if got := tm.Elapsed(); got != tt.elapsed {
				t.Errorf("Elapsed() = %v, want %v", got, tt.elapsed)
			}
		})
	}
}

func TestTimerTick(t *testing.T) {
	tests := []struct {
		name    string
		running bool
		deltas  []time.Duration
		elapsed time.Duration
	}{
		{"accumulates while running", true, []time.Duration{50 * time.Millisecond, 50 * time.Millisecond, 30 * time.Millisecond}, 130 * time.Millisecond},
		{"ignored while stopped", false, []time.Duration{time.Second, time.Second}, 0},
		{"zero delta ignored", true, []time.Duration{0, time.Second, 0}, time.Second},
		{"negative delta ignored", true, []time.Duration{time.Second, -time.Hour, time.Second}, 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := New()
			if tt.running {
				tm.Start()
			}
			for _, d := range tt.deltas {
				tm.Tick(d)
			}
			if got := tm.Elapsed(); got != tt.elapsed {
				t.Errorf("Elapsed() = %v, want %v", got, tt.elapsed)
			}
		})
	}
}

func TestTimerCanSave(t *testing.T) {
	tests := []struct {
		name     string
		steps    func(tm *Timer)
		expected bool
	}{
		{"idle cannot save", func(tm *Timer) {}, false},
		{"running cannot save", func(tm *Timer) {
			tm.Start()
			tm.Tick(time.Second)
		}, false},
		{"paused with elapsed can save", func(tm *Timer) {
			tm.Start()
			tm.Tick(time.Second)
			tm.Stop()
		}, true},
		{"paused at zero cannot save", func(tm *Timer) {
			tm.Start()
			tm.Stop()
		}, false},
		{"after reset cannot save", func(tm *Timer) {
			tm.Start()
			tm.Tick(time.Second)
			tm.Stop()
			tm.Reset()
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := New()
			tt.steps(tm)
			if got := tm.CanSave(); got != tt.expected {
				t.Errorf("CanSave() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTimerNotes(t *testing.T) {
	tm := New()
	tm.Start()
	tm.Tick(time.Second)
	tm.SetNotes("sencha, two minutes")
	tm.Stop()

	if got := tm.Notes(); got != "sencha, two minutes" {
		t.Errorf("Notes() = %q, want %q", got, "sencha, two minutes")
	}

	// Stop and start leave the draft alone; only reset clears it.
	tm.Start()
	tm.Stop()
	if got := tm.Notes(); got != "sencha, two minutes" {
		t.Errorf("Notes() after stop/start = %q, want draft kept", got)
	}

	tm.Reset()
	if got := tm.Notes(); got != "" {
		t.Errorf("Notes() after reset = %q, want empty", got)
	}
}
