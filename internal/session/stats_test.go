package session

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		durations []time.Duration
		want      Stats
	}{
		{
			"empty log is all zeros",
			nil,
			Stats{},
		},
		{
			"single session equals itself",
			[]time.Duration{65430 * time.Millisecond},
			Stats{Count: 1, Average: 1.09, Shortest: 1.09, Longest: 1.09, TotalMinutes: 1.09},
		},
		{
			"multiple sessions",
			[]time.Duration{time.Minute, 2 * time.Minute, 3 * time.Minute},
			Stats{Count: 3, Average: 2, Shortest: 1, Longest: 3, TotalMinutes: 6},
		},
		{
			"rounding to two decimals",
			[]time.Duration{100 * time.Second, 200 * time.Second},
			// 1.6667 and 3.3333 minutes: average 2.5, total 5.
			Stats{Count: 2, Average: 2.5, Shortest: 1.67, Longest: 3.33, TotalMinutes: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sessions []Session
			for i, d := range tt.durations {
				sessions = append(sessions, testSession(1700000000000+int64(i), d, ""))
			}
			if got := Summarize(sessions); got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSeries(t *testing.T) {
	created := time.Date(2026, 8, 21, 9, 30, 0, 0, time.UTC)
	sessions := []Session{
		{ID: 1, Duration: 65430 * time.Millisecond, CreatedAt: created},
		{ID: 2, Duration: 3 * time.Minute, CreatedAt: created.Add(time.Hour)},
	}

	points := Series(sessions)
	if len(points) != 2 {
		t.Fatalf("Series() returned %d points, want 2", len(points))
	}
	if points[0].Index != 1 || points[1].Index != 2 {
		t.Errorf("indexes = %d, %d, want 1, 2", points[0].Index, points[1].Index)
	}
	if points[0].Minutes != 1.09 {
		t.Errorf("points[0].Minutes = %v, want 1.09", points[0].Minutes)
	}
	if points[1].Minutes != 3 {
		t.Errorf("points[1].Minutes = %v, want 3", points[1].Minutes)
	}
	if points[0].Date != "Aug 21 09:30" {
		t.Errorf("points[0].Date = %q, want %q", points[0].Date, "Aug 21 09:30")
	}

	if got := Series(nil); len(got) != 0 {
		t.Errorf("Series(nil) returned %d points, want 0", len(got))
	}
}
