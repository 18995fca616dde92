package session

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		notes   string
		wantErr bool
	}{
		{"positive elapsed", 65430 * time.Millisecond, "Green tea", false},
		{"one millisecond", time.Millisecond, "", false},
		{"zero elapsed rejected", 0, "notes", true},
		{"negative elapsed rejected", -time.Second, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := New(tt.elapsed, tt.notes)
			if tt.wantErr {
				if !errors.Is(err, ErrZeroDuration) {
					t.Fatalf("New(%v) error = %v, want ErrZeroDuration", tt.elapsed, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%v) unexpected error: %v", tt.elapsed, err)
			}
			if sess.Duration != tt.elapsed {
				t.Errorf("Duration = %v, want %v", sess.Duration, tt.elapsed)
			}
			if sess.Notes != tt.notes {
				t.Errorf("Notes = %q, want %q", sess.Notes, tt.notes)
			}
			if sess.ID != sess.CreatedAt.UnixMilli() {
				t.Errorf("ID = %d, want CreatedAt millis %d", sess.ID, sess.CreatedAt.UnixMilli())
			}
			if sess.CreatedAt.Location() != time.UTC {
				t.Errorf("CreatedAt location = %v, want UTC", sess.CreatedAt.Location())
			}
		})
	}
}

func TestMinutes(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected float64
	}{
		{"fractional minutes", 65430 * time.Millisecond, 1.0905},
		{"exactly one minute", time.Minute, 1},
		{"thirty seconds", 30 * time.Second, 0.5},
		{"three minutes", 3 * time.Minute, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{Duration: tt.duration}
			if got := s.Minutes(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Minutes() = %v, want %v", got, tt.expected)
			}
		})
	}
}
