package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// FileName is the session log's on-disk name inside the data directory.
const FileName = "teaSessions.json"

// record is the persisted shape of a Session. The timeMinutes field is
// written for compatibility with previously saved logs and ignored on
// load; minutes are always recomputed from time.
type record struct {
	ID          int64   `json:"id"`
	Time        int64   `json:"time"`
	TimeMinutes float64 `json:"timeMinutes"`
	Date        string  `json:"date"`
	Notes       string  `json:"notes"`
}

// Store is the append-only session log. The full log is loaded once at
// open and rewritten to disk after every append. There is exactly one
// writer (the running app), so no file locking.
type Store struct {
	path   string
	log    []Session
	logger *zap.Logger
}

// Open loads the session log from dir. A missing file means a fresh
// start; unreadable or malformed data is treated as absence of data
// rather than an error, since the log is user-local cosmetic state.
func Open(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		path:   filepath.Join(dir, FileName),
		logger: logger,
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Debug("session log unreadable, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Debug("session log malformed, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return
	}

	dropped := 0
	for _, r := range records {
		sess, err := r.toSession()
		if err != nil {
			dropped++
			continue
		}
		s.log = append(s.log, sess)
	}
	if dropped > 0 {
		s.logger.Debug("dropped malformed session records",
			zap.String("path", s.path), zap.Int("dropped", dropped))
	}
}

func (r record) toSession() (Session, error) {
	if r.ID <= 0 {
		return Session{}, fmt.Errorf("bad id %d", r.ID)
	}
	if r.Time <= 0 {
		return Session{}, fmt.Errorf("bad duration %d", r.Time)
	}
	created, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return Session{}, fmt.Errorf("bad date %q: %w", r.Date, err)
	}
	return Session{
		ID:        r.ID,
		Duration:  time.Duration(r.Time) * time.Millisecond,
		CreatedAt: created,
		Notes:     r.Notes,
	}, nil
}

func toRecord(sess Session) record {
	return record{
		ID:          sess.ID,
		Time:        sess.Duration.Milliseconds(),
		TimeMinutes: sess.Minutes(),
		Date:        sess.CreatedAt.Format(time.RFC3339Nano),
		Notes:       sess.Notes,
	}
}

// Append adds sess to the end of the log, then rewrites the log file
// before returning. On a write error the session stays in the in-memory
// log and the error propagates; durability for that session is simply
// lost. Sessions are never updated or removed.
func (s *Store) Append(sess Session) error {
	s.log = append(s.log, sess)
	if err := s.persist(); err != nil {
		return fmt.Errorf("persisting session log: %w", err)
	}
	return nil
}

// persist writes the whole log. An empty log is never written, so a
// run that saves nothing cannot clobber previously persisted sessions.
func (s *Store) persist() error {
	if len(s.log) == 0 {
		return nil
	}

	records := make([]record, len(s.log))
	for i, sess := range s.log {
		records[i] = toRecord(sess)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Recent returns up to n sessions, most recent first. The returned
// slice is a copy; the log itself is never reordered.
func (s *Store) Recent(n int) []Session {
	if n > len(s.log) {
		n = len(s.log)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Session, n)
	for i := 0; i < n; i++ {
		out[i] = s.log[len(s.log)-1-i]
	}
	return out
}

// All returns a copy of the log in insertion order.
func (s *Store) All() []Session {
	out := make([]Session, len(s.log))
	copy(out, s.log)
	return out
}

func (s *Store) Len() int {
	return len(s.log)
}

// Path returns the session log file location.
func (s *Store) Path() string {
	return s.path
}
