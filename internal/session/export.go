package session

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyLog is returned by callers that refuse to export when there
// are no sessions. ExportCSV itself is total and yields a header-only
// table for an empty log.
var ErrEmptyLog = errors.New("no sessions to export")

// ExportCSV renders the log as CSV: a header row, then one row per
// session in insertion order. Every field is quoted, including the
// header and numeric fields, with embedded quotes doubled. Minutes are
// formatted to two decimals and empty notes become an empty quoted
// string.
func ExportCSV(sessions []Session) []byte {
	var b strings.Builder
	writeRow(&b, "Date", "Time (minutes)", "Notes")
	for _, s := range sessions {
		writeRow(&b,
			s.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%.2f", s.Minutes()),
			s.Notes,
		)
	}
	return []byte(b.String())
}

func writeRow(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// ExportFilename returns the download name for an export taken at t,
// with the date embedded: tea-sessions-2006-01-02.csv.
func ExportFilename(t time.Time) string {
	return "tea-sessions-" + t.Format("2006-01-02") + ".csv"
}
