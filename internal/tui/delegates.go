package tui

import (
	"fmt"
	"io"
	"time"

	"steeper/internal/brew"
	"steeper/internal/session"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Column widths shared between history rows and their header
const (
	HistoryDateWidth = 13
	HistoryTimeWidth = 9
)

// historyItem wraps a Session for the list component
type historyItem struct {
	session session.Session
}

func (i historyItem) FilterValue() string { return i.session.Notes }
func (i historyItem) Title() string       { return brew.Format(i.session.Duration) }
func (i historyItem) Description() string { return i.session.Notes }

// historyDelegate renders one session per row
type historyDelegate struct {
	width  int
	styles Styles
}

func newHistoryDelegate(styles Styles) *historyDelegate {
	return &historyDelegate{styles: styles}
}

func (d *historyDelegate) SetWidth(w int)     { d.width = w }
func (d *historyDelegate) SetStyles(s Styles) { d.styles = s }

func (d *historyDelegate) Height() int                             { return 1 }
func (d *historyDelegate) Spacing() int                            { return 0 }
func (d *historyDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d *historyDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(historyItem)
	if !ok {
		return
	}

	date := padRight(formatTimeAgo(i.session.CreatedAt), HistoryDateWidth)
	clock := padRight(brew.Format(i.session.Duration), HistoryTimeWidth)

	notesWidth := d.width - HistoryDateWidth - HistoryTimeWidth - 6
	if notesWidth < 10 {
		notesWidth = 10
	}
	notes := truncate(i.session.Notes, notesWidth)

	if index == m.Index() {
		fmt.Fprint(w, d.styles.SelectedItem.Render(fmt.Sprintf("%s  %s  %s", date, clock, notes)))
		return
	}

	fmt.Fprintf(w, "%s  %s  %s",
		d.styles.Muted.Render(date),
		d.styles.NormalItem.Render(clock),
		d.styles.Notes.Render(notes),
	)
}

// formatTimeAgo returns a human-readable relative time string
func formatTimeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	case d < 24*time.Hour:
		hours := int(d.Hours())
		if hours == 1 {
			return "1h ago"
		}
		return fmt.Sprintf("%dh ago", hours)
	default:
		return t.Format("Jan 2")
	}
}

// truncate shortens a string to max length with ellipsis
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
