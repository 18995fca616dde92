package tui

import (
	"fmt"
	"strings"

	"steeper/internal/brew"
	"steeper/internal/session"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI based on the model state
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder

	// Header with title and log summary
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// View mode tabs
	b.WriteString(m.renderViewTabs())
	b.WriteString("\n")

	// Main content area based on view mode
	switch m.viewMode {
	case ViewTimer:
		if m.saveOpen {
			b.WriteString(m.renderSaveDialog())
		} else {
			b.WriteString(m.renderTimer())
		}
	case ViewHistory:
		if m.detail != nil {
			b.WriteString(m.renderSessionDetail())
		} else {
			b.WriteString(m.renderHistoryHeaders())
			b.WriteString("\n")
			if m.store.Len() == 0 {
				b.WriteString(m.styles.Muted.Render("\n  No steeps recorded yet."))
			} else {
				b.WriteString(m.historyList.View())
			}
		}
	case ViewTrends:
		b.WriteString(m.renderTrends())
	}

	// Status and help footer
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

// renderHeader renders the top header bar
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("steeper")

	var status string
	if m.store.Len() == 0 {
		status = m.styles.Status.Render("no steeps yet")
	} else {
		stats := session.Summarize(m.store.All())
		status = m.styles.Status.Render(fmt.Sprintf(
			"%d steeps · %.2f min total",
			stats.Count,
			stats.TotalMinutes,
		))
	}

	// Calculate spacing
	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(status) - 4
	if spacing < 1 {
		spacing = 1
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", spacing),
		status,
	)
}

// renderViewTabs renders the tab bar for view modes
func (m Model) renderViewTabs() string {
	tabs := []struct {
		name string
		mode ViewMode
		key  string
	}{
		{"Timer", ViewTimer, "1"},
		{"History", ViewHistory, "2"},
		{"Trends", ViewTrends, "3"},
	}

	rendered := make([]string, len(tabs))
	for i, t := range tabs {
		label := fmt.Sprintf("%s %s", t.key, t.name)
		if t.mode == m.viewMode {
			rendered[i] = m.styles.ActiveTab.Render(label)
		} else {
			rendered[i] = m.styles.InactiveTab.Render(label)
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	gap := strings.Repeat("─", max(0, m.width-lipgloss.Width(row)-2))

	return row + m.styles.TabGap.Render(gap)
}

// renderTimer renders the stopwatch view
func (m Model) renderTimer() string {
	var b strings.Builder

	readout := brew.Format(m.timer.Elapsed())
	var readoutStyle lipgloss.Style
	var stateLabel string
	switch m.timer.State() {
	case brew.StateRunning:
		readoutStyle = m.styles.ReadoutRunning
		stateLabel = "● steeping"
	case brew.StatePaused:
		readoutStyle = m.styles.ReadoutPaused
		stateLabel = "‖ paused · s to save"
	default:
		readoutStyle = m.styles.ReadoutIdle
		stateLabel = "ready · space to start"
	}

	b.WriteString("\n  ")
	b.WriteString(readoutStyle.Render(readout))
	b.WriteString("\n  ")
	b.WriteString(m.styles.StateLine.Render(stateLabel))
	b.WriteString("\n")

	// Steep target progress
	if m.cfg.TargetMinutes > 0 {
		pct := m.timer.Elapsed().Minutes() / m.cfg.TargetMinutes
		if pct > 1 {
			pct = 1
		}
		b.WriteString("\n  ")
		b.WriteString(m.targetBar.ViewAs(pct))
		b.WriteString(m.styles.Status.Render(fmt.Sprintf("  target %.1f min", m.cfg.TargetMinutes)))
		b.WriteString("\n")
	}

	// Draft notes for the upcoming save
	if notes := m.timer.Notes(); notes != "" {
		width := m.width - 12
		if width < 10 {
			width = 10
		}
		b.WriteString("\n  ")
		b.WriteString(m.styles.Notes.Render("notes: " + truncate(notes, width)))
		b.WriteString("\n")
	}

	// Most recent steeps
	if m.cfg.Recent > 0 {
		recent := m.store.Recent(m.cfg.Recent)
		if len(recent) > 0 {
			b.WriteString("\n  ")
			b.WriteString(m.styles.StatLabel.Render("recent"))
			b.WriteString("\n")
			notesWidth := m.width - HistoryDateWidth - HistoryTimeWidth - 10
			if notesWidth < 10 {
				notesWidth = 10
			}
			for _, s := range recent {
				b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %s  %s  %s",
					padRight(formatTimeAgo(s.CreatedAt), HistoryDateWidth),
					padRight(brew.Format(s.Duration), HistoryTimeWidth),
					truncate(s.Notes, notesWidth),
				)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// renderSaveDialog renders the notes prompt centered in the content area
func (m Model) renderSaveDialog() string {
	title := m.styles.DialogTitle.Render("Save steep · " + brew.Format(m.timer.Elapsed()))
	hint := m.styles.Help.Render("enter:save | esc:cancel")

	box := m.styles.Dialog.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		m.notesInput.View(),
		"",
		hint,
	))

	contentHeight := m.height - 6
	if contentHeight < 9 {
		contentHeight = 9
	}
	return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, box)
}

// renderHistoryHeaders renders column headers for the history list
func (m Model) renderHistoryHeaders() string {
	date := padRight("Date", HistoryDateWidth)
	clock := padRight("Time", HistoryTimeWidth)

	header := fmt.Sprintf("%s  %s  %s", date, clock, "Notes")
	return m.styles.ColumnHeader(max(20, m.width-4)).Render(header)
}

// renderStatus renders the transient status line
func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.StatusErr.Render("  " + m.status)
	}
	return m.styles.Success.Render("  " + m.status)
}

// renderHelp renders the help footer
func (m Model) renderHelp() string {
	var help []string

	switch m.viewMode {
	case ViewTimer:
		if m.saveOpen {
			help = []string{"enter:save", "esc:cancel"}
		} else {
			help = []string{
				"space:start/stop",
				"s:save",
				"r:reset",
				"h/l:switch view",
				"q:quit",
			}
		}
	case ViewHistory:
		if m.detail != nil {
			help = []string{"esc:close"}
		} else {
			help = []string{
				"j/k:navigate",
				"enter:details",
				"e:export csv",
				"c:copy csv",
				"h/l:switch view",
				"esc:back",
				"q:quit",
			}
		}
	case ViewTrends:
		help = []string{
			"e:export csv",
			"c:copy csv",
			"h/l:switch view",
			"esc:back",
			"q:quit",
		}
	}

	return m.styles.Help.Render(strings.Join(help, " | "))
}

// padRight pads a string with spaces on the right to reach target width
func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string with spaces on the left to reach target width
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return strings.Repeat(" ", width-len(s)) + s
}
