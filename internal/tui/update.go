package tui

import (
	"strings"

	"steeper/internal/brew"
	"steeper/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.updateListSizes(), nil

	case tickMsg:
		if msg.id != m.tickID {
			return m, nil // tick from a cancelled source
		}
		if !m.timer.Running() {
			return m, nil
		}
		m.timer.Tick(msg.t.Sub(m.lastTick))
		m.lastTick = msg.t
		return m, m.tickCmd(msg.id)

	case tea.KeyMsg:
		if m.saveOpen {
			return m.updateSaveDialog(msg)
		}
		if m.detail != nil {
			return m.updateDetail(msg)
		}
		return m.updateKeys(msg)

	case configReloadedMsg:
		m = m.applyConfig(msg)
		m.status, m.statusErr = "config reloaded", false
		return m, m.watchConfigCmd()

	case exportedMsg:
		if msg.err != nil {
			m.status, m.statusErr = "export failed: "+msg.err.Error(), true
		} else {
			m.status, m.statusErr = "exported "+msg.path, false
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status, m.statusErr = "copy failed: "+msg.err.Error(), true
		} else {
			m.status, m.statusErr = "copied CSV to clipboard", false
		}
		return m, nil

	case errMsg:
		m.logger.Debug("config watch error", zap.Error(msg.error))
		return m, m.watchConfigCmd()
	}

	return m, nil
}

// updateKeys handles keys outside the save dialog
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc":
		if m.viewMode != ViewTimer {
			m.viewMode = ViewTimer
			return m, nil
		}
		return m, tea.Quit

	case "1":
		m.viewMode = ViewTimer
		return m, nil
	case "2":
		m.viewMode = ViewHistory
		return m, nil
	case "3":
		m.viewMode = ViewTrends
		return m, nil
	case "l":
		m.viewMode = (m.viewMode + 1) % 3
		return m, nil
	case "h":
		m.viewMode = (m.viewMode + 2) % 3
		return m, nil

	case " ":
		if m.viewMode != ViewTimer {
			return m, nil
		}
		m.status = ""
		m.timer.Toggle()
		if m.timer.Running() {
			return m.startTick()
		}
		return m.stopTick(), nil

	case "r":
		if m.viewMode != ViewTimer {
			return m, nil
		}
		m.timer.Reset()
		m.notesInput.SetValue("")
		m.status = ""
		return m.stopTick(), nil

	case "s":
		if m.viewMode != ViewTimer || !m.timer.CanSave() {
			return m, nil
		}
		m.saveOpen = true
		m.status = ""
		m.notesInput.SetValue(m.timer.Notes())
		m.notesInput.CursorEnd()
		return m, m.notesInput.Focus()

	case "enter":
		if m.viewMode != ViewHistory {
			return m, nil
		}
		if item, ok := m.historyList.SelectedItem().(historyItem); ok {
			sess := item.session
			m.detail = &sess
		}
		return m, nil

	case "e":
		if m.viewMode != ViewHistory && m.viewMode != ViewTrends {
			return m, nil
		}
		if m.store.Len() == 0 {
			m.status, m.statusErr = "no sessions to export", true
			return m, nil
		}
		return m, m.exportCmd()

	case "c":
		if m.viewMode != ViewHistory && m.viewMode != ViewTrends {
			return m, nil
		}
		if m.store.Len() == 0 {
			m.status, m.statusErr = "no sessions to export", true
			return m, nil
		}
		return m, m.copyCmd()
	}

	// Remaining keys (j/k, arrows, page up/down) drive the history list
	if m.viewMode == ViewHistory {
		var cmd tea.Cmd
		m.historyList, cmd = m.historyList.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateDetail handles keys while a steep detail is open
func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", "q":
		m.detail = nil
	}
	return m, nil
}

// updateSaveDialog handles keys while the save dialog is open. Typing
// edits the draft notes in place; esc closes the dialog and keeps the
// draft for next time.
func (m Model) updateSaveDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.saveOpen = false
		m.notesInput.Blur()
		return m, nil

	case "enter":
		return m.saveSession()
	}

	var cmd tea.Cmd
	m.notesInput, cmd = m.notesInput.Update(msg)
	m.timer.SetNotes(m.notesInput.Value())
	return m, cmd
}

// saveSession appends the finished steep to the log and resets the
// timer. A failed persist keeps the session in the in-memory log and
// surfaces the error without touching the timer's reset.
func (m Model) saveSession() (tea.Model, tea.Cmd) {
	sess, err := session.New(m.timer.Elapsed(), strings.TrimSpace(m.notesInput.Value()))
	if err != nil {
		m.saveOpen = false
		m.status, m.statusErr = "nothing to save", true
		return m, nil
	}

	if err := m.store.Append(sess); err != nil {
		m.logger.Warn("session persist failed", zap.Error(err))
		m.status, m.statusErr = "saved in memory only: "+err.Error(), true
	} else {
		m.status, m.statusErr = "saved "+brew.Format(sess.Duration), false
	}

	m.timer.Reset()
	m = m.stopTick()
	m.saveOpen = false
	m.notesInput.Blur()
	m.notesInput.SetValue("")
	return m.updateHistoryList(), nil
}
