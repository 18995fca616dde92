package tui

import (
	"os"
	"path/filepath"
	"time"

	"steeper/internal/brew"
	"steeper/internal/config"
	"steeper/internal/session"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// ViewMode represents the current view
type ViewMode int

const (
	ViewTimer   ViewMode = iota // Stopwatch and recent steeps
	ViewHistory                 // Full session log
	ViewTrends                  // Aggregate stats and trend chart
)

// tickInterval is how often a running timer samples the wall clock.
const tickInterval = 50 * time.Millisecond

// ModelOptions carries the model's collaborators; nothing is reached
// through globals.
type ModelOptions struct {
	Config  *config.Config
	Store   *session.Store
	Watcher *config.Watcher // nil when there is no config file to watch
	Logger  *zap.Logger
}

// Model represents the application state
type Model struct {
	// Core state
	cfg     *config.Config
	store   *session.Store
	timer   *brew.Timer
	watcher *config.Watcher
	logger  *zap.Logger

	viewMode ViewMode
	styles   Styles

	// UI components
	historyList     list.Model
	historyDelegate *historyDelegate
	notesInput      textinput.Model
	targetBar       progress.Model

	// Save dialog state
	saveOpen bool

	// Selected steep shown full-size over the history view; nil when
	// closed
	detail *session.Session

	// Tick source generation. Start hands the current generation to a
	// self-rescheduling tick command; stop and reset bump it so a tick
	// from a cancelled source is recognized and dropped. At most one
	// live tick chain drives the timer.
	tickID   int
	lastTick time.Time

	// Transient status line
	status    string
	statusErr bool

	// UI dimensions
	width  int
	height int

	// Error state
	err error
}

// NewModel creates a new Model with initialized state
func NewModel(opts ModelOptions) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	store := opts.Store
	if store == nil {
		store = session.Open(cfg.DataDir, logger)
	}

	styles := NewStyles(cfg.Theme)
	delegate := newHistoryDelegate(styles)

	m := Model{
		cfg:             cfg,
		store:           store,
		timer:           brew.New(),
		watcher:         opts.Watcher,
		logger:          logger,
		viewMode:        ViewTimer,
		styles:          styles,
		historyDelegate: delegate,
	}

	m.historyList = list.New([]list.Item{}, delegate, 0, 0)
	m.historyList.SetShowTitle(false)
	m.historyList.SetShowHelp(false)
	m.historyList.SetShowStatusBar(false)
	m.historyList.SetFilteringEnabled(false)
	m.historyList.DisableQuitKeybindings()

	m.notesInput = textinput.New()
	m.notesInput.Placeholder = "what did you steep?"
	m.notesInput.CharLimit = 200

	m.targetBar = progress.New(
		progress.WithGradient(styles.GradientStart, styles.GradientEnd),
		progress.WithWidth(40),
	)

	return m.updateHistoryList()
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.watchConfigCmd()
}

// Message types
type (
	tickMsg struct {
		id int
		t  time.Time
	}
	configReloadedMsg *config.Config
	exportedMsg       struct {
		path string
		err  error
	}
	copiedMsg struct{ err error }
	errMsg    struct{ error } // General error
)

// tickCmd schedules the next tick for the given tick-source generation
func (m Model) tickCmd(id int) tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg{id: id, t: t}
	})
}

// startTick begins a fresh tick generation, invalidating any pending
// tick from an earlier one
func (m Model) startTick() (Model, tea.Cmd) {
	m.tickID++
	m.lastTick = time.Now()
	return m, m.tickCmd(m.tickID)
}

// stopTick cancels the active tick source
func (m Model) stopTick() Model {
	m.tickID++
	return m
}

// watchConfigCmd returns a command that waits for a config reload event
func (m Model) watchConfigCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg := <-m.watcher.Events:
			return configReloadedMsg(cfg)
		case err := <-m.watcher.Errors:
			return errMsg{err}
		}
	}
}

// exportCmd writes the CSV export into the data directory
func (m Model) exportCmd() tea.Cmd {
	sessions := m.store.All()
	dir := m.cfg.DataDir
	return func() tea.Msg {
		path := filepath.Join(dir, session.ExportFilename(time.Now()))
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return exportedMsg{err: err}
		}
		if err := os.WriteFile(path, session.ExportCSV(sessions), 0o600); err != nil {
			return exportedMsg{err: err}
		}
		return exportedMsg{path: path}
	}
}

// copyCmd puts the CSV export on the system clipboard
func (m Model) copyCmd() tea.Cmd {
	sessions := m.store.All()
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(string(session.ExportCSV(sessions)))}
	}
}

// updateHistoryList rebuilds the history list items, most recent first
func (m Model) updateHistoryList() Model {
	recent := m.store.Recent(m.store.Len())
	items := make([]list.Item, len(recent))
	for i, s := range recent {
		items[i] = historyItem{session: s}
	}
	m.historyList.SetItems(items)
	return m
}

// applyConfig swaps in a freshly loaded config. The theme takes effect
// immediately; a changed data_dir only applies on the next launch since
// the session log is already open.
func (m Model) applyConfig(cfg *config.Config) Model {
	if cfg.DataDir != m.cfg.DataDir {
		m.logger.Debug("data_dir change takes effect on restart",
			zap.String("current", m.cfg.DataDir), zap.String("new", cfg.DataDir))
	}
	m.cfg = cfg
	m.styles = NewStyles(cfg.Theme)
	m.historyDelegate.SetStyles(m.styles)
	m.targetBar = progress.New(
		progress.WithGradient(m.styles.GradientStart, m.styles.GradientEnd),
		progress.WithWidth(m.targetBar.Width),
	)
	return m
}

// updateListSizes updates component dimensions based on terminal size
func (m Model) updateListSizes() Model {
	// Reserve space for header (1), tabs (1), column headers (1),
	// status (1), help (1), margins (3)
	listHeight := m.height - 8
	if listHeight < 5 {
		listHeight = 5
	}
	listWidth := m.width - 4
	if listWidth < 20 {
		listWidth = 20
	}

	m.historyDelegate.SetWidth(listWidth)
	m.historyList.SetSize(listWidth, listHeight)

	barWidth := listWidth - 20
	if barWidth > 50 {
		barWidth = 50
	}
	if barWidth < 10 {
		barWidth = 10
	}
	m.targetBar.Width = barWidth

	return m
}
