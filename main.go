package main

import (
	"fmt"
	"os"
	"path/filepath"

	"steeper/internal/config"
	"steeper/internal/logging"
	"steeper/internal/session"
	"steeper/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

var (
	flagConfig  string
	flagDataDir string
	flagDebug   bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steeper",
		Short: "Tea-brewing stopwatch for the terminal",
		Long: `steeper times your tea steeps, keeps a log of finished sessions and
shows how your brewing habits trend over time.

Run with no arguments to open the full-screen timer. The session log is
a plain JSON file in the data directory; export and stats work on it
without entering the UI.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: standard locations)")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "session log directory (overrides config)")
	cmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "write a debug log into the data directory")

	cmd.AddCommand(exportCmd(), statsCmd())

	return cmd
}

// app bundles what every command needs: the loaded config, the opened
// session log and the debug logger.
type app struct {
	cfg        *config.Config
	store      *session.Store
	logger     *zap.Logger
	configPath string // resolved config file, empty when running on defaults
}

// loadApp resolves the global flags into a runnable environment.
func loadApp() (*app, error) {
	configPath := flagConfig
	if configPath == "" {
		configPath = config.FindDefaultPath()
	}

	cfg := config.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}

	logger, err := logging.New(filepath.Join(cfg.DataDir, "steeper.log"), flagDebug)
	if err != nil {
		return nil, fmt.Errorf("opening debug log: %w", err)
	}

	store := session.Open(cfg.DataDir, logger)
	logger.Debug("session log open",
		zap.String("path", store.Path()),
		zap.Int("sessions", store.Len()))

	return &app{
		cfg:        cfg,
		store:      store,
		logger:     logger,
		configPath: configPath,
	}, nil
}

func runTUI() error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	// Watch the config file, when there is one, so theme changes apply
	// without a restart.
	var watcher *config.Watcher
	if a.configPath != "" {
		watcher, err = config.NewWatcher(a.configPath)
		if err != nil {
			a.logger.Debug("config watch unavailable", zap.Error(err))
			watcher = nil
		} else {
			watcher.Start()
			defer func() { _ = watcher.Stop() }()
		}
	}

	m := tui.NewModel(tui.ModelOptions{
		Config:  a.cfg,
		Store:   a.store,
		Watcher: watcher,
		Logger:  a.logger,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
