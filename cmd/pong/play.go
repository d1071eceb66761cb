package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avasilyev/tui-pong/internal/config"
	"github.com/avasilyev/tui-pong/internal/core"
	"github.com/avasilyev/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a two-player game on this terminal.

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down
  P/Esc      - Pause
  Q/Ctrl+C   - Quit

Examples:
  pong play
  pong play --config ./my-theme.yaml
  pong play --debug --log ./pong.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size; the arena is scaled into whatever fits.
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS

	runErr := tui.Run(rt, cfg.GameTheme(), logger, flagDebug)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}

// newLogger builds the logger from config and flags. The TUI owns stdout,
// so logs go to a file; without one they are discarded.
func newLogger(cfg config.LoggingConfig) (*log.Logger, func(), error) {
	path := cfg.File
	if flagLog != "" {
		path = flagLog
	}

	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
	})
	logger.SetLevel(logLevel(cfg.Level))
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	return logger, func() { f.Close() }, nil
}

// logLevel parses a config level name, defaulting to info.
func logLevel(name string) log.Level {
	switch name {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
