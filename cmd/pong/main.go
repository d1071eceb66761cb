// pong is a two-player Pong clone played in the terminal.
//
// Usage:
//
//	pong play          - Start a game
//	pong controls      - Show the key bindings
//
// Global flags:
//
//	--fps <rate>     - Set display frame rate (default: 60)
//	--config <path>  - Path to a custom config YAML
//	--log <path>     - Write logs to a file
//	--debug          - Enable debug logging (collision events, tick stats)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagConfig string
	flagLog    string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - the classic paddle game in your terminal",
	Long: `Pong is a terminal rendition of the classic two-player paddle game.
Two paddles, one ball, four walls. The ball bounces; the paddles move.

Available commands:
  play       - Start a game
  controls   - Show the key bindings

Examples:
  pong play
  pong play --config ./my-theme.yaml
  pong play --debug --log ./pong.log
  pong controls`,
	// Bare "pong" starts a game.
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Display frame rate")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write logs to a file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(controlsCmd)
}
