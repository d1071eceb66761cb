package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avasilyev/tui-pong/internal/platform/tui"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show the key bindings",
	Long:  `Prints the key bindings used during a game.`,
	Args:  cobra.NoArgs,
	Run:   runControls,
}

func runControls(cmd *cobra.Command, args []string) {
	bindings := tui.DefaultKeyMap().Bindings()

	fmt.Println("Controls:")
	fmt.Println()

	// Calculate key column width
	maxKeyLen := 0
	for _, b := range bindings {
		if l := len(b.Help().Key); l > maxKeyLen {
			maxKeyLen = l
		}
	}

	for _, b := range bindings {
		h := b.Help()
		fmt.Printf("  %-*s  %s\n", maxKeyLen, h.Key, h.Desc)
	}
}
