package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/engine"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:     "variants",
	Aliases: []string{"list"},
	Short:   "List all available boards",
	Long:    `Shows every board size with the number of marks in a row needed to win.`,
	Run:     runVariants,
}

func runVariants(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "ID", "Grid", "To win", "Title")
	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "--", "----", "------", "-----")

	for _, v := range variants {
		grid := fmt.Sprintf("%dx%d", v.GridSize, v.GridSize)
		fmt.Printf("  %-*s  %-5s  %-6d  %s\n", maxIDLen, v.ID, grid, engine.WinStreak(v.GridSize), v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tictactoe play <id>' to play a board.")
}
