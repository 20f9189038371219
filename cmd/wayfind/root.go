package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "wayfind",
	Short: "Maze pathfinding and coverage solver",
	Long: "Wayfind solves position, corner-coverage, and food-coverage problems\n" +
		"over ASCII maze layouts with DFS, BFS, uniform-cost, and A* search.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}
