package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/internal/format"
	"github.com/katalvlaran/wayfind/internal/logging"
	"github.com/katalvlaran/wayfind/maze"
	"github.com/katalvlaran/wayfind/runner"
)

var solveFlags struct {
	layout    string
	rowsFile  string
	problem   string
	strategy  string
	heuristic string
	goal      string
	jsonOut   bool
	logLevel  string
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one problem over a layout",
	Long: `Solve a position, corners, or food problem over a named embedded layout
or a layout file.

Examples:
  wayfind solve --layout tinyMaze --problem position --strategy bfs --goal 1,3
  wayfind solve --layout tinyCorners --problem corners --strategy astar
  wayfind solve --rows-file maze.txt --problem food --strategy astar --heuristic mst`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.StringVar(&solveFlags.layout, "layout", "", "Embedded layout name (see 'wayfind layouts')")
	f.StringVar(&solveFlags.rowsFile, "rows-file", "", "Path to an ASCII layout file")
	f.StringVar(&solveFlags.problem, "problem", "position", "Problem variant: position, corners, food")
	f.StringVar(&solveFlags.strategy, "strategy", "bfs", "Strategy: dfs, bfs, ucs, astar")
	f.StringVar(&solveFlags.heuristic, "heuristic", "", "A* heuristic: manhattan, maze, mst (food only)")
	f.StringVar(&solveFlags.goal, "goal", "", "Goal cell as x,y (position problem only)")
	f.BoolVar(&solveFlags.jsonOut, "json", false, "Emit the report as JSON")
	f.StringVar(&solveFlags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
}

func runSolve(cmd *cobra.Command, _ []string) error {
	logging.Init(logging.ParseLevel(solveFlags.logLevel), "text")

	req := runner.Request{
		Layout:    solveFlags.layout,
		Problem:   runner.Variant(solveFlags.problem),
		Strategy:  runner.Strategy(solveFlags.strategy),
		Heuristic: runner.HeuristicKind(solveFlags.heuristic),
	}
	if solveFlags.rowsFile != "" {
		data, err := os.ReadFile(solveFlags.rowsFile)
		if err != nil {
			return fmt.Errorf("read layout file: %w", err)
		}
		req.Rows = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}
	if solveFlags.goal != "" {
		var g maze.Position
		if _, err := fmt.Sscanf(solveFlags.goal, "%d,%d", &g.X, &g.Y); err != nil {
			return fmt.Errorf("goal must be x,y: %w", err)
		}
		req.Goal = &g
	}

	rep, err := runner.New().Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	if solveFlags.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(rep)
	}

	actions := make([]string, len(rep.Actions))
	for i, a := range rep.Actions {
		actions[i] = a.String()
	}
	fmt.Println(strings.Join(actions, " "))

	tbl := format.NewTable(format.ASCII)
	tbl.Header("cost", "steps", "expanded", "duration")
	tbl.Row(rep.Cost, len(rep.Actions), rep.Expanded, rep.Duration.String())
	tbl.Columns(
		format.ColumnConfig{Number: 1, Align: format.AlignRight},
		format.ColumnConfig{Number: 2, Align: format.AlignRight},
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
	)
	fmt.Println(tbl.String())

	return nil
}
