// wayfind is the maze-solver CLI: solve, layouts, generate, serve.
//
// Usage:
//
//	wayfind solve --layout tinyMaze --problem position --strategy bfs --goal 1,3
//	wayfind solve --rows-file maze.txt --problem food --strategy astar --heuristic mst
//	wayfind layouts
//	wayfind generate --width 21 --height 11 --seed 7 --food 10
//	wayfind serve --config wayfind.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
