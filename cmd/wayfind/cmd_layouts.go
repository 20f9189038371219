package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/internal/format"
	"github.com/katalvlaran/wayfind/maze"
)

var layoutsMarkdown bool

var layoutsCmd = &cobra.Command{
	Use:   "layouts [name]",
	Short: "List embedded layouts, or print one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLayouts,
}

func init() {
	layoutsCmd.Flags().BoolVar(&layoutsMarkdown, "markdown", false, "Render the list as a Markdown table")
}

func runLayouts(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		m, err := maze.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Println(m.String())

		return nil
	}

	mode := format.ASCII
	if layoutsMarkdown {
		mode = format.Markdown
	}
	tbl := format.NewTable(mode)
	tbl.Header("name", "size", "food", "start")
	for _, name := range maze.List() {
		m, err := maze.Load(name)
		if err != nil {
			return err
		}
		tbl.Row(name, fmt.Sprintf("%dx%d", m.Width(), m.Height()), len(m.Food()), m.Start().String())
	}
	tbl.Columns(format.ColumnConfig{Number: 3, Align: format.AlignRight})
	fmt.Println(tbl.String())

	return nil
}
