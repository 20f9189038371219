package maze

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed layouts/*.lay
var layoutFS embed.FS

// Load parses one of the embedded named layouts (see List for the names).
// Returns ErrUnknownLayout, with the available names in the message, for a
// name absent from the registry.
func Load(name string) (*Maze, error) {
	data, err := layoutFS.ReadFile("layouts/" + name + ".lay")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownLayout, name, strings.Join(List(), ", "))
	}
	m, err := ParseText(string(data))
	if err != nil {
		return nil, fmt.Errorf("maze: embedded layout %q: %w", name, err)
	}

	return m, nil
}

// List returns the names of all embedded layouts, sorted.
func List() []string {
	entries, _ := layoutFS.ReadDir("layouts")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".lay") {
			names = append(names, strings.TrimSuffix(e.Name(), ".lay"))
		}
	}
	sort.Strings(names)

	return names
}
