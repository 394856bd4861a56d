package version

import (
	"strings"

	"github.com/dyapi/dyctl/internal/build"
	"github.com/dyapi/dyctl/internal/ui"
	"github.com/pterm/pterm"
)

// Cmd prints the version information read from the build package.
type Cmd struct {
	Output string `short:"o" enum:"text,json,yaml" default:"text" help:"Output format (text, json, yaml)."`
}

func (c *Cmd) Run(uiProvider ui.Provider) error {
	info := build.Current()
	switch c.Output {
	case "json":
		return uiProvider.ShowJSON(info)
	case "yaml":
		return uiProvider.ShowYAML(info)
	}

	lines := []string{"version: " + info.Version}
	if info.Revision != "" {
		lines = append(lines, "revision: "+info.Revision)
	}
	if info.Time != "" {
		lines = append(lines, "time: "+info.Time)
	}
	if info.Modified {
		lines = append(lines, "modified: true")
	}
	pterm.Println(strings.Join(lines, "\n"))
	return nil
}
