package cmd

import (
	"github.com/kovetskiy/optmark/util"
	"github.com/urfave/cli/v3"
)

const (
	version     = "1.2.0"
	usage       = "A tool for picking options from a markdown checklist of checklists."
	description = `optmark reads markdown files with categorized options and composes text out of the options in effect.

Level 2-6 headings split the file into sections. Top-level list items are
dimensions, checkbox items below them are options:

  ## Stance

  - Stance
    - [x] Orthodox
    - [ ] Southpaw # southpaw-stance

The first [x] option of a dimension is its default, otherwise the first option
is. Text after '#' is what goes into the output, text before it is the label.`
)

// New builds the optmark command tree.
func New() *cli.Command {
	return &cli.Command{
		Name:                  "optmark",
		Usage:                 usage,
		Description:           description,
		Version:               version,
		Flags:                 util.NewFlags(),
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Before:                util.Setup,
		Commands: []*cli.Command{
			ParseCmd(),
			ComposeCmd(),
			PickCmd(),
			ServeCmd(),
		},
	}
}
