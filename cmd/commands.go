package cmd

import (
	"github.com/kovetskiy/optmark/util"
	"github.com/urfave/cli/v3"
)

func ParseCmd() *cli.Command {
	return &cli.Command{
		Name:   "parse",
		Usage:  "prints parsed sections, dimensions and options",
		Flags:  util.NewParseFlags(),
		Action: util.RunParse,
	}
}

func ComposeCmd() *cli.Command {
	return &cli.Command{
		Name:   "compose",
		Usage:  "prints text composed of default and selected options",
		Flags:  util.NewComposeFlags(),
		Action: util.RunCompose,
	}
}

func PickCmd() *cli.Command {
	return &cli.Command{
		Name:   "pick",
		Usage:  "toggles options in the terminal and prints the composed text",
		Flags:  util.NewPickFlags(),
		Action: util.RunPick,
	}
}

func ServeCmd() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "serves a web form for toggling options",
		Flags:  util.NewServeFlags(),
		Action: util.RunServe,
	}
}
