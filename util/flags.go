package util

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	altsrctoml "github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

var filename string

// NewFlags returns the global flags. cli/v3 flags keep parsed state, so every
// command gets its own instances.
func NewFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "files",
			Aliases:   []string{"f"},
			Value:     "options.md",
			Usage:     "use specified markdown file(s) with options. Supports file globbing patterns (needs to be quoted).",
			TakesFile: true,
			Sources:   cli.NewValueSourceChain(cli.EnvVar("OPTMARK_FILES"), altsrctoml.TOML("files", altsrc.NewStringPtrSourcer(&filename))),
		},
		&cli.BoolFlag{
			Name:    "continue-on-error",
			Value:   false,
			Usage:   "don't exit if an error occurs while processing a file, continue processing remaining files.",
			Sources: cli.NewValueSourceChain(cli.EnvVar("OPTMARK_CONTINUE_ON_ERROR"), altsrctoml.TOML("continue-on-error", altsrc.NewStringPtrSourcer(&filename))),
		},
		&cli.BoolFlag{
			Name:    "ci",
			Value:   false,
			Usage:   "run on CI mode. It won't fail if files are not found.",
			Sources: cli.NewValueSourceChain(cli.EnvVar("OPTMARK_CI"), altsrctoml.TOML("ci", altsrc.NewStringPtrSourcer(&filename))),
		},
		&cli.StringFlag{
			Name:  "color",
			Value: "auto",
			Usage: "display logs in color. Possible values: auto, never.",
			Sources: cli.NewValueSourceChain(cli.EnvVar("OPTMARK_COLOR"),
				altsrctoml.TOML("color", altsrc.NewStringPtrSourcer(&filename))),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "set the log level. Possible values: TRACE, DEBUG, INFO, WARNING, ERROR, FATAL.",
			Sources: cli.NewValueSourceChain(cli.EnvVar("OPTMARK_LOG_LEVEL"), altsrctoml.TOML("log-level", altsrc.NewStringPtrSourcer(&filename))),
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Value:       ConfigFilePath(),
			Usage:       "use the specified configuration file.",
			TakesFile:   true,
			Sources:     cli.NewValueSourceChain(cli.EnvVar("OPTMARK_CONFIG")),
			Destination: &filename,
		},
	}
}

func NewParseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Value:   FormatJSON,
			Usage:   "output format for parsed options. Possible values: json, yaml.",
			Sources: cli.NewValueSourceChain(cli.EnvVar("OPTMARK_FORMAT"), altsrctoml.TOML("format", altsrc.NewStringPtrSourcer(&filename))),
		},
	}
}

func NewComposeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "select",
			Aliases: []string{"s"},
			Usage:   "select a non-default option, [section:]dimension=option where option is an index or the option text. Can be repeated.",
			Sources: cli.NewValueSourceChain(cli.EnvVar("OPTMARK_SELECT"), altsrctoml.TOML("select", altsrc.NewStringPtrSourcer(&filename))),
		},
	}
}

func NewPickFlags() []cli.Flag {
	return []cli.Flag{
		newTitleFlag(),
	}
}

func NewServeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "listen",
			Value:   "",
			Usage:   "address to listen on. If empty, the first free port of 8000, 5173, 3000, 8080 on 127.0.0.1 is used.",
			Sources: cli.NewValueSourceChain(cli.EnvVar("OPTMARK_LISTEN"), altsrctoml.TOML("listen", altsrc.NewStringPtrSourcer(&filename))),
		},
		newTitleFlag(),
	}
}

func newTitleFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "title",
		Value:   "",
		Usage:   "title shown above the options. Defaults to the file name.",
		Sources: cli.NewValueSourceChain(cli.EnvVar("OPTMARK_TITLE"), altsrctoml.TOML("title", altsrc.NewStringPtrSourcer(&filename))),
	}
}
