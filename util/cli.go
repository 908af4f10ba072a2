package util

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kovetskiy/lorg"
	"github.com/kovetskiy/optmark/compose"
	"github.com/kovetskiy/optmark/tui"
	"github.com/kovetskiy/optmark/vfs"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
	"github.com/urfave/cli/v3"
)

// Setup configures logging from the global flags.
func Setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if err := SetLogLevel(cmd); err != nil {
		return ctx, err
	}

	if cmd.String("color") == "never" {
		log.GetLogger().SetFormat(
			lorg.NewFormat(
				`${time:2006-01-02 15:04:05.000} ${level:%s:left:true} ${prefix}%s`,
			),
		)
		log.GetLogger().SetOutput(os.Stderr)
	}

	log.Debug("config:")
	for _, f := range cmd.Flags {
		flag := f.Names()
		log.Debugf(nil, "%20s: %v", flag[0], cmd.Value(flag[0]))
	}

	return ctx, nil
}

func RunParse(ctx context.Context, cmd *cli.Command) error {
	files, err := MatchFiles(cmd.String("files"), cmd.Bool("ci"))
	if err != nil {
		return err
	}

	fatalErrorHandler := NewErrorHandler(cmd.Bool("continue-on-error"))

	documents := []*Document{}
	for _, file := range files {
		log.Infof(nil, "processing %s", file)

		document, err := LoadDocument(vfs.LocalOS, file)
		if err != nil {
			fatalErrorHandler.Handle(err, "unable to parse %q", file)
			continue
		}

		documents = append(documents, document)
	}

	return WriteDocuments(cmd.Root().Writer, cmd.String("format"), documents)
}

func RunCompose(ctx context.Context, cmd *cli.Command) error {
	document, err := loadSingleDocument(cmd)
	if err != nil || document == nil {
		return err
	}

	selection := compose.NewSelection()

	err = compose.Select(document.Sections, selection, cmd.StringSlice("select"))
	if err != nil {
		return karma.Describe("file", document.File).Reason(err)
	}

	log.Debugf(nil, "selected options: %v", selection.Refs())

	_, err = fmt.Fprintln(cmd.Root().Writer, compose.Text(document.Sections, selection))
	return err
}

func RunPick(ctx context.Context, cmd *cli.Command) error {
	document, err := loadSingleDocument(cmd)
	if err != nil || document == nil {
		return err
	}

	title := cmd.String("title")
	if title == "" {
		title = document.Title
	}

	text, err := tui.Run(ctx, document.Sections, tui.Config{
		Title:  title,
		Output: cmd.Root().ErrWriter,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, text)
	return err
}

// loadSingleDocument loads the first file matching the files flag. The
// document is nil when nothing matched in CI mode.
func loadSingleDocument(cmd *cli.Command) (*Document, error) {
	files, err := MatchFiles(cmd.String("files"), cmd.Bool("ci"))
	if err != nil || len(files) == 0 {
		return nil, err
	}

	if len(files) > 1 {
		log.Warningf(
			nil,
			"%d files matched, only %s will be used",
			len(files),
			files[0],
		)
	}

	return LoadDocument(vfs.LocalOS, files[0])
}

func ConfigFilePath() string {
	fp, err := os.UserConfigDir()
	if err != nil {
		log.Fatal(err)
	}
	return filepath.Join(fp, "optmark.toml")
}

var logLevels = []lorg.Level{
	lorg.LevelTrace,
	lorg.LevelDebug,
	lorg.LevelInfo,
	lorg.LevelWarning,
	lorg.LevelError,
	lorg.LevelFatal,
}

func SetLogLevel(cmd *cli.Command) error {
	logLevel := cmd.String("log-level")
	for _, level := range logLevels {
		if strings.EqualFold(logLevel, level.String()) {
			log.SetLevel(level)
			return nil
		}
	}

	return fmt.Errorf("unknown log level: %s", logLevel)
}
