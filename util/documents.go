package util

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kovetskiy/optmark/compose"
	"github.com/kovetskiy/optmark/metadata"
	"github.com/kovetskiy/optmark/options"
	"github.com/kovetskiy/optmark/vfs"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is a parsed options file.
type Document struct {
	File     string            `json:"file" yaml:"file"`
	Title    string            `json:"title" yaml:"title"`
	Sections []options.Section `json:"sections" yaml:"sections"`
}

// MatchFiles expands the glob pattern. In CI mode no matches is not an error.
func MatchFiles(pattern string, ci bool) ([]string, error) {
	files, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, karma.Format(err, "invalid files pattern: %q", pattern)
	}

	if len(files) == 0 {
		msg := "No files matched"
		if ci {
			log.Warning(msg)
			return nil, nil
		}

		return nil, karma.Describe("pattern", pattern).Reason(msg)
	}

	return files, nil
}

// LoadDocument reads and parses an options file. The title comes from the
// Title header, the leading H1 or the file name. A file without usable options
// is an error.
func LoadDocument(opener vfs.Opener, file string) (*Document, error) {
	source, err := vfs.ReadFile(opener, file)
	if err != nil {
		return nil, err
	}

	meta, body, err := metadata.ExtractMeta([]byte(source))
	if err != nil {
		return nil, karma.Format(err, "unable to extract metadata from file %q", file)
	}

	title := metadata.ExtractDocumentLeadingH1(body)
	if meta != nil && meta.Title != "" {
		title = meta.Title
	}

	if title == "" {
		title = metadata.TitleFromFilename(file)
	}

	sections := options.ParseSections(string(body))

	log.Tracef(nil, "parsed %s into %d sections", file, len(sections))

	err = compose.Validate(sections)
	if err != nil {
		return nil, karma.Describe("file", file).Reason(err)
	}

	return &Document{File: file, Title: title, Sections: sections}, nil
}

func WriteDocuments(writer io.Writer, format string, documents []*Document) error {
	if documents == nil {
		documents = []*Document{}
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)

		err := encoder.Encode(documents)
		if err != nil {
			return karma.Format(err, "unable to encode json")
		}

	case FormatYAML:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(2)

		err := encoder.Encode(documents)
		if err != nil {
			return karma.Format(err, "unable to encode yaml")
		}

		err = encoder.Close()
		if err != nil {
			return karma.Format(err, "unable to encode yaml")
		}

	default:
		return fmt.Errorf("unknown output format: %s", format)
	}

	return nil
}
