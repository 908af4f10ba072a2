package render

import (
	"bytes"

	"github.com/reconquest/karma-go"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Preview renders composed output as markdown. Raw HTML in the output is not
// passed through.
func Preview(markdown string) (string, error) {
	converter := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			html.WithHardWraps(),
		),
	)

	var buf bytes.Buffer
	err := converter.Convert([]byte(markdown), &buf)
	if err != nil {
		return "", karma.Format(err, "unable to render output preview")
	}

	return buf.String(), nil
}
