package metadata

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/reconquest/pkg/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	HeaderTitle = `Title`
)

type Meta struct {
	Title string
}

var (
	reHeaderPattern = regexp.MustCompile(`^<!--\s*([^:]+):\s*(.*?)\s*-->$`)
	reLeadingH1     = regexp.MustCompile(`(?m)^#[ \t]+(.*?)[ \t#]*$`)
)

// ExtractMeta reads <!-- Header: value --> lines from the beginning of the
// document and returns the rest of it.
func ExtractMeta(data []byte) (*Meta, []byte, error) {
	var (
		meta   *Meta
		offset int
	)

	scanner := bufio.NewScanner(bytes.NewBuffer(data))
	for scanner.Scan() {
		line := scanner.Text()

		matches := reHeaderPattern.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			break
		}

		offset += len(line) + 1

		if meta == nil {
			meta = &Meta{}
		}

		header := cases.Title(language.English).String(strings.TrimSpace(matches[1]))
		value := strings.TrimSpace(matches[2])

		switch header {
		case HeaderTitle:
			if value == "" {
				return nil, nil, fmt.Errorf("Title header value is empty")
			}
			if meta.Title != "" {
				return nil, nil, fmt.Errorf("Title header is already set")
			}
			meta.Title = value

		default:
			log.Errorf(
				nil,
				`encountered unknown header %q line: %#v`,
				header,
				line,
			)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	if offset > len(data) {
		offset = len(data)
	}

	return meta, data[offset:], nil
}

// ExtractDocumentLeadingH1 will extract leading H1 heading
func ExtractDocumentLeadingH1(markdown []byte) string {
	groups := reLeadingH1.FindSubmatch(markdown)
	if groups == nil {
		return ""
	}

	return string(groups[1])
}

// TitleFromFilename turns "sparring_prompt-v2.md" into "Sparring Prompt V2".
func TitleFromFilename(filename string) string {
	base := filepath.Base(filename)
	title := strings.TrimSuffix(base, filepath.Ext(base))
	title = strings.ReplaceAll(title, "_", " ")
	title = strings.ReplaceAll(title, "-", " ")
	return cases.Title(language.English).String(title)
}
