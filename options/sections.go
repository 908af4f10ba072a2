package options

import (
	"regexp"
	"strings"
)

const (
	GeneralSectionTitle  = "General"
	GeneralSectionKey    = "general"
	UntitledSectionTitle = "Untitled"
)

// Only h2-h6 delimit sections, h1 is usually the document title.
var reSectionHeading = regexp.MustCompile(`^#{2,6}[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+(.*)$`)

type rawSection struct {
	title string
	key   string
	body  []string
}

func (section rawSection) hasContent() bool {
	for _, line := range section.body {
		if trim(line) != "" {
			return true
		}
	}

	return false
}

// ParseSections splits a document by headings and parses every part with
// ParseOptions. Lines before the first heading belong to the "General"
// section. Sections without dimensions are dropped; keys of sections with
// equal titles are not deduplicated.
func ParseSections(markdown string) []Section {
	var (
		raw     []rawSection
		current = rawSection{
			title: GeneralSectionTitle,
			key:   GeneralSectionKey,
		}
	)

	for _, line := range splitLines(markdown) {
		matches := reSectionHeading.FindStringSubmatch(trim(line))
		if matches == nil {
			current.body = append(current.body, line)
			continue
		}

		if current.hasContent() {
			raw = append(raw, current)
		}

		title := trim(matches[1])
		if title == "" {
			title = UntitledSectionTitle
		}

		current = rawSection{
			title: title,
			key:   Slugify(title),
		}
	}

	if current.hasContent() {
		raw = append(raw, current)
	}

	sections := []Section{}
	for _, section := range raw {
		dimensions := ParseOptions(strings.Join(section.body, "\n"))
		if len(dimensions) == 0 {
			continue
		}

		sections = append(sections, Section{
			Key:        section.key,
			Title:      section.title,
			Dimensions: dimensions,
		})
	}

	return sections
}
