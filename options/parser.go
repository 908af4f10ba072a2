package options

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reOptionLine = regexp.MustCompile(`^- \[([ xX])\] (.*)$`)

	tabReplacer = strings.NewReplacer("\t", "    ")
)

const (
	dimensionPrefix = "- "
	outputSeparator = "#"
)

// ParseOptions reads dimensions from a markdown fragment which consists of a
// two-level list:
//
//	- Stance
//	  - [x] Orthodox
//	  - [ ] Southpaw # southpaw-stance
//
// Top-level items start a new dimension, checkbox items add options to the
// latest dimension. Everything else is ignored. Dimensions without options
// are not returned.
func ParseOptions(markdown string) []Dimension {
	var (
		dimensions []*Dimension
		current    *Dimension
	)

	for _, line := range splitLines(markdown) {
		line = trim(tabReplacer.Replace(line))
		if line == "" {
			continue
		}

		if matches := reOptionLine.FindStringSubmatch(line); matches != nil {
			if current == nil {
				continue
			}

			text := trim(matches[2])
			if text == "" {
				continue
			}

			display, output := splitOptionText(text)

			current.Options = append(current.Options, Option{
				DisplayText: display,
				OutputText:  output,
				IsDefault:   strings.EqualFold(matches[1], "x"),
			})

			continue
		}

		if strings.HasPrefix(line, dimensionPrefix) {
			title := trim(strings.TrimPrefix(line, dimensionPrefix))
			if title == "" {
				continue
			}

			current = &Dimension{Title: title}
			dimensions = append(dimensions, current)
		}
	}

	result := []Dimension{}
	for _, dimension := range dimensions {
		if len(dimension.Options) == 0 {
			continue
		}

		dimension.DefaultIndex = 0
		for index, option := range dimension.Options {
			if option.IsDefault {
				dimension.DefaultIndex = index
				break
			}
		}

		result = append(result, *dimension)
	}

	return result
}

// splitOptionText splits "display # output" option text. The separator is
// only taken into account when there is text on both sides of it.
func splitOptionText(text string) (string, string) {
	index := strings.Index(text, outputSeparator)
	if index <= 0 || index >= len(text)-len(outputSeparator) {
		return text, text
	}

	display := trim(text[:index])
	output := trim(text[index+len(outputSeparator):])
	if display == "" || output == "" {
		return text, text
	}

	return display, output
}

func splitLines(markdown string) []string {
	return strings.Split(strings.ReplaceAll(markdown, "\r\n", "\n"), "\n")
}

// trim strips whitespace including the byte order mark, which editors tend to
// leave at the beginning of a file.
func trim(text string) string {
	return strings.TrimFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
