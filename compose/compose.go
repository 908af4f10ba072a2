package compose

import (
	"errors"
	"strings"

	"github.com/kovetskiy/optmark/options"
)

// ErrNoOptions is reported when a document has nothing to choose from.
var ErrNoOptions = errors.New("no usable options found")

// Validate returns ErrNoOptions if parsing produced nothing usable.
func Validate(sections []options.Section) error {
	for _, section := range sections {
		if len(section.Dimensions) > 0 {
			return nil
		}
	}

	return ErrNoOptions
}

// Compose assembles the output lines for the given selection.
//
// Dimensions with a single option have nothing to toggle, their lines go
// first. Every other dimension contributes the selected options in option
// order or its default option when nothing is selected. Selecting the default
// option has no effect. Empty output texts are skipped.
func Compose(sections []options.Section, selection *Selection) []string {
	var always, toggled []string

	for s, section := range sections {
		for d, dimension := range section.Dimensions {
			if len(dimension.Options) == 0 {
				continue
			}

			if !dimension.Toggleable() {
				always = appendText(always, dimension.Default().OutputText)
				continue
			}

			var selected []string
			for o, option := range dimension.Options {
				if o == dimension.DefaultIndex {
					continue
				}

				if selection.IsSelected(Ref{Section: s, Dimension: d, Option: o}) {
					selected = appendText(selected, option.OutputText)
				}
			}

			if len(selected) == 0 {
				selected = appendText(selected, dimension.Default().OutputText)
			}

			toggled = append(toggled, selected...)
		}
	}

	return append(always, toggled...)
}

// Text is Compose joined into a single newline-separated string.
func Text(sections []options.Section, selection *Selection) string {
	return strings.Join(Compose(sections, selection), "\n")
}

func appendText(lines []string, text string) []string {
	if text == "" {
		return lines
	}

	return append(lines, text)
}
