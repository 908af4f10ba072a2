package compose

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kovetskiy/optmark/options"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/regexputil-go"
)

var reSelector = regexp.MustCompile(
	`^(?:(?P<section>[^:=]+):)?(?P<dimension>[^=]+)=(?P<option>.+)$`,
)

// Selector is a human-typed reference to an option:
//
//	[section:]dimension=option
//
// Section and dimension are compared by slug, option is either a zero-based
// index or the slug of the option text.
type Selector struct {
	Section   string
	Dimension string
	Option    string
}

func (selector Selector) String() string {
	value := selector.Dimension + "=" + selector.Option
	if selector.Section != "" {
		value = selector.Section + ":" + value
	}

	return value
}

func ParseSelector(value string) (Selector, error) {
	groups := reSelector.FindStringSubmatch(strings.TrimSpace(value))
	if groups == nil {
		return Selector{}, fmt.Errorf(
			"invalid selector %q, expected [section:]dimension=option",
			value,
		)
	}

	selector := Selector{
		Section:   strings.TrimSpace(regexputil.Subexp(reSelector, groups, "section")),
		Dimension: strings.TrimSpace(regexputil.Subexp(reSelector, groups, "dimension")),
		Option:    strings.TrimSpace(regexputil.Subexp(reSelector, groups, "option")),
	}

	if options.Slugify(selector.Dimension) == "" || selector.Option == "" {
		return Selector{}, fmt.Errorf(
			"invalid selector %q, expected [section:]dimension=option",
			value,
		)
	}

	return selector, nil
}

// Resolve finds the first option matching the selector.
func Resolve(sections []options.Section, selector Selector) (Ref, error) {
	var (
		sectionKey   = options.Slugify(selector.Section)
		dimensionKey = options.Slugify(selector.Dimension)
		optionKey    = options.Slugify(selector.Option)
	)

	index, err := strconv.Atoi(selector.Option)
	if err != nil {
		index = -1
	}

	for s, section := range sections {
		if selector.Section != "" && section.Key != sectionKey {
			continue
		}

		for d, dimension := range section.Dimensions {
			if options.Slugify(dimension.Title) != dimensionKey {
				continue
			}

			if index >= 0 && index < len(dimension.Options) {
				return Ref{Section: s, Dimension: d, Option: index}, nil
			}

			if o := findOption(dimension, optionKey); o >= 0 {
				return Ref{Section: s, Dimension: d, Option: o}, nil
			}
		}
	}

	return Ref{}, karma.Describe("selector", selector.String()).Reason(
		"no matching option found",
	)
}

func findOption(dimension options.Dimension, key string) int {
	if key == "" {
		return -1
	}

	for o, option := range dimension.Options {
		if options.Slugify(option.DisplayText) == key {
			return o
		}
	}

	for o, option := range dimension.Options {
		if options.Slugify(option.OutputText) == key {
			return o
		}
	}

	return -1
}

// Select resolves every selector and marks the options as selected.
func Select(
	sections []options.Section,
	selection *Selection,
	selectors []string,
) error {
	for _, value := range selectors {
		selector, err := ParseSelector(value)
		if err != nil {
			return err
		}

		ref, err := Resolve(sections, selector)
		if err != nil {
			return karma.Format(err, "unable to select %q", value)
		}

		selection.Set(ref, true)
	}

	return nil
}
