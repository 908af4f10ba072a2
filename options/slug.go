package options

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var reNonAlphanumeric = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Slugify lowercases text and collapses every run of characters which are
// neither letters nor digits into a single hyphen. Leading and trailing
// hyphens are stripped, so text without letters and digits becomes "".
func Slugify(text string) string {
	// cases.Caser keeps state, so it can't be shared between goroutines.
	slug := cases.Lower(language.Und).String(text)
	slug = trim(slug)
	slug = reNonAlphanumeric.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}
