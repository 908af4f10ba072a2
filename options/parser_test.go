package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	dimensions := ParseOptions("- Stance\n  - [x] Orthodox\n  - [ ] Southpaw # southpaw-stance")

	assert.Equal(t, []Dimension{
		{
			Title: "Stance",
			Options: []Option{
				{DisplayText: "Orthodox", OutputText: "Orthodox", IsDefault: true},
				{DisplayText: "Southpaw", OutputText: "southpaw-stance", IsDefault: false},
			},
			DefaultIndex: 0,
		},
	}, dimensions)
}

func TestParseOptionsEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "just prose", "## Heading", "- [x] no dimension"} {
		dimensions := ParseOptions(input)
		assert.NotNil(t, dimensions, input)
		assert.Empty(t, dimensions, input)
	}
}

func TestParseOptionsDropsDimensionsWithoutOptions(t *testing.T) {
	dimensions := ParseOptions("- Empty\n- Filled\n  - [ ] one\n- Trailing")

	require.Len(t, dimensions, 1)
	assert.Equal(t, "Filled", dimensions[0].Title)
}

func TestParseOptionsDefaultIndex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "no default marked",
			input: "- D\n  - [ ] a\n  - [ ] b",
			want:  0,
		},
		{
			name:  "second marked",
			input: "- D\n  - [ ] a\n  - [x] b",
			want:  1,
		},
		{
			name:  "first marked wins",
			input: "- D\n  - [ ] a\n  - [X] b\n  - [x] c",
			want:  1,
		},
		{
			name:  "uppercase marker",
			input: "- D\n  - [ ] a\n  - [ ] b\n  - [X] c",
			want:  2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dimensions := ParseOptions(tt.input)
			require.Len(t, dimensions, 1)
			assert.Equal(t, tt.want, dimensions[0].DefaultIndex)
			assert.Less(t, dimensions[0].DefaultIndex, len(dimensions[0].Options))
		})
	}
}

func TestParseOptionsSplitsOutputText(t *testing.T) {
	tests := []struct {
		text    string
		display string
		output  string
	}{
		{text: "Southpaw # southpaw-stance", display: "Southpaw", output: "southpaw-stance"},
		{text: "a#b", display: "a", output: "b"},
		{text: "first # second # third", display: "first", output: "second # third"},
		{text: "#justhash", display: "#justhash", output: "#justhash"},
		{text: "hash#", display: "hash#", output: "hash#"},
		{text: "spaces #   ", display: "spaces #", output: "spaces #"},
		{text: "  # trailing", display: "# trailing", output: "# trailing"},
		{text: "a   # ", display: "a   #", output: "a   #"},
		{text: "x #\t", display: "x #", output: "x #"},
		{text: "plain text", display: "plain text", output: "plain text"},
		{text: "  #   # b", display: "#   # b", output: "#   # b"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			dimensions := ParseOptions("- D\n- [ ] " + tt.text)
			require.Len(t, dimensions, 1)
			require.Len(t, dimensions[0].Options, 1)

			option := dimensions[0].Options[0]
			assert.Equal(t, tt.display, option.DisplayText)
			assert.Equal(t, tt.output, option.OutputText)
		})
	}
}

func TestParseOptionsLineHandling(t *testing.T) {
	t.Run("crlf and tabs", func(t *testing.T) {
		dimensions := ParseOptions("-\tStance\r\n\t- [x]\tOrthodox\r\n")
		require.Len(t, dimensions, 1)
		assert.Equal(t, "Stance", dimensions[0].Title)
		assert.Equal(t, "Orthodox", dimensions[0].Options[0].DisplayText)
	})

	t.Run("blank lines keep current dimension", func(t *testing.T) {
		dimensions := ParseOptions("- D\n\n   \n  - [ ] a\n\n  - [x] b")
		require.Len(t, dimensions, 1)
		assert.Len(t, dimensions[0].Options, 2)
	})

	t.Run("empty dimension title keeps current dimension", func(t *testing.T) {
		dimensions := ParseOptions("- D\n  - [ ] a\n-   \n  - [ ] b")
		require.Len(t, dimensions, 1)
		assert.Len(t, dimensions[0].Options, 2)
	})

	t.Run("unrecognized lines are ignored", func(t *testing.T) {
		dimensions := ParseOptions("- D\n### Lunge\n  * [x] star\n  1. one\n  - [x] a\n  -[x] tight")
		require.Len(t, dimensions, 1)
		assert.Equal(t, []Option{{DisplayText: "a", OutputText: "a", IsDefault: true}}, dimensions[0].Options)
	})

	t.Run("checkbox without text is a dimension", func(t *testing.T) {
		dimensions := ParseOptions("- D\n  - [x]   \n  - [ ] a")
		require.Len(t, dimensions, 1)
		assert.Equal(t, "[x]", dimensions[0].Title)
		assert.Equal(t, []Option{{DisplayText: "a", OutputText: "a"}}, dimensions[0].Options)
	})

	t.Run("markdown is passed through verbatim", func(t *testing.T) {
		dimensions := ParseOptions("- **Bold** `title`\n  - [ ] [link](http://example.com) # *em*")
		require.Len(t, dimensions, 1)
		assert.Equal(t, "**Bold** `title`", dimensions[0].Title)
		assert.Equal(t, "[link](http://example.com)", dimensions[0].Options[0].DisplayText)
		assert.Equal(t, "*em*", dimensions[0].Options[0].OutputText)
	})
}

func TestParseOptionsIsDeterministic(t *testing.T) {
	input := "- A\n  - [ ] a1\n  - [x] a2 # out\n- B\n  - [ ] b1"

	assert.Equal(t, ParseOptions(input), ParseOptions(input))
}
