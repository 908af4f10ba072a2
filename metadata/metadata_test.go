package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDocumentLeadingH1(t *testing.T) {
	assert.Equal(t, "Sparring prompt", ExtractDocumentLeadingH1([]byte("intro\n# Sparring prompt #\n\n## Stance\n")))
	assert.Equal(t, "", ExtractDocumentLeadingH1([]byte("## Stance\n- D\n")))
	assert.Equal(t, "a", ExtractDocumentLeadingH1([]byte("# a")))
}

func TestTitleFromFilename(t *testing.T) {
	t.Run("set title from filename", func(t *testing.T) {
		assert.Equal(t, "Options", TitleFromFilename("/path/to/options.md"))
	})

	t.Run("replace underscores and dashes with spaces", func(t *testing.T) {
		assert.Equal(t, "Sparring Prompt V2", TitleFromFilename("/path/to/sparring_prompt-v2.md"))
	})
}

func TestExtractMeta(t *testing.T) {
	t.Run("title header", func(t *testing.T) {
		data := []byte("<!-- Title: Sparring -->\n<!-- unknown: value -->\n- D\n  - [x] a\n")

		meta, rest, err := ExtractMeta(data)
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, "Sparring", meta.Title)
		assert.Equal(t, "- D\n  - [x] a\n", string(rest))
	})

	t.Run("lowercase header", func(t *testing.T) {
		meta, _, err := ExtractMeta([]byte("<!-- title:   Guard   -->\n"))
		require.NoError(t, err)
		assert.Equal(t, "Guard", meta.Title)
	})

	t.Run("no headers", func(t *testing.T) {
		data := []byte("- D\n<!-- Title: late -->\n")

		meta, rest, err := ExtractMeta(data)
		require.NoError(t, err)
		assert.Nil(t, meta)
		assert.Equal(t, data, rest)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		meta, rest, err := ExtractMeta([]byte("<!-- Title: x -->"))
		require.NoError(t, err)
		assert.Equal(t, "x", meta.Title)
		assert.Empty(t, rest)
	})

	t.Run("reject empty title", func(t *testing.T) {
		meta, _, err := ExtractMeta([]byte("<!-- Title: -->\n"))
		assert.Nil(t, meta)
		assert.EqualError(t, err, "Title header value is empty")
	})

	t.Run("reject duplicate title", func(t *testing.T) {
		meta, _, err := ExtractMeta([]byte("<!-- Title: a -->\n<!-- Title: b -->\n"))
		assert.Nil(t, meta)
		assert.EqualError(t, err, "Title header is already set")
	})
}
