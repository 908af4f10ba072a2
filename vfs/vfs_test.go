package vfs

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapOpener map[string]string

func (m mapOpener) Open(name string) (io.ReadCloser, error) {
	contents, ok := m[name]
	if !ok {
		return nil, os.ErrNotExist
	}

	return io.NopCloser(strings.NewReader(contents)), nil
}

func TestReadFile(t *testing.T) {
	contents, err := ReadFile(mapOpener{"options.md": "- D\n  - [x] a\n"}, "options.md")
	require.NoError(t, err)
	assert.Equal(t, "- D\n  - [x] a\n", contents)

	_, err = ReadFile(mapOpener{}, "missing.md")
	assert.ErrorContains(t, err, `unable to open file: "missing.md"`)
}

func TestReadFileLocalOS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.md")
	require.NoError(t, os.WriteFile(path, []byte("## A\n"), 0o644))

	contents, err := ReadFile(LocalOS, path)
	require.NoError(t, err)
	assert.Equal(t, "## A\n", contents)
}
