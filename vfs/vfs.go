package vfs

import (
	"io"
	"os"

	"github.com/reconquest/karma-go"
)

type Opener interface {
	Open(name string) (io.ReadCloser, error)
}

type LocalOSOpener struct {
}

func (o LocalOSOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

var LocalOS = LocalOSOpener{}

// ReadFile reads the whole file through the opener.
func ReadFile(opener Opener, name string) (string, error) {
	file, err := opener.Open(name)
	if err != nil {
		return "", karma.Format(err, "unable to open file: %q", name)
	}

	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		return "", karma.Format(err, "unable to read file: %q", name)
	}

	return string(contents), nil
}
