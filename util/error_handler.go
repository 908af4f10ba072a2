package util

import (
	"fmt"

	"github.com/reconquest/pkg/log"
)

type FatalErrorHandler struct {
	ContinueOnError bool

	failures int
}

func NewErrorHandler(continueOnError bool) *FatalErrorHandler {
	return &FatalErrorHandler{
		ContinueOnError: continueOnError,
	}
}

// Handle logs the error and exits unless ContinueOnError is set.
func (h *FatalErrorHandler) Handle(err error, format string, args ...interface{}) {
	h.failures++

	if err == nil {
		if h.ContinueOnError {
			log.Error(fmt.Sprintf(format, args...))
			return
		}
		log.Fatal(fmt.Sprintf(format, args...))
	}

	if h.ContinueOnError {
		log.Errorf(err, format, args...)
		return
	}
	log.Fatalf(err, format, args...)
}

// Failures returns how many errors were handled so far.
func (h *FatalErrorHandler) Failures() int {
	return h.failures
}
