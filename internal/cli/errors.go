package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/odysseus0/onthisday/internal/feed"
)

const (
	exitInvalidInput = 2
	exitInternal     = 1
)

func ErrorExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, feed.ErrInvalidInput):
		return exitInvalidInput
	default:
		return exitInternal
	}
}

func FormatError(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, feed.ErrInvalidInput):
		return fmt.Sprintf("Error [invalid-input]: %v", err)
	case errors.Is(err, feed.ErrMalformedResponse):
		return fmt.Sprintf("Error [decode]: %v", err)
	default:
		return fmt.Sprintf("Error [internal]: %v", err)
	}
}

func PrintError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, FormatError(err))
}
