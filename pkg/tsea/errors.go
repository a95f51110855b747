package tsea

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := searcher.Search(ctx, req, emit)
//	if errors.Is(err, tsea.ErrDirectoryUnreadable) {
//	    // Handle a missing or unreadable target directory
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates the command line was malformed.
	ErrUsage = errors.New("usage error")

	// ErrDirectoryUnreadable indicates the target directory could not be listed.
	ErrDirectoryUnreadable = errors.New("directory unreadable")

	// ErrFileUnreadable indicates a candidate file failed while being read.
	ErrFileUnreadable = errors.New("file unreadable")

	// ErrInvalidText indicates a candidate file contains a line that is not valid text.
	ErrInvalidText = errors.New("invalid text")
)

// usageErrorPatterns are fragments of the error messages cobra and pflag
// produce for command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrDirectoryUnreadable):
		return ExitDirectoryError
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
