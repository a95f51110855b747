package tsea_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/tsea/pkg/tsea"
)

func TestExitCodeForError_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown flag", errors.New("unknown flag: --foo"), tsea.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), tsea.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 2"), tsea.ExitUsageError},
		{"missing argument", errors.New("missing required argument: <search_text>"), tsea.ExitUsageError},
		{"invalid argument", errors.New(`invalid argument "x" for "--color" flag`), tsea.ExitUsageError},
		{"flag needs an argument", errors.New("flag needs an argument: 'd' in -d"), tsea.ExitUsageError},
		{"general error", errors.New("something went wrong"), tsea.ExitGeneralError},
		{"nil error", nil, tsea.ExitSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tsea.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_Sentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"usage", tsea.ErrUsage, tsea.ExitUsageError},
		{"invalid config", tsea.ErrInvalidConfig, tsea.ExitConfigError},
		{"directory unreadable", tsea.ErrDirectoryUnreadable, tsea.ExitDirectoryError},
		{"wrapped directory unreadable", fmt.Errorf("cannot read directory %q: %w", "/nope", tsea.ErrDirectoryUnreadable), tsea.ExitDirectoryError},
		{"wrapped config", fmt.Errorf("parse .tsea.yaml: %w", tsea.ErrInvalidConfig), tsea.ExitConfigError},
		{"file unreadable is general", tsea.ErrFileUnreadable, tsea.ExitGeneralError},
		{"invalid text is general", tsea.ErrInvalidText, tsea.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tsea.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
