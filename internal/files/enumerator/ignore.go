package enumerator

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/vvka-141/tsea/internal/files/filesystem"
	"github.com/vvka-141/tsea/pkg/tsea"
)

// ignoreFilter drops candidates whose name matches an exclusion pattern.
type ignoreFilter struct {
	patterns *gitignore.GitIgnore
}

// newIgnoreFilter compiles the configured patterns together with the
// patterns of the ignore file in dir, if one exists.
func newIgnoreFilter(fsProvider filesystem.FileSystemProvider, dir string, configured []string) (*ignoreFilter, error) {
	patterns := append([]string(nil), configured...)

	ignorePath := filepath.Join(dir, tsea.IgnoreFileName)
	content, err := fsProvider.ReadFile(ignorePath)
	switch {
	case err == nil:
		patterns = append(patterns, parseIgnoreLines(string(content))...)
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read %s: %v: %w", ignorePath, err, tsea.ErrInvalidConfig)
	}

	if len(patterns) == 0 {
		return &ignoreFilter{}, nil
	}
	return &ignoreFilter{patterns: gitignore.CompileIgnoreLines(patterns...)}, nil
}

// ShouldIgnore reports whether the candidate with the given file name is excluded.
func (f *ignoreFilter) ShouldIgnore(name string) bool {
	if f.patterns == nil {
		return false
	}
	return f.patterns.MatchesPath(name)
}

// parseIgnoreLines drops blank lines and # comments.
func parseIgnoreLines(content string) []string {
	var patterns []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}
