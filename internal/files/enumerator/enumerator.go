package enumerator

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vvka-141/tsea/internal/files/filesystem"
	"github.com/vvka-141/tsea/pkg/tsea"
)

// Enumerator lists the candidate files among the direct children of a directory.
// Enumerator is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Enumerator struct {
	fsProvider filesystem.FileSystemProvider
	excludes   []string
}

// NewEnumerator creates an enumerator over the OS filesystem.
// excludes are gitignore-style patterns applied to candidate names.
func NewEnumerator(excludes []string) *Enumerator {
	return &Enumerator{
		fsProvider: filesystem.NewOSFileSystem(),
		excludes:   excludes,
	}
}

// NewEnumeratorWithFS creates an enumerator with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewEnumeratorWithFS(fsProvider filesystem.FileSystemProvider, excludes []string) *Enumerator {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Enumerator{
		fsProvider: fsProvider,
		excludes:   excludes,
	}
}

// ListCandidates returns the display paths of the candidate files in dir,
// in the order the filesystem lists them.
//
// Returns:
//   - []string: filepath.Join(dir, name) for every candidate
//   - error: wraps tsea.ErrDirectoryUnreadable if dir cannot be listed,
//     tsea.ErrInvalidConfig if the ignore file exists but cannot be read
func (e *Enumerator) ListCandidates(dir string) ([]string, error) {
	entries, err := e.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tsea.ErrDirectoryUnreadable, err)
	}

	filter, err := newIgnoreFilter(e.fsProvider, dir, e.excludes)
	if err != nil {
		return nil, err
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !HasExtension(name, tsea.CandidateExtension) {
			continue
		}
		if filter.ShouldIgnore(name) {
			continue
		}

		path := filepath.Join(dir, name)
		if entry.Type()&fs.ModeSymlink != 0 && e.isDirLink(path) {
			continue
		}

		candidates = append(candidates, path)
	}

	return candidates, nil
}

// isDirLink reports whether the symlink at path resolves to a directory.
// Dangling links are kept; the scanner skips them when the open fails.
func (e *Enumerator) isDirLink(path string) bool {
	info, err := e.fsProvider.Stat(path)
	return err == nil && info.IsDir()
}

// HasExtension reports whether name ends in "."+ext, compared case-sensitively.
// A leading dot marks a hidden file rather than an extension, so ".txt"
// has no extension at all.
func HasExtension(name, ext string) bool {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return false
	}
	return name[dot+1:] == ext
}

// Verify Enumerator implements the interface at compile time
var _ tsea.Enumerator = (*Enumerator)(nil)
