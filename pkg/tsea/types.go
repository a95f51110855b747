package tsea

import (
	"fmt"
	"strings"
)

// MatchRecord is a single line of a file that contains the query.
type MatchRecord struct {
	// Path is the file's display path, exactly as it was handed to the scanner
	Path string

	// Line is the 1-based physical line number within the file
	Line int

	// Content is the line with leading and trailing whitespace removed
	Content string
}

// SearchRequest describes one search invocation.
type SearchRequest struct {
	// Query is the literal, case-sensitive substring to look for.
	// An empty query matches every line.
	Query string

	// Dir is the directory whose top-level candidate files are scanned.
	// Empty means DefaultDirectory.
	Dir string
}

// Directory returns the target directory, applying the default.
func (r SearchRequest) Directory() string {
	if r.Dir == "" {
		return DefaultDirectory
	}
	return r.Dir
}

// Validate checks the request for values the scan cannot work with.
// A query containing a line break is valid; it never matches because
// lines are compared without their terminators.
func (r SearchRequest) Validate() error {
	if strings.ContainsRune(r.Dir, 0) {
		return fmt.Errorf("directory path contains a NUL byte: %w", ErrUsage)
	}
	return nil
}

// SearchSummary counts what a search touched.
type SearchSummary struct {
	FilesConsidered int
	FilesSkipped    int
	FilesMatched    int
	Matches         int
}
