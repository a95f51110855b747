package tsea

// Enumerator lists the candidate files of a target directory.
type Enumerator interface {
	// ListCandidates returns the display paths of the direct children of dir
	// that carry the candidate extension, in listing order.
	// Errors wrap ErrDirectoryUnreadable when dir cannot be listed.
	ListCandidates(dir string) ([]string, error)
}

// FileScanner finds the lines of a single file that contain a query.
type FileScanner interface {
	// ScanFile returns one MatchRecord per matching line, in line order.
	// A file that cannot be opened yields no records and no error.
	ScanFile(path, query string) ([]MatchRecord, error)
}
