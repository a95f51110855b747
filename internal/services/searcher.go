package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vvka-141/tsea/pkg/tsea"
)

// SearchService implements the Searcher interface.
// It keeps no state between calls; Search may be called repeatedly and
// concurrently as long as the injected dependencies allow it.
type SearchService struct {
	enumerator  tsea.Enumerator
	fileScanner tsea.FileScanner
	logger      tsea.Logger
}

// NewSearchService creates a new SearchService with all dependencies injected.
// Panics on nil dependencies: these are programmer errors that should fail
// at startup rather than deep inside a search.
func NewSearchService(enumerator tsea.Enumerator, fileScanner tsea.FileScanner, logger tsea.Logger) *SearchService {
	if enumerator == nil {
		panic("enumerator cannot be nil")
	}
	if fileScanner == nil {
		panic("fileScanner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &SearchService{
		enumerator:  enumerator,
		fileScanner: fileScanner,
		logger:      logger,
	}
}

// Search scans every candidate file of req's directory for req.Query.
//
// A directory that cannot be listed aborts the search. Failures local to one
// file (undecodable text, read errors) are logged, counted as skipped, and do
// not stop the scan of sibling files. Files that cannot be opened contribute
// no records and are not counted as skipped.
func (s *SearchService) Search(ctx context.Context, req tsea.SearchRequest, emit tsea.EmitFunc) (tsea.SearchSummary, error) {
	var summary tsea.SearchSummary

	if err := req.Validate(); err != nil {
		return summary, err
	}

	dir := req.Directory()
	s.logger.Verbose("Searching %s for %q", dir, req.Query)

	candidates, err := s.enumerator.ListCandidates(dir)
	if err != nil {
		return summary, err
	}
	s.logger.Verbose("Found %d candidate file(s)", len(candidates))

	for _, path := range candidates {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("search interrupted: %w", err)
		}

		summary.FilesConsidered++

		records, err := s.fileScanner.ScanFile(path, req.Query)
		if err != nil {
			if !errors.Is(err, tsea.ErrInvalidText) && !errors.Is(err, tsea.ErrFileUnreadable) {
				return summary, err
			}
			s.logger.Error("Skipping %v", err)
			summary.FilesSkipped++
			continue
		}

		if len(records) > 0 {
			summary.FilesMatched++
		}
		for _, rec := range records {
			if err := emit(rec); err != nil {
				return summary, fmt.Errorf("failed to emit result: %w", err)
			}
			summary.Matches++
		}
	}

	s.logger.Verbose("Scanned %d file(s), skipped %d, %d match(es) in %d file(s)",
		summary.FilesConsidered, summary.FilesSkipped, summary.Matches, summary.FilesMatched)

	return summary, nil
}

// Verify SearchService implements the interface at compile time
var _ tsea.Searcher = (*SearchService)(nil)
