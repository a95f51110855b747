package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/tsea/internal/files/filesystem"
	"github.com/vvka-141/tsea/pkg/tsea"
)

const readBufferSize = 64 * 1024

// Scanner matches the lines of one file at a time against a query.
// Scanner holds no per-scan state and is safe for concurrent use by multiple
// goroutines as long as the provided fsProvider and logger are also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	logger     tsea.Logger
}

// NewScanner creates a new file scanner over the OS filesystem.
// Panics if logger is nil.
func NewScanner(logger tsea.Logger) *Scanner {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		fsProvider: filesystem.NewOSFileSystem(),
		logger:     logger,
	}
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider or logger is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger tsea.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// ScanFile returns a MatchRecord for every line of the file at path that
// contains query, in line order. An empty query matches every line.
//
// Parameters:
//   - path: the file to scan; it is also the display path of the records
//   - query: literal, case-sensitive substring
//
// Returns:
//   - []tsea.MatchRecord: nil when nothing matched or the file could not be opened
//   - error: wraps tsea.ErrInvalidText or tsea.ErrFileUnreadable
func (s *Scanner) ScanFile(path, query string) ([]tsea.MatchRecord, error) {
	f, err := s.fsProvider.OpenFile(path)
	if err != nil {
		s.logger.Verbose("Skipping %s: %v", path, err)
		return nil, nil
	}
	defer f.Close()

	return scanLines(newTextReader(f), path, query)
}

// scanLines reads r line by line and collects the lines containing query.
func scanLines(r io.Reader, path, query string) ([]tsea.MatchRecord, error) {
	reader := bufio.NewReaderSize(r, readBufferSize)

	var records []tsea.MatchRecord
	lineNum := 0

	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			lineNum++
			line = trimLineTerminator(line)

			if !utf8.ValidString(line) {
				return nil, fmt.Errorf("%s: line %d is not valid UTF-8: %w", path, lineNum, tsea.ErrInvalidText)
			}

			if strings.Contains(line, query) {
				records = append(records, tsea.MatchRecord{
					Path:    path,
					Line:    lineNum,
					Content: strings.TrimSpace(line),
				})
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %v: %w", path, err, tsea.ErrFileUnreadable)
		}
	}

	return records, nil
}

// trimLineTerminator removes a trailing "\n" or "\r\n".
func trimLineTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Verify Scanner implements the interface at compile time
var _ tsea.FileScanner = (*Scanner)(nil)
