// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - enumerator: Candidate discovery among the direct children of a directory
//   - scanner: Line-by-line matching of a single file against a query
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/tsea/internal/files/enumerator"
//	    "github.com/vvka-141/tsea/internal/files/scanner"
//	)
//
//	candidates, err := enumerator.NewEnumerator(nil).ListCandidates("./notes")
//	fileScanner := scanner.NewScanner(logger)
//	for _, path := range candidates {
//	    records, err := fileScanner.ScanFile(path, "todo")
//	    ...
//	}
package files
