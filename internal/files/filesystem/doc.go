// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the small set of operations tsea needs from a
// filesystem: listing the direct children of a directory, opening a file
// for streaming reads, reading a whole file, and stat. Keeping them behind
// an interface enables testing with an in-memory implementation while the
// CLI runs against the OS filesystem.
//
// Key types:
//   - FileSystemProvider: The operations above
//   - DirEntry / FileInfo: Aliases of the io/fs types
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
